package room

import (
	"errors"
	"fmt"
)

var ErrNegativeAmount = errors.New("amount cannot be negative")

// Money is a currency amount in cents. Nightly rates and checkout totals
// stay in integer cents until the response layer renders dollars.
type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func NewMoneyFromCents(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Dollars() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) Times(n int) Money {
	return Money{cents: m.cents * int64(n)}
}

// Percent applies a percentage rounded half up to the nearest cent.
func (m Money) Percent(pct int64) Money {
	return Money{cents: (m.cents*pct + 50) / 100}
}

func (m Money) Format() string {
	return fmt.Sprintf("$%.2f", m.Dollars())
}
