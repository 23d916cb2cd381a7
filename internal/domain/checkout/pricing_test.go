//go:build unit

package checkout_test

import (
	"testing"
	"time"

	"luxe-escape/internal/domain/checkout"
	"luxe-escape/tests/common/builder"

	"github.com/stretchr/testify/assert"
)

func TestNewQuote(t *testing.T) {
	t.Run("four night junior suite", func(t *testing.T) {
		quote := checkout.NewQuote(builder.NewDraftBuilder().Build())

		assert.Equal(t, 4, quote.Nights)
		assert.Equal(t, int64(39900), quote.NightlyRate.Cents())
		assert.Equal(t, int64(159600), quote.Subtotal.Cents())
		assert.Equal(t, int64(19152), quote.Taxes.Cents())
		assert.Equal(t, int64(178752), quote.Total.Cents())
		assert.Equal(t, "$1596.00", quote.Subtotal.Format())
		assert.Equal(t, "$191.52", quote.Taxes.Format())
		assert.Equal(t, "$1787.52", quote.Total.Format())
	})

	t.Run("degenerate span prices zero nights", func(t *testing.T) {
		draft := builder.NewDraftBuilder().
			WithStay(time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC), time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)).
			Build()
		quote := checkout.NewQuote(draft)

		assert.Equal(t, 0, quote.Nights)
		assert.Equal(t, int64(0), quote.Subtotal.Cents())
		assert.Equal(t, int64(0), quote.Total.Cents())
	})

	t.Run("tax rounds half up to the cent", func(t *testing.T) {
		// one night at $0.25: 12% is 3 cents exactly; at $0.29 it is 3.48 -> 3
		draft := builder.NewDraftBuilder().WithRoom("x", "X", 29).
			WithStay(time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC), time.Date(2026, 9, 11, 0, 0, 0, 0, time.UTC)).
			Build()
		quote := checkout.NewQuote(draft)
		assert.Equal(t, int64(3), quote.Taxes.Cents())
	})
}

func TestDefaultDraft(t *testing.T) {
	draft := checkout.DefaultDraft()

	assert.Equal(t, "Luxury Suite", draft.RoomName)
	assert.Equal(t, int64(29900), draft.NightlyRateCents)
	assert.Equal(t, 2, draft.Adults)
	assert.Equal(t, 0, draft.Children)

	quote := checkout.NewQuote(draft)
	assert.Equal(t, 2, quote.Nights)
	assert.Equal(t, int64(59800), quote.Subtotal.Cents())
	assert.Equal(t, int64(7176), quote.Taxes.Cents())
	assert.Equal(t, int64(66976), quote.Total.Cents())
}

func TestNewConfirmationCode(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		code := checkout.NewConfirmationCode()

		assert.Len(t, code, 12)
		assert.Equal(t, "HTL", code[:3])
		for _, r := range code[3:] {
			assert.True(t, (r >= '0' && r <= '9') || (r >= 'A' && r <= 'Z'), "unexpected character %q in %s", r, code)
		}
		seen[code] = struct{}{}
	}
	// 36^9 codes; 100 draws should never collide
	assert.Len(t, seen, 100)
}
