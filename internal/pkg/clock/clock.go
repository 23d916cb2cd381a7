package clock

import (
	"context"
	"time"
)

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

type MockClock struct {
	currentTime time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

func (c *MockClock) Now() time.Time {
	return c.currentTime
}

func (c *MockClock) Set(t time.Time) {
	c.currentTime = t
}

func (c *MockClock) Add(d time.Duration) {
	c.currentTime = c.currentTime.Add(d)
}

// Sleeper abstracts the simulated processing delays (availability search,
// booking call, payment capture) so tests can run them synchronously.
// A started delay always runs to completion; ctx only bounds the wait.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration)
}

type RealSleeper struct{}

func NewRealSleeper() Sleeper {
	return &RealSleeper{}
}

func (s *RealSleeper) Sleep(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}

// MockSleeper resolves immediately and records every requested delay.
type MockSleeper struct {
	Slept []time.Duration
}

func NewMockSleeper() *MockSleeper {
	return &MockSleeper{}
}

func (s *MockSleeper) Sleep(_ context.Context, d time.Duration) {
	s.Slept = append(s.Slept, d)
}
