package booking

import (
	"errors"
	"time"
)

var ErrStayDatesInvalid = errors.New("invalid stay dates")

const (
	MinAdults   = 1
	MaxAdults   = 10
	MinChildren = 0
	MaxChildren = 10
)

// StayDates holds the check-in/check-out pair. Construction does not reject
// past or inverted dates; the widget layer owns input shape and validity is
// a pure query so the UI can keep rendering while the pair is invalid.
type StayDates struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayDates(checkIn, checkOut time.Time) StayDates {
	return StayDates{
		checkIn:  truncateToDay(checkIn),
		checkOut: truncateToDay(checkOut),
	}
}

func (s StayDates) CheckIn() time.Time { return s.checkIn }
func (s StayDates) CheckOut() time.Time { return s.checkOut }

func (s StayDates) WithCheckIn(d time.Time) StayDates {
	s.checkIn = truncateToDay(d)
	return s
}

func (s StayDates) WithCheckOut(d time.Time) StayDates {
	s.checkOut = truncateToDay(d)
	return s
}

// IsValid reports (check-in >= today) AND (check-out > check-in).
// Pure over the two dates; guest counts and capacity are not consulted.
func (s StayDates) IsValid(now time.Time) bool {
	today := truncateToDay(now)
	if s.checkIn.Before(today) {
		return false
	}
	return s.checkOut.After(s.checkIn)
}

// CheckOutMin is the earliest selectable check-out after a check-in change.
// Changing check-in never auto-adjusts an existing check-out.
func (s StayDates) CheckOutMin() time.Time {
	return s.checkIn.AddDate(0, 0, 1)
}

// Nights is ceil((checkOut - checkIn) / 24h). Zero or negative spans count
// as zero nights.
func (s StayDates) Nights() int {
	diff := s.checkOut.Sub(s.checkIn)
	if diff <= 0 {
		return 0
	}
	nights := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) != 0 {
		nights++
	}
	return nights
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// GuestCount keeps adults in [1,10] and children in [0,10]. Increments and
// decrements past a bound are refused, not clamped: the value is returned
// unchanged so callers can treat the press as a no-op.
type GuestCount struct {
	adults   int
	children int
}

func DefaultGuestCount() GuestCount {
	return GuestCount{adults: 2, children: 0}
}

func NewGuestCount(adults, children int) (GuestCount, error) {
	if adults < MinAdults || adults > MaxAdults {
		return GuestCount{}, errors.New("adults must be between 1 and 10")
	}
	if children < MinChildren || children > MaxChildren {
		return GuestCount{}, errors.New("children must be between 0 and 10")
	}
	return GuestCount{adults: adults, children: children}, nil
}

func (g GuestCount) Adults() int { return g.adults }
func (g GuestCount) Children() int { return g.children }
func (g GuestCount) Total() int { return g.adults + g.children }

func (g GuestCount) AddAdult() GuestCount {
	if g.adults >= MaxAdults {
		return g
	}
	g.adults++
	return g
}

func (g GuestCount) RemoveAdult() GuestCount {
	if g.adults <= MinAdults {
		return g
	}
	g.adults--
	return g
}

func (g GuestCount) AddChild() GuestCount {
	if g.children >= MaxChildren {
		return g
	}
	g.children++
	return g
}

func (g GuestCount) RemoveChild() GuestCount {
	if g.children <= MinChildren {
		return g
	}
	g.children--
	return g
}
