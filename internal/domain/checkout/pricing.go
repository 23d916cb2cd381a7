package checkout

import (
	"time"

	"luxe-escape/internal/domain/booking"
	"luxe-escape/internal/domain/room"
)

// Taxes and fees are a flat 12% of the room subtotal.
const taxRatePct = 12

type Quote struct {
	Nights      int
	NightlyRate room.Money
	Subtotal    room.Money
	Taxes       room.Money
	Total       room.Money
}

// NewQuote derives pricing from the handed-off draft:
// nights = ceil((checkOut - checkIn) / 1 day), subtotal = rate x nights,
// taxes = subtotal x 12%, total = subtotal + taxes.
func NewQuote(draft booking.Draft) Quote {
	nights := booking.NewStayDates(draft.CheckIn, draft.CheckOut).Nights()
	rate := room.NewMoney(draft.NightlyRateCents)
	subtotal := rate.Times(nights)
	taxes := subtotal.Percent(taxRatePct)

	return Quote{
		Nights:      nights,
		NightlyRate: rate,
		Subtotal:    subtotal,
		Taxes:       taxes,
		Total:       subtotal.Add(taxes),
	}
}

// DefaultDraft is the placeholder booking substituted when checkout is
// reached without a handoff (direct navigation). A deliberate fallback, not
// an error path.
func DefaultDraft() booking.Draft {
	return booking.Draft{
		RoomID:           "luxury-suite",
		RoomName:         "Luxury Suite",
		Beds:             "King bed",
		Sleeps:           "Sleeps 2",
		MaxGuests:        2,
		NightlyRateCents: 29900,
		Image:            "https://images.unsplash.com/photo-1566665797739-1674de7a421a?w=400&h=300&fit=crop",
		CheckIn:          time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:         time.Date(2025, 8, 3, 0, 0, 0, 0, time.UTC),
		Adults:           2,
		Children:         0,
	}
}
