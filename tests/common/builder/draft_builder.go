//go:build unit || e2e

package builder

import (
	"time"

	"luxe-escape/internal/domain/booking"
)

// DraftBuilder assembles reservation drafts for tests. Defaults mirror a
// four-night Junior Suite stay for two adults.
type DraftBuilder struct {
	draft booking.Draft
}

func NewDraftBuilder() *DraftBuilder {
	return &DraftBuilder{
		draft: booking.Draft{
			RoomID:           "junior-suite",
			RoomName:         "Junior Suite",
			Beds:             "1 bed",
			Sleeps:           "2 sleeps",
			MaxGuests:        2,
			NightlyRateCents: 39900,
			Image:            "https://example.test/junior-suite.jpg",
			CheckIn:          time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
			CheckOut:         time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
			Adults:           2,
			Children:         0,
		},
	}
}

func (b *DraftBuilder) With(mutate func(*DraftBuilder)) *DraftBuilder {
	if mutate != nil {
		mutate(b)
	}
	return b
}

func (b *DraftBuilder) WithRoom(id, name string, rateCents int64) *DraftBuilder {
	b.draft.RoomID = id
	b.draft.RoomName = name
	b.draft.NightlyRateCents = rateCents
	return b
}

func (b *DraftBuilder) WithStay(checkIn, checkOut time.Time) *DraftBuilder {
	b.draft.CheckIn = checkIn
	b.draft.CheckOut = checkOut
	return b
}

func (b *DraftBuilder) WithGuests(adults, children int) *DraftBuilder {
	b.draft.Adults = adults
	b.draft.Children = children
	return b
}

func (b *DraftBuilder) Build() booking.Draft {
	return b.draft
}
