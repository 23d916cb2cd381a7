package commands

import (
	"context"
	"time"

	"luxe-escape/internal/domain/booking"
	"luxe-escape/internal/domain/checkout"
	"luxe-escape/internal/domain/room"

	"github.com/google/uuid"
)

type CatalogRepository interface {
	FindByID(ctx context.Context, id string) (*room.Room, error)
}

type FlowRepository interface {
	Save(ctx context.Context, flow *booking.Flow) error
	Find(ctx context.Context, id uuid.UUID) (*booking.Flow, error)
}

type FormRepository interface {
	Save(ctx context.Context, form *checkout.Form) error
	Find(ctx context.Context, id uuid.UUID) (*checkout.Form, error)
}

// DraftSigner moves the reservation draft across the booking -> checkout
// navigation boundary as an opaque token.
type DraftSigner interface {
	Sign(draft booking.Draft, now time.Time) (string, error)
	Parse(token string) (booking.Draft, error)
}
