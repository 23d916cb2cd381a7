package queries

import (
	"context"

	"luxe-escape/internal/pkg/errs"
)

var ErrRoomNotFound = errs.New("room not found")

// RoomView is the booking-grid projection of a catalog room.
type RoomView struct {
	ID         string
	Name       string
	Beds       string
	Sleeps     string
	MaxGuests  int
	PriceCents int64
	Price      string
	Image      string
}

// ShowcaseRoomView backs the OUR ROOMS carousel: richer copy than the
// booking grid, not selectable for booking.
type ShowcaseRoomView struct {
	ID          string
	Name        string
	Beds        string
	Sleeps      string
	Size        string
	Price       string
	Description string
	Amenities   []string
	Image       string
}

type RoomQueries interface {
	ListRooms(ctx context.Context) ([]RoomView, error)
	GetRoom(ctx context.Context, id string) (*RoomView, error)
	ListShowcase(ctx context.Context) ([]ShowcaseRoomView, error)
}
