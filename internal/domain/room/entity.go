package room

import (
	"errors"
	"strings"
)

var (
	ErrEmptyID         = errors.New("room id cannot be empty")
	ErrEmptyName       = errors.New("room name cannot be empty")
	ErrInvalidCapacity = errors.New("room capacity must be positive")
)

// Room is an entry of the static catalog. The catalog is built once at
// startup and never mutated.
type Room struct {
	id        string
	name      string
	beds      string
	sleeps    string
	maxGuests int
	rate      Money
	image     string
}

func NewRoom(id, name, beds, sleeps string, maxGuests int, rate Money, image string) (*Room, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrEmptyID
	}
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	if maxGuests <= 0 {
		return nil, ErrInvalidCapacity
	}

	return &Room{
		id:        id,
		name:      name,
		beds:      beds,
		sleeps:    sleeps,
		maxGuests: maxGuests,
		rate:      rate,
		image:     image,
	}, nil
}

func (r *Room) ID() string { return r.id }
func (r *Room) Name() string { return r.name }
func (r *Room) Beds() string { return r.beds }
func (r *Room) Sleeps() string { return r.sleeps }
func (r *Room) MaxGuests() int { return r.maxGuests }
func (r *Room) Rate() Money { return r.rate }
func (r *Room) Image() string { return r.image }

// Fits reports whether the combined guest count is within capacity.
func (r *Room) Fits(totalGuests int) bool {
	return totalGuests <= r.maxGuests
}
