package booking

import (
	"time"

	"luxe-escape/internal/domain/room"
	"luxe-escape/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNoRoomSelected   = errs.New("no room selected")
	ErrOverCapacity     = errs.New("guest count exceeds room capacity")
	ErrActionInFlight   = errs.New("action already in flight")
	ErrAlreadyHandedOff = errs.New("booking already handed off to checkout")
)

type SearchState string

const (
	SearchIdle    SearchState = "idle"
	SearchPending SearchState = "pending"
)

type BookingState string

const (
	BookingIdle    BookingState = "idle"
	RoomSelected   BookingState = "room_selected"
	BookingPending BookingState = "booking_pending"
	HandedOff      BookingState = "handed_off"
)

// Draft is the reservation snapshot handed to checkout. It is copied by
// value at the boundary; the flow keeps no reference to it afterwards.
type Draft struct {
	RoomID           string    `json:"roomId"`
	RoomName         string    `json:"roomName"`
	Beds             string    `json:"beds"`
	Sleeps           string    `json:"sleeps"`
	MaxGuests        int       `json:"maxGuests"`
	NightlyRateCents int64     `json:"nightlyRateCents"`
	Image            string    `json:"image"`
	CheckIn          time.Time `json:"checkIn"`
	CheckOut         time.Time `json:"checkOut"`
	Adults           int       `json:"adults"`
	Children         int       `json:"children"`
}

// Flow owns one visitor's in-progress reservation selection: dates, guest
// counts, selected room, and the two independent simulated transitions
// (Idle -> SearchPending -> Idle, RoomSelected -> BookingPending -> HandedOff).
type Flow struct {
	id             uuid.UUID
	stay           StayDates
	guests         GuestCount
	selected       *room.Room
	searchState    SearchState
	bookingState   BookingState
	guestPanelOpen bool
	createdAt      time.Time
}

func NewFlow(now time.Time) *Flow {
	return &Flow{
		id:           uuid.New(),
		stay:         defaultStay(now),
		guests:       DefaultGuestCount(),
		searchState:  SearchIdle,
		bookingState: BookingIdle,
		createdAt:    now,
	}
}

// defaultStay pre-fills the widget the way the landing form does: a
// four-night stay starting two weeks out.
func defaultStay(now time.Time) StayDates {
	checkIn := truncateToDay(now).AddDate(0, 0, 14)
	return NewStayDates(checkIn, checkIn.AddDate(0, 0, 4))
}

func (f *Flow) ID() uuid.UUID { return f.id }
func (f *Flow) Stay() StayDates { return f.stay }
func (f *Flow) Guests() GuestCount { return f.guests }
func (f *Flow) SelectedRoom() *room.Room { return f.selected }
func (f *Flow) SearchState() SearchState { return f.searchState }
func (f *Flow) BookingState() BookingState { return f.bookingState }
func (f *Flow) GuestPanelOpen() bool { return f.guestPanelOpen }
func (f *Flow) CreatedAt() time.Time { return f.createdAt }

// Clone returns a detached copy. The selected room stays shared; catalog
// rooms are immutable.
func (f *Flow) Clone() *Flow {
	c := *f
	return &c
}

func (f *Flow) SetCheckIn(d time.Time) {
	f.stay = f.stay.WithCheckIn(d)
}

func (f *Flow) SetCheckOut(d time.Time) {
	f.stay = f.stay.WithCheckOut(d)
}

func (f *Flow) SetGuests(g GuestCount) {
	f.guests = g
}

func (f *Flow) OpenGuestPanel() { f.guestPanelOpen = true }
func (f *Flow) CloseGuestPanel() { f.guestPanelOpen = false }

// SelectRoom replaces the current selection; it always succeeds.
func (f *Flow) SelectRoom(r *room.Room) {
	f.selected = r
	if f.bookingState == BookingIdle {
		f.bookingState = RoomSelected
	}
}

// Validity is gated on the dates alone (the Apply action ignores capacity).
func (f *Flow) Validity(now time.Time) bool {
	return f.stay.IsValid(now)
}

// BeginSearch starts the simulated availability search. It has no effect on
// data; the catalog is static.
func (f *Flow) BeginSearch(now time.Time) error {
	if f.searchState == SearchPending {
		return ErrActionInFlight
	}
	if !f.stay.IsValid(now) {
		return ErrStayDatesInvalid
	}
	f.searchState = SearchPending
	return nil
}

// FinishSearch returns to idle and closes any open guest-count panel.
func (f *Flow) FinishSearch() {
	f.searchState = SearchIdle
	f.guestPanelOpen = false
}

// BeginConfirm checks every booking precondition. On any failure the flow is
// left untouched and the caller performs no navigation.
func (f *Flow) BeginConfirm(now time.Time) error {
	switch f.bookingState {
	case BookingPending:
		return ErrActionInFlight
	case HandedOff:
		return ErrAlreadyHandedOff
	}
	if f.selected == nil {
		return ErrNoRoomSelected
	}
	if !f.stay.IsValid(now) {
		return ErrStayDatesInvalid
	}
	if !f.selected.Fits(f.guests.Total()) {
		return ErrOverCapacity
	}
	f.bookingState = BookingPending
	return nil
}

// FinishConfirm transitions to HandedOff and returns the draft snapshot.
// BookingPending has no retry or cancel path; it only resolves here.
func (f *Flow) FinishConfirm() Draft {
	f.bookingState = HandedOff
	return Draft{
		RoomID:           f.selected.ID(),
		RoomName:         f.selected.Name(),
		Beds:             f.selected.Beds(),
		Sleeps:           f.selected.Sleeps(),
		MaxGuests:        f.selected.MaxGuests(),
		NightlyRateCents: f.selected.Rate().Cents(),
		Image:            f.selected.Image(),
		CheckIn:          f.stay.CheckIn(),
		CheckOut:         f.stay.CheckOut(),
		Adults:           f.guests.Adults(),
		Children:         f.guests.Children(),
	}
}
