package request

import (
	"time"

	"luxe-escape/internal/pkg/errs"
	"luxe-escape/internal/usecase/commands"
)

var ErrInvalidDate = errs.New("invalid date format")

// Dates travel as plain calendar days; the picker widget owns the format.
const dateLayout = "2006-01-02"

type SetStayRequest struct {
	CheckIn  *string `json:"checkIn,omitempty"`
	CheckOut *string `json:"checkOut,omitempty"`
}

func (r SetStayRequest) Parse() (checkIn, checkOut *time.Time, err error) {
	if r.CheckIn != nil {
		t, parseErr := time.Parse(dateLayout, *r.CheckIn)
		if parseErr != nil {
			return nil, nil, errs.Mark(parseErr, ErrInvalidDate)
		}
		checkIn = &t
	}
	if r.CheckOut != nil {
		t, parseErr := time.Parse(dateLayout, *r.CheckOut)
		if parseErr != nil {
			return nil, nil, errs.Mark(parseErr, ErrInvalidDate)
		}
		checkOut = &t
	}
	return checkIn, checkOut, nil
}

type AdjustGuestsRequest struct {
	Action string `json:"action" binding:"required"`
}

var guestActions = map[string]commands.GuestAction{
	"add_adult":    commands.GuestAddAdult,
	"remove_adult": commands.GuestRemoveAdult,
	"add_child":    commands.GuestAddChild,
	"remove_child": commands.GuestRemoveChild,
	"open_panel":   commands.GuestOpenPanel,
	"close_panel":  commands.GuestClosePanel,
}

func (r AdjustGuestsRequest) ToAction() (commands.GuestAction, bool) {
	action, ok := guestActions[r.Action]
	return action, ok
}

type SelectRoomRequest struct {
	RoomID string `json:"roomId" binding:"required"`
}
