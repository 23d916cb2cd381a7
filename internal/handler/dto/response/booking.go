package response

import (
	"luxe-escape/internal/usecase/commands"
	"luxe-escape/internal/usecase/queries"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type FlowResponse struct {
	ID             uuid.UUID `json:"id"`
	CheckIn        string    `json:"checkIn"`
	CheckOut       string    `json:"checkOut"`
	CheckOutMin    string    `json:"checkOutMin"`
	Adults         int       `json:"adults"`
	Children       int       `json:"children"`
	GuestsLabel    string    `json:"guestsLabel"`
	SelectedRoomID string    `json:"selectedRoomId,omitempty"`
	SearchState    string    `json:"searchState"`
	BookingState   string    `json:"bookingState"`
	GuestPanelOpen bool      `json:"guestPanelOpen"`
	DatesValid     bool      `json:"datesValid"`
	CanConfirm     bool      `json:"canConfirm"`
}

func FromFlowView(v *queries.FlowView) *FlowResponse {
	return &FlowResponse{
		ID:             v.ID,
		CheckIn:        v.CheckIn.Format(dateLayout),
		CheckOut:       v.CheckOut.Format(dateLayout),
		CheckOutMin:    v.CheckOutMin.Format(dateLayout),
		Adults:         v.Adults,
		Children:       v.Children,
		GuestsLabel:    v.GuestsLabel,
		SelectedRoomID: v.SelectedRoomID,
		SearchState:    v.SearchState,
		BookingState:   v.BookingState,
		GuestPanelOpen: v.GuestPanelOpen,
		DatesValid:     v.DatesValid,
		CanConfirm:     v.CanConfirm,
	}
}

type ConfirmBookingResponse struct {
	HandoffToken string        `json:"handoffToken"`
	RedirectTo   string        `json:"redirectTo"`
	Flow         *FlowResponse `json:"flow"`
}

func FromConfirmResult(r *commands.ConfirmBookingResult) *ConfirmBookingResponse {
	return &ConfirmBookingResponse{
		HandoffToken: r.HandoffToken,
		RedirectTo:   "/checkout",
		Flow:         FromFlowView(r.Flow),
	}
}
