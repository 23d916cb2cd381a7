package response

import (
	"luxe-escape/internal/usecase/commands"
	"luxe-escape/internal/usecase/queries"

	"github.com/google/uuid"
)

type QuoteResponse struct {
	Nights        int    `json:"nights"`
	NightlyRate   string `json:"nightlyRate"`
	Subtotal      string `json:"subtotal"`
	SubtotalCents int64  `json:"subtotalCents"`
	Taxes         string `json:"taxes"`
	TaxesCents    int64  `json:"taxesCents"`
	Total         string `json:"total"`
	TotalCents    int64  `json:"totalCents"`
}

type CheckoutFormResponse struct {
	ID           uuid.UUID         `json:"id"`
	RoomName     string            `json:"roomName"`
	Beds         string            `json:"beds"`
	Sleeps       string            `json:"sleeps"`
	Image        string            `json:"image"`
	CheckIn      string            `json:"checkIn"`
	CheckOut     string            `json:"checkOut"`
	Adults       int               `json:"adults"`
	Children     int               `json:"children"`
	Quote        QuoteResponse     `json:"quote"`
	Values       map[string]string `json:"values"`
	Errors       map[string]string `json:"errors"`
	State        string            `json:"state"`
	Confirmation string            `json:"confirmation,omitempty"`
}

func FromCheckoutFormView(v *queries.CheckoutFormView) *CheckoutFormResponse {
	return &CheckoutFormResponse{
		ID:       v.ID,
		RoomName: v.RoomName,
		Beds:     v.Beds,
		Sleeps:   v.Sleeps,
		Image:    v.Image,
		CheckIn:  v.CheckIn.Format(dateLayout),
		CheckOut: v.CheckOut.Format(dateLayout),
		Adults:   v.Adults,
		Children: v.Children,
		Quote: QuoteResponse{
			Nights:        v.Quote.Nights,
			NightlyRate:   v.Quote.NightlyRate,
			Subtotal:      v.Quote.Subtotal,
			SubtotalCents: v.Quote.SubtotalCents,
			Taxes:         v.Quote.Taxes,
			TaxesCents:    v.Quote.TaxesCents,
			Total:         v.Quote.Total,
			TotalCents:    v.Quote.TotalCents,
		},
		Values:       v.Values,
		Errors:       v.Errors,
		State:        v.State,
		Confirmation: v.Confirmation,
	}
}

type SubmitResponse struct {
	Confirmation    string                `json:"confirmation"`
	RedirectAfterMs int64                 `json:"redirectAfterMs"`
	RedirectTo      string                `json:"redirectTo"`
	Form            *CheckoutFormResponse `json:"form"`
}

func FromSubmitResult(r *commands.SubmitResult) *SubmitResponse {
	return &SubmitResponse{
		Confirmation:    r.Confirmation,
		RedirectAfterMs: r.RedirectAfter.Milliseconds(),
		RedirectTo:      "/",
		Form:            FromCheckoutFormView(r.Form),
	}
}
