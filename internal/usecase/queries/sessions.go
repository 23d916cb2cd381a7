package queries

import (
	"context"
	"fmt"
	"time"

	"luxe-escape/internal/domain/booking"
	"luxe-escape/internal/domain/checkout"
	"luxe-escape/internal/pkg/clock"
	"luxe-escape/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errs.New("session not found")

type FlowReader interface {
	Find(ctx context.Context, id uuid.UUID) (*booking.Flow, error)
}

type FormReader interface {
	Find(ctx context.Context, id uuid.UUID) (*checkout.Form, error)
}

// FlowView is the booking screen's full render state.
type FlowView struct {
	ID             uuid.UUID
	CheckIn        time.Time
	CheckOut       time.Time
	CheckOutMin    time.Time
	Adults         int
	Children       int
	GuestsLabel    string
	SelectedRoomID string
	SearchState    string
	BookingState   string
	GuestPanelOpen bool
	DatesValid     bool
	CanConfirm     bool
}

func NewFlowView(flow *booking.Flow, now time.Time) *FlowView {
	guests := flow.Guests()
	view := &FlowView{
		ID:             flow.ID(),
		CheckIn:        flow.Stay().CheckIn(),
		CheckOut:       flow.Stay().CheckOut(),
		CheckOutMin:    flow.Stay().CheckOutMin(),
		Adults:         guests.Adults(),
		Children:       guests.Children(),
		GuestsLabel:    fmt.Sprintf("%d guests, %d children", guests.Adults(), guests.Children()),
		SearchState:    string(flow.SearchState()),
		BookingState:   string(flow.BookingState()),
		GuestPanelOpen: flow.GuestPanelOpen(),
		DatesValid:     flow.Validity(now),
	}
	if r := flow.SelectedRoom(); r != nil {
		view.SelectedRoomID = r.ID()
		view.CanConfirm = view.DatesValid && r.Fits(guests.Total())
	}
	return view
}

// QuoteView renders the derived pricing of a checkout summary.
type QuoteView struct {
	Nights        int
	NightlyRate   string
	Subtotal      string
	SubtotalCents int64
	Taxes         string
	TaxesCents    int64
	Total         string
	TotalCents    int64
}

// CheckoutFormView is the checkout screen's full render state: the
// handed-off booking summary, derived pricing, field values and errors, and
// the submission state.
type CheckoutFormView struct {
	ID           uuid.UUID
	RoomName     string
	Beds         string
	Sleeps       string
	Image        string
	CheckIn      time.Time
	CheckOut     time.Time
	Adults       int
	Children     int
	Quote        QuoteView
	Values       map[string]string
	Errors       map[string]string
	State        string
	Confirmation string
}

func NewCheckoutFormView(form *checkout.Form) *CheckoutFormView {
	draft := form.Draft()
	quote := checkout.NewQuote(draft)
	return &CheckoutFormView{
		ID:       form.ID(),
		RoomName: draft.RoomName,
		Beds:     draft.Beds,
		Sleeps:   draft.Sleeps,
		Image:    draft.Image,
		CheckIn:  draft.CheckIn,
		CheckOut: draft.CheckOut,
		Adults:   draft.Adults,
		Children: draft.Children,
		Quote: QuoteView{
			Nights:        quote.Nights,
			NightlyRate:   quote.NightlyRate.Format(),
			Subtotal:      quote.Subtotal.Format(),
			SubtotalCents: quote.Subtotal.Cents(),
			Taxes:         quote.Taxes.Format(),
			TaxesCents:    quote.Taxes.Cents(),
			Total:         quote.Total.Format(),
			TotalCents:    quote.Total.Cents(),
		},
		Values:       form.Values(),
		Errors:       form.Errors(),
		State:        string(form.State()),
		Confirmation: form.Confirmation(),
	}
}

type SessionQueries interface {
	GetFlow(ctx context.Context, id uuid.UUID) (*FlowView, error)
	GetCheckoutForm(ctx context.Context, id uuid.UUID) (*CheckoutFormView, error)
}

type sessionQueriesImpl struct {
	flows FlowReader
	forms FormReader
	clock clock.Clock
}

func NewSessionQueries(flows FlowReader, forms FormReader, clk clock.Clock) SessionQueries {
	return &sessionQueriesImpl{
		flows: flows,
		forms: forms,
		clock: clk,
	}
}

func (q *sessionQueriesImpl) GetFlow(ctx context.Context, id uuid.UUID) (*FlowView, error) {
	flow, err := q.flows.Find(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrSessionNotFound)
	}
	return NewFlowView(flow, q.clock.Now()), nil
}

func (q *sessionQueriesImpl) GetCheckoutForm(ctx context.Context, id uuid.UUID) (*CheckoutFormView, error) {
	form, err := q.forms.Find(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrSessionNotFound)
	}
	return NewCheckoutFormView(form), nil
}
