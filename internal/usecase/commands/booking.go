package commands

import (
	"context"
	"log/slog"
	"time"

	"luxe-escape/internal/domain/booking"
	"luxe-escape/internal/pkg/clock"
	"luxe-escape/internal/pkg/config"
	"luxe-escape/internal/pkg/errs"
	"luxe-escape/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

var (
	ErrFlowNotFound        = errs.New("booking session not found")
	ErrRoomNotFound        = errs.New("room not found")
	ErrInvalidStayDates    = errs.New("invalid stay dates")
	ErrBookingPrecondition = errs.New("booking precondition failed")
	ErrActionInFlight      = errs.New("action already in flight")
	ErrSnapshotFailed      = errs.New("failed to snapshot reservation draft")
)

// GuestAction is one press on the guest-count panel.
type GuestAction string

const (
	GuestAddAdult    GuestAction = "add_adult"
	GuestRemoveAdult GuestAction = "remove_adult"
	GuestAddChild    GuestAction = "add_child"
	GuestRemoveChild GuestAction = "remove_child"
	GuestOpenPanel   GuestAction = "open_panel"
	GuestClosePanel  GuestAction = "close_panel"
)

type ConfirmBookingResult struct {
	HandoffToken string
	Flow         *queries.FlowView
}

type BookingCommands interface {
	StartFlow(ctx context.Context) (*queries.FlowView, error)
	SetStay(ctx context.Context, id uuid.UUID, checkIn, checkOut *time.Time) (*queries.FlowView, error)
	AdjustGuests(ctx context.Context, id uuid.UUID, action GuestAction) (*queries.FlowView, error)
	SelectRoom(ctx context.Context, id uuid.UUID, roomID string) (*queries.FlowView, error)
	Search(ctx context.Context, id uuid.UUID) (*queries.FlowView, error)
	Confirm(ctx context.Context, id uuid.UUID) (*ConfirmBookingResult, error)
}

type bookingCommandsImpl struct {
	flows   FlowRepository
	catalog CatalogRepository
	signer  DraftSigner
	clock   clock.Clock
	sleeper clock.Sleeper
	delays  config.DelaysConfig
	locks   sessionLocks
}

func NewBookingCommands(
	flows FlowRepository,
	catalog CatalogRepository,
	signer DraftSigner,
	clk clock.Clock,
	sleeper clock.Sleeper,
	cfg config.Config,
) BookingCommands {
	return &bookingCommandsImpl{
		flows:   flows,
		catalog: catalog,
		signer:  signer,
		clock:   clk,
		sleeper: sleeper,
		delays:  cfg.Delays,
	}
}

func (b *bookingCommandsImpl) StartFlow(ctx context.Context) (*queries.FlowView, error) {
	flow := booking.NewFlow(b.clock.Now())
	if err := b.flows.Save(ctx, flow); err != nil {
		return nil, errs.Wrap(err, "failed to save booking session")
	}
	return queries.NewFlowView(flow, b.clock.Now()), nil
}

// SetStay updates either or both dates. Moving check-in past the current
// check-out deliberately leaves check-out alone; the view's CheckOutMin
// tells the widget what to re-constrain to.
func (b *bookingCommandsImpl) SetStay(ctx context.Context, id uuid.UUID, checkIn, checkOut *time.Time) (*queries.FlowView, error) {
	defer b.locks.lock(id)()

	flow, err := b.findFlow(ctx, id)
	if err != nil {
		return nil, err
	}

	if checkIn != nil {
		flow.SetCheckIn(*checkIn)
	}
	if checkOut != nil {
		flow.SetCheckOut(*checkOut)
	}

	if err := b.flows.Save(ctx, flow); err != nil {
		return nil, errs.Wrap(err, "failed to save booking session")
	}
	return queries.NewFlowView(flow, b.clock.Now()), nil
}

// AdjustGuests applies one counter press. Presses past a bound are refused
// inside the domain and read back as a no-op, never as an error.
func (b *bookingCommandsImpl) AdjustGuests(ctx context.Context, id uuid.UUID, action GuestAction) (*queries.FlowView, error) {
	defer b.locks.lock(id)()

	flow, err := b.findFlow(ctx, id)
	if err != nil {
		return nil, err
	}

	switch action {
	case GuestAddAdult:
		flow.SetGuests(flow.Guests().AddAdult())
	case GuestRemoveAdult:
		flow.SetGuests(flow.Guests().RemoveAdult())
	case GuestAddChild:
		flow.SetGuests(flow.Guests().AddChild())
	case GuestRemoveChild:
		flow.SetGuests(flow.Guests().RemoveChild())
	case GuestOpenPanel:
		flow.OpenGuestPanel()
	case GuestClosePanel:
		flow.CloseGuestPanel()
	default:
		return nil, errs.New("unknown guest action")
	}

	if err := b.flows.Save(ctx, flow); err != nil {
		return nil, errs.Wrap(err, "failed to save booking session")
	}
	return queries.NewFlowView(flow, b.clock.Now()), nil
}

func (b *bookingCommandsImpl) SelectRoom(ctx context.Context, id uuid.UUID, roomID string) (*queries.FlowView, error) {
	defer b.locks.lock(id)()

	flow, err := b.findFlow(ctx, id)
	if err != nil {
		return nil, err
	}

	roomEntity, err := b.catalog.FindByID(ctx, roomID)
	if err != nil {
		return nil, errs.Mark(err, ErrRoomNotFound)
	}

	flow.SelectRoom(roomEntity)

	if err := b.flows.Save(ctx, flow); err != nil {
		return nil, errs.Wrap(err, "failed to save booking session")
	}
	return queries.NewFlowView(flow, b.clock.Now()), nil
}

// Search runs the simulated availability search: a fixed artificial delay
// with no effect on the static catalog. It exists to drive the client's
// loading state; on completion any open guest panel is closed. The pending
// state is saved before the delay, so a concurrent search on the same
// session answers in-flight instead of running twice.
func (b *bookingCommandsImpl) Search(ctx context.Context, id uuid.UUID) (*queries.FlowView, error) {
	if err := b.beginSearch(ctx, id); err != nil {
		return nil, err
	}

	b.sleeper.Sleep(ctx, b.delays.Search)

	return b.finishSearch(ctx, id)
}

func (b *bookingCommandsImpl) beginSearch(ctx context.Context, id uuid.UUID) error {
	defer b.locks.lock(id)()

	flow, err := b.findFlow(ctx, id)
	if err != nil {
		return err
	}
	if err := flow.BeginSearch(b.clock.Now()); err != nil {
		return b.markFlowError(err)
	}
	if err := b.flows.Save(ctx, flow); err != nil {
		return errs.Wrap(err, "failed to save booking session")
	}
	return nil
}

func (b *bookingCommandsImpl) finishSearch(ctx context.Context, id uuid.UUID) (*queries.FlowView, error) {
	defer b.locks.lock(id)()

	flow, err := b.findFlow(ctx, id)
	if err != nil {
		return nil, err
	}
	flow.FinishSearch()
	if err := b.flows.Save(ctx, flow); err != nil {
		return nil, errs.Wrap(err, "failed to save booking session")
	}
	return queries.NewFlowView(flow, b.clock.Now()), nil
}

// Confirm gates on every precondition, simulates the booking call, then
// hands a snapshot of the draft to checkout as a signed token. On a failed
// precondition the flow is untouched and no navigation happens.
func (b *bookingCommandsImpl) Confirm(ctx context.Context, id uuid.UUID) (*ConfirmBookingResult, error) {
	if err := b.beginConfirm(ctx, id); err != nil {
		return nil, err
	}

	b.sleeper.Sleep(ctx, b.delays.Booking)

	return b.finishConfirm(ctx, id)
}

func (b *bookingCommandsImpl) beginConfirm(ctx context.Context, id uuid.UUID) error {
	defer b.locks.lock(id)()

	flow, err := b.findFlow(ctx, id)
	if err != nil {
		return err
	}
	if err := flow.BeginConfirm(b.clock.Now()); err != nil {
		return b.markFlowError(err)
	}
	if err := b.flows.Save(ctx, flow); err != nil {
		return errs.Wrap(err, "failed to save booking session")
	}
	return nil
}

func (b *bookingCommandsImpl) finishConfirm(ctx context.Context, id uuid.UUID) (*ConfirmBookingResult, error) {
	defer b.locks.lock(id)()

	flow, err := b.findFlow(ctx, id)
	if err != nil {
		return nil, err
	}

	draft := flow.FinishConfirm()

	// Hand off by value: checkout gets its own copy, never a reference into
	// this flow's state.
	var snapshot booking.Draft
	if err := copier.Copy(&snapshot, &draft); err != nil {
		return nil, errs.Mark(err, ErrSnapshotFailed)
	}

	token, err := b.signer.Sign(snapshot, b.clock.Now())
	if err != nil {
		return nil, errs.Wrap(err, "failed to sign handoff token")
	}

	if err := b.flows.Save(ctx, flow); err != nil {
		return nil, errs.Wrap(err, "failed to save booking session")
	}

	slog.Info("booking handed off to checkout",
		"session_id", flow.ID(), "room", snapshot.RoomID, "nights", booking.NewStayDates(snapshot.CheckIn, snapshot.CheckOut).Nights())

	return &ConfirmBookingResult{
		HandoffToken: token,
		Flow:         queries.NewFlowView(flow, b.clock.Now()),
	}, nil
}

func (b *bookingCommandsImpl) findFlow(ctx context.Context, id uuid.UUID) (*booking.Flow, error) {
	flow, err := b.flows.Find(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrFlowNotFound)
	}
	return flow, nil
}

func (b *bookingCommandsImpl) markFlowError(err error) error {
	switch {
	case errs.Is(err, booking.ErrActionInFlight):
		return errs.Mark(err, ErrActionInFlight)
	case errs.Is(err, booking.ErrStayDatesInvalid):
		return errs.Mark(err, ErrInvalidStayDates)
	default:
		return errs.Mark(err, ErrBookingPrecondition)
	}
}
