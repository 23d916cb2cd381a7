package commands

import (
	"context"
	"log/slog"
	"time"

	"luxe-escape/internal/domain/checkout"
	"luxe-escape/internal/pkg/clock"
	"luxe-escape/internal/pkg/config"
	"luxe-escape/internal/pkg/errs"
	"luxe-escape/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrFormNotFound       = errs.New("checkout session not found")
	ErrUnknownField       = errs.New("unknown form field")
	ErrValidationFailed   = errs.New("form validation failed")
	ErrSubmissionInFlight = errs.New("submission already in flight")
)

type SubmitResult struct {
	Confirmation  string
	RedirectAfter time.Duration
	Form          *queries.CheckoutFormView
}

type CheckoutCommands interface {
	// StartSession opens a checkout from a handoff token. A missing or
	// invalid token falls back to the default placeholder booking; direct
	// navigation to checkout is never an error.
	StartSession(ctx context.Context, handoffToken string) (*queries.CheckoutFormView, error)
	EditField(ctx context.Context, id uuid.UUID, field, value string) (*queries.CheckoutFormView, error)
	Submit(ctx context.Context, id uuid.UUID) (*SubmitResult, error)
}

type checkoutCommandsImpl struct {
	forms   FormRepository
	signer  DraftSigner
	clock   clock.Clock
	sleeper clock.Sleeper
	delays  config.DelaysConfig
	locks   sessionLocks
}

func NewCheckoutCommands(
	forms FormRepository,
	signer DraftSigner,
	clk clock.Clock,
	sleeper clock.Sleeper,
	cfg config.Config,
) CheckoutCommands {
	return &checkoutCommandsImpl{
		forms:   forms,
		signer:  signer,
		clock:   clk,
		sleeper: sleeper,
		delays:  cfg.Delays,
	}
}

func (c *checkoutCommandsImpl) StartSession(ctx context.Context, handoffToken string) (*queries.CheckoutFormView, error) {
	draft := checkout.DefaultDraft()
	if handoffToken != "" {
		parsed, err := c.signer.Parse(handoffToken)
		if err != nil {
			slog.Warn("handoff token rejected, using default booking", "error", err)
		} else {
			draft = parsed
		}
	}

	form := checkout.NewForm(draft, c.clock.Now())
	if err := c.forms.Save(ctx, form); err != nil {
		return nil, errs.Wrap(err, "failed to save checkout session")
	}
	return queries.NewCheckoutFormView(form), nil
}

// EditField applies a keystroke: live formatting for card number and expiry,
// plain assignment elsewhere. The edited field's error is cleared; submit is
// the only place the full rule set runs.
func (c *checkoutCommandsImpl) EditField(ctx context.Context, id uuid.UUID, field, value string) (*queries.CheckoutFormView, error) {
	defer c.locks.lock(id)()

	form, err := c.findForm(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := form.SetField(field, value); err != nil {
		switch {
		case errs.Is(err, checkout.ErrUnknownField):
			return nil, errs.Mark(err, ErrUnknownField)
		case errs.Is(err, checkout.ErrSubmissionInFlight):
			return nil, errs.Mark(err, ErrSubmissionInFlight)
		default:
			return nil, err
		}
	}

	if err := c.forms.Save(ctx, form); err != nil {
		return nil, errs.Wrap(err, "failed to save checkout session")
	}
	return queries.NewCheckoutFormView(form), nil
}

// Submit validates all twelve fields at once; with any error nothing starts
// and the whole error map is surfaced. A valid form walks
// Editing -> Processing -> Success -> Confirmed through the simulated
// delays. This path cannot fail and cannot be aborted once entered; the
// Processing state is saved before the first delay so a concurrent submit
// on the same session answers in-flight.
func (c *checkoutCommandsImpl) Submit(ctx context.Context, id uuid.UUID) (*SubmitResult, error) {
	if err := c.beginSubmit(ctx, id); err != nil {
		return nil, err
	}

	c.sleeper.Sleep(ctx, c.delays.Payment)
	if err := c.markSuccess(ctx, id); err != nil {
		return nil, err
	}

	c.sleeper.Sleep(ctx, c.delays.Success)
	return c.complete(ctx, id)
}

func (c *checkoutCommandsImpl) beginSubmit(ctx context.Context, id uuid.UUID) error {
	defer c.locks.lock(id)()

	form, err := c.findForm(ctx, id)
	if err != nil {
		return err
	}

	if err := form.BeginSubmit(); err != nil {
		saveErr := c.forms.Save(ctx, form) // keep the field errors visible
		if saveErr != nil {
			return errs.Wrap(saveErr, "failed to save checkout session")
		}
		switch {
		case errs.Is(err, checkout.ErrSubmissionInFlight):
			return errs.Mark(err, ErrSubmissionInFlight)
		default:
			return errs.Mark(err, ErrValidationFailed)
		}
	}

	if err := c.forms.Save(ctx, form); err != nil {
		return errs.Wrap(err, "failed to save checkout session")
	}
	return nil
}

func (c *checkoutCommandsImpl) markSuccess(ctx context.Context, id uuid.UUID) error {
	defer c.locks.lock(id)()

	form, err := c.findForm(ctx, id)
	if err != nil {
		return err
	}
	if err := form.MarkSuccess(); err != nil {
		return err
	}
	if err := c.forms.Save(ctx, form); err != nil {
		return errs.Wrap(err, "failed to save checkout session")
	}
	return nil
}

func (c *checkoutCommandsImpl) complete(ctx context.Context, id uuid.UUID) (*SubmitResult, error) {
	defer c.locks.lock(id)()

	form, err := c.findForm(ctx, id)
	if err != nil {
		return nil, err
	}

	code := checkout.NewConfirmationCode()
	if err := form.Complete(code); err != nil {
		return nil, err
	}
	if err := c.forms.Save(ctx, form); err != nil {
		return nil, errs.Wrap(err, "failed to save checkout session")
	}

	slog.Info("booking confirmed", "session_id", form.ID(), "confirmation", code)

	return &SubmitResult{
		Confirmation:  code,
		RedirectAfter: c.delays.Redirect,
		Form:          queries.NewCheckoutFormView(form),
	}, nil
}

func (c *checkoutCommandsImpl) findForm(ctx context.Context, id uuid.UUID) (*checkout.Form, error) {
	form, err := c.forms.Find(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrFormNotFound)
	}
	return form, nil
}
