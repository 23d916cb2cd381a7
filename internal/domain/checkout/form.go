package checkout

import (
	"time"

	"luxe-escape/internal/domain/booking"
	"luxe-escape/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrUnknownField       = errs.New("unknown form field")
	ErrValidationFailed   = errs.New("form validation failed")
	ErrSubmissionInFlight = errs.New("submission already in flight")
	ErrInvalidFormState   = errs.New("invalid form state transition")
)

type State string

const (
	StateEditing    State = "editing"
	StateProcessing State = "processing"
	StateSuccess    State = "success"
	StateConfirmed  State = "confirmed"
)

var fieldSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(RequiredFields))
	for _, f := range RequiredFields {
		m[f] = struct{}{}
	}
	return m
}()

// Form collects the twelve contact/payment fields for one checkout and walks
// Editing -> Processing -> Success -> Confirmed. Once Processing starts the
// path cannot fail and cannot be aborted.
type Form struct {
	id           uuid.UUID
	draft        booking.Draft
	values       map[string]string
	fieldErrors  FieldErrors
	state        State
	confirmation string
	createdAt    time.Time
}

func NewForm(draft booking.Draft, now time.Time) *Form {
	values := make(map[string]string, len(RequiredFields))
	for _, f := range RequiredFields {
		values[f] = ""
	}
	return &Form{
		id:          uuid.New(),
		draft:       draft,
		values:      values,
		fieldErrors: FieldErrors{},
		state:       StateEditing,
		createdAt:   now,
	}
}

func (f *Form) ID() uuid.UUID { return f.id }
func (f *Form) Draft() booking.Draft { return f.draft }
func (f *Form) State() State { return f.state }
func (f *Form) Confirmation() string { return f.confirmation }
func (f *Form) Errors() FieldErrors { return f.fieldErrors }
func (f *Form) CreatedAt() time.Time { return f.createdAt }

// Clone returns a detached copy with its own value and error maps.
func (f *Form) Clone() *Form {
	c := *f
	c.values = make(map[string]string, len(f.values))
	for k, v := range f.values {
		c.values[k] = v
	}
	c.fieldErrors = make(FieldErrors, len(f.fieldErrors))
	for k, v := range f.fieldErrors {
		c.fieldErrors[k] = v
	}
	return &c
}

func (f *Form) Value(field string) string {
	return f.values[field]
}

func (f *Form) Values() map[string]string {
	out := make(map[string]string, len(f.values))
	for k, v := range f.values {
		out[k] = v
	}
	return out
}

// SetField applies one keystroke's worth of input. Card number and expiry
// run through the live formatters; an edit that would exceed the formatted
// length cap is refused and the previous value kept. Editing a field clears
// that field's existing error.
func (f *Form) SetField(field, input string) error {
	if f.state != StateEditing {
		return ErrSubmissionInFlight
	}
	if _, ok := fieldSet[field]; !ok {
		return ErrUnknownField
	}

	switch field {
	case FieldCardNumber:
		formatted := FormatCardNumber(input)
		if len(formatted) > maxCardNumberLen {
			return nil
		}
		f.values[field] = formatted
	case FieldExpiryDate:
		formatted := FormatExpiryDate(input)
		if len(formatted) > maxExpiryLen {
			return nil
		}
		f.values[field] = formatted
	default:
		f.values[field] = input
	}

	delete(f.fieldErrors, field)
	return nil
}

// BeginSubmit validates all twelve fields at once. With any error the form
// stays in Editing, the full error map is retained, and no processing
// starts. Otherwise the form enters Processing.
func (f *Form) BeginSubmit() error {
	if f.state != StateEditing {
		return ErrSubmissionInFlight
	}

	f.fieldErrors = Validate(f.values)
	if !f.fieldErrors.IsEmpty() {
		return ErrValidationFailed
	}

	f.state = StateProcessing
	return nil
}

func (f *Form) MarkSuccess() error {
	if f.state != StateProcessing {
		return ErrInvalidFormState
	}
	f.state = StateSuccess
	return nil
}

// Complete records the confirmation code. The simulated payment cannot fail
// once validation passed.
func (f *Form) Complete(code string) error {
	if f.state != StateSuccess {
		return ErrInvalidFormState
	}
	f.state = StateConfirmed
	f.confirmation = code
	return nil
}
