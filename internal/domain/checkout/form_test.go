//go:build unit

package checkout_test

import (
	"testing"
	"time"

	"luxe-escape/internal/domain/checkout"
	"luxe-escape/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var formNow = time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

func newEditingForm(t *testing.T) *checkout.Form {
	t.Helper()
	return checkout.NewForm(builder.NewDraftBuilder().Build(), formNow)
}

func fillValid(t *testing.T, form *checkout.Form) {
	t.Helper()
	for field, value := range builder.ValidFormValues() {
		require.NoError(t, form.SetField(field, value))
	}
}

func TestNewForm(t *testing.T) {
	form := newEditingForm(t)

	assert.Equal(t, checkout.StateEditing, form.State())
	assert.Empty(t, form.Confirmation())
	assert.True(t, form.Errors().IsEmpty())

	values := form.Values()
	assert.Len(t, values, 12)
	for _, v := range values {
		assert.Empty(t, v)
	}
}

func TestSetField(t *testing.T) {
	t.Run("plain fields store input verbatim", func(t *testing.T) {
		form := newEditingForm(t)
		require.NoError(t, form.SetField(checkout.FieldFirstName, "Ava"))
		assert.Equal(t, "Ava", form.Value(checkout.FieldFirstName))
	})

	t.Run("unknown field is rejected", func(t *testing.T) {
		form := newEditingForm(t)
		err := form.SetField("ssn", "000")
		require.ErrorIs(t, err, checkout.ErrUnknownField)
	})

	t.Run("card number is formatted live", func(t *testing.T) {
		form := newEditingForm(t)
		require.NoError(t, form.SetField(checkout.FieldCardNumber, "424242424242"))
		assert.Equal(t, "4242 4242 4242", form.Value(checkout.FieldCardNumber))
	})

	t.Run("card number past 16 digits keeps the previous value", func(t *testing.T) {
		form := newEditingForm(t)
		require.NoError(t, form.SetField(checkout.FieldCardNumber, "4242424242424242"))
		require.NoError(t, form.SetField(checkout.FieldCardNumber, "42424242424242421"))
		assert.Equal(t, "4242 4242 4242 4242", form.Value(checkout.FieldCardNumber))
	})

	t.Run("expiry is formatted live and capped", func(t *testing.T) {
		form := newEditingForm(t)
		require.NoError(t, form.SetField(checkout.FieldExpiryDate, "1229"))
		assert.Equal(t, "12/29", form.Value(checkout.FieldExpiryDate))
	})

	t.Run("editing clears that field's error", func(t *testing.T) {
		form := newEditingForm(t)
		require.ErrorIs(t, form.BeginSubmit(), checkout.ErrValidationFailed)
		require.Contains(t, form.Errors(), checkout.FieldEmail)
		require.Contains(t, form.Errors(), checkout.FieldPhone)

		require.NoError(t, form.SetField(checkout.FieldEmail, "ava@example.com"))
		assert.NotContains(t, form.Errors(), checkout.FieldEmail)
		// untouched fields keep their errors
		assert.Contains(t, form.Errors(), checkout.FieldPhone)
	})

	t.Run("edits are refused once processing", func(t *testing.T) {
		form := newEditingForm(t)
		fillValid(t, form)
		require.NoError(t, form.BeginSubmit())

		err := form.SetField(checkout.FieldFirstName, "Eve")
		require.ErrorIs(t, err, checkout.ErrSubmissionInFlight)
	})
}

func TestSubmitLifecycle(t *testing.T) {
	t.Run("invalid form stays editing with the full error map", func(t *testing.T) {
		form := newEditingForm(t)
		require.NoError(t, form.SetField(checkout.FieldFirstName, "Ava"))

		require.ErrorIs(t, form.BeginSubmit(), checkout.ErrValidationFailed)
		assert.Equal(t, checkout.StateEditing, form.State())
		assert.Len(t, form.Errors(), 11)
	})

	t.Run("valid form walks editing to confirmed", func(t *testing.T) {
		form := newEditingForm(t)
		fillValid(t, form)

		require.NoError(t, form.BeginSubmit())
		assert.Equal(t, checkout.StateProcessing, form.State())

		require.NoError(t, form.MarkSuccess())
		assert.Equal(t, checkout.StateSuccess, form.State())

		require.NoError(t, form.Complete("HTL4G7K2M9X"))
		assert.Equal(t, checkout.StateConfirmed, form.State())
		assert.Equal(t, "HTL4G7K2M9X", form.Confirmation())
	})

	t.Run("resubmit while processing is refused", func(t *testing.T) {
		form := newEditingForm(t)
		fillValid(t, form)
		require.NoError(t, form.BeginSubmit())

		require.ErrorIs(t, form.BeginSubmit(), checkout.ErrSubmissionInFlight)
	})

	t.Run("out of order transitions are refused", func(t *testing.T) {
		form := newEditingForm(t)
		require.ErrorIs(t, form.MarkSuccess(), checkout.ErrInvalidFormState)
		require.ErrorIs(t, form.Complete("HTL000000000"), checkout.ErrInvalidFormState)
	})
}
