//go:build unit

package checkout_test

import (
	"testing"

	"luxe-escape/internal/domain/checkout"
	"luxe-escape/tests/common/builder"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	t.Run("complete valid form has no errors", func(t *testing.T) {
		errs := checkout.Validate(builder.ValidFormValues())
		assert.True(t, errs.IsEmpty())
	})

	t.Run("empty form reports all twelve fields", func(t *testing.T) {
		errs := checkout.Validate(map[string]string{})
		assert.Len(t, errs, 12)
		assert.Equal(t, "first name is required", errs[checkout.FieldFirstName])
		assert.Equal(t, "zip code is required", errs[checkout.FieldZipCode])
		assert.Equal(t, "cvv is required", errs[checkout.FieldCVV])
	})

	t.Run("whitespace-only counts as missing", func(t *testing.T) {
		values := builder.ValidFormValues()
		values[checkout.FieldCity] = "   "
		errs := checkout.Validate(values)
		assert.Equal(t, "city is required", errs[checkout.FieldCity])
	})

	t.Run("format rules", func(t *testing.T) {
		cases := []struct {
			name    string
			field   string
			value   string
			message string
		}{
			{name: "email without domain", field: checkout.FieldEmail, value: "ava@", message: "Email is invalid"},
			{name: "email without at sign", field: checkout.FieldEmail, value: "ava.example.com", message: "Email is invalid"},
			{name: "short card number", field: checkout.FieldCardNumber, value: "4242 4242 4242", message: "Card number is invalid"},
			{name: "expiry month 00", field: checkout.FieldExpiryDate, value: "00/29", message: "Expiry date is invalid"},
			{name: "expiry month 13", field: checkout.FieldExpiryDate, value: "13/29", message: "Expiry date is invalid"},
			{name: "expiry missing slash", field: checkout.FieldExpiryDate, value: "1229", message: "Expiry date is invalid"},
			{name: "cvv two digits", field: checkout.FieldCVV, value: "12", message: "CVV is invalid"},
			{name: "cvv five digits", field: checkout.FieldCVV, value: "12345", message: "CVV is invalid"},
			{name: "cvv letters", field: checkout.FieldCVV, value: "12a", message: "CVV is invalid"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				values := builder.ValidFormValues()
				values[tc.field] = tc.value
				errs := checkout.Validate(values)
				assert.Equal(t, tc.message, errs[tc.field])
			})
		}
	})

	t.Run("format rules accept valid inputs", func(t *testing.T) {
		cases := []struct {
			name  string
			field string
			value string
		}{
			{name: "16 digit card with spaces", field: checkout.FieldCardNumber, value: "4242 4242 4242 4242"},
			{name: "expiry january", field: checkout.FieldExpiryDate, value: "01/30"},
			{name: "expiry december", field: checkout.FieldExpiryDate, value: "12/30"},
			{name: "cvv three digits", field: checkout.FieldCVV, value: "000"},
			{name: "cvv four digits", field: checkout.FieldCVV, value: "1234"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				values := builder.ValidFormValues()
				values[tc.field] = tc.value
				errs := checkout.Validate(values)
				assert.NotContains(t, errs, tc.field)
			})
		}
	})

	t.Run("required takes precedence over format", func(t *testing.T) {
		values := builder.ValidFormValues()
		values[checkout.FieldEmail] = ""
		errs := checkout.Validate(values)
		assert.Equal(t, "email is required", errs[checkout.FieldEmail])
	})
}

func TestHumanizeField(t *testing.T) {
	cases := []struct {
		in  string
		out string
	}{
		{in: "firstName", out: "first name"},
		{in: "zipCode", out: "zip code"},
		{in: "cardNumber", out: "card number"},
		{in: "cvv", out: "cvv"},
		{in: "email", out: "email"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.out, checkout.HumanizeField(tc.in))
	}
}

func TestFormatCardNumber(t *testing.T) {
	cases := []struct {
		name string
		in   string
		out  string
	}{
		{name: "groups of four", in: "4242424242424242", out: "4242 4242 4242 4242"},
		{name: "partial group", in: "42424", out: "4242 4"},
		{name: "strips letters and punctuation", in: "4242-4242 abc 42", out: "4242 4242 42"},
		{name: "empty input", in: "", out: ""},
		{name: "non-digits only", in: "abc", out: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.out, checkout.FormatCardNumber(tc.in))
		})
	}
}

func TestFormatExpiryDate(t *testing.T) {
	cases := []struct {
		name string
		in   string
		out  string
	}{
		{name: "single digit stays raw", in: "1", out: "1"},
		{name: "two digits gain a slash", in: "12", out: "12/"},
		{name: "full value", in: "1229", out: "12/29"},
		{name: "already slashed", in: "12/29", out: "12/29"},
		{name: "extra digits are dropped", in: "122934", out: "12/29"},
		{name: "non-digits stripped first", in: "1a2b", out: "12/"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.out, checkout.FormatExpiryDate(tc.in))
		})
	}
}
