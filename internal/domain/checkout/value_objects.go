package checkout

import (
	"regexp"
	"strings"
	"unicode"
)

const (
	FieldFirstName  = "firstName"
	FieldLastName   = "lastName"
	FieldEmail      = "email"
	FieldPhone      = "phone"
	FieldAddress    = "address"
	FieldCity       = "city"
	FieldCountry    = "country"
	FieldZipCode    = "zipCode"
	FieldCardNumber = "cardNumber"
	FieldExpiryDate = "expiryDate"
	FieldCVV        = "cvv"
	FieldCardName   = "cardName"
)

// RequiredFields lists all twelve form fields in display order. Every one is
// required at submit time.
var RequiredFields = []string{
	FieldFirstName, FieldLastName, FieldEmail, FieldPhone,
	FieldAddress, FieldCity, FieldCountry, FieldZipCode,
	FieldCardNumber, FieldExpiryDate, FieldCVV, FieldCardName,
}

var (
	emailPattern  = regexp.MustCompile(`\S+@\S+\.\S+`)
	expiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cvvPattern    = regexp.MustCompile(`^\d{3,4}$`)
	nonDigits     = regexp.MustCompile(`\D`)
)

// FieldErrors maps canonical field names to inline messages. Submission
// surfaces every error at once, not first-error-only.
type FieldErrors map[string]string

func (e FieldErrors) IsEmpty() bool {
	return len(e) == 0
}

// Validate runs the submit-time rule set over all twelve fields.
// Format rules only fire for non-empty values; empty always reads as
// "<field> is required".
func Validate(values map[string]string) FieldErrors {
	errs := FieldErrors{}

	for _, field := range RequiredFields {
		if strings.TrimSpace(values[field]) == "" {
			errs[field] = HumanizeField(field) + " is required"
		}
	}

	if v := values[FieldEmail]; v != "" && !emailPattern.MatchString(v) {
		errs[FieldEmail] = "Email is invalid"
	}
	if v := values[FieldCardNumber]; v != "" && len(strings.ReplaceAll(v, " ", "")) < 16 {
		errs[FieldCardNumber] = "Card number is invalid"
	}
	if v := values[FieldExpiryDate]; v != "" && !expiryPattern.MatchString(v) {
		errs[FieldExpiryDate] = "Expiry date is invalid"
	}
	if v := values[FieldCVV]; v != "" && !cvvPattern.MatchString(v) {
		errs[FieldCVV] = "CVV is invalid"
	}

	return errs
}

// HumanizeField turns camelCase into space-separated lowercase:
// "zipCode" -> "zip code".
func HumanizeField(field string) string {
	var b strings.Builder
	for _, r := range field {
		if unicode.IsUpper(r) {
			b.WriteByte(' ')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FormatCardNumber strips non-digits and re-inserts a space every 4 digits.
func FormatCardNumber(input string) string {
	digits := nonDigits.ReplaceAllString(input, "")
	if digits == "" {
		return ""
	}
	var groups []string
	for i := 0; i < len(digits); i += 4 {
		end := i + 4
		if end > len(digits) {
			end = len(digits)
		}
		groups = append(groups, digits[i:end])
	}
	return strings.Join(groups, " ")
}

// FormatExpiryDate strips non-digits and inserts "/" after the second digit.
func FormatExpiryDate(input string) string {
	digits := nonDigits.ReplaceAllString(input, "")
	if len(digits) < 2 {
		return digits
	}
	if len(digits) > 4 {
		digits = digits[:4]
	}
	return digits[:2] + "/" + digits[2:]
}

const (
	// 16 digits + 3 separators
	maxCardNumberLen = 19
	maxExpiryLen     = 5
)
