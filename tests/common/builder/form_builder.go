//go:build unit || e2e

package builder

import "luxe-escape/internal/domain/checkout"

// ValidFormValues returns a complete, valid set of the twelve checkout
// fields. Tests blank or corrupt individual entries from here.
func ValidFormValues() map[string]string {
	return map[string]string{
		checkout.FieldFirstName:  "Ava",
		checkout.FieldLastName:   "Stone",
		checkout.FieldEmail:      "ava.stone@example.com",
		checkout.FieldPhone:      "+1 555 0100",
		checkout.FieldAddress:    "12 Seaside Blvd",
		checkout.FieldCity:       "Santorini",
		checkout.FieldCountry:    "Greece",
		checkout.FieldZipCode:    "84700",
		checkout.FieldCardNumber: "4242 4242 4242 4242",
		checkout.FieldExpiryDate: "12/29",
		checkout.FieldCVV:        "123",
		checkout.FieldCardName:   "AVA STONE",
	}
}
