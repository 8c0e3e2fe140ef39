package kernel

import (
	"regexp"

	"commerce/internal/pkg/errs"
)

// ErrPhoneIsNotConstructed is returned when validating a zero-value Phone
// that bypassed NewPhone.
var ErrPhoneIsNotConstructed = errs.NewValueIsRequiredError("Phone must be created via NewPhone")

// phonePattern accepts international numbers: a leading plus, a non-zero
// first digit, and 10 to 15 digits total.
var phonePattern = regexp.MustCompile(`^\+[1-9]\d{9,14}$`)

// Phone is a value object holding a contact phone number in international
// format.
type Phone struct {
	value string

	isConstructed bool
}

// NewPhone creates a validated Phone.
// Returns ValueIsRequiredError for an empty string and ValueIsInvalidError
// when the value does not match the international format.
func NewPhone(value string) (Phone, error) {
	if value == "" {
		return Phone{}, errs.NewValueIsRequiredError("phone")
	}
	if !phonePattern.MatchString(value) {
		return Phone{}, errs.NewValueIsInvalidError("phone")
	}

	return Phone{
		value:         value,
		isConstructed: true,
	}, nil
}

// String returns the phone number text.
func (p Phone) String() string {
	return p.value
}

// IsEqual reports whether two phones hold the same number.
func (p Phone) IsEqual(other Phone) bool {
	return p.value == other.value
}

// Validate returns ErrPhoneIsNotConstructed for the zero value.
func (p Phone) Validate() error {
	if !p.isConstructed {
		return ErrPhoneIsNotConstructed
	}
	return nil
}
