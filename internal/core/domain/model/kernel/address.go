package kernel

import (
	"commerce/internal/pkg/errs"
)

// ErrShippingAddressIsNotConstructed is returned when validating a zero-value
// ShippingAddress that bypassed NewShippingAddress.
var ErrShippingAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"ShippingAddress must be created via NewShippingAddress",
)

const (
	shippingAddressMinLength = 5
	shippingAddressMaxLength = 255
)

// ShippingAddress is a value object holding a validated delivery address.
// The address length must be between 5 and 255 characters.
type ShippingAddress struct {
	value string

	isConstructed bool
}

// NewShippingAddress creates a validated ShippingAddress.
// Returns ValueIsOutOfRangeError when the length is outside 5..255.
func NewShippingAddress(value string) (ShippingAddress, error) {
	if len(value) < shippingAddressMinLength || len(value) > shippingAddressMaxLength {
		return ShippingAddress{}, errs.NewValueIsOutOfRangeError(
			"shipping_address length",
			len(value),
			shippingAddressMinLength,
			shippingAddressMaxLength,
		)
	}

	return ShippingAddress{
		value:         value,
		isConstructed: true,
	}, nil
}

// String returns the address text.
func (a ShippingAddress) String() string {
	return a.value
}

// IsEqual reports whether two addresses hold the same text.
func (a ShippingAddress) IsEqual(other ShippingAddress) bool {
	return a.value == other.value
}

// Validate returns ErrShippingAddressIsNotConstructed for the zero value.
func (a ShippingAddress) Validate() error {
	if !a.isConstructed {
		return ErrShippingAddressIsNotConstructed
	}
	return nil
}
