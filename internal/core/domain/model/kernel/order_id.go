package kernel

import (
	"strings"

	"ordermanager/internal/pkg/errs"
)

// ErrOrderIDIsNotConstructed indicates an OrderID that was not created through
// NewOrderID. The zero value is invalid by design.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError("OrderID must be created via NewOrderID")

// OrderID is the opaque unique identifier of an order. It is assigned by the
// submission path and treated as an uninterpreted string: the only invariant
// enforced here is that it is non-empty.
//
// OrderID is immutable and safe for concurrent use.
type OrderID struct {
	value string
}

// NewOrderID creates an OrderID from its external string form.
// Returns an error if the string is empty or only whitespace.
func NewOrderID(value string) (OrderID, error) {
	if strings.TrimSpace(value) == "" {
		return OrderID{}, errs.NewValueIsRequiredError("orderId")
	}
	return OrderID{value: value}, nil
}

// Validate ensures the OrderID was created through NewOrderID.
func (id OrderID) Validate() error {
	if id.value == "" {
		return ErrOrderIDIsNotConstructed
	}
	return nil
}

// String returns the external string form of the identifier.
func (id OrderID) String() string {
	return id.value
}

// IsEqual compares two order identifiers by value.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.value == other.value
}
