package kernel

import (
	"strings"

	"ordermanager/internal/pkg/errs"
)

// ErrUserIDIsNotConstructed indicates a UserID that was not created through
// NewUserID. The zero value is invalid by design.
var ErrUserIDIsNotConstructed = errs.NewValueIsRequiredError("UserID must be created via NewUserID")

// UserID identifies a customer or a barista. Every conditional mutation of an
// order record is guarded by the owning UserID, so the value must be present
// and stable; beyond non-emptiness the string is opaque to this core.
type UserID struct {
	value string
}

// NewUserID creates a UserID from its external string form.
// Returns an error if the string is empty or only whitespace.
func NewUserID(value string) (UserID, error) {
	if strings.TrimSpace(value) == "" {
		return UserID{}, errs.NewValueIsRequiredError("userId")
	}
	return UserID{value: value}, nil
}

// Validate ensures the UserID was created through NewUserID.
func (id UserID) Validate() error {
	if id.value == "" {
		return ErrUserIDIsNotConstructed
	}
	return nil
}

// String returns the external string form of the identifier.
func (id UserID) String() string {
	return id.value
}

// IsEqual compares two user identifiers by value.
func (id UserID) IsEqual(other UserID) bool {
	return id.value == other.value
}
