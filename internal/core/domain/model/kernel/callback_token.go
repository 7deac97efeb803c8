package kernel

import (
	"strings"

	"ordermanager/internal/pkg/errs"
)

// CallbackToken is the opaque handle that lets a later unit of work resume a
// specific earlier-suspended one. Tokens are minted by the callback registry;
// the domain only stores and transports them.
//
// Unlike OrderID and UserID, the zero value is meaningful: it represents
// "no live token" on an order record that is not suspended.
type CallbackToken struct {
	value string
}

// NewCallbackToken wraps a minted token string.
// Returns an error if the string is empty or only whitespace.
func NewCallbackToken(value string) (CallbackToken, error) {
	if strings.TrimSpace(value) == "" {
		return CallbackToken{}, errs.NewValueIsRequiredError("callbackToken")
	}
	return CallbackToken{value: value}, nil
}

// IsZero reports whether the token is absent.
func (t CallbackToken) IsZero() bool {
	return t.value == ""
}

// String returns the external string form of the token.
func (t CallbackToken) String() string {
	return t.value
}

// IsEqual compares two tokens by value.
func (t CallbackToken) IsEqual(other CallbackToken) bool {
	return t.value == other.value
}
