package order

import (
	"slices"

	"ordermanager/internal/pkg/errs"
)

// DrinkOrder is the validated drink and modifier selection of an order.
// It is a value object: immutable once constructed, compared by value.
type DrinkOrder struct {
	drink     string
	modifiers []string
}

// NewDrinkOrder creates a DrinkOrder. The drink name is required; the modifier
// list may be empty. Modifier strings are stored as received, matching is the
// menu snapshot's concern.
func NewDrinkOrder(drink string, modifiers []string) (DrinkOrder, error) {
	if drink == "" {
		return DrinkOrder{}, errs.NewValueIsRequiredError("drink")
	}
	return DrinkOrder{
		drink:     drink,
		modifiers: slices.Clone(modifiers),
	}, nil
}

// Drink returns the drink name.
func (d DrinkOrder) Drink() string {
	return d.drink
}

// Modifiers returns a copy of the requested modifiers.
func (d DrinkOrder) Modifiers() []string {
	return slices.Clone(d.modifiers)
}

// IsZero reports whether the drink order is absent (not yet admitted).
func (d DrinkOrder) IsZero() bool {
	return d.drink == ""
}

// IsEqual compares two drink orders by value, modifiers order-sensitive.
func (d DrinkOrder) IsEqual(other DrinkOrder) bool {
	return d.drink == other.drink && slices.Equal(d.modifiers, other.modifiers)
}
