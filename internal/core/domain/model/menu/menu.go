// Package menu models the read-only menu snapshot supplied by the
// configuration source and the validation of drink orders against it.
// The snapshot is consumed as-is; this core never mutates menu content.
package menu

// Snapshot is the externally supplied menu. The JSON shape mirrors the
// configuration record stored under the "menu" key.
type Snapshot struct {
	Items []Item `json:"value"`
}

// Item is one orderable drink with its modifier categories.
type Item struct {
	Drink     string          `json:"drink"`
	Available bool            `json:"available"`
	Icon      string          `json:"icon,omitempty"`
	Modifiers []ModifierGroup `json:"modifiers"`
}

// ModifierGroup is one modifier category with its allowed options.
type ModifierGroup struct {
	Options []string `json:"Options"`
}

// Find returns the menu item for the given drink name.
func (s Snapshot) Find(drink string) (Item, bool) {
	for _, item := range s.Items {
		if item.Drink == drink {
			return item, true
		}
	}
	return Item{}, false
}

// Allows reports whether the requested drink and modifiers are valid against
// this snapshot. It fails closed: an unknown drink is invalid, and a single
// disallowed modifier invalidates the whole order. An empty modifier list is
// always valid. A modifier is allowed when any modifier category of the drink
// lists it among its options.
//
// Pure and side-effect free.
func (s Snapshot) Allows(drink string, modifiers []string) bool {
	item, ok := s.Find(drink)
	if !ok {
		return false
	}

	for _, modifier := range modifiers {
		if !item.allowsModifier(modifier) {
			return false
		}
	}
	return true
}

func (i Item) allowsModifier(modifier string) bool {
	for _, group := range i.Modifiers {
		for _, option := range group.Options {
			if option == modifier {
				return true
			}
		}
	}
	return false
}
