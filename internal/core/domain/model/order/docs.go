// Package order provides the domain model of a coffee-shop order and its
// lifecycle. It implements the Order aggregate root together with the State
// machine that enforces valid transitions.
//
// The package includes:
//   - Order: the aggregate root holding identity, drink selection, barista
//     assignment, lifecycle state, and the suspension callback token
//   - State: the lifecycle state machine
//   - DrinkOrder: the validated drink and modifier selection
//
// Key business rules:
//   - An admitted order is always suspended: admission binds a callback token
//   - State follows Pending -> Making -> {Completed, Cancelled}
//   - Making -> Pending is reachable only through the explicit unmake action
//   - Any barista may claim or reclaim a non-terminal order
//   - The drink selection is frozen once a barista starts making it
package order
