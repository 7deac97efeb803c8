package order

import (
	"fmt"

	"ordermanager/internal/pkg/errs"
)

// State represents the lifecycle state of an order.
// It implements a state machine with defined transitions so orders follow the
// coffee-shop workflow.
//
// State transitions:
//
//	Pending ──┬──> Making ──┬──> Completed
//	   │      │      │      │
//	   │      └──────┘      └──> Cancelled
//	   │    (reassignment)
//	   └────────────────────────> {Completed, Cancelled}
//
// Making -> Pending is reachable only through the explicit unmake action.
// Completed and Cancelled are final.
type State int

const (
	// Unknown represents an invalid or undefined state.
	// This value (0) helps catch uninitialized State values.
	Unknown State = iota

	// Pending is the initial state of an admitted order, waiting for a
	// barista to claim it.
	Pending

	// Making indicates a barista has claimed the order. A different barista
	// may reclaim it while in this state.
	Making

	// Completed indicates the order was fulfilled. Final.
	Completed

	// Cancelled indicates the order was abandoned. Final.
	Cancelled
)

func getStateStrings() map[State]string {
	return map[State]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Making:    "Making",
		Completed: "Completed",
		Cancelled: "Cancelled",
	}
}

func getValidStateStrings() map[State]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[State]string{
		Pending:   "Pending",
		Making:    "Making",
		Completed: "Completed",
		Cancelled: "Cancelled",
	}
}

// Validate checks if the State value is one of the defined lifecycle states.
// Unknown (0) and out-of-range values are invalid.
func (s State) Validate() error {
	if _, ok := getValidStateStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("state is invalid", fmt.Errorf("%d is not a valid state", s))
	}
	return nil
}

// String returns the human-readable name of the state. The returned values
// ("Pending", "Making", "Completed", "Cancelled") are part of the wire
// contract: terminal event types are derived from them.
func (s State) String() string {
	if str, ok := getStateStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the state is final.
func (s State) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// StartMaking transitions the state to Making.
//
// Valid transitions:
//   - Pending -> Making (initial claim)
//   - Making -> Making (reclaim by another barista)
func (s State) StartMaking() (State, error) {
	if s != Pending && s != Making {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"state is invalid",
			fmt.Errorf("%s is not a valid state to start making", s.String()),
		)
	}

	return Making, nil
}

// Unmake transitions the state back to Pending. This is the only path from
// Making back to Pending; it never happens implicitly.
func (s State) Unmake() (State, error) {
	if s != Making {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"state is invalid",
			fmt.Errorf("%s is not a valid state to unmake", s.String()),
		)
	}

	return Pending, nil
}

// Complete transitions the state to Completed.
//
// Valid transitions:
//   - Pending -> Completed
//   - Making -> Completed
func (s State) Complete() (State, error) {
	if s != Pending && s != Making {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"state is invalid",
			fmt.Errorf("%s is not a valid state to complete", s.String()),
		)
	}

	return Completed, nil
}

// Cancel transitions the state to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//   - Making -> Cancelled
func (s State) Cancel() (State, error) {
	if s != Pending && s != Making {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"state is invalid",
			fmt.Errorf("%s is not a valid state to cancel", s.String()),
		)
	}

	return Cancelled, nil
}

// ValidateCanHaveBarista validates consistency between order state and barista
// assignment.
//
// Rules:
//   - Pending orders must not have a barista assigned
//   - Making orders must have a barista assigned
//   - Terminal orders keep whatever assignment they ended with
func (s State) ValidateCanHaveBarista(barista bool) error {
	if barista && s == Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"state is invalid",
			fmt.Errorf("%s is not a valid state to have a barista", s.String()),
		)
	}

	if !barista && s == Making {
		return errs.NewValueIsInvalidErrorWithCause(
			"state is invalid",
			fmt.Errorf("%s is not a valid state to have no barista", s.String()),
		)
	}

	return nil
}
