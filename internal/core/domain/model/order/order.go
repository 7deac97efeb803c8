package order

import (
	"errors"
	"time"

	"ordermanager/internal/core/domain/model/kernel"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrDrinkOrderIsImmutable is returned when a drink change is attempted
	// after a barista already started on the order.
	ErrDrinkOrderIsImmutable = errors.New("drink order can only change while the order is Pending")
)

// Order is the aggregate root of the order workflow. It holds the customer's
// validated drink selection, the barista assignment, the lifecycle state, and
// the callback token that resumes the suspended submission when the order
// reaches a terminal state.
//
// Order maintains these invariants:
//   - identity (id, userId) is set at admission and never changes
//   - at most one live callback token exists while the order is suspended
//   - state transitions follow the State machine; Making -> Pending happens
//     only through the explicit Unmake method
//   - lastUpdated moves forward on every mutation
//
// Instances must be created through NewOrder (admission) or RestoreOrder
// (reconstruction from persistence).
type Order struct {
	id            kernel.OrderID
	userID        kernel.UserID
	drinkOrder    DrinkOrder
	state         State
	baristaID     *kernel.UserID
	callbackToken kernel.CallbackToken
	suspendedAt   time.Time
	lastUpdated   time.Time
	isConstructed bool
}

// NewOrder admits a new order. The drink order must already be validated
// against the menu, and the callback token must be freshly issued: admission
// and suspension are one step, an admitted order is always suspended.
func NewOrder(
	id kernel.OrderID,
	userID kernel.UserID,
	drinkOrder DrinkOrder,
	callbackToken kernel.CallbackToken,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := userID.Validate(); err != nil {
		return nil, err
	}
	if drinkOrder.IsZero() {
		return nil, ErrOrderIsNotConstructed
	}
	if callbackToken.IsZero() {
		return nil, ErrOrderIsNotConstructed
	}

	now := time.Now().UTC()
	return &Order{
		id:            id,
		userID:        userID,
		drinkOrder:    drinkOrder,
		state:         Pending,
		callbackToken: callbackToken,
		suspendedAt:   now,
		lastUpdated:   now,
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an order from persistence. It re-validates the
// state value and the state/barista consistency so a corrupted row cannot
// produce an aggregate that violates the workflow invariants.
func RestoreOrder(
	id kernel.OrderID,
	userID kernel.UserID,
	drinkOrder DrinkOrder,
	state State,
	baristaID *kernel.UserID,
	callbackToken kernel.CallbackToken,
	suspendedAt time.Time,
	lastUpdated time.Time,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := userID.Validate(); err != nil {
		return nil, err
	}
	if err := state.Validate(); err != nil {
		return nil, err
	}
	if err := state.ValidateCanHaveBarista(baristaID != nil); err != nil {
		return nil, err
	}
	if baristaID != nil {
		if err := baristaID.Validate(); err != nil {
			return nil, err
		}
	}

	return &Order{
		id:            id,
		userID:        userID,
		drinkOrder:    drinkOrder,
		state:         state,
		baristaID:     baristaID,
		callbackToken: callbackToken,
		suspendedAt:   suspendedAt,
		lastUpdated:   lastUpdated,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order was created through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// UserID returns the identity of the customer that submitted the order.
func (o *Order) UserID() kernel.UserID {
	return o.userID
}

// DrinkOrder returns the validated drink selection.
func (o *Order) DrinkOrder() DrinkOrder {
	return o.drinkOrder
}

// State returns the current lifecycle state.
func (o *Order) State() State {
	return o.state
}

// Barista returns the assigned barista's identity, nil if unclaimed.
func (o *Order) Barista() *kernel.UserID {
	return o.baristaID
}

// CallbackToken returns the token bound to the suspended submission.
// The zero token means the order is not suspended.
func (o *Order) CallbackToken() kernel.CallbackToken {
	return o.callbackToken
}

// LastUpdated returns the time of the most recent mutation.
func (o *Order) LastUpdated() time.Time {
	return o.lastUpdated
}

// SuspendedAt returns the time the submission was admitted and suspended.
func (o *Order) SuspendedAt() time.Time {
	return o.suspendedAt
}

// IsSuspended reports whether a caller is still waiting on this order.
func (o *Order) IsSuspended() bool {
	return !o.callbackToken.IsZero() && !o.state.IsTerminal()
}

// UpdateDrinkOrder replaces the drink selection. Allowed only while the order
// is Pending; once a barista starts making the drink the selection is fixed.
func (o *Order) UpdateDrinkOrder(drinkOrder DrinkOrder) error {
	if o.state != Pending {
		return ErrDrinkOrderIsImmutable
	}
	if drinkOrder.IsZero() {
		return ErrOrderIsNotConstructed
	}

	o.drinkOrder = drinkOrder
	o.touch()
	return nil
}

// AssignBarista records a barista claim and moves the order to Making.
// Reassignment from Making is allowed; any barista may claim an order, there
// is no ownership precondition on the worker side.
func (o *Order) AssignBarista(baristaID kernel.UserID) error {
	if err := baristaID.Validate(); err != nil {
		return err
	}

	newState, err := o.state.StartMaking()
	if err != nil {
		return err
	}

	o.state = newState
	o.baristaID = &baristaID
	o.touch()
	return nil
}

// Unmake clears the barista assignment and returns the order to Pending.
// This is the only way back from Making.
func (o *Order) Unmake() error {
	newState, err := o.state.Unmake()
	if err != nil {
		return err
	}

	o.state = newState
	o.baristaID = nil
	o.touch()
	return nil
}

// Complete moves the order to the Completed terminal state.
func (o *Order) Complete() error {
	newState, err := o.state.Complete()
	if err != nil {
		return err
	}

	o.state = newState
	o.touch()
	return nil
}

// Cancel moves the order to the Cancelled terminal state.
func (o *Order) Cancel() error {
	newState, err := o.state.Cancel()
	if err != nil {
		return err
	}

	o.state = newState
	o.touch()
	return nil
}

func (o *Order) touch() {
	o.lastUpdated = time.Now().UTC()
}
