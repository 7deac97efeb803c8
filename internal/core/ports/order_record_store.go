package ports

import (
	"context"
	"fmt"

	"ordermanager/internal/core/domain/model/kernel"
	"ordermanager/internal/core/domain/model/order"
	"ordermanager/internal/pkg/errs"
)

// OrderRecordType is the partition component of every order record key.
// One consistent composite-key scheme is used by all flows.
const OrderRecordType = "orders"

// RecordKey addresses one order record as (recordType, orderId).
type RecordKey struct {
	RecordType string
	OrderID    kernel.OrderID
}

// NewOrderKey builds the record key for an order.
func NewOrderKey(orderID kernel.OrderID) RecordKey {
	return RecordKey{RecordType: OrderRecordType, OrderID: orderID}
}

// Predicate is the precondition of a conditional update. All set clauses must
// hold against the current record for the mutation to apply; evaluation
// happens inside the store's per-record critical section.
type Predicate struct {
	// OwnerIs requires the record's owning userId to equal this identity.
	// Guards customer-initiated mutations against identity collisions.
	OwnerIs *kernel.UserID

	// IsSuspended requires a live callback token on the record.
	// Guards resumption-eligible mutations.
	IsSuspended bool

	// StateIn requires the current lifecycle state to be one of these.
	StateIn []order.State
}

// Evaluate checks every clause against the record. It returns a
// PreconditionFailedError naming the first clause that does not hold, nil if
// the whole predicate holds.
func (p Predicate) Evaluate(o *order.Order) error {
	if p.OwnerIs != nil && !p.OwnerIs.IsEqual(o.UserID()) {
		return errs.NewPreconditionFailedError(o.ID().String(), "userId matches record owner")
	}

	if p.IsSuspended && o.CallbackToken().IsZero() {
		return errs.NewPreconditionFailedError(o.ID().String(), "order has a live callback token")
	}

	if len(p.StateIn) > 0 {
		matched := false
		for _, s := range p.StateIn {
			if o.State() == s {
				matched = true
				break
			}
		}
		if !matched {
			return errs.NewPreconditionFailedErrorWithCause(
				o.ID().String(),
				fmt.Sprintf("state in %v", p.StateIn),
				fmt.Errorf("state is %s", o.State()),
			)
		}
	}

	return nil
}

// Mutation is the change set of a conditional update. Changes are applied
// through the aggregate's methods, so the state machine stays enforced even
// when the caller's predicate was looser than the transition rules.
type Mutation struct {
	// DrinkOrder replaces the drink selection (Pending orders only).
	DrinkOrder *order.DrinkOrder

	// AssignBarista records a barista claim and moves the order to Making.
	AssignBarista *kernel.UserID

	// ClearBarista performs the explicit unmake: assignment cleared, state
	// back to Pending.
	ClearBarista bool

	// TransitionTo moves the order to a terminal state
	// (Completed or Cancelled).
	TransitionTo *order.State
}

// Apply executes the change set against the record. A transition the state
// machine forbids is reported as a PreconditionFailedError: from the caller's
// perspective it is the same outcome as a failed predicate clause.
func (m Mutation) Apply(o *order.Order) error {
	if m.DrinkOrder != nil {
		if err := o.UpdateDrinkOrder(*m.DrinkOrder); err != nil {
			return errs.NewPreconditionFailedErrorWithCause(
				o.ID().String(), "drink order is mutable", err)
		}
	}

	if m.ClearBarista {
		if err := o.Unmake(); err != nil {
			return errs.NewPreconditionFailedErrorWithCause(
				o.ID().String(), "order can be unmade", err)
		}
	}

	if m.AssignBarista != nil {
		if err := o.AssignBarista(*m.AssignBarista); err != nil {
			return errs.NewPreconditionFailedErrorWithCause(
				o.ID().String(), "order can be claimed", err)
		}
	}

	if m.TransitionTo != nil {
		var err error
		switch *m.TransitionTo {
		case order.Completed:
			err = o.Complete()
		case order.Cancelled:
			err = o.Cancel()
		default:
			return errs.NewValueIsInvalidErrorWithCause("transitionTo",
				fmt.Errorf("%s is not a terminal state", m.TransitionTo.String()))
		}
		if err != nil {
			return errs.NewPreconditionFailedErrorWithCause(
				o.ID().String(), "state allows a terminal transition", err)
		}
	}

	return nil
}

// OrderRecordStore is the persistence contract for order records. Mutable
// fields are protected per record by conditional writes; there is no global
// lock across orders.
type OrderRecordStore interface {
	// Get retrieves the record for the key.
	// Returns ObjectNotFoundError if no record exists.
	Get(ctx context.Context, key RecordKey) (*order.Order, error)

	// Create persists a brand new record. A concurrent create for the same
	// key is reported as a PreconditionFailedError, never overwritten.
	Create(ctx context.Context, record *order.Order) error

	// ConditionalUpdate atomically evaluates the predicate against the
	// current record, applies the mutation if it holds, and returns the
	// post-update record (read-after-write, no second round trip).
	// A failed predicate is a PreconditionFailedError; a missing record is
	// an ObjectNotFoundError. Retrying is always safe: the write either
	// reconfirms or correctly fails on conflict.
	ConditionalUpdate(ctx context.Context, key RecordKey, predicate Predicate, mutation Mutation) (*order.Order, error)
}
