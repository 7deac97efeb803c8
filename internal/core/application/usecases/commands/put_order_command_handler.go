package commands

import (
	"context"
	"errors"

	"ordermanager/internal/core/domain/model/kernel"
	"ordermanager/internal/core/domain/model/order"
	"ordermanager/internal/core/ports"
	"ordermanager/internal/pkg/errs"
)

// PutOrderResult is the customer-visible outcome of a submission.
// A rejection is a normal negative outcome, not an error: no record was
// created and no callback token was issued.
type PutOrderResult struct {
	// Admitted reports whether the order passed menu validation and was
	// persisted.
	Admitted bool

	// CallbackToken is the token the admitted submission is suspended on.
	// For an idempotent resubmission this is the record's already-live
	// token, not a second one.
	CallbackToken kernel.CallbackToken
}

// PutOrderCommandHandler runs the put-order flow: fetch menu, validate,
// admit and suspend. On success the order record exists with a live callback
// token; the caller then waits on that token until the complete/cancel flow
// resumes it.
type PutOrderCommandHandler struct {
	store     ports.OrderRecordStore
	menuSrc   ports.MenuSource
	callbacks ports.CallbackRegistry
}

// NewPutOrderCommandHandler creates a handler for order submissions.
func NewPutOrderCommandHandler(
	store ports.OrderRecordStore,
	menuSrc ports.MenuSource,
	callbacks ports.CallbackRegistry,
) PutOrderCommandHandler {
	return PutOrderCommandHandler{
		store:     store,
		menuSrc:   menuSrc,
		callbacks: callbacks,
	}
}

// Handle processes the submission.
//
// Menu validation failure terminates the flow immediately: no record is
// created, no token issued, and the rejection is reported as a non-error
// result. A conditional-write conflict (foreign owner, terminal state,
// concurrent create) is returned as a PreconditionFailedError: the caller
// must resubmit with a fresh orderId or confirm ownership, this core never
// retries for them.
func (h *PutOrderCommandHandler) Handle(ctx context.Context, cmd PutOrderCommand) (PutOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return PutOrderResult{}, err
	}

	snapshot, err := h.menuSrc.GetMenu(ctx)
	if err != nil {
		return PutOrderResult{}, err
	}

	drinkOrder := cmd.DrinkOrder()
	if !snapshot.Allows(drinkOrder.Drink(), drinkOrder.Modifiers()) {
		return PutOrderResult{Admitted: false}, nil
	}

	key := ports.NewOrderKey(cmd.OrderID())
	existing, err := h.store.Get(ctx, key)
	switch {
	case err == nil:
		return h.resubmit(ctx, key, cmd, existing)
	case errors.Is(err, errs.ErrObjectNotFound):
		return h.admit(ctx, cmd)
	default:
		return PutOrderResult{}, err
	}
}

// admit creates the record bound to a freshly issued token. Losing a
// concurrent create race surfaces as a conflict; the extra token is
// discarded so no orphan suspension leaks.
func (h *PutOrderCommandHandler) admit(ctx context.Context, cmd PutOrderCommand) (PutOrderResult, error) {
	token, err := h.callbacks.Issue(ctx)
	if err != nil {
		return PutOrderResult{}, err
	}

	record, err := order.NewOrder(cmd.OrderID(), cmd.UserID(), cmd.DrinkOrder(), token)
	if err != nil {
		_ = h.callbacks.Discard(ctx, token)
		return PutOrderResult{}, err
	}

	if err := h.store.Create(ctx, record); err != nil {
		_ = h.callbacks.Discard(ctx, token)
		return PutOrderResult{}, err
	}

	return PutOrderResult{Admitted: true, CallbackToken: token}, nil
}

// resubmit updates an existing record conditioned on the submitting identity
// still owning it. The record's live token is reused: one suspension per
// order, never two.
func (h *PutOrderCommandHandler) resubmit(
	ctx context.Context,
	key ports.RecordKey,
	cmd PutOrderCommand,
	existing *order.Order,
) (PutOrderResult, error) {
	if err := existing.Validate(); err != nil {
		return PutOrderResult{}, err
	}

	userID := cmd.UserID()
	drinkOrder := cmd.DrinkOrder()
	updated, err := h.store.ConditionalUpdate(ctx, key,
		ports.Predicate{
			OwnerIs:     &userID,
			IsSuspended: true,
			StateIn:     []order.State{order.Pending},
		},
		ports.Mutation{DrinkOrder: &drinkOrder},
	)
	if err != nil {
		return PutOrderResult{}, err
	}

	return PutOrderResult{Admitted: true, CallbackToken: updated.CallbackToken()}, nil
}
