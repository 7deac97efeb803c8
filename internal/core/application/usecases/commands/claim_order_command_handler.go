package commands

import (
	"context"

	"ordermanager/internal/core/ports"
)

const (
	makeOrderMessage = "The barista has pressed the 'Make order' button." +
		" The order is now being made and a 'make order' event is emitted."
	unmakeOrderMessage = "The barista has pressed the 'Unmake order' button." +
		" The assignment is cleared and a 'make order' event is emitted."
)

// ClaimOrderCommandHandler runs the claim/make/unmake flow: a conditional
// write on the barista assignment followed by a MakeOrder event built from
// the written-back record.
//
// This flow never resumes a suspended caller; from the suspension's
// perspective it is fire-and-forget. Only the complete/cancel flow releases
// the waiting submission.
type ClaimOrderCommandHandler struct {
	store ports.OrderRecordStore
	bus   ports.EventBus
}

// NewClaimOrderCommandHandler creates a handler for barista actions.
func NewClaimOrderCommandHandler(store ports.OrderRecordStore, bus ports.EventBus) ClaimOrderCommandHandler {
	return ClaimOrderCommandHandler{
		store: store,
		bus:   bus,
	}
}

// Handle processes the barista action. The unmake path routes through the
// explicit assignment reset; the claim path assigns directly. Either way the
// emitted event carries the record as the store returned it after the write,
// not as the caller assumed it.
func (h *ClaimOrderCommandHandler) Handle(ctx context.Context, cmd ClaimOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var mutation ports.Mutation
	message := makeOrderMessage
	if cmd.IsUnmake() {
		mutation.ClearBarista = true
		message = unmakeOrderMessage
	} else {
		mutation.AssignBarista = cmd.Barista()
	}

	// Existence of the order is the only precondition; the state machine
	// rejects claims on terminal orders inside the store's critical section.
	updated, err := h.store.ConditionalUpdate(ctx, ports.NewOrderKey(cmd.OrderID()), ports.Predicate{}, mutation)
	if err != nil {
		return err
	}

	detail := MakeOrderDetail{
		OrderID: updated.ID().String(),
		UserID:  updated.UserID().String(),
		Message: message,
	}
	if barista := updated.Barista(); barista != nil {
		detail.BaristaUserID = barista.String()
	}

	return h.bus.Publish(ctx, MakeOrderEventType, detail)
}
