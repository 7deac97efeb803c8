package commands

import (
	"context"

	"ordermanager/internal/core/domain/model/order"
	"ordermanager/internal/core/ports"
	"ordermanager/internal/pkg/errs"
)

const (
	completeOrderMessage = "The order has been completed and handed to the customer."
	cancelOrderMessage   = "The order has been cancelled before completion."
)

// emptySuccessPayload is what the resumed submission receives: the terminal
// outcome travels on the event bus, not through the callback.
var emptySuccessPayload = []byte("{}")

// CloseOrderCommandHandler runs the complete/cancel flow: a conditional
// terminal transition, a terminal event, and exactly one resumption of the
// suspended submission.
//
// The write is the linearization point. Of two racing closers only one
// passes the state predicate; the loser gets a PreconditionFailedError and
// neither event nor resumption happens on its behalf.
type CloseOrderCommandHandler struct {
	store     ports.OrderRecordStore
	bus       ports.EventBus
	callbacks ports.CallbackRegistry
}

// NewCloseOrderCommandHandler creates a handler for terminal actions.
func NewCloseOrderCommandHandler(
	store ports.OrderRecordStore,
	bus ports.EventBus,
	callbacks ports.CallbackRegistry,
) CloseOrderCommandHandler {
	return CloseOrderCommandHandler{
		store:     store,
		bus:       bus,
		callbacks: callbacks,
	}
}

// Handle processes the terminal action. Event publication precedes the
// resumption so downstream consumers learn the outcome no later than the
// waiting customer. A resume failure after a successful write is loud: the
// record is terminal but the submission may still be waiting, which is an
// operational fault, not a condition to swallow.
func (h *CloseOrderCommandHandler) Handle(ctx context.Context, cmd CloseOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	state := cmd.ResultState()
	updated, err := h.store.ConditionalUpdate(ctx, ports.NewOrderKey(cmd.OrderID()),
		ports.Predicate{
			IsSuspended: true,
			StateIn:     []order.State{order.Pending, order.Making},
		},
		ports.Mutation{TransitionTo: &state},
	)
	if err != nil {
		return err
	}

	message := completeOrderMessage
	if state == order.Cancelled {
		message = cancelOrderMessage
	}

	detail := TerminalDetail{
		OrderID:    updated.ID().String(),
		UserID:     updated.UserID().String(),
		OrderState: updated.State().String(),
		Message:    message,
	}
	if err := h.bus.Publish(ctx, TerminalEventType(updated.State()), detail); err != nil {
		return err
	}

	token := updated.CallbackToken()
	if err := h.callbacks.Resume(ctx, token, emptySuccessPayload); err != nil {
		return errs.NewCallbackResumeError(token.String(), err.Error())
	}

	return nil
}
