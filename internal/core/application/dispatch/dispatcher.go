package dispatch

import (
	"context"

	"ordermanager/internal/core/application/usecases/commands"
	"ordermanager/internal/core/domain/model/kernel"
	"ordermanager/internal/core/domain/model/order"
	"ordermanager/internal/core/ports"
	"ordermanager/internal/pkg/errs"
)

// Outcome is what a dispatched trigger produced. Payload is set only on the
// submission path: it is what the complete/cancel flow delivered when it
// resumed the suspension. Barista and terminal actions always report
// Admitted true on success.
type Outcome struct {
	Admitted bool
	Payload  []byte
}

// Dispatcher routes an inbound trigger to its flow by action tag. Routing is
// total: the four named actions select their flows and everything else,
// including an absent action, is a new-order submission.
type Dispatcher struct {
	putOrders commands.PutOrderCommandHandler
	claims    commands.ClaimOrderCommandHandler
	closes    commands.CloseOrderCommandHandler
	callbacks ports.CallbackRegistry
}

// NewDispatcher creates a dispatcher over the three flow handlers.
func NewDispatcher(
	putOrders commands.PutOrderCommandHandler,
	claims commands.ClaimOrderCommandHandler,
	closes commands.CloseOrderCommandHandler,
	callbacks ports.CallbackRegistry,
) Dispatcher {
	return Dispatcher{
		putOrders: putOrders,
		claims:    claims,
		closes:    closes,
		callbacks: callbacks,
	}
}

// Dispatch runs the trigger through its flow. The submission path blocks
// until the admitted order reaches a terminal state or the context ends;
// every other path returns as soon as its flow does.
func (d Dispatcher) Dispatch(ctx context.Context, trigger Trigger) (Outcome, error) {
	switch trigger.Action {
	case ActionComplete:
		return d.close(ctx, trigger, order.Completed)
	case ActionCancel:
		return d.close(ctx, trigger, order.Cancelled)
	case ActionMake:
		return d.claim(ctx, trigger)
	case ActionUnmake:
		return d.unmake(ctx, trigger)
	default:
		return d.submit(ctx, trigger)
	}
}

func (d Dispatcher) submit(ctx context.Context, trigger Trigger) (Outcome, error) {
	orderID, err := kernel.NewOrderID(trigger.OrderID)
	if err != nil {
		return Outcome{}, err
	}
	userID, err := kernel.NewUserID(trigger.SubmitterID())
	if err != nil {
		return Outcome{}, err
	}
	drinkOrder, err := order.NewDrinkOrder(trigger.Body.Drink, trigger.Body.Modifiers)
	if err != nil {
		return Outcome{}, err
	}

	cmd, err := commands.NewPutOrderCommand(orderID, userID, drinkOrder)
	if err != nil {
		return Outcome{}, err
	}

	result, err := d.putOrders.Handle(ctx, cmd)
	if err != nil {
		return Outcome{}, err
	}
	if !result.Admitted {
		return Outcome{Admitted: false}, nil
	}

	// The admission suspended this submission; hold it here until the
	// complete/cancel flow resumes the token.
	payload, err := d.callbacks.Wait(ctx, result.CallbackToken)
	if err != nil {
		return Outcome{}, err
	}

	return Outcome{Admitted: true, Payload: payload}, nil
}

func (d Dispatcher) claim(ctx context.Context, trigger Trigger) (Outcome, error) {
	orderID, err := kernel.NewOrderID(trigger.OrderID)
	if err != nil {
		return Outcome{}, err
	}
	if trigger.BaristaUserID == "" {
		return Outcome{}, errs.NewValueIsRequiredError("baristaUserId")
	}
	baristaID, err := kernel.NewUserID(trigger.BaristaUserID)
	if err != nil {
		return Outcome{}, err
	}

	cmd, err := commands.NewClaimOrderCommand(orderID, baristaID)
	if err != nil {
		return Outcome{}, err
	}
	if err := d.claims.Handle(ctx, cmd); err != nil {
		return Outcome{}, err
	}

	return Outcome{Admitted: true}, nil
}

func (d Dispatcher) unmake(ctx context.Context, trigger Trigger) (Outcome, error) {
	orderID, err := kernel.NewOrderID(trigger.OrderID)
	if err != nil {
		return Outcome{}, err
	}

	cmd, err := commands.NewUnmakeOrderCommand(orderID)
	if err != nil {
		return Outcome{}, err
	}
	if err := d.claims.Handle(ctx, cmd); err != nil {
		return Outcome{}, err
	}

	return Outcome{Admitted: true}, nil
}

func (d Dispatcher) close(ctx context.Context, trigger Trigger, state order.State) (Outcome, error) {
	orderID, err := kernel.NewOrderID(trigger.OrderID)
	if err != nil {
		return Outcome{}, err
	}

	var cmd commands.CloseOrderCommand
	if state == order.Completed {
		cmd, err = commands.NewCompleteOrderCommand(orderID)
	} else {
		cmd, err = commands.NewCancelOrderCommand(orderID)
	}
	if err != nil {
		return Outcome{}, err
	}

	if err := d.closes.Handle(ctx, cmd); err != nil {
		return Outcome{}, err
	}

	return Outcome{Admitted: true}, nil
}
