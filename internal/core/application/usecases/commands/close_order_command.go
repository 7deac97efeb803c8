package commands

import (
	"errors"

	"ordermanager/internal/core/domain/model/kernel"
	"ordermanager/internal/core/domain/model/order"
	"ordermanager/internal/pkg/guard"
)

var ErrCloseOrderCommandIsNotConstructed = errors.New(
	"CloseOrderCommand must be created via NewCompleteOrderCommand or NewCancelOrderCommand constructor",
)

// CloseOrderCommand represents a terminal action on an order. The two entry
// points pre-select the result state (Completed or Cancelled) and converge on
// one shared handler chain.
type CloseOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.OrderID
	resultState order.State

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a command that completes an order.
func NewCompleteOrderCommand(orderID kernel.OrderID) (CloseOrderCommand, error) {
	return newCloseOrderCommand(orderID, order.Completed)
}

// NewCancelOrderCommand creates a command that cancels an order.
func NewCancelOrderCommand(orderID kernel.OrderID) (CloseOrderCommand, error) {
	return newCloseOrderCommand(orderID, order.Cancelled)
}

func newCloseOrderCommand(orderID kernel.OrderID, resultState order.State) (CloseOrderCommand, error) {
	cmd := CloseOrderCommand{
		resultState: resultState,
		guard:       guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return CloseOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through a constructor.
func (c CloseOrderCommand) Validate() error {
	return c.guard.Validate(ErrCloseOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being closed.
func (c CloseOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// ResultState returns the pre-selected terminal state.
func (c CloseOrderCommand) ResultState() order.State {
	return c.resultState
}

func (c *CloseOrderCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
