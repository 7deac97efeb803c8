package commands

import (
	"errors"

	"ordermanager/internal/core/domain/model/kernel"
	"ordermanager/internal/core/domain/model/order"
	"ordermanager/internal/pkg/errs"
	"ordermanager/internal/pkg/guard"
)

var ErrPutOrderCommandIsNotConstructed = errors.New(
	"PutOrderCommand must be created via NewPutOrderCommand constructor",
)

// PutOrderCommand represents a customer's drink order submission.
//
// Example:
//
//	orderID, _ := kernel.NewOrderID("o-1")
//	userID, _ := kernel.NewUserID("u-1")
//	drinkOrder, _ := order.NewDrinkOrder("latte", []string{"oat-milk"})
//	cmd, err := commands.NewPutOrderCommand(orderID, userID, drinkOrder)
//	if err != nil {
//	    return fmt.Errorf("invalid submission: %w", err)
//	}
type PutOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.OrderID
	userID     kernel.UserID
	drinkOrder order.DrinkOrder

	guard guard.ConstructorGuard
}

// NewPutOrderCommand creates a command to submit a new drink order.
// Validates that the order and user identifiers are constructed and that a
// drink was actually selected.
func NewPutOrderCommand(
	orderID kernel.OrderID,
	userID kernel.UserID,
	drinkOrder order.DrinkOrder,
) (PutOrderCommand, error) {
	cmd := PutOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setUserID(userID),
		cmd.setDrinkOrder(drinkOrder),
	); err != nil {
		return PutOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PutOrderCommand) Validate() error {
	return c.guard.Validate(ErrPutOrderCommandIsNotConstructed)
}

// OrderID returns the submitted order identifier.
func (c PutOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// UserID returns the identity of the submitting customer.
func (c PutOrderCommand) UserID() kernel.UserID {
	return c.userID
}

// DrinkOrder returns the requested drink selection.
func (c PutOrderCommand) DrinkOrder() order.DrinkOrder {
	return c.drinkOrder
}

func (c *PutOrderCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *PutOrderCommand) setUserID(userID kernel.UserID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *PutOrderCommand) setDrinkOrder(drinkOrder order.DrinkOrder) error {
	if drinkOrder.IsZero() {
		return errs.NewValueIsRequiredError("drinkOrder")
	}
	c.drinkOrder = drinkOrder
	return nil
}
