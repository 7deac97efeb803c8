package commands

import (
	"errors"

	"ordermanager/internal/core/domain/model/kernel"
	"ordermanager/internal/pkg/guard"
)

var ErrClaimOrderCommandIsNotConstructed = errors.New(
	"ClaimOrderCommand must be created via NewClaimOrderCommand or NewUnmakeOrderCommand constructor",
)

// ClaimOrderCommand represents a barista-side action on an order: claiming it
// for making, or the explicit unmake that releases it back to the queue.
// Any barista identity may claim an unclaimed order or reclaim an unmade one;
// physical worker assignment has no customer-identity analog, so there is
// deliberately no ownership precondition here.
type ClaimOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.OrderID
	baristaID *kernel.UserID
	unmake    bool

	guard guard.ConstructorGuard
}

// NewClaimOrderCommand creates a command for a barista claiming an order.
func NewClaimOrderCommand(orderID kernel.OrderID, baristaID kernel.UserID) (ClaimOrderCommand, error) {
	cmd := ClaimOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setBaristaID(baristaID),
	); err != nil {
		return ClaimOrderCommand{}, err
	}

	return cmd, nil
}

// NewUnmakeOrderCommand creates a command that clears the current barista
// assignment, returning the order to the queue for reassignment.
func NewUnmakeOrderCommand(orderID kernel.OrderID) (ClaimOrderCommand, error) {
	cmd := ClaimOrderCommand{
		unmake: true,
		guard:  guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return ClaimOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through a constructor.
func (c ClaimOrderCommand) Validate() error {
	return c.guard.Validate(ErrClaimOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the acted-on order.
func (c ClaimOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// Barista returns the claiming barista's identity, nil for an unmake.
func (c ClaimOrderCommand) Barista() *kernel.UserID {
	return c.baristaID
}

// IsUnmake reports whether this action releases the order instead of
// claiming it.
func (c ClaimOrderCommand) IsUnmake() bool {
	return c.unmake
}

func (c *ClaimOrderCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ClaimOrderCommand) setBaristaID(baristaID kernel.UserID) error {
	if err := baristaID.Validate(); err != nil {
		return err
	}
	c.baristaID = &baristaID
	return nil
}
