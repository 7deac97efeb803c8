package commands_test

import (
	"errors"
	"testing"

	"ordermanager/internal/core/application/usecases/commands"
	"ordermanager/internal/core/domain/model/order"
	"ordermanager/internal/core/ports"
	"ordermanager/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func closedOrder(t *testing.T, state order.State) *order.Order {
	t.Helper()
	record := admittedOrder(t, "o-100", "u-1", "tok-100")
	var err error
	switch state {
	case order.Completed:
		err = record.Complete()
	case order.Cancelled:
		err = record.Cancel()
	default:
		t.Fatalf("not a terminal state: %s", state)
	}
	require.NoError(t, err)
	return record
}

func TestCloseOrderCommandHandler_Handle_Complete(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCompleteOrderCommand(mustOrderID(t, "o-100"))
	require.NoError(t, err)

	updated := closedOrder(t, order.Completed)
	state := order.Completed

	store := new(MockOrderRecordStore)
	bus := new(MockEventBus)
	callbacks := new(MockCallbackRegistry)
	mock.InOrder(
		store.On("ConditionalUpdate", ctx, ports.NewOrderKey(cmd.OrderID()),
			ports.Predicate{
				IsSuspended: true,
				StateIn:     []order.State{order.Pending, order.Making},
			},
			ports.Mutation{TransitionTo: &state},
		).Return(updated, nil).Once(),
		bus.On("Publish", ctx, "OrderManager.OrderCompleted",
			mock.AnythingOfType("commands.TerminalDetail")).Return(nil).Once(),
		callbacks.On("Resume", ctx, updated.CallbackToken(), []byte("{}")).Return(nil).Once(),
	)

	h := commands.NewCloseOrderCommandHandler(store, bus, callbacks)
	require.NoError(t, h.Handle(ctx, cmd))

	detail := bus.Calls[0].Arguments.Get(2).(commands.TerminalDetail)
	assert.Equal(t, "o-100", detail.OrderID)
	assert.Equal(t, "u-1", detail.UserID)
	assert.Equal(t, "Completed", detail.OrderState)
	store.AssertExpectations(t)
	bus.AssertExpectations(t)
	callbacks.AssertExpectations(t)
}

func TestCloseOrderCommandHandler_Handle_Cancel(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCancelOrderCommand(mustOrderID(t, "o-100"))
	require.NoError(t, err)

	updated := closedOrder(t, order.Cancelled)
	state := order.Cancelled

	store := new(MockOrderRecordStore)
	bus := new(MockEventBus)
	callbacks := new(MockCallbackRegistry)
	mock.InOrder(
		store.On("ConditionalUpdate", ctx, ports.NewOrderKey(cmd.OrderID()),
			mock.AnythingOfType("ports.Predicate"),
			ports.Mutation{TransitionTo: &state},
		).Return(updated, nil).Once(),
		bus.On("Publish", ctx, "OrderManager.OrderCancelled",
			mock.AnythingOfType("commands.TerminalDetail")).Return(nil).Once(),
		callbacks.On("Resume", ctx, updated.CallbackToken(), []byte("{}")).Return(nil).Once(),
	)

	h := commands.NewCloseOrderCommandHandler(store, bus, callbacks)
	require.NoError(t, h.Handle(ctx, cmd))

	detail := bus.Calls[0].Arguments.Get(2).(commands.TerminalDetail)
	assert.Equal(t, "Cancelled", detail.OrderState)
	store.AssertExpectations(t)
	callbacks.AssertExpectations(t)
}

func TestCloseOrderCommandHandler_Handle_AlreadyClosedConflicts(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCancelOrderCommand(mustOrderID(t, "o-100"))
	require.NoError(t, err)

	store := new(MockOrderRecordStore)
	store.On("ConditionalUpdate", ctx, ports.NewOrderKey(cmd.OrderID()),
		mock.AnythingOfType("ports.Predicate"), mock.AnythingOfType("ports.Mutation")).
		Return(nil, errs.NewPreconditionFailedError("o-100", "state in [Pending Making]")).Once()

	bus := new(MockEventBus)
	callbacks := new(MockCallbackRegistry)
	h := commands.NewCloseOrderCommandHandler(store, bus, callbacks)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrPreconditionFailed)
	// The losing closer neither publishes nor resumes.
	bus.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
	callbacks.AssertNotCalled(t, "Resume", mock.Anything, mock.Anything, mock.Anything)
}

func TestCloseOrderCommandHandler_Handle_PublishError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCompleteOrderCommand(mustOrderID(t, "o-100"))
	require.NoError(t, err)

	updated := closedOrder(t, order.Completed)

	store := new(MockOrderRecordStore)
	bus := new(MockEventBus)
	callbacks := new(MockCallbackRegistry)
	mock.InOrder(
		store.On("ConditionalUpdate", ctx, ports.NewOrderKey(cmd.OrderID()),
			mock.AnythingOfType("ports.Predicate"), mock.AnythingOfType("ports.Mutation")).
			Return(updated, nil).Once(),
		bus.On("Publish", ctx, "OrderManager.OrderCompleted",
			mock.AnythingOfType("commands.TerminalDetail")).
			Return(errs.NewCollaboratorUnavailableError("event bus", errors.New("channel closed"))).Once(),
	)

	h := commands.NewCloseOrderCommandHandler(store, bus, callbacks)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrCollaboratorUnavailable)
	callbacks.AssertNotCalled(t, "Resume", mock.Anything, mock.Anything, mock.Anything)
}

func TestCloseOrderCommandHandler_Handle_ResumeFailureIsLoud(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCompleteOrderCommand(mustOrderID(t, "o-100"))
	require.NoError(t, err)

	updated := closedOrder(t, order.Completed)

	store := new(MockOrderRecordStore)
	bus := new(MockEventBus)
	callbacks := new(MockCallbackRegistry)
	mock.InOrder(
		store.On("ConditionalUpdate", ctx, ports.NewOrderKey(cmd.OrderID()),
			mock.AnythingOfType("ports.Predicate"), mock.AnythingOfType("ports.Mutation")).
			Return(updated, nil).Once(),
		bus.On("Publish", ctx, "OrderManager.OrderCompleted",
			mock.AnythingOfType("commands.TerminalDetail")).Return(nil).Once(),
		callbacks.On("Resume", ctx, updated.CallbackToken(), []byte("{}")).
			Return(errs.NewCallbackResumeError("tok-100", "token already consumed")).Once(),
	)

	h := commands.NewCloseOrderCommandHandler(store, bus, callbacks)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrCallbackResumeFailed)
}

func TestCloseOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	var cmd commands.CloseOrderCommand

	h := commands.NewCloseOrderCommandHandler(
		new(MockOrderRecordStore), new(MockEventBus), new(MockCallbackRegistry))
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrCloseOrderCommandIsNotConstructed)
}
