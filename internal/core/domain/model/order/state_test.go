package order_test

import (
	"fmt"
	"testing"

	"ordermanager/internal/core/domain/model/order"
	"ordermanager/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_Validate(t *testing.T) {
	t.Run("should validate valid states", func(t *testing.T) {
		for _, state := range []order.State{order.Pending, order.Making, order.Completed, order.Cancelled} {
			t.Run(fmt.Sprintf("should validate %s state", state.String()), func(t *testing.T) {
				require.NoError(t, state.Validate())
			})
		}
	})

	t.Run("should reject Unknown and out-of-range states", func(t *testing.T) {
		for _, state := range []order.State{order.Unknown, order.State(99), order.State(-1)} {
			err := state.Validate()
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "Pending", order.Pending.String())
	assert.Equal(t, "Making", order.Making.String())
	assert.Equal(t, "Completed", order.Completed.String())
	assert.Equal(t, "Cancelled", order.Cancelled.String())
	assert.Equal(t, "Unknown", order.State(42).String())
}

func TestState_StartMaking(t *testing.T) {
	t.Run("should claim a pending order", func(t *testing.T) {
		newState, err := order.Pending.StartMaking()
		require.NoError(t, err)
		assert.Equal(t, order.Making, newState)
	})

	t.Run("should allow reclaim while making", func(t *testing.T) {
		newState, err := order.Making.StartMaking()
		require.NoError(t, err)
		assert.Equal(t, order.Making, newState)
	})

	t.Run("should reject terminal states", func(t *testing.T) {
		for _, state := range []order.State{order.Completed, order.Cancelled, order.Unknown} {
			_, err := state.StartMaking()
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestState_Unmake(t *testing.T) {
	t.Run("should return a making order to pending", func(t *testing.T) {
		newState, err := order.Making.Unmake()
		require.NoError(t, err)
		assert.Equal(t, order.Pending, newState)
	})

	t.Run("should be the only path back to pending", func(t *testing.T) {
		for _, state := range []order.State{order.Pending, order.Completed, order.Cancelled, order.Unknown} {
			_, err := state.Unmake()
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestState_TerminalTransitions(t *testing.T) {
	t.Run("should complete from pending or making", func(t *testing.T) {
		for _, state := range []order.State{order.Pending, order.Making} {
			newState, err := state.Complete()
			require.NoError(t, err)
			assert.Equal(t, order.Completed, newState)
		}
	})

	t.Run("should cancel from pending or making", func(t *testing.T) {
		for _, state := range []order.State{order.Pending, order.Making} {
			newState, err := state.Cancel()
			require.NoError(t, err)
			assert.Equal(t, order.Cancelled, newState)
		}
	})

	t.Run("terminal states accept no further transitions", func(t *testing.T) {
		for _, state := range []order.State{order.Completed, order.Cancelled} {
			_, err := state.Complete()
			require.Error(t, err)
			_, err = state.Cancel()
			require.Error(t, err)
			_, err = state.StartMaking()
			require.Error(t, err)
		}
	})
}

func TestState_IsTerminal(t *testing.T) {
	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.Making.IsTerminal())
	assert.True(t, order.Completed.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
}

func TestState_ValidateCanHaveBarista(t *testing.T) {
	t.Run("pending must have no barista", func(t *testing.T) {
		require.NoError(t, order.Pending.ValidateCanHaveBarista(false))
		require.Error(t, order.Pending.ValidateCanHaveBarista(true))
	})

	t.Run("making must have a barista", func(t *testing.T) {
		require.NoError(t, order.Making.ValidateCanHaveBarista(true))
		require.Error(t, order.Making.ValidateCanHaveBarista(false))
	})

	t.Run("terminal states may keep or lack an assignment", func(t *testing.T) {
		for _, state := range []order.State{order.Completed, order.Cancelled} {
			require.NoError(t, state.ValidateCanHaveBarista(true))
			require.NoError(t, state.ValidateCanHaveBarista(false))
		}
	})
}
