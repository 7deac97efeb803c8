package commands_test

import (
	"context"
	"testing"

	"ordermanager/internal/core/domain/model/kernel"
	"ordermanager/internal/core/domain/model/menu"
	"ordermanager/internal/core/domain/model/order"
	"ordermanager/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRecordStore struct{ mock.Mock }

func (m *MockOrderRecordStore) Get(ctx context.Context, key ports.RecordKey) (*order.Order, error) {
	args := m.Called(ctx, key)
	if record, ok := args.Get(0).(*order.Order); ok {
		return record, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRecordStore) Create(ctx context.Context, record *order.Order) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockOrderRecordStore) ConditionalUpdate(
	ctx context.Context,
	key ports.RecordKey,
	predicate ports.Predicate,
	mutation ports.Mutation,
) (*order.Order, error) {
	args := m.Called(ctx, key, predicate, mutation)
	if record, ok := args.Get(0).(*order.Order); ok {
		return record, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockMenuSource struct{ mock.Mock }

func (m *MockMenuSource) GetMenu(ctx context.Context) (menu.Snapshot, error) {
	args := m.Called(ctx)
	return args.Get(0).(menu.Snapshot), args.Error(1)
}

type MockEventBus struct{ mock.Mock }

func (m *MockEventBus) Publish(ctx context.Context, detailType string, detail any) error {
	args := m.Called(ctx, detailType, detail)
	return args.Error(0)
}

type MockCallbackRegistry struct{ mock.Mock }

func (m *MockCallbackRegistry) Issue(ctx context.Context) (kernel.CallbackToken, error) {
	args := m.Called(ctx)
	return args.Get(0).(kernel.CallbackToken), args.Error(1)
}

func (m *MockCallbackRegistry) Resume(ctx context.Context, token kernel.CallbackToken, payload []byte) error {
	args := m.Called(ctx, token, payload)
	return args.Error(0)
}

func (m *MockCallbackRegistry) Wait(ctx context.Context, token kernel.CallbackToken) ([]byte, error) {
	args := m.Called(ctx, token)
	if payload, ok := args.Get(0).([]byte); ok {
		return payload, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCallbackRegistry) Discard(ctx context.Context, token kernel.CallbackToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func mustOrderID(t *testing.T, value string) kernel.OrderID {
	t.Helper()
	id, err := kernel.NewOrderID(value)
	require.NoError(t, err)
	return id
}

func mustUserID(t *testing.T, value string) kernel.UserID {
	t.Helper()
	id, err := kernel.NewUserID(value)
	require.NoError(t, err)
	return id
}

func mustToken(t *testing.T, value string) kernel.CallbackToken {
	t.Helper()
	token, err := kernel.NewCallbackToken(value)
	require.NoError(t, err)
	return token
}

func mustDrinkOrder(t *testing.T, drink string, modifiers ...string) order.DrinkOrder {
	t.Helper()
	drinkOrder, err := order.NewDrinkOrder(drink, modifiers)
	require.NoError(t, err)
	return drinkOrder
}

func admittedOrder(t *testing.T, orderID, userID, token string) *order.Order {
	t.Helper()
	record, err := order.NewOrder(
		mustOrderID(t, orderID),
		mustUserID(t, userID),
		mustDrinkOrder(t, "Cappuccino", "Whole"),
		mustToken(t, token),
	)
	require.NoError(t, err)
	return record
}

func espressoMenu() menu.Snapshot {
	return menu.Snapshot{Items: []menu.Item{
		{
			Drink:     "Cappuccino",
			Available: true,
			Icon:      "barista-icons_cappuccino",
			Modifiers: []menu.ModifierGroup{{Options: []string{"Whole", "Oat", "Almond"}}},
		},
		{
			Drink:     "Espresso",
			Available: true,
			Icon:      "barista-icons_espresso",
		},
	}}
}
