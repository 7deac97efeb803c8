package commands

import "ordermanager/internal/core/domain/model/order"

// MakeOrderEventType is the detail type of the barista-facing claim event.
const MakeOrderEventType = "OrderManager.MakeOrder"

// TerminalEventType derives the detail type of a terminal event from the
// order state, one topic per terminal state
// (OrderManager.OrderCompleted, OrderManager.OrderCancelled).
func TerminalEventType(state order.State) string {
	return "OrderManager.Order" + state.String()
}

// MakeOrderDetail is the payload of a MakeOrder event. BaristaUserID is empty
// when the event announces an unmake.
type MakeOrderDetail struct {
	OrderID       string `json:"orderId"`
	UserID        string `json:"userId"`
	BaristaUserID string `json:"baristaUserId"`
	Message       string `json:"message"`
}

// TerminalDetail is the payload of a terminal (completed/cancelled) event.
type TerminalDetail struct {
	OrderID    string `json:"orderId"`
	UserID     string `json:"userId"`
	OrderState string `json:"orderState"`
	Message    string `json:"message"`
}
