package queries

import (
	"errors"
	"time"

	"ordermanager/internal/pkg/guard"
)

var ErrGetSuspendedOrdersQueryIsNotConstructed = errors.New(
	"GetSuspendedOrdersQuery must be created via NewGetSuspendedOrdersQuery constructor",
)

// GetSuspendedOrdersQuery retrieves all orders still holding a live callback
// token, together with their suspension age. An external watchdog reads this
// to decide which stuck submissions to cancel; this core never cancels on its
// own.
type GetSuspendedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetSuspendedOrdersQuery creates a query to retrieve suspended orders.
func NewGetSuspendedOrdersQuery() GetSuspendedOrdersQuery {
	return GetSuspendedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetSuspendedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetSuspendedOrdersQueryIsNotConstructed)
}

// GetSuspendedOrdersQueryResponse describes one suspended order.
type GetSuspendedOrdersQueryResponse struct {
	OrderID     string
	UserID      string
	State       string
	SuspendedAt time.Time
}

// SuspendedFor returns how long the order has been suspended as of now.
func (r GetSuspendedOrdersQueryResponse) SuspendedFor(now time.Time) time.Duration {
	return now.Sub(r.SuspendedAt)
}
