package queries

import (
	"context"
	"time"

	"ordermanager/internal/core/domain/model/order"
	"ordermanager/internal/core/ports"

	"gorm.io/gorm"
)

// GetSuspendedOrdersQueryHandler reads suspended orders straight from the
// database. Queries bypass the aggregate; this is read-only reporting, not a
// mutation path.
type GetSuspendedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetSuspendedOrdersQueryHandler creates a handler for suspended order
// queries.
func NewGetSuspendedOrdersQueryHandler(db *gorm.DB) GetSuspendedOrdersQueryHandler {
	return GetSuspendedOrdersQueryHandler{db: db}
}

// Handle returns every order that holds a live callback token and has not
// reached a terminal state, oldest suspension first.
func (h GetSuspendedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetSuspendedOrdersQuery,
) ([]GetSuspendedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetSuspendedOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			user_id,
			state,
			suspended_at
		FROM order_records
		WHERE record_type = ?
		  AND callback_token <> ''
		  AND state NOT IN (?, ?)
		ORDER BY suspended_at
	`, ports.OrderRecordType, order.Completed, order.Cancelled).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetSuspendedOrdersQueryResponse
		var state int
		var suspendedAt time.Time

		if err = rows.Scan(&resp.OrderID, &resp.UserID, &state, &suspendedAt); err != nil {
			return nil, err
		}

		resp.State = order.State(state).String()
		resp.SuspendedAt = suspendedAt
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
