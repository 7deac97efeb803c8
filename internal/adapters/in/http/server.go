// Package http exposes the order workflow over HTTP. A single trigger route
// feeds the dispatcher; a read-only route reports suspended orders for
// external watchdogs.
package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"ordermanager/internal/core/application/dispatch"
	"ordermanager/internal/core/application/usecases/queries"
	"ordermanager/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and the application layer.
type Server struct {
	dispatcher      dispatch.Dispatcher
	suspendedOrders queries.GetSuspendedOrdersQueryHandler
}

// NewServer creates the HTTP server over the dispatcher and query handlers.
func NewServer(
	dispatcher dispatch.Dispatcher,
	suspendedOrders queries.GetSuspendedOrdersQueryHandler,
) *Server {
	return &Server{
		dispatcher:      dispatcher,
		suspendedOrders: suspendedOrders,
	}
}

// RegisterRoutes binds the server's routes on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/v1/triggers", s.HandleTrigger)
	e.GET("/api/v1/orders/suspended", s.GetSuspendedOrders)
}

// ErrorResponse is the JSON body of every error reply.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// TriggerResponse reports the outcome of a dispatched trigger. Result is the
// resume payload on the submission path, absent elsewhere.
type TriggerResponse struct {
	Admitted bool            `json:"admitted"`
	Result   json.RawMessage `json:"result,omitempty"`
}

// SuspendedOrderResponse describes one suspended order.
type SuspendedOrderResponse struct {
	OrderID          string `json:"orderId"`
	UserID           string `json:"userId"`
	OrderState       string `json:"orderState"`
	SuspendedAt      string `json:"suspendedAt"`
	SuspendedSeconds int64  `json:"suspendedSeconds"`
}

// HandleTrigger handles POST /api/v1/triggers - runs a trigger through the
// dispatcher. A menu rejection is a 200 with admitted=false; a conditional
// write conflict is a 409 the caller must resolve, never retried here.
func (s *Server) HandleTrigger(ctx echo.Context) error {
	var trigger dispatch.Trigger
	if err := ctx.Bind(&trigger); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	outcome, err := s.dispatcher.Dispatch(ctx.Request().Context(), trigger)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, TriggerResponse{
		Admitted: outcome.Admitted,
		Result:   outcome.Payload,
	})
}

// GetSuspendedOrders handles GET /api/v1/orders/suspended.
func (s *Server) GetSuspendedOrders(ctx echo.Context) error {
	orders, err := s.suspendedOrders.Handle(ctx.Request().Context(), queries.NewGetSuspendedOrdersQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	now := time.Now().UTC()
	response := make([]SuspendedOrderResponse, len(orders))
	for i, suspended := range orders {
		response[i] = SuspendedOrderResponse{
			OrderID:          suspended.OrderID,
			UserID:           suspended.UserID,
			OrderState:       suspended.State,
			SuspendedAt:      suspended.SuspendedAt.UTC().Format(time.RFC3339),
			SuspendedSeconds: int64(suspended.SuspendedFor(now).Seconds()),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func writeError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrPreconditionFailed):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrCollaboratorUnavailable):
		code = http.StatusServiceUnavailable
	}

	return ctx.JSON(code, ErrorResponse{Code: code, Message: err.Error()})
}
