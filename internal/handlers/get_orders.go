package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/aws/aws-lambda-go/events"

	"github.com/flowmart/checkout-functions/internal/orders"
)

// ListOrdersConfig groups dependencies for the order lookup handler.
type ListOrdersConfig struct {
	Store     orders.Store
	Logger    *slog.Logger
	DBTimeout time.Duration
}

// ListOrdersHandler returns a customer's order history, newest first.
type ListOrdersHandler struct {
	store     orders.Store
	logger    *slog.Logger
	dbTimeout time.Duration
}

// NewListOrdersHandler constructs the handler.
func NewListOrdersHandler(cfg ListOrdersConfig) *ListOrdersHandler {
	return &ListOrdersHandler{
		store:     cfg.Store,
		logger:    cfg.Logger,
		dbTimeout: cfg.DBTimeout,
	}
}

type orderView struct {
	ID             int64             `json:"id"`
	OrderNumber    string            `json:"order_number"`
	CustomerName   string            `json:"customer_name"`
	CustomerEmail  string            `json:"customer_email"`
	DeliveryMethod string            `json:"delivery_method"`
	PaymentMethod  string            `json:"payment_method"`
	PaymentStatus  string            `json:"payment_status"`
	TotalAmount    float64           `json:"total_amount"`
	Items          []json.RawMessage `json:"items"`
	CreatedAt      *string           `json:"created_at"`
}

type listOrdersResponse struct {
	Orders []orderView `json:"orders"`
	Total  int         `json:"total"`
}

// Handle processes one invocation.
func (h *ListOrdersHandler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	switch req.HTTPMethod {
	case "OPTIONS":
		return corsPreflight("GET, OPTIONS"), nil
	case "GET":
	default:
		return methodNotAllowed(), nil
	}

	userID := req.QueryStringParameters["user_id"]
	if userID == "" {
		return errorResponse(400, msgUserIDRequired), nil
	}

	dbCtx, cancel := context.WithTimeout(ctx, h.dbTimeout)
	defer cancel()

	list, err := h.store.ListByUser(dbCtx, userID)
	if err != nil {
		h.logger.Error("list orders failed", "error", err)
		return serverError(err), nil
	}

	views := make([]orderView, 0, len(list))
	for _, o := range list {
		views = append(views, toOrderView(o))
	}

	return jsonResponse(200, listOrdersResponse{Orders: views, Total: len(views)}), nil
}

func toOrderView(o orders.Order) orderView {
	var createdAt *string
	if o.CreatedAt != nil {
		ts := o.CreatedAt.Format(time.RFC3339)
		createdAt = &ts
	}
	return orderView{
		ID:             o.ID,
		OrderNumber:    o.OrderNumber,
		CustomerName:   o.CustomerName,
		CustomerEmail:  o.CustomerEmail,
		DeliveryMethod: o.DeliveryMethod,
		PaymentMethod:  o.PaymentMethod,
		PaymentStatus:  o.PaymentStatus,
		TotalAmount:    o.TotalAmount,
		Items:          o.Items,
		CreatedAt:      createdAt,
	}
}
