package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"
	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/flowmart/checkout-functions/internal/metrics"
	"github.com/flowmart/checkout-functions/internal/orders"
	"github.com/flowmart/checkout-functions/internal/validation"
)

// CreateOrderConfig groups dependencies for the order creation handler.
type CreateOrderConfig struct {
	Store          orders.Store
	Metrics        *metrics.Publisher
	Logger         *slog.Logger
	PaymentBaseURL string
	DBTimeout      time.Duration
}

// CreateOrderHandler validates a checkout payload, persists the order and
// returns a payment redirect URL for recognized payment methods.
type CreateOrderHandler struct {
	store          orders.Store
	metrics        *metrics.Publisher
	logger         *slog.Logger
	paymentBaseURL string
	dbTimeout      time.Duration
	validate       *validatorv10.Validate
	nowFunc        func() time.Time
	newID          func() string
}

// NewCreateOrderHandler constructs the handler.
func NewCreateOrderHandler(cfg CreateOrderConfig) *CreateOrderHandler {
	return &CreateOrderHandler{
		store:          cfg.Store,
		metrics:        cfg.Metrics,
		logger:         cfg.Logger,
		paymentBaseURL: cfg.PaymentBaseURL,
		dbTimeout:      cfg.DBTimeout,
		validate:       validation.New(),
		nowFunc:        time.Now,
		newID:          uuid.NewString,
	}
}

type createOrderResponse struct {
	Message     string  `json:"message"`
	OrderID     int64   `json:"order_id"`
	OrderNumber string  `json:"order_number"`
	PaymentURL  *string `json:"payment_url"`
}

// Handle processes one invocation. Errors never propagate to the runtime;
// every outcome is a structured JSON response.
func (h *CreateOrderHandler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	switch req.HTTPMethod {
	case "OPTIONS":
		return corsPreflight("POST, OPTIONS"), nil
	case "POST":
	default:
		return methodNotAllowed(), nil
	}

	body, err := validation.ParseCreateOrder(h.validate, req.Body)
	if err != nil {
		if errors.Is(err, validation.ErrMissingFields) {
			return errorResponse(400, msgMissingFields), nil
		}
		return serverError(err), nil
	}

	orderNumber := h.orderNumber()

	itemsJSON, err := json.Marshal(body.Items)
	if err != nil {
		return serverError(err), nil
	}

	dbCtx, cancel := context.WithTimeout(ctx, h.dbTimeout)
	defer cancel()

	orderID, err := h.store.CreateOrder(dbCtx, orders.NewOrder{
		OrderNumber:     orderNumber,
		CustomerName:    body.CustomerName,
		CustomerEmail:   body.CustomerEmail,
		CustomerPhone:   body.CustomerPhone,
		DeliveryAddress: body.DeliveryAddress,
		DeliveryMethod:  body.DeliveryMethod,
		PaymentMethod:   body.PaymentMethod,
		TotalAmount:     body.Total,
		ItemsJSON:       string(itemsJSON),
		UserID:          body.UserID.Ptr(),
	})
	if err != nil {
		h.logger.Error("create order failed", "error", err)
		return serverError(err), nil
	}

	h.metrics.OrderCreated(ctx, body.PaymentMethod)
	h.logger.Info("order created", "order_id", orderID, "order_number", orderNumber, "payment_method", body.PaymentMethod)

	return jsonResponse(201, createOrderResponse{
		Message:     msgOrderCreated,
		OrderID:     orderID,
		OrderNumber: orderNumber,
		PaymentURL:  h.paymentURL(body.PaymentMethod, orderNumber),
	}), nil
}

// orderNumber derives the human-readable number: ORD-<UTC date>-<8 chars of a
// fresh uuid, upper-cased>. Assigned once, never recomputed.
func (h *CreateOrderHandler) orderNumber() string {
	date := h.nowFunc().UTC().Format("20060102")
	suffix := strings.ToUpper(h.newID()[:8])
	return fmt.Sprintf("ORD-%s-%s", date, suffix)
}

// paymentURL is a stub redirect target; no payment provider is contacted.
// Unknown payment methods get no URL.
func (h *CreateOrderHandler) paymentURL(paymentMethod, orderNumber string) *string {
	switch paymentMethod {
	case "card", "sbp":
		url := fmt.Sprintf("%s/%s/%s", h.paymentBaseURL, paymentMethod, orderNumber)
		return &url
	default:
		return nil
	}
}
