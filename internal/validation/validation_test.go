package validation

import (
	"errors"
	"testing"
)

const validBody = `{
	"items": [{"id": 1, "qty": 2}],
	"delivery_method": "courier",
	"payment_method": "card",
	"customer_name": "Anna",
	"customer_email": "anna@example.com",
	"customer_phone": "+70000000000",
	"delivery_address": "Lenina 1",
	"total": 149.9,
	"user_id": "u1"
}`

func TestParseCreateOrder_Valid(t *testing.T) {
	v := New()

	req, err := ParseCreateOrder(v, validBody)
	if err != nil {
		t.Fatalf("expected valid, got error: %v", err)
	}
	if len(req.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(req.Items))
	}
	if req.UserID == nil || *req.UserID != "u1" {
		t.Fatalf("unexpected user id: %v", req.UserID)
	}
	if req.Total != 149.9 {
		t.Fatalf("unexpected total: %v", req.Total)
	}
}

func TestParseCreateOrder_NumericUserID(t *testing.T) {
	v := New()

	// logged-in storefront sessions send user_id as a number
	body := `{
		"items": [{"id": 1, "qty": 2}],
		"delivery_method": "courier",
		"payment_method": "card",
		"customer_name": "Anna",
		"customer_email": "anna@example.com",
		"customer_phone": "+70000000000",
		"user_id": 5
	}`
	req, err := ParseCreateOrder(v, body)
	if err != nil {
		t.Fatalf("numeric user_id rejected: %v", err)
	}
	if req.UserID == nil || *req.UserID != "5" {
		t.Fatalf("unexpected user id: %v", req.UserID)
	}
	if got := req.UserID.Ptr(); got == nil || *got != "5" {
		t.Fatalf("unexpected canonical form: %v", got)
	}
}

func TestParseCreateOrder_NullUserID(t *testing.T) {
	v := New()

	body := `{
		"items": [{"id": 1}],
		"delivery_method": "courier",
		"payment_method": "card",
		"customer_name": "Anna",
		"customer_email": "anna@example.com",
		"customer_phone": "+70000000000",
		"user_id": null
	}`
	req, err := ParseCreateOrder(v, body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.UserID != nil || req.UserID.Ptr() != nil {
		t.Fatalf("expected nil user id, got %v", req.UserID)
	}
}

func TestParseCreateOrder_InvalidUserIDType(t *testing.T) {
	v := New()

	body := `{
		"items": [{"id": 1}],
		"delivery_method": "courier",
		"payment_method": "card",
		"customer_name": "Anna",
		"customer_email": "anna@example.com",
		"customer_phone": "+70000000000",
		"user_id": true
	}`
	if _, err := ParseCreateOrder(v, body); !errors.Is(err, ErrMalformedBody) {
		t.Fatalf("expected ErrMalformedBody, got %v", err)
	}
}

func TestParseCreateOrder_MalformedBody(t *testing.T) {
	v := New()

	_, err := ParseCreateOrder(v, `{"items": [`)
	if !errors.Is(err, ErrMalformedBody) {
		t.Fatalf("expected ErrMalformedBody, got %v", err)
	}
}

func TestParseCreateOrder_EmptyItems(t *testing.T) {
	v := New()

	body := `{
		"items": [],
		"delivery_method": "courier",
		"payment_method": "card",
		"customer_name": "Anna",
		"customer_email": "anna@example.com",
		"customer_phone": "+70000000000"
	}`
	_, err := ParseCreateOrder(v, body)
	if !errors.Is(err, ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
}

func TestParseCreateOrder_MissingContactFields(t *testing.T) {
	v := New()

	body := `{
		"items": [{"id": 1}],
		"delivery_method": "courier",
		"payment_method": "card"
	}`
	_, err := ParseCreateOrder(v, body)
	if !errors.Is(err, ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
}

func TestParseCreateOrder_EmptyStringCountsAsMissing(t *testing.T) {
	v := New()

	body := `{
		"items": [{"id": 1}],
		"delivery_method": "",
		"payment_method": "card",
		"customer_name": "Anna",
		"customer_email": "anna@example.com",
		"customer_phone": "+70000000000"
	}`
	_, err := ParseCreateOrder(v, body)
	if !errors.Is(err, ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
}

func TestParseCreateOrder_PermissiveTotalAndPaymentMethod(t *testing.T) {
	v := New()

	// Zero and negative totals pass, as does a payment method nobody knows.
	body := `{
		"items": [{"id": 1}],
		"delivery_method": "pickup",
		"payment_method": "cash",
		"customer_name": "Anna",
		"customer_email": "anna@example.com",
		"customer_phone": "+70000000000",
		"total": -5
	}`
	req, err := ParseCreateOrder(v, body)
	if err != nil {
		t.Fatalf("expected valid, got error: %v", err)
	}
	if req.Total != -5 {
		t.Fatalf("unexpected total: %v", req.Total)
	}
	if req.UserID != nil {
		t.Fatalf("expected nil user id, got %v", req.UserID)
	}
	if req.DeliveryAddress != "" {
		t.Fatalf("expected empty address default, got %q", req.DeliveryAddress)
	}
}
