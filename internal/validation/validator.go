package validation

import (
	"encoding/json"
	"errors"
	"fmt"

	validatorv10 "github.com/go-playground/validator/v10"
)

// The two ways a checkout body can be rejected. Handlers map them to
// different responses: a body that does not parse is a server error, a body
// missing required fields is a client error with one aggregate message.
var (
	ErrMalformedBody = errors.New("malformed request body")
	ErrMissingFields = errors.New("required fields missing")
)

// New returns a configured validator.
func New() *validatorv10.Validate {
	return validatorv10.New()
}

// ParseCreateOrder decodes and validates a checkout body. On failure the
// returned error wraps ErrMalformedBody or ErrMissingFields.
func ParseCreateOrder(v *validatorv10.Validate, body string) (*CreateOrderRequest, error) {
	var req CreateOrderRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	if err := v.Struct(&req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingFields, err)
	}
	return &req, nil
}
