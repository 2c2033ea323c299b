package validation

import "encoding/json"

// CreateOrderRequest is the checkout payload posted by the storefront.
// Items stay raw so the stored structure round-trips exactly as sent.
// Total and UserID are deliberately untagged: the contract accepts any
// total (including zero and negative) and a missing user for guest checkout.
type CreateOrderRequest struct {
	Items           []json.RawMessage `json:"items" validate:"required,min=1"`
	DeliveryMethod  string            `json:"delivery_method" validate:"required"`
	PaymentMethod   string            `json:"payment_method" validate:"required"`
	CustomerName    string            `json:"customer_name" validate:"required"`
	CustomerEmail   string            `json:"customer_email" validate:"required"`
	CustomerPhone   string            `json:"customer_phone" validate:"required"`
	DeliveryAddress string            `json:"delivery_address"`
	Total           float64           `json:"total"`
	UserID          *UserID           `json:"user_id"`
}

// UserID accepts either a JSON number or a string; the storefront sends a
// number for logged-in users. It canonicalizes to the text form the store
// persists and matches on.
type UserID string

func (u *UserID) UnmarshalJSON(data []byte) error {
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*u = UserID(n.String())
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*u = UserID(s)
	return nil
}

// Ptr returns the canonical text form, or nil for guest checkout.
func (u *UserID) Ptr() *string {
	if u == nil {
		return nil
	}
	s := string(*u)
	return &s
}
