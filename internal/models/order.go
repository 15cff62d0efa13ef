package models

import (
	"encoding/json"
	"time"
)

// Order represents a persisted checkout. Items are stored exactly as the
// client sent them.
type Order struct {
	ID        int64           `json:"id" db:"id"`
	UserID    string          `json:"user_id" db:"user_id"`
	Items     json.RawMessage `json:"items" db:"items"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
}

// CheckoutRequest is the body of POST /api/checkout
type CheckoutRequest struct {
	UserID string            `json:"user_id"`
	Items  []json.RawMessage `json:"items"`
}

// Validate checks that a user id and at least one item are present
func (req *CheckoutRequest) Validate() error {
	if req.UserID == "" || len(req.Items) == 0 {
		return ErrMissingFields
	}
	return nil
}

// ItemsJSON encodes the item list as a single JSON array
func (req *CheckoutRequest) ItemsJSON() (json.RawMessage, error) {
	return json.Marshal(req.Items)
}

// CheckoutResponse is returned by a successful checkout. NewUserID is only
// set when the supplied user id was replaced.
type CheckoutResponse struct {
	Success   bool   `json:"success"`
	OrderID   int64  `json:"order_id"`
	NewUserID string `json:"new_user_id,omitempty"`
}
