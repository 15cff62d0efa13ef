package models

import "github.com/shopspring/decimal"

// CartItem represents one line in a user's cart. Title, price and image are
// copied from the product when the line is created and never refreshed.
type CartItem struct {
	ProductID int64           `json:"product_id"`
	Title     string          `json:"title"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Quantity  int             `json:"quantity"`
}

// CartItemRequest is the body of POST /api/cart/add and /api/cart/remove
type CartItemRequest struct {
	UserID    string `json:"user_id"`
	ProductID int64  `json:"product_id"`
}

// Validate checks that both identifiers are present
func (req *CartItemRequest) Validate() error {
	if req.UserID == "" || req.ProductID == 0 {
		return ErrMissingFields
	}
	return nil
}

// CartResponse is returned by cart mutations
type CartResponse struct {
	Success bool       `json:"success"`
	Cart    []CartItem `json:"cart"`
}

// FindItem returns the index of productID in items, or -1
func FindItem(items []CartItem, productID int64) int {
	for i := range items {
		if items[i].ProductID == productID {
			return i
		}
	}
	return -1
}
