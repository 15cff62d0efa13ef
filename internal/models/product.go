package models

import "github.com/shopspring/decimal"

// Rating is the aggregated customer rating of a product
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// Product represents a catalog entry
type Product struct {
	ID          int64           `json:"id" db:"id"`
	Title       string          `json:"title" db:"title"`
	Price       decimal.Decimal `json:"price" db:"price"`
	Description string          `json:"description" db:"description"`
	Category    string          `json:"category" db:"category"`
	Image       string          `json:"image" db:"image"`
	Rating      Rating          `json:"rating"`
}

// CartItem snapshots the product fields shown in the cart
func (p *Product) CartItem() CartItem {
	return CartItem{
		ProductID: p.ID,
		Title:     p.Title,
		Price:     p.Price,
		Image:     p.Image,
		Quantity:  1,
	}
}
