package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"storefront/internal/models"
)

// OrderRepository handles order data operations
type OrderRepository struct {
	db *sql.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// PlaceOrder records the user and inserts the order in one transaction, so
// a failed order insert never leaves a half-finished checkout behind.
func (r *OrderRepository) PlaceOrder(ctx context.Context, userID string, items json.RawMessage) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := upsertUser(ctx, tx, userID); err != nil {
		return 0, err
	}

	var orderID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO orders (user_id, items, created_at) VALUES ($1, $2, NOW()) RETURNING id`,
		userID, string(items),
	).Scan(&orderID)
	if err != nil {
		return 0, fmt.Errorf("failed to create order: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit order creation: %w", err)
	}

	return orderID, nil
}

// GetByID retrieves an order by ID. A missing row is ErrOrderNotFound.
func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	query := `SELECT id, user_id, items, created_at FROM orders WHERE id = $1`

	order := &models.Order{}
	var items []byte
	err := r.db.QueryRowContext(ctx, query, id).Scan(&order.ID, &order.UserID, &items, &order.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	order.Items = json.RawMessage(items)

	return order, nil
}
