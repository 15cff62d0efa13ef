package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"storefront/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderRepository_PlaceOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewOrderRepository(db)
	items := json.RawMessage(`[{"product_id":1,"quantity":2}]`)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO users`).WithArgs("test_user").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO orders`).
		WithArgs("test_user", string(items)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(123))
	mock.ExpectCommit()

	orderID, err := repo.PlaceOrder(context.Background(), "test_user", items)
	require.NoError(t, err)
	assert.Equal(t, int64(123), orderID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_PlaceOrderRollsBackUserOnOrderFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewOrderRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO users`).WithArgs("test_user").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO orders`).WillReturnError(errors.New("Database error"))
	mock.ExpectRollback()

	_, err = repo.PlaceOrder(context.Background(), "test_user", json.RawMessage(`[]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create order")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_PlaceOrderUserUpsertFails(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewOrderRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO users`).WillReturnError(errors.New("Database error"))
	mock.ExpectRollback()

	_, err = repo.PlaceOrder(context.Background(), "test_user", json.RawMessage(`[]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to upsert user")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewOrderRepository(db)
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectQuery(`FROM orders WHERE id = \$1`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "items", "created_at"}).
			AddRow(7, "u1", []byte(`[{"product_id":1}]`), created))

	order, err := repo.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "u1", order.UserID)
	assert.JSONEq(t, `[{"product_id":1}]`, string(order.Items))
	assert.Equal(t, created, order.CreatedAt)

	mock.ExpectQuery(`FROM orders WHERE id = \$1`).
		WithArgs(int64(8)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "items", "created_at"}))

	_, err = repo.GetByID(context.Background(), 8)
	assert.ErrorIs(t, err, models.ErrOrderNotFound)

	mock.ExpectQuery(`FROM orders WHERE id = \$1`).
		WithArgs(int64(9)).
		WillReturnError(errors.New("connection reset"))

	_, err = repo.GetByID(context.Background(), 9)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get order")
	assert.NoError(t, mock.ExpectationsWereMet())
}
