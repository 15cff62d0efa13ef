package services

import (
	"context"
	"log/slog"

	"storefront/internal/cartstore"
	"storefront/internal/models"
)

// CheckoutResult is the outcome of a successful checkout. NewUserID is set
// only when the caller's legacy id was replaced.
type CheckoutResult struct {
	OrderID   int64
	NewUserID string
}

// CheckoutService turns a cart into a persisted order
type CheckoutService struct {
	orders OrderRepository
	carts  cartstore.Store
	policy UserIDPolicy
	logger *slog.Logger
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(orders OrderRepository, carts cartstore.Store, policy UserIDPolicy, logger *slog.Logger) *CheckoutService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CheckoutService{
		orders: orders,
		carts:  carts,
		policy: policy,
		logger: logger,
	}
}

// Checkout records the user and the order, then clears the cart held under
// the id the caller supplied. The cart is left alone when persisting fails.
func (s *CheckoutService) Checkout(ctx context.Context, req *models.CheckoutRequest) (*CheckoutResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	items, err := req.ItemsJSON()
	if err != nil {
		return nil, models.NewValidationError("Invalid items")
	}

	userID, migrated := s.policy.Migrate(req.UserID)

	orderID, err := s.orders.PlaceOrder(ctx, userID, items)
	if err != nil {
		return nil, models.NewUpstreamError("Failed to place order", err)
	}

	// The order is committed at this point; a stale cart is not worth
	// failing the request over.
	if err := s.carts.Clear(ctx, req.UserID); err != nil {
		s.logger.WarnContext(ctx, "failed to clear cart after checkout",
			slog.String("user_id", req.UserID),
			slog.Int64("order_id", orderID),
			slog.Any("err", err),
		)
	}

	result := &CheckoutResult{OrderID: orderID}
	if migrated {
		result.NewUserID = userID
		s.logger.InfoContext(ctx, "migrated legacy user id",
			slog.String("legacy_user_id", req.UserID),
			slog.String("user_id", userID),
		)
	}
	return result, nil
}

// GetOrder returns order id when it was placed by userID. Orders belonging
// to someone else are reported as not found.
func (s *CheckoutService) GetOrder(ctx context.Context, userID string, id int64) (*models.Order, error) {
	if userID == "" {
		return nil, models.ErrMissingUserID
	}

	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		if models.KindOf(err) == models.KindNotFound {
			return nil, err
		}
		return nil, models.NewUpstreamError("Failed to load order", err)
	}

	if order.UserID != userID {
		return nil, models.ErrOrderNotFound
	}
	return order, nil
}
