package cartstore

import (
	"context"
	"testing"

	"storefront/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func headphones() models.CartItem {
	return models.CartItem{ProductID: 1, Title: "Wireless Headphones", Price: decimal.RequireFromString("99.99"), Image: "/static/images/headphones.jpg"}
}

func speaker() models.CartItem {
	return models.CartItem{ProductID: 3, Title: "Bluetooth Speaker", Price: decimal.RequireFromString("79.99"), Image: "/static/images/speaker.jpg"}
}

// runStoreContract checks the behaviour every Store must share
func runStoreContract(t *testing.T, newStore func(t *testing.T) Store) {
	ctx := context.Background()

	t.Run("unknown user has empty cart", func(t *testing.T) {
		s := newStore(t)
		items, err := s.Get(ctx, "never-seen")
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("add twice yields one line with quantity 2", func(t *testing.T) {
		s := newStore(t)
		_, err := s.Add(ctx, "u1", headphones())
		require.NoError(t, err)
		items, err := s.Add(ctx, "u1", headphones())
		require.NoError(t, err)

		require.Len(t, items, 1)
		assert.Equal(t, int64(1), items[0].ProductID)
		assert.Equal(t, 2, items[0].Quantity)
	})

	t.Run("add ignores incoming quantity", func(t *testing.T) {
		s := newStore(t)
		item := speaker()
		item.Quantity = 40
		items, err := s.Add(ctx, "u1", item)
		require.NoError(t, err)
		assert.Equal(t, 1, items[0].Quantity)
	})

	t.Run("increment only touches existing lines", func(t *testing.T) {
		s := newStore(t)
		items, found, err := s.Increment(ctx, "u1", 1)
		require.NoError(t, err)
		assert.False(t, found)
		assert.Empty(t, items)

		_, err = s.Add(ctx, "u1", headphones())
		require.NoError(t, err)
		items, found, err = s.Increment(ctx, "u1", 1)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, 2, items[0].Quantity)
	})

	t.Run("lines keep insertion order", func(t *testing.T) {
		s := newStore(t)
		_, err := s.Add(ctx, "u1", speaker())
		require.NoError(t, err)
		items, err := s.Add(ctx, "u1", headphones())
		require.NoError(t, err)

		require.Len(t, items, 2)
		assert.Equal(t, int64(3), items[0].ProductID)
		assert.Equal(t, int64(1), items[1].ProductID)
	})

	t.Run("remove absent product is a no-op", func(t *testing.T) {
		s := newStore(t)
		_, err := s.Add(ctx, "u1", headphones())
		require.NoError(t, err)

		items, err := s.Remove(ctx, "u1", 42)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, 1, items[0].Quantity)

		items, err = s.Remove(ctx, "nobody", 1)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("remove drops the line", func(t *testing.T) {
		s := newStore(t)
		_, err := s.Add(ctx, "u1", headphones())
		require.NoError(t, err)
		_, err = s.Add(ctx, "u1", speaker())
		require.NoError(t, err)

		items, err := s.Remove(ctx, "u1", 1)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, int64(3), items[0].ProductID)
	})

	t.Run("clear empties only that user", func(t *testing.T) {
		s := newStore(t)
		_, err := s.Add(ctx, "u1", headphones())
		require.NoError(t, err)
		_, err = s.Add(ctx, "u2", headphones())
		require.NoError(t, err)

		require.NoError(t, s.Clear(ctx, "u1"))

		items, err := s.Get(ctx, "u1")
		require.NoError(t, err)
		assert.Empty(t, items)

		items, err = s.Get(ctx, "u2")
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})

	t.Run("returned slices are copies", func(t *testing.T) {
		s := newStore(t)
		items, err := s.Add(ctx, "u1", headphones())
		require.NoError(t, err)
		items[0].Quantity = 99

		stored, err := s.Get(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, 1, stored[0].Quantity)
	})

	t.Run("concurrent adds are not lost", func(t *testing.T) {
		s := newStore(t)
		const N = 25

		g, gctx := errgroup.WithContext(ctx)
		for i := 0; i < N; i++ {
			g.Go(func() error {
				_, err := s.Add(gctx, "racer", headphones())
				return err
			})
		}
		require.NoError(t, g.Wait())

		items, err := s.Get(ctx, "racer")
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, N, items[0].Quantity)
	})
}

func TestMemoryStore(t *testing.T) {
	runStoreContract(t, func(t *testing.T) Store { return NewMemoryStore() })
}
