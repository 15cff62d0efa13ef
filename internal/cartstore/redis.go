package cartstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"storefront/internal/models"

	"github.com/redis/go-redis/v9"
)

const maxTxRetries = 50

// RedisStore keeps one JSON array per user so carts survive restarts and
// are shared by every instance. Mutations run as WATCH/MULTI transactions.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration // 0 keeps carts forever
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// NewRedisClient parses a redis:// URL and checks the server is reachable
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return client, nil
}

func (s *RedisStore) Get(ctx context.Context, userID string) ([]models.CartItem, error) {
	return load(ctx, s.client, cartKey(userID))
}

func (s *RedisStore) Increment(ctx context.Context, userID string, productID int64) ([]models.CartItem, bool, error) {
	var found bool
	items, err := s.update(ctx, userID, func(items []models.CartItem) ([]models.CartItem, bool) {
		items, found = incrementItem(items, productID)
		return items, found
	})
	if err != nil {
		return nil, false, err
	}
	return items, found, nil
}

func (s *RedisStore) Add(ctx context.Context, userID string, item models.CartItem) ([]models.CartItem, error) {
	return s.update(ctx, userID, func(items []models.CartItem) ([]models.CartItem, bool) {
		return addItem(items, item), true
	})
}

func (s *RedisStore) Remove(ctx context.Context, userID string, productID int64) ([]models.CartItem, error) {
	return s.update(ctx, userID, func(items []models.CartItem) ([]models.CartItem, bool) {
		return removeItem(items, productID)
	})
}

func (s *RedisStore) Clear(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, cartKey(userID)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

// update applies fn to the stored cart under WATCH and writes the result
// back only when fn reports a change.
func (s *RedisStore) update(ctx context.Context, userID string, fn func([]models.CartItem) ([]models.CartItem, bool)) ([]models.CartItem, error) {
	key := cartKey(userID)
	var result []models.CartItem

	txf := func(tx *redis.Tx) error {
		items, err := load(ctx, tx, key)
		if err != nil {
			return err
		}

		next, changed := fn(items)
		result = next
		if !changed {
			return nil
		}

		data, err := json.Marshal(next)
		if err != nil {
			return fmt.Errorf("marshal cart failed: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			if len(next) == 0 {
				pipe.Del(ctx, key)
				return nil
			}
			pipe.Set(ctx, key, data, s.ttl)
			return nil
		})
		return err
	}

	for i := 0; i < maxTxRetries; i++ {
		err := s.client.Watch(ctx, txf, key)
		if err == nil {
			return cloneItems(result), nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return nil, fmt.Errorf("redis cart update failed: %w", err)
	}

	return nil, ErrConflict
}

// getter is implemented by both *redis.Client and *redis.Tx
type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func load(ctx context.Context, c getter, key string) ([]models.CartItem, error) {
	data, err := c.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return []models.CartItem{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var items []models.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("unmarshal cart failed: %w", err)
	}
	if items == nil {
		items = []models.CartItem{}
	}
	return items, nil
}

func cartKey(userID string) string {
	return fmt.Sprintf("cart:%s", userID)
}
