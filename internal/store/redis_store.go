package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/G-omar-H/weLovePadel-sub000/internal/delivery"
	"github.com/redis/go-redis/v9"
)

const (
	orderKeyPrefix = "order:"
	cartKeyPrefix  = "cart:"

	// abandoned carts expire on their own; orders are kept.
	cartTTL = 30 * 24 * time.Hour
)

// RedisStore implements Store on a Redis instance.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) Store {
	return &RedisStore{client: client}
}

func (s *RedisStore) SaveOrder(ctx context.Context, order OrderRecord) error {
	payload, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("failed to marshal order: %w", err)
	}

	if err = s.client.Set(ctx, orderKeyPrefix+order.Code, payload, 0).Err(); err != nil {
		return fmt.Errorf("failed to save order %s: %w", order.Code, err)
	}
	return nil
}

func (s *RedisStore) GetOrder(ctx context.Context, code string) (*OrderRecord, error) {
	payload, err := s.client.Get(ctx, orderKeyPrefix+code).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load order %s: %w", code, err)
	}

	var order OrderRecord
	if err = json.Unmarshal(payload, &order); err != nil {
		return nil, fmt.Errorf("failed to unmarshal order %s: %w", code, err)
	}
	return &order, nil
}

// ListOrders scans all persisted orders. Single-tenant shop, small keyspace.
func (s *RedisStore) ListOrders(ctx context.Context) ([]OrderRecord, error) {
	var orders []OrderRecord

	iter := s.client.Scan(ctx, 0, orderKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		payload, err := s.client.Get(ctx, iter.Val()).Bytes()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load order %s: %w", iter.Val(), err)
		}

		var order OrderRecord
		if err = json.Unmarshal(payload, &order); err != nil {
			return nil, fmt.Errorf("failed to unmarshal order %s: %w", iter.Val(), err)
		}
		orders = append(orders, order)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan orders: %w", err)
	}

	return orders, nil
}

// AttachTracking records a successful delivery creation against the order.
func (s *RedisStore) AttachTracking(ctx context.Context, code string, result *delivery.DeliveryResult) error {
	order, err := s.GetOrder(ctx, code)
	if err != nil {
		return err
	}

	order.DeliveryStatus = DeliveryStatusCreated
	order.DeliveryCode = result.DeliveryCode
	order.TrackingCode = result.TrackingCode
	order.UsedFallback = result.UsedFallback
	order.DeliveryError = ""

	return s.SaveOrder(ctx, *order)
}

func (s *RedisStore) SaveCart(ctx context.Context, cart Cart) error {
	cart.UpdatedAt = time.Now()

	payload, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}

	if err = s.client.Set(ctx, cartKeyPrefix+cart.ID, payload, cartTTL).Err(); err != nil {
		return fmt.Errorf("failed to save cart %s: %w", cart.ID, err)
	}
	return nil
}

func (s *RedisStore) GetCart(ctx context.Context, id string) (*Cart, error) {
	payload, err := s.client.Get(ctx, cartKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart %s: %w", id, err)
	}

	var cart Cart
	if err = json.Unmarshal(payload, &cart); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cart %s: %w", id, err)
	}
	return &cart, nil
}

func (s *RedisStore) DeleteCart(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, cartKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("failed to delete cart %s: %w", id, err)
	}
	return nil
}
