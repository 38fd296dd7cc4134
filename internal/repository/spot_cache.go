package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/spot_tracker/internal/models"
	"github.com/shenikar/spot_tracker/internal/service"
)

const (
	spotKeyPrefix = "spot:"
	spotListKey   = "spots:list"
)

// SpotCache - кэш спотов в Redis
type SpotCache struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewSpotCache(redisClient *redis.Client, ttl time.Duration) service.SpotCache {
	return &SpotCache{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

func spotKey(id int64) string {
	return fmt.Sprintf("%s%d", spotKeyPrefix, id)
}

// GetSpotFromCache пытается получить спот из Redis
func (c *SpotCache) GetSpotFromCache(ctx context.Context, id int64) (*models.Spot, error) {
	val, err := c.redisClient.Get(ctx, spotKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get spot from cache: %w", err)
	}

	spot := &models.Spot{}
	if err := json.Unmarshal(val, spot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal spot from cache: %w", err)
	}
	return spot, nil
}

// SetSpotCache сохраняет спот в Redis
func (c *SpotCache) SetSpotCache(ctx context.Context, spot *models.Spot) error {
	val, err := json.Marshal(spot)
	if err != nil {
		return fmt.Errorf("failed to marshal spot for cache: %w", err)
	}
	if err := c.redisClient.Set(ctx, spotKey(spot.ID), val, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set spot in cache: %w", err)
	}
	return nil
}

// GetListFromCache возвращает закэшированный упорядоченный список или nil
func (c *SpotCache) GetListFromCache(ctx context.Context) ([]*models.Spot, error) {
	val, err := c.redisClient.Get(ctx, spotListKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get spot list from cache: %w", err)
	}

	spots := make([]*models.Spot, 0)
	if err := json.Unmarshal(val, &spots); err != nil {
		return nil, fmt.Errorf("failed to unmarshal spot list from cache: %w", err)
	}
	return spots, nil
}

// SetListCache сохраняет упорядоченный список в Redis
func (c *SpotCache) SetListCache(ctx context.Context, spots []*models.Spot) error {
	if spots == nil {
		spots = []*models.Spot{}
	}
	val, err := json.Marshal(spots)
	if err != nil {
		return fmt.Errorf("failed to marshal spot list for cache: %w", err)
	}
	if err := c.redisClient.Set(ctx, spotListKey, val, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set spot list in cache: %w", err)
	}
	return nil
}

// InvalidateSpotCache удаляет спот и список из Redis кэша
func (c *SpotCache) InvalidateSpotCache(ctx context.Context, id int64) error {
	if err := c.redisClient.Del(ctx, spotKey(id), spotListKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate spot cache: %w", err)
	}
	return nil
}

// InvalidateListCache удаляет список из Redis кэша
func (c *SpotCache) InvalidateListCache(ctx context.Context) error {
	if err := c.redisClient.Del(ctx, spotListKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate spot list cache: %w", err)
	}
	return nil
}

// InvalidateAll удаляет из кэша все споты и список
func (c *SpotCache) InvalidateAll(ctx context.Context) error {
	keys := []string{spotListKey}
	iter := c.redisClient.Scan(ctx, 0, spotKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan spot cache keys: %w", err)
	}

	if err := c.redisClient.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to invalidate spot cache: %w", err)
	}
	return nil
}
