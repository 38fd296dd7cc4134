package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/spot_tracker/internal/models"
)

const (
	webhookQueueKey = "spot_webhook_events"
)

// Типы событий жизненного цикла спота
const (
	EventSpotCreated  = "spot.created"
	EventSpotUpdated  = "spot.updated"
	EventSpotDeleted  = "spot.deleted"
	EventSpotsCleared = "spots.cleared"
)

// SpotEvent - структура для данных вебхука
type SpotEvent struct {
	ID        uuid.UUID    `json:"id"`
	Type      string       `json:"type"`
	SpotID    int64        `json:"spot_id,omitempty"`
	Spot      *models.Spot `json:"spot,omitempty"`
	Deleted   int64        `json:"deleted,omitempty"` // Количество удаленных спотов для spots.cleared
	Timestamp time.Time    `json:"timestamp"`
}

// NewSpotEvent создает событие с новым id и текущим временем
func NewSpotEvent(eventType string, spotID int64, spot *models.Spot) SpotEvent {
	return SpotEvent{
		ID:        uuid.New(),
		Type:      eventType,
		SpotID:    spotID,
		Spot:      spot,
		Timestamp: time.Now().UTC(),
	}
}

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

// WebhookPublisher - интерфейс для публикации вебхуков
type WebhookPublisher interface {
	Publish(ctx context.Context, event SpotEvent) error
}

// RedisWebhookPublisher - реализация WebhookPublisher, использующая Redis
type RedisWebhookPublisher struct {
	redisClient *redis.Client
}

// NewRedisWebhookPublisher создает новый RedisWebhookPublisher
func NewRedisWebhookPublisher(client *redis.Client) *RedisWebhookPublisher {
	return &RedisWebhookPublisher{
		redisClient: client,
	}
}

// Publish публикует событие вебхука в очередь Redis
func (p *RedisWebhookPublisher) Publish(ctx context.Context, event SpotEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	// LPUSH в голову списка, воркер забирает с хвоста через BRPOP
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}
