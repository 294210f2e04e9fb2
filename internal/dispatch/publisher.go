package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	dispatchQueueKey = "dispatch_notifications"
)

// Notification - уведомление для внешнего SMS-шлюза о диспетчеризации инцидента
type Notification struct {
	IncidentID string    `json:"incidentId"`
	Location   string    `json:"location"`
	Severity   string    `json:"severity"`
	DetectedAt time.Time `json:"detectedAt"`
}

// Publisher - интерфейс для публикации уведомлений диспетчеризации
type Publisher interface {
	Publish(ctx context.Context, n Notification) error
}

// RedisPublisher - реализация Publisher, использующая очередь в Redis
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish публикует уведомление в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, n Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to marshal dispatch notification: %w", err)
	}

	// LPUSH добавляет уведомление в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, dispatchQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish dispatch notification to Redis: %w", err)
	}
	return nil
}
