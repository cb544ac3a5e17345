package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/Deibormi/Neighborhood-Security-Network/internal/models"
)

const (
	eventQueueKey = "registry_events"
)

// EventPublisher - интерфейс публикации доменных событий реестра
type EventPublisher interface {
	Publish(ctx context.Context, event models.Event) error
}

// RedisEventPublisher - реализация EventPublisher поверх списка Redis
type RedisEventPublisher struct {
	redisClient *redis.Client
}

// NewRedisEventPublisher создает новый RedisEventPublisher
func NewRedisEventPublisher(client *redis.Client) *RedisEventPublisher {
	return &RedisEventPublisher{
		redisClient: client,
	}
}

// Publish кладет событие в очередь Redis
func (p *RedisEventPublisher) Publish(ctx context.Context, event models.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal registry event: %w", err)
	}

	// LPUSH в левую часть списка, воркер забирает BRPOP справа
	if err := p.redisClient.LPush(ctx, eventQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish registry event to Redis: %w", err)
	}
	return nil
}
