package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/Deibormi/Neighborhood-Security-Network/internal/registry"
)

const snapshotKey = "registry:state"

// SnapshotStore хранит полный снапшот состояния реестра в Redis одним
// JSON-значением. Загружается на старте, сохраняется при остановке.
type SnapshotStore struct {
	redisClient *redis.Client
}

func NewSnapshotStore(client *redis.Client) *SnapshotStore {
	return &SnapshotStore{redisClient: client}
}

// Save сериализует состояние и записывает его под ключом снапшота
func (s *SnapshotStore) Save(ctx context.Context, store *registry.Store) error {
	val, err := json.Marshal(store)
	if err != nil {
		return fmt.Errorf("failed to marshal registry snapshot: %w", err)
	}
	// Снапшот живет без TTL, перезаписывается целиком
	if err := s.redisClient.Set(ctx, snapshotKey, val, 0).Err(); err != nil {
		return fmt.Errorf("failed to save registry snapshot: %w", err)
	}
	return nil
}

// Load возвращает сохраненное состояние или nil, если снапшота еще нет
func (s *SnapshotStore) Load(ctx context.Context) (*registry.Store, error) {
	val, err := s.redisClient.Get(ctx, snapshotKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load registry snapshot: %w", err)
	}

	store := registry.NewStore()
	if err := json.Unmarshal(val, store); err != nil {
		return nil, fmt.Errorf("failed to unmarshal registry snapshot: %w", err)
	}
	return store, nil
}
