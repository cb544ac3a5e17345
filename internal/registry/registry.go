package registry

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Deibormi/Neighborhood-Security-Network/internal/models"
	"github.com/Deibormi/Neighborhood-Security-Network/internal/notify"
)

// Константы модели репутации
const (
	// MinReputation - стартовая репутация и порог для создания тревог
	MinReputation = 50
	// ResponseReward - награда за отклик на тревогу
	ResponseReward = 10
	// ResolveReward - награда репортеру за подтвержденную тревогу
	ResolveReward = 10
	// FalseAlarmPenalty - штраф репортеру за ложную тревогу
	FalseAlarmPenalty = 25
	// VerificationBonus - бонус за верификацию пользователя
	VerificationBonus = 25

	// Допустимый радиус тревоги в метрах
	MinAlertRadius = 1
	MaxAlertRadius = 5000
)

// Stats - агрегированные счетчики реестра
type Stats struct {
	TotalAlerts        uint64 `json:"total_alerts"`
	ActiveAlerts       uint64 `json:"active_alerts"`
	TotalNeighborhoods uint64 `json:"total_neighborhoods"`
	TotalUsers         uint64 `json:"total_users"`
}

// Service определяет контракт бизнес-логики реестра безопасности
type Service interface {
	RegisterUser(ctx context.Context, caller, contactInfo string) (*models.User, error)
	VerifyUser(ctx context.Context, caller, target string) error
	SetFirstResponder(ctx context.Context, caller, target string, flag bool) error
	AddEmergencyService(ctx context.Context, caller, identity string) error

	CreateAlert(ctx context.Context, caller string, alert *models.Alert) error
	RespondToAlert(ctx context.Context, caller string, alertID uint64) (*models.Alert, error)
	ResolveAlert(ctx context.Context, caller string, alertID uint64, status models.AlertStatus) error

	CreateNeighborhood(ctx context.Context, caller string, n *models.Neighborhood) error
	JoinNeighborhood(ctx context.Context, caller string, neighborhoodID uint64) error

	GetAlert(ctx context.Context, alertID uint64) (*models.Alert, error)
	GetAlertResponders(ctx context.Context, alertID uint64) ([]string, error)
	GetActiveAlerts(ctx context.Context) ([]uint64, error)
	GetUserProfile(ctx context.Context, address string) (*models.User, error)
	GetNeighborhood(ctx context.Context, neighborhoodID uint64) (*models.Neighborhood, error)
	GetStats(ctx context.Context) (*Stats, error)
}

// Registry - единственный владелец состояния. Все операции выполняются
// целиком под одним мьютексом, переходы состояния строго сериализованы.
type Registry struct {
	mu        sync.Mutex
	store     *Store
	owner     string
	logger    *logrus.Logger
	publisher notify.EventPublisher
}

func NewRegistry(store *Store, owner string, logger *logrus.Logger, publisher notify.EventPublisher) *Registry {
	return &Registry{
		store:     store,
		owner:     owner,
		logger:    logger,
		publisher: publisher,
	}
}

// emit публикует событие после успешной мутации. Ошибка публикации
// логируется и не откатывает уже совершенный переход.
func (r *Registry) emit(ctx context.Context, eventType models.EventType, actor string, payload map[string]any) {
	event := models.Event{
		ID:         uuid.New(),
		Type:       eventType,
		Actor:      actor,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
	if err := r.publisher.Publish(ctx, event); err != nil {
		r.logger.WithError(err).WithField("event_type", eventType).Error("Failed to publish registry event")
	}
}

// GetStats возвращает агрегированные счетчики
func (r *Registry) GetStats(ctx context.Context) (*Stats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats := &Stats{
		TotalAlerts:        uint64(len(r.store.Alerts)),
		TotalNeighborhoods: uint64(len(r.store.Neighborhoods)),
		TotalUsers:         uint64(len(r.store.Users)),
	}
	for _, a := range r.store.Alerts {
		if a.Status == models.AlertStatusActive {
			stats.ActiveAlerts++
		}
	}
	return stats, nil
}

// ExportState возвращает глубокую копию состояния для снапшота
func (r *Registry) ExportState() *Store {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store.Clone()
}

// RestoreState заменяет состояние реестра содержимым снапшота
func (r *Registry) RestoreState(store *Store) {
	r.mu.Lock()
	defer r.mu.Unlock()
	store.normalize()
	r.store = store
}
