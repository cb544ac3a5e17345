package registry

import (
	"context"
	"fmt"
	"sort"

	"github.com/Deibormi/Neighborhood-Security-Network/internal/models"
)

// Запросы без побочных эффектов. Наружу всегда отдается копия записи,
// а не ссылка в хранилище.

// GetAlert возвращает тревогу по id
func (r *Registry) GetAlert(ctx context.Context, alertID uint64) (*models.Alert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	alert, ok := r.store.Alerts[alertID]
	if !ok {
		return nil, fmt.Errorf("registry: alert %d not found: %w", alertID, ErrNotFound)
	}
	return alert.Clone(), nil
}

// GetAlertResponders возвращает откликнувшихся в порядке добавления
func (r *Registry) GetAlertResponders(ctx context.Context, alertID uint64) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	alert, ok := r.store.Alerts[alertID]
	if !ok {
		return nil, fmt.Errorf("registry: alert %d not found: %w", alertID, ErrNotFound)
	}
	responders := make([]string, len(alert.Responders))
	copy(responders, alert.Responders)
	return responders, nil
}

// GetActiveAlerts возвращает id всех активных тревог по возрастанию
func (r *Registry) GetActiveAlerts(ctx context.Context) ([]uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]uint64, 0, len(r.store.Alerts))
	for id, alert := range r.store.Alerts {
		if alert.Status == models.AlertStatusActive {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

// GetUserProfile возвращает профиль зарегистрированного пользователя
func (r *Registry) GetUserProfile(ctx context.Context, address string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.store.registeredUser(address)
	if !ok {
		return nil, fmt.Errorf("registry: user %s is not registered: %w", address, ErrNotFound)
	}
	return user.Clone(), nil
}

// GetNeighborhood возвращает район по id
func (r *Registry) GetNeighborhood(ctx context.Context, neighborhoodID uint64) (*models.Neighborhood, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.store.Neighborhoods[neighborhoodID]
	if !ok {
		return nil, fmt.Errorf("registry: neighborhood %d not found: %w", neighborhoodID, ErrNotFound)
	}
	return n.Clone(), nil
}
