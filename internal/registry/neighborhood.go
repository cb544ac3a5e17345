package registry

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Deibormi/Neighborhood-Security-Network/internal/models"
)

// CreateNeighborhood создает район. Доступно только верифицированным
// пользователям, создатель становится первым жителем и модератором.
func (r *Registry) CreateNeighborhood(ctx context.Context, caller string, n *models.Neighborhood) error {
	log := r.logger.WithFields(logrus.Fields{
		"service": "registry",
		"method":  "CreateNeighborhood",
		"caller":  caller,
		"name":    n.Name,
	})
	log.Info("Attempting to create neighborhood")

	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.store.registeredUser(caller)
	if !ok || !user.IsVerified {
		log.Warn("Unverified caller attempted to create neighborhood")
		return fmt.Errorf("registry: only verified users can create neighborhoods: %w", ErrAuthorization)
	}
	if n.Name == "" {
		return fmt.Errorf("registry: neighborhood name must not be empty: %w", ErrValidation)
	}
	if n.RadiusMeters <= 0 {
		return fmt.Errorf("registry: neighborhood radius must be positive: %w", ErrValidation)
	}

	n.ID = r.store.allocNeighborhoodID()
	n.Residents = []string{caller}
	n.Moderator = caller
	n.IsActive = true
	n.CreatedAt = time.Now().UTC()

	r.store.Neighborhoods[n.ID] = n.Clone()

	r.emit(ctx, models.EventNeighborhoodCreated, caller, map[string]any{
		"neighborhood_id": n.ID,
		"name":            n.Name,
		"moderator":       caller,
	})
	log.WithField("neighborhood_id", n.ID).Info("Neighborhood created successfully")
	return nil
}

// JoinNeighborhood добавляет вызывающего в жители района.
// Повторное вступление не отсекается и добавляет дубликат, в отличие
// от проверки откликов в RespondToAlert.
func (r *Registry) JoinNeighborhood(ctx context.Context, caller string, neighborhoodID uint64) error {
	log := r.logger.WithFields(logrus.Fields{
		"service":         "registry",
		"method":          "JoinNeighborhood",
		"caller":          caller,
		"neighborhood_id": neighborhoodID,
	})
	log.Info("Attempting to join neighborhood")

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store.registeredUser(caller); !ok {
		log.Warn("Unregistered caller attempted to join neighborhood")
		return fmt.Errorf("registry: caller %s is not registered: %w", caller, ErrAuthorization)
	}
	n, ok := r.store.Neighborhoods[neighborhoodID]
	if !ok {
		return fmt.Errorf("registry: neighborhood %d not found: %w", neighborhoodID, ErrNotFound)
	}
	if !n.IsActive {
		return fmt.Errorf("registry: neighborhood %d is not active: %w", neighborhoodID, ErrInvalidState)
	}

	n.Residents = append(n.Residents, caller)
	log.Info("Joined neighborhood successfully")
	return nil
}
