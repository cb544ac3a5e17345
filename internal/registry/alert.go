package registry

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Deibormi/Neighborhood-Security-Network/internal/models"
)

// CreateAlert создает тревогу. Вызывающий должен быть зарегистрирован и иметь
// репутацию не ниже MinReputation. Сервис присваивает id, статус и флаг
// верификации, модифицируя переданную модель.
func (r *Registry) CreateAlert(ctx context.Context, caller string, alert *models.Alert) error {
	log := r.logger.WithFields(logrus.Fields{
		"service":    "registry",
		"method":     "CreateAlert",
		"caller":     caller,
		"alert_type": alert.Type,
	})
	log.Info("Attempting to create alert")

	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.store.registeredUser(caller)
	if !ok {
		log.Warn("Unregistered caller attempted to create alert")
		return fmt.Errorf("registry: caller %s is not registered: %w", caller, ErrAuthorization)
	}
	if user.ReputationScore < MinReputation {
		log.Warn("Caller reputation below threshold")
		return fmt.Errorf("registry: reputation %d is below required %d: %w", user.ReputationScore, MinReputation, ErrAuthorization)
	}
	if !alert.Type.Valid() {
		return fmt.Errorf("registry: unknown alert type %q: %w", alert.Type, ErrValidation)
	}
	if alert.Location == "" {
		return fmt.Errorf("registry: location must not be empty: %w", ErrValidation)
	}
	if alert.Description == "" {
		return fmt.Errorf("registry: description must not be empty: %w", ErrValidation)
	}
	if alert.RadiusMeters < MinAlertRadius || alert.RadiusMeters > MaxAlertRadius {
		return fmt.Errorf("registry: radius %d is outside [%d,%d]: %w", alert.RadiusMeters, MinAlertRadius, MaxAlertRadius, ErrValidation)
	}

	alert.ID = r.store.allocAlertID()
	alert.Reporter = caller
	alert.Status = models.AlertStatusActive
	alert.Responders = nil
	alert.CreatedAt = time.Now().UTC()
	alert.Verified = user.IsVerified
	// Экстренная тревога от первого реагирующего считается подтвержденной
	// независимо от его собственной верификации
	if alert.Type == models.AlertTypeEmergency && user.IsFirstResponder {
		alert.Verified = true
	}

	r.store.Alerts[alert.ID] = alert.Clone()
	user.AlertsReported++

	r.emit(ctx, models.EventAlertCreated, caller, map[string]any{
		"alert_id": alert.ID,
		"reporter": caller,
		"type":     alert.Type,
		"location": alert.Location,
	})
	log.WithField("alert_id", alert.ID).Info("Alert created successfully")
	return nil
}

// RespondToAlert добавляет вызывающего в список откликнувшихся и начисляет
// ему ResponseReward. Повторный отклик на ту же тревогу запрещен.
func (r *Registry) RespondToAlert(ctx context.Context, caller string, alertID uint64) (*models.Alert, error) {
	log := r.logger.WithFields(logrus.Fields{
		"service":  "registry",
		"method":   "RespondToAlert",
		"caller":   caller,
		"alert_id": alertID,
	})
	log.Info("Attempting to respond to alert")

	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.store.registeredUser(caller)
	if !ok {
		log.Warn("Unregistered caller attempted to respond")
		return nil, fmt.Errorf("registry: caller %s is not registered: %w", caller, ErrAuthorization)
	}
	alert, ok := r.store.Alerts[alertID]
	if !ok {
		return nil, fmt.Errorf("registry: alert %d not found: %w", alertID, ErrNotFound)
	}
	if alert.Status != models.AlertStatusActive {
		return nil, fmt.Errorf("registry: alert %d is not active: %w", alertID, ErrInvalidState)
	}
	if alert.HasResponder(caller) {
		log.Warn("Duplicate response rejected")
		return nil, fmt.Errorf("registry: %s already responded to alert %d: %w", caller, alertID, ErrConflict)
	}

	alert.Responders = append(alert.Responders, caller)
	user.AlertsResponded++
	user.AddReputation(ResponseReward)

	r.emit(ctx, models.EventAlertResponded, caller, map[string]any{
		"alert_id":  alertID,
		"responder": caller,
	})
	log.Info("Response recorded successfully")
	return alert.Clone(), nil
}

// ResolveAlert переводит тревогу в конечный статус. Переход необратим.
// RESOLVED начисляет репортеру ResolveReward, FALSE_ALARM списывает
// FalseAlarmPenalty с нижней границей ноль.
func (r *Registry) ResolveAlert(ctx context.Context, caller string, alertID uint64, status models.AlertStatus) error {
	log := r.logger.WithFields(logrus.Fields{
		"service":  "registry",
		"method":   "ResolveAlert",
		"caller":   caller,
		"alert_id": alertID,
		"status":   status,
	})
	log.Info("Attempting to resolve alert")

	r.mu.Lock()
	defer r.mu.Unlock()

	if !status.Terminal() {
		return fmt.Errorf("registry: resolution status must be RESOLVED or FALSE_ALARM, got %q: %w", status, ErrValidation)
	}
	alert, ok := r.store.Alerts[alertID]
	if !ok {
		return fmt.Errorf("registry: alert %d not found: %w", alertID, ErrNotFound)
	}
	if alert.Status != models.AlertStatusActive {
		return fmt.Errorf("registry: alert %d is already resolved: %w", alertID, ErrInvalidState)
	}
	if !r.canResolve(alert, caller) {
		log.Warn("Caller is not allowed to resolve this alert")
		return fmt.Errorf("registry: %s may not resolve alert %d: %w", caller, alertID, ErrAuthorization)
	}

	alert.Status = status
	if reporter, ok := r.store.registeredUser(alert.Reporter); ok {
		switch status {
		case models.AlertStatusResolved:
			reporter.AddReputation(ResolveReward)
		case models.AlertStatusFalseAlarm:
			reporter.SubReputation(FalseAlarmPenalty)
		}
	}

	r.emit(ctx, models.EventAlertResolved, caller, map[string]any{
		"alert_id":    alertID,
		"status":      status,
		"resolved_by": caller,
	})
	log.Info("Alert resolved successfully")
	return nil
}

// canResolve - чистый предикат прав на закрытие тревоги: репортер,
// первый реагирующий, экстренная служба или владелец реестра.
func (r *Registry) canResolve(alert *models.Alert, caller string) bool {
	if caller == r.owner || caller == alert.Reporter {
		return true
	}
	if r.store.EmergencyServices[caller] {
		return true
	}
	if user, ok := r.store.registeredUser(caller); ok && user.IsFirstResponder {
		return true
	}
	return false
}
