package registry

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Deibormi/Neighborhood-Security-Network/internal/models"
)

// RegisterUser регистрирует вызывающего. Стартовая репутация равна MinReputation.
func (r *Registry) RegisterUser(ctx context.Context, caller, contactInfo string) (*models.User, error) {
	log := r.logger.WithFields(logrus.Fields{
		"service": "registry",
		"method":  "RegisterUser",
		"caller":  caller,
	})
	log.Info("Attempting to register user")

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store.registeredUser(caller); ok {
		log.Warn("User already registered")
		return nil, fmt.Errorf("registry: user %s already registered: %w", caller, ErrConflict)
	}
	if contactInfo == "" {
		return nil, fmt.Errorf("registry: contact info must not be empty: %w", ErrValidation)
	}

	user := &models.User{
		Address:         caller,
		IsRegistered:    true,
		ReputationScore: MinReputation,
		ContactInfo:     contactInfo,
		RegisteredAt:    time.Now().UTC(),
	}
	r.store.Users[caller] = user

	r.emit(ctx, models.EventUserRegistered, caller, map[string]any{
		"address": caller,
	})
	log.Info("User registered successfully")
	return user.Clone(), nil
}

// VerifyUser верифицирует пользователя. Доступно только владельцу реестра.
func (r *Registry) VerifyUser(ctx context.Context, caller, target string) error {
	log := r.logger.WithFields(logrus.Fields{
		"service": "registry",
		"method":  "VerifyUser",
		"caller":  caller,
		"target":  target,
	})
	log.Info("Attempting to verify user")

	r.mu.Lock()
	defer r.mu.Unlock()

	if caller != r.owner {
		log.Warn("Non-owner attempted to verify user")
		return fmt.Errorf("registry: only the owner can verify users: %w", ErrAuthorization)
	}
	user, ok := r.store.registeredUser(target)
	if !ok {
		return fmt.Errorf("registry: user %s is not registered: %w", target, ErrNotFound)
	}
	if user.IsVerified {
		return fmt.Errorf("registry: user %s already verified: %w", target, ErrConflict)
	}

	user.IsVerified = true
	user.AddReputation(VerificationBonus)

	r.emit(ctx, models.EventUserVerified, caller, map[string]any{
		"address": target,
	})
	log.Info("User verified successfully")
	return nil
}

// SetFirstResponder включает или выключает флаг первого реагирующего.
// Доступно только владельцу и только для верифицированных пользователей.
func (r *Registry) SetFirstResponder(ctx context.Context, caller, target string, flag bool) error {
	log := r.logger.WithFields(logrus.Fields{
		"service": "registry",
		"method":  "SetFirstResponder",
		"caller":  caller,
		"target":  target,
		"flag":    flag,
	})
	log.Info("Attempting to set first responder flag")

	r.mu.Lock()
	defer r.mu.Unlock()

	if caller != r.owner {
		log.Warn("Non-owner attempted to set first responder flag")
		return fmt.Errorf("registry: only the owner can manage first responders: %w", ErrAuthorization)
	}
	user, ok := r.store.registeredUser(target)
	if !ok {
		return fmt.Errorf("registry: user %s is not registered: %w", target, ErrNotFound)
	}
	if !user.IsVerified {
		return fmt.Errorf("registry: user %s is not verified: %w", target, ErrInvalidState)
	}

	user.IsFirstResponder = flag
	log.Info("First responder flag updated")
	return nil
}

// AddEmergencyService помечает адрес как экстренную службу. Идемпотентно,
// существование адреса в реестре пользователей не проверяется.
func (r *Registry) AddEmergencyService(ctx context.Context, caller, identity string) error {
	log := r.logger.WithFields(logrus.Fields{
		"service":  "registry",
		"method":   "AddEmergencyService",
		"caller":   caller,
		"identity": identity,
	})
	log.Info("Attempting to add emergency service")

	r.mu.Lock()
	defer r.mu.Unlock()

	if caller != r.owner {
		log.Warn("Non-owner attempted to add emergency service")
		return fmt.Errorf("registry: only the owner can add emergency services: %w", ErrAuthorization)
	}

	r.store.EmergencyServices[identity] = true
	log.Info("Emergency service added")
	return nil
}
