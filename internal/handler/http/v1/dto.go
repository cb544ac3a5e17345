package v1

import (
	"time"

	"github.com/google/uuid"
)

// RegisterUserRequest DTO для регистрации пользователя
// @Description DTO для регистрации пользователя
type RegisterUserRequest struct {
	ContactInfo string `json:"contact_info" validate:"required"`
}

// SetFirstResponderRequest DTO для установки флага первого реагирующего
// @Description DTO для установки флага первого реагирующего
type SetFirstResponderRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

// AddEmergencyServiceRequest DTO для назначения экстренной службы
// @Description DTO для назначения экстренной службы
type AddEmergencyServiceRequest struct {
	Address string `json:"address" validate:"required"`
}

// UserResponse DTO для ответа с профилем пользователя
// @Description DTO для ответа с профилем пользователя
type UserResponse struct {
	Address          string    `json:"address"`
	IsRegistered     bool      `json:"is_registered"`
	IsVerified       bool      `json:"is_verified"`
	IsFirstResponder bool      `json:"is_first_responder"`
	ReputationScore  int64     `json:"reputation_score"`
	AlertsReported   int64     `json:"alerts_reported"`
	AlertsResponded  int64     `json:"alerts_responded"`
	ContactInfo      string    `json:"contact_info"`
	RegisteredAt     time.Time `json:"registered_at"`
}

// CreateAlertRequest DTO для создания тревоги
// @Description DTO для создания тревоги
type CreateAlertRequest struct {
	Type         string `json:"type" validate:"required,oneof=EMERGENCY SUSPICIOUS WEATHER MISSING_PERSON TRAFFIC UTILITY"`
	Location     string `json:"location" validate:"required"`
	Description  string `json:"description" validate:"required"`
	Latitude     int64  `json:"latitude"`
	Longitude    int64  `json:"longitude"`
	RadiusMeters int64  `json:"radius_meters" validate:"required"`
}

// ResolveAlertRequest DTO для закрытия тревоги
// @Description DTO для закрытия тревоги
type ResolveAlertRequest struct {
	Status string `json:"status" validate:"required,oneof=ACTIVE RESOLVED FALSE_ALARM"`
}

// AlertResponse DTO для ответа с информацией о тревоге
// @Description DTO для ответа с информацией о тревоге
type AlertResponse struct {
	ID           uint64    `json:"id"`
	Reporter     string    `json:"reporter"`
	Type         string    `json:"type"`
	Status       string    `json:"status"`
	Location     string    `json:"location"`
	Description  string    `json:"description"`
	Latitude     int64     `json:"latitude"`
	Longitude    int64     `json:"longitude"`
	RadiusMeters int64     `json:"radius_meters"`
	Responders   []string  `json:"responders"`
	Verified     bool      `json:"verified"`
	CreatedAt    time.Time `json:"created_at"`
}

// RespondersResponse DTO для ответа со списком откликнувшихся
// @Description DTO для ответа со списком откликнувшихся
type RespondersResponse struct {
	AlertID    uint64   `json:"alert_id"`
	Responders []string `json:"responders"`
}

// ActiveAlertsResponse DTO для ответа со списком активных тревог
// @Description DTO для ответа со списком активных тревог
type ActiveAlertsResponse struct {
	ActiveAlerts []uint64 `json:"active_alerts"`
}

// CreateNeighborhoodRequest DTO для создания района
// @Description DTO для создания района
type CreateNeighborhoodRequest struct {
	Name         string `json:"name" validate:"required,min=2,max=255"`
	CenterLat    int64  `json:"center_lat"`
	CenterLng    int64  `json:"center_lng"`
	RadiusMeters int64  `json:"radius_meters" validate:"required"`
}

// NeighborhoodResponse DTO для ответа с информацией о районе
// @Description DTO для ответа с информацией о районе
type NeighborhoodResponse struct {
	ID           uint64    `json:"id"`
	Name         string    `json:"name"`
	CenterLat    int64     `json:"center_lat"`
	CenterLng    int64     `json:"center_lng"`
	RadiusMeters int64     `json:"radius_meters"`
	Residents    []string  `json:"residents"`
	Moderator    string    `json:"moderator"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

// StatsResponse DTO для ответа со статистикой реестра
// @Description DTO для ответа со статистикой реестра
type StatsResponse struct {
	TotalAlerts        uint64 `json:"total_alerts"`
	ActiveAlerts       uint64 `json:"active_alerts"`
	TotalNeighborhoods uint64 `json:"total_neighborhoods"`
	TotalUsers         uint64 `json:"total_users"`
}

// EventResponse DTO для записи журнала событий
// @Description DTO для записи журнала событий
type EventResponse struct {
	ID         uuid.UUID      `json:"id"`
	Type       string         `json:"type"`
	Actor      string         `json:"actor"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload"`
}
