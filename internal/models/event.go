package models

import (
	"time"

	"github.com/google/uuid"
)

// EventType - тип доменного события реестра
type EventType string

const (
	EventAlertCreated        EventType = "AlertCreated"
	EventAlertResponded      EventType = "AlertResponded"
	EventAlertResolved       EventType = "AlertResolved"
	EventUserRegistered      EventType = "UserRegistered"
	EventUserVerified        EventType = "UserVerified"
	EventNeighborhoodCreated EventType = "NeighborhoodCreated"
)

// Event - наблюдаемый извне факт, публикуемый после успешной мутации.
// Payload - плоский JSON-объект с полями, специфичными для типа события.
type Event struct {
	ID         uuid.UUID      `json:"id"`
	Type       EventType      `json:"type"`
	Actor      string         `json:"actor"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload"`
}
