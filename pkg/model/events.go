package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Envelope is the canonical event envelope.
// All messages published to NATS follow this format.
type Envelope struct {
	ID            uuid.UUID       `json:"id"`
	CorrelationID uuid.UUID       `json:"correlation_id"`
	ServiceID     int             `json:"service_id"`
	Topic         string          `json:"topic"`
	EventType     string          `json:"event_type"`
	Version       string          `json:"version"`
	Timestamp     time.Time       `json:"timestamp"`
	Payload       json.RawMessage `json:"payload"`
}

// ControlResult describes the outcome of a control action on a component.
type ControlResult struct {
	ServiceID   int       `json:"service_id"`
	ComponentID string    `json:"component_id"`
	Kind        string    `json:"kind"` // section | gate | thermostat
	Desired     string    `json:"desired"`
	Reached     bool      `json:"reached"`
	Timestamp   time.Time `json:"timestamp"`
}
