package kafka

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event is the envelope published to every topic. Payload carries the
// domain-specific body, the rest is routing and tracing metadata.
type Event struct {
	EventID    string          `json:"event_id"`
	EventType  string          `json:"event_type"`
	OccurredAt time.Time       `json:"occurred_at"`
	RequestID  string          `json:"request_id,omitempty"`
	Payload    json.RawMessage `json:"payload"`
}

func NewEvent(eventType string, requestID string, payload any) (*Event, error) {
	if payload == nil {
		return nil, ErrNilPayload
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return &Event{
		EventID:    uuid.NewString(),
		EventType:  eventType,
		OccurredAt: time.Now().UTC(),
		RequestID:  requestID,
		Payload:    body,
	}, nil
}

func (e *Event) Encode() ([]byte, error) {
	return json.Marshal(e)
}

func DecodeEvent(data []byte) (*Event, error) {
	var event Event
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, err
	}
	return &event, nil
}
