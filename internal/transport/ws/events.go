package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/danilom/inkbase/internal/domain"
)

// Event types - Client → Server
const (
	EventTypeSubscribe   = "workspace.subscribe"
	EventTypeUnsubscribe = "workspace.unsubscribe"
	EventTypePing        = "ping"
)

// Event types - Server → Client
const (
	EventTypePageCreated   = "page.created"
	EventTypePageUpdated   = "page.updated"
	EventTypePageDeleted   = "page.deleted"
	EventTypeRecordCreated = "record.created"
	EventTypeRecordUpdated = "record.updated"
	EventTypeRecordDeleted = "record.deleted"
	EventTypePong          = "pong"
	EventTypeError         = "error"
)

// Event is the envelope for all WebSocket messages.
type Event struct {
	Type        string          `json:"type"`
	WorkspaceID *uuid.UUID      `json:"workspace_id,omitempty"`
	Payload     json.RawMessage `json:"payload,omitempty"`
	Timestamp   int64           `json:"ts,omitempty"`
}

// --- Client → Server payloads ---

type WorkspacePayload struct {
	WorkspaceID uuid.UUID `json:"workspace_id"`
}

// --- Server → Client payloads ---

type PagePayload struct {
	domain.Page
}

type PageDeletedPayload struct {
	ID uuid.UUID `json:"id"`
}

type RecordPayload struct {
	domain.Record
}

type RecordDeletedPayload struct {
	ID         uuid.UUID `json:"id"`
	DatabaseID uuid.UUID `json:"database_id"`
}

type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewEvent creates a server→client event with the current timestamp.
func NewEvent(eventType string, workspaceID *uuid.UUID, payload any) (*Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &Event{
		Type:        eventType,
		WorkspaceID: workspaceID,
		Payload:     data,
		Timestamp:   time.Now().Unix(),
	}, nil
}
