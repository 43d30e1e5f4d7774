package ws

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/danilom/inkbase/internal/domain"
)

// HubNotifier implements service.Notifier using the WebSocket Hub.
type HubNotifier struct {
	hub    *Hub
	logger *zap.Logger
}

func NewHubNotifier(hub *Hub, logger *zap.Logger) *HubNotifier {
	return &HubNotifier{hub: hub, logger: logger}
}

func (n *HubNotifier) PageCreated(page *domain.Page) {
	n.broadcast(EventTypePageCreated, page.WorkspaceID, PagePayload{Page: *page})
}

func (n *HubNotifier) PageUpdated(page *domain.Page) {
	n.broadcast(EventTypePageUpdated, page.WorkspaceID, PagePayload{Page: *page})
}

func (n *HubNotifier) PageDeleted(workspaceID, pageID uuid.UUID) {
	n.broadcast(EventTypePageDeleted, workspaceID, PageDeletedPayload{ID: pageID})
}

func (n *HubNotifier) RecordCreated(workspaceID uuid.UUID, record *domain.Record) {
	n.broadcast(EventTypeRecordCreated, workspaceID, RecordPayload{Record: *record})
}

func (n *HubNotifier) RecordUpdated(workspaceID uuid.UUID, record *domain.Record) {
	n.broadcast(EventTypeRecordUpdated, workspaceID, RecordPayload{Record: *record})
}

func (n *HubNotifier) RecordDeleted(workspaceID, databaseID, recordID uuid.UUID) {
	n.broadcast(EventTypeRecordDeleted, workspaceID, RecordDeletedPayload{ID: recordID, DatabaseID: databaseID})
}

func (n *HubNotifier) broadcast(eventType string, workspaceID uuid.UUID, payload any) {
	evt, err := NewEvent(eventType, &workspaceID, payload)
	if err != nil {
		n.logger.Error("ws notifier marshal failed", zap.Error(err))
		return
	}
	n.hub.BroadcastToWorkspace(workspaceID, evt)
}
