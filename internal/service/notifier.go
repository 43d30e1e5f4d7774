package service

import (
	"github.com/google/uuid"

	"github.com/danilom/inkbase/internal/domain"
)

// Notifier receives page and record lifecycle events. The WebSocket hub
// implements it; tests use NopNotifier.
type Notifier interface {
	PageCreated(page *domain.Page)
	PageUpdated(page *domain.Page)
	PageDeleted(workspaceID, pageID uuid.UUID)
	RecordCreated(workspaceID uuid.UUID, record *domain.Record)
	RecordUpdated(workspaceID uuid.UUID, record *domain.Record)
	RecordDeleted(workspaceID, databaseID, recordID uuid.UUID)
}

type NopNotifier struct{}

func (NopNotifier) PageCreated(*domain.Page)                      {}
func (NopNotifier) PageUpdated(*domain.Page)                      {}
func (NopNotifier) PageDeleted(uuid.UUID, uuid.UUID)              {}
func (NopNotifier) RecordCreated(uuid.UUID, *domain.Record)       {}
func (NopNotifier) RecordUpdated(uuid.UUID, *domain.Record)       {}
func (NopNotifier) RecordDeleted(uuid.UUID, uuid.UUID, uuid.UUID) {}
