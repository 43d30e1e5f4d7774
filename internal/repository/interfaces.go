package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/danilom/inkbase/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	AppendWorkspace(ctx context.Context, userID uuid.UUID, workspaceID string) error
}

type WorkspaceRepository interface {
	Create(ctx context.Context, workspace *domain.Workspace) error
	// ListForUser returns workspaces the user owns or is a member of.
	ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.Workspace, error)
}

type PageRepository interface {
	Create(ctx context.Context, page *domain.Page) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Page, error)
	// ListRoots returns the workspace's pages with no parent.
	ListRoots(ctx context.Context, workspaceID uuid.UUID) ([]domain.Page, error)
	// SetFields writes the given top-level fields and reports how many
	// documents matched.
	SetFields(ctx context.Context, id uuid.UUID, fields map[string]any) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type RecordRepository interface {
	Create(ctx context.Context, record *domain.Record) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Record, error)
	ListByDatabase(ctx context.Context, databaseID uuid.UUID) ([]domain.Record, error)
	// ReplaceData swaps the record's data map wholesale.
	ReplaceData(ctx context.Context, id uuid.UUID, data map[string]any, updatedAt time.Time) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}
