package docrepo

import (
	"context"

	"github.com/google/uuid"

	"github.com/danilom/inkbase/internal/docstore"
	"github.com/danilom/inkbase/internal/domain"
)

type WorkspaceRepo struct {
	col docstore.Collection
}

func NewWorkspaceRepo(store docstore.Store) *WorkspaceRepo {
	return &WorkspaceRepo{col: store.Collection(docstore.Workspaces)}
}

func (r *WorkspaceRepo) Create(ctx context.Context, ws *domain.Workspace) error {
	doc, err := toDoc(ws)
	if err != nil {
		return err
	}
	return r.col.InsertOne(ctx, doc)
}

func (r *WorkspaceRepo) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.Workspace, error) {
	docs, err := r.col.FindMany(ctx, docstore.AnyOf(
		docstore.Filter{"owner_id": userID.String()},
		docstore.Filter{"members": docstore.Contains(userID.String())},
	), 0)
	if err != nil {
		return nil, err
	}

	workspaces := make([]domain.Workspace, 0, len(docs))
	for _, doc := range docs {
		var ws domain.Workspace
		if err := fromDoc(doc, &ws); err != nil {
			return nil, err
		}
		workspaces = append(workspaces, ws)
	}
	return workspaces, nil
}
