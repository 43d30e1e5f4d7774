package docrepo

import (
	"context"

	"github.com/google/uuid"

	"github.com/danilom/inkbase/internal/docstore"
	"github.com/danilom/inkbase/internal/domain"
)

type PageRepo struct {
	col docstore.Collection
}

func NewPageRepo(store docstore.Store) *PageRepo {
	return &PageRepo{col: store.Collection(docstore.Pages)}
}

func (r *PageRepo) Create(ctx context.Context, page *domain.Page) error {
	doc, err := toDoc(page)
	if err != nil {
		return err
	}
	return r.col.InsertOne(ctx, doc)
}

func (r *PageRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Page, error) {
	doc, err := r.col.FindOne(ctx, byID(id))
	if err != nil || doc == nil {
		return nil, err
	}
	var p domain.Page
	if err := fromDoc(doc, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PageRepo) ListRoots(ctx context.Context, workspaceID uuid.UUID) ([]domain.Page, error) {
	docs, err := r.col.FindMany(ctx, docstore.Filter{
		"workspace_id": workspaceID.String(),
		"parent_id":    nil,
	}, 0)
	if err != nil {
		return nil, err
	}

	pages := make([]domain.Page, 0, len(docs))
	for _, doc := range docs {
		var p domain.Page
		if err := fromDoc(doc, &p); err != nil {
			return nil, err
		}
		pages = append(pages, p)
	}
	return pages, nil
}

func (r *PageRepo) SetFields(ctx context.Context, id uuid.UUID, fields map[string]any) (int64, error) {
	return r.col.UpdateOne(ctx, byID(id), docstore.Patch{Set: docstore.Doc(fields)})
}

func (r *PageRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	return r.col.DeleteOne(ctx, byID(id))
}
