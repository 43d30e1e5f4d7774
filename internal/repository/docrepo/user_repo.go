package docrepo

import (
	"context"

	"github.com/google/uuid"

	"github.com/danilom/inkbase/internal/docstore"
	"github.com/danilom/inkbase/internal/domain"
)

type UserRepo struct {
	col docstore.Collection
}

func NewUserRepo(store docstore.Store) *UserRepo {
	return &UserRepo{col: store.Collection(docstore.Users)}
}

func (r *UserRepo) Create(ctx context.Context, user *domain.User) error {
	doc, err := toDoc(user)
	if err != nil {
		return err
	}
	return r.col.InsertOne(ctx, doc)
}

func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.findOne(ctx, byID(id))
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, docstore.Filter{"email": email})
}

func (r *UserRepo) AppendWorkspace(ctx context.Context, userID uuid.UUID, workspaceID string) error {
	_, err := r.col.UpdateOne(ctx, byID(userID), docstore.Patch{
		Push: docstore.Doc{"workspaces": workspaceID},
	})
	return err
}

func (r *UserRepo) findOne(ctx context.Context, f docstore.Filter) (*domain.User, error) {
	doc, err := r.col.FindOne(ctx, f)
	if err != nil || doc == nil {
		return nil, err
	}
	var u domain.User
	if err := fromDoc(doc, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
