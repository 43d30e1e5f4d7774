package docrepo

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/danilom/inkbase/internal/docstore"
	"github.com/danilom/inkbase/internal/domain"
)

type RecordRepo struct {
	col docstore.Collection
}

func NewRecordRepo(store docstore.Store) *RecordRepo {
	return &RecordRepo{col: store.Collection(docstore.DatabaseRecords)}
}

func (r *RecordRepo) Create(ctx context.Context, record *domain.Record) error {
	doc, err := toDoc(record)
	if err != nil {
		return err
	}
	return r.col.InsertOne(ctx, doc)
}

func (r *RecordRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Record, error) {
	doc, err := r.col.FindOne(ctx, byID(id))
	if err != nil || doc == nil {
		return nil, err
	}
	var rec domain.Record
	if err := fromDoc(doc, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *RecordRepo) ListByDatabase(ctx context.Context, databaseID uuid.UUID) ([]domain.Record, error) {
	docs, err := r.col.FindMany(ctx, docstore.Filter{"database_id": databaseID.String()}, 0)
	if err != nil {
		return nil, err
	}

	records := make([]domain.Record, 0, len(docs))
	for _, doc := range docs {
		var rec domain.Record
		if err := fromDoc(doc, &rec); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func (r *RecordRepo) ReplaceData(ctx context.Context, id uuid.UUID, data map[string]any, updatedAt time.Time) (int64, error) {
	return r.col.UpdateOne(ctx, byID(id), docstore.Patch{Set: docstore.Doc{
		"data":       data,
		"updated_at": updatedAt,
	}})
}

func (r *RecordRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	return r.col.DeleteOne(ctx, byID(id))
}
