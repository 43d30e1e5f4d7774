package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/danilom/inkbase/internal/domain"
	"github.com/danilom/inkbase/internal/repository"
)

var ErrRecordNotFound = errors.New("record not found")

type RecordService struct {
	recordRepo repository.RecordRepository
	// pageRepo only resolves the owning workspace for change events; record
	// writes never validate against the parent page.
	pageRepo repository.PageRepository
	notifier Notifier
}

func NewRecordService(recordRepo repository.RecordRepository, pageRepo repository.PageRepository, notifier Notifier) *RecordService {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &RecordService{recordRepo: recordRepo, pageRepo: pageRepo, notifier: notifier}
}

type CreateRecordInput struct {
	Data map[string]any `json:"data"`
}

func (s *RecordService) List(ctx context.Context, databaseID uuid.UUID) ([]domain.Record, error) {
	return s.recordRepo.ListByDatabase(ctx, databaseID)
}

func (s *RecordService) Create(ctx context.Context, databaseID uuid.UUID, data map[string]any) (*domain.Record, error) {
	if data == nil {
		data = map[string]any{}
	}

	now := time.Now().UTC()
	record := &domain.Record{
		ID:         uuid.New(),
		DatabaseID: databaseID,
		Data:       data,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.recordRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("creating record: %w", err)
	}

	if wsID, ok := s.workspaceOf(ctx, databaseID); ok {
		s.notifier.RecordCreated(wsID, record)
	}
	return record, nil
}

// Update replaces the record's data wholesale; it is not merged with the
// existing map.
func (s *RecordService) Update(ctx context.Context, id uuid.UUID, data map[string]any) (*domain.Record, error) {
	if data == nil {
		data = map[string]any{}
	}

	matched, err := s.recordRepo.ReplaceData(ctx, id, data, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return nil, ErrRecordNotFound
	}

	record, err := s.recordRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrRecordNotFound
	}

	if wsID, ok := s.workspaceOf(ctx, record.DatabaseID); ok {
		s.notifier.RecordUpdated(wsID, record)
	}
	return record, nil
}

func (s *RecordService) Delete(ctx context.Context, id uuid.UUID) error {
	record, err := s.recordRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	deleted, err := s.recordRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrRecordNotFound
	}

	if record != nil {
		if wsID, ok := s.workspaceOf(ctx, record.DatabaseID); ok {
			s.notifier.RecordDeleted(wsID, record.DatabaseID, id)
		}
	}
	return nil
}

func (s *RecordService) workspaceOf(ctx context.Context, databaseID uuid.UUID) (uuid.UUID, bool) {
	page, err := s.pageRepo.GetByID(ctx, databaseID)
	if err != nil || page == nil {
		return uuid.Nil, false
	}
	return page.WorkspaceID, true
}
