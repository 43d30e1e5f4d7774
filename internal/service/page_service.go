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

var (
	ErrPageNotFound = errors.New("page not found")
	// ErrParentInvalid covers a missing parent, a parent from another
	// workspace, or a parent chain that loops.
	ErrParentInvalid = errors.New("parent page invalid")
)

type PageService struct {
	pageRepo repository.PageRepository
	notifier Notifier
}

func NewPageService(pageRepo repository.PageRepository, notifier Notifier) *PageService {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &PageService{pageRepo: pageRepo, notifier: notifier}
}

type CreatePageInput struct {
	Title    string         `json:"title"`
	Content  string         `json:"content"`
	Type     string         `json:"type"`
	Icon     string         `json:"icon"`
	ParentID *uuid.UUID     `json:"parent_id"`
	Data     map[string]any `json:"data"`
}

type UpdatePageInput struct {
	Title      *string         `json:"title"`
	Content    *string         `json:"content"`
	Icon       *string         `json:"icon"`
	Data       *map[string]any `json:"data"`
	IsFavorite *bool           `json:"is_favorite"`
}

// ListRoots returns the workspace's top-level pages only.
func (s *PageService) ListRoots(ctx context.Context, workspaceID uuid.UUID) ([]domain.Page, error) {
	return s.pageRepo.ListRoots(ctx, workspaceID)
}

func (s *PageService) Create(ctx context.Context, workspaceID, creatorID uuid.UUID, input CreatePageInput) (*domain.Page, error) {
	if input.ParentID != nil {
		if err := s.checkParent(ctx, workspaceID, *input.ParentID); err != nil {
			return nil, err
		}
	}

	pageType := input.Type
	if pageType == "" {
		pageType = domain.PageTypePage
	}
	icon := input.Icon
	if icon == "" {
		icon = "FileText"
	}
	data := input.Data
	if data == nil {
		data = map[string]any{}
	}

	now := time.Now().UTC()
	page := &domain.Page{
		ID:          uuid.New(),
		Title:       input.Title,
		Content:     input.Content,
		Type:        pageType,
		Icon:        icon,
		WorkspaceID: workspaceID,
		ParentID:    input.ParentID,
		CreatedBy:   creatorID,
		CreatedAt:   now,
		UpdatedAt:   now,
		Data:        data,
	}

	if err := s.pageRepo.Create(ctx, page); err != nil {
		return nil, fmt.Errorf("creating page: %w", err)
	}

	s.notifier.PageCreated(page)
	return page, nil
}

func (s *PageService) Get(ctx context.Context, id uuid.UUID) (*domain.Page, error) {
	page, err := s.pageRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, ErrPageNotFound
	}
	return page, nil
}

// Update writes only the provided fields and always refreshes updated_at.
func (s *PageService) Update(ctx context.Context, id uuid.UUID, input UpdatePageInput) (*domain.Page, error) {
	fields := map[string]any{}
	if input.Title != nil {
		fields["title"] = *input.Title
	}
	if input.Content != nil {
		fields["content"] = *input.Content
	}
	if input.Icon != nil {
		fields["icon"] = *input.Icon
	}
	if input.Data != nil {
		fields["data"] = *input.Data
	}
	if input.IsFavorite != nil {
		fields["is_favorite"] = *input.IsFavorite
	}
	fields["updated_at"] = time.Now().UTC()

	matched, err := s.pageRepo.SetFields(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return nil, ErrPageNotFound
	}

	page, err := s.pageRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, ErrPageNotFound
	}

	s.notifier.PageUpdated(page)
	return page, nil
}

// Delete removes the page only. Child pages and attached records are left
// orphaned on purpose.
func (s *PageService) Delete(ctx context.Context, id uuid.UUID) error {
	page, err := s.pageRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	deleted, err := s.pageRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrPageNotFound
	}

	if page != nil {
		s.notifier.PageDeleted(page.WorkspaceID, id)
	}
	return nil
}

// SeedInitialPages inserts the two pages every new workspace starts with: a
// favorited welcome page and a personal tasks database.
func (s *PageService) SeedInitialPages(ctx context.Context, workspaceID, creatorID uuid.UUID) error {
	now := time.Now().UTC()
	pages := []*domain.Page{
		{
			ID:          uuid.New(),
			Title:       "Página de inicio",
			Content:     "# Bienvenido a tu workspace\n\nEsta es tu página principal. Puedes empezar escribiendo aquí o crear nuevas páginas en la barra lateral.",
			Type:        domain.PageTypePage,
			Icon:        "Home",
			WorkspaceID: workspaceID,
			CreatedBy:   creatorID,
			CreatedAt:   now,
			UpdatedAt:   now,
			Data:        map[string]any{},
			IsFavorite:  true,
		},
		{
			ID:          uuid.New(),
			Title:       "Tareas personales",
			Content:     "",
			Type:        domain.PageTypeDatabase,
			Icon:        "CheckSquare",
			WorkspaceID: workspaceID,
			CreatedBy:   creatorID,
			CreatedAt:   now,
			UpdatedAt:   now,
			Data: map[string]any{
				"fields": []any{
					map[string]any{"name": "Título", "type": "title"},
					map[string]any{"name": "Estado", "type": "select", "options": []any{"Pendiente", "En progreso", "Completado"}},
					map[string]any{"name": "Prioridad", "type": "select", "options": []any{"Alta", "Media", "Baja"}},
					map[string]any{"name": "Fecha", "type": "date"},
				},
			},
		},
	}

	for _, page := range pages {
		if err := s.pageRepo.Create(ctx, page); err != nil {
			return err
		}
	}
	return nil
}

// checkParent validates the parent link at creation time. Parents are never
// re-assigned after creation, so this is the only place a cycle could enter;
// the visited set also keeps the walk finite over corrupt data.
func (s *PageService) checkParent(ctx context.Context, workspaceID, parentID uuid.UUID) error {
	parent, err := s.pageRepo.GetByID(ctx, parentID)
	if err != nil {
		return err
	}
	if parent == nil || parent.WorkspaceID != workspaceID {
		return ErrParentInvalid
	}

	visited := map[uuid.UUID]bool{parentID: true}
	for parent.ParentID != nil {
		next := *parent.ParentID
		if visited[next] {
			return ErrParentInvalid
		}
		visited[next] = true

		parent, err = s.pageRepo.GetByID(ctx, next)
		if err != nil {
			return err
		}
		if parent == nil {
			break
		}
	}
	return nil
}
