package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/danilom/inkbase/internal/domain"
	"github.com/danilom/inkbase/internal/repository"
)

type WorkspaceService struct {
	workspaceRepo repository.WorkspaceRepository
	userRepo      repository.UserRepository
	pages         *PageService
}

func NewWorkspaceService(workspaceRepo repository.WorkspaceRepository, userRepo repository.UserRepository, pages *PageService) *WorkspaceService {
	return &WorkspaceService{
		workspaceRepo: workspaceRepo,
		userRepo:      userRepo,
		pages:         pages,
	}
}

type CreateWorkspaceInput struct {
	Name string `json:"name"`
}

func (s *WorkspaceService) Create(ctx context.Context, userID uuid.UUID, name string) (*domain.Workspace, error) {
	now := time.Now().UTC()
	ws := &domain.Workspace{
		ID:        uuid.New(),
		Name:      name,
		OwnerID:   userID,
		Members:   []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.workspaceRepo.Create(ctx, ws); err != nil {
		return nil, fmt.Errorf("creating workspace: %w", err)
	}

	if err := s.userRepo.AppendWorkspace(ctx, userID, ws.ID.String()); err != nil {
		return nil, fmt.Errorf("linking workspace to user: %w", err)
	}

	return ws, nil
}

// CreateDefault creates the workspace every new user starts with, seeded with
// the two initial pages.
func (s *WorkspaceService) CreateDefault(ctx context.Context, user *domain.User) (*domain.Workspace, error) {
	ws, err := s.Create(ctx, user.ID, fmt.Sprintf("%s's Workspace", user.Name))
	if err != nil {
		return nil, err
	}

	if err := s.pages.SeedInitialPages(ctx, ws.ID, user.ID); err != nil {
		return nil, fmt.Errorf("seeding initial pages: %w", err)
	}

	return ws, nil
}

// List returns workspaces the user owns or is listed as a member of.
func (s *WorkspaceService) List(ctx context.Context, userID uuid.UUID) ([]domain.Workspace, error) {
	return s.workspaceRepo.ListForUser(ctx, userID)
}
