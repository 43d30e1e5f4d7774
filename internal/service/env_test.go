package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/danilom/inkbase/internal/auth"
	"github.com/danilom/inkbase/internal/docstore"
	"github.com/danilom/inkbase/internal/domain"
	"github.com/danilom/inkbase/internal/repository/docrepo"
	"github.com/danilom/inkbase/internal/service"
)

// testEnv wires the full service stack over an in-memory store.
type testEnv struct {
	store      docstore.Store
	tokens     *auth.TokenManager
	auth       *service.AuthService
	workspaces *service.WorkspaceService
	pages      *service.PageService
	records    *service.RecordService
}

func newEnv(t *testing.T) *testEnv {
	t.Helper()

	store := docstore.NewMemoryStore()
	userRepo := docrepo.NewUserRepo(store)
	workspaceRepo := docrepo.NewWorkspaceRepo(store)
	pageRepo := docrepo.NewPageRepo(store)
	recordRepo := docrepo.NewRecordRepo(store)

	tokens := auth.NewTokenManager("test-secret")
	pages := service.NewPageService(pageRepo, nil)
	workspaces := service.NewWorkspaceService(workspaceRepo, userRepo, pages)
	records := service.NewRecordService(recordRepo, pageRepo, nil)

	return &testEnv{
		store:      store,
		tokens:     tokens,
		auth:       service.NewAuthService(userRepo, workspaces, tokens),
		workspaces: workspaces,
		pages:      pages,
		records:    records,
	}
}

// register creates a user and returns the response plus their default
// workspace id.
func (e *testEnv) register(t *testing.T, email, name string) (*service.AuthResponse, uuid.UUID) {
	t.Helper()

	resp, err := e.auth.Register(context.Background(), service.RegisterInput{
		Email:    email,
		Name:     name,
		Password: "secret123",
	})
	require.NoError(t, err)
	require.Len(t, resp.User.Workspaces, 1)

	wsID, err := uuid.Parse(resp.User.Workspaces[0])
	require.NoError(t, err)
	return resp, wsID
}

func (e *testEnv) createPage(t *testing.T, workspaceID, creatorID uuid.UUID, input service.CreatePageInput) *domain.Page {
	t.Helper()

	page, err := e.pages.Create(context.Background(), workspaceID, creatorID, input)
	require.NoError(t, err)
	return page
}
