package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danilom/inkbase/internal/domain"
	"github.com/danilom/inkbase/internal/service"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestPageCreateDefaults(t *testing.T) {
	env := newEnv(t)
	resp, wsID := env.register(t, "ann@example.com", "Ann")

	page := env.createPage(t, wsID, resp.User.ID, service.CreatePageInput{Title: "Notes"})
	assert.Equal(t, domain.PageTypePage, page.Type)
	assert.Equal(t, "FileText", page.Icon)
	assert.NotNil(t, page.Data)
	assert.Nil(t, page.ParentID)
	assert.False(t, page.IsFavorite)
	assert.Equal(t, wsID, page.WorkspaceID)
	assert.Equal(t, resp.User.ID, page.CreatedBy)
}

func TestPageCreateParentValidation(t *testing.T) {
	ctx := context.Background()
	env := newEnv(t)
	resp, wsID := env.register(t, "ann@example.com", "Ann")
	other, otherWS := env.register(t, "bob@example.com", "Bob")

	parent := env.createPage(t, wsID, resp.User.ID, service.CreatePageInput{Title: "Parent"})
	foreign := env.createPage(t, otherWS, other.User.ID, service.CreatePageInput{Title: "Elsewhere"})

	t.Run("ValidParent", func(t *testing.T) {
		child, err := env.pages.Create(ctx, wsID, resp.User.ID, service.CreatePageInput{
			Title:    "Child",
			ParentID: &parent.ID,
		})
		require.NoError(t, err)
		require.NotNil(t, child.ParentID)
		assert.Equal(t, parent.ID, *child.ParentID)

		// children do not show up in the root listing
		roots, err := env.pages.ListRoots(ctx, wsID)
		require.NoError(t, err)
		for _, p := range roots {
			assert.NotEqual(t, child.ID, p.ID)
		}
	})

	t.Run("MissingParent", func(t *testing.T) {
		bogus := uuid.New()
		_, err := env.pages.Create(ctx, wsID, resp.User.ID, service.CreatePageInput{
			Title:    "Orphan",
			ParentID: &bogus,
		})
		assert.ErrorIs(t, err, service.ErrParentInvalid)
	})

	t.Run("ParentFromOtherWorkspace", func(t *testing.T) {
		_, err := env.pages.Create(ctx, wsID, resp.User.ID, service.CreatePageInput{
			Title:    "Crossing",
			ParentID: &foreign.ID,
		})
		assert.ErrorIs(t, err, service.ErrParentInvalid)
	})
}

func TestPageUpdatePartial(t *testing.T) {
	ctx := context.Background()
	env := newEnv(t)
	resp, wsID := env.register(t, "ann@example.com", "Ann")

	page := env.createPage(t, wsID, resp.User.ID, service.CreatePageInput{
		Title:   "Draft",
		Content: "original content",
		Icon:    "Star",
		Data:    map[string]any{"color": "blue"},
	})

	time.Sleep(10 * time.Millisecond)
	updated, err := env.pages.Update(ctx, page.ID, service.UpdatePageInput{
		Title:      strPtr("Final"),
		IsFavorite: boolPtr(true),
	})
	require.NoError(t, err)

	assert.Equal(t, "Final", updated.Title)
	assert.True(t, updated.IsFavorite)
	assert.Equal(t, "original content", updated.Content)
	assert.Equal(t, "Star", updated.Icon)
	assert.Equal(t, "blue", updated.Data["color"])
	assert.True(t, updated.UpdatedAt.After(page.UpdatedAt))
}

func TestPageUpdateMissing(t *testing.T) {
	env := newEnv(t)

	_, err := env.pages.Update(context.Background(), uuid.New(), service.UpdatePageInput{
		Title: strPtr("Ghost"),
	})
	assert.ErrorIs(t, err, service.ErrPageNotFound)
}

func TestPageDelete(t *testing.T) {
	ctx := context.Background()
	env := newEnv(t)
	resp, wsID := env.register(t, "ann@example.com", "Ann")

	parent := env.createPage(t, wsID, resp.User.ID, service.CreatePageInput{Title: "Parent"})
	child, err := env.pages.Create(ctx, wsID, resp.User.ID, service.CreatePageInput{
		Title:    "Child",
		ParentID: &parent.ID,
	})
	require.NoError(t, err)

	require.NoError(t, env.pages.Delete(ctx, parent.ID))

	_, err = env.pages.Get(ctx, parent.ID)
	assert.ErrorIs(t, err, service.ErrPageNotFound)

	// children survive their parent's deletion
	orphan, err := env.pages.Get(ctx, child.ID)
	require.NoError(t, err)
	require.NotNil(t, orphan.ParentID)
	assert.Equal(t, parent.ID, *orphan.ParentID)

	assert.ErrorIs(t, env.pages.Delete(ctx, parent.ID), service.ErrPageNotFound)
}
