package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danilom/inkbase/internal/domain"
	"github.com/danilom/inkbase/internal/service"
)

func TestRecordCreateAndList(t *testing.T) {
	ctx := context.Background()
	env := newEnv(t)
	resp, wsID := env.register(t, "ann@example.com", "Ann")

	db := env.createPage(t, wsID, resp.User.ID, service.CreatePageInput{
		Title: "Tasks",
		Type:  domain.PageTypeDatabase,
	})
	otherDB := env.createPage(t, wsID, resp.User.ID, service.CreatePageInput{
		Title: "Contacts",
		Type:  domain.PageTypeDatabase,
	})

	first, err := env.records.Create(ctx, db.ID, map[string]any{"Título": "Comprar pan"})
	require.NoError(t, err)
	assert.Equal(t, db.ID, first.DatabaseID)
	assert.Equal(t, "Comprar pan", first.Data["Título"])

	_, err = env.records.Create(ctx, otherDB.ID, map[string]any{"Name": "Bob"})
	require.NoError(t, err)

	list, err := env.records.List(ctx, db.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, first.ID, list[0].ID)
}

func TestRecordUpdateReplacesData(t *testing.T) {
	ctx := context.Background()
	env := newEnv(t)
	resp, wsID := env.register(t, "ann@example.com", "Ann")

	db := env.createPage(t, wsID, resp.User.ID, service.CreatePageInput{
		Title: "Tasks",
		Type:  domain.PageTypeDatabase,
	})
	rec, err := env.records.Create(ctx, db.ID, map[string]any{"a": "1", "b": "2"})
	require.NoError(t, err)

	updated, err := env.records.Update(ctx, rec.ID, map[string]any{"c": "3"})
	require.NoError(t, err)

	// update swaps the whole data object; old keys do not survive
	assert.Equal(t, map[string]any{"c": "3"}, updated.Data)
	assert.Equal(t, rec.DatabaseID, updated.DatabaseID)
	assert.False(t, updated.UpdatedAt.Before(rec.UpdatedAt))
}

func TestRecordMissing(t *testing.T) {
	ctx := context.Background()
	env := newEnv(t)

	_, err := env.records.Update(ctx, uuid.New(), map[string]any{"x": "y"})
	assert.ErrorIs(t, err, service.ErrRecordNotFound)

	assert.ErrorIs(t, env.records.Delete(ctx, uuid.New()), service.ErrRecordNotFound)
}

func TestRecordDelete(t *testing.T) {
	ctx := context.Background()
	env := newEnv(t)
	resp, wsID := env.register(t, "ann@example.com", "Ann")

	db := env.createPage(t, wsID, resp.User.ID, service.CreatePageInput{
		Title: "Tasks",
		Type:  domain.PageTypeDatabase,
	})
	rec, err := env.records.Create(ctx, db.ID, map[string]any{"a": "1"})
	require.NoError(t, err)

	require.NoError(t, env.records.Delete(ctx, rec.ID))

	list, err := env.records.List(ctx, db.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}
