package docstore_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danilom/inkbase/internal/docstore"
)

func newCollection(t *testing.T) docstore.Collection {
	t.Helper()
	return docstore.NewMemoryStore().Collection(docstore.Pages)
}

func TestMemoryInsertAndFind(t *testing.T) {
	ctx := context.Background()
	col := newCollection(t)

	require.NoError(t, col.InsertOne(ctx, docstore.Doc{"id": "p1", "title": "Home", "count": 3}))

	t.Run("FindOneByID", func(t *testing.T) {
		doc, err := col.FindOne(ctx, docstore.Filter{"id": "p1"})
		require.NoError(t, err)
		require.NotNil(t, doc)
		assert.Equal(t, "Home", doc["title"])
	})

	t.Run("NumbersCompareAcrossTypes", func(t *testing.T) {
		doc, err := col.FindOne(ctx, docstore.Filter{"count": 3})
		require.NoError(t, err)
		require.NotNil(t, doc)
	})

	t.Run("NoMatchIsNilNil", func(t *testing.T) {
		doc, err := col.FindOne(ctx, docstore.Filter{"id": "missing"})
		require.NoError(t, err)
		assert.Nil(t, doc)
	})

	t.Run("MissingID", func(t *testing.T) {
		// postgres rejects docs without an id; memory docs are also
		// built from structs that always carry one
		doc, err := col.FindOne(ctx, docstore.Filter{"nope": true})
		require.NoError(t, err)
		assert.Nil(t, doc)
	})
}

func TestMemoryFindManyCap(t *testing.T) {
	ctx := context.Background()
	col := newCollection(t)

	for i := 0; i < docstore.MaxLimit+5; i++ {
		require.NoError(t, col.InsertOne(ctx, docstore.Doc{
			"id":   fmt.Sprintf("p%d", i),
			"kind": "bulk",
		}))
	}

	docs, err := col.FindMany(ctx, docstore.Filter{"kind": "bulk"}, 0)
	require.NoError(t, err)
	assert.Len(t, docs, docstore.MaxLimit)

	docs, err = col.FindMany(ctx, docstore.Filter{"kind": "bulk"}, 5)
	require.NoError(t, err)
	assert.Len(t, docs, 5)

	docs, err = col.FindMany(ctx, docstore.Filter{"kind": "bulk"}, docstore.MaxLimit+1)
	require.NoError(t, err)
	assert.Len(t, docs, docstore.MaxLimit)
}

func TestMemoryContainsAndAnyOf(t *testing.T) {
	ctx := context.Background()
	col := newCollection(t)

	require.NoError(t, col.InsertOne(ctx, docstore.Doc{"id": "w1", "owner_id": "u1", "members": []any{}}))
	require.NoError(t, col.InsertOne(ctx, docstore.Doc{"id": "w2", "owner_id": "u2", "members": []any{"u1", "u3"}}))
	require.NoError(t, col.InsertOne(ctx, docstore.Doc{"id": "w3", "owner_id": "u2", "members": []any{"u3"}}))

	docs, err := col.FindMany(ctx, docstore.AnyOf(
		docstore.Filter{"owner_id": "u1"},
		docstore.Filter{"members": docstore.Contains("u1")},
	), 0)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "w1", docs[0]["id"])
	assert.Equal(t, "w2", docs[1]["id"])
}

func TestMemoryUpdateOne(t *testing.T) {
	ctx := context.Background()
	col := newCollection(t)

	require.NoError(t, col.InsertOne(ctx, docstore.Doc{
		"id": "p1", "title": "Old", "content": "keep me", "workspaces": []any{"w1"},
	}))

	t.Run("SetMergesTopLevel", func(t *testing.T) {
		matched, err := col.UpdateOne(ctx, docstore.Filter{"id": "p1"}, docstore.Patch{
			Set: docstore.Doc{"title": "New"},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), matched)

		doc, err := col.FindOne(ctx, docstore.Filter{"id": "p1"})
		require.NoError(t, err)
		assert.Equal(t, "New", doc["title"])
		assert.Equal(t, "keep me", doc["content"])
	})

	t.Run("PushAppends", func(t *testing.T) {
		matched, err := col.UpdateOne(ctx, docstore.Filter{"id": "p1"}, docstore.Patch{
			Push: docstore.Doc{"workspaces": "w2"},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), matched)

		doc, err := col.FindOne(ctx, docstore.Filter{"id": "p1"})
		require.NoError(t, err)
		assert.Equal(t, []any{"w1", "w2"}, doc["workspaces"])
	})

	t.Run("PushCreatesMissingList", func(t *testing.T) {
		_, err := col.UpdateOne(ctx, docstore.Filter{"id": "p1"}, docstore.Patch{
			Push: docstore.Doc{"tags": "first"},
		})
		require.NoError(t, err)

		doc, err := col.FindOne(ctx, docstore.Filter{"id": "p1"})
		require.NoError(t, err)
		assert.Equal(t, []any{"first"}, doc["tags"])
	})

	t.Run("NoMatchReportsZero", func(t *testing.T) {
		matched, err := col.UpdateOne(ctx, docstore.Filter{"id": "nope"}, docstore.Patch{
			Set: docstore.Doc{"title": "x"},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(0), matched)
	})
}

func TestMemoryDeleteOne(t *testing.T) {
	ctx := context.Background()
	col := newCollection(t)

	require.NoError(t, col.InsertOne(ctx, docstore.Doc{"id": "p1", "kind": "dup"}))
	require.NoError(t, col.InsertOne(ctx, docstore.Doc{"id": "p2", "kind": "dup"}))

	deleted, err := col.DeleteOne(ctx, docstore.Filter{"kind": "dup"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	remaining, err := col.FindMany(ctx, docstore.Filter{"kind": "dup"}, 0)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "p2", remaining[0]["id"])

	deleted, err = col.DeleteOne(ctx, docstore.Filter{"id": "gone"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), deleted)
}

func TestMemoryReadsAreCopies(t *testing.T) {
	ctx := context.Background()
	col := newCollection(t)

	require.NoError(t, col.InsertOne(ctx, docstore.Doc{"id": "p1", "data": map[string]any{"a": "b"}}))

	doc, err := col.FindOne(ctx, docstore.Filter{"id": "p1"})
	require.NoError(t, err)
	doc["data"].(map[string]any)["a"] = "mutated"

	fresh, err := col.FindOne(ctx, docstore.Filter{"id": "p1"})
	require.NoError(t, err)
	assert.Equal(t, "b", fresh["data"].(map[string]any)["a"])
}
