package memory

import (
	"context"
	"testing"

	"library/internal/domain/entity"
	"library/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_CreateAndGet(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	id, err := store.Create(ctx, entity.CollectionBooks, entity.Fields{"title": "Kokoro"})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	rec, err := store.Get(ctx, entity.CollectionBooks, id)
	require.NoError(t, err)
	assert.Equal(t, id, rec.ID)
	assert.Equal(t, "Kokoro", rec.Fields["title"])
}

func TestStore_PatchKeepsUnnamedFields(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	id, err := store.Create(ctx, entity.CollectionBooks, entity.Fields{
		"title":    "Kokoro",
		"author":   "Natsume Soseki",
		"category": "Fiction",
	})
	require.NoError(t, err)

	require.NoError(t, store.Patch(ctx, entity.CollectionBooks, id, entity.Fields{"title": "こころ"}))

	rec, err := store.Get(ctx, entity.CollectionBooks, id)
	require.NoError(t, err)
	assert.Equal(t, entity.Fields{
		"title":    "こころ",
		"author":   "Natsume Soseki",
		"category": "Fiction",
	}, rec.Fields)
}

func TestStore_PatchMissingRecord(t *testing.T) {
	store := NewStore()

	err := store.Patch(context.Background(), entity.CollectionBooks, "missing", entity.Fields{"title": "x"})
	assert.ErrorIs(t, err, repository.ErrRecordNotFound)
}

func TestStore_PutCreatesThenMerges(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, entity.CollectionFeatures, entity.FeatureID, entity.Fields{"title": "春の特集", "content": ""}))
	require.NoError(t, store.Put(ctx, entity.CollectionFeatures, entity.FeatureID, entity.Fields{"content": "本文"}))

	rec, err := store.Get(ctx, entity.CollectionFeatures, entity.FeatureID)
	require.NoError(t, err)
	assert.Equal(t, entity.Fields{"title": "春の特集", "content": "本文"}, rec.Fields)

	all, err := store.List(ctx, entity.CollectionFeatures)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestStore_ReturnedRecordsAreCopies(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	id, err := store.Create(ctx, entity.CollectionBooks, entity.Fields{"reviews": []any{}})
	require.NoError(t, err)

	rec, err := store.Get(ctx, entity.CollectionBooks, id)
	require.NoError(t, err)
	rec.Fields["title"] = "mutated"

	again, err := store.Get(ctx, entity.CollectionBooks, id)
	require.NoError(t, err)
	assert.NotContains(t, again.Fields, "title")
}

func TestStore_AppendToArray(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	id, err := store.Create(ctx, entity.CollectionBooks, entity.Fields{"title": "Kokoro"})
	require.NoError(t, err)

	first := map[string]any{"id": "1", "user": "a", "comment": "good", "rating": 5}
	second := map[string]any{"id": "2", "user": "b", "comment": "fine", "rating": 3}

	require.NoError(t, store.AppendToArray(ctx, entity.CollectionBooks, id, "reviews", first))
	require.NoError(t, store.AppendToArray(ctx, entity.CollectionBooks, id, "reviews", second))
	// equal elements are not duplicated
	require.NoError(t, store.AppendToArray(ctx, entity.CollectionBooks, id, "reviews", first))

	rec, err := store.Get(ctx, entity.CollectionBooks, id)
	require.NoError(t, err)
	assert.Equal(t, []any{first, second}, rec.Fields["reviews"])
	assert.Equal(t, "Kokoro", rec.Fields["title"])
}

func TestStore_AppendToArrayRejectsScalar(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	id, err := store.Create(ctx, entity.CollectionBooks, entity.Fields{"reviews": "oops"})
	require.NoError(t, err)

	err = store.AppendToArray(ctx, entity.CollectionBooks, id, "reviews", map[string]any{"id": "1"})
	assert.Error(t, err)
}

func TestStore_ListKeepsInsertionOrderAfterDelete(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	var ids []string
	for _, title := range []string{"a", "b", "c"} {
		id, err := store.Create(ctx, entity.CollectionNews, entity.Fields{"title": title})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	require.NoError(t, store.Delete(ctx, entity.CollectionNews, ids[1]))

	records, err := store.List(ctx, entity.CollectionNews)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, ids[0], records[0].ID)
	assert.Equal(t, ids[2], records[1].ID)

	err = store.Delete(ctx, entity.CollectionNews, ids[1])
	assert.ErrorIs(t, err, repository.ErrRecordNotFound)
}

func TestStore_CanceledContext(t *testing.T) {
	store := NewStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Create(ctx, entity.CollectionBooks, entity.Fields{})
	assert.ErrorIs(t, err, context.Canceled)
}
