package postgres

import (
	"context"
	"encoding/json"
	"testing"

	"library/internal/domain/entity"
	"library/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// capturedStatement is the SQL gorm built for the last write
type capturedStatement struct {
	sql  string
	vars []any
}

// newDryRunRepository builds statements without a server and reports one affected row per write.
func newDryRunRepository(t *testing.T) (repository.RecordRepository, *capturedStatement) {
	t.Helper()

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=library dbname=library sslmode=disable",
	}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	captured := &capturedStatement{}
	capture := func(tx *gorm.DB) {
		captured.sql = tx.Statement.SQL.String()
		captured.vars = tx.Statement.Vars
		tx.RowsAffected = 1
	}
	require.NoError(t, db.Callback().Update().After("gorm:update").Register("library:capture_update", capture))
	require.NoError(t, db.Callback().Create().After("gorm:create").Register("library:capture_create", capture))

	return NewRecordRepository(db), captured
}

func TestRecordRepository_PatchMergesJSONB(t *testing.T) {
	repo, captured := newDryRunRepository(t)

	err := repo.Patch(context.Background(), entity.CollectionBooks, "b1", entity.Fields{"title": "こころ"})
	require.NoError(t, err)

	assert.Contains(t, captured.sql, `UPDATE "records" SET`)
	// || merges the patch over the stored object, so unnamed keys survive
	assert.Contains(t, captured.sql, `data || $1::jsonb`)
	assert.Contains(t, captured.sql, `WHERE collection = $3 AND id = $4`)
	assert.NotContains(t, captured.sql, `"data"=$1`)

	require.Len(t, captured.vars, 4)
	assert.JSONEq(t, `{"title":"こころ"}`, captured.vars[0].(string))
	assert.Equal(t, "books", captured.vars[2])
	assert.Equal(t, "b1", captured.vars[3])
}

func TestRecordRepository_AppendToArrayIsUnion(t *testing.T) {
	repo, captured := newDryRunRepository(t)

	review := map[string]any{"rating": 5, "comment": "よかった"}
	err := repo.AppendToArray(context.Background(), entity.CollectionBooks, "b1", "reviews", review)
	require.NoError(t, err)

	assert.Contains(t, captured.sql, `jsonb_set(data, $1::text[], CASE WHEN COALESCE(data -> $2, '[]'::jsonb) @> $3::jsonb`)
	assert.Contains(t, captured.sql, `THEN COALESCE(data -> $4, '[]'::jsonb) ELSE COALESCE(data -> $5, '[]'::jsonb) || $6::jsonb END, true)`)

	require.GreaterOrEqual(t, len(captured.vars), 6)
	assert.Equal(t, "{reviews}", captured.vars[0])
	for _, i := range []int{1, 3, 4} {
		assert.Equal(t, "reviews", captured.vars[i])
	}

	element, err := json.Marshal([]any{review})
	require.NoError(t, err)
	// containment and append use the same one-element array
	assert.JSONEq(t, string(element), captured.vars[2].(string))
	assert.JSONEq(t, string(element), captured.vars[5].(string))
}

func TestRecordRepository_PutUpsertsAndMerges(t *testing.T) {
	repo, captured := newDryRunRepository(t)

	err := repo.Put(context.Background(), entity.CollectionFeatures, entity.FeatureID, entity.Fields{"content": "本文"})
	require.NoError(t, err)

	assert.Contains(t, captured.sql, `INSERT INTO "records"`)
	assert.Contains(t, captured.sql, `ON CONFLICT ("collection","id") DO UPDATE SET`)
	assert.Contains(t, captured.sql, `"data"="records"."data" || excluded.data`)
	assert.Contains(t, captured.vars, "features")
	assert.Contains(t, captured.vars, entity.FeatureID)
}

func TestRecordRepository_PatchMissingRecord(t *testing.T) {
	repo, _ := newDryRunRepository(t)
	db := repo.(*recordRepository).db

	// no affected rows means the record does not exist
	require.NoError(t, db.Callback().Update().After("library:capture_update").Register("library:no_rows", func(tx *gorm.DB) {
		tx.RowsAffected = 0
	}))

	err := repo.Patch(context.Background(), entity.CollectionBooks, "missing", entity.Fields{"title": "x"})
	assert.ErrorIs(t, err, repository.ErrRecordNotFound)
}
