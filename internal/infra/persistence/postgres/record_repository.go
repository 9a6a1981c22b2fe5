// Package postgres contains the record store implementation on GORM and PostgreSQL jsonb.
package postgres

import (
	"context"
	"encoding/json"
	"time"

	"library/internal/domain/entity"
	domainerrors "library/internal/domain/errors"
	"library/internal/domain/repository"
	"library/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// recordRepository implements the repository.RecordRepository interface.
type recordRepository struct {
	db *gorm.DB
}

// NewRecordRepository is the constructor for recordRepository.
func NewRecordRepository(db *gorm.DB) repository.RecordRepository {
	return &recordRepository{
		db: db,
	}
}

func (repo *recordRepository) Create(ctx context.Context, collection entity.Collection, fields entity.Fields) (string, error) {
	recordM := &model.RecordModel{
		Collection: collection.String(),
		ID:         uuid.NewString(),
		Data:       datatypes.JSONMap(fields.Clone()),
	}

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return "", domainerrors.ErrStoreUnavailable.WrapMessage("generated record id collided")
		}
		if isNotNullConstraintViolation(err) {
			return "", domainerrors.ErrValidationFailed.WrapMessage("record data is missing")
		}

		return "", domainerrors.NewStoreExecuteError(err, "failed to create record in "+collection.String())
	}

	return recordM.ID, nil
}

// Put upserts on (collection, id); an existing row keeps keys absent from fields.
func (repo *recordRepository) Put(ctx context.Context, collection entity.Collection, id string, fields entity.Fields) error {
	recordM := &model.RecordModel{
		Collection: collection.String(),
		ID:         id,
		Data:       datatypes.JSONMap(fields.Clone()),
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "collection"}, {Name: "id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"data":       gorm.Expr(`"records"."data" || excluded.data`),
				"updated_at": gorm.Expr("excluded.updated_at"),
			}),
		}).
		Create(recordM).Error
	if err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("record data is missing")
		}

		return domainerrors.NewStoreExecuteError(err, "failed to put record "+collection.String()+"/"+id)
	}

	return nil
}

func (repo *recordRepository) Get(ctx context.Context, collection entity.Collection, id string) (*entity.Record, error) {
	var recordM model.RecordModel
	if err := repo.db.WithContext(ctx).
		Where("collection = ? AND id = ?", collection.String(), id).
		First(&recordM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecordNotFound
		}

		return nil, domainerrors.NewStoreExecuteError(err, "failed to get record")
	}

	return toRecordDomain(&recordM), nil
}

func (repo *recordRepository) List(ctx context.Context, collection entity.Collection) ([]*entity.Record, error) {
	var recordModels []*model.RecordModel

	if err := repo.db.WithContext(ctx).
		Where("collection = ?", collection.String()).
		Order("created_at ASC").
		Find(&recordModels).Error; err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to list "+collection.String())
	}

	records := make([]*entity.Record, 0, len(recordModels))
	for _, recordM := range recordModels {
		records = append(records, toRecordDomain(recordM))
	}

	return records, nil
}

// Patch merges with the jsonb || operator, which keeps keys absent from the patch.
func (repo *recordRepository) Patch(ctx context.Context, collection entity.Collection, id string, fields entity.Fields) error {
	patch, err := json.Marshal(fields)
	if err != nil {
		return errors.Wrap(err, "failed to encode patch")
	}

	result := repo.db.WithContext(ctx).
		Model(&model.RecordModel{}).
		Where("collection = ? AND id = ?", collection.String(), id).
		Updates(map[string]any{
			"data":       gorm.Expr("data || ?::jsonb", string(patch)),
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return domainerrors.NewStoreExecuteError(result.Error, "failed to patch record")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRecordNotFound
	}

	return nil
}

// AppendToArray adds value unless the array already contains it (jsonb @> containment).
func (repo *recordRepository) AppendToArray(ctx context.Context, collection entity.Collection, id, field string, value any) error {
	element, err := json.Marshal([]any{value})
	if err != nil {
		return errors.Wrap(err, "failed to encode array element")
	}

	current := "COALESCE(data -> ?, '[]'::jsonb)"
	expr := gorm.Expr(
		"jsonb_set(data, ?::text[], CASE WHEN "+current+" @> ?::jsonb THEN "+current+" ELSE "+current+" || ?::jsonb END, true)",
		"{"+field+"}", field, string(element), field, field, string(element),
	)

	result := repo.db.WithContext(ctx).
		Model(&model.RecordModel{}).
		Where("collection = ? AND id = ?", collection.String(), id).
		Updates(map[string]any{
			"data":       expr,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return domainerrors.NewStoreExecuteError(result.Error, "failed to append to "+field)
	}

	if result.RowsAffected == 0 {
		return repository.ErrRecordNotFound
	}

	return nil
}

func (repo *recordRepository) Delete(ctx context.Context, collection entity.Collection, id string) error {
	result := repo.db.WithContext(ctx).
		Where("collection = ? AND id = ?", collection.String(), id).
		Delete(&model.RecordModel{})

	if result.Error != nil {
		return domainerrors.NewStoreExecuteError(result.Error, "failed to delete record")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRecordNotFound
	}

	return nil
}

// Close is a no-op; the connection pool is closed by the lifecycle hook registered in New.
func (repo *recordRepository) Close() error {
	return nil
}

// --- Mapper Functions ---

func toRecordDomain(data *model.RecordModel) *entity.Record {
	if data == nil {
		return nil
	}

	return &entity.Record{
		ID:     data.ID,
		Fields: entity.Fields(data.Data),
	}
}
