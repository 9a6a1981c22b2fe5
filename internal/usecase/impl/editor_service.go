package impl

import (
	"context"
	"log/slog"

	deliverycontext "library/internal/delivery/context"
	"library/internal/domain/entity"
	domainerrors "library/internal/domain/errors"
	"library/internal/domain/repository"
	"library/internal/domain/service"
	"library/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type editorService struct {
	records  repository.RecordRepository
	notifier *changeNotifier
	logger   *slog.Logger
}

// EditorServiceParams holds dependencies for EditorService, injected by Fx.
type EditorServiceParams struct {
	fx.In

	Records   repository.RecordRepository
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

func NewEditorService(params EditorServiceParams) usecase.EditorUsecase {
	return &editorService{
		records:  params.Records,
		notifier: &changeNotifier{publisher: params.Publisher, logger: params.Logger},
		logger:   params.Logger,
	}
}

type recordKey struct {
	collection entity.Collection
	id         string
}

// pendingPatch collects the coalesced fields of one record
type pendingPatch struct {
	key    recordKey
	fields entity.Fields
	order  []string
}

func (s *editorService) Dispatch(ctx context.Context, cmds ...entity.Command) error {
	patches, err := reduce(cmds)
	if err != nil {
		return err
	}

	for _, patch := range patches {
		if err := s.records.Patch(ctx, patch.key.collection, patch.key.id, patch.fields); err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, s.logger).Error("Failed to apply patch",
				slog.String("collection", patch.key.collection.String()),
				slog.String("record_id", patch.key.id),
				slog.Any("error", err),
			)

			return storeError(err, domainerrors.ErrNotFound, "patch "+patch.key.collection.String()+"/"+patch.key.id)
		}

		s.notifier.notify(ctx, patch.key.collection, patch.key.id, entity.ChangePatched, patch.order)
	}

	return nil
}

// reduce validates every command and folds them into one patch per record,
// keeping records in first-seen order and the last value written to each field.
func reduce(cmds []entity.Command) ([]*pendingPatch, error) {
	byRecord := make(map[recordKey]*pendingPatch)
	patches := make([]*pendingPatch, 0, len(cmds))

	for i, cmd := range cmds {
		if cmd.Kind != entity.CommandFieldChanged {
			return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "command %d: unsupported kind %q", i, cmd.Kind)
		}
		if cmd.RecordID == "" {
			return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "command %d: record id is required", i)
		}
		if err := entity.ValidateField(cmd.Collection, cmd.Field, cmd.Value); err != nil {
			return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "command %d: %s", i, err.Error())
		}

		key := recordKey{collection: cmd.Collection, id: cmd.RecordID}
		patch, ok := byRecord[key]
		if !ok {
			patch = &pendingPatch{key: key, fields: entity.Fields{}}
			byRecord[key] = patch
			patches = append(patches, patch)
		}
		if _, seen := patch.fields[cmd.Field]; !seen {
			patch.order = append(patch.order, cmd.Field)
		}
		patch.fields[cmd.Field] = cmd.Value
	}

	return patches, nil
}
