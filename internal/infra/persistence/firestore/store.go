// Package firestore implements the record store on Cloud Firestore.
package firestore

import (
	"context"
	"log/slog"

	"library/config"
	"library/internal/domain/entity"
	domainerrors "library/internal/domain/errors"
	"library/internal/domain/repository"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type recordRepository struct {
	client *firestore.Client
	logger *slog.Logger
}

// NewRecordRepository creates a Firestore-backed record store.
func NewRecordRepository(ctx context.Context, cfg *config.FirebaseConfig, logger *slog.Logger) (repository.RecordRepository, error) {
	if cfg == nil {
		return nil, errors.New("firebase configuration is required for the firestore store")
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	var appConfig *firebase.Config
	if cfg.ProjectID != "" {
		appConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firestore client")
	}

	logger.Info("Firestore record store initialized", slog.String("project_id", cfg.ProjectID))

	return &recordRepository{
		client: client,
		logger: logger,
	}, nil
}

func (r *recordRepository) Create(ctx context.Context, collection entity.Collection, fields entity.Fields) (string, error) {
	ref, _, err := r.client.Collection(collection.String()).Add(ctx, map[string]any(fields))
	if err != nil {
		return "", domainerrors.NewStoreExecuteError(err, "failed to add document to "+collection.String())
	}

	return ref.ID, nil
}

// Put merges into the document with the given ID, creating it when missing.
func (r *recordRepository) Put(ctx context.Context, collection entity.Collection, id string, fields entity.Fields) error {
	if _, err := r.client.Collection(collection.String()).Doc(id).Set(ctx, map[string]any(fields), firestore.MergeAll); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to set document "+collection.String()+"/"+id)
	}

	return nil
}

func (r *recordRepository) Get(ctx context.Context, collection entity.Collection, id string) (*entity.Record, error) {
	snap, err := r.client.Collection(collection.String()).Doc(id).Get(ctx)
	if err != nil {
		return nil, translateError(err, "failed to get document")
	}

	return &entity.Record{ID: snap.Ref.ID, Fields: snap.Data()}, nil
}

func (r *recordRepository) List(ctx context.Context, collection entity.Collection) ([]*entity.Record, error) {
	snaps, err := r.client.Collection(collection.String()).Documents(ctx).GetAll()
	if err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to list "+collection.String())
	}

	records := make([]*entity.Record, 0, len(snaps))
	for _, snap := range snaps {
		records = append(records, &entity.Record{ID: snap.Ref.ID, Fields: snap.Data()})
	}

	return records, nil
}

// Patch uses Update so that missing documents fail instead of being created.
func (r *recordRepository) Patch(ctx context.Context, collection entity.Collection, id string, fields entity.Fields) error {
	if len(fields) == 0 {
		return nil
	}

	updates := make([]firestore.Update, 0, len(fields))
	for field, value := range fields {
		updates = append(updates, firestore.Update{FieldPath: firestore.FieldPath{field}, Value: value})
	}

	if _, err := r.client.Collection(collection.String()).Doc(id).Update(ctx, updates); err != nil {
		return translateError(err, "failed to update document")
	}

	return nil
}

func (r *recordRepository) AppendToArray(ctx context.Context, collection entity.Collection, id, field string, value any) error {
	_, err := r.client.Collection(collection.String()).Doc(id).Update(ctx, []firestore.Update{
		{FieldPath: firestore.FieldPath{field}, Value: firestore.ArrayUnion(value)},
	})
	if err != nil {
		return translateError(err, "failed to append to "+field)
	}

	return nil
}

func (r *recordRepository) Delete(ctx context.Context, collection entity.Collection, id string) error {
	ref := r.client.Collection(collection.String()).Doc(id)

	// Firestore deletes are idempotent; check first so callers see not-found like the other stores.
	if _, err := ref.Get(ctx); err != nil {
		return translateError(err, "failed to get document")
	}

	if _, err := ref.Delete(ctx); err != nil {
		return translateError(err, "failed to delete document")
	}

	return nil
}

func (r *recordRepository) Close() error {
	return errors.WithStack(r.client.Close())
}

func translateError(err error, details string) error {
	if status.Code(err) == codes.NotFound {
		return repository.ErrRecordNotFound
	}

	return domainerrors.NewStoreExecuteError(err, details)
}
