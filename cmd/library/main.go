package main

import (
	"context"
	"log/slog"
	"os"

	"library/config"
	"library/internal/delivery"
	"library/internal/delivery/http"
	"library/internal/delivery/http/router/handler"
	"library/internal/domain/service"
	"library/internal/infra/genai"
	logs "library/internal/infra/log"
	"library/internal/infra/passphrase"
	"library/internal/infra/persistence"
	"library/internal/infra/pubsub"
	"library/internal/infra/qrcode"
	"library/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			persistence.NewRecordRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			pubsub.NewEventPublisher,
			genai.Provide,
			newQRCodeService,
			newPassphraseHasher,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func newPassphraseHasher(cfg *config.Config) service.PassphraseHasher {
	if cfg.Reservation == nil {
		return passphrase.NewBcryptHasher(0)
	}

	return passphrase.NewBcryptHasher(cfg.Reservation.PassphraseCost)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewEditorService,
			impl.NewCatalogService,
			impl.NewReservationService,
			impl.NewBulletinService,
			impl.NewLibrarianService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewBookHandler,
			handler.NewReservationHandler,
			handler.NewNewsHandler,
			handler.NewFeatureHandler,
			handler.NewNoticeHandler,
			handler.NewLibrarianHandler,
			handler.NewEditorHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
