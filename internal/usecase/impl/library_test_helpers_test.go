package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"library/config"
	"library/internal/domain/repository"
	"library/internal/infra/passphrase"
	"library/internal/infra/persistence/memory"
	"library/internal/infra/qrcode"
	mockSvc "library/internal/mocks/service"

	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

var testNow = time.Date(2024, time.May, 3, 9, 5, 7, 0, time.FixedZone("JST", 9*60*60))

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Env.TimeZone = "Asia/Tokyo"

	return cfg
}

func fixedClock() clock {
	return func() time.Time { return testNow }
}

// quietPublisher accepts any number of change events
func quietPublisher(t *testing.T) *mockSvc.MockEventPublisher {
	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().PublishChange(mock.Anything, mock.Anything).Return(nil).Maybe()

	return publisher
}

// testServices wires the services over an in-memory store
type testServices struct {
	records     repository.RecordRepository
	editor      *editorService
	catalog     *catalogService
	reservation *reservationService
	bulletin    *bulletinService
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()

	records := memory.NewRecordRepository()
	publisher := quietPublisher(t)
	logger := newTestLogger()
	cfg := newTestConfig()

	editor := NewEditorService(EditorServiceParams{Records: records, Publisher: publisher, Logger: logger}).(*editorService)

	catalog := NewCatalogService(CatalogServiceParams{
		Records: records, Editor: editor, Publisher: publisher, Config: cfg, Logger: logger,
	}).(*catalogService)
	catalog.now = fixedClock()

	reservation := NewReservationService(ReservationServiceParams{
		Records:   records,
		Editor:    editor,
		Hasher:    passphrase.NewBcryptHasher(bcrypt.MinCost),
		QRCode:    qrcode.NewQRCodeService(128, "M"),
		Publisher: publisher,
		Config:    cfg,
		Logger:    logger,
	}).(*reservationService)
	reservation.now = fixedClock()

	bulletin := NewBulletinService(BulletinServiceParams{
		Records: records, Editor: editor, Publisher: publisher, Config: cfg, Logger: logger,
	}).(*bulletinService)
	bulletin.now = fixedClock()

	return &testServices{
		records:     records,
		editor:      editor,
		catalog:     catalog,
		reservation: reservation,
		bulletin:    bulletin,
	}
}
