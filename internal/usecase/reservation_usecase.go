package usecase

import (
	"context"

	"library/internal/domain/entity"
)

// ReservationInput is a patron's reservation request
type ReservationInput struct {
	UserName   string `json:"userName" validate:"required"`
	Passphrase string `json:"passphrase" validate:"required,max=256"`
}

// ReservationUsecase defines the pickup reservation use cases
type ReservationUsecase interface {
	Reserve(ctx context.Context, bookID string, input *ReservationInput) (*entity.Reservation, error)
	ListReservations(ctx context.Context) ([]*entity.Reservation, error)

	// UpdateStatus moves a reservation to the given status; staff drive every transition
	UpdateStatus(ctx context.Context, id string, status entity.ReservationStatus) (*entity.Reservation, error)

	// VerifyPassphrase checks the passphrase a patron gives at the counter
	VerifyPassphrase(ctx context.Context, id, passphrase string) (bool, error)

	// PickupQRCode renders a PNG QR code identifying the reservation
	PickupQRCode(ctx context.Context, id string) ([]byte, error)

	DeleteReservation(ctx context.Context, id string, confirmed bool) error
}
