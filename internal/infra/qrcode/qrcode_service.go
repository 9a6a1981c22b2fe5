package qrcode

import (
	"encoding/json"

	"library/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const pickupType = "pickup"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// PickupData is the payload encoded in a reservation pickup QR code
type PickupData struct {
	ReservationID string `json:"reservation_id"`
	BookID        string `json:"book_id"`
	Type          string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GeneratePickupQR renders the pickup payload as a PNG
func (s *qrcodeService) GeneratePickupQR(reservationID, bookID string) ([]byte, error) {
	if reservationID == "" {
		return nil, errors.New("reservation ID is required")
	}

	jsonData, err := json.Marshal(PickupData{
		ReservationID: reservationID,
		BookID:        bookID,
		Type:          pickupType,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParsePickupQR returns the reservation ID from scanned pickup QR text
func (s *qrcodeService) ParsePickupQR(qrData string) (string, error) {
	var data PickupData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != pickupType {
		return "", errors.Errorf("invalid QR code type: %s", data.Type)
	}
	if data.ReservationID == "" {
		return "", errors.New("QR code has no reservation ID")
	}

	return data.ReservationID, nil
}
