package service

// QRCodeService defines the interface for reservation pickup QR codes
type QRCodeService interface {
	// GeneratePickupQR renders a PNG QR code identifying a reservation
	GeneratePickupQR(reservationID, bookID string) ([]byte, error)

	// ParsePickupQR extracts the reservation ID from scanned QR code text
	ParsePickupQR(qrData string) (string, error)
}
