package entity

// ReservationStatus is advanced by library staff; nothing here moves it automatically.
type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "PENDING"
	ReservationReady     ReservationStatus = "READY"
	ReservationCompleted ReservationStatus = "COMPLETED"
)

func (s ReservationStatus) IsValid() bool {
	switch s {
	case ReservationPending, ReservationReady, ReservationCompleted:
		return true
	default:
		return false
	}
}

// Reservation holds a patron's request to pick up a book.
// Passphrase holds a bcrypt hash and is never serialized.
type Reservation struct {
	ID         string            `json:"id"`
	BookID     string            `json:"bookId"`
	BookTitle  string            `json:"bookTitle"`
	UserName   string            `json:"userName"`
	Passphrase string            `json:"-"`
	Timestamp  string            `json:"timestamp"`
	Status     ReservationStatus `json:"status"`
}

// Active reports whether the reservation still holds the book.
func (r *Reservation) Active() bool {
	return r.Status != ReservationCompleted
}

func ReservationFromRecord(rec *Record) (*Reservation, error) {
	reservation := &Reservation{}
	if err := decodeRecord(rec, reservation); err != nil {
		return nil, err
	}
	reservation.ID = rec.ID
	reservation.Passphrase, _ = rec.Fields["passphrase"].(string)

	return reservation, nil
}

// NewReservationFields returns the fields of a freshly submitted reservation.
func NewReservationFields(book *Book, userName, passphraseHash, timestamp string) Fields {
	return Fields{
		"bookId":     book.ID,
		"bookTitle":  book.Title,
		"userName":   userName,
		"passphrase": passphraseHash,
		"timestamp":  timestamp,
		"status":     string(ReservationPending),
	}
}
