package entity

const (
	MinRating     = 1
	MaxRating     = 5
	DefaultRating = 5
)

// Review is a reader comment embedded in a Book.
type Review struct {
	ID        string `json:"id"`
	User      string `json:"user"`
	Comment   string `json:"comment"`
	Rating    int    `json:"rating"`
	Timestamp string `json:"timestamp"`
}

// ToFields encodes the review for embedding in a book record.
func (r *Review) ToFields() (Fields, error) {
	return toFields(r)
}
