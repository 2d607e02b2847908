package reviews

import (
	"fmt"

	"github.com/splashcamper/splashcamper-api/internal/pkg/validators"
)

// ReviewQuery filters reviews
type ReviewQuery struct {
	StationID string
	UserID    string `validate:"omitempty,uuid4"`
	MinRating int    `validate:"omitempty,min=1,max=5"`
	Limit     int    `validate:"omitempty,min=0,max=200"`
	Offset    int    `validate:"omitempty,min=0"`
}

// NewReviewQuery creates a ReviewQuery for one station
func NewReviewQuery(stationID string) *ReviewQuery {
	return &ReviewQuery{StationID: stationID}
}

// Validate for validating ReviewQuery struct
func (q *ReviewQuery) Validate() error {
	if err := validators.Struct(q); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}
