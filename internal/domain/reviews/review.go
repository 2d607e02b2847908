package reviews

import (
	"errors"
	"fmt"
	"time"

	"github.com/splashcamper/splashcamper-api/internal/pkg/validators"
)

var (
	// ErrNotFound is returned when no review matches the requested id.
	ErrNotFound = errors.New("review not found")
	// ErrDuplicate is returned when a user reviews the same station twice.
	ErrDuplicate = errors.New("station already reviewed by user")
	// ErrValidation wraps field-level validation failures.
	ErrValidation = errors.New("invalid review")
)

// Review entity
type Review struct {
	ID              string    `validate:"required,uuid4"`
	StationID       string    `validate:"required,min=1,max=64"`
	UserID          string    `validate:"required,uuid4"`
	Rating          int       `validate:"required,min=1,max=5"`
	Comment         string    `validate:"max=2000"`
	DateTimeCreated time.Time `validate:"required"`
}

// Validate for validating Review struct
func (r *Review) Validate() error {
	if err := validators.Struct(r); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}

// Summary aggregates the ratings of one station
type Summary struct {
	StationID     string
	Count         int
	AverageRating float64
}

// Summarize computes the count and rounded average of the given reviews.
func Summarize(stationID string, reviews []*Review) *Summary {
	summary := &Summary{StationID: stationID, Count: len(reviews)}
	if len(reviews) == 0 {
		return summary
	}

	total := 0
	for _, r := range reviews {
		total += r.Rating
	}
	avg := float64(total) / float64(len(reviews))
	summary.AverageRating = float64(int(avg*10+0.5)) / 10
	return summary
}
