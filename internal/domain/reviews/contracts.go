package reviews

import "context"

// ReviewService defines methods for submitting and reading station reviews.
type ReviewService interface {
	// Submit stores a review for an active or legacy station.
	// It returns ErrDuplicate when the user already reviewed that station.
	Submit(ctx context.Context, review *Review) (*Review, error)

	// ListByStation returns the reviews of a station, newest first.
	ListByStation(ctx context.Context, query *ReviewQuery) ([]*Review, error)

	// Summary returns the review count and average rating of a station.
	Summary(ctx context.Context, stationID string) (*Summary, error)

	// DeleteByID removes a review. Used by moderators.
	DeleteByID(ctx context.Context, reviewID string) error
}

// ReviewRepository defines the interface for Review-related operations
type ReviewRepository interface {
	Create(ctx context.Context, review *Review) error
	List(ctx context.Context, query *ReviewQuery) ([]*Review, error)
	GetByID(ctx context.Context, reviewID string) (*Review, error)
	ExistsForUser(ctx context.Context, stationID, userID string) (bool, error)
	DeleteByID(ctx context.Context, reviewID string) error
}
