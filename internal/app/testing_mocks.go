//go:build unit
// +build unit

package app

import (
	"context"
	"mime/multipart"

	"github.com/splashcamper/splashcamper-api/internal/domain/images"
	"github.com/splashcamper/splashcamper-api/internal/domain/reviews"
	"github.com/splashcamper/splashcamper-api/internal/domain/stations"
	"github.com/splashcamper/splashcamper-api/internal/domain/users"

	"github.com/stretchr/testify/mock"
)

// MockStationRepository is a mock implementation of StationRepository
type MockStationRepository struct {
	mock.Mock
}

func (m *MockStationRepository) Create(ctx context.Context, station *stations.Station) error {
	return m.Called(ctx, station).Error(0)
}

func (m *MockStationRepository) List(ctx context.Context, query *stations.StationQuery) ([]*stations.Station, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*stations.Station), args.Error(1)
}

func (m *MockStationRepository) GetByID(ctx context.Context, stationID string) (*stations.Station, error) {
	args := m.Called(ctx, stationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stations.Station), args.Error(1)
}

func (m *MockStationRepository) GetByLegacyID(ctx context.Context, legacyID string) (*stations.Station, error) {
	args := m.Called(ctx, legacyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stations.Station), args.Error(1)
}

func (m *MockStationRepository) UpdateByID(ctx context.Context, station *stations.Station) error {
	return m.Called(ctx, station).Error(0)
}

func (m *MockStationRepository) UpdateStatus(ctx context.Context, stationID, status string) error {
	return m.Called(ctx, stationID, status).Error(0)
}

func (m *MockStationRepository) DeleteByID(ctx context.Context, stationID string) error {
	return m.Called(ctx, stationID).Error(0)
}

// MockLegacyStore is a mock implementation of LegacyStore
type MockLegacyStore struct {
	mock.Mock
}

func (m *MockLegacyStore) List() []*stations.Station {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]*stations.Station)
}

func (m *MockLegacyStore) Get(legacyID string) (*stations.Station, []byte, error) {
	args := m.Called(legacyID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	raw, _ := args.Get(1).([]byte)
	return args.Get(0).(*stations.Station), raw, args.Error(2)
}

// MockReviewRepository is a mock implementation of ReviewRepository
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, review *reviews.Review) error {
	return m.Called(ctx, review).Error(0)
}

func (m *MockReviewRepository) List(ctx context.Context, query *reviews.ReviewQuery) ([]*reviews.Review, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*reviews.Review), args.Error(1)
}

func (m *MockReviewRepository) GetByID(ctx context.Context, reviewID string) (*reviews.Review, error) {
	args := m.Called(ctx, reviewID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reviews.Review), args.Error(1)
}

func (m *MockReviewRepository) ExistsForUser(ctx context.Context, stationID, userID string) (bool, error) {
	args := m.Called(ctx, stationID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockReviewRepository) DeleteByID(ctx context.Context, reviewID string) error {
	return m.Called(ctx, reviewID).Error(0)
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *users.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, userID string) (*users.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*users.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserRepository) UpdateByID(ctx context.Context, user *users.User) error {
	return m.Called(ctx, user).Error(0)
}

// MockImageRepository is a mock implementation of ImageRepository
type MockImageRepository struct {
	mock.Mock
}

func (m *MockImageRepository) Create(ctx context.Context, image *images.StationImage) error {
	return m.Called(ctx, image).Error(0)
}

func (m *MockImageRepository) ListByStation(ctx context.Context, stationID string) ([]*images.StationImage, error) {
	args := m.Called(ctx, stationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*images.StationImage), args.Error(1)
}

func (m *MockImageRepository) GetByID(ctx context.Context, imageID string) (*images.StationImage, error) {
	args := m.Called(ctx, imageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*images.StationImage), args.Error(1)
}

func (m *MockImageRepository) DeleteByID(ctx context.Context, imageID string) error {
	return m.Called(ctx, imageID).Error(0)
}

// MockImageConnector is a mock implementation of ImageConnector
type MockImageConnector struct {
	mock.Mock
}

func (m *MockImageConnector) Upload(ctx context.Context, form *multipart.Form, stationID, userID string) ([]*images.StationImage, error) {
	args := m.Called(ctx, form, stationID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*images.StationImage), args.Error(1)
}

func (m *MockImageConnector) Download(ctx context.Context, imageID, name string) ([]byte, error) {
	args := m.Called(ctx, imageID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockImageConnector) Delete(ctx context.Context, imageID, name string) error {
	return m.Called(ctx, imageID, name).Error(0)
}
