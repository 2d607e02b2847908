//go:build unit
// +build unit

package v1

import (
	"context"
	"mime/multipart"

	"github.com/splashcamper/splashcamper-api/internal/domain/images"
	"github.com/splashcamper/splashcamper-api/internal/domain/reviews"
	"github.com/splashcamper/splashcamper-api/internal/domain/stations"
	"github.com/splashcamper/splashcamper-api/internal/domain/users"
	"github.com/splashcamper/splashcamper-api/internal/domain/washlanes"

	"github.com/stretchr/testify/mock"
)

// MockStationService is a mock implementation of StationService
type MockStationService struct {
	mock.Mock
}

func (m *MockStationService) Submit(ctx context.Context, station *stations.Station, userID string) (*stations.Station, error) {
	args := m.Called(ctx, station, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stations.Station), args.Error(1)
}

func (m *MockStationService) List(ctx context.Context, query *stations.StationQuery) ([]*stations.Station, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*stations.Station), args.Error(1)
}

func (m *MockStationService) GetByID(ctx context.Context, stationID string) (*stations.Station, error) {
	args := m.Called(ctx, stationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stations.Station), args.Error(1)
}

func (m *MockStationService) Update(ctx context.Context, station *stations.Station) (*stations.Station, error) {
	args := m.Called(ctx, station)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stations.Station), args.Error(1)
}

// MockAdminStationService is a mock implementation of AdminStationService
type MockAdminStationService struct {
	mock.Mock
}

func (m *MockAdminStationService) List(ctx context.Context, query *stations.StationQuery) ([]*stations.Station, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*stations.Station), args.Error(1)
}

func (m *MockAdminStationService) SetStatus(ctx context.Context, stationID, status string) (*stations.Station, error) {
	args := m.Called(ctx, stationID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stations.Station), args.Error(1)
}

func (m *MockAdminStationService) DeleteByID(ctx context.Context, stationID string) error {
	return m.Called(ctx, stationID).Error(0)
}

// MockWashLaneService is a mock implementation of WashLaneService
type MockWashLaneService struct {
	mock.Mock
}

func (m *MockWashLaneService) Resolve(ctx context.Context, stationID string) (*washlanes.Resolution, error) {
	args := m.Called(ctx, stationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*washlanes.Resolution), args.Error(1)
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
	return args.Get(0).(*stations.Station), args.Get(1).([]byte), args.Error(2)
}

// MockReviewService is a mock implementation of ReviewService
type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) Submit(ctx context.Context, review *reviews.Review) (*reviews.Review, error) {
	args := m.Called(ctx, review)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reviews.Review), args.Error(1)
}

func (m *MockReviewService) ListByStation(ctx context.Context, query *reviews.ReviewQuery) ([]*reviews.Review, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*reviews.Review), args.Error(1)
}

func (m *MockReviewService) Summary(ctx context.Context, stationID string) (*reviews.Summary, error) {
	args := m.Called(ctx, stationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reviews.Summary), args.Error(1)
}

func (m *MockReviewService) DeleteByID(ctx context.Context, reviewID string) error {
	return m.Called(ctx, reviewID).Error(0)
}

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) EnsureUser(ctx context.Context, identity *users.Identity) (*users.User, error) {
	args := m.Called(ctx, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserService) GetByID(ctx context.Context, userID string) (*users.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserService) PromoteByEmail(ctx context.Context, email string) (*users.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

// MockImageUploadService is a mock implementation of ImageUploadService
type MockImageUploadService struct {
	mock.Mock
}

func (m *MockImageUploadService) Upload(ctx context.Context, stationID string, form *multipart.Form, userID string) ([]*images.StationImage, error) {
	args := m.Called(ctx, stationID, form, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*images.StationImage), args.Error(1)
}

// MockImageMetadataService is a mock implementation of ImageMetadataService
type MockImageMetadataService struct {
	mock.Mock
}

func (m *MockImageMetadataService) ListByStation(ctx context.Context, stationID string) ([]*images.StationImage, error) {
	args := m.Called(ctx, stationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*images.StationImage), args.Error(1)
}

func (m *MockImageMetadataService) GetByID(ctx context.Context, imageID string) (*images.StationImage, error) {
	args := m.Called(ctx, imageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*images.StationImage), args.Error(1)
}

func (m *MockImageMetadataService) DeleteByID(ctx context.Context, imageID string) error {
	return m.Called(ctx, imageID).Error(0)
}

// MockImageDownloadService is a mock implementation of ImageDownloadService
type MockImageDownloadService struct {
	mock.Mock
}

func (m *MockImageDownloadService) DownloadByID(ctx context.Context, imageID string) ([]byte, *images.StationImage, error) {
	args := m.Called(ctx, imageID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]byte), args.Get(1).(*images.StationImage), args.Error(2)
}
