package v1

import (
	"fmt"
	"time"

	"github.com/splashcamper/splashcamper-api/internal/domain/images"
	"github.com/splashcamper/splashcamper-api/internal/domain/reviews"
	"github.com/splashcamper/splashcamper-api/internal/domain/stations"
	"github.com/splashcamper/splashcamper-api/internal/domain/users"
	"github.com/splashcamper/splashcamper-api/internal/domain/washlanes"
	"github.com/splashcamper/splashcamper-api/internal/pkg/validators"
)

// ErrorResponse is returned for every failed request
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse carries a short confirmation message
type InfoResponse struct {
	Message string `json:"message"`
}

// ServicesDTO lists station facilities
type ServicesDTO struct {
	DrinkingWater      bool     `json:"drinkingWater"`
	GreyWaterDisposal  bool     `json:"greyWaterDisposal"`
	BlackWaterDisposal bool     `json:"blackWaterDisposal"`
	Electricity        bool     `json:"electricity"`
	Toilets            bool     `json:"toilets"`
	Showers            bool     `json:"showers"`
	Vacuum             bool     `json:"vacuum"`
	HighPressure       bool     `json:"highPressure"`
	PaymentMethods     []string `json:"paymentMethods"`
}

// ParkingDetailsDTO describes overnight parking
type ParkingDetailsDTO struct {
	Capacity               int      `json:"capacity"`
	IsFree                 bool     `json:"isFree"`
	PricePerNight          *float64 `json:"pricePerNight,omitempty"`
	MaxStayHours           *int     `json:"maxStayHours,omitempty"`
	OvernightAllowed       bool     `json:"overnightAllowed"`
	MaxVehicleLengthMeters *float64 `json:"maxVehicleLengthMeters,omitempty"`
	OpeningHours           string   `json:"openingHours,omitempty"`
}

// WashLaneDTO describes one washing bay
type WashLaneDTO struct {
	LaneNumber      int  `json:"laneNumber"`
	HasHighPressure bool `json:"hasHighPressure"`
	HasPortique     bool `json:"hasPortique"`
	HasTallPortique bool `json:"hasTallPortique"`
}

// StationRequest is the body of station submissions and admin edits
type StationRequest struct {
	Name           string             `json:"name" validate:"required,min=2,max=255"`
	Type           string             `json:"type" validate:"required,oneof=wash parking both"`
	Address        string             `json:"address"`
	City           string             `json:"city" validate:"required"`
	PostalCode     string             `json:"postalCode" validate:"required,frpostalcode"`
	Latitude       float64            `json:"latitude" validate:"latitude"`
	Longitude      float64            `json:"longitude" validate:"longitude"`
	Description    string             `json:"description"`
	Website        string             `json:"website"`
	Phone          string             `json:"phone"`
	Services       *ServicesDTO       `json:"services"`
	ParkingDetails *ParkingDetailsDTO `json:"parkingDetails"`
	WashLanes      []WashLaneDTO      `json:"washLanes"`
}

// Validate checks the fields a client must send
func (r *StationRequest) Validate() error {
	if err := validators.Struct(r); err != nil {
		return fmt.Errorf("%w: %v", stations.ErrValidation, err)
	}
	return nil
}

// ToDomain converts the request into a station without identity or moderation fields
func (r *StationRequest) ToDomain() *stations.Station {
	st := &stations.Station{
		Name:        r.Name,
		Type:        r.Type,
		Address:     r.Address,
		City:        r.City,
		PostalCode:  r.PostalCode,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		Description: r.Description,
		Website:     r.Website,
		Phone:       r.Phone,
	}
	if r.Services != nil {
		st.Services = &stations.Service{
			DrinkingWater:      r.Services.DrinkingWater,
			GreyWaterDisposal:  r.Services.GreyWaterDisposal,
			BlackWaterDisposal: r.Services.BlackWaterDisposal,
			Electricity:        r.Services.Electricity,
			Toilets:            r.Services.Toilets,
			Showers:            r.Services.Showers,
			Vacuum:             r.Services.Vacuum,
			HighPressure:       r.Services.HighPressure,
			PaymentMethods:     r.Services.PaymentMethods,
		}
	}
	if r.ParkingDetails != nil {
		st.ParkingDetails = &stations.ParkingDetails{
			Capacity:               r.ParkingDetails.Capacity,
			IsFree:                 r.ParkingDetails.IsFree,
			PricePerNight:          r.ParkingDetails.PricePerNight,
			MaxStayHours:           r.ParkingDetails.MaxStayHours,
			OvernightAllowed:       r.ParkingDetails.OvernightAllowed,
			MaxVehicleLengthMeters: r.ParkingDetails.MaxVehicleLengthMeters,
			OpeningHours:           r.ParkingDetails.OpeningHours,
		}
	}
	for _, lane := range r.WashLanes {
		st.WashLanes = append(st.WashLanes, stations.WashLane{
			LaneNumber:      lane.LaneNumber,
			HasHighPressure: lane.HasHighPressure,
			HasPortique:     lane.HasPortique,
			HasTallPortique: lane.HasTallPortique,
		})
	}
	return st
}

// StationResponse is the public representation of a station
type StationResponse struct {
	ID              string             `json:"id"`
	LegacyID        *string            `json:"legacyId,omitempty"`
	Name            string             `json:"name"`
	Type            string             `json:"type"`
	Status          string             `json:"status"`
	Address         string             `json:"address"`
	City            string             `json:"city"`
	PostalCode      string             `json:"postalCode"`
	Latitude        float64            `json:"latitude"`
	Longitude       float64            `json:"longitude"`
	Description     string             `json:"description,omitempty"`
	Website         string             `json:"website,omitempty"`
	Phone           string             `json:"phone,omitempty"`
	CreatedByID     *string            `json:"createdById,omitempty"`
	DateTimeCreated time.Time          `json:"dateTimeCreated"`
	DateTimeUpdated *time.Time         `json:"dateTimeUpdated,omitempty"`
	Services        *ServicesDTO       `json:"services,omitempty"`
	ParkingDetails  *ParkingDetailsDTO `json:"parkingDetails,omitempty"`
	WashLanes       []WashLaneDTO      `json:"washLanes"`
}

// NewStationResponse maps a domain station to its response body
func NewStationResponse(st *stations.Station) StationResponse {
	resp := StationResponse{
		ID:              st.ID,
		LegacyID:        st.LegacyID,
		Name:            st.Name,
		Type:            st.Type,
		Status:          st.Status,
		Address:         st.Address,
		City:            st.City,
		PostalCode:      st.PostalCode,
		Latitude:        st.Latitude,
		Longitude:       st.Longitude,
		Description:     st.Description,
		Website:         st.Website,
		Phone:           st.Phone,
		CreatedByID:     st.CreatedByID,
		DateTimeCreated: st.DateTimeCreated,
		WashLanes:       newWashLaneDTOs(st.WashLanes),
	}
	if !st.DateTimeUpdated.IsZero() {
		updated := st.DateTimeUpdated
		resp.DateTimeUpdated = &updated
	}
	if s := st.Services; s != nil {
		resp.Services = &ServicesDTO{
			DrinkingWater:      s.DrinkingWater,
			GreyWaterDisposal:  s.GreyWaterDisposal,
			BlackWaterDisposal: s.BlackWaterDisposal,
			Electricity:        s.Electricity,
			Toilets:            s.Toilets,
			Showers:            s.Showers,
			Vacuum:             s.Vacuum,
			HighPressure:       s.HighPressure,
			PaymentMethods:     s.PaymentMethods,
		}
	}
	if p := st.ParkingDetails; p != nil {
		resp.ParkingDetails = &ParkingDetailsDTO{
			Capacity:               p.Capacity,
			IsFree:                 p.IsFree,
			PricePerNight:          p.PricePerNight,
			MaxStayHours:           p.MaxStayHours,
			OvernightAllowed:       p.OvernightAllowed,
			MaxVehicleLengthMeters: p.MaxVehicleLengthMeters,
			OpeningHours:           p.OpeningHours,
		}
	}
	return resp
}

func newStationResponses(list []*stations.Station) []StationResponse {
	resp := make([]StationResponse, 0, len(list))
	for _, st := range list {
		resp = append(resp, NewStationResponse(st))
	}
	return resp
}

func newWashLaneDTOs(lanes []stations.WashLane) []WashLaneDTO {
	dtos := make([]WashLaneDTO, 0, len(lanes))
	for _, lane := range lanes {
		dtos = append(dtos, WashLaneDTO{
			LaneNumber:      lane.LaneNumber,
			HasHighPressure: lane.HasHighPressure,
			HasPortique:     lane.HasPortique,
			HasTallPortique: lane.HasTallPortique,
		})
	}
	return dtos
}

// WashLanesResponse is the resolved lane list of a station
type WashLanesResponse struct {
	StationID string        `json:"stationId"`
	Source    string        `json:"source"`
	Lanes     []WashLaneDTO `json:"lanes"`
}

// NewWashLanesResponse maps a resolution to its response body
func NewWashLanesResponse(res *washlanes.Resolution) WashLanesResponse {
	return WashLanesResponse{
		StationID: res.StationID,
		Source:    res.Source,
		Lanes:     newWashLaneDTOs(res.Lanes),
	}
}

// StatusRequest is the body of a moderation decision
type StatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending active rejected"`
}

// Validate checks the requested status
func (r *StatusRequest) Validate() error {
	if err := validators.Struct(r); err != nil {
		return fmt.Errorf("%w: %v", stations.ErrValidation, err)
	}
	return nil
}

// ReviewRequest is the body of a review submission
type ReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"max=2000"`
}

// Validate checks rating bounds and comment length
func (r *ReviewRequest) Validate() error {
	if err := validators.Struct(r); err != nil {
		return fmt.Errorf("%w: %v", reviews.ErrValidation, err)
	}
	return nil
}

// ReviewResponse is the public representation of a review
type ReviewResponse struct {
	ID              string    `json:"id"`
	StationID       string    `json:"stationId"`
	UserID          string    `json:"userId"`
	Rating          int       `json:"rating"`
	Comment         string    `json:"comment,omitempty"`
	DateTimeCreated time.Time `json:"dateTimeCreated"`
}

// NewReviewResponse maps a domain review to its response body
func NewReviewResponse(r *reviews.Review) ReviewResponse {
	return ReviewResponse{
		ID:              r.ID,
		StationID:       r.StationID,
		UserID:          r.UserID,
		Rating:          r.Rating,
		Comment:         r.Comment,
		DateTimeCreated: r.DateTimeCreated,
	}
}

// ReviewSummaryResponse aggregates the ratings of a station
type ReviewSummaryResponse struct {
	StationID     string  `json:"stationId"`
	Count         int     `json:"count"`
	AverageRating float64 `json:"averageRating"`
}

// ReviewListResponse is a page of reviews with the station summary
type ReviewListResponse struct {
	Summary ReviewSummaryResponse `json:"summary"`
	Reviews []ReviewResponse      `json:"reviews"`
}

// NewReviewListResponse maps reviews and their summary to a response body
func NewReviewListResponse(summary *reviews.Summary, list []*reviews.Review) ReviewListResponse {
	resp := ReviewListResponse{
		Summary: ReviewSummaryResponse{
			StationID:     summary.StationID,
			Count:         summary.Count,
			AverageRating: summary.AverageRating,
		},
		Reviews: make([]ReviewResponse, 0, len(list)),
	}
	for _, r := range list {
		resp.Reviews = append(resp.Reviews, NewReviewResponse(r))
	}
	return resp
}

// StationImageResponse is the metadata of an uploaded photo
type StationImageResponse struct {
	ID              string    `json:"id"`
	StationID       string    `json:"stationId"`
	UserID          string    `json:"userId"`
	Name            string    `json:"name"`
	Size            int64     `json:"size"`
	Type            string    `json:"type"`
	DateTimeCreated time.Time `json:"dateTimeCreated"`
}

// NewStationImageResponse maps image metadata to its response body
func NewStationImageResponse(img *images.StationImage) StationImageResponse {
	return StationImageResponse{
		ID:              img.ID,
		StationID:       img.StationID,
		UserID:          img.UserID,
		Name:            img.Name,
		Size:            img.Size,
		Type:            img.Type,
		DateTimeCreated: img.DateTimeCreated,
	}
}

func newStationImageResponses(list []*images.StationImage) []StationImageResponse {
	resp := make([]StationImageResponse, 0, len(list))
	for _, img := range list {
		resp = append(resp, NewStationImageResponse(img))
	}
	return resp
}

// UserResponse describes the signed-in account
type UserResponse struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	Name            string    `json:"name,omitempty"`
	Image           string    `json:"image,omitempty"`
	Role            string    `json:"role"`
	DateTimeCreated time.Time `json:"dateTimeCreated"`
}

// NewUserResponse maps a user to its response body
func NewUserResponse(u *users.User) UserResponse {
	return UserResponse{
		ID:              u.ID,
		Email:           u.Email,
		Name:            u.Name,
		Image:           u.Image,
		Role:            u.Role,
		DateTimeCreated: u.DateTimeCreated,
	}
}
