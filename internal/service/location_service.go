package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleet-service/internal/model"
)

// Broadcaster fans a location event out to connected dashboard clients.
type Broadcaster interface {
	Broadcast(event model.LocationEvent)
}

// LocationStore is the slice of the location repository the service
// depends on.
type LocationStore interface {
	Create(ctx context.Context, loc *model.VehicleLocation) error
	LatestPerActiveTrip(ctx context.Context) ([]model.VehicleLocation, error)
}

type LocationService struct {
	locationRepo LocationStore
	tripRepo     TripStore
	broadcaster  Broadcaster
}

func NewLocationService(locationRepo LocationStore, tripRepo TripStore, broadcaster Broadcaster) *LocationService {
	return &LocationService{locationRepo: locationRepo, tripRepo: tripRepo, broadcaster: broadcaster}
}

type LocationInput struct {
	TripID     uuid.UUID
	Latitude   float64
	Longitude  float64
	Heading    float64
	Speed      float64
	Accuracy   float64
	RecordedAt *time.Time
}

func (s *LocationService) Record(ctx context.Context, input LocationInput) (*model.VehicleLocation, error) {
	if input.TripID == uuid.Nil {
		return nil, ErrInvalidInput
	}
	if !validCoordinates(input.Latitude, input.Longitude) {
		return nil, ErrInvalidInput
	}

	trip, err := s.tripRepo.GetByID(ctx, input.TripID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if trip.Status == model.TripStatusCompleted {
		return nil, ErrInvalidStatus
	}

	recordedAt := time.Now().UTC()
	if input.RecordedAt != nil {
		recordedAt = input.RecordedAt.UTC()
	}

	loc := &model.VehicleLocation{
		TripID:     trip.ID,
		CarID:      trip.CarID,
		Latitude:   input.Latitude,
		Longitude:  input.Longitude,
		Heading:    input.Heading,
		Speed:      input.Speed,
		Accuracy:   input.Accuracy,
		RecordedAt: recordedAt,
	}
	if err := s.locationRepo.Create(ctx, loc); err != nil {
		return nil, err
	}

	if s.broadcaster != nil {
		s.broadcaster.Broadcast(model.LocationEvent{
			TripID:     loc.TripID,
			CarID:      loc.CarID,
			Latitude:   loc.Latitude,
			Longitude:  loc.Longitude,
			Heading:    loc.Heading,
			Speed:      loc.Speed,
			RecordedAt: loc.RecordedAt,
		})
	}
	return loc, nil
}

// validCoordinates reports whether the pair is on the WGS84 grid. Zero
// is a legal value on both axes.
func validCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// Latest returns the most recent fix for every trip that is still in
// progress, one row per trip.
func (s *LocationService) Latest(ctx context.Context) ([]model.VehicleLocation, error) {
	return s.locationRepo.LatestPerActiveTrip(ctx)
}
