package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"fleet-service/internal/model"
	"fleet-service/internal/repository"
)

// TripStore is the trip persistence surface the service drives.
// *repository.TripRepository implements it.
type TripStore interface {
	ListLive(ctx context.Context) ([]model.Trip, error)
	ListHistory(ctx context.Context, filter repository.TripHistoryFilter) ([]model.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Trip, error)
	SetStatus(ctx context.Context, trip *model.Trip, status model.TripStatus) error
	Complete(ctx context.Context, trip *model.Trip, completedAt time.Time) error
}

type TripService struct {
	tripRepo TripStore
}

func NewTripService(tripRepo TripStore) *TripService {
	return &TripService{tripRepo: tripRepo}
}

func (s *TripService) ListLive(ctx context.Context) ([]model.TripRecord, error) {
	trips, err := s.tripRepo.ListLive(ctx)
	if err != nil {
		return nil, err
	}
	return buildTripRecords(trips), nil
}

type HistoryOptions struct {
	DateFrom *time.Time
	DateTo   *time.Time
	DriverID *uuid.UUID
	RouteID  *uuid.UUID
	Limit    int
	Offset   int
}

func (s *TripService) ListHistory(ctx context.Context, opts HistoryOptions) ([]model.TripRecord, error) {
	trips, err := s.tripRepo.ListHistory(ctx, repository.TripHistoryFilter{
		DateFrom: opts.DateFrom,
		DateTo:   opts.DateTo,
		DriverID: opts.DriverID,
		RouteID:  opts.RouteID,
		Limit:    opts.Limit,
		Offset:   opts.Offset,
	})
	if err != nil {
		return nil, err
	}
	return buildTripRecords(trips), nil
}

func (s *TripService) Get(ctx context.Context, id uuid.UUID) (*model.TripRecord, error) {
	trip, err := s.tripRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err)
	}
	record := buildTripRecord(*trip)
	return &record, nil
}

// UpdateStatus drives the trip lifecycle. Both staff roles may move
// trips; completion runs the full cascade in one transaction and other
// targets mirror the status onto the car. A completed trip is terminal,
// and a completion that loses the race to another request is reported
// as an invalid transition rather than booked twice.
func (s *TripService) UpdateStatus(ctx context.Context, principal model.Principal, tripID uuid.UUID, target model.TripStatus) error {
	if !principal.Role.Valid() {
		return ErrPermissionDenied
	}
	if !target.Valid() {
		return ErrInvalidStatus
	}

	trip, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		return notFoundOr(err)
	}

	if trip.Status == model.TripStatusCompleted {
		return ErrInvalidStatus
	}

	if target == model.TripStatusCompleted {
		if err := s.tripRepo.Complete(ctx, trip, time.Now()); err != nil {
			if errors.Is(err, repository.ErrTripCompleted) {
				return ErrInvalidStatus
			}
			return err
		}
		return nil
	}
	return s.tripRepo.SetStatus(ctx, trip, target)
}

func buildTripRecords(trips []model.Trip) []model.TripRecord {
	records := make([]model.TripRecord, 0, len(trips))
	for _, trip := range trips {
		records = append(records, buildTripRecord(trip))
	}
	return records
}

func buildTripRecord(trip model.Trip) model.TripRecord {
	record := model.TripRecord{Trip: trip}

	if trip.Car != nil {
		record.Car = &model.CarBrief{
			ID:          trip.Car.ID,
			PlateNumber: trip.Car.PlateNumber,
			Model:       trip.Car.Model,
			CarType:     trip.Car.CarType,
		}
	}
	if trip.Driver != nil {
		record.Driver = &model.DriverBrief{
			ID:    trip.Driver.ID,
			Name:  trip.Driver.Name,
			Phone: trip.Driver.Phone,
		}
	}
	if trip.Route != nil {
		record.Route = &model.RouteBrief{
			ID:          trip.Route.ID,
			Name:        trip.Route.Name,
			Origin:      trip.Route.Origin,
			Destination: trip.Route.Destination,
			BasePrice:   trip.Route.BasePrice,
		}
	}

	record.Trip.Car = nil
	record.Trip.Driver = nil
	record.Trip.Route = nil
	return record
}
