package service

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"fleet-service/internal/model"
)

type stubLocationStore struct {
	created []*model.VehicleLocation
}

func (s *stubLocationStore) Create(ctx context.Context, loc *model.VehicleLocation) error {
	s.created = append(s.created, loc)
	return nil
}

func (s *stubLocationStore) LatestPerActiveTrip(ctx context.Context) ([]model.VehicleLocation, error) {
	return nil, nil
}

type stubBroadcaster struct {
	events []model.LocationEvent
}

func (b *stubBroadcaster) Broadcast(event model.LocationEvent) {
	b.events = append(b.events, event)
}

func TestValidCoordinates(t *testing.T) {
	cases := []struct {
		lat, lng float64
		want     bool
	}{
		{0, 0, true},
		{-90, 180, true},
		{51.1282, 71.4304, true},
		{90.0001, 0, false},
		{-90.5, 0, false},
		{0, 180.1, false},
		{0, -181, false},
	}
	for _, tc := range cases {
		if got := validCoordinates(tc.lat, tc.lng); got != tc.want {
			t.Fatalf("validCoordinates(%v, %v) = %v, want %v", tc.lat, tc.lng, got, tc.want)
		}
	}
}

func TestRecordAcceptsZeroCoordinates(t *testing.T) {
	trips := liveTripStore()
	locations := &stubLocationStore{}
	feed := &stubBroadcaster{}
	svc := NewLocationService(locations, trips, feed)

	loc, err := svc.Record(context.Background(), LocationInput{
		TripID:    trips.trip.ID,
		Latitude:  0,
		Longitude: 0,
	})
	if err != nil {
		t.Fatalf("record at the null island fix: %v", err)
	}
	if loc.CarID != trips.trip.CarID {
		t.Fatalf("fix must carry the trip's car id")
	}
	if len(locations.created) != 1 {
		t.Fatalf("expected one stored fix, got %d", len(locations.created))
	}
	if len(feed.events) != 1 || feed.events[0].TripID != trips.trip.ID {
		t.Fatalf("stored fix must be broadcast to the feed")
	}
}

func TestRecordRejectsOffGridCoordinates(t *testing.T) {
	trips := liveTripStore()
	locations := &stubLocationStore{}
	svc := NewLocationService(locations, trips, nil)

	_, err := svc.Record(context.Background(), LocationInput{
		TripID:   trips.trip.ID,
		Latitude: 91,
	})
	if err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if len(locations.created) != 0 {
		t.Fatalf("off-grid fix must not be stored")
	}
}

func TestRecordRejectsCompletedTrip(t *testing.T) {
	trips := liveTripStore()
	trips.trip.Status = model.TripStatusCompleted
	locations := &stubLocationStore{}
	svc := NewLocationService(locations, trips, nil)

	_, err := svc.Record(context.Background(), LocationInput{TripID: trips.trip.ID})
	if err != ErrInvalidStatus {
		t.Fatalf("expected ErrInvalidStatus for a completed trip, got %v", err)
	}
}

func TestRecordRequiresTripID(t *testing.T) {
	svc := NewLocationService(&stubLocationStore{}, liveTripStore(), nil)

	if _, err := svc.Record(context.Background(), LocationInput{TripID: uuid.Nil}); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput without a trip id, got %v", err)
	}
}
