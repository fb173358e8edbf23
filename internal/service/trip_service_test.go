package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"fleet-service/internal/model"
	"fleet-service/internal/repository"
)

type stubTripStore struct {
	trip *model.Trip

	completeErr   error
	completeCalls int
	setStatusTo   []model.TripStatus
}

func (s *stubTripStore) ListLive(ctx context.Context) ([]model.Trip, error) { return nil, nil }

func (s *stubTripStore) ListHistory(ctx context.Context, filter repository.TripHistoryFilter) ([]model.Trip, error) {
	return nil, nil
}

func (s *stubTripStore) GetByID(ctx context.Context, id uuid.UUID) (*model.Trip, error) {
	if s.trip == nil || s.trip.ID != id {
		return nil, errors.New("record not found")
	}
	copied := *s.trip
	return &copied, nil
}

func (s *stubTripStore) SetStatus(ctx context.Context, trip *model.Trip, status model.TripStatus) error {
	s.setStatusTo = append(s.setStatusTo, status)
	return nil
}

func (s *stubTripStore) Complete(ctx context.Context, trip *model.Trip, completedAt time.Time) error {
	s.completeCalls++
	return s.completeErr
}

func liveTripStore() *stubTripStore {
	return &stubTripStore{trip: &model.Trip{
		ID:     uuid.New(),
		CarID:  uuid.New(),
		Status: model.TripStatusOnHighway,
	}}
}

func TestUpdateStatusRejectsUnknownPrincipal(t *testing.T) {
	store := liveTripStore()
	svc := NewTripService(store)

	err := svc.UpdateStatus(context.Background(), model.Principal{}, store.trip.ID, model.TripStatusCompleted)
	if err != ErrPermissionDenied {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}
	if store.completeCalls != 0 {
		t.Fatalf("no write may happen for an unknown principal")
	}
}

func TestUpdateStatusRejectsInvalidTarget(t *testing.T) {
	store := liveTripStore()
	svc := NewTripService(store)
	principal := model.Principal{Role: model.AppRoleDriver}

	err := svc.UpdateStatus(context.Background(), principal, store.trip.ID, model.TripStatus("teleporting"))
	if err != ErrInvalidStatus {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestUpdateStatusCompletedTripIsTerminal(t *testing.T) {
	store := liveTripStore()
	store.trip.Status = model.TripStatusCompleted
	svc := NewTripService(store)
	principal := model.Principal{Role: model.AppRoleAdmin}

	err := svc.UpdateStatus(context.Background(), principal, store.trip.ID, model.TripStatusOnHighway)
	if err != ErrInvalidStatus {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if store.completeCalls != 0 || len(store.setStatusTo) != 0 {
		t.Fatalf("terminal trip must not be written again")
	}
}

func TestUpdateStatusCompletionRunsCascadeOnce(t *testing.T) {
	store := liveTripStore()
	svc := NewTripService(store)
	principal := model.Principal{Role: model.AppRoleAdmin}

	if err := svc.UpdateStatus(context.Background(), principal, store.trip.ID, model.TripStatusCompleted); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if store.completeCalls != 1 {
		t.Fatalf("expected exactly one completion cascade, got %d", store.completeCalls)
	}
	if len(store.setStatusTo) != 0 {
		t.Fatalf("completion must not also mirror a plain status write")
	}
}

func TestUpdateStatusCompletionRaceReportsInvalidStatus(t *testing.T) {
	store := liveTripStore()
	store.completeErr = repository.ErrTripCompleted
	svc := NewTripService(store)
	principal := model.Principal{Role: model.AppRoleAdmin}

	err := svc.UpdateStatus(context.Background(), principal, store.trip.ID, model.TripStatusCompleted)
	if err != ErrInvalidStatus {
		t.Fatalf("losing the completion race must read as an invalid transition, got %v", err)
	}
}

func TestUpdateStatusMirrorsNonTerminalTarget(t *testing.T) {
	store := liveTripStore()
	svc := NewTripService(store)
	principal := model.Principal{Role: model.AppRoleDriver}

	if err := svc.UpdateStatus(context.Background(), principal, store.trip.ID, model.TripStatusRestStop); err != nil {
		t.Fatalf("set status: %v", err)
	}
	if len(store.setStatusTo) != 1 || store.setStatusTo[0] != model.TripStatusRestStop {
		t.Fatalf("expected one status write to rest_stop, got %v", store.setStatusTo)
	}
	if store.completeCalls != 0 {
		t.Fatalf("non-terminal target must not run the completion cascade")
	}
}
