package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"fleet-service/internal/model"
)

func TestPlanTripCompletionBooksFareOnce(t *testing.T) {
	fare := 500.0
	driverID := uuid.New()
	preorderID := uuid.New()
	trip := &model.Trip{
		ID:         uuid.New(),
		CarID:      uuid.New(),
		DriverID:   &driverID,
		PreorderID: &preorderID,
		Status:     model.TripStatusOnHighway,
		TotalFare:  &fare,
	}
	completedAt := time.Date(2026, 8, 14, 18, 30, 0, 0, time.UTC)

	plan := PlanTripCompletion(trip, completedAt)

	if plan.TripID != trip.ID {
		t.Fatalf("plan trip id = %s, want %s", plan.TripID, trip.ID)
	}
	if !plan.CompletedAt.Equal(completedAt) {
		t.Fatalf("completed at = %v, want %v", plan.CompletedAt, completedAt)
	}
	if plan.PreorderID == nil || *plan.PreorderID != preorderID {
		t.Fatalf("plan must settle the linked preorder")
	}
	if plan.CarID != trip.CarID {
		t.Fatalf("plan must return car %s to idle, got %s", trip.CarID, plan.CarID)
	}
	if plan.DriverID == nil || *plan.DriverID != driverID {
		t.Fatalf("plan must release the assigned driver")
	}

	entry := plan.FareEntry
	if entry == nil {
		t.Fatalf("fare of %.0f must book exactly one income row", fare)
	}
	if entry.EntryType != model.EntryTypeIncome {
		t.Fatalf("fare entry type = %s, want income", entry.EntryType)
	}
	if entry.Amount != fare {
		t.Fatalf("fare entry amount = %.2f, want %.2f", entry.Amount, fare)
	}
	if entry.Description != "Trip fare" {
		t.Fatalf("fare entry description = %q", entry.Description)
	}
	if entry.TripID == nil || *entry.TripID != trip.ID {
		t.Fatalf("fare entry must link back to the trip")
	}
	if entry.CarID == nil || *entry.CarID != trip.CarID {
		t.Fatalf("fare entry must link back to the car")
	}
	if entry.DriverID == nil || *entry.DriverID != driverID {
		t.Fatalf("fare entry must link back to the driver")
	}
}

func TestPlanTripCompletionSkipsMissingFare(t *testing.T) {
	zero := 0.0
	cases := []struct {
		name string
		fare *float64
	}{
		{"no fare recorded", nil},
		{"zero fare", &zero},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			trip := &model.Trip{
				ID:        uuid.New(),
				CarID:     uuid.New(),
				Status:    model.TripStatusOnHighway,
				TotalFare: tc.fare,
			}
			plan := PlanTripCompletion(trip, time.Now())
			if plan.FareEntry != nil {
				t.Fatalf("no income row may be booked without a positive fare")
			}
			if plan.DriverID != nil {
				t.Fatalf("unassigned trip must not release a driver")
			}
			if plan.PreorderID != nil {
				t.Fatalf("walk-in trip must not settle a preorder")
			}
		})
	}
}
