package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"fleet-service/internal/model"
)

func expenseEntry(category model.ExpenseCategory, amount float64, createdAt time.Time) model.LedgerEntry {
	cat := category
	return model.LedgerEntry{
		EntryType: model.EntryTypeExpense,
		Category:  &cat,
		Amount:    amount,
		CreatedAt: createdAt,
	}
}

func incomeEntry(amount float64, createdAt time.Time) model.LedgerEntry {
	return model.LedgerEntry{
		EntryType: model.EntryTypeIncome,
		Amount:    amount,
		CreatedAt: createdAt,
	}
}

func TestBuildDashboard(t *testing.T) {
	cars := []model.Car{
		{Status: model.TripStatusIdle},
		{Status: model.TripStatusIdle},
		{Status: model.TripStatusOnHighway},
	}
	drivers := []model.Driver{
		{Status: model.DriverStatusAvailable},
		{Status: model.DriverStatusBusy},
		{Status: model.DriverStatusOffDuty},
	}
	trips := []model.Trip{
		{Status: model.TripStatusOnHighway},
		{Status: model.TripStatusHeadingToPickup},
		{Status: model.TripStatusCompleted},
	}
	now := time.Now()
	entries := []model.LedgerEntry{
		incomeEntry(5000, now),
		expenseEntry(model.CategoryFuel, 300, now),
		expenseEntry(model.CategoryCharging, 120, now),
		expenseEntry(model.CategoryToll, 80, now),
	}

	summary := BuildDashboard(cars, drivers, trips, entries)

	if summary.TotalCars != 3 {
		t.Fatalf("total cars: %d", summary.TotalCars)
	}
	if summary.CarsByStatus[model.TripStatusIdle] != 2 {
		t.Fatalf("idle cars: %d", summary.CarsByStatus[model.TripStatusIdle])
	}
	if summary.AvailableDrivers != 1 {
		t.Fatalf("available drivers: %d", summary.AvailableDrivers)
	}
	if summary.ActiveTrips != 2 {
		t.Fatalf("active trips: %d", summary.ActiveTrips)
	}
	if summary.TotalRevenue != 5000 {
		t.Fatalf("total revenue: %f", summary.TotalRevenue)
	}
	if summary.EnergyCosts != 420 {
		t.Fatalf("energy costs: %f", summary.EnergyCosts)
	}
}

func TestMonthlyTotalsGroupsAndSorts(t *testing.T) {
	jan := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2026, time.February, 3, 0, 0, 0, 0, time.UTC)
	entries := []model.LedgerEntry{
		incomeEntry(1000, feb),
		expenseEntry(model.CategoryFuel, 200, jan),
		incomeEntry(400, jan),
		expenseEntry(model.CategoryToll, 50, feb),
	}

	months := MonthlyTotals(entries)
	if len(months) != 2 {
		t.Fatalf("expected 2 months, got %d", len(months))
	}
	if months[0].Month != "2026-01" || months[1].Month != "2026-02" {
		t.Fatalf("months out of order: %s, %s", months[0].Month, months[1].Month)
	}
	if months[0].Income != 400 || months[0].Expense != 200 {
		t.Fatalf("january totals: %+v", months[0])
	}
	if months[1].Income != 1000 || months[1].Expense != 50 {
		t.Fatalf("february totals: %+v", months[1])
	}
}

func TestCategoryTotalsSkipsIncomeAndSortsDesc(t *testing.T) {
	now := time.Now()
	entries := []model.LedgerEntry{
		incomeEntry(9999, now),
		expenseEntry(model.CategoryFuel, 100, now),
		expenseEntry(model.CategoryRepair, 700, now),
		expenseEntry(model.CategoryFuel, 150, now),
	}

	totals := CategoryTotals(entries)
	if len(totals) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(totals))
	}
	if totals[0].Category != model.CategoryRepair || totals[0].Amount != 700 {
		t.Fatalf("first category: %+v", totals[0])
	}
	if totals[1].Category != model.CategoryFuel || totals[1].Amount != 250 {
		t.Fatalf("second category: %+v", totals[1])
	}
}

func TestTripsPerRouteCountsRevenueFromCompletedOnly(t *testing.T) {
	routeA := model.Route{ID: uuid.New(), Name: "North Express"}
	routeB := model.Route{ID: uuid.New(), Name: "Coast Line"}

	fare := 500.0
	trips := []model.Trip{
		{RouteID: &routeA.ID, Status: model.TripStatusCompleted, TotalFare: &fare},
		{RouteID: &routeA.ID, Status: model.TripStatusOnHighway, TotalFare: &fare},
		{RouteID: nil, Status: model.TripStatusCompleted, TotalFare: &fare},
	}

	result := TripsPerRoute(trips, []model.Route{routeA, routeB})
	if len(result) != 2 {
		t.Fatalf("expected 2 routes, got %d", len(result))
	}
	if result[0].RouteID != routeA.ID || result[0].Trips != 2 {
		t.Fatalf("first route: %+v", result[0])
	}
	if result[0].Revenue != 500 {
		t.Fatalf("expected revenue from completed trips only, got %f", result[0].Revenue)
	}
	if result[1].Trips != 0 {
		t.Fatalf("expected zero trips on unused route, got %d", result[1].Trips)
	}
}

func TestEnergyPerCar(t *testing.T) {
	carA := model.Car{ID: uuid.New(), PlateNumber: "01KZ001"}
	carB := model.Car{ID: uuid.New(), PlateNumber: "01KZ002"}

	logs := []model.EnergyLog{
		{CarID: carA.ID, Cost: 40},
		{CarID: carB.ID, Cost: 90},
		{CarID: carA.ID, Cost: 30},
	}

	result := EnergyPerCar(logs, []model.Car{carA, carB})
	if len(result) != 2 {
		t.Fatalf("expected 2 cars, got %d", len(result))
	}
	if result[0].CarID != carB.ID || result[0].Cost != 90 {
		t.Fatalf("first car: %+v", result[0])
	}
	if result[1].PlateNumber != "01KZ001" || result[1].Cost != 70 {
		t.Fatalf("second car: %+v", result[1])
	}
}
