package model

import (
	"time"

	"github.com/google/uuid"
)

type CarBrief struct {
	ID          uuid.UUID `json:"id"`
	PlateNumber string    `json:"plate_number"`
	Model       string    `json:"model"`
	CarType     CarType   `json:"car_type"`
}

type DriverBrief struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Phone string    `json:"phone"`
}

type RouteBrief struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	BasePrice   float64   `json:"base_price"`
}

type TripRecord struct {
	Trip   Trip         `json:"trip"`
	Car    *CarBrief    `json:"car"`
	Driver *DriverBrief `json:"driver"`
	Route  *RouteBrief  `json:"route"`
}

type DashboardSummary struct {
	TotalCars        int     `json:"total_cars"`
	CarsByStatus     map[TripStatus]int `json:"cars_by_status"`
	TotalDrivers     int     `json:"total_drivers"`
	AvailableDrivers int     `json:"available_drivers"`
	ActiveTrips      int     `json:"active_trips"`
	PendingPreorders int     `json:"pending_preorders"`
	TotalRevenue     float64 `json:"total_revenue"`
	EnergyCosts      float64 `json:"energy_costs"`
}

type MonthlyTotal struct {
	Month   string  `json:"month"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

type CategoryTotal struct {
	Category ExpenseCategory `json:"category"`
	Amount   float64         `json:"amount"`
}

type RouteTripCount struct {
	RouteID uuid.UUID `json:"route_id"`
	Name    string    `json:"name"`
	Trips   int       `json:"trips"`
	Revenue float64   `json:"revenue"`
}

type CarEnergyCost struct {
	CarID       uuid.UUID `json:"car_id"`
	PlateNumber string    `json:"plate_number"`
	Cost        float64   `json:"cost"`
}

type AnalyticsReport struct {
	Monthly       []MonthlyTotal   `json:"monthly"`
	ByCategory    []CategoryTotal  `json:"by_category"`
	TripsPerRoute []RouteTripCount `json:"trips_per_route"`
	EnergyPerCar  []CarEnergyCost  `json:"energy_per_car"`
}

type LedgerSummary struct {
	TotalIncome  float64 `json:"total_income"`
	TotalExpense float64 `json:"total_expense"`
	Net          float64 `json:"net"`
}

type TableSyncResult struct {
	Synced int    `json:"synced"`
	Error  string `json:"error,omitempty"`
}

type LocationEvent struct {
	TripID     uuid.UUID `json:"trip_id"`
	CarID      uuid.UUID `json:"car_id"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Heading    float64   `json:"heading"`
	Speed      float64   `json:"speed"`
	RecordedAt time.Time `json:"recorded_at"`
}
