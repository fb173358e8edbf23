package service

import (
	"context"
	"sort"

	"fleet-service/internal/model"
	"fleet-service/internal/repository"
)

// AnalyticsService computes the dashboard KPIs and the report charts
// as in-memory reductions over fetched rows, which keeps the math
// independent of SQL dialect and directly testable.
type AnalyticsService struct {
	carRepo      *repository.CarRepository
	driverRepo   *repository.DriverRepository
	tripRepo     *repository.TripRepository
	preorderRepo *repository.PreorderRepository
	ledgerRepo   *repository.LedgerRepository
	energyRepo   *repository.EnergyRepository
	routeRepo    *repository.RouteRepository
}

func NewAnalyticsService(
	carRepo *repository.CarRepository,
	driverRepo *repository.DriverRepository,
	tripRepo *repository.TripRepository,
	preorderRepo *repository.PreorderRepository,
	ledgerRepo *repository.LedgerRepository,
	energyRepo *repository.EnergyRepository,
	routeRepo *repository.RouteRepository,
) *AnalyticsService {
	return &AnalyticsService{
		carRepo:      carRepo,
		driverRepo:   driverRepo,
		tripRepo:     tripRepo,
		preorderRepo: preorderRepo,
		ledgerRepo:   ledgerRepo,
		energyRepo:   energyRepo,
		routeRepo:    routeRepo,
	}
}

func (s *AnalyticsService) Dashboard(ctx context.Context) (*model.DashboardSummary, error) {
	cars, err := s.carRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	drivers, err := s.driverRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	trips, err := s.tripRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := s.preorderRepo.List(ctx, repository.PreorderFilter{
		Statuses: []model.PreorderStatus{model.PreorderStatusPending},
	})
	if err != nil {
		return nil, err
	}
	entries, err := s.ledgerRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	summary := BuildDashboard(cars, drivers, trips, entries)
	summary.PendingPreorders = len(pending)
	return &summary, nil
}

func (s *AnalyticsService) Report(ctx context.Context) (*model.AnalyticsReport, error) {
	entries, err := s.ledgerRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	trips, err := s.tripRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	routes, err := s.routeRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	logs, err := s.energyRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	cars, err := s.carRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	report := &model.AnalyticsReport{
		Monthly:       MonthlyTotals(entries),
		ByCategory:    CategoryTotals(entries),
		TripsPerRoute: TripsPerRoute(trips, routes),
		EnergyPerCar:  EnergyPerCar(logs, cars),
	}
	return report, nil
}

func BuildDashboard(cars []model.Car, drivers []model.Driver, trips []model.Trip, entries []model.LedgerEntry) model.DashboardSummary {
	summary := model.DashboardSummary{
		TotalCars:    len(cars),
		CarsByStatus: make(map[model.TripStatus]int),
		TotalDrivers: len(drivers),
	}

	for _, car := range cars {
		summary.CarsByStatus[car.Status]++
	}
	for _, driver := range drivers {
		if driver.Status == model.DriverStatusAvailable {
			summary.AvailableDrivers++
		}
	}
	for _, trip := range trips {
		if trip.Status != model.TripStatusCompleted && trip.Status != model.TripStatusIdle {
			summary.ActiveTrips++
		}
	}
	for _, entry := range entries {
		if entry.EntryType == model.EntryTypeIncome {
			summary.TotalRevenue += entry.Amount
		}
		if entry.Category != nil && (*entry.Category == model.CategoryFuel || *entry.Category == model.CategoryCharging) {
			summary.EnergyCosts += entry.Amount
		}
	}
	return summary
}

func MonthlyTotals(entries []model.LedgerEntry) []model.MonthlyTotal {
	byMonth := make(map[string]*model.MonthlyTotal)
	for _, entry := range entries {
		month := entry.CreatedAt.Format("2006-01")
		total, ok := byMonth[month]
		if !ok {
			total = &model.MonthlyTotal{Month: month}
			byMonth[month] = total
		}
		switch entry.EntryType {
		case model.EntryTypeIncome:
			total.Income += entry.Amount
		case model.EntryTypeExpense:
			total.Expense += entry.Amount
		}
	}

	months := make([]model.MonthlyTotal, 0, len(byMonth))
	for _, total := range byMonth {
		months = append(months, *total)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Month < months[j].Month })
	return months
}

func CategoryTotals(entries []model.LedgerEntry) []model.CategoryTotal {
	byCategory := make(map[model.ExpenseCategory]float64)
	for _, entry := range entries {
		if entry.EntryType != model.EntryTypeExpense || entry.Category == nil {
			continue
		}
		byCategory[*entry.Category] += entry.Amount
	}

	totals := make([]model.CategoryTotal, 0, len(byCategory))
	for category, amount := range byCategory {
		totals = append(totals, model.CategoryTotal{Category: category, Amount: amount})
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].Amount > totals[j].Amount })
	return totals
}

func TripsPerRoute(trips []model.Trip, routes []model.Route) []model.RouteTripCount {
	counts := make(map[string]*model.RouteTripCount)
	for _, route := range routes {
		counts[route.ID.String()] = &model.RouteTripCount{RouteID: route.ID, Name: route.Name}
	}
	for _, trip := range trips {
		if trip.RouteID == nil {
			continue
		}
		count, ok := counts[trip.RouteID.String()]
		if !ok {
			continue
		}
		count.Trips++
		if trip.TotalFare != nil && trip.Status == model.TripStatusCompleted {
			count.Revenue += *trip.TotalFare
		}
	}

	result := make([]model.RouteTripCount, 0, len(counts))
	for _, count := range counts {
		result = append(result, *count)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Trips > result[j].Trips })
	return result
}

func EnergyPerCar(logs []model.EnergyLog, cars []model.Car) []model.CarEnergyCost {
	plates := make(map[string]string, len(cars))
	for _, car := range cars {
		plates[car.ID.String()] = car.PlateNumber
	}

	byCar := make(map[string]*model.CarEnergyCost)
	for _, log := range logs {
		key := log.CarID.String()
		cost, ok := byCar[key]
		if !ok {
			cost = &model.CarEnergyCost{CarID: log.CarID, PlateNumber: plates[key]}
			byCar[key] = cost
		}
		cost.Cost += log.Cost
	}

	result := make([]model.CarEnergyCost, 0, len(byCar))
	for _, cost := range byCar {
		result = append(result, *cost)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Cost > result[j].Cost })
	return result
}
