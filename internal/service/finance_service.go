package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"fleet-service/internal/model"
	"fleet-service/internal/repository"
)

// FinanceService owns the ledger and the energy logs. Every refill
// writes its expense into the ledger atomically with the log row.
type FinanceService struct {
	ledgerRepo *repository.LedgerRepository
	energyRepo *repository.EnergyRepository
	carRepo    *repository.CarRepository
}

func NewFinanceService(
	ledgerRepo *repository.LedgerRepository,
	energyRepo *repository.EnergyRepository,
	carRepo *repository.CarRepository,
) *FinanceService {
	return &FinanceService{
		ledgerRepo: ledgerRepo,
		energyRepo: energyRepo,
		carRepo:    carRepo,
	}
}

type LedgerListOptions struct {
	EntryType *model.EntryType
	Category  *model.ExpenseCategory
	CarID     *uuid.UUID
	DateFrom  *time.Time
	DateTo    *time.Time
	Limit     int
	Offset    int
}

func (s *FinanceService) ListLedger(ctx context.Context, opts LedgerListOptions) ([]model.LedgerEntry, *model.LedgerSummary, error) {
	entries, err := s.ledgerRepo.List(ctx, repository.LedgerFilter{
		EntryType: opts.EntryType,
		Category:  opts.Category,
		CarID:     opts.CarID,
		DateFrom:  opts.DateFrom,
		DateTo:    opts.DateTo,
		Limit:     opts.Limit,
		Offset:    opts.Offset,
	})
	if err != nil {
		return nil, nil, err
	}
	summary := SummarizeLedger(entries)
	return entries, &summary, nil
}

type LedgerEntryInput struct {
	EntryType   model.EntryType
	Category    *model.ExpenseCategory
	Amount      float64
	Description string
	CarID       *uuid.UUID
	DriverID    *uuid.UUID
	TripID      *uuid.UUID
}

func (s *FinanceService) CreateLedgerEntry(ctx context.Context, principal model.Principal, input LedgerEntryInput) (*model.LedgerEntry, error) {
	if !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}
	if !input.EntryType.Valid() || input.Amount <= 0 {
		return nil, ErrInvalidInput
	}
	if input.Category != nil && !input.Category.Valid() {
		return nil, ErrInvalidInput
	}

	entry := &model.LedgerEntry{
		EntryType:   input.EntryType,
		Category:    input.Category,
		Amount:      input.Amount,
		Description: strings.TrimSpace(input.Description),
		CarID:       input.CarID,
		DriverID:    input.DriverID,
		TripID:      input.TripID,
	}

	if err := s.ledgerRepo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *FinanceService) DeleteLedgerEntry(ctx context.Context, principal model.Principal, id uuid.UUID) error {
	if !principal.IsAdmin() {
		return ErrPermissionDenied
	}
	return s.ledgerRepo.Delete(ctx, id)
}

func (s *FinanceService) ListEnergyLogs(ctx context.Context, carID *uuid.UUID) ([]model.EnergyLog, error) {
	return s.energyRepo.List(ctx, carID)
}

type EnergyLogInput struct {
	CarID        uuid.UUID
	LogType      model.EnergyLogType
	Location     string
	Amount       float64
	Cost         float64
	Kwh          *float64
	PricePerUnit *float64
}

func (s *FinanceService) CreateEnergyLog(ctx context.Context, principal model.Principal, input EnergyLogInput) (*model.EnergyLog, error) {
	if !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}
	if input.CarID == uuid.Nil || !input.LogType.Valid() || input.Amount <= 0 || input.Cost < 0 {
		return nil, ErrInvalidInput
	}

	car, err := s.carRepo.GetByID(ctx, input.CarID)
	if err != nil {
		return nil, notFoundOr(err)
	}
	// Charging entries only make sense for electric cars.
	if input.LogType == model.EnergyLogCharging && car.CarType != model.CarTypeElectric {
		return nil, ErrInvalidInput
	}

	log := &model.EnergyLog{
		CarID:        input.CarID,
		LogType:      input.LogType,
		Location:     strings.TrimSpace(input.Location),
		Amount:       input.Amount,
		Cost:         input.Cost,
		Kwh:          input.Kwh,
		PricePerUnit: input.PricePerUnit,
	}
	if log.LogType != model.EnergyLogCharging {
		log.Kwh = nil
	}

	if err := s.energyRepo.CreateWithExpense(ctx, log); err != nil {
		return nil, err
	}
	return log, nil
}

func (s *FinanceService) DeleteEnergyLog(ctx context.Context, principal model.Principal, id uuid.UUID) error {
	if !principal.IsAdmin() {
		return ErrPermissionDenied
	}
	return s.energyRepo.Delete(ctx, id)
}

// SummarizeLedger folds entries into income/expense totals.
func SummarizeLedger(entries []model.LedgerEntry) model.LedgerSummary {
	var summary model.LedgerSummary
	for _, entry := range entries {
		switch entry.EntryType {
		case model.EntryTypeIncome:
			summary.TotalIncome += entry.Amount
		case model.EntryTypeExpense:
			summary.TotalExpense += entry.Amount
		}
	}
	summary.Net = summary.TotalIncome - summary.TotalExpense
	return summary
}
