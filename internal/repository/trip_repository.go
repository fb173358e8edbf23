package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleet-service/internal/model"
)

// ErrTripCompleted is returned by Complete when another request closed
// the trip first.
var ErrTripCompleted = errors.New("trip already completed")

type TripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) *TripRepository {
	return &TripRepository{db: db}
}

type TripHistoryFilter struct {
	DateFrom *time.Time
	DateTo   *time.Time
	DriverID *uuid.UUID
	RouteID  *uuid.UUID
	Limit    int
	Offset   int
}

func (r *TripRepository) ListLive(ctx context.Context) ([]model.Trip, error) {
	var trips []model.Trip
	if err := r.db.WithContext(ctx).
		Where("status <> ?", model.TripStatusCompleted).
		Order("started_at DESC").
		Preload("Car").
		Preload("Driver").
		Preload("Route").
		Find(&trips).Error; err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *TripRepository) ListHistory(ctx context.Context, filter TripHistoryFilter) ([]model.Trip, error) {
	query := r.db.WithContext(ctx).
		Model(&model.Trip{}).
		Where("status = ?", model.TripStatusCompleted)

	if filter.DateFrom != nil {
		query = query.Where("completed_at >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("completed_at <= ?", *filter.DateTo)
	}
	if filter.DriverID != nil {
		query = query.Where("driver_id = ?", *filter.DriverID)
	}
	if filter.RouteID != nil {
		query = query.Where("route_id = ?", *filter.RouteID)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	} else {
		query = query.Limit(200)
	}

	var trips []model.Trip
	if err := query.
		Order("completed_at DESC").
		Preload("Car").
		Preload("Driver").
		Preload("Route").
		Find(&trips).Error; err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *TripRepository) ListAll(ctx context.Context) ([]model.Trip, error) {
	var trips []model.Trip
	if err := r.db.WithContext(ctx).Find(&trips).Error; err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *TripRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Trip, error) {
	var trip model.Trip
	if err := r.db.WithContext(ctx).
		Preload("Car").
		Preload("Driver").
		Preload("Route").
		First(&trip, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &trip, nil
}

// SetStatus mirrors a non-terminal status onto the trip and its car in
// one transaction.
func (r *TripRepository) SetStatus(ctx context.Context, trip *model.Trip, status model.TripStatus) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Trip{}).
			Where("id = ?", trip.ID).
			Update("status", status).Error; err != nil {
			return err
		}
		return tx.Model(&model.Car{}).
			Where("id = ?", trip.CarID).
			Update("status", status).Error
	})
}

// TripCompletion is the set of writes closing a trip applies, derived
// up front so the cascade can be inspected apart from its SQL.
type TripCompletion struct {
	TripID      uuid.UUID
	CompletedAt time.Time
	PreorderID  *uuid.UUID
	FareEntry   *model.LedgerEntry
	CarID       uuid.UUID
	DriverID    *uuid.UUID
}

// PlanTripCompletion derives the completion cascade: the trip closes,
// a linked preorder settles, a positive fare books exactly one income
// row, the car returns to idle and the driver to available.
func PlanTripCompletion(trip *model.Trip, completedAt time.Time) TripCompletion {
	plan := TripCompletion{
		TripID:      trip.ID,
		CompletedAt: completedAt,
		PreorderID:  trip.PreorderID,
		CarID:       trip.CarID,
		DriverID:    trip.DriverID,
	}
	if trip.TotalFare != nil && *trip.TotalFare > 0 {
		plan.FareEntry = &model.LedgerEntry{
			EntryType:   model.EntryTypeIncome,
			Amount:      *trip.TotalFare,
			Description: "Trip fare",
			CarID:       &trip.CarID,
			DriverID:    trip.DriverID,
			TripID:      &trip.ID,
		}
	}
	return plan
}

// Complete finishes a trip and applies the whole completion cascade
// atomically: completion timestamp, linked preorder, income ledger row,
// car back to idle, driver back to available. Either every write lands
// or none does. The status predicate on the first update makes the
// cascade run at most once per trip even under concurrent requests.
func (r *TripRepository) Complete(ctx context.Context, trip *model.Trip, completedAt time.Time) error {
	plan := PlanTripCompletion(trip, completedAt)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Trip{}).
			Where("id = ? AND status <> ?", plan.TripID, model.TripStatusCompleted).
			Updates(map[string]interface{}{
				"status":       model.TripStatusCompleted,
				"completed_at": plan.CompletedAt,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrTripCompleted
		}

		if plan.PreorderID != nil {
			if err := tx.Model(&model.Preorder{}).
				Where("id = ?", *plan.PreorderID).
				Update("status", model.PreorderStatusCompleted).Error; err != nil {
				return err
			}
		}

		if plan.FareEntry != nil {
			if err := tx.Create(plan.FareEntry).Error; err != nil {
				return err
			}
		}

		if err := tx.Model(&model.Car{}).
			Where("id = ?", plan.CarID).
			Update("status", model.TripStatusIdle).Error; err != nil {
			return err
		}

		if plan.DriverID != nil {
			if err := tx.Model(&model.Driver{}).
				Where("id = ?", *plan.DriverID).
				Update("status", model.DriverStatusAvailable).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// StartFromPreorder dispatches an assigned preorder: the new trip, the
// preorder, the car and the driver move together or not at all.
func (r *TripRepository) StartFromPreorder(ctx context.Context, preorder *model.Preorder, fare *float64) (*model.Trip, error) {
	trip := &model.Trip{
		CarID:      *preorder.AssignedCarID,
		DriverID:   preorder.AssignedDriverID,
		RouteID:    preorder.RouteID,
		PreorderID: &preorder.ID,
		Status:     model.TripStatusHeadingToPickup,
		StartedAt:  time.Now(),
		TotalFare:  fare,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(trip).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.Preorder{}).
			Where("id = ?", preorder.ID).
			Update("status", model.PreorderStatusInProgress).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.Car{}).
			Where("id = ?", *preorder.AssignedCarID).
			Update("status", model.TripStatusHeadingToPickup).Error; err != nil {
			return err
		}
		if preorder.AssignedDriverID != nil {
			if err := tx.Model(&model.Driver{}).
				Where("id = ?", *preorder.AssignedDriverID).
				Update("status", model.DriverStatusBusy).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return trip, nil
}
