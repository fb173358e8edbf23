package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleet-service/internal/model"
)

type EnergyRepository struct {
	db *gorm.DB
}

func NewEnergyRepository(db *gorm.DB) *EnergyRepository {
	return &EnergyRepository{db: db}
}

func (r *EnergyRepository) List(ctx context.Context, carID *uuid.UUID) ([]model.EnergyLog, error) {
	query := r.db.WithContext(ctx).Model(&model.EnergyLog{})
	if carID != nil {
		query = query.Where("car_id = ?", *carID)
	}

	var logs []model.EnergyLog
	if err := query.
		Order("created_at DESC").
		Preload("Car").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *EnergyRepository) ListAll(ctx context.Context) ([]model.EnergyLog, error) {
	var logs []model.EnergyLog
	if err := r.db.WithContext(ctx).Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// CreateWithExpense records a refill and its mirrored ledger expense in
// one transaction.
func (r *EnergyRepository) CreateWithExpense(ctx context.Context, log *model.EnergyLog) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(log).Error; err != nil {
			return err
		}

		category := log.LogType.LedgerCategory()
		verb := "Fuel"
		if log.LogType == model.EnergyLogCharging {
			verb = "Charging"
		}
		entry := &model.LedgerEntry{
			EntryType:   model.EntryTypeExpense,
			Category:    &category,
			Amount:      log.Cost,
			Description: fmt.Sprintf("%s at %s", verb, log.Location),
			CarID:       &log.CarID,
		}
		return tx.Create(entry).Error
	})
}

func (r *EnergyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.EnergyLog{}, "id = ?", id).Error
}
