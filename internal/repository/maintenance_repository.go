package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleet-service/internal/model"
)

type MaintenanceRepository struct {
	db *gorm.DB
}

func NewMaintenanceRepository(db *gorm.DB) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

func (r *MaintenanceRepository) List(ctx context.Context, carID *uuid.UUID) ([]model.MaintenanceLog, error) {
	query := r.db.WithContext(ctx).Model(&model.MaintenanceLog{})
	if carID != nil {
		query = query.Where("car_id = ?", *carID)
	}

	var logs []model.MaintenanceLog
	if err := query.
		Order("created_at DESC").
		Preload("Car").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *MaintenanceRepository) Create(ctx context.Context, log *model.MaintenanceLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *MaintenanceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.MaintenanceLog{}, "id = ?", id).Error
}
