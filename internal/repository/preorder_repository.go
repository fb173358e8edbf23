package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleet-service/internal/model"
)

type PreorderRepository struct {
	db *gorm.DB
}

func NewPreorderRepository(db *gorm.DB) *PreorderRepository {
	return &PreorderRepository{db: db}
}

type PreorderFilter struct {
	Statuses      []model.PreorderStatus
	ScheduledDate string
	Limit         int
	Offset        int
}

func (r *PreorderRepository) List(ctx context.Context, filter PreorderFilter) ([]model.Preorder, error) {
	query := r.db.WithContext(ctx).Model(&model.Preorder{})

	if len(filter.Statuses) > 0 {
		query = query.Where("status IN ?", filter.Statuses)
	}
	if filter.ScheduledDate != "" {
		query = query.Where("scheduled_date = ?", filter.ScheduledDate)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	} else {
		query = query.Limit(200)
	}

	var preorders []model.Preorder
	if err := query.
		Order("scheduled_date, scheduled_time").
		Preload("Route").
		Preload("AssignedCar").
		Preload("AssignedDriver").
		Find(&preorders).Error; err != nil {
		return nil, err
	}
	return preorders, nil
}

func (r *PreorderRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Preorder, error) {
	var preorder model.Preorder
	if err := r.db.WithContext(ctx).
		Preload("Route").
		Preload("AssignedCar").
		Preload("AssignedDriver").
		First(&preorder, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &preorder, nil
}

func (r *PreorderRepository) Create(ctx context.Context, preorder *model.Preorder) error {
	return r.db.WithContext(ctx).Create(preorder).Error
}

func (r *PreorderRepository) Update(ctx context.Context, preorder *model.Preorder) error {
	return r.db.WithContext(ctx).Save(preorder).Error
}

func (r *PreorderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.PreorderStatus) error {
	return r.db.WithContext(ctx).
		Model(&model.Preorder{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *PreorderRepository) Assign(ctx context.Context, id, driverID, carID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&model.Preorder{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"assigned_driver_id": driverID,
			"assigned_car_id":    carID,
			"status":             model.PreorderStatusAssigned,
		}).Error
}

func (r *PreorderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Preorder{}, "id = ?", id).Error
}
