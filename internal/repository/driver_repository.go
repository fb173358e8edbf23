package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleet-service/internal/model"
)

type DriverRepository struct {
	db *gorm.DB
}

func NewDriverRepository(db *gorm.DB) *DriverRepository {
	return &DriverRepository{db: db}
}

func (r *DriverRepository) List(ctx context.Context) ([]model.Driver, error) {
	var drivers []model.Driver
	if err := r.db.WithContext(ctx).
		Order("name").
		Find(&drivers).Error; err != nil {
		return nil, err
	}
	return drivers, nil
}

func (r *DriverRepository) ListAvailable(ctx context.Context) ([]model.Driver, error) {
	var drivers []model.Driver
	if err := r.db.WithContext(ctx).
		Where("status = ?", model.DriverStatusAvailable).
		Order("name").
		Find(&drivers).Error; err != nil {
		return nil, err
	}
	return drivers, nil
}

func (r *DriverRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Driver, error) {
	var driver model.Driver
	if err := r.db.WithContext(ctx).First(&driver, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &driver, nil
}

func (r *DriverRepository) Create(ctx context.Context, driver *model.Driver) error {
	return r.db.WithContext(ctx).Create(driver).Error
}

func (r *DriverRepository) Update(ctx context.Context, driver *model.Driver) error {
	return r.db.WithContext(ctx).Save(driver).Error
}

func (r *DriverRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.DriverStatus) error {
	return r.db.WithContext(ctx).
		Model(&model.Driver{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *DriverRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Driver{}, "id = ?", id).Error
}
