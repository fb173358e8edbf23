package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleet-service/internal/model"
)

type CarRepository struct {
	db *gorm.DB
}

func NewCarRepository(db *gorm.DB) *CarRepository {
	return &CarRepository{db: db}
}

func (r *CarRepository) List(ctx context.Context) ([]model.Car, error) {
	var cars []model.Car
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&cars).Error; err != nil {
		return nil, err
	}
	return cars, nil
}

func (r *CarRepository) ListByStatus(ctx context.Context, status model.TripStatus) ([]model.Car, error) {
	var cars []model.Car
	if err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("plate_number").
		Find(&cars).Error; err != nil {
		return nil, err
	}
	return cars, nil
}

func (r *CarRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Car, error) {
	var car model.Car
	if err := r.db.WithContext(ctx).First(&car, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &car, nil
}

func (r *CarRepository) Create(ctx context.Context, car *model.Car) error {
	return r.db.WithContext(ctx).Create(car).Error
}

func (r *CarRepository) Update(ctx context.Context, car *model.Car) error {
	return r.db.WithContext(ctx).Save(car).Error
}

func (r *CarRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.TripStatus) error {
	return r.db.WithContext(ctx).
		Model(&model.Car{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *CarRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Car{}, "id = ?", id).Error
}
