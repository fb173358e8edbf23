package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleet-service/internal/model"
)

type PaymentMethodRepository struct {
	db *gorm.DB
}

func NewPaymentMethodRepository(db *gorm.DB) *PaymentMethodRepository {
	return &PaymentMethodRepository{db: db}
}

func (r *PaymentMethodRepository) List(ctx context.Context, activeOnly bool) ([]model.PaymentMethod, error) {
	query := r.db.WithContext(ctx).Model(&model.PaymentMethod{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var methods []model.PaymentMethod
	if err := query.
		Order("created_at DESC").
		Find(&methods).Error; err != nil {
		return nil, err
	}
	return methods, nil
}

func (r *PaymentMethodRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.PaymentMethod, error) {
	var method model.PaymentMethod
	if err := r.db.WithContext(ctx).First(&method, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &method, nil
}

func (r *PaymentMethodRepository) Create(ctx context.Context, method *model.PaymentMethod) error {
	return r.db.WithContext(ctx).Create(method).Error
}

func (r *PaymentMethodRepository) Update(ctx context.Context, method *model.PaymentMethod) error {
	return r.db.WithContext(ctx).Save(method).Error
}

func (r *PaymentMethodRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.PaymentMethod{}, "id = ?", id).Error
}
