package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleet-service/internal/model"
)

type RouteRepository struct {
	db *gorm.DB
}

func NewRouteRepository(db *gorm.DB) *RouteRepository {
	return &RouteRepository{db: db}
}

func (r *RouteRepository) List(ctx context.Context) ([]model.Route, error) {
	var routes []model.Route
	if err := r.db.WithContext(ctx).
		Order("name").
		Find(&routes).Error; err != nil {
		return nil, err
	}
	return routes, nil
}

func (r *RouteRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Route, error) {
	var route model.Route
	if err := r.db.WithContext(ctx).First(&route, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &route, nil
}

func (r *RouteRepository) Create(ctx context.Context, route *model.Route) error {
	return r.db.WithContext(ctx).Create(route).Error
}

func (r *RouteRepository) Update(ctx context.Context, route *model.Route) error {
	return r.db.WithContext(ctx).Save(route).Error
}

// Delete removes the route row only. Historical trips and preorders
// keep their reference until the database nulls it out (ON DELETE SET
// NULL); nothing cascades.
func (r *RouteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Route{}, "id = ?", id).Error
}
