package repository

import (
	"context"

	"gorm.io/gorm"

	"fleet-service/internal/model"
)

type LocationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

func (r *LocationRepository) Create(ctx context.Context, loc *model.VehicleLocation) error {
	return r.db.WithContext(ctx).Create(loc).Error
}

// LatestPerActiveTrip returns the newest point for every trip that has
// not completed yet; the live map seeds its markers from this.
func (r *LocationRepository) LatestPerActiveTrip(ctx context.Context) ([]model.VehicleLocation, error) {
	var locations []model.VehicleLocation
	err := r.db.WithContext(ctx).
		Raw(`SELECT DISTINCT ON (vl.trip_id) vl.*
			FROM vehicle_locations vl
			JOIN trips t ON t.id = vl.trip_id
			WHERE t.status <> ?
			ORDER BY vl.trip_id, vl.recorded_at DESC`, model.TripStatusCompleted).
		Scan(&locations).Error
	if err != nil {
		return nil, err
	}
	return locations, nil
}
