package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VehicleLocation struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	TripID     uuid.UUID `gorm:"type:uuid;not null" json:"trip_id"`
	CarID      uuid.UUID `gorm:"type:uuid;not null" json:"car_id"`
	Latitude   float64   `gorm:"not null" json:"latitude"`
	Longitude  float64   `gorm:"not null" json:"longitude"`
	Heading    float64   `gorm:"not null;default:0" json:"heading"`
	Speed      float64   `gorm:"not null;default:0" json:"speed"`
	Accuracy   float64   `gorm:"not null;default:0" json:"accuracy"`
	RecordedAt time.Time `gorm:"not null;default:now()" json:"recorded_at"`
}

func (VehicleLocation) TableName() string {
	return "vehicle_locations"
}

func (l *VehicleLocation) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
