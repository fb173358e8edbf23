package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Trip struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	CarID       uuid.UUID  `gorm:"type:uuid;not null" json:"car_id"`
	DriverID    *uuid.UUID `gorm:"type:uuid" json:"driver_id"`
	RouteID     *uuid.UUID `gorm:"type:uuid" json:"route_id"`
	PreorderID  *uuid.UUID `gorm:"type:uuid" json:"preorder_id"`
	Status      TripStatus `gorm:"type:trip_status;not null;default:'idle'" json:"status"`
	StartedAt   time.Time  `gorm:"not null;default:now()" json:"started_at"`
	CompletedAt *time.Time `json:"completed_at"`
	TotalFare   *float64   `json:"total_fare"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`

	Car    *Car    `gorm:"foreignKey:CarID" json:"car,omitempty"`
	Driver *Driver `gorm:"foreignKey:DriverID" json:"driver,omitempty"`
	Route  *Route  `gorm:"foreignKey:RouteID" json:"route,omitempty"`
}

func (Trip) TableName() string {
	return "trips"
}

func (t *Trip) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
