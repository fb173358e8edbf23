package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Route struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Name           string    `gorm:"type:varchar(255);not null" json:"name"`
	Origin         string    `gorm:"type:varchar(255);not null" json:"origin"`
	Destination    string    `gorm:"type:varchar(255);not null" json:"destination"`
	DistanceKm     float64   `gorm:"not null" json:"distance_km"`
	BasePrice      float64   `gorm:"not null" json:"base_price"`
	EstimatedTolls float64   `gorm:"not null;default:0" json:"estimated_tolls"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Route) TableName() string {
	return "routes"
}

func (r *Route) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
