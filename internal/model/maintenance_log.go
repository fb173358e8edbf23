package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MaintenanceLog struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	CarID            uuid.UUID `gorm:"type:uuid;not null" json:"car_id"`
	MaintenanceType  string    `gorm:"type:varchar(64);not null" json:"maintenance_type"`
	Cost             float64   `gorm:"not null;default:0" json:"cost"`
	Description      string    `gorm:"type:text" json:"description"`
	MileageAtService *float64  `json:"mileage_at_service"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`

	Car *Car `gorm:"foreignKey:CarID" json:"car,omitempty"`
}

func (MaintenanceLog) TableName() string {
	return "maintenance_logs"
}

func (m *MaintenanceLog) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
