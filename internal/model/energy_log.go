package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EnergyLogType string

const (
	EnergyLogCharging EnergyLogType = "charging"
	EnergyLogFueling  EnergyLogType = "fueling"
)

func (t EnergyLogType) Valid() bool {
	return t == EnergyLogCharging || t == EnergyLogFueling
}

// LedgerCategory maps a refill kind to the expense category written
// alongside it.
func (t EnergyLogType) LedgerCategory() ExpenseCategory {
	if t == EnergyLogCharging {
		return CategoryCharging
	}
	return CategoryFuel
}

type EnergyLog struct {
	ID           uuid.UUID     `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	CarID        uuid.UUID     `gorm:"type:uuid;not null" json:"car_id"`
	LogType      EnergyLogType `gorm:"type:varchar(16);not null" json:"log_type"`
	Location     string        `gorm:"type:varchar(255)" json:"location"`
	Amount       float64       `gorm:"not null" json:"amount"`
	Cost         float64       `gorm:"not null" json:"cost"`
	Kwh          *float64      `json:"kwh"`
	PricePerUnit *float64      `json:"price_per_unit"`
	CreatedAt    time.Time     `gorm:"autoCreateTime" json:"created_at"`

	Car *Car `gorm:"foreignKey:CarID" json:"car,omitempty"`
}

func (EnergyLog) TableName() string {
	return "energy_logs"
}

func (e *EnergyLog) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
