package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DriverStatus string

const (
	DriverStatusAvailable DriverStatus = "available"
	DriverStatusBusy      DriverStatus = "busy"
	DriverStatusOffDuty   DriverStatus = "off_duty"
)

func (s DriverStatus) Valid() bool {
	return s == DriverStatusAvailable || s == DriverStatusBusy || s == DriverStatusOffDuty
}

type Driver struct {
	ID               uuid.UUID    `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Name             string       `gorm:"type:varchar(255);not null" json:"name"`
	Phone            string       `gorm:"type:varchar(32)" json:"phone"`
	Email            string       `gorm:"type:varchar(255)" json:"email"`
	Status           DriverStatus `gorm:"type:varchar(32);not null;default:'available'" json:"status"`
	HoursDrivenToday float64      `gorm:"not null;default:0" json:"hours_driven_today"`
	LicenseUploaded  bool         `gorm:"not null;default:false" json:"license_uploaded"`
	PermitUploaded   bool         `gorm:"not null;default:false" json:"permit_uploaded"`
	CreatedAt        time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time    `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Driver) TableName() string {
	return "drivers"
}

func (d *Driver) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
