package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PreorderStatus string

const (
	PreorderStatusPending    PreorderStatus = "pending"
	PreorderStatusAssigned   PreorderStatus = "assigned"
	PreorderStatusInProgress PreorderStatus = "in_progress"
	PreorderStatusCompleted  PreorderStatus = "completed"
	PreorderStatusCancelled  PreorderStatus = "cancelled"
)

func (s PreorderStatus) Valid() bool {
	switch s {
	case PreorderStatusPending, PreorderStatusAssigned, PreorderStatusInProgress, PreorderStatusCompleted, PreorderStatusCancelled:
		return true
	}
	return false
}

type Preorder struct {
	ID               uuid.UUID      `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	CustomerName     string         `gorm:"type:varchar(255);not null" json:"customer_name"`
	CustomerPhone    string         `gorm:"type:varchar(64)" json:"customer_phone"`
	CustomerAddress  string         `gorm:"type:text" json:"customer_address"`
	RouteID          *uuid.UUID     `gorm:"type:uuid" json:"route_id"`
	AssignedCarID    *uuid.UUID     `gorm:"type:uuid" json:"assigned_car_id"`
	AssignedDriverID *uuid.UUID     `gorm:"type:uuid" json:"assigned_driver_id"`
	ScheduledDate    string         `gorm:"type:date;not null" json:"scheduled_date"`
	ScheduledTime    string         `gorm:"type:varchar(16);not null" json:"scheduled_time"`
	Status           PreorderStatus `gorm:"type:varchar(32);not null;default:'pending'" json:"status"`
	Notes            string         `gorm:"type:text" json:"notes"`
	PaymentProofURL  string         `gorm:"type:text" json:"payment_proof_url"`
	CreatedAt        time.Time      `gorm:"autoCreateTime" json:"created_at"`

	Route          *Route  `gorm:"foreignKey:RouteID" json:"route,omitempty"`
	AssignedCar    *Car    `gorm:"foreignKey:AssignedCarID" json:"assigned_car,omitempty"`
	AssignedDriver *Driver `gorm:"foreignKey:AssignedDriverID" json:"assigned_driver,omitempty"`
}

func (Preorder) TableName() string {
	return "preorders"
}

func (p *Preorder) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
