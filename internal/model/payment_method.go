package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentMethod struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Name          string    `gorm:"type:varchar(128);not null" json:"name"`
	AccountName   string    `gorm:"type:varchar(255)" json:"account_name"`
	AccountNumber string    `gorm:"type:varchar(128)" json:"account_number"`
	QRCodeURL     string    `gorm:"column:qr_code_url;type:text" json:"qr_code_url"`
	IsActive      bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (PaymentMethod) TableName() string {
	return "payment_methods"
}

func (p *PaymentMethod) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
