package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EntryType string

const (
	EntryTypeIncome  EntryType = "income"
	EntryTypeExpense EntryType = "expense"
)

func (t EntryType) Valid() bool {
	return t == EntryTypeIncome || t == EntryTypeExpense
}

type ExpenseCategory string

const (
	CategoryFuel        ExpenseCategory = "fuel"
	CategoryCharging    ExpenseCategory = "charging"
	CategoryToll        ExpenseCategory = "toll"
	CategoryCommission  ExpenseCategory = "commission"
	CategoryRepair      ExpenseCategory = "repair"
	CategoryMaintenance ExpenseCategory = "maintenance"
	CategoryOther       ExpenseCategory = "other"
)

func (c ExpenseCategory) Valid() bool {
	switch c {
	case CategoryFuel, CategoryCharging, CategoryToll, CategoryCommission, CategoryRepair, CategoryMaintenance, CategoryOther:
		return true
	}
	return false
}

type LedgerEntry struct {
	ID          uuid.UUID        `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	EntryType   EntryType        `gorm:"type:varchar(16);not null" json:"entry_type"`
	Category    *ExpenseCategory `gorm:"type:expense_category" json:"category"`
	Amount      float64          `gorm:"not null" json:"amount"`
	Description string           `gorm:"type:text" json:"description"`
	CarID       *uuid.UUID       `gorm:"type:uuid" json:"car_id"`
	DriverID    *uuid.UUID       `gorm:"type:uuid" json:"driver_id"`
	TripID      *uuid.UUID       `gorm:"type:uuid" json:"trip_id"`
	CreatedAt   time.Time        `gorm:"autoCreateTime" json:"created_at"`
}

func (LedgerEntry) TableName() string {
	return "ledger"
}

func (l *LedgerEntry) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
