package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleet-service/internal/model"
)

type LedgerRepository struct {
	db *gorm.DB
}

func NewLedgerRepository(db *gorm.DB) *LedgerRepository {
	return &LedgerRepository{db: db}
}

type LedgerFilter struct {
	EntryType *model.EntryType
	Category  *model.ExpenseCategory
	CarID     *uuid.UUID
	DateFrom  *time.Time
	DateTo    *time.Time
	Limit     int
	Offset    int
}

func (r *LedgerRepository) List(ctx context.Context, filter LedgerFilter) ([]model.LedgerEntry, error) {
	query := r.db.WithContext(ctx).Model(&model.LedgerEntry{})

	if filter.EntryType != nil {
		query = query.Where("entry_type = ?", *filter.EntryType)
	}
	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}
	if filter.CarID != nil {
		query = query.Where("car_id = ?", *filter.CarID)
	}
	if filter.DateFrom != nil {
		query = query.Where("created_at >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("created_at <= ?", *filter.DateTo)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	} else {
		query = query.Limit(500)
	}

	var entries []model.LedgerEntry
	if err := query.
		Order("created_at DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *LedgerRepository) ListAll(ctx context.Context) ([]model.LedgerEntry, error) {
	var entries []model.LedgerEntry
	if err := r.db.WithContext(ctx).Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *LedgerRepository) Create(ctx context.Context, entry *model.LedgerEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *LedgerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.LedgerEntry{}, "id = ?", id).Error
}
