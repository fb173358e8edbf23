package service

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fleet-service/internal/model"
)

// defaultSyncTables is the replica set copied when the caller names no
// tables. users is deliberately absent: credentials stay local.
var defaultSyncTables = []string{
	"cars", "drivers", "routes", "trips", "preorders",
	"ledger", "energy_logs", "maintenance_logs", "payment_methods",
}

// SyncService copies whole tables into an external database instance,
// upserting on primary key. Used as an ad-hoc replication path to a
// standby reporting instance.
type SyncService struct {
	source   *gorm.DB
	external *gorm.DB
}

func NewSyncService(source, external *gorm.DB) *SyncService {
	return &SyncService{source: source, external: external}
}

func DefaultSyncTables() []string {
	out := make([]string, len(defaultSyncTables))
	copy(out, defaultSyncTables)
	return out
}

// KnownSyncTable reports whether the table name is part of the
// replicable set. Arbitrary names never reach SQL.
func KnownSyncTable(name string) bool {
	for _, table := range defaultSyncTables {
		if table == name {
			return true
		}
	}
	return false
}

func (s *SyncService) Run(ctx context.Context, principal model.Principal, tables []string) (map[string]model.TableSyncResult, error) {
	if !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}
	if s.external == nil {
		return nil, ErrNotConfigured
	}
	if len(tables) == 0 {
		tables = DefaultSyncTables()
	}

	results := make(map[string]model.TableSyncResult, len(tables))
	for _, table := range tables {
		results[table] = s.syncTable(ctx, table)
	}
	return results, nil
}

func (s *SyncService) syncTable(ctx context.Context, table string) model.TableSyncResult {
	if !KnownSyncTable(table) {
		return model.TableSyncResult{Error: "unknown table"}
	}

	switch table {
	case "cars":
		return syncRows[model.Car](ctx, s.source, s.external)
	case "drivers":
		return syncRows[model.Driver](ctx, s.source, s.external)
	case "routes":
		return syncRows[model.Route](ctx, s.source, s.external)
	case "trips":
		return syncRows[model.Trip](ctx, s.source, s.external)
	case "preorders":
		return syncRows[model.Preorder](ctx, s.source, s.external)
	case "ledger":
		return syncRows[model.LedgerEntry](ctx, s.source, s.external)
	case "energy_logs":
		return syncRows[model.EnergyLog](ctx, s.source, s.external)
	case "maintenance_logs":
		return syncRows[model.MaintenanceLog](ctx, s.source, s.external)
	case "payment_methods":
		return syncRows[model.PaymentMethod](ctx, s.source, s.external)
	default:
		return model.TableSyncResult{Error: "unknown table"}
	}
}

func syncRows[T any](ctx context.Context, source, external *gorm.DB) model.TableSyncResult {
	var rows []T
	if err := source.WithContext(ctx).Find(&rows).Error; err != nil {
		return model.TableSyncResult{Error: err.Error()}
	}
	if len(rows) == 0 {
		return model.TableSyncResult{}
	}

	err := external.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&rows).Error
	if err != nil {
		return model.TableSyncResult{Error: err.Error()}
	}
	return model.TableSyncResult{Synced: len(rows)}
}
