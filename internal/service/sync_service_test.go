package service

import (
	"context"
	"testing"

	"fleet-service/internal/model"
)

func TestKnownSyncTable(t *testing.T) {
	for _, table := range DefaultSyncTables() {
		if !KnownSyncTable(table) {
			t.Fatalf("expected %s to be replicable", table)
		}
	}
	if KnownSyncTable("users") {
		t.Fatalf("users must never be replicated")
	}
	if KnownSyncTable("pg_catalog.pg_tables") {
		t.Fatalf("arbitrary names must be rejected")
	}
}

func TestRunRejectsNonAdmin(t *testing.T) {
	svc := NewSyncService(nil, nil)
	principal := model.Principal{Role: model.AppRoleDriver}

	if _, err := svc.Run(context.Background(), principal, nil); err != ErrPermissionDenied {
		t.Fatalf("expected ErrPermissionDenied for a driver, got %v", err)
	}
}

func TestRunWithoutExternalMirror(t *testing.T) {
	svc := NewSyncService(nil, nil)
	principal := model.Principal{Role: model.AppRoleAdmin}

	if _, err := svc.Run(context.Background(), principal, nil); err != ErrNotConfigured {
		t.Fatalf("expected ErrNotConfigured without a mirror, got %v", err)
	}
}

func TestDefaultSyncTablesIsACopy(t *testing.T) {
	tables := DefaultSyncTables()
	tables[0] = "mutated"
	if DefaultSyncTables()[0] == "mutated" {
		t.Fatalf("callers must not be able to mutate the default set")
	}
}
