package service

import (
	"testing"
	"time"

	"fleet-service/internal/model"
)

func TestSummarizeLedger(t *testing.T) {
	now := time.Now()
	entries := []model.LedgerEntry{
		incomeEntry(1200, now),
		incomeEntry(800, now),
		expenseEntry(model.CategoryFuel, 350, now),
		expenseEntry(model.CategoryCommission, 150, now),
	}

	summary := SummarizeLedger(entries)
	if summary.TotalIncome != 2000 {
		t.Fatalf("total income: %f", summary.TotalIncome)
	}
	if summary.TotalExpense != 500 {
		t.Fatalf("total expense: %f", summary.TotalExpense)
	}
	if summary.Net != 1500 {
		t.Fatalf("net: %f", summary.Net)
	}
}

func TestSummarizeLedgerEmpty(t *testing.T) {
	summary := SummarizeLedger(nil)
	if summary.TotalIncome != 0 || summary.TotalExpense != 0 || summary.Net != 0 {
		t.Fatalf("expected zero summary, got %+v", summary)
	}
}
