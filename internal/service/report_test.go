package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/arrazka/lifeboard/internal/models"
)

func TestBuildTransactionsWorkbook(t *testing.T) {
	txs := []models.Transaction{
		{
			Type:       models.TransactionIncome,
			Category:   "salary",
			Note:       "monthly salary",
			Amount:     decimal.NewFromInt(5000000),
			OccurredAt: time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC),
		},
		{
			Type:       models.TransactionExpense,
			Category:   "groceries",
			Note:       "weekly run",
			Amount:     decimal.NewFromInt(450000),
			OccurredAt: time.Date(2026, time.March, 5, 18, 30, 0, 0, time.UTC),
		},
	}

	f, err := BuildTransactionsWorkbook(txs, 2026, time.March)
	if err != nil {
		t.Fatalf("failed to build workbook: %v", err)
	}
	defer f.Close()

	const sheet = "2026-03"
	if idx, _ := f.GetSheetIndex(sheet); idx < 0 {
		t.Fatalf("expected sheet %q to exist", sheet)
	}

	header, err := f.GetCellValue(sheet, "A1")
	if err != nil {
		t.Fatalf("failed to read header: %v", err)
	}
	if header != "Date" {
		t.Errorf("expected header Date, got %q", header)
	}

	date, _ := f.GetCellValue(sheet, "A2")
	if date != "2026-03-01" {
		t.Errorf("expected first row date 2026-03-01, got %q", date)
	}
	category, _ := f.GetCellValue(sheet, "C3")
	if category != "groceries" {
		t.Errorf("expected second row category groceries, got %q", category)
	}

	// summary block starts two rows below the last transaction
	label, _ := f.GetCellValue(sheet, "A5")
	if label != "Total income" {
		t.Errorf("expected summary label Total income, got %q", label)
	}
	net, _ := f.GetCellValue(sheet, "E7")
	if net != "4550000" {
		t.Errorf("expected net 4550000, got %q", net)
	}
}

func TestBuildTransactionsWorkbookEmptyMonth(t *testing.T) {
	f, err := BuildTransactionsWorkbook(nil, 2026, time.January)
	if err != nil {
		t.Fatalf("failed to build workbook: %v", err)
	}
	defer f.Close()

	label, _ := f.GetCellValue("2026-01", "A3")
	if label != "Total income" {
		t.Errorf("expected summary directly under header, got %q", label)
	}
}
