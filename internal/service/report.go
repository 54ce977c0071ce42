package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/arrazka/lifeboard/internal/models"
)

// ReportService exports financial data as spreadsheets
type ReportService struct {
	transactions *TransactionService
	log          *logrus.Logger
}

func NewReportService(transactions *TransactionService, log *logrus.Logger) *ReportService {
	return &ReportService{transactions: transactions, log: log}
}

// MonthlyTransactionsWorkbook builds an XLSX report for one calendar month
func (s *ReportService) MonthlyTransactionsWorkbook(ctx context.Context, userID int64, year int, month time.Month) (*excelize.File, error) {
	txs, err := s.transactions.ListByMonth(ctx, userID, year, month)
	if err != nil {
		return nil, err
	}

	f, err := BuildTransactionsWorkbook(txs, year, month)
	if err != nil {
		return nil, err
	}

	s.log.Infof("Built transaction report for user %d: %04d-%02d, %d rows", userID, year, month, len(txs))
	return f, nil
}

// BuildTransactionsWorkbook lays out a transaction list on one sheet with
// a summary block underneath
func BuildTransactionsWorkbook(txs []models.Transaction, year int, month time.Month) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := fmt.Sprintf("%04d-%02d", year, month)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	headers := []string{"Date", "Type", "Category", "Note", "Amount"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for row, t := range txs {
		values := []interface{}{
			t.OccurredAt.Format("2006-01-02"),
			t.Type,
			t.Category,
			t.Note,
			t.Amount.InexactFloat64(),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("failed to write row %d: %w", row+1, err)
			}
		}
	}

	summary := SummarizeTransactions(txs)
	base := len(txs) + 3
	rows := []struct {
		label string
		value float64
	}{
		{"Total income", summary.Income.InexactFloat64()},
		{"Total expense", summary.Expense.InexactFloat64()},
		{"Net", summary.Net.InexactFloat64()},
	}
	for i, r := range rows {
		labelCell, _ := excelize.CoordinatesToCellName(1, base+i)
		valueCell, _ := excelize.CoordinatesToCellName(5, base+i)
		if err := f.SetCellValue(sheet, labelCell, r.label); err != nil {
			return nil, fmt.Errorf("failed to write summary: %w", err)
		}
		if err := f.SetCellValue(sheet, valueCell, r.value); err != nil {
			return nil, fmt.Errorf("failed to write summary: %w", err)
		}
	}

	return f, nil
}
