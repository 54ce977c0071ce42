package service

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/arrazka/lifeboard/internal/models"
)

func TestSummarizeTransactions(t *testing.T) {
	txs := []models.Transaction{
		{Type: models.TransactionIncome, Amount: decimal.NewFromInt(5000000)},
		{Type: models.TransactionExpense, Amount: decimal.NewFromInt(1250000)},
		{Type: models.TransactionExpense, Amount: decimal.NewFromInt(750000)},
		{Type: models.TransactionIncome, Amount: decimal.NewFromInt(300000)},
	}

	summary := SummarizeTransactions(txs)

	if !summary.Income.Equal(decimal.NewFromInt(5300000)) {
		t.Errorf("expected income 5300000, got %s", summary.Income)
	}
	if !summary.Expense.Equal(decimal.NewFromInt(2000000)) {
		t.Errorf("expected expense 2000000, got %s", summary.Expense)
	}
	if !summary.Net.Equal(decimal.NewFromInt(3300000)) {
		t.Errorf("expected net 3300000, got %s", summary.Net)
	}
}

func TestSummarizeTransactionsEmpty(t *testing.T) {
	summary := SummarizeTransactions(nil)

	if !summary.Income.IsZero() || !summary.Expense.IsZero() || !summary.Net.IsZero() {
		t.Errorf("expected all-zero summary, got income=%s expense=%s net=%s",
			summary.Income, summary.Expense, summary.Net)
	}
}

func TestSummarizeTransactionsIgnoresTransferLegs(t *testing.T) {
	txs := []models.Transaction{
		{Type: models.TransactionIncome, Amount: decimal.NewFromInt(1000)},
		{Type: models.TransactionExpense, Amount: decimal.NewFromInt(500), Category: models.CategoryTransfer},
		{Type: models.TransactionIncome, Amount: decimal.NewFromInt(500), Category: models.CategoryTransfer},
	}

	summary := SummarizeTransactions(txs)

	if !summary.Income.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("expected income 1000, got %s", summary.Income)
	}
	if !summary.Expense.IsZero() {
		t.Errorf("expected expense 0, got %s", summary.Expense)
	}
}

func TestSummarizeTransactionsExpensesExceedIncome(t *testing.T) {
	txs := []models.Transaction{
		{Type: models.TransactionIncome, Amount: decimal.NewFromInt(100)},
		{Type: models.TransactionExpense, Amount: decimal.NewFromInt(250)},
	}

	summary := SummarizeTransactions(txs)

	if !summary.Net.Equal(decimal.NewFromInt(-150)) {
		t.Errorf("expected net -150, got %s", summary.Net)
	}
}
