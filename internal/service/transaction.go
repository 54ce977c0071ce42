package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/arrazka/lifeboard/internal/models"
	"github.com/arrazka/lifeboard/internal/repository"
)

// TransactionService records income and expenses against accounts
type TransactionService struct {
	accounts     *repository.AccountRepository
	transactions *repository.TransactionRepository
	log          *logrus.Logger
}

func NewTransactionService(accounts *repository.AccountRepository, transactions *repository.TransactionRepository, log *logrus.Logger) *TransactionService {
	return &TransactionService{accounts: accounts, transactions: transactions, log: log}
}

// RecordTransaction inserts a transaction and adjusts the account balance
// atomically
func (s *TransactionService) RecordTransaction(ctx context.Context, userID int64, accountID uuid.UUID, amount decimal.Decimal, txType, category, note string, occurredAt time.Time) (*models.Transaction, error) {
	if amount.IsNegative() || amount.IsZero() {
		return nil, fmt.Errorf("amount must be positive")
	}
	if txType != models.TransactionIncome && txType != models.TransactionExpense {
		return nil, fmt.Errorf("invalid transaction type: %s", txType)
	}

	// Verify account belongs to user
	if _, err := s.accounts.GetAccount(ctx, userID, accountID); err != nil {
		return nil, err
	}

	transaction := &models.Transaction{
		ID:         uuid.New(),
		UserID:     userID,
		AccountID:  accountID,
		Amount:     amount,
		Type:       txType,
		Category:   category,
		Note:       note,
		OccurredAt: occurredAt,
	}

	delta := amount
	if txType == models.TransactionExpense {
		delta = amount.Neg()
	}

	tx, err := s.accounts.DB().BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.transactions.CreateTransactionTx(ctx, tx, transaction); err != nil {
		return nil, err
	}
	if err := s.accounts.UpdateBalanceTx(ctx, tx, accountID, delta); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.log.Infof("Recorded %s of %s for user %d on account %s", txType, amount, userID, accountID)
	return transaction, nil
}

// Transfer moves money between two of the user's accounts. Both legs and
// both balance adjustments commit in one SQL transaction.
func (s *TransactionService) Transfer(ctx context.Context, userID int64, fromID, toID uuid.UUID, amount decimal.Decimal, note string, occurredAt time.Time) ([]models.Transaction, error) {
	if amount.IsNegative() || amount.IsZero() {
		return nil, fmt.Errorf("amount must be positive")
	}
	if fromID == toID {
		return nil, fmt.Errorf("cannot transfer to the same account")
	}

	if _, err := s.accounts.GetAccount(ctx, userID, fromID); err != nil {
		return nil, err
	}
	if _, err := s.accounts.GetAccount(ctx, userID, toID); err != nil {
		return nil, err
	}

	legs := []models.Transaction{
		{
			ID:         uuid.New(),
			UserID:     userID,
			AccountID:  fromID,
			Amount:     amount,
			Type:       models.TransactionExpense,
			Category:   models.CategoryTransfer,
			Note:       note,
			OccurredAt: occurredAt,
		},
		{
			ID:         uuid.New(),
			UserID:     userID,
			AccountID:  toID,
			Amount:     amount,
			Type:       models.TransactionIncome,
			Category:   models.CategoryTransfer,
			Note:       note,
			OccurredAt: occurredAt,
		},
	}

	tx, err := s.accounts.DB().BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for i := range legs {
		if err := s.transactions.CreateTransactionTx(ctx, tx, &legs[i]); err != nil {
			return nil, err
		}
	}
	if err := s.accounts.UpdateBalanceTx(ctx, tx, fromID, amount.Neg()); err != nil {
		return nil, err
	}
	if err := s.accounts.UpdateBalanceTx(ctx, tx, toID, amount); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.log.Infof("Transferred %s for user %d: %s -> %s", amount, userID, fromID, toID)
	return legs, nil
}

// DeleteTransaction removes a transaction and reverses its balance effect
func (s *TransactionService) DeleteTransaction(ctx context.Context, userID int64, id uuid.UUID) error {
	transaction, err := s.transactions.GetTransaction(ctx, userID, id)
	if err != nil {
		return err
	}

	// Reverse the original balance adjustment
	delta := transaction.Amount
	if transaction.Type == models.TransactionIncome {
		delta = delta.Neg()
	}

	tx, err := s.accounts.DB().BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.transactions.DeleteTransactionTx(ctx, tx, userID, id); err != nil {
		return err
	}
	if err := s.accounts.UpdateBalanceTx(ctx, tx, transaction.AccountID, delta); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.log.Infof("Transaction %s deleted for user %d", id, userID)
	return nil
}

// ListByMonth returns the user's transactions for one calendar month
func (s *TransactionService) ListByMonth(ctx context.Context, userID int64, year int, month time.Month) ([]models.Transaction, error) {
	return s.transactions.ListTransactionsByMonth(ctx, userID, year, month)
}

// ListByAccount returns the most recent transactions of one account
func (s *TransactionService) ListByAccount(ctx context.Context, userID int64, accountID uuid.UUID, limit int) ([]models.Transaction, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.transactions.ListTransactionsByAccount(ctx, userID, accountID, limit)
}

// MonthlySummary computes income, expense and net for one month
func (s *TransactionService) MonthlySummary(ctx context.Context, userID int64, year int, month time.Month) (*models.MonthlySummary, error) {
	txs, err := s.transactions.ListTransactionsByMonth(ctx, userID, year, month)
	if err != nil {
		return nil, err
	}
	return SummarizeTransactions(txs), nil
}

// SummarizeTransactions folds a transaction list into monthly totals
func SummarizeTransactions(txs []models.Transaction) *models.MonthlySummary {
	summary := &models.MonthlySummary{
		Income:  decimal.Zero,
		Expense: decimal.Zero,
	}
	for _, t := range txs {
		if t.Category == models.CategoryTransfer {
			continue
		}
		switch t.Type {
		case models.TransactionIncome:
			summary.Income = summary.Income.Add(t.Amount)
		case models.TransactionExpense:
			summary.Expense = summary.Expense.Add(t.Amount)
		}
	}
	summary.Net = summary.Income.Sub(summary.Expense)
	return summary
}
