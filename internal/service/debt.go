package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/arrazka/lifeboard/internal/finance"
	"github.com/arrazka/lifeboard/internal/models"
	"github.com/arrazka/lifeboard/internal/repository"
)

// upcomingWindowDays is the dashboard's look-ahead for debt payments
const upcomingWindowDays = 15

// DebtService manages debt records and their aggregates
type DebtService struct {
	debts        *repository.DebtRepository
	transactions *TransactionService
	log          *logrus.Logger
}

func NewDebtService(debts *repository.DebtRepository, transactions *TransactionService, log *logrus.Logger) *DebtService {
	return &DebtService{debts: debts, transactions: transactions, log: log}
}

// CreateDebtInput is the payload for registering a debt
type CreateDebtInput struct {
	Name           string          `json:"name"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
	InterestRate   float64         `json:"interest_rate"`
	MinimumPayment decimal.Decimal `json:"minimum_payment"`
	DueDay         int             `json:"due_day"`
	Category       string          `json:"category"`
}

// DebtSummary is the aggregate view shown on the dashboard
type DebtSummary struct {
	TotalDebt       decimal.Decimal           `json:"total_debt"`
	TotalDisplay    string                    `json:"total_display"`
	PercentagePaid  float64                   `json:"percentage_paid"`
	Upcoming        []finance.UpcomingPayment `json:"upcoming"`
	TotalUpcoming   decimal.Decimal           `json:"total_upcoming"`
	UpcomingDisplay string                    `json:"upcoming_display"`
}

// CreateDebt registers a new debt record
func (s *DebtService) CreateDebt(ctx context.Context, userID int64, in CreateDebtInput) (*models.Debt, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("debt name is required")
	}
	if in.DueDay < 1 || in.DueDay > 31 {
		return nil, fmt.Errorf("due_day must be between 1 and 31")
	}
	if in.TotalAmount.IsNegative() || in.CurrentBalance.IsNegative() {
		return nil, fmt.Errorf("amounts must not be negative")
	}
	if in.Category == "" {
		in.Category = models.DebtLoan
	}

	debt := &models.Debt{
		ID:             uuid.New(),
		UserID:         userID,
		Name:           in.Name,
		TotalAmount:    in.TotalAmount,
		CurrentBalance: in.CurrentBalance,
		InterestRate:   in.InterestRate,
		MinimumPayment: in.MinimumPayment,
		DueDay:         in.DueDay,
		Category:       in.Category,
	}

	if err := s.debts.CreateDebt(ctx, debt); err != nil {
		return nil, err
	}

	s.log.Infof("Debt created for user %d: %s, due day %d", userID, debt.Name, debt.DueDay)
	return debt, nil
}

// ListDebts returns the user's debts
func (s *DebtService) ListDebts(ctx context.Context, userID int64) ([]models.Debt, error) {
	return s.debts.ListDebts(ctx, userID)
}

// RecordPayment decrements a debt's balance, floored at zero, and
// optionally records a matching expense on an account
func (s *DebtService) RecordPayment(ctx context.Context, userID int64, debtID uuid.UUID, amount decimal.Decimal, accountID *uuid.UUID, today time.Time) (*models.Debt, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("payment amount must be positive")
	}

	debt, err := s.debts.GetDebt(ctx, userID, debtID)
	if err != nil {
		return nil, err
	}

	balance := debt.CurrentBalance.Sub(amount)
	if balance.IsNegative() {
		balance = decimal.Zero
	}
	if err := s.debts.UpdateDebtBalance(ctx, debt.ID, balance); err != nil {
		return nil, err
	}
	debt.CurrentBalance = balance

	if accountID != nil {
		note := fmt.Sprintf("Payment on %s", debt.Name)
		_, err := s.transactions.RecordTransaction(ctx, userID, *accountID, amount,
			models.TransactionExpense, "debt_payment", note, today)
		if err != nil {
			return nil, fmt.Errorf("balance updated but expense not recorded: %w", err)
		}
	}

	s.log.Infof("Payment of %s recorded on debt %s for user %d", amount, debt.ID, userID)
	return debt, nil
}

// DeleteDebt removes a debt owned by the user
func (s *DebtService) DeleteDebt(ctx context.Context, userID int64, debtID uuid.UUID) error {
	if err := s.debts.DeleteDebt(ctx, userID, debtID); err != nil {
		return err
	}
	s.log.Infof("Debt %s deleted for user %d", debtID, userID)
	return nil
}

// Summary aggregates the user's debts for the dashboard
func (s *DebtService) Summary(ctx context.Context, userID int64, currency string, today time.Time) (*DebtSummary, error) {
	debts, err := s.debts.ListDebts(ctx, userID)
	if err != nil {
		return nil, err
	}

	upcoming := finance.UpcomingPayments(debts, today, upcomingWindowDays)
	total := finance.TotalDebt(debts)
	totalUpcoming := finance.TotalUpcoming(upcoming)

	return &DebtSummary{
		TotalDebt:       total,
		TotalDisplay:    finance.FormatAmount(total, currency),
		PercentagePaid:  finance.PercentagePaid(debts),
		Upcoming:        upcoming,
		TotalUpcoming:   totalUpcoming,
		UpcomingDisplay: finance.FormatAmount(totalUpcoming, currency),
	}, nil
}
