package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction types
const (
	TransactionIncome  = "income"
	TransactionExpense = "expense"
)

// CategoryTransfer marks the two legs of an account-to-account transfer.
// Transfer legs move money between own accounts and stay out of the
// monthly income/expense totals.
const CategoryTransfer = "transfer"

// Transaction represents a single income or expense entry
type Transaction struct {
	ID         uuid.UUID       `json:"id"`
	UserID     int64           `json:"user_id"`
	AccountID  uuid.UUID       `json:"account_id"`
	Amount     decimal.Decimal `json:"amount"`
	Type       string          `json:"type"`
	Category   string          `json:"category"`
	Note       string          `json:"note"`
	OccurredAt time.Time       `json:"occurred_at"`
	CreatedAt  time.Time       `json:"created_at"`
}

// MonthlySummary represents income and expense totals for one month
type MonthlySummary struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
}
