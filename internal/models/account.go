package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account types
const (
	AccountCash    = "cash"
	AccountBank    = "bank"
	AccountEWallet = "ewallet"
)

// Account represents a money account (cash, bank, e-wallet)
type Account struct {
	ID        uuid.UUID       `json:"id"`
	UserID    int64           `json:"user_id"`
	Name      string          `json:"name"`
	Type      string          `json:"type"`
	Currency  string          `json:"currency"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
