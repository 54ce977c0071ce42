package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Debt categories
const (
	DebtCreditCard = "credit_card"
	DebtLoan       = "loan"
	DebtBNPL       = "bnpl"
	DebtIOU        = "iou" // informal debt to a friend or family member
)

// Debt represents an outstanding obligation with a monthly due day
type Debt struct {
	ID             uuid.UUID       `json:"id"`
	UserID         int64           `json:"user_id"`
	Name           string          `json:"name"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
	InterestRate   float64         `json:"interest_rate"`
	MinimumPayment decimal.Decimal `json:"minimum_payment"`
	DueDay         int             `json:"due_day"` // day of month, 1-31
	Category       string          `json:"category"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
