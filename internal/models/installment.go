package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PlanStatus is the lifecycle state of an installment plan
type PlanStatus string

const (
	PlanActive    PlanStatus = "active"
	PlanCompleted PlanStatus = "completed"
	PlanOverdue   PlanStatus = "overdue"
)

// InstallmentPlan represents a BNPL purchase split into fixed payments.
// InstallmentsPaid is a fallback counter; when detailed Installment rows
// exist for the plan they are the source of truth.
type InstallmentPlan struct {
	ID                uuid.UUID       `json:"id"`
	UserID            int64           `json:"user_id"`
	Merchant          string          `json:"merchant"`
	ItemName          string          `json:"item_name"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	InstallmentAmount decimal.Decimal `json:"installment_amount"`
	InstallmentsTotal int             `json:"installments_total"`
	InstallmentsPaid  int             `json:"installments_paid"`
	AccountID         *uuid.UUID      `json:"account_id,omitempty"`
	Status            PlanStatus      `json:"status"`
	NextDueDate       *time.Time      `json:"next_due_date,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// Installment is one scheduled payment within a plan. Sequence numbers are
// 1-based and contiguous within a plan.
type Installment struct {
	ID       uuid.UUID       `json:"id"`
	PlanID   uuid.UUID       `json:"plan_id"`
	Sequence int             `json:"sequence"`
	Amount   decimal.Decimal `json:"amount"`
	DueDate  time.Time       `json:"due_date"`
	Paid     bool            `json:"paid"`
	PaidAt   *time.Time      `json:"paid_at,omitempty"`
}
