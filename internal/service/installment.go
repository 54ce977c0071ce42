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

// InstallmentService manages BNPL plans and their schedules
type InstallmentService struct {
	plans        *repository.InstallmentRepository
	accounts     *repository.AccountRepository
	transactions *TransactionService
	log          *logrus.Logger
}

func NewInstallmentService(plans *repository.InstallmentRepository, accounts *repository.AccountRepository, transactions *TransactionService, log *logrus.Logger) *InstallmentService {
	return &InstallmentService{plans: plans, accounts: accounts, transactions: transactions, log: log}
}

// CreatePlanInput is the payload for opening a new plan
type CreatePlanInput struct {
	Merchant          string          `json:"merchant"`
	ItemName          string          `json:"item_name"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	InstallmentAmount decimal.Decimal `json:"installment_amount"`
	InstallmentsTotal int             `json:"installments_total"`
	AccountID         *uuid.UUID      `json:"account_id,omitempty"`
	FirstDueDate      *time.Time      `json:"first_due_date,omitempty"`
	GenerateSchedule  bool            `json:"generate_schedule"`
}

// PlanOverview is a plan together with its derived figures
type PlanOverview struct {
	Plan             models.InstallmentPlan `json:"plan"`
	InstallmentsPaid int                    `json:"installments_paid"`
	Remaining        decimal.Decimal        `json:"remaining"`
	RemainingDisplay string                 `json:"remaining_display"`
	ProgressPercent  int                    `json:"progress_percent"`
	Due              finance.DueState       `json:"due"`
	DueLabel         string                 `json:"due_label"`
	DueSoon          bool                   `json:"due_soon"`
}

// PlanDetail adds the schedule rows to an overview
type PlanDetail struct {
	PlanOverview
	Schedule []models.Installment `json:"schedule,omitempty"`
}

// CreatePlan opens a new plan, optionally generating its detailed monthly
// schedule starting at the first due date
func (s *InstallmentService) CreatePlan(ctx context.Context, userID int64, in CreatePlanInput) (*models.InstallmentPlan, error) {
	if in.Merchant == "" || in.ItemName == "" {
		return nil, fmt.Errorf("merchant and item name are required")
	}
	if in.InstallmentsTotal < 1 {
		return nil, fmt.Errorf("installments_total must be at least 1")
	}
	if !in.TotalAmount.IsPositive() || !in.InstallmentAmount.IsPositive() {
		return nil, fmt.Errorf("amounts must be positive")
	}
	if in.GenerateSchedule && in.FirstDueDate == nil {
		return nil, fmt.Errorf("first_due_date is required to generate a schedule")
	}

	// Verify linked account belongs to user
	if in.AccountID != nil {
		if _, err := s.accounts.GetAccount(ctx, userID, *in.AccountID); err != nil {
			return nil, err
		}
	}

	plan := &models.InstallmentPlan{
		ID:                uuid.New(),
		UserID:            userID,
		Merchant:          in.Merchant,
		ItemName:          in.ItemName,
		TotalAmount:       in.TotalAmount,
		InstallmentAmount: in.InstallmentAmount,
		InstallmentsTotal: in.InstallmentsTotal,
		InstallmentsPaid:  0,
		AccountID:         in.AccountID,
		Status:            models.PlanActive,
		NextDueDate:       in.FirstDueDate,
	}

	var schedule []models.Installment
	if in.GenerateSchedule {
		schedule = buildSchedule(plan.ID, in.InstallmentAmount, in.InstallmentsTotal, *in.FirstDueDate)
	}

	if err := s.plans.CreatePlan(ctx, plan, schedule); err != nil {
		return nil, err
	}

	s.log.Infof("Plan created for user %d: %s at %s, %d installments", userID, plan.ItemName, plan.Merchant, plan.InstallmentsTotal)
	return plan, nil
}

// buildSchedule lays out N monthly installments from the first due date,
// sequence numbers contiguous from 1
func buildSchedule(planID uuid.UUID, amount decimal.Decimal, total int, firstDue time.Time) []models.Installment {
	schedule := make([]models.Installment, total)
	for i := 0; i < total; i++ {
		schedule[i] = models.Installment{
			ID:       uuid.New(),
			PlanID:   planID,
			Sequence: i + 1,
			Amount:   amount,
			DueDate:  firstDue.AddDate(0, i, 0),
		}
	}
	return schedule
}

// ListPlans returns the user's plans with derived figures
func (s *InstallmentService) ListPlans(ctx context.Context, userID int64, currency string, today time.Time) ([]PlanOverview, error) {
	plans, err := s.plans.ListPlans(ctx, userID)
	if err != nil {
		return nil, err
	}

	overviews := make([]PlanOverview, 0, len(plans))
	for _, plan := range plans {
		schedule, err := s.plans.ListInstallments(ctx, plan.ID)
		if err != nil {
			return nil, err
		}
		overviews = append(overviews, buildOverview(plan, schedule, currency, today))
	}
	return overviews, nil
}

// GetPlan returns one plan with its schedule and derived figures
func (s *InstallmentService) GetPlan(ctx context.Context, userID int64, planID uuid.UUID, currency string, today time.Time) (*PlanDetail, error) {
	plan, err := s.plans.GetPlan(ctx, userID, planID)
	if err != nil {
		return nil, err
	}
	schedule, err := s.plans.ListInstallments(ctx, plan.ID)
	if err != nil {
		return nil, err
	}
	return &PlanDetail{
		PlanOverview: buildOverview(*plan, schedule, currency, today),
		Schedule:     schedule,
	}, nil
}

// buildOverview computes the read-only projection of a plan. The stored
// status column is ignored; status is always derived from the figures.
func buildOverview(plan models.InstallmentPlan, schedule []models.Installment, currency string, today time.Time) PlanOverview {
	paid := finance.PaidCount(plan, schedule)
	remaining := finance.RemainingBalance(plan, schedule)
	due := finance.ClassifyDue(today, plan.NextDueDate)
	plan.Status = finance.DerivePlanStatus(paid, plan.InstallmentsTotal, plan.NextDueDate, today)

	dueSoon := false
	if plan.NextDueDate != nil && plan.Status != models.PlanCompleted {
		dueSoon = finance.IsDueSoon(finance.DaysUntil(today, *plan.NextDueDate))
	}

	return PlanOverview{
		Plan:             plan,
		InstallmentsPaid: paid,
		Remaining:        remaining,
		RemainingDisplay: finance.FormatAmount(remaining, currency),
		ProgressPercent:  finance.ProgressPercent(plan, schedule),
		Due:              due,
		DueLabel:         due.String(),
		DueSoon:          dueSoon,
	}
}

// PayNext marks the next unpaid installment as paid, recomputes the plan's
// next due date and status, and optionally records a matching expense on
// the linked account
func (s *InstallmentService) PayNext(ctx context.Context, userID int64, planID uuid.UUID, recordExpense bool, currency string, today time.Time) (*PlanDetail, error) {
	plan, err := s.plans.GetPlan(ctx, userID, planID)
	if err != nil {
		return nil, err
	}
	schedule, err := s.plans.ListInstallments(ctx, plan.ID)
	if err != nil {
		return nil, err
	}

	var paidAmount decimal.Decimal
	var nextDue *time.Time

	if len(schedule) > 0 {
		next := nextUnpaid(schedule)
		if next == nil {
			return nil, fmt.Errorf("plan is already fully paid")
		}
		if err := s.plans.MarkInstallmentPaid(ctx, next.ID, today); err != nil {
			return nil, err
		}
		next.Paid = true
		paidAt := today
		next.PaidAt = &paidAt
		paidAmount = next.Amount

		if after := nextUnpaid(schedule); after != nil {
			nextDue = &after.DueDate
		}
	} else {
		if plan.InstallmentsPaid >= plan.InstallmentsTotal {
			return nil, fmt.Errorf("plan is already fully paid")
		}
		plan.InstallmentsPaid++
		paidAmount = plan.InstallmentAmount
		if plan.InstallmentsPaid < plan.InstallmentsTotal && plan.NextDueDate != nil {
			d := plan.NextDueDate.AddDate(0, 1, 0)
			nextDue = &d
		}
	}

	paid := finance.PaidCount(*plan, schedule)
	status := finance.DerivePlanStatus(paid, plan.InstallmentsTotal, nextDue, today)
	if err := s.plans.UpdatePlanProgress(ctx, plan.ID, paid, nextDue, status); err != nil {
		return nil, err
	}
	plan.InstallmentsPaid = paid
	plan.NextDueDate = nextDue
	plan.Status = status

	if recordExpense && plan.AccountID != nil {
		note := fmt.Sprintf("Installment %d/%d for %s", paid, plan.InstallmentsTotal, plan.ItemName)
		_, err := s.transactions.RecordTransaction(ctx, userID, *plan.AccountID, paidAmount,
			models.TransactionExpense, "installment", note, today)
		if err != nil {
			// the installment itself is already paid; surface the failure
			return nil, fmt.Errorf("installment paid but expense not recorded: %w", err)
		}
	}

	s.log.Infof("Installment paid for user %d: plan %s now %d/%d", userID, plan.ID, paid, plan.InstallmentsTotal)

	return &PlanDetail{
		PlanOverview: buildOverview(*plan, schedule, currency, today),
		Schedule:     schedule,
	}, nil
}

func nextUnpaid(schedule []models.Installment) *models.Installment {
	for i := range schedule {
		if !schedule[i].Paid {
			return &schedule[i]
		}
	}
	return nil
}

// DeletePlan removes a plan and its schedule
func (s *InstallmentService) DeletePlan(ctx context.Context, userID int64, planID uuid.UUID) error {
	if err := s.plans.DeletePlan(ctx, userID, planID); err != nil {
		return err
	}
	s.log.Infof("Plan %s deleted for user %d", planID, userID)
	return nil
}
