package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/arrazka/lifeboard/internal/models"
)

// InstallmentRepository provides database operations for BNPL plans and
// their schedules
type InstallmentRepository struct {
	db *sql.DB
}

func NewInstallmentRepository(db *sql.DB) *InstallmentRepository {
	return &InstallmentRepository{db: db}
}

// CreatePlan inserts a plan and its schedule rows in one transaction
func (r *InstallmentRepository) CreatePlan(ctx context.Context, plan *models.InstallmentPlan, schedule []models.Installment) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO installment_plans
			(id, user_id, merchant, item_name, total_amount, installment_amount,
			 installments_total, installments_paid, account_id, status, next_due_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING created_at, updated_at`
	err = tx.QueryRowContext(ctx, query,
		plan.ID, plan.UserID, plan.Merchant, plan.ItemName, plan.TotalAmount, plan.InstallmentAmount,
		plan.InstallmentsTotal, plan.InstallmentsPaid, plan.AccountID, plan.Status, plan.NextDueDate).
		Scan(&plan.CreatedAt, &plan.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create plan: %w", err)
	}

	for i := range schedule {
		ins := &schedule[i]
		_, err := tx.ExecContext(ctx, `
			INSERT INTO installments (id, plan_id, sequence, amount, due_date, paid, paid_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			ins.ID, ins.PlanID, ins.Sequence, ins.Amount, ins.DueDate, ins.Paid, ins.PaidAt)
		if err != nil {
			return fmt.Errorf("failed to create installment %d: %w", ins.Sequence, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit plan: %w", err)
	}
	return nil
}

// ListPlans returns all plans owned by a user
func (r *InstallmentRepository) ListPlans(ctx context.Context, userID int64) ([]models.InstallmentPlan, error) {
	query := `
		SELECT id, user_id, merchant, item_name, total_amount, installment_amount,
		       installments_total, installments_paid, account_id, status, next_due_date, created_at, updated_at
		FROM installment_plans
		WHERE user_id = $1
		ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	defer rows.Close()

	var plans []models.InstallmentPlan
	for rows.Next() {
		var p models.InstallmentPlan
		if err := rows.Scan(&p.ID, &p.UserID, &p.Merchant, &p.ItemName, &p.TotalAmount, &p.InstallmentAmount,
			&p.InstallmentsTotal, &p.InstallmentsPaid, &p.AccountID, &p.Status, &p.NextDueDate,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan plan: %w", err)
		}
		plans = append(plans, p)
	}
	return plans, rows.Err()
}

// GetPlan retrieves one plan, scoped to its owner
func (r *InstallmentRepository) GetPlan(ctx context.Context, userID int64, id uuid.UUID) (*models.InstallmentPlan, error) {
	p := &models.InstallmentPlan{}
	query := `
		SELECT id, user_id, merchant, item_name, total_amount, installment_amount,
		       installments_total, installments_paid, account_id, status, next_due_date, created_at, updated_at
		FROM installment_plans
		WHERE id = $1 AND user_id = $2`
	err := r.db.QueryRowContext(ctx, query, id, userID).
		Scan(&p.ID, &p.UserID, &p.Merchant, &p.ItemName, &p.TotalAmount, &p.InstallmentAmount,
			&p.InstallmentsTotal, &p.InstallmentsPaid, &p.AccountID, &p.Status, &p.NextDueDate,
			&p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("plan not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	return p, nil
}

// ListInstallments returns a plan's schedule ordered by sequence
func (r *InstallmentRepository) ListInstallments(ctx context.Context, planID uuid.UUID) ([]models.Installment, error) {
	query := `
		SELECT id, plan_id, sequence, amount, due_date, paid, paid_at
		FROM installments
		WHERE plan_id = $1
		ORDER BY sequence`
	rows, err := r.db.QueryContext(ctx, query, planID)
	if err != nil {
		return nil, fmt.Errorf("failed to list installments: %w", err)
	}
	defer rows.Close()

	var schedule []models.Installment
	for rows.Next() {
		var ins models.Installment
		if err := rows.Scan(&ins.ID, &ins.PlanID, &ins.Sequence, &ins.Amount, &ins.DueDate, &ins.Paid, &ins.PaidAt); err != nil {
			return nil, fmt.Errorf("failed to scan installment: %w", err)
		}
		schedule = append(schedule, ins)
	}
	return schedule, rows.Err()
}

// MarkInstallmentPaid flips one schedule row to paid
func (r *InstallmentRepository) MarkInstallmentPaid(ctx context.Context, id uuid.UUID, paidAt time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE installments SET paid = TRUE, paid_at = $1 WHERE id = $2 AND paid = FALSE`, paidAt, id)
	if err != nil {
		return fmt.Errorf("failed to mark installment paid: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check installment update: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("installment not found or already paid")
	}
	return nil
}

// UpdatePlanProgress persists the recomputed paid count, next due date and status
func (r *InstallmentRepository) UpdatePlanProgress(ctx context.Context, id uuid.UUID, paid int, nextDue *time.Time, status models.PlanStatus) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE installment_plans
		SET installments_paid = $1, next_due_date = $2, status = $3, updated_at = CURRENT_TIMESTAMP
		WHERE id = $4`,
		paid, nextDue, status, id)
	if err != nil {
		return fmt.Errorf("failed to update plan progress: %w", err)
	}
	return nil
}

// UpdatePlanStatus refreshes only the stored status column
func (r *InstallmentRepository) UpdatePlanStatus(ctx context.Context, id uuid.UUID, status models.PlanStatus) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE installment_plans SET status = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update plan status: %w", err)
	}
	return nil
}

// DeletePlan removes a plan; schedule rows cascade via foreign key
func (r *InstallmentRepository) DeletePlan(ctx context.Context, userID int64, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM installment_plans WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete plan: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check plan delete: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("plan not found")
	}
	return nil
}
