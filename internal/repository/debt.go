package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/arrazka/lifeboard/internal/models"
)

// DebtRepository provides database operations for debts
type DebtRepository struct {
	db *sql.DB
}

func NewDebtRepository(db *sql.DB) *DebtRepository {
	return &DebtRepository{db: db}
}

// CreateDebt creates a new debt record
func (r *DebtRepository) CreateDebt(ctx context.Context, debt *models.Debt) error {
	query := `
		INSERT INTO debts
			(id, user_id, name, total_amount, current_balance, interest_rate,
			 minimum_payment, due_day, category, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query,
		debt.ID, debt.UserID, debt.Name, debt.TotalAmount, debt.CurrentBalance,
		debt.InterestRate, debt.MinimumPayment, debt.DueDay, debt.Category).
		Scan(&debt.CreatedAt, &debt.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create debt: %w", err)
	}
	return nil
}

// ListDebts returns all debts owned by a user
func (r *DebtRepository) ListDebts(ctx context.Context, userID int64) ([]models.Debt, error) {
	query := `
		SELECT id, user_id, name, total_amount, current_balance, interest_rate,
		       minimum_payment, due_day, category, created_at, updated_at
		FROM debts
		WHERE user_id = $1
		ORDER BY due_day, name`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list debts: %w", err)
	}
	defer rows.Close()

	var debts []models.Debt
	for rows.Next() {
		var d models.Debt
		if err := rows.Scan(&d.ID, &d.UserID, &d.Name, &d.TotalAmount, &d.CurrentBalance,
			&d.InterestRate, &d.MinimumPayment, &d.DueDay, &d.Category, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan debt: %w", err)
		}
		debts = append(debts, d)
	}
	return debts, rows.Err()
}

// GetDebt retrieves one debt, scoped to its owner
func (r *DebtRepository) GetDebt(ctx context.Context, userID int64, id uuid.UUID) (*models.Debt, error) {
	d := &models.Debt{}
	query := `
		SELECT id, user_id, name, total_amount, current_balance, interest_rate,
		       minimum_payment, due_day, category, created_at, updated_at
		FROM debts
		WHERE id = $1 AND user_id = $2`
	err := r.db.QueryRowContext(ctx, query, id, userID).
		Scan(&d.ID, &d.UserID, &d.Name, &d.TotalAmount, &d.CurrentBalance,
			&d.InterestRate, &d.MinimumPayment, &d.DueDay, &d.Category, &d.CreatedAt, &d.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("debt not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get debt: %w", err)
	}
	return d, nil
}

// UpdateDebtBalance sets the outstanding balance to a new value
func (r *DebtRepository) UpdateDebtBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE debts SET current_balance = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`, balance, id)
	if err != nil {
		return fmt.Errorf("failed to update debt balance: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check debt update: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("debt not found")
	}
	return nil
}

// DeleteDebt removes a debt owned by the user
func (r *DebtRepository) DeleteDebt(ctx context.Context, userID int64, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM debts WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete debt: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check debt delete: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("debt not found")
	}
	return nil
}
