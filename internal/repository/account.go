package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/arrazka/lifeboard/internal/models"
)

// AccountRepository provides database operations for money accounts
type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// DB exposes the underlying handle for cross-repository transactions
func (r *AccountRepository) DB() *sql.DB {
	return r.db
}

// CreateAccount creates a new account
func (r *AccountRepository) CreateAccount(ctx context.Context, account *models.Account) error {
	query := `
		INSERT INTO accounts (id, user_id, name, type, currency, balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query,
		account.ID, account.UserID, account.Name, account.Type, account.Currency, account.Balance).
		Scan(&account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// ListAccounts returns all accounts owned by a user
func (r *AccountRepository) ListAccounts(ctx context.Context, userID int64) ([]models.Account, error) {
	query := `
		SELECT id, user_id, name, type, currency, balance, created_at, updated_at
		FROM accounts
		WHERE user_id = $1
		ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []models.Account
	for rows.Next() {
		var a models.Account
		if err := rows.Scan(&a.ID, &a.UserID, &a.Name, &a.Type, &a.Currency, &a.Balance, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

// GetAccount retrieves one account, scoped to its owner
func (r *AccountRepository) GetAccount(ctx context.Context, userID int64, id uuid.UUID) (*models.Account, error) {
	account := &models.Account{}
	query := `
		SELECT id, user_id, name, type, currency, balance, created_at, updated_at
		FROM accounts
		WHERE id = $1 AND user_id = $2`
	err := r.db.QueryRowContext(ctx, query, id, userID).
		Scan(&account.ID, &account.UserID, &account.Name, &account.Type, &account.Currency,
			&account.Balance, &account.CreatedAt, &account.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("account not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}

// UpdateBalanceTx adjusts an account balance by delta inside an open transaction
func (r *AccountRepository) UpdateBalanceTx(ctx context.Context, tx *sql.Tx, id uuid.UUID, delta decimal.Decimal) error {
	query := `
		UPDATE accounts
		SET balance = balance + $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2`
	res, err := tx.ExecContext(ctx, query, delta, id)
	if err != nil {
		return fmt.Errorf("failed to update balance: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check balance update: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("account not found")
	}
	return nil
}

// DeleteAccount removes an account owned by the user
func (r *AccountRepository) DeleteAccount(ctx context.Context, userID int64, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check account delete: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("account not found")
	}
	return nil
}
