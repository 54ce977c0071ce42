package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/arrazka/lifeboard/internal/models"
)

// TransactionRepository provides database operations for transactions
type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// CreateTransactionTx inserts a transaction inside an open SQL transaction,
// so the matching account balance update commits or rolls back with it
func (r *TransactionRepository) CreateTransactionTx(ctx context.Context, tx *sql.Tx, t *models.Transaction) error {
	query := `
		INSERT INTO transactions (id, user_id, account_id, amount, type, category, note, occurred_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, CURRENT_TIMESTAMP)
		RETURNING created_at`
	err := tx.QueryRowContext(ctx, query,
		t.ID, t.UserID, t.AccountID, t.Amount, t.Type, t.Category, t.Note, t.OccurredAt).
		Scan(&t.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// GetTransaction retrieves one transaction, scoped to its owner
func (r *TransactionRepository) GetTransaction(ctx context.Context, userID int64, id uuid.UUID) (*models.Transaction, error) {
	t := &models.Transaction{}
	query := `
		SELECT id, user_id, account_id, amount, type, category, note, occurred_at, created_at
		FROM transactions
		WHERE id = $1 AND user_id = $2`
	err := r.db.QueryRowContext(ctx, query, id, userID).
		Scan(&t.ID, &t.UserID, &t.AccountID, &t.Amount, &t.Type, &t.Category, &t.Note, &t.OccurredAt, &t.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("transaction not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return t, nil
}

// ListTransactionsByMonth returns a user's transactions within one calendar month
func (r *TransactionRepository) ListTransactionsByMonth(ctx context.Context, userID int64, year int, month time.Month) ([]models.Transaction, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	query := `
		SELECT id, user_id, account_id, amount, type, category, note, occurred_at, created_at
		FROM transactions
		WHERE user_id = $1 AND occurred_at >= $2 AND occurred_at < $3
		ORDER BY occurred_at DESC`
	return r.listTransactions(ctx, query, userID, from, to)
}

// ListTransactionsByAccount returns the most recent transactions of one account
func (r *TransactionRepository) ListTransactionsByAccount(ctx context.Context, userID int64, accountID uuid.UUID, limit int) ([]models.Transaction, error) {
	query := `
		SELECT id, user_id, account_id, amount, type, category, note, occurred_at, created_at
		FROM transactions
		WHERE user_id = $1 AND account_id = $2
		ORDER BY occurred_at DESC
		LIMIT $3`
	return r.listTransactions(ctx, query, userID, accountID, limit)
}

func (r *TransactionRepository) listTransactions(ctx context.Context, query string, args ...interface{}) ([]models.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var txs []models.Transaction
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.AccountID, &t.Amount, &t.Type, &t.Category, &t.Note, &t.OccurredAt, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txs = append(txs, t)
	}
	return txs, rows.Err()
}

// DeleteTransactionTx removes a transaction inside an open SQL transaction
func (r *TransactionRepository) DeleteTransactionTx(ctx context.Context, tx *sql.Tx, userID int64, id uuid.UUID) error {
	res, err := tx.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check transaction delete: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("transaction not found")
	}
	return nil
}
