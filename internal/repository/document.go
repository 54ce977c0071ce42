package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/arrazka/lifeboard/internal/models"
)

// DocumentRepository provides database operations for vault metadata
type DocumentRepository struct {
	db *sql.DB
}

func NewDocumentRepository(db *sql.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// CreateDocument stores the metadata row for an uploaded object
func (r *DocumentRepository) CreateDocument(ctx context.Context, d *models.Document) error {
	query := `
		INSERT INTO documents (id, user_id, file_name, object_key, content_type, size_bytes, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6, CURRENT_TIMESTAMP)
		RETURNING uploaded_at`
	err := r.db.QueryRowContext(ctx, query,
		d.ID, d.UserID, d.FileName, d.ObjectKey, d.ContentType, d.SizeBytes).
		Scan(&d.UploadedAt)
	if err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}
	return nil
}

// ListDocuments returns a user's documents, newest first
func (r *DocumentRepository) ListDocuments(ctx context.Context, userID int64) ([]models.Document, error) {
	query := `
		SELECT id, user_id, file_name, object_key, content_type, size_bytes, uploaded_at
		FROM documents
		WHERE user_id = $1
		ORDER BY uploaded_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	var docs []models.Document
	for rows.Next() {
		var d models.Document
		if err := rows.Scan(&d.ID, &d.UserID, &d.FileName, &d.ObjectKey, &d.ContentType, &d.SizeBytes, &d.UploadedAt); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

// GetDocument retrieves one document, scoped to its owner
func (r *DocumentRepository) GetDocument(ctx context.Context, userID int64, id uuid.UUID) (*models.Document, error) {
	d := &models.Document{}
	query := `
		SELECT id, user_id, file_name, object_key, content_type, size_bytes, uploaded_at
		FROM documents
		WHERE id = $1 AND user_id = $2`
	err := r.db.QueryRowContext(ctx, query, id, userID).
		Scan(&d.ID, &d.UserID, &d.FileName, &d.ObjectKey, &d.ContentType, &d.SizeBytes, &d.UploadedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("document not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return d, nil
}

// DeleteDocument removes the metadata row
func (r *DocumentRepository) DeleteDocument(ctx context.Context, userID int64, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM documents WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check document delete: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("document not found")
	}
	return nil
}
