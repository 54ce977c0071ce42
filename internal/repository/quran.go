package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/arrazka/lifeboard/internal/models"
)

// QuranRepository provides database operations for reading sessions
type QuranRepository struct {
	db *sql.DB
}

func NewQuranRepository(db *sql.DB) *QuranRepository {
	return &QuranRepository{db: db}
}

// CreateSession appends a reading session
func (r *QuranRepository) CreateSession(ctx context.Context, s *models.QuranSession) error {
	query := `
		INSERT INTO quran_sessions (id, user_id, log_date, surah, ayah_from, ayah_to, pages, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, CURRENT_TIMESTAMP)
		RETURNING created_at`
	err := r.db.QueryRowContext(ctx, query,
		s.ID, s.UserID, s.LogDate, s.Surah, s.AyahFrom, s.AyahTo, s.Pages).
		Scan(&s.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create quran session: %w", err)
	}
	return nil
}

// ListSessions returns the most recent sessions
func (r *QuranRepository) ListSessions(ctx context.Context, userID int64, limit int) ([]models.QuranSession, error) {
	query := `
		SELECT id, user_id, log_date, surah, ayah_from, ayah_to, pages, created_at
		FROM quran_sessions
		WHERE user_id = $1
		ORDER BY log_date DESC, created_at DESC
		LIMIT $2`
	return r.listSessions(ctx, query, userID, limit)
}

// ListSessionsSince returns sessions on or after a date
func (r *QuranRepository) ListSessionsSince(ctx context.Context, userID int64, since time.Time) ([]models.QuranSession, error) {
	query := `
		SELECT id, user_id, log_date, surah, ayah_from, ayah_to, pages, created_at
		FROM quran_sessions
		WHERE user_id = $1 AND log_date >= $2
		ORDER BY log_date DESC, created_at DESC`
	return r.listSessions(ctx, query, userID, since)
}

// LastSession returns the newest session, nil when none exists
func (r *QuranRepository) LastSession(ctx context.Context, userID int64) (*models.QuranSession, error) {
	s := &models.QuranSession{}
	query := `
		SELECT id, user_id, log_date, surah, ayah_from, ayah_to, pages, created_at
		FROM quran_sessions
		WHERE user_id = $1
		ORDER BY log_date DESC, created_at DESC
		LIMIT 1`
	err := r.db.QueryRowContext(ctx, query, userID).
		Scan(&s.ID, &s.UserID, &s.LogDate, &s.Surah, &s.AyahFrom, &s.AyahTo, &s.Pages, &s.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last session: %w", err)
	}
	return s, nil
}

func (r *QuranRepository) listSessions(ctx context.Context, query string, args ...interface{}) ([]models.QuranSession, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list quran sessions: %w", err)
	}
	defer rows.Close()

	var sessions []models.QuranSession
	for rows.Next() {
		var s models.QuranSession
		if err := rows.Scan(&s.ID, &s.UserID, &s.LogDate, &s.Surah, &s.AyahFrom, &s.AyahTo, &s.Pages, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan quran session: %w", err)
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}
