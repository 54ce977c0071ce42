package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/arrazka/lifeboard/internal/models"
)

// PrayerRepository provides database operations for the prayer log
type PrayerRepository struct {
	db *sql.DB
}

func NewPrayerRepository(db *sql.DB) *PrayerRepository {
	return &PrayerRepository{db: db}
}

// UpsertLog writes the prayer marks for one date, replacing any existing row
func (r *PrayerRepository) UpsertLog(ctx context.Context, log *models.PrayerLog) error {
	query := `
		INSERT INTO prayer_logs (id, user_id, log_date, fajr, dhuhr, asr, maghrib, isha, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, CURRENT_TIMESTAMP)
		ON CONFLICT (user_id, log_date) DO UPDATE
		SET fajr = EXCLUDED.fajr, dhuhr = EXCLUDED.dhuhr, asr = EXCLUDED.asr,
		    maghrib = EXCLUDED.maghrib, isha = EXCLUDED.isha, updated_at = CURRENT_TIMESTAMP
		RETURNING id, updated_at`
	err := r.db.QueryRowContext(ctx, query,
		log.ID, log.UserID, log.LogDate, log.Fajr, log.Dhuhr, log.Asr, log.Maghrib, log.Isha).
		Scan(&log.ID, &log.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert prayer log: %w", err)
	}
	return nil
}

// GetLog retrieves the prayer log for one date, nil when none exists
func (r *PrayerRepository) GetLog(ctx context.Context, userID int64, date time.Time) (*models.PrayerLog, error) {
	log := &models.PrayerLog{}
	query := `
		SELECT id, user_id, log_date, fajr, dhuhr, asr, maghrib, isha, updated_at
		FROM prayer_logs
		WHERE user_id = $1 AND log_date = $2`
	err := r.db.QueryRowContext(ctx, query, userID, date).
		Scan(&log.ID, &log.UserID, &log.LogDate, &log.Fajr, &log.Dhuhr, &log.Asr, &log.Maghrib, &log.Isha, &log.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get prayer log: %w", err)
	}
	return log, nil
}

// ListLogs returns prayer logs within a date range, newest first
func (r *PrayerRepository) ListLogs(ctx context.Context, userID int64, from, to time.Time) ([]models.PrayerLog, error) {
	query := `
		SELECT id, user_id, log_date, fajr, dhuhr, asr, maghrib, isha, updated_at
		FROM prayer_logs
		WHERE user_id = $1 AND log_date >= $2 AND log_date <= $3
		ORDER BY log_date DESC`
	rows, err := r.db.QueryContext(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list prayer logs: %w", err)
	}
	defer rows.Close()

	var logs []models.PrayerLog
	for rows.Next() {
		var l models.PrayerLog
		if err := rows.Scan(&l.ID, &l.UserID, &l.LogDate, &l.Fajr, &l.Dhuhr, &l.Asr, &l.Maghrib, &l.Isha, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan prayer log: %w", err)
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}
