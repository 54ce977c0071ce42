package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/arrazka/lifeboard/internal/models"
	"github.com/arrazka/lifeboard/internal/repository"
)

// PrayerService tracks the five daily prayers
type PrayerService struct {
	prayers *repository.PrayerRepository
	log     *logrus.Logger
}

func NewPrayerService(prayers *repository.PrayerRepository, log *logrus.Logger) *PrayerService {
	return &PrayerService{prayers: prayers, log: log}
}

// PrayerStats summarizes a date range of prayer logs
type PrayerStats struct {
	From              time.Time `json:"from"`
	To                time.Time `json:"to"`
	DaysLogged        int       `json:"days_logged"`
	PrayersCompleted  int       `json:"prayers_completed"`
	CompletionPercent float64   `json:"completion_percent"`
	CurrentStreak     int       `json:"current_streak"` // consecutive full days ending today or yesterday
}

// UpsertLog writes the prayer marks for one date
func (s *PrayerService) UpsertLog(ctx context.Context, userID int64, date time.Time, fajr, dhuhr, asr, maghrib, isha bool) (*models.PrayerLog, error) {
	log := &models.PrayerLog{
		ID:      uuid.New(),
		UserID:  userID,
		LogDate: truncateToDay(date),
		Fajr:    fajr,
		Dhuhr:   dhuhr,
		Asr:     asr,
		Maghrib: maghrib,
		Isha:    isha,
	}
	if err := s.prayers.UpsertLog(ctx, log); err != nil {
		return nil, err
	}
	s.log.Debugf("Prayer log upserted for user %d on %s (%d/5)", userID, log.LogDate.Format("2006-01-02"), log.CompletedCount())
	return log, nil
}

// GetLog returns the log for one date, or an empty log when none exists
func (s *PrayerService) GetLog(ctx context.Context, userID int64, date time.Time) (*models.PrayerLog, error) {
	log, err := s.prayers.GetLog(ctx, userID, truncateToDay(date))
	if err != nil {
		return nil, err
	}
	if log == nil {
		return &models.PrayerLog{UserID: userID, LogDate: truncateToDay(date)}, nil
	}
	return log, nil
}

// ListRange returns logs between two dates inclusive
func (s *PrayerService) ListRange(ctx context.Context, userID int64, from, to time.Time) ([]models.PrayerLog, error) {
	from, to = truncateToDay(from), truncateToDay(to)
	if to.Before(from) {
		return nil, fmt.Errorf("invalid range: to before from")
	}
	return s.prayers.ListLogs(ctx, userID, from, to)
}

// Stats computes completion figures over a range ending today
func (s *PrayerService) Stats(ctx context.Context, userID int64, from, today time.Time) (*PrayerStats, error) {
	logs, err := s.ListRange(ctx, userID, from, today)
	if err != nil {
		return nil, err
	}

	stats := &PrayerStats{From: truncateToDay(from), To: truncateToDay(today)}
	completed := 0
	byDate := make(map[string]*models.PrayerLog, len(logs))
	for i := range logs {
		completed += logs[i].CompletedCount()
		byDate[logs[i].LogDate.Format("2006-01-02")] = &logs[i]
	}
	stats.DaysLogged = len(logs)
	stats.PrayersCompleted = completed

	totalDays := int(stats.To.Sub(stats.From).Hours()/24) + 1
	if totalDays > 0 {
		pct := float64(completed) / float64(totalDays*5) * 100
		stats.CompletionPercent = math.Round(pct*10) / 10
	}

	// streak of consecutive fully-logged days; a not-yet-complete today
	// does not break it
	day := truncateToDay(today)
	if log, ok := byDate[day.Format("2006-01-02")]; ok && log.Complete() {
		stats.CurrentStreak++
	}
	for {
		day = day.AddDate(0, 0, -1)
		log, ok := byDate[day.Format("2006-01-02")]
		if !ok || !log.Complete() {
			break
		}
		stats.CurrentStreak++
	}

	return stats, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
