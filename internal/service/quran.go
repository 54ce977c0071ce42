package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/arrazka/lifeboard/internal/models"
	"github.com/arrazka/lifeboard/internal/repository"
)

// QuranService tracks reading sessions
type QuranService struct {
	sessions *repository.QuranRepository
	log      *logrus.Logger
}

func NewQuranService(sessions *repository.QuranRepository, log *logrus.Logger) *QuranService {
	return &QuranService{sessions: sessions, log: log}
}

// QuranProgress summarizes reading activity
type QuranProgress struct {
	LastSession   *models.QuranSession `json:"last_session,omitempty"`
	PagesThisWeek int                  `json:"pages_this_week"`
	SessionsWeek  int                  `json:"sessions_this_week"`
}

// LogSession appends a reading session
func (s *QuranService) LogSession(ctx context.Context, userID int64, date time.Time, surah, ayahFrom, ayahTo, pages int) (*models.QuranSession, error) {
	if surah < 1 || surah > 114 {
		return nil, fmt.Errorf("surah must be between 1 and 114")
	}
	if ayahFrom < 1 || ayahTo < ayahFrom {
		return nil, fmt.Errorf("invalid ayah range")
	}
	if pages < 0 {
		return nil, fmt.Errorf("pages must not be negative")
	}

	session := &models.QuranSession{
		ID:       uuid.New(),
		UserID:   userID,
		LogDate:  truncateToDay(date),
		Surah:    surah,
		AyahFrom: ayahFrom,
		AyahTo:   ayahTo,
		Pages:    pages,
	}
	if err := s.sessions.CreateSession(ctx, session); err != nil {
		return nil, err
	}

	s.log.Debugf("Quran session logged for user %d: surah %d:%d-%d", userID, surah, ayahFrom, ayahTo)
	return session, nil
}

// ListSessions returns the most recent sessions
func (s *QuranService) ListSessions(ctx context.Context, userID int64, limit int) ([]models.QuranSession, error) {
	if limit <= 0 || limit > 200 {
		limit = 30
	}
	return s.sessions.ListSessions(ctx, userID, limit)
}

// Progress returns the last read position and the past week's volume
func (s *QuranService) Progress(ctx context.Context, userID int64, today time.Time) (*QuranProgress, error) {
	last, err := s.sessions.LastSession(ctx, userID)
	if err != nil {
		return nil, err
	}

	weekAgo := truncateToDay(today).AddDate(0, 0, -6)
	week, err := s.sessions.ListSessionsSince(ctx, userID, weekAgo)
	if err != nil {
		return nil, err
	}

	progress := &QuranProgress{LastSession: last, SessionsWeek: len(week)}
	for _, session := range week {
		progress.PagesThisWeek += session.Pages
	}
	return progress, nil
}
