package models

import (
	"time"

	"github.com/google/uuid"
)

// PrayerLog holds the five daily prayer marks for one calendar date.
// One row per user per date.
type PrayerLog struct {
	ID        uuid.UUID `json:"id"`
	UserID    int64     `json:"user_id"`
	LogDate   time.Time `json:"log_date"`
	Fajr      bool      `json:"fajr"`
	Dhuhr     bool      `json:"dhuhr"`
	Asr       bool      `json:"asr"`
	Maghrib   bool      `json:"maghrib"`
	Isha      bool      `json:"isha"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CompletedCount returns how many of the five prayers are marked done
func (p *PrayerLog) CompletedCount() int {
	n := 0
	for _, done := range []bool{p.Fajr, p.Dhuhr, p.Asr, p.Maghrib, p.Isha} {
		if done {
			n++
		}
	}
	return n
}

// Complete reports whether all five prayers are marked for the day
func (p *PrayerLog) Complete() bool {
	return p.CompletedCount() == 5
}
