package models

import (
	"time"

	"github.com/google/uuid"
)

// QuranSession records one reading session
type QuranSession struct {
	ID        uuid.UUID `json:"id"`
	UserID    int64     `json:"user_id"`
	LogDate   time.Time `json:"log_date"`
	Surah     int       `json:"surah"` // 1-114
	AyahFrom  int       `json:"ayah_from"`
	AyahTo    int       `json:"ayah_to"`
	Pages     int       `json:"pages"`
	CreatedAt time.Time `json:"created_at"`
}
