package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HabitLog records that a habit was completed on a single calendar day.
// CompletedAt is a date, not a timestamp, formatted YYYY-MM-DD in the
// local calendar of the server at the moment of check-in. The unique
// index on (habit_id, completed_at) is the source of truth for the
// one-log-per-habit-per-day rule.
type HabitLog struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	HabitID     uuid.UUID `json:"habitId" gorm:"type:uuid;not null;uniqueIndex:idx_habit_logs_habit_day"`
	UserID      uuid.UUID `json:"userId" gorm:"type:uuid;index;not null"`
	CompletedAt string    `json:"completedAt" gorm:"type:date;not null;uniqueIndex:idx_habit_logs_habit_day"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (l *HabitLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// LogDate formats a time as the calendar-date key used by habit logs.
func LogDate(t time.Time) string {
	return t.Format("2006-01-02")
}
