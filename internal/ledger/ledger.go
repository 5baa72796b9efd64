// Package ledger owns the habit check-in rules: one completion log per
// habit per calendar day, insert as the only "on" transition, delete as
// the only "off" transition. Everything else in the API is presentation
// around these operations.
package ledger

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/habitflow/habitflow-api/internal/database"
	"github.com/habitflow/habitflow-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MaxNameLength is the longest allowed habit name after trimming.
const MaxNameLength = 50

// Today returns the calendar-date key for the current local day,
// computed once per operation.
func Today() string {
	return models.LogDate(time.Now())
}

// CreateHabit validates input and inserts a new habit for owner.
// Validation failures are reported before any database call.
func CreateHabit(owner uuid.UUID, req models.CreateHabitRequest) (*models.Habit, error) {
	if owner == uuid.Nil {
		return nil, ErrNotAuthenticated
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, validationErr("Habit name is required")
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return nil, validationErr("Habit name must be 50 characters or less")
	}

	// Empty descriptions are stored as absent, not as "".
	var description *string
	if d := strings.TrimSpace(req.Description); d != "" {
		description = &d
	}

	color := req.Color
	if color == "" {
		color = models.DefaultColor()
	} else if !models.IsPresetColor(color) {
		return nil, validationErr("Color must be one of the preset palette")
	}

	habit := models.Habit{
		UserID:      owner,
		Name:        name,
		Description: description,
		Color:       color,
	}

	if err := database.DB.Create(&habit).Error; err != nil {
		return nil, err
	}
	return &habit, nil
}

// ListActiveHabits returns the owner's non-archived habits, newest first.
func ListActiveHabits(owner uuid.UUID) ([]models.Habit, error) {
	var habits []models.Habit
	err := database.DB.
		Where("user_id = ? AND archived = ?", owner, false).
		Order("created_at DESC").
		Find(&habits).Error
	if err != nil {
		return nil, err
	}
	return habits, nil
}

// ListTodayLogs returns all of the owner's completion logs for the
// current local calendar day.
func ListTodayLogs(owner uuid.UUID) ([]models.HabitLog, error) {
	var logs []models.HabitLog
	err := database.DB.
		Where("user_id = ? AND completed_at = ?", owner, Today()).
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

// ToggleCompletion flips today's completion state for a habit. The
// caller supplies the current state: true deletes today's log (deleting
// zero rows is success), false inserts one. A duplicate insert for the
// same day is rejected by the unique index on (habit_id, completed_at)
// and surfaced as-is.
func ToggleCompletion(habitID, owner uuid.UUID, isCompletedToday bool) error {
	if owner == uuid.Nil {
		return ErrNotAuthenticated
	}
	if _, err := findOwnedHabit(habitID, owner); err != nil {
		return err
	}

	today := Today()
	if isCompletedToday {
		return database.DB.
			Where("habit_id = ? AND completed_at = ?", habitID, today).
			Delete(&models.HabitLog{}).Error
	}

	log := models.HabitLog{
		HabitID:     habitID,
		UserID:      owner,
		CompletedAt: today,
	}
	return database.DB.Create(&log).Error
}

// SetCompletion sets today's completion state for a habit to an
// explicit value. Both directions are idempotent: turning on an
// already-completed habit and turning off an uncompleted one are
// no-ops.
func SetCompletion(habitID, owner uuid.UUID, completed bool) error {
	if owner == uuid.Nil {
		return ErrNotAuthenticated
	}
	if _, err := findOwnedHabit(habitID, owner); err != nil {
		return err
	}

	today := Today()
	if !completed {
		return database.DB.
			Where("habit_id = ? AND completed_at = ?", habitID, today).
			Delete(&models.HabitLog{}).Error
	}

	log := models.HabitLog{
		HabitID:     habitID,
		UserID:      owner,
		CompletedAt: today,
	}
	return database.DB.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&log).Error
}

// DeleteHabit hard-deletes a habit and its logs in one transaction.
// The schema also declares ON DELETE CASCADE, but SQLite does not
// enforce foreign keys unless the pragma is enabled, so the logs are
// removed explicitly as well.
func DeleteHabit(habitID, owner uuid.UUID) error {
	if owner == uuid.Nil {
		return ErrNotAuthenticated
	}
	habit, err := findOwnedHabit(habitID, owner)
	if err != nil {
		return err
	}

	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("habit_id = ?", habit.ID).Delete(&models.HabitLog{}).Error; err != nil {
			return err
		}
		return tx.Delete(habit).Error
	})
}

func findOwnedHabit(habitID, owner uuid.UUID) (*models.Habit, error) {
	var habit models.Habit
	err := database.DB.Where("id = ? AND user_id = ?", habitID, owner).First(&habit).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHabitNotFound
		}
		return nil, err
	}
	return &habit, nil
}
