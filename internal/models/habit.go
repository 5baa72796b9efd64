package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PresetColors is the fixed palette a habit may be tagged with.
// The first entry is the default when no color is supplied.
var PresetColors = []string{
	"#10B981", // Emerald green (default)
	"#8B5CF6", // Purple
	"#F59E0B", // Orange
	"#3B82F6", // Blue
	"#EF4444", // Red
	"#EC4899", // Pink
	"#14B8A6", // Teal
	"#F97316", // Deep orange
}

func DefaultColor() string {
	return PresetColors[0]
}

func IsPresetColor(color string) bool {
	for _, c := range PresetColors {
		if c == color {
			return true
		}
	}
	return false
}

type Habit struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID  `json:"userId" gorm:"type:uuid;index;not null"`
	Name        string     `json:"name" gorm:"not null"`
	Description *string    `json:"description"`
	Color       string     `json:"color" gorm:"not null"`
	Icon        *string    `json:"icon"` // unused, kept for schema compatibility
	Archived    bool       `json:"archived" gorm:"default:false"`
	Streak      int        `json:"streak" gorm:"-"` // streak computation not implemented, always 0
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	Logs        []HabitLog `json:"-" gorm:"foreignKey:HabitID;constraint:OnDelete:CASCADE"`
}

func (h *Habit) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}

// Habit DTOs
type CreateHabitRequest struct {
	Name        string `json:"name" validate:"required,max=50"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

type ToggleCompletionRequest struct {
	IsCompletedToday bool `json:"isCompletedToday"`
}

type SetCompletionRequest struct {
	Completed bool `json:"completed"`
}
