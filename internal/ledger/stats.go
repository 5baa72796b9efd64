package ledger

import "math"

// TodayStats is the dashboard aggregate for the current day.
type TodayStats struct {
	CompletedToday int `json:"completedToday"`
	TotalHabits    int `json:"totalHabits"`
	CompletionRate int `json:"completionRate"`
}

// DeriveStats computes the day's aggregate from counts alone. It is
// pure: zero habits yields a zero rate rather than a division fault.
func DeriveStats(totalHabits, completedToday int) TodayStats {
	rate := 0
	if totalHabits > 0 {
		rate = int(math.Round(float64(completedToday) / float64(totalHabits) * 100))
	}
	return TodayStats{
		CompletedToday: completedToday,
		TotalHabits:    totalHabits,
		CompletionRate: rate,
	}
}
