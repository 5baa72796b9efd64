package ledger

import "testing"

func TestDeriveStats(t *testing.T) {
	tests := []struct {
		name           string
		totalHabits    int
		completedToday int
		wantRate       int
	}{
		{name: "no habits", totalHabits: 0, completedToday: 0, wantRate: 0},
		{name: "three of four", totalHabits: 4, completedToday: 3, wantRate: 75},
		{name: "one of three rounds down", totalHabits: 3, completedToday: 1, wantRate: 33},
		{name: "two of three rounds up", totalHabits: 3, completedToday: 2, wantRate: 67},
		{name: "all complete", totalHabits: 5, completedToday: 5, wantRate: 100},
		{name: "none complete", totalHabits: 5, completedToday: 0, wantRate: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveStats(tt.totalHabits, tt.completedToday)
			if got.CompletionRate != tt.wantRate {
				t.Errorf("CompletionRate = %d, want %d", got.CompletionRate, tt.wantRate)
			}
			if got.TotalHabits != tt.totalHabits {
				t.Errorf("TotalHabits = %d, want %d", got.TotalHabits, tt.totalHabits)
			}
			if got.CompletedToday != tt.completedToday {
				t.Errorf("CompletedToday = %d, want %d", got.CompletedToday, tt.completedToday)
			}
		})
	}
}
