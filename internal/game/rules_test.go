package game

import (
	"testing"

	"github.com/Elena5577/quiz-telegram-bot/internal/quiz"
)

func TestRulesApply(t *testing.T) {
	r := DefaultRules()

	tests := []struct {
		name       string
		start      Progress
		diff       quiz.Difficulty
		correct    bool
		wantGained int
		wantBonus  int
		wantScore  int
		wantStreak int
	}{
		{"easy correct", Progress{}, quiz.Easy, true, 5, 0, 5, 1},
		{"medium correct", Progress{Score: 5, Streak: 1}, quiz.Medium, true, 10, 0, 15, 2},
		{"hard correct with combo", Progress{Score: 15, Streak: 2}, quiz.Hard, true, 20, 5, 35, 3},
		{"wrong resets streak", Progress{Score: 20, Streak: 2}, quiz.Hard, false, 0, 0, 20, 0},
		{"combo again on 6th", Progress{Streak: 5}, quiz.Easy, true, 10, 5, 10, 6},
		{"negative score stays", Progress{Score: -10}, quiz.Easy, false, 0, 0, -10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := r.Apply(tt.start, tt.diff, tt.correct)

			if out.Gained != tt.wantGained {
				t.Errorf("gained: expected %d, got %d", tt.wantGained, out.Gained)
			}
			if out.Bonus != tt.wantBonus {
				t.Errorf("bonus: expected %d, got %d", tt.wantBonus, out.Bonus)
			}
			if out.Progress.Score != tt.wantScore {
				t.Errorf("score: expected %d, got %d", tt.wantScore, out.Progress.Score)
			}
			if out.Progress.Streak != tt.wantStreak {
				t.Errorf("streak: expected %d, got %d", tt.wantStreak, out.Progress.Streak)
			}
			if out.Progress.Answered != tt.start.Answered+1 {
				t.Errorf("answered: expected %d, got %d", tt.start.Answered+1, out.Progress.Answered)
			}
		})
	}
}

func TestRulesChargeHint(t *testing.T) {
	r := DefaultRules()

	p := r.ChargeHint(Progress{Score: 4, Streak: 2})
	if p.Score != -6 {
		t.Errorf("Expected score -6, got %d", p.Score)
	}
	if p.Streak != 2 {
		t.Errorf("Hint must not touch streak, got %d", p.Streak)
	}
}
