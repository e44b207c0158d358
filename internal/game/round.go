package game

import (
	"context"
	"slices"
	"time"

	"github.com/Elena5577/quiz-telegram-bot/internal/quiz"
)

// Round - активный вопрос игрока. Живёт только в памяти.
type Round struct {
	ID       uint64
	User     User
	Question quiz.Question

	// Порядок вариантов фиксируется при старте, чтобы кнопки не прыгали.
	// Visible - индексы в Options в порядке показа (после подсказки их два).
	Options []string
	Visible []int

	ChatID    int64
	MessageID int
	HintUsed  bool

	ticksLeft int
	cancel    context.CancelFunc
}

// OptionView - кнопка ответа. Index стабилен на весь раунд.
type OptionView struct {
	Index int
	Text  string
}

// RoundView - снимок раунда для отрисовки
type RoundView struct {
	RoundID     uint64
	UserID      int64
	Category    string
	Difficulty  quiz.Difficulty
	Text        string
	Options     []OptionView
	HintUsed    bool
	SecondsLeft int
	ChatID      int64
	MessageID   int
}

func (r *Round) view(tick time.Duration) RoundView {
	opts := make([]OptionView, 0, len(r.Visible))
	for _, i := range r.Visible {
		opts = append(opts, OptionView{Index: i, Text: r.Options[i]})
	}

	left := time.Duration(r.ticksLeft) * tick
	secs := int((left + time.Second - 1) / time.Second)

	return RoundView{
		RoundID:     r.ID,
		UserID:      r.User.ID,
		Category:    r.Question.Category,
		Difficulty:  r.Question.Difficulty,
		Text:        r.Question.Text,
		Options:     opts,
		HintUsed:    r.HintUsed,
		SecondsLeft: secs,
		ChatID:      r.ChatID,
		MessageID:   r.MessageID,
	}
}

// expired - время вышло, ответы больше не принимаются
func (r *Round) expired() bool {
	return r.ticksLeft <= 0
}

func (r *Round) isVisible(idx int) bool {
	return slices.Contains(r.Visible, idx)
}

func (r *Round) isCorrect(idx int) bool {
	return idx >= 0 && idx < len(r.Options) && r.Options[idx] == r.Question.Answer
}

func (r *Round) correctIndex() int {
	for i := range r.Options {
		if r.isCorrect(i) {
			return i
		}
	}
	return -1
}

// Result - итог раунда
type Result struct {
	UserID        int64
	Category      string
	Difficulty    quiz.Difficulty
	Correct       bool
	TimedOut      bool
	Gained        int
	Bonus         int
	Progress      Progress
	CorrectAnswer string
	ChatID        int64
	MessageID     int
}
