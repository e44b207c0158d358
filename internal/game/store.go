package game

import (
	"context"

	"github.com/Elena5577/quiz-telegram-bot/internal/quiz"
)

// Progress - накопленный результат игрока
type Progress struct {
	Score    int
	Streak   int
	Answered int
	Correct  int
}

type PlayerScore struct {
	UserID   int64
	UserName string
	Value    int
}

// SessionRecord - последний выбор игрока и сообщение, которое бот редактирует.
// Active - вопрос ещё ждёт ответа.
type SessionRecord struct {
	UserID     int64
	Category   string
	Difficulty quiz.Difficulty
	ChatID     int64
	MessageID  int
	Active     bool
}

type ProgressStore interface {
	EnsureUser(ctx context.Context, user User) (Progress, error)
	SaveProgress(ctx context.Context, userID int64, p Progress) error
	MarkQuestionUsed(ctx context.Context, userID int64, hash string) error
	UsedQuestions(ctx context.Context, userID int64) (map[string]struct{}, error)
	SaveSession(ctx context.Context, s SessionRecord) error
	ClearSessionMessage(ctx context.Context, userID int64) error
	ActiveSessions(ctx context.Context) ([]SessionRecord, error)
	Top(ctx context.Context, limit int) ([]PlayerScore, error)
}

type QuestionSource interface {
	Questions(slug string, diff quiz.Difficulty) []quiz.Question
}
