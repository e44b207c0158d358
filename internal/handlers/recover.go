package handlers

import (
	"context"
	"fmt"
	"log/slog"

	messages "github.com/Elena5577/quiz-telegram-bot/assets"
	"github.com/Elena5577/quiz-telegram-bot/internal/bot"
	"github.com/Elena5577/quiz-telegram-bot/internal/game"
)

// RecoverInterrupted - вопросы, которые ждали ответа до перезапуска.
// Таймеры потеряны, поэтому вопрос отменяется без очков.
func (qh *QuizHandlers) RecoverInterrupted(ctx context.Context) int {
	recs, err := qh.GameManager.InterruptedSessions(ctx)
	if err != nil {
		slog.Error("cannot list interrupted sessions", "err", err)
		return 0
	}

	for _, rec := range recs {
		user := game.User{ID: rec.UserID}

		p, err := qh.GameManager.Leave(ctx, user)
		if err != nil {
			slog.Error("cannot clear interrupted session", "user", rec.UserID, "err", err)
			continue
		}

		_, err = qh.Bot.Edit(
			storedMessage(rec.ChatID, rec.MessageID),
			fmt.Sprintf(messages.RoundInterrupted, p.Score),
			bot.MenuKeyboard(),
		)
		if err != nil {
			slog.Warn("cannot edit interrupted message", "chat", rec.ChatID, "msg", rec.MessageID, "err", err)
		}
	}

	if len(recs) > 0 {
		slog.Info("interrupted rounds recovered", "count", len(recs))
	}
	return len(recs)
}
