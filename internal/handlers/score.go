package handlers

import (
	"log/slog"

	messages "github.com/Elena5577/quiz-telegram-bot/assets"
	"github.com/Elena5577/quiz-telegram-bot/internal/bot"
	"github.com/Elena5577/quiz-telegram-bot/internal/botinterface"
	"github.com/Elena5577/quiz-telegram-bot/internal/game"

	"gopkg.in/telebot.v3"
)

type ScoreHandlers struct {
	Bot         botinterface.BotInterface
	GameManager *game.Manager
	TopLimit    int
}

func NewScoreHandlers(bot botinterface.BotInterface, gm *game.Manager, topLimit int) *ScoreHandlers {
	if topLimit <= 0 {
		topLimit = 10
	}
	return &ScoreHandlers{
		Bot:         bot,
		GameManager: gm,
		TopLimit:    topLimit,
	}
}

func (sh *ScoreHandlers) Register() {
	sh.Bot.Handle("/score", sh.HandleScore)
	sh.Bot.Handle("/top", sh.HandleTop)
}

// HandleScore - статистика игрока
func (sh *ScoreHandlers) HandleScore(c telebot.Context) error {
	ctx, cancel := requestContext()
	defer cancel()

	user := game.GetUserFromTelebot(c.Sender())
	p, err := sh.GameManager.Progress(ctx, user)
	if err != nil {
		slog.Error("score failed", "user", user.ID, "err", err)
		return c.Send(messages.ErrorMessagesForUser)
	}

	return c.Send(bot.RenderStats(p), bot.BackToMenuKeyboard())
}

// HandleTop - таблица лидеров
func (sh *ScoreHandlers) HandleTop(c telebot.Context) error {
	ctx, cancel := requestContext()
	defer cancel()

	top, err := sh.GameManager.Leaderboard(ctx, sh.TopLimit)
	if err != nil {
		slog.Error("leaderboard failed", "err", err)
		return c.Send(messages.ErrorMessagesForUser)
	}

	return c.Send(bot.RenderTop(top))
}
