package handlers

import (
	"fmt"
	"log/slog"

	messages "github.com/Elena5577/quiz-telegram-bot/assets"
	"github.com/Elena5577/quiz-telegram-bot/internal/bot/middleware"
	"github.com/Elena5577/quiz-telegram-bot/internal/botinterface"
	"github.com/Elena5577/quiz-telegram-bot/internal/quiz"

	"gopkg.in/telebot.v3"
)

type AdminHandlers struct {
	Bot           botinterface.BotInterface
	Bank          *quiz.Bank
	QuestionsFile string
	AdminsID      []int64
}

func NewAdminHandlers(bot botinterface.BotInterface, bank *quiz.Bank, file string, admins []int64) *AdminHandlers {
	return &AdminHandlers{
		Bot:           bot,
		Bank:          bank,
		QuestionsFile: file,
		AdminsID:      admins,
	}
}

func (ah *AdminHandlers) Register() {
	ah.Bot.Handle("/reload", ah.HandleReload, middleware.OnlyAdmins(ah.AdminsID))
}

// HandleReload - перечитать questions.json без перезапуска.
// При ошибке остаётся прежний набор.
func (ah *AdminHandlers) HandleReload(c telebot.Context) error {
	if err := ah.Bank.Reload(ah.QuestionsFile); err != nil {
		slog.Warn("questions reload failed", "file", ah.QuestionsFile, "err", err)
		return c.Send(fmt.Sprintf(messages.ReloadFailed, err))
	}

	slog.Info("questions reloaded", "file", ah.QuestionsFile, "total", ah.Bank.Size(), "skipped", ah.Bank.Skipped())
	return c.Send(fmt.Sprintf(messages.ReloadDone, ah.Bank.Size(), ah.Bank.Skipped()))
}
