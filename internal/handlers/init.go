package handlers

import (
	"context"
	"strconv"
	"time"

	"github.com/Elena5577/quiz-telegram-bot/internal/botinterface"
	"github.com/Elena5577/quiz-telegram-bot/internal/config"
	"github.com/Elena5577/quiz-telegram-bot/internal/game"
	"github.com/Elena5577/quiz-telegram-bot/internal/quiz"

	"gopkg.in/telebot.v3"
)

// Время на один запрос к хранилищу из хендлера
const requestTimeout = 5 * time.Second

type Handlers struct {
	Menu  *MenuHandlers
	Quiz  *QuizHandlers
	Score *ScoreHandlers
	Admin *AdminHandlers
}

func NewHandlers(
	bot botinterface.BotInterface,
	gm *game.Manager,
	bank *quiz.Bank,
	conf *config.Config,
) *Handlers {

	h := &Handlers{
		Menu:  NewMenuHandlers(bot, gm),
		Quiz:  NewQuizHandlers(bot, gm),
		Score: NewScoreHandlers(bot, gm, conf.Quiz.TopLimit),
		Admin: NewAdminHandlers(bot, bank, conf.Quiz.QuestionsFile, conf.Admin.AdminsID),
	}

	gm.SetListener(h.Quiz)

	return h
}

func (h *Handlers) RegisterAll() {
	h.Menu.Register()
	h.Quiz.Register()
	h.Score.Register()
	h.Admin.Register()
}

// Commands - список для меню команд Telegram
func Commands() []telebot.Command {
	return []telebot.Command{
		{Text: "start", Description: "Начать викторину"},
		{Text: "menu", Description: "Выбор категории"},
		{Text: "score", Description: "Моя статистика"},
		{Text: "top", Description: "Лучшие игроки"},
	}
}

func requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout)
}

// storedMessage - сообщение с вопросом, которое редактируем из таймера
func storedMessage(chatID int64, messageID int) telebot.StoredMessage {
	return telebot.StoredMessage{
		MessageID: strconv.Itoa(messageID),
		ChatID:    chatID,
	}
}
