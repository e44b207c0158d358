package handlers

import (
	"log/slog"

	messages "github.com/Elena5577/quiz-telegram-bot/assets"
	"github.com/Elena5577/quiz-telegram-bot/internal/bot"
	"github.com/Elena5577/quiz-telegram-bot/internal/bot/middleware"
	"github.com/Elena5577/quiz-telegram-bot/internal/botinterface"
	"github.com/Elena5577/quiz-telegram-bot/internal/game"
	"github.com/Elena5577/quiz-telegram-bot/internal/quiz"

	"gopkg.in/telebot.v3"
)

type MenuHandlers struct {
	Bot         botinterface.BotInterface
	GameManager *game.Manager
}

func NewMenuHandlers(bot botinterface.BotInterface, gm *game.Manager) *MenuHandlers {
	return &MenuHandlers{
		Bot:         bot,
		GameManager: gm,
	}
}

func (mh *MenuHandlers) Register() {
	mh.Bot.Handle("/start", mh.Start, middleware.PrivateOnly)
	mh.Bot.Handle("/menu", mh.Menu, middleware.PrivateOnly)

	mh.Bot.Handle(&bot.MenuBtn, mh.OnMenu)
	mh.Bot.Handle(&bot.InfoBtn, mh.OnInfo)
	mh.Bot.Handle(&bot.CatBtn, mh.OnCategory)
}

// Start - приветствие и меню категорий. Активный вопрос снимается.
func (mh *MenuHandlers) Start(c telebot.Context) error {
	ctx, cancel := requestContext()
	defer cancel()

	user := game.GetUserFromTelebot(c.Sender())
	p, err := mh.GameManager.Leave(ctx, user)
	if err != nil {
		slog.Error("start: leave failed", "user", user.ID, "err", err)
		return c.Send(messages.ErrorMessagesForUser)
	}

	text := bot.RenderWelcome(game.DisplayName(&user), mh.GameManager.AnswerTimeout(), mh.GameManager.Rules(), p.Score)
	return c.Send(text, bot.MenuKeyboard())
}

// Menu - команда /menu, новое сообщение с категориями
func (mh *MenuHandlers) Menu(c telebot.Context) error {
	ctx, cancel := requestContext()
	defer cancel()

	user := game.GetUserFromTelebot(c.Sender())
	p, err := mh.GameManager.Leave(ctx, user)
	if err != nil {
		slog.Error("menu: leave failed", "user", user.ID, "err", err)
		return c.Send(messages.ErrorMessagesForUser)
	}

	return c.Send(bot.RenderMenu(p.Score), bot.MenuKeyboard())
}

// OnMenu - кнопка "В меню": останавливает таймер и редактирует то же сообщение
func (mh *MenuHandlers) OnMenu(c telebot.Context) error {
	_ = c.Respond()

	ctx, cancel := requestContext()
	defer cancel()

	user := game.GetUserFromTelebot(c.Sender())
	p, err := mh.GameManager.Leave(ctx, user)
	if err != nil {
		slog.Error("menu button: leave failed", "user", user.ID, "err", err)
		return c.Send(messages.ErrorMessagesForUser)
	}

	return c.Edit(bot.RenderMenu(p.Score), bot.MenuKeyboard())
}

func (mh *MenuHandlers) OnInfo(c telebot.Context) error {
	_ = c.Respond()

	ctx, cancel := requestContext()
	defer cancel()

	user := game.GetUserFromTelebot(c.Sender())
	p, err := mh.GameManager.Progress(ctx, user)
	if err != nil {
		slog.Error("info: progress failed", "user", user.ID, "err", err)
		return c.Send(messages.ErrorMessagesForUser)
	}

	text := bot.RenderRules(mh.GameManager.AnswerTimeout(), mh.GameManager.Rules(), p)
	return c.Edit(text, bot.BackToMenuKeyboard())
}

func (mh *MenuHandlers) OnCategory(c telebot.Context) error {
	slug := c.Callback().Data
	if _, ok := quiz.CategoryBySlug(slug); !ok {
		return c.Respond(&telebot.CallbackResponse{Text: messages.UnknownCategory, ShowAlert: true})
	}
	_ = c.Respond()

	return c.Edit(bot.RenderChooseDifficulty(slug), bot.DifficultyKeyboard(slug))
}
