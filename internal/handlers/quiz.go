package handlers

import (
	"errors"
	"fmt"
	"log/slog"

	messages "github.com/Elena5577/quiz-telegram-bot/assets"
	"github.com/Elena5577/quiz-telegram-bot/internal/bot"
	"github.com/Elena5577/quiz-telegram-bot/internal/botinterface"
	"github.com/Elena5577/quiz-telegram-bot/internal/game"

	"gopkg.in/telebot.v3"
)

// QuizHandlers - вопросы, ответы, подсказки и таймер.
// Реализует game.TimerListener.
type QuizHandlers struct {
	Bot         botinterface.BotInterface
	GameManager *game.Manager
}

var _ game.TimerListener = (*QuizHandlers)(nil)

func NewQuizHandlers(bot botinterface.BotInterface, gm *game.Manager) *QuizHandlers {
	return &QuizHandlers{
		Bot:         bot,
		GameManager: gm,
	}
}

func (qh *QuizHandlers) Register() {
	qh.Bot.Handle(&bot.DiffBtn, qh.OnChoice)
	qh.Bot.Handle(&bot.NextBtn, qh.OnChoice)
	qh.Bot.Handle(&bot.AnsBtn, qh.OnAnswer)
	qh.Bot.Handle(&bot.HintBtn, qh.OnHint)
}

// OnChoice - выбор сложности или "Следующий вопрос": новый вопрос в том же сообщении
func (qh *QuizHandlers) OnChoice(c telebot.Context) error {
	slug, diff, err := bot.ParseChoiceData(c.Callback().Data)
	if err != nil {
		slog.Warn("bad choice callback", "err", err)
		return c.Respond(&telebot.CallbackResponse{Text: messages.UnknownCategory, ShowAlert: true})
	}
	_ = c.Respond()

	msg := c.Message()
	if msg == nil {
		return nil
	}

	ctx, cancel := requestContext()
	defer cancel()

	user := game.GetUserFromTelebot(c.Sender())
	view, err := qh.GameManager.StartRound(ctx, game.StartParams{
		User:       user,
		ChatID:     msg.Chat.ID,
		MessageID:  msg.ID,
		Category:   slug,
		Difficulty: diff,
	})

	switch {
	case err == nil:
		return c.Edit(bot.RenderQuestion(view), bot.QuestionKeyboard(view, qh.GameManager.Rules().HintCost))

	case errors.Is(err, game.ErrNoQuestionsLeft):
		p, perr := qh.GameManager.Progress(ctx, user)
		if perr != nil {
			slog.Error("progress after exhausted set", "user", user.ID, "err", perr)
		}
		return c.Edit(bot.RenderQuestionsOver(slug, diff, p.Score), bot.BackToMenuKeyboard())

	case errors.Is(err, game.ErrUnknownCategory):
		return c.Send(messages.UnknownCategory)

	default:
		slog.Error("start round failed", "user", user.ID, "category", slug, "difficulty", diff, "err", err)
		return c.Send(messages.ErrorMessagesForUser)
	}
}

func (qh *QuizHandlers) OnAnswer(c telebot.Context) error {
	roundID, idx, err := bot.ParseAnswerData(c.Callback().Data)
	if err != nil {
		slog.Warn("bad answer callback", "err", err)
		return c.Respond(&telebot.CallbackResponse{Text: messages.QuestionExpired})
	}

	ctx, cancel := requestContext()
	defer cancel()

	user := game.GetUserFromTelebot(c.Sender())
	res, err := qh.GameManager.Answer(ctx, user.ID, roundID, idx)
	if errors.Is(err, game.ErrNoActiveRound) {
		// вопроса нет (ответ уже дан или бот перезапущен) - в меню
		_ = c.Respond()
		p, perr := qh.GameManager.Progress(ctx, user)
		if perr != nil {
			slog.Error("progress without active round", "user", user.ID, "err", perr)
		}
		return c.Edit(fmt.Sprintf(messages.NoActiveQuestionMenu, p.Score), bot.MenuKeyboard())
	}
	if err != nil {
		return qh.respondRoundError(c, user, err)
	}
	_ = c.Respond()

	return qh.showResult(res)
}

func (qh *QuizHandlers) OnHint(c telebot.Context) error {
	roundID, err := bot.ParseRoundData(c.Callback().Data)
	if err != nil {
		slog.Warn("bad hint callback", "err", err)
		return c.Respond(&telebot.CallbackResponse{Text: messages.QuestionExpired})
	}

	ctx, cancel := requestContext()
	defer cancel()

	user := game.GetUserFromTelebot(c.Sender())
	view, err := qh.GameManager.UseHint(ctx, user.ID, roundID)
	if err != nil {
		return qh.respondRoundError(c, user, err)
	}

	cost := qh.GameManager.Rules().HintCost
	_ = c.Respond(&telebot.CallbackResponse{Text: fmt.Sprintf(messages.HintCharged, cost)})

	return c.Edit(bot.RenderQuestion(view), bot.QuestionKeyboard(view, cost))
}

// respondRoundError - ошибки, понятные игроку, показываем алертом
func (qh *QuizHandlers) respondRoundError(c telebot.Context, user game.User, err error) error {
	switch {
	case errors.Is(err, game.ErrNoActiveRound):
		return c.Respond(&telebot.CallbackResponse{Text: messages.NoActiveQuestion, ShowAlert: true})
	case errors.Is(err, game.ErrStaleRound):
		return c.Respond(&telebot.CallbackResponse{Text: messages.QuestionExpired})
	case errors.Is(err, game.ErrHintUsed):
		return c.Respond(&telebot.CallbackResponse{Text: messages.HintAlreadyUsed, ShowAlert: true})
	}

	slog.Error("round action failed", "user", user.ID, "err", err)
	return c.Respond(&telebot.CallbackResponse{Text: messages.ErrorMessagesForUser, ShowAlert: true})
}

func (qh *QuizHandlers) showResult(res game.Result) error {
	_, err := qh.Bot.Edit(
		storedMessage(res.ChatID, res.MessageID),
		bot.RenderResult(res),
		bot.ResultKeyboard(res.Category, res.Difficulty),
	)
	if err != nil {
		slog.Warn("cannot edit result message", "chat", res.ChatID, "msg", res.MessageID, "err", err)
	}
	return nil
}

// OnTick - обновить таймер в сообщении. Ошибки (rate limit, "message is not modified") не важны.
func (qh *QuizHandlers) OnTick(view game.RoundView) {
	_, err := qh.Bot.Edit(
		storedMessage(view.ChatID, view.MessageID),
		bot.RenderQuestion(view),
		bot.QuestionKeyboard(view, qh.GameManager.Rules().HintCost),
	)
	if err != nil {
		slog.Debug("tick edit failed", "user", view.UserID, "err", err)
	}
}

// OnTimeout - вызывается из горутины игрока, следующий вопрос не перетрёт итог
func (qh *QuizHandlers) OnTimeout(res game.Result) {
	slog.Debug("answer timed out", "user", res.UserID)
	_ = qh.showResult(res)
}
