package middleware

import (
	"log/slog"
	"slices"

	messages "github.com/Elena5577/quiz-telegram-bot/assets"

	"gopkg.in/telebot.v3"
)

// PrivateOnly - викторина только в личке
func PrivateOnly(next telebot.HandlerFunc) telebot.HandlerFunc {
	return func(c telebot.Context) error {
		chat := c.Chat()
		if chat != nil && chat.Type == telebot.ChatPrivate {
			return next(c)
		}

		if c.Callback() != nil {
			return c.Respond(&telebot.CallbackResponse{Text: messages.PrivateOnlyMessage})
		}
		return c.Send(messages.PrivateOnlyMessage)
	}
}

// OnlyAdmins - пускает только пользователей из ADMINS
func OnlyAdmins(adminIDs []int64) func(next telebot.HandlerFunc) telebot.HandlerFunc {
	return func(next telebot.HandlerFunc) telebot.HandlerFunc {
		return func(c telebot.Context) error {
			user := c.Sender()
			if user != nil && slices.Contains(adminIDs, user.ID) {
				return next(c)
			}

			if user != nil {
				slog.Warn("admin command from non-admin", "user", user.ID)
			}

			// Если это callback, показываем алерт
			if c.Callback() != nil {
				return c.Respond(&telebot.CallbackResponse{Text: messages.OnlyAdminsMessage})
			}
			return c.Reply(messages.OnlyAdminsMessage)
		}
	}
}
