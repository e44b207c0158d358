package middleware

import (
	"time"

	"gopkg.in/telebot.v3"
)

// Мидлварь для обработки longpoolinga: старые команды после простоя не нужны
func DropOldMessages(maxAge time.Duration) *telebot.MiddlewarePoller {
	return telebot.NewMiddlewarePoller(
		&telebot.LongPoller{Timeout: 10 * time.Second},
		func(u *telebot.Update) bool {
			return !isOld(u, maxAge, time.Now())
		})
}

func isOld(u *telebot.Update, maxAge time.Duration, now time.Time) bool {
	if maxAge <= 0 || u.Message == nil {
		return false
	}
	return now.Sub(u.Message.Time()) > maxAge
}
