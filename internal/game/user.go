package game

import (
	"strings"

	messages "github.com/Elena5577/quiz-telegram-bot/assets"
	"gopkg.in/telebot.v3"
)

type User struct {
	ID        int64
	Username  string
	FirstName string
}

// Достаем User из телеги
func GetUserFromTelebot(u *telebot.User) User {
	if u == nil {
		return User{}
	}

	return User{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
	}
}

// DisplayName - как обращаться к игроку
func DisplayName(u *User) string {
	if u == nil {
		return messages.UnnownPerson
	}

	// FirstName приоритет
	name := strings.TrimSpace(u.FirstName)
	if name != "" {
		return name
	}

	if u.Username != "" {
		return "@" + u.Username
	}

	return messages.UnnownPerson
}
