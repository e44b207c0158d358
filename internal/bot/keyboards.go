package bot

import (
	"fmt"

	messages "github.com/Elena5577/quiz-telegram-bot/assets"
	"github.com/Elena5577/quiz-telegram-bot/internal/game"
	"github.com/Elena5577/quiz-telegram-bot/internal/quiz"

	"gopkg.in/telebot.v3"
)

// Кнопки для регистрации хендлеров: telebot матчит только по Unique
var (
	MenuBtn = telebot.InlineButton{Unique: UniqueMenu, Text: messages.BtnMenu}
	InfoBtn = telebot.InlineButton{Unique: UniqueInfo, Text: messages.BtnRules}
	CatBtn  = telebot.InlineButton{Unique: UniqueCat}
	DiffBtn = telebot.InlineButton{Unique: UniqueDiff}
	AnsBtn  = telebot.InlineButton{Unique: UniqueAns}
	HintBtn = telebot.InlineButton{Unique: UniqueHint}
	NextBtn = telebot.InlineButton{Unique: UniqueNext, Text: messages.BtnNext}
)

func markup(rows ...[]telebot.InlineButton) *telebot.ReplyMarkup {
	return &telebot.ReplyMarkup{InlineKeyboard: rows}
}

// pairs - раскладка по две кнопки в ряд
func pairs(btns []telebot.InlineButton) [][]telebot.InlineButton {
	rows := make([][]telebot.InlineButton, 0, (len(btns)+1)/2)
	for i := 0; i < len(btns); i += 2 {
		end := min(i+2, len(btns))
		rows = append(rows, btns[i:end])
	}
	return rows
}

// MenuKeyboard - категории по две в ряд и правила
func MenuKeyboard() *telebot.ReplyMarkup {
	btns := make([]telebot.InlineButton, 0, len(quiz.Categories))
	for _, c := range quiz.Categories {
		btns = append(btns, telebot.InlineButton{Unique: UniqueCat, Text: c.Title, Data: c.Slug})
	}

	rows := pairs(btns)
	rows = append(rows, []telebot.InlineButton{InfoBtn})
	return markup(rows...)
}

func BackToMenuKeyboard() *telebot.ReplyMarkup {
	return markup([]telebot.InlineButton{MenuBtn})
}

func DifficultyKeyboard(slug string) *telebot.ReplyMarkup {
	labels := map[quiz.Difficulty]string{
		quiz.Easy:   messages.BtnEasy,
		quiz.Medium: messages.BtnMedium,
		quiz.Hard:   messages.BtnHard,
	}

	row := make([]telebot.InlineButton, 0, len(quiz.Difficulties))
	for _, d := range quiz.Difficulties {
		row = append(row, telebot.InlineButton{Unique: UniqueDiff, Text: labels[d], Data: ChoiceData(slug, d)})
	}
	return markup(row, []telebot.InlineButton{MenuBtn})
}

// QuestionKeyboard - варианты по два в ряд, подсказка пока не использована, меню
func QuestionKeyboard(v game.RoundView, hintCost int) *telebot.ReplyMarkup {
	btns := make([]telebot.InlineButton, 0, len(v.Options))
	for _, o := range v.Options {
		btns = append(btns, telebot.InlineButton{
			Unique: UniqueAns,
			Text:   o.Text,
			Data:   AnswerData(v.RoundID, o.Index),
		})
	}

	rows := pairs(btns)
	if !v.HintUsed {
		rows = append(rows, []telebot.InlineButton{{
			Unique: UniqueHint,
			Text:   fmt.Sprintf(messages.BtnHint, hintCost),
			Data:   RoundData(v.RoundID),
		}})
	}
	rows = append(rows, []telebot.InlineButton{MenuBtn})
	return markup(rows...)
}

func ResultKeyboard(slug string, diff quiz.Difficulty) *telebot.ReplyMarkup {
	next := NextBtn
	next.Data = ChoiceData(slug, diff)
	return markup([]telebot.InlineButton{next}, []telebot.InlineButton{MenuBtn})
}
