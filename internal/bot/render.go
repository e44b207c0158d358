package bot

import (
	"fmt"
	"strings"
	"time"

	messages "github.com/Elena5577/quiz-telegram-bot/assets"
	"github.com/Elena5577/quiz-telegram-bot/internal/game"
	"github.com/Elena5577/quiz-telegram-bot/internal/quiz"
)

func RenderWelcome(name string, timeout time.Duration, rules game.Rules, score int) string {
	return fmt.Sprintf(messages.WelcomeMessage, name, int(timeout.Seconds()), rules.HintCost, score)
}

func RenderMenu(score int) string {
	return fmt.Sprintf(messages.MenuMessage, score)
}

func RenderRules(timeout time.Duration, rules game.Rules, p game.Progress) string {
	return fmt.Sprintf(messages.RulesMessage, int(timeout.Seconds()), rules.HintCost, p.Score, p.Streak)
}

func RenderChooseDifficulty(slug string) string {
	return fmt.Sprintf(messages.ChooseDifficulty, quiz.CategoryName(slug))
}

// RenderQuestion - текст вопроса с таймером в заголовке
func RenderQuestion(v game.RoundView) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf(messages.QuestionHeader, v.SecondsLeft, quiz.CategoryName(v.Category), v.Difficulty.Label()))
	b.WriteString(fmt.Sprintf(messages.QuestionBody, v.Text))
	if v.HintUsed {
		b.WriteString(messages.HintAppliedMark)
	}
	return b.String()
}

func RenderResult(res game.Result) string {
	var b strings.Builder

	switch {
	case res.Correct:
		b.WriteString(messages.ResultCorrect)
	case res.TimedOut:
		b.WriteString(messages.ResultTimeout)
	default:
		b.WriteString(messages.ResultWrong)
	}

	if res.Gained > 0 {
		b.WriteString(fmt.Sprintf(messages.ResultGained, res.Gained))
	}
	if res.Bonus > 0 {
		b.WriteString(fmt.Sprintf(messages.ResultCombo, res.Bonus))
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf(messages.ResultScore, res.Progress.Score, res.Progress.Streak))
	if !res.Correct {
		b.WriteString(fmt.Sprintf(messages.ResultAnswer, res.CorrectAnswer))
	}
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf(messages.ResultFooter, quiz.CategoryName(res.Category), res.Difficulty.Label()))
	return b.String()
}

func RenderQuestionsOver(slug string, diff quiz.Difficulty, score int) string {
	return fmt.Sprintf(messages.QuestionsOver, quiz.CategoryName(slug), diff.Label(), score)
}

func RenderStats(p game.Progress) string {
	return fmt.Sprintf(messages.ScoreMessage, p.Score, p.Streak, p.Answered, p.Correct)
}

// RenderTop - таблица лидеров
func RenderTop(scores []game.PlayerScore) string {
	if len(scores) == 0 {
		return messages.TopEmpty
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s\n\n", messages.TopTitle))
	for i, ps := range scores {
		b.WriteString(fmt.Sprintf("%d. %s — %d 🔥\n", i+1, ps.UserName, ps.Value))
	}
	return b.String()
}
