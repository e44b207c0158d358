package game

import "github.com/Elena5577/quiz-telegram-bot/internal/quiz"

// Rules - правила начисления очков
type Rules struct {
	ComboEvery int // каждые N правильных подряд
	ComboBonus int
	HintCost   int
}

func DefaultRules() Rules {
	return Rules{
		ComboEvery: 3,
		ComboBonus: 5,
		HintCost:   10,
	}
}

// Outcome - итог ответа. Gained включает бонус.
type Outcome struct {
	Progress Progress
	Gained   int
	Bonus    int
}

func (r Rules) Apply(p Progress, diff quiz.Difficulty, correct bool) Outcome {
	out := Outcome{}

	p.Answered++
	if correct {
		p.Correct++
		p.Streak++
		out.Gained = diff.Points()
		if r.ComboEvery > 0 && p.Streak%r.ComboEvery == 0 {
			out.Bonus = r.ComboBonus
			out.Gained += r.ComboBonus
		}
	} else {
		p.Streak = 0
	}

	p.Score += out.Gained
	out.Progress = p
	return out
}

// ChargeHint - счёт может уйти в минус
func (r Rules) ChargeHint(p Progress) Progress {
	p.Score -= r.HintCost
	return p
}
