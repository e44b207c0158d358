package bot

import (
	"errors"
	"strings"
	"testing"

	"github.com/Elena5577/quiz-telegram-bot/internal/game"
	"github.com/Elena5577/quiz-telegram-bot/internal/quiz"
)

func TestAnswerData(t *testing.T) {
	data := AnswerData(123456789, 3)
	if len(data) > 64 {
		t.Fatalf("callback data too long: %d", len(data))
	}

	rid, idx, err := ParseAnswerData(data)
	if err != nil {
		t.Fatal(err)
	}
	if rid != 123456789 || idx != 3 {
		t.Errorf("Expected 123456789/3, got %d/%d", rid, idx)
	}

	for _, bad := range []string{"", "12", "x|1", "1|y", "1|-1"} {
		if _, _, err := ParseAnswerData(bad); !errors.Is(err, ErrBadCallback) {
			t.Errorf("%q: expected ErrBadCallback, got %v", bad, err)
		}
	}
}

func TestChoiceData(t *testing.T) {
	slug, diff, err := ParseChoiceData(ChoiceData("music", quiz.Hard))
	if err != nil {
		t.Fatal(err)
	}
	if slug != "music" || diff != quiz.Hard {
		t.Errorf("Unexpected %s/%s", slug, diff)
	}

	for _, bad := range []string{"music", "sport|easy", "music|insane"} {
		if _, _, err := ParseChoiceData(bad); !errors.Is(err, ErrBadCallback) {
			t.Errorf("%q: expected ErrBadCallback, got %v", bad, err)
		}
	}
}

func TestMenuKeyboard(t *testing.T) {
	kb := MenuKeyboard()

	// 10 категорий по 2 + правила
	if len(kb.InlineKeyboard) != 6 {
		t.Fatalf("Expected 6 rows, got %d", len(kb.InlineKeyboard))
	}
	for i := 0; i < 5; i++ {
		if len(kb.InlineKeyboard[i]) != 2 {
			t.Errorf("Row %d: expected 2 buttons", i)
		}
	}
	if kb.InlineKeyboard[5][0].Unique != UniqueInfo {
		t.Errorf("Last row must be rules")
	}
	if kb.InlineKeyboard[0][0].Data != "history" {
		t.Errorf("Unexpected first category %q", kb.InlineKeyboard[0][0].Data)
	}
}

func TestQuestionKeyboard(t *testing.T) {
	v := game.RoundView{
		RoundID: 7,
		Options: []game.OptionView{{Index: 0, Text: "a"}, {Index: 1, Text: "b"}, {Index: 2, Text: "c"}},
	}

	kb := QuestionKeyboard(v, 10)
	// 2 + 1 варианта, подсказка, меню
	if len(kb.InlineKeyboard) != 4 {
		t.Fatalf("Expected 4 rows, got %d", len(kb.InlineKeyboard))
	}
	if kb.InlineKeyboard[1][0].Data != "7|2" {
		t.Errorf("Unexpected answer data %q", kb.InlineKeyboard[1][0].Data)
	}
	hint := kb.InlineKeyboard[2][0]
	if hint.Unique != UniqueHint || hint.Data != "7" || !strings.Contains(hint.Text, "10") {
		t.Errorf("Unexpected hint button %+v", hint)
	}

	v.HintUsed = true
	v.Options = v.Options[:2]
	kb = QuestionKeyboard(v, 10)
	if len(kb.InlineKeyboard) != 2 {
		t.Fatalf("Expected options + menu after hint, got %d rows", len(kb.InlineKeyboard))
	}
}

func TestRenderQuestion(t *testing.T) {
	text := RenderQuestion(game.RoundView{
		Category: "astronomy", Difficulty: quiz.Medium, Text: "Q?", SecondsLeft: 7, HintUsed: true,
	})

	for _, want := range []string{"⏳ Осталось: 07 c", "Астрономия · Средний", "❓ Q?", "Подсказка применена"} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected %q in %q", want, text)
		}
	}
}

func TestRenderResult(t *testing.T) {
	tests := []struct {
		name string
		res  game.Result
		want []string
		not  []string
	}{
		{
			name: "correct with combo",
			res:  game.Result{Correct: true, Gained: 20, Bonus: 5, Progress: game.Progress{Score: 40, Streak: 3}, Category: "art", Difficulty: quiz.Hard},
			want: []string{"✅ Правильно! +20 очков (+5 комбо)", "Счёт: 40 · Серия: 3", "Искусство · Сложный"},
			not:  []string{"Правильный ответ"},
		},
		{
			name: "wrong",
			res:  game.Result{CorrectAnswer: "Марс", Progress: game.Progress{Score: 5}, Category: "astronomy", Difficulty: quiz.Easy},
			want: []string{"❌ Неверно.\n", "Правильный ответ: Марс"},
			not:  []string{"очков ("},
		},
		{
			name: "timeout",
			res:  game.Result{TimedOut: true, CorrectAnswer: "1939", Category: "history", Difficulty: quiz.Easy},
			want: []string{"⏰ Время вышло — ответ неверный.", "Правильный ответ: 1939"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := RenderResult(tt.res)
			for _, w := range tt.want {
				if !strings.Contains(text, w) {
					t.Errorf("Expected %q in %q", w, text)
				}
			}
			for _, n := range tt.not {
				if strings.Contains(text, n) {
					t.Errorf("Unexpected %q in %q", n, text)
				}
			}
		})
	}
}

func TestRenderTop(t *testing.T) {
	if RenderTop(nil) == "" {
		t.Error("Empty top must have a message")
	}

	text := RenderTop([]game.PlayerScore{{UserName: "Аня", Value: 30}, {UserName: "@bob", Value: -5}})
	if !strings.Contains(text, "1. Аня — 30") || !strings.Contains(text, "2. @bob — -5") {
		t.Errorf("Unexpected top %q", text)
	}
}
