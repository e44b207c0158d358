package game_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Elena5577/quiz-telegram-bot/internal/game"
	"github.com/Elena5577/quiz-telegram-bot/internal/quiz"
	storemock "github.com/Elena5577/quiz-telegram-bot/internal/repositories/mock"
)

// Ошибка БД при ответе не завершает раунд: игрок может ответить ещё раз
func TestAnswer_StoreFailureKeepsRound(t *testing.T) {
	ctx := context.Background()

	bank, err := quiz.Parse(strings.NewReader(`{"questions":[
		{"category":"Наука","difficulty":"easy","question":"H2O - это?","options":["Вода","Соль"],"answer":"Вода"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	user := game.User{ID: 9, FirstName: "Петя"}
	dbErr := errors.New("connection reset")

	store := new(storemock.FakeStore)
	store.On("EnsureUser", mock.Anything, user).Return(game.Progress{}, nil)
	store.On("UsedQuestions", mock.Anything, user.ID).Return(map[string]struct{}{}, nil)
	store.On("SaveSession", mock.Anything, mock.AnythingOfType("game.SessionRecord")).Return(nil)
	store.On("MarkQuestionUsed", mock.Anything, user.ID, mock.AnythingOfType("string")).Return(nil)
	store.On("SaveProgress", mock.Anything, user.ID, mock.Anything).Return(dbErr).Once()
	store.On("SaveProgress", mock.Anything, user.ID, mock.Anything).Return(nil)

	opts := game.DefaultOptions()
	opts.AnswerTimeout = time.Minute
	gm := game.NewManager(ctx, bank, store, opts)
	defer gm.Shutdown()

	view, err := gm.StartRound(ctx, game.StartParams{User: user, ChatID: 9, MessageID: 1, Category: "science", Difficulty: quiz.Easy})
	if err != nil {
		t.Fatalf("StartRound: %v", err)
	}

	var idx int
	for _, o := range view.Options {
		if o.Text == "Вода" {
			idx = o.Index
		}
	}

	if _, err := gm.Answer(ctx, user.ID, view.RoundID, idx); !errors.Is(err, dbErr) {
		t.Fatalf("Expected store error, got %v", err)
	}

	res, err := gm.Answer(ctx, user.ID, view.RoundID, idx)
	if err != nil {
		t.Fatalf("Retry answer: %v", err)
	}
	if !res.Correct || res.Progress.Score != 5 {
		t.Errorf("Unexpected result %+v", res)
	}

	store.AssertNumberOfCalls(t, "SaveProgress", 2)
}

// Очки уже записаны: ошибка сохранения сессии не открывает раунд заново
func TestAnswer_SessionFailureDoesNotScoreTwice(t *testing.T) {
	ctx := context.Background()

	bank, err := quiz.Parse(strings.NewReader(`{"questions":[
		{"category":"Наука","difficulty":"easy","question":"H2O - это?","options":["Вода","Соль"],"answer":"Вода"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	user := game.User{ID: 10, FirstName: "Маша"}
	dbErr := errors.New("connection reset")

	store := new(storemock.FakeStore)
	store.On("EnsureUser", mock.Anything, user).Return(game.Progress{}, nil)
	store.On("UsedQuestions", mock.Anything, user.ID).Return(map[string]struct{}{}, nil)
	store.On("SaveSession", mock.Anything, mock.AnythingOfType("game.SessionRecord")).Return(nil).Once()
	store.On("SaveSession", mock.Anything, mock.AnythingOfType("game.SessionRecord")).Return(dbErr).Once()
	store.On("MarkQuestionUsed", mock.Anything, user.ID, mock.AnythingOfType("string")).Return(nil)
	store.On("SaveProgress", mock.Anything, user.ID, mock.Anything).Return(nil)

	opts := game.DefaultOptions()
	opts.AnswerTimeout = time.Minute
	gm := game.NewManager(ctx, bank, store, opts)
	defer gm.Shutdown()

	view, err := gm.StartRound(ctx, game.StartParams{User: user, ChatID: 10, MessageID: 1, Category: "science", Difficulty: quiz.Easy})
	if err != nil {
		t.Fatalf("StartRound: %v", err)
	}

	var idx int
	for _, o := range view.Options {
		if o.Text == "Вода" {
			idx = o.Index
		}
	}

	res, err := gm.Answer(ctx, user.ID, view.RoundID, idx)
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if !res.Correct || res.Progress.Score != 5 || res.Progress.Answered != 1 {
		t.Errorf("Unexpected result %+v", res)
	}

	if _, err := gm.Answer(ctx, user.ID, view.RoundID, idx); !errors.Is(err, game.ErrNoActiveRound) {
		t.Errorf("Expected ErrNoActiveRound on retry, got %v", err)
	}

	store.AssertNumberOfCalls(t, "SaveProgress", 1)
	store.AssertNumberOfCalls(t, "SaveSession", 2)
}
