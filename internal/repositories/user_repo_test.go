package repositories

import (
	"context"
	"testing"

	"github.com/Elena5577/quiz-telegram-bot/internal/game"
)

func TestUserRepo_Ensure(t *testing.T) {
	cleanDB(t)
	ctx := context.Background()
	repo := NewUserRepo(testDatabase)

	p, err := repo.Ensure(ctx, game.User{ID: 1001, Username: "u", FirstName: "F"})
	if err != nil {
		t.Fatalf("Ensure: %v", err)
	}
	if p != (game.Progress{}) {
		t.Fatalf("expected zero progress, got %+v", p)
	}

	// пустые имена не затирают сохранённые
	if _, err := repo.Ensure(ctx, game.User{ID: 1001}); err != nil {
		t.Fatalf("Ensure again: %v", err)
	}

	var cnt int
	if err := testDatabase.DB.QueryRow(`SELECT COUNT(*) FROM users WHERE user_id=$1`, 1001).Scan(&cnt); err != nil {
		t.Fatalf("count users: %v", err)
	}
	if cnt != 1 {
		t.Fatalf("expected 1 user row, got %d", cnt)
	}

	var first string
	if err := testDatabase.DB.QueryRow(`SELECT first_name FROM users WHERE user_id=$1`, 1001).Scan(&first); err != nil {
		t.Fatalf("select first_name: %v", err)
	}
	if first != "F" {
		t.Fatalf("expected first_name=F, got %q", first)
	}
}

func TestUserRepo_SaveProgress(t *testing.T) {
	cleanDB(t)
	ctx := context.Background()
	repo := NewUserRepo(testDatabase)

	want := game.Progress{Score: -5, Streak: 0, Answered: 4, Correct: 1}

	if err := repo.SaveProgress(ctx, 2002, want); err == nil {
		t.Fatalf("expected error when user does not exist")
	}

	if _, err := repo.Ensure(ctx, game.User{ID: 2002}); err != nil {
		t.Fatalf("Ensure: %v", err)
	}
	if err := repo.SaveProgress(ctx, 2002, want); err != nil {
		t.Fatalf("SaveProgress: %v", err)
	}

	got, err := repo.Ensure(ctx, game.User{ID: 2002})
	if err != nil {
		t.Fatalf("Ensure: %v", err)
	}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestUserRepo_Top(t *testing.T) {
	cleanDB(t)
	ctx := context.Background()
	repo := NewUserRepo(testDatabase)

	users := []struct {
		user  game.User
		score int
	}{
		{game.User{ID: 1, FirstName: "Аня"}, 10},
		{game.User{ID: 2, Username: "bob"}, 30},
		{game.User{ID: 3}, 10},
		{game.User{ID: 4, FirstName: "Дима"}, 5},
	}
	for _, u := range users {
		if _, err := repo.Ensure(ctx, u.user); err != nil {
			t.Fatalf("Ensure %d: %v", u.user.ID, err)
		}
		if err := repo.SaveProgress(ctx, u.user.ID, game.Progress{Score: u.score}); err != nil {
			t.Fatalf("SaveProgress %d: %v", u.user.ID, err)
		}
	}

	top, err := repo.Top(ctx, 3)
	if err != nil {
		t.Fatalf("Top: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(top))
	}

	wantIDs := []int64{2, 1, 3}
	for i, id := range wantIDs {
		if top[i].UserID != id {
			t.Fatalf("position %d: expected user %d, got %d", i, id, top[i].UserID)
		}
	}
	if top[0].UserName != "@bob" || top[1].UserName != "Аня" {
		t.Fatalf("unexpected names: %+v", top)
	}
}
