package repositories

import (
	"context"
	"database/sql"
	"testing"

	"github.com/Elena5577/quiz-telegram-bot/internal/game"
	"github.com/Elena5577/quiz-telegram-bot/internal/quiz"
)

func TestSessionRepo_SaveAndListActive(t *testing.T) {
	cleanDB(t)
	ctx := context.Background()

	ur := NewUserRepo(testDatabase)
	for _, id := range []int64{1, 2} {
		if _, err := ur.Ensure(ctx, game.User{ID: id}); err != nil {
			t.Fatalf("Ensure: %v", err)
		}
	}

	repo := NewSessionRepo(testDatabase)

	active := game.SessionRecord{UserID: 1, Category: "music", Difficulty: quiz.Hard, ChatID: 100, MessageID: 55, Active: true}
	if err := repo.Save(ctx, active); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := repo.Save(ctx, game.SessionRecord{UserID: 2, Category: "art", Difficulty: quiz.Easy, ChatID: 200, MessageID: 66}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	list, err := repo.ListActive(ctx)
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 active session, got %d", len(list))
	}
	if list[0] != active {
		t.Fatalf("expected %+v, got %+v", active, list[0])
	}

	// upsert той же строки
	active.Active = false
	if err := repo.Save(ctx, active); err != nil {
		t.Fatalf("Save again: %v", err)
	}
	list, _ = repo.ListActive(ctx)
	if len(list) != 0 {
		t.Fatalf("expected no active sessions, got %+v", list)
	}
}

func TestSessionRepo_ClearMessage(t *testing.T) {
	cleanDB(t)
	ctx := context.Background()

	if _, err := NewUserRepo(testDatabase).Ensure(ctx, game.User{ID: 3}); err != nil {
		t.Fatalf("Ensure: %v", err)
	}

	repo := NewSessionRepo(testDatabase)
	if err := repo.Save(ctx, game.SessionRecord{UserID: 3, Category: "cinema", Difficulty: quiz.Medium, ChatID: 1, MessageID: 2, Active: true}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if err := repo.ClearMessage(ctx, 3); err != nil {
		t.Fatalf("ClearMessage: %v", err)
	}

	var (
		category string
		msgID    sql.NullInt64
		isActive bool
	)
	err := testDatabase.DB.QueryRow(`
		SELECT category, message_id, active FROM sessions WHERE user_id = $1
	`, 3).Scan(&category, &msgID, &isActive)
	if err != nil {
		t.Fatalf("select session: %v", err)
	}
	if category != "cinema" {
		t.Fatalf("expected category kept, got %q", category)
	}
	if msgID.Valid || isActive {
		t.Fatalf("expected message cleared and inactive, got msg=%v active=%v", msgID, isActive)
	}
}
