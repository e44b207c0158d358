package repositories

import (
	"context"
	"testing"

	"github.com/Elena5577/quiz-telegram-bot/internal/game"
)

func TestUsedQuestionRepo_MarkIdempotent(t *testing.T) {
	cleanDB(t)
	ctx := context.Background()

	if _, err := NewUserRepo(testDatabase).Ensure(ctx, game.User{ID: 7}); err != nil {
		t.Fatalf("Ensure: %v", err)
	}

	repo := NewUsedQuestionRepo(testDatabase)
	for _, h := range []string{"aaa", "bbb", "aaa"} {
		if err := repo.Mark(ctx, 7, h); err != nil {
			t.Fatalf("Mark %s: %v", h, err)
		}
	}

	used, err := repo.List(ctx, 7)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(used) != 2 {
		t.Fatalf("expected 2 hashes, got %d", len(used))
	}
	if _, ok := used["bbb"]; !ok {
		t.Fatalf("expected bbb in %v", used)
	}

	other, err := repo.List(ctx, 8)
	if err != nil {
		t.Fatalf("List other: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("expected empty set for other user, got %v", other)
	}
}
