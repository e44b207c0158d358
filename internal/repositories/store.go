package repositories

import (
	"context"

	"github.com/Elena5577/quiz-telegram-bot/internal/game"
)

// Store - прогресс игроков в Postgres, реализует game.ProgressStore
type Store struct {
	userRepo    *UserRepo
	usedRepo    *UsedQuestionRepo
	sessionRepo *SessionRepo
}

var _ game.ProgressStore = (*Store)(nil)

func NewStore(ur *UserRepo, qr *UsedQuestionRepo, sr *SessionRepo) *Store {
	return &Store{
		userRepo:    ur,
		usedRepo:    qr,
		sessionRepo: sr,
	}
}

func (s *Store) EnsureUser(ctx context.Context, user game.User) (game.Progress, error) {
	return s.userRepo.Ensure(ctx, user)
}

func (s *Store) SaveProgress(ctx context.Context, userID int64, p game.Progress) error {
	return s.userRepo.SaveProgress(ctx, userID, p)
}

func (s *Store) MarkQuestionUsed(ctx context.Context, userID int64, hash string) error {
	return s.usedRepo.Mark(ctx, userID, hash)
}

func (s *Store) UsedQuestions(ctx context.Context, userID int64) (map[string]struct{}, error) {
	return s.usedRepo.List(ctx, userID)
}

func (s *Store) SaveSession(ctx context.Context, rec game.SessionRecord) error {
	return s.sessionRepo.Save(ctx, rec)
}

func (s *Store) ClearSessionMessage(ctx context.Context, userID int64) error {
	return s.sessionRepo.ClearMessage(ctx, userID)
}

func (s *Store) ActiveSessions(ctx context.Context) ([]game.SessionRecord, error) {
	return s.sessionRepo.ListActive(ctx)
}

func (s *Store) Top(ctx context.Context, limit int) ([]game.PlayerScore, error) {
	return s.userRepo.Top(ctx, limit)
}
