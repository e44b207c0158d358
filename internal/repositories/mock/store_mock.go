package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Elena5577/quiz-telegram-bot/internal/game"
)

// FakeStore - мок game.ProgressStore
type FakeStore struct {
	mock.Mock
}

var _ game.ProgressStore = (*FakeStore)(nil)

func (f *FakeStore) EnsureUser(ctx context.Context, user game.User) (game.Progress, error) {
	args := f.Called(ctx, user)
	return args.Get(0).(game.Progress), args.Error(1)
}

func (f *FakeStore) SaveProgress(ctx context.Context, userID int64, p game.Progress) error {
	return f.Called(ctx, userID, p).Error(0)
}

func (f *FakeStore) MarkQuestionUsed(ctx context.Context, userID int64, hash string) error {
	return f.Called(ctx, userID, hash).Error(0)
}

func (f *FakeStore) UsedQuestions(ctx context.Context, userID int64) (map[string]struct{}, error) {
	args := f.Called(ctx, userID)
	used, _ := args.Get(0).(map[string]struct{})
	return used, args.Error(1)
}

func (f *FakeStore) SaveSession(ctx context.Context, s game.SessionRecord) error {
	return f.Called(ctx, s).Error(0)
}

func (f *FakeStore) ClearSessionMessage(ctx context.Context, userID int64) error {
	return f.Called(ctx, userID).Error(0)
}

func (f *FakeStore) ActiveSessions(ctx context.Context) ([]game.SessionRecord, error) {
	args := f.Called(ctx)
	recs, _ := args.Get(0).([]game.SessionRecord)
	return recs, args.Error(1)
}

func (f *FakeStore) Top(ctx context.Context, limit int) ([]game.PlayerScore, error) {
	args := f.Called(ctx, limit)
	top, _ := args.Get(0).([]game.PlayerScore)
	return top, args.Error(1)
}
