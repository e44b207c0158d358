package game

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore - хранилище без БД. Прогресс живёт до перезапуска бота.
type MemoryStore struct {
	mu       sync.Mutex
	users    map[int64]*memUser
	used     map[int64]map[string]struct{}
	sessions map[int64]SessionRecord
}

type memUser struct {
	name     string
	progress Progress
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:    make(map[int64]*memUser),
		used:     make(map[int64]map[string]struct{}),
		sessions: make(map[int64]SessionRecord),
	}
}

func (s *MemoryStore) EnsureUser(ctx context.Context, user User) (Progress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[user.ID]
	if !ok {
		u = &memUser{}
		s.users[user.ID] = u
	}
	if user.FirstName != "" || user.Username != "" {
		u.name = DisplayName(&user)
	}
	return u.progress, nil
}

func (s *MemoryStore) SaveProgress(ctx context.Context, userID int64, p Progress) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		u = &memUser{}
		s.users[userID] = u
	}
	u.progress = p
	return nil
}

func (s *MemoryStore) MarkQuestionUsed(ctx context.Context, userID int64, hash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.used[userID]
	if !ok {
		set = make(map[string]struct{})
		s.used[userID] = set
	}
	set[hash] = struct{}{}
	return nil
}

func (s *MemoryStore) UsedQuestions(ctx context.Context, userID int64) (map[string]struct{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]struct{}, len(s.used[userID]))
	for h := range s.used[userID] {
		out[h] = struct{}{}
	}
	return out, nil
}

func (s *MemoryStore) SaveSession(ctx context.Context, rec SessionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[rec.UserID] = rec
	return nil
}

func (s *MemoryStore) ClearSessionMessage(ctx context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.sessions[userID]
	if !ok {
		return nil
	}
	rec.ChatID = 0
	rec.MessageID = 0
	rec.Active = false
	s.sessions[userID] = rec
	return nil
}

func (s *MemoryStore) ActiveSessions(ctx context.Context) ([]SessionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []SessionRecord
	for _, rec := range s.sessions {
		if rec.Active && rec.MessageID != 0 {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (s *MemoryStore) Top(ctx context.Context, limit int) ([]PlayerScore, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]PlayerScore, 0, len(s.users))
	for id, u := range s.users {
		out = append(out, PlayerScore{UserID: id, UserName: u.name, Value: u.progress.Score})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value > out[j].Value
		}
		return out[i].UserID < out[j].UserID
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Session - для тестов и отладки
func (s *MemoryStore) Session(userID int64) (SessionRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.sessions[userID]
	return rec, ok
}
