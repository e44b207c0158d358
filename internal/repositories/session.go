package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Elena5577/quiz-telegram-bot/internal/db"
	"github.com/Elena5577/quiz-telegram-bot/internal/game"
	"github.com/Elena5577/quiz-telegram-bot/internal/quiz"
)

// SessionRepo - одна строка на игрока: последний выбор и сообщение с вопросом
type SessionRepo struct {
	db *sql.DB
}

func NewSessionRepo(db *db.Db) *SessionRepo {
	return &SessionRepo{
		db: db.DB,
	}
}

func (repo *SessionRepo) Save(ctx context.Context, s game.SessionRecord) error {
	_, err := repo.db.ExecContext(ctx, `
INSERT INTO sessions (user_id, category, difficulty, message_chat, message_id, active, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, now())
ON CONFLICT (user_id) DO UPDATE
SET category     = EXCLUDED.category,
    difficulty   = EXCLUDED.difficulty,
    message_chat = EXCLUDED.message_chat,
    message_id   = EXCLUDED.message_id,
    active       = EXCLUDED.active,
    updated_at   = now()
`, s.UserID, nullifyEmpty(s.Category), nullifyEmpty(string(s.Difficulty)),
		nullifyZero(s.ChatID), nullifyZero(s.MessageID), s.Active)
	if err != nil {
		return fmt.Errorf("sessions save: %w", err)
	}
	return nil
}

// ClearMessage - забыть сообщение, выбор категории остаётся
func (repo *SessionRepo) ClearMessage(ctx context.Context, userID int64) error {
	_, err := repo.db.ExecContext(ctx, `
UPDATE sessions
SET message_chat = NULL,
    message_id   = NULL,
    active       = FALSE,
    updated_at   = now()
WHERE user_id = $1
`, userID)
	if err != nil {
		return fmt.Errorf("sessions clear message: %w", err)
	}
	return nil
}

// ListActive - вопросы без ответа, например после перезапуска
func (repo *SessionRepo) ListActive(ctx context.Context) ([]game.SessionRecord, error) {
	rows, err := repo.db.QueryContext(ctx, `
SELECT user_id, COALESCE(category, ''), COALESCE(difficulty, ''), message_chat, message_id
FROM sessions
WHERE active AND message_id IS NOT NULL
ORDER BY user_id
`)
	if err != nil {
		return nil, fmt.Errorf("sessions list active: %w", err)
	}
	defer rows.Close()

	var out []game.SessionRecord
	for rows.Next() {
		var (
			rec  game.SessionRecord
			diff string
			chat sql.NullInt64
			msg  sql.NullInt64
		)
		if err := rows.Scan(&rec.UserID, &rec.Category, &diff, &chat, &msg); err != nil {
			return nil, fmt.Errorf("sessions scan: %w", err)
		}
		rec.Difficulty = quiz.Difficulty(diff)
		rec.ChatID = chat.Int64
		rec.MessageID = int(msg.Int64)
		rec.Active = true
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sessions rows: %w", err)
	}
	return out, nil
}
