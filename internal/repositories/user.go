package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Elena5577/quiz-telegram-bot/internal/db"
	"github.com/Elena5577/quiz-telegram-bot/internal/game"
)

type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *db.Db) *UserRepo {
	return &UserRepo{
		db: db.DB,
	}
}

// Ensure - создаёт игрока или обновляет имя, возвращает текущий прогресс.
// Пустые имена не затирают сохранённые.
func (repo *UserRepo) Ensure(ctx context.Context, user game.User) (game.Progress, error) {
	var p game.Progress
	err := repo.db.QueryRowContext(ctx, `
INSERT INTO users (user_id, username, first_name, created_at, updated_at)
VALUES ($1, $2, $3, now(), now())
ON CONFLICT (user_id) DO UPDATE
SET username   = COALESCE(EXCLUDED.username, users.username),
    first_name = COALESCE(EXCLUDED.first_name, users.first_name),
    updated_at = now()
RETURNING score, streak, answered, correct
`, user.ID, nullifyEmpty(user.Username), nullifyEmpty(user.FirstName)).
		Scan(&p.Score, &p.Streak, &p.Answered, &p.Correct)
	if err != nil {
		return game.Progress{}, fmt.Errorf("users ensure: %w", err)
	}
	return p, nil
}

func (repo *UserRepo) SaveProgress(ctx context.Context, userID int64, p game.Progress) error {
	res, err := repo.db.ExecContext(ctx, `
UPDATE users
SET score      = $2,
    streak     = $3,
    answered   = $4,
    correct    = $5,
    updated_at = now()
WHERE user_id = $1
`, userID, p.Score, p.Streak, p.Answered, p.Correct)
	if err != nil {
		return fmt.Errorf("users save progress: %w", err)
	}

	return ensureRowsAffected(res,
		fmt.Sprintf("users save progress: user_id=%d not found", userID))
}

// Top - лучшие игроки по очкам
func (repo *UserRepo) Top(ctx context.Context, limit int) ([]game.PlayerScore, error) {
	rows, err := repo.db.QueryContext(ctx, `
SELECT user_id, COALESCE(first_name, ''), COALESCE(username, ''), score
FROM users
ORDER BY score DESC, user_id
LIMIT $1
`, limit)
	if err != nil {
		return nil, fmt.Errorf("users top: %w", err)
	}
	defer rows.Close()

	var out []game.PlayerScore
	for rows.Next() {
		var (
			u     game.User
			score int
		)
		if err := rows.Scan(&u.ID, &u.FirstName, &u.Username, &score); err != nil {
			return nil, fmt.Errorf("users top scan: %w", err)
		}
		out = append(out, game.PlayerScore{
			UserID:   u.ID,
			UserName: game.DisplayName(&u),
			Value:    score,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("users top rows: %w", err)
	}
	return out, nil
}
