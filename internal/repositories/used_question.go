package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Elena5577/quiz-telegram-bot/internal/db"
)

type UsedQuestionRepo struct {
	db *sql.DB
}

func NewUsedQuestionRepo(db *db.Db) *UsedQuestionRepo {
	return &UsedQuestionRepo{
		db: db.DB,
	}
}

// Mark - повторная отметка не ошибка
func (repo *UsedQuestionRepo) Mark(ctx context.Context, userID int64, hash string) error {
	_, err := repo.db.ExecContext(ctx, `
INSERT INTO used_questions (user_id, qhash, used_at)
VALUES ($1, $2, now())
ON CONFLICT (user_id, qhash) DO NOTHING
`, userID, hash)
	if err != nil {
		return fmt.Errorf("used_questions mark: %w", err)
	}
	return nil
}

func (repo *UsedQuestionRepo) List(ctx context.Context, userID int64) (map[string]struct{}, error) {
	rows, err := repo.db.QueryContext(ctx, `
SELECT qhash FROM used_questions WHERE user_id = $1
`, userID)
	if err != nil {
		return nil, fmt.Errorf("used_questions list: %w", err)
	}
	defer rows.Close()

	out := make(map[string]struct{})
	for rows.Next() {
		var h string
		if err := rows.Scan(&h); err != nil {
			return nil, fmt.Errorf("used_questions scan: %w", err)
		}
		out[h] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("used_questions rows: %w", err)
	}
	return out, nil
}
