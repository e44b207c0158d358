package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/Elena5577/quiz-telegram-bot/internal/config"
	"github.com/Elena5577/quiz-telegram-bot/migrations"
)

type Db struct {
	*sql.DB
}

// NewDB - создание нового подключения к DB
func NewDB(ctx context.Context, conf *config.DbConfig) (*Db, error) {
	attempts := conf.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for i := 1; i <= attempts; i++ {
		sqlDB, err := sql.Open("pgx", conf.Dsn)
		if err != nil {
			return nil, fmt.Errorf("sql open: %w", err)
		}

		if conf.MaxOpenConns > 0 {
			sqlDB.SetMaxOpenConns(conf.MaxOpenConns)
		}
		if conf.MaxIdleConns > 0 {
			sqlDB.SetMaxIdleConns(conf.MaxIdleConns)
		}
		if conf.ConnMaxLifetime > 0 {
			sqlDB.SetConnMaxLifetime(conf.ConnMaxLifetime)
		}

		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		err = sqlDB.PingContext(pingCtx)
		cancel()
		if err == nil {
			return &Db{sqlDB}, nil
		}

		_ = sqlDB.Close()
		lastErr = err
		slog.Warn("Database connection failed, retrying...",
			"attempt", i, "error", err)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(conf.Delay):
		}
	}

	return nil, fmt.Errorf("could not connect to database after %d attempts: %w", attempts, lastErr)
}

// Migrate - накатывает встроенные миграции
func Migrate(db *Db) error {
	goose.SetBaseFS(migrations.FS)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(db.DB, "."); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}
