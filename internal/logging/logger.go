package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Elena5577/quiz-telegram-bot/internal/config"
)

// InitLogger - настраивает slog по умолчанию.
// local - текст, иначе JSON. Если задан файл, пишем и в него.
func InitLogger(conf config.LogConfig) (func(), error) {
	var (
		out     io.Writer = os.Stdout
		cleanup           = func() {}
	)

	if conf.File != "" {
		file, err := os.OpenFile(conf.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return cleanup, fmt.Errorf("open log file: %w", err)
		}
		out = io.MultiWriter(os.Stdout, file)
		cleanup = func() { _ = file.Close() }
	}

	slog.SetDefault(slog.New(NewHandler(out, conf)))
	slog.Info("=====> Start logging....", "env", conf.AppEnv, "level", conf.Level.String())

	return cleanup, nil
}

func NewHandler(out io.Writer, conf config.LogConfig) slog.Handler {
	opts := &slog.HandlerOptions{Level: conf.Level}

	var h slog.Handler
	if conf.AppEnv == "local" {
		h = slog.NewTextHandler(out, opts)
	} else {
		h = slog.NewJSONHandler(out, opts)
	}
	return &notifyHandler{Handler: h}
}
