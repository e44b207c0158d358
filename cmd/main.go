package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Elena5577/quiz-telegram-bot/internal/bot/middleware"
	"github.com/Elena5577/quiz-telegram-bot/internal/config"
	"github.com/Elena5577/quiz-telegram-bot/internal/db"
	"github.com/Elena5577/quiz-telegram-bot/internal/game"
	"github.com/Elena5577/quiz-telegram-bot/internal/handlers"
	"github.com/Elena5577/quiz-telegram-bot/internal/logging"
	"github.com/Elena5577/quiz-telegram-bot/internal/quiz"
	"github.com/Elena5577/quiz-telegram-bot/internal/repositories"

	tb "gopkg.in/telebot.v3"
)

func main() {
	if err := run(); err != nil {
		slog.Error("bot stopped with error", "err", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conf, err := config.LoadConfig()
	if err != nil {
		return err
	}

	closeLog, err := logging.InitLogger(conf.Logger)
	if err != nil {
		return err
	}
	defer closeLog()

	// Хранилище: Postgres если задан DSN, иначе память
	var store game.ProgressStore
	if conf.Db.Enabled() {
		database, err := db.NewDB(ctx, &conf.Db)
		if err != nil {
			return err
		}
		defer database.Close()

		if err := db.Migrate(database); err != nil {
			return err
		}

		store = repositories.NewStore(
			repositories.NewUserRepo(database),
			repositories.NewUsedQuestionRepo(database),
			repositories.NewSessionRepo(database),
		)
		slog.Info("storage: postgres")
	} else {
		store = game.NewMemoryStore()
		slog.Warn("storage: memory, progress is lost on restart")
	}

	bank, err := quiz.LoadOrDefault(conf.Quiz.QuestionsFile)
	if err != nil {
		return err
	}

	// Tg settings
	pref := tb.Settings{
		Token:  conf.TG.Token,
		Poller: middleware.DropOldMessages(conf.Bot.DropOldMessagesAfter),
		OnError: func(err error, c tb.Context) {
			attrs := []any{"err", err}
			if c != nil && c.Sender() != nil {
				attrs = append(attrs, "user", c.Sender().ID)
			}
			slog.Error("telegram handler error", attrs...)
		},
	}

	b, err := tb.NewBot(pref)
	if err != nil {
		return err
	}

	logging.SetNotifier(logging.NewNotifier(b, conf.Admin.AdminsID))

	opts := game.DefaultOptions()
	opts.AnswerTimeout = conf.Quiz.AnswerTimeout
	opts.TickInterval = conf.Quiz.TickInterval
	opts.Rules.HintCost = conf.Quiz.HintCost

	gm := game.NewManager(ctx, bank, store, opts)

	h := handlers.NewHandlers(b, gm, bank, conf)
	h.RegisterAll()

	if err := b.SetCommands(handlers.Commands()); err != nil {
		slog.Warn("cannot set bot commands", "err", err)
	}

	h.Quiz.RecoverInterrupted(ctx)

	go func() {
		<-ctx.Done()
		slog.Info("shutting down...")
		b.Stop()
	}()

	slog.Info("Bot starts...", "username", b.Me.Username, "questions", bank.Size())
	b.Start()

	gm.Shutdown()
	slog.Info("bot stopped")
	return nil
}
