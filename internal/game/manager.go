package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Elena5577/quiz-telegram-bot/internal/quiz"
)

var (
	ErrNoActiveRound   = errors.New("no active round")
	ErrStaleRound      = errors.New("stale round")
	ErrHintUsed        = errors.New("hint already used")
	ErrNoQuestionsLeft = errors.New("no questions left")
	ErrUnknownCategory = errors.New("unknown category")
)

type Options struct {
	AnswerTimeout time.Duration
	TickInterval  time.Duration
	Rules         Rules
}

func DefaultOptions() Options {
	return Options{
		AnswerTimeout: 30 * time.Second,
		TickInterval:  time.Second,
		Rules:         DefaultRules(),
	}
}

// TimerListener - получает тики обратного отсчёта и истечение времени.
// Оба метода вызываются из горутины игрока, обращаться к Manager из них нельзя.
type TimerListener interface {
	OnTick(view RoundView)
	OnTimeout(res Result)
}

type noopListener struct{}

func (noopListener) OnTick(RoundView) {}
func (noopListener) OnTimeout(Result) {}

// Manager - управляет раундами всех игроков
type Manager struct {
	actors map[int64]*userActor
	mu     sync.Mutex

	questions QuestionSource
	store     ProgressStore
	opts      Options
	listener  TimerListener

	ctx    context.Context
	stop   context.CancelFunc
	timers sync.WaitGroup
	nextID atomic.Uint64

	shuffle func(n int, swap func(i, j int))
	intn    func(n int) int
}

func NewManager(ctx context.Context, questions QuestionSource, store ProgressStore, opts Options) *Manager {
	if store == nil {
		store = NewMemoryStore()
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = time.Second
	}
	if opts.AnswerTimeout <= 0 {
		opts.AnswerTimeout = 30 * time.Second
	}

	ctx, stop := context.WithCancel(ctx)

	return &Manager{
		actors:    make(map[int64]*userActor),
		questions: questions,
		store:     store,
		opts:      opts,
		listener:  noopListener{},
		ctx:       ctx,
		stop:      stop,
		shuffle:   rand.Shuffle,
		intn:      rand.Intn,
	}
}

func (gm *Manager) SetListener(l TimerListener) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if l == nil {
		l = noopListener{}
	}
	gm.listener = l
}

func (gm *Manager) getListener() TimerListener {
	gm.mu.Lock()
	defer gm.mu.Unlock()
	return gm.listener
}

func (gm *Manager) Rules() Rules {
	return gm.opts.Rules
}

func (gm *Manager) AnswerTimeout() time.Duration {
	return gm.opts.AnswerTimeout
}

// Механизм очереди во избежание data race
func (gm *Manager) do(userID int64, fn func(a *userActor) error) error {
	gm.mu.Lock()
	a, ok := gm.actors[userID]
	if !ok {
		a = newUserActor(userID)
		gm.actors[userID] = a
	}
	gm.mu.Unlock()

	reply := make(chan error, 1)
	a.inbox <- actorMsg{fn: fn, reply: reply}
	return <-reply
}

type StartParams struct {
	User       User
	ChatID     int64
	MessageID  int
	Category   string
	Difficulty quiz.Difficulty
}

// StartRound - выдать игроку новый вопрос. Текущий раунд снимается без очков.
func (gm *Manager) StartRound(ctx context.Context, p StartParams) (RoundView, error) {
	if _, ok := quiz.CategoryBySlug(p.Category); !ok {
		return RoundView{}, ErrUnknownCategory
	}
	diff, ok := quiz.ParseDifficulty(string(p.Difficulty))
	if !ok {
		return RoundView{}, ErrUnknownCategory
	}
	p.Difficulty = diff

	candidates := gm.questions.Questions(p.Category, p.Difficulty)

	var view RoundView
	err := gm.do(p.User.ID, func(a *userActor) error {
		if _, err := gm.store.EnsureUser(ctx, p.User); err != nil {
			return err
		}

		used, err := gm.store.UsedQuestions(ctx, p.User.ID)
		if err != nil {
			return err
		}

		gm.shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})

		var chosen *quiz.Question
		for i := range candidates {
			if _, ok := used[candidates[i].Hash()]; !ok {
				chosen = &candidates[i]
				break
			}
		}

		a.dropRound()

		if chosen == nil {
			_ = a.fsm.Trigger(EventReset)
			if err := gm.store.ClearSessionMessage(ctx, p.User.ID); err != nil {
				return err
			}
			return ErrNoQuestionsLeft
		}

		options := slices.Clone(chosen.Options)
		gm.shuffle(len(options), func(i, j int) {
			options[i], options[j] = options[j], options[i]
		})
		visible := make([]int, len(options))
		for i := range visible {
			visible[i] = i
		}

		roundCtx, cancel := context.WithCancel(gm.ctx)
		r := &Round{
			ID:        gm.nextID.Add(1),
			User:      p.User,
			Question:  *chosen,
			Options:   options,
			Visible:   visible,
			ChatID:    p.ChatID,
			MessageID: p.MessageID,
			ticksLeft: gm.totalTicks(),
			cancel:    cancel,
		}

		err = gm.store.SaveSession(ctx, SessionRecord{
			UserID:     p.User.ID,
			Category:   p.Category,
			Difficulty: p.Difficulty,
			ChatID:     p.ChatID,
			MessageID:  p.MessageID,
			Active:     true,
		})
		if err != nil {
			cancel()
			return err
		}

		if err := a.fsm.Trigger(EventAsk); err != nil {
			cancel()
			return err
		}

		a.round = r
		view = r.view(gm.opts.TickInterval)
		gm.startTimer(roundCtx, p.User.ID, r.ID)

		slog.Debug("round started",
			"user", p.User.ID, "round", r.ID, "category", p.Category, "difficulty", p.Difficulty)
		return nil
	})

	return view, err
}

// Answer - ответ игрока. option - индекс варианта из OptionView.
func (gm *Manager) Answer(ctx context.Context, userID int64, roundID uint64, option int) (Result, error) {
	return gm.resolve(ctx, userID, roundID, EventAnswer, option, nil)
}

// resolve - единственное место, где раунд завершается с начислением очков.
// done вызывается из горутины игрока сразу после завершения раунда.
func (gm *Manager) resolve(ctx context.Context, userID int64, roundID uint64, ev Event, option int, done func(Result)) (Result, error) {
	var res Result

	err := gm.do(userID, func(a *userActor) error {
		r := a.round
		if r == nil || !a.fsm.Can(ev) {
			return ErrNoActiveRound
		}
		if r.ID != roundID {
			return ErrStaleRound
		}
		if ev == EventAnswer && (r.expired() || !r.isVisible(option)) {
			return ErrStaleRound
		}

		correct := ev == EventAnswer && r.isCorrect(option)

		if err := gm.store.MarkQuestionUsed(ctx, userID, r.Question.Hash()); err != nil {
			return err
		}

		progress, err := gm.store.EnsureUser(ctx, r.User)
		if err != nil {
			return err
		}

		out := gm.opts.Rules.Apply(progress, r.Question.Difficulty, correct)
		if err := gm.store.SaveProgress(ctx, userID, out.Progress); err != nil {
			return err
		}

		// очки записаны: дальше раунд закрывается при любом исходе
		a.dropRound()
		_ = a.fsm.Trigger(ev) // Can проверен выше

		// выбор категории/сложности остаётся для кнопки "Следующий вопрос"
		err = gm.store.SaveSession(ctx, SessionRecord{
			UserID:     userID,
			Category:   r.Question.Category,
			Difficulty: r.Question.Difficulty,
			ChatID:     r.ChatID,
			MessageID:  r.MessageID,
		})
		if err != nil {
			slog.Error("save session after answer", "user", userID, "round", roundID, "err", err)
		}

		res = Result{
			UserID:        userID,
			Category:      r.Question.Category,
			Difficulty:    r.Question.Difficulty,
			Correct:       correct,
			TimedOut:      ev == EventTimeout,
			Gained:        out.Gained,
			Bonus:         out.Bonus,
			Progress:      out.Progress,
			CorrectAnswer: r.Question.Answer,
			ChatID:        r.ChatID,
			MessageID:     r.MessageID,
		}
		if done != nil {
			done(res)
		}
		return nil
	})

	return res, err
}

// UseHint - убирает неверные варианты, кроме одного. Один раз за вопрос.
func (gm *Manager) UseHint(ctx context.Context, userID int64, roundID uint64) (RoundView, error) {
	var view RoundView

	err := gm.do(userID, func(a *userActor) error {
		r := a.round
		if r == nil || !a.fsm.Can(EventHint) {
			return ErrNoActiveRound
		}
		if r.ID != roundID || r.expired() {
			return ErrStaleRound
		}
		if r.HintUsed {
			return ErrHintUsed
		}

		progress, err := gm.store.EnsureUser(ctx, r.User)
		if err != nil {
			return err
		}
		if err := gm.store.SaveProgress(ctx, userID, gm.opts.Rules.ChargeHint(progress)); err != nil {
			return err
		}

		correct := r.correctIndex()
		var wrong []int
		for _, i := range r.Visible {
			if i != correct {
				wrong = append(wrong, i)
			}
		}

		keep := []int{correct}
		if len(wrong) > 0 {
			keep = append(keep, wrong[gm.intn(len(wrong))])
		}
		gm.shuffle(len(keep), func(i, j int) {
			keep[i], keep[j] = keep[j], keep[i]
		})

		if err := a.fsm.Trigger(EventHint); err != nil {
			return err
		}

		r.Visible = keep
		r.HintUsed = true
		view = r.view(gm.opts.TickInterval)
		return nil
	})

	return view, err
}

// Leave - выход в меню: таймер останавливается, очки не начисляются
func (gm *Manager) Leave(ctx context.Context, user User) (Progress, error) {
	var progress Progress

	err := gm.do(user.ID, func(a *userActor) error {
		a.dropRound()
		_ = a.fsm.Trigger(EventReset)

		if err := gm.store.ClearSessionMessage(ctx, user.ID); err != nil {
			return err
		}

		p, err := gm.store.EnsureUser(ctx, user)
		if err != nil {
			return err
		}
		progress = p
		return nil
	})

	return progress, err
}

func (gm *Manager) Progress(ctx context.Context, user User) (Progress, error) {
	p, err := gm.store.EnsureUser(ctx, user)
	if err != nil {
		return Progress{}, fmt.Errorf("progress of %d: %w", user.ID, err)
	}
	return p, nil
}

func (gm *Manager) Leaderboard(ctx context.Context, limit int) ([]PlayerScore, error) {
	return gm.store.Top(ctx, limit)
}

// InterruptedSessions - вопросы, оставшиеся без ответа после прошлого запуска
func (gm *Manager) InterruptedSessions(ctx context.Context) ([]SessionRecord, error) {
	return gm.store.ActiveSessions(ctx)
}

// Shutdown - останавливает все таймеры и ждёт их завершения
func (gm *Manager) Shutdown() {
	gm.stop()
	gm.timers.Wait()
}
