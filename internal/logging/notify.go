package logging

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	tb "gopkg.in/telebot.v3"
)

// Sender - часть бота, нужная для уведомлений
type Sender interface {
	Send(to tb.Recipient, what interface{}, options ...interface{}) (*tb.Message, error)
}

type Notifier struct {
	Bot      Sender
	AdminIDs []int64

	mu   sync.Mutex
	last time.Time
	min  time.Duration
}

func NewNotifier(b Sender, admins []int64) *Notifier {
	return &Notifier{
		Bot:      b,
		AdminIDs: admins,
		min:      30 * time.Second,
	}
}

func (n *Notifier) Notify(level slog.Level, msg string, attrs ...any) {
	if n == nil || n.Bot == nil || len(n.AdminIDs) == 0 {
		return
	}

	n.mu.Lock()
	if !n.last.IsZero() && time.Since(n.last) < n.min {
		n.mu.Unlock()
		return
	}
	n.last = time.Now()
	n.mu.Unlock()

	text := fmt.Sprintf("🚨 %s: %s", level.String(), msg)
	for i := 0; i+1 < len(attrs); i += 2 {
		text += fmt.Sprintf("\n%v=%v", attrs[i], attrs[i+1])
	}

	for _, id := range n.AdminIDs {
		_, _ = n.Bot.Send(&tb.User{ID: id}, text)
	}
}

var (
	notifierMu sync.RWMutex
	globalN    *Notifier
)

func SetNotifier(n *Notifier) {
	notifierMu.Lock()
	globalN = n
	notifierMu.Unlock()
}

func Notify(level slog.Level, msg string, kv ...any) {
	notifierMu.RLock()
	n := globalN
	notifierMu.RUnlock()
	if n != nil {
		n.Notify(level, msg, kv...)
	}
}

// notifyHandler - пересылает ошибки админам, остальное отдаёт дальше
type notifyHandler struct {
	slog.Handler
	attrs []slog.Attr
}

func (h *notifyHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= slog.LevelError {
		kv := make([]any, 0, 2*(len(h.attrs)+r.NumAttrs()))
		for _, a := range h.attrs {
			kv = append(kv, a.Key, a.Value.String())
		}
		r.Attrs(func(a slog.Attr) bool {
			kv = append(kv, a.Key, a.Value.String())
			return true
		})
		// отправка в телегу не должна тормозить логирование
		go Notify(r.Level, r.Message, kv...)
	}
	return h.Handler.Handle(ctx, r)
}

func (h *notifyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &notifyHandler{
		Handler: h.Handler.WithAttrs(attrs),
		attrs:   append(append([]slog.Attr{}, h.attrs...), attrs...),
	}
}

func (h *notifyHandler) WithGroup(name string) slog.Handler {
	return &notifyHandler{Handler: h.Handler.WithGroup(name), attrs: h.attrs}
}
