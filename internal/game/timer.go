package game

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

func (gm *Manager) totalTicks() int {
	n := int((gm.opts.AnswerTimeout + gm.opts.TickInterval - 1) / gm.opts.TickInterval)
	if n < 1 {
		n = 1
	}
	return n
}

// startTimer - вызывается из горутины актора, пока раунд уже создан
func (gm *Manager) startTimer(ctx context.Context, userID int64, roundID uint64) {
	if gm.ctx.Err() != nil {
		return
	}

	gm.timers.Add(1)
	go func() {
		defer gm.timers.Done()
		gm.runTimer(ctx, userID, roundID)
	}()
}

// Один тикер на раунд. Отменяется через ctx раунда при ответе или выходе.
func (gm *Manager) runTimer(ctx context.Context, userID int64, roundID uint64) {
	ticker := time.NewTicker(gm.opts.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		var expired, stale bool
		err := gm.do(userID, func(a *userActor) error {
			r := a.round
			if r == nil || r.ID != roundID {
				stale = true
				return nil
			}
			if !r.expired() {
				r.ticksLeft--
			}
			expired = r.expired()
			if !expired {
				// внутри актора: ответ не перетрётся старым тиком
				gm.getListener().OnTick(r.view(gm.opts.TickInterval))
			}
			return nil
		})
		if err != nil || stale {
			return
		}

		if !expired {
			continue
		}

		// итог показывается тоже внутри актора, до следующего вопроса
		_, err = gm.resolve(gm.ctx, userID, roundID, EventTimeout, -1, gm.getListener().OnTimeout)
		switch {
		case err == nil:
			return
		case errors.Is(err, ErrNoActiveRound), errors.Is(err, ErrStaleRound):
			// игрок успел ответить
			return
		case gm.ctx.Err() != nil:
			return
		default:
			// раунд остаётся просроченным, повтор на следующем тике
			slog.Error("timeout resolve failed", "user", userID, "round", roundID, "err", err)
		}
	}
}
