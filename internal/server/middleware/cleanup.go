package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"time"
)

// SessionCleaner удаляет истекшие сессии
type SessionCleaner interface {
	Cleanup(ctx context.Context) error
}

// SessionSweeper запускает очистку истекших сессий из потока запросов,
// не чаще одного раза за interval. Запрос очистки не ждет.
type SessionSweeper struct {
	cleaner  SessionCleaner
	logger   *slog.Logger
	now      func() time.Time
	interval time.Duration
	last     atomic.Int64 // unix nano последнего запуска
	running  atomic.Bool
	wg       sync.WaitGroup
}

// NewSessionSweeper создает sweeper
func NewSessionSweeper(cleaner SessionCleaner, interval time.Duration, logger *slog.Logger) *SessionSweeper {
	return &SessionSweeper{
		cleaner:  cleaner,
		interval: interval,
		logger:   logger,
		now:      time.Now,
	}
}

// WithClock подменяет источник времени (для тестов)
func (s *SessionSweeper) WithClock(now func() time.Time) *SessionSweeper {
	s.now = now
	return s
}

// Middleware запускает очистку и передает запрос дальше
func (s *SessionSweeper) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.trigger(r.Context())
		next.ServeHTTP(w, r)
	})
}

// Wait ждет завершения запущенной очистки
func (s *SessionSweeper) Wait() {
	s.wg.Wait()
}

func (s *SessionSweeper) trigger(ctx context.Context) {
	now := s.now().UnixNano()
	last := s.last.Load()
	if last != 0 && now-last < s.interval.Nanoseconds() {
		return
	}
	if !s.last.CompareAndSwap(last, now) {
		return
	}
	if !s.running.CompareAndSwap(false, true) {
		return
	}

	ctx = context.WithoutCancel(ctx)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer s.running.Store(false)

		if err := s.cleaner.Cleanup(ctx); err != nil {
			s.logger.WarnContext(ctx, "session cleanup failed", slog.Any("error", err))
		}
	}()
}
