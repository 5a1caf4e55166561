package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/iudanet/budgetkeeper/internal/server/handlers"
	"github.com/iudanet/budgetkeeper/pkg/api"
)

// RateLimiter ограничивает число запросов с одного ключа (IP) за окно.
// Счетчик ключа сбрасывается целиком, когда окно истекло.
type RateLimiter struct {
	buckets  map[string]*bucket
	logger   *slog.Logger
	now      func() time.Time
	cleanupC chan struct{}
	rate     int
	window   time.Duration
	mu       sync.RWMutex
	stopOnce sync.Once
}

// bucket представляет bucket для конкретного IP/ключа
type bucket struct {
	lastRefill time.Time
	tokens     int
	mu         sync.Mutex
}

// NewRateLimiter создает limiter и запускает фоновую очистку неактивных ключей.
// rate - максимальное количество запросов за window.
func NewRateLimiter(rate int, window time.Duration, logger *slog.Logger) *RateLimiter {
	rl := &RateLimiter{
		buckets:  make(map[string]*bucket),
		rate:     rate,
		window:   window,
		logger:   logger,
		now:      time.Now,
		cleanupC: make(chan struct{}),
	}

	go rl.cleanup()

	return rl
}

// WithClock подменяет источник времени (для тестов)
func (rl *RateLimiter) WithClock(now func() time.Time) *RateLimiter {
	rl.now = now
	return rl
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(rl.window * 2)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanupOldBuckets()
		case <-rl.cleanupC:
			return
		}
	}
}

// cleanupOldBuckets удаляет buckets, которые не использовались дольше двух окон
func (rl *RateLimiter) cleanupOldBuckets() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for key, b := range rl.buckets {
		b.mu.Lock()
		if now.Sub(b.lastRefill) > rl.window*2 {
			delete(rl.buckets, key)
		}
		b.mu.Unlock()
	}
}

// Stop останавливает cleanup goroutine. Повторный вызов безопасен.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.cleanupC) })
}

// Allow расходует один запрос ключа и возвращает остаток.
// ok=false, если лимит окна исчерпан.
func (rl *RateLimiter) Allow(key string) (remaining int, ok bool) {
	rl.mu.RLock()
	b, exists := rl.buckets[key]
	rl.mu.RUnlock()

	if !exists {
		rl.mu.Lock()
		// ключ мог появиться, пока ждали блокировку
		if b, exists = rl.buckets[key]; !exists {
			b = &bucket{tokens: rl.rate, lastRefill: rl.now()}
			rl.buckets[key] = b
		}
		rl.mu.Unlock()
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	now := rl.now()
	if now.Sub(b.lastRefill) >= rl.window {
		b.tokens = rl.rate
		b.lastRefill = now
	}

	if b.tokens > 0 {
		b.tokens--
		return b.tokens, true
	}

	return 0, false
}

// Limit number of requests per window
func (rl *RateLimiter) Limit() int {
	return rl.rate
}

// RateLimit ограничивает частоту запросов по IP клиента.
// Отдает заголовки RateLimit-Limit и RateLimit-Remaining.
func RateLimit(limiter *RateLimiter, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !allow(limiter, logger, w, r) {
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// PathRateLimit отдельный лимит для метода и пути, например "POST /api/v1/users/login"
type PathRateLimit struct {
	Limiter *RateLimiter
	Method  string
	Path    string
}

// RateLimitByPath применяет лимит пути, если он задан, и limiter по умолчанию
// для остальных запросов
func RateLimitByPath(limits []PathRateLimit, defaultLimiter *RateLimiter, logger *slog.Logger) func(http.Handler) http.Handler {
	byPath := make(map[string]*RateLimiter, len(limits))
	for _, limit := range limits {
		byPath[limit.Method+" "+limit.Path] = limit.Limiter
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			limiter, ok := byPath[r.Method+" "+r.URL.Path]
			if !ok {
				limiter = defaultLimiter
			}
			if !allow(limiter, logger, w, r) {
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func allow(limiter *RateLimiter, logger *slog.Logger, w http.ResponseWriter, r *http.Request) bool {
	key := getClientIP(r)

	remaining, ok := limiter.Allow(key)
	w.Header().Set("RateLimit-Limit", strconv.Itoa(limiter.Limit()))
	w.Header().Set("RateLimit-Remaining", strconv.Itoa(remaining))
	if ok {
		return true
	}

	logger.WarnContext(r.Context(), "Rate limit exceeded",
		slog.String("ip", key),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
	)

	w.Header().Set("Retry-After", strconv.Itoa(int(limiter.window.Seconds())))
	_ = handlers.WriteJSON(w, http.StatusTooManyRequests, api.ErrorResponse{
		Error:   http.StatusText(http.StatusTooManyRequests),
		Message: "Too many requests, please try again later.",
	})
	return false
}

// getClientIP извлекает IP адрес клиента из запроса.
// Проверяет заголовки X-Forwarded-For и X-Real-IP для прокси.
func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		// первый IP в списке - реальный клиент
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
