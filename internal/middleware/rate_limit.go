package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/taemotherlode01/ministore-api/internal/respond"
)

// RateLimiter allows each client Max requests per Window, keyed by remote IP.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*rate.Limiter
	limit   rate.Limit
	burst   int
	window  time.Duration
}

// NewRateLimiter refills one token every window/max, with a burst of max.
func NewRateLimiter(max int, window time.Duration) *RateLimiter {
	if max < 1 {
		max = 1
	}
	return &RateLimiter{
		clients: make(map[string]*rate.Limiter),
		limit:   rate.Every(window / time.Duration(max)),
		burst:   max,
		window:  window,
	}
}

func (l *RateLimiter) limiter(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	lim, ok := l.clients[key]
	if !ok {
		lim = rate.NewLimiter(l.limit, l.burst)
		l.clients[key] = lim
	}
	return lim
}

// Allow reports whether the client identified by key may proceed now.
func (l *RateLimiter) Allow(key string) bool {
	return l.limiter(key).Allow()
}

// Prune drops limiters that have refilled completely; they carry no state.
func (l *RateLimiter) Prune() {
	l.mu.Lock()
	defer l.mu.Unlock()
	for k, lim := range l.clients {
		if lim.Tokens() >= float64(l.burst) {
			delete(l.clients, k)
		}
	}
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// Middleware answers 429 once a client exceeds its budget.
func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.Allow(clientKey(r)) {
			w.Header().Set("Retry-After", strconv.Itoa(int(l.window.Seconds())))
			respond.Message(w, http.StatusTooManyRequests, "Too many requests, please try again later!")
			return
		}
		next.ServeHTTP(w, r)
	})
}
