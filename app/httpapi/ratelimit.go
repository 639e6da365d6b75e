package httpapi

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	// sweepAt is how many tracked clients trigger a sweep of idle buckets.
	sweepAt = 512
	// clientIdle is how long a client may go unseen before its bucket is dropped.
	clientIdle = 10 * time.Minute
)

type clientBucket struct {
	tokens *rate.Limiter
	seen   time.Time
}

// ClientLimiter budgets read requests per client address. Chart and export
// renders are the expensive calls, so one noisy client cannot starve the
// rest of a channel.
type ClientLimiter struct {
	mu      sync.Mutex
	buckets map[string]*clientBucket
	every   rate.Limit
	burst   int
	now     func() time.Time
}

// NewClientLimiter allows each client every requests per second with bursts
// of burst.
func NewClientLimiter(every rate.Limit, burst int) *ClientLimiter {
	return &ClientLimiter{
		buckets: make(map[string]*clientBucket),
		every:   every,
		burst:   burst,
		now:     time.Now,
	}
}

// Admit takes one token for client. When the budget is spent it returns false
// and how long the client should wait.
func (l *ClientLimiter) Admit(client string) (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if len(l.buckets) >= sweepAt {
		l.sweep(now)
	}

	b, ok := l.buckets[client]
	if !ok {
		b = &clientBucket{tokens: rate.NewLimiter(l.every, l.burst)}
		l.buckets[client] = b
	}
	b.seen = now

	if b.tokens.AllowN(now, 1) {
		return true, 0
	}
	res := b.tokens.ReserveN(now, 1)
	if !res.OK() {
		return false, clientIdle
	}
	wait := res.DelayFrom(now)
	res.CancelAt(now)
	return false, wait
}

func (l *ClientLimiter) sweep(now time.Time) {
	for client, b := range l.buckets {
		if now.Sub(b.seen) > clientIdle {
			delete(l.buckets, client)
		}
	}
}

func (l *ClientLimiter) tracked() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

// Throttle answers 429 with Retry-After once a client spends its budget.
// The router runs middleware.RealIP first, so RemoteAddr is the caller.
func Throttle(l *ClientLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			client, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				client = r.RemoteAddr
			}

			if ok, wait := l.Admit(client); !ok {
				secs := max(1, int(math.Ceil(wait.Seconds())))
				w.Header().Set("Retry-After", strconv.Itoa(secs))
				writeError(w, http.StatusTooManyRequests, "too many requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
