package bot

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// visitor holds the rate limiter and the last time a sender was seen.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// limiter keys token buckets by Telegram sender ID so one chatty user
// cannot starve the update loop.
type limiter struct {
	mu       sync.Mutex
	visitors map[int64]*visitor
	rate     rate.Limit
	burst    int
}

func newLimiter(r rate.Limit, b int) *limiter {
	l := &limiter{
		visitors: make(map[int64]*visitor),
		rate:     r,
		burst:    b,
	}
	go l.cleanup()
	return l
}

func (l *limiter) Allow(senderID int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	v, exists := l.visitors[senderID]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.visitors[senderID] = v
	}
	v.lastSeen = time.Now()
	return v.limiter.Allow()
}

// cleanup removes idle entries so the visitor map does not grow forever.
func (l *limiter) cleanup() {
	for {
		time.Sleep(time.Minute)

		l.mu.Lock()
		for id, v := range l.visitors {
			if time.Since(v.lastSeen) > 3*time.Minute {
				delete(l.visitors, id)
			}
		}
		l.mu.Unlock()
	}
}
