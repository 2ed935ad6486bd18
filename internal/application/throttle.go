package application

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// SubmissionThrottle gates contact-form submissions per sender address using
// a sliding window held in process memory. Each normalized address owns a
// token-bucket limiter that refills one token per window, so at most one
// submission per address passes per window even under concurrent requests.
// State is lost on restart, which is acceptable for a soft anti-spam measure,
// and is not shared across instances; a multi-instance deployment would need
// a shared keyed store instead.
type SubmissionThrottle struct {
	mu      sync.Mutex
	entries map[string]*throttleEntry
	window  time.Duration
	idleTTL time.Duration
}

type throttleEntry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// NewSubmissionThrottle creates a throttle with the given window between
// accepted submissions per sender. Idle entries are evicted after at least
// two windows (15 minutes minimum) so eviction can never re-open a window
// that has not already elapsed.
func NewSubmissionThrottle(window time.Duration) *SubmissionThrottle {
	idleTTL := 2 * window
	if idleTTL < 15*time.Minute {
		idleTTL = 15 * time.Minute
	}

	return &SubmissionThrottle{
		entries: make(map[string]*throttleEntry),
		window:  window,
		idleTTL: idleTTL,
	}
}

// Attempt records a submission attempt for the sender at the given instant.
// It returns nil when the submission is allowed, consuming the sender's
// token. When the window has not elapsed it returns ErrRateLimited together
// with the remaining wait. The whole decision runs under the throttle's
// mutex, so concurrent attempts for one sender serialize and at most one
// passes per window; a rejected attempt never touches the limiter, so
// follow-up attempts are still measured against the last accepted
// submission.
func (t *SubmissionThrottle) Attempt(senderEmail string, now time.Time) (time.Duration, error) {
	key := NormalizeEmail(senderEmail)

	t.mu.Lock()
	defer t.mu.Unlock()

	ent, ok := t.entries[key]
	if !ok {
		// A fresh limiter starts with a full token, so a first-ever sender
		// is always allowed.
		ent = &throttleEntry{lim: rate.NewLimiter(rate.Every(t.window), 1)}
		t.entries[key] = ent
	}
	ent.lastSeen = now

	// Check the balance before consuming: rejection must leave the limiter
	// untouched. Reserve-then-cancel does not work here because a canceled
	// reservation restores nothing once a later reservation has advanced
	// the limiter's event time.
	if tokens := ent.lim.TokensAt(now); tokens < 1 {
		return time.Duration((1 - tokens) * float64(t.window)), ErrRateLimited
	}

	ent.lim.AllowN(now, 1)
	return 0, nil
}

// Window returns the configured minimum spacing between accepted submissions.
func (t *SubmissionThrottle) Window() time.Duration {
	return t.window
}

// Len returns the number of tracked sender addresses.
func (t *SubmissionThrottle) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

// Cleanup evicts entries not seen within the idle TTL.
func (t *SubmissionThrottle) Cleanup(now time.Time) {
	cutoff := now.Add(-t.idleTTL)

	t.mu.Lock()
	defer t.mu.Unlock()

	for key, ent := range t.entries {
		if ent.lastSeen.Before(cutoff) {
			delete(t.entries, key)
		}
	}
}

// StartJanitor runs periodic cleanup until the context is canceled.
func (t *SubmissionThrottle) StartJanitor(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				t.Cleanup(now)
			}
		}
	}()
}

// NormalizeEmail folds a sender address into the throttle key form. The key
// is the literal submitted address, case-folded and trimmed; it is not
// verified to belong to the requester.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
