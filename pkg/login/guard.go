package login

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/WassimBlilita7/ULMA/pkg/logger"
	"github.com/WassimBlilita7/ULMA/pkg/securestore"
)

const (
	DefaultMaxAttempts = 5
	DefaultLockout     = 5 * time.Minute

	// LockoutKey is the store key holding the active lockout.
	LockoutKey = "loginLockout"
)

// lockoutRecord is persisted as {"lockedUntil": <unix milliseconds>}.
type lockoutRecord struct {
	LockedUntil int64 `json:"lockedUntil"`
}

// Guard counts consecutive failed logins and locks further attempts once the
// limit is reached.
type Guard struct {
	store       *securestore.Store
	maxAttempts int
	lockout     time.Duration
	now         func() time.Time
	logger      *slog.Logger

	mu       sync.Mutex
	attempts int
}

type GuardOption func(*Guard)

func WithMaxAttempts(n int) GuardOption {
	return func(g *Guard) {
		if n > 0 {
			g.maxAttempts = n
		}
	}
}

func WithLockoutDuration(d time.Duration) GuardOption {
	return func(g *Guard) {
		if d > 0 {
			g.lockout = d
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) GuardOption {
	return func(g *Guard) {
		if now != nil {
			g.now = now
		}
	}
}

func WithGuardLogger(l *slog.Logger) GuardOption {
	return func(g *Guard) {
		if l != nil {
			g.logger = l
		}
	}
}

func NewGuard(store *securestore.Store, opts ...GuardOption) *Guard {
	g := &Guard{
		store:       store,
		maxAttempts: DefaultMaxAttempts,
		lockout:     DefaultLockout,
		now:         time.Now,
		logger:      logger.Discard(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.logger = g.logger.With(logger.Component("login.guard"))
	return g
}

// Check returns a *LockoutError while a lockout is active. An expired lockout
// is removed and the failure counter reset.
func (g *Guard) Check(ctx context.Context) error {
	var rec lockoutRecord
	err := g.store.GetInto(ctx, LockoutKey, &rec)
	switch {
	case errors.Is(err, securestore.ErrNotFound):
		return nil
	case errors.Is(err, securestore.ErrCorrupted), errors.Is(err, securestore.ErrDecode):
		// unreadable record: treat as no lockout
		return g.clear(ctx)
	case err != nil:
		return err
	}

	now := g.now()
	until := time.UnixMilli(rec.LockedUntil)
	if now.Before(until) {
		return &LockoutError{Until: until, Remaining: until.Sub(now)}
	}

	return g.clear(ctx)
}

// Fail records a failed attempt. When the limit is reached it stores a
// lockout and returns the resulting *LockoutError.
func (g *Guard) Fail(ctx context.Context) error {
	g.mu.Lock()
	g.attempts++
	attempts := g.attempts
	g.mu.Unlock()

	if attempts < g.maxAttempts {
		g.logger.InfoContext(ctx, "login attempt failed", logger.Attempts(attempts))
		return nil
	}

	until := g.now().Add(g.lockout)
	if err := g.store.Set(ctx, LockoutKey, lockoutRecord{LockedUntil: until.UnixMilli()}); err != nil {
		return err
	}

	g.logger.WarnContext(ctx, "login locked", logger.Attempts(attempts), logger.Duration(g.lockout))
	return &LockoutError{Until: until, Remaining: g.lockout}
}

// Reset clears the failure counter and any stored lockout.
func (g *Guard) Reset(ctx context.Context) error {
	return g.clear(ctx)
}

// Attempts returns the number of consecutive failures counted so far.
func (g *Guard) Attempts() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.attempts
}

// Remaining returns how many failures are left before a lockout.
func (g *Guard) Remaining() int {
	return max(g.maxAttempts-g.Attempts(), 0)
}

func (g *Guard) clear(ctx context.Context) error {
	g.mu.Lock()
	g.attempts = 0
	g.mu.Unlock()
	return g.store.Remove(ctx, LockoutKey)
}
