package login

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrLockedOut          = errors.New("too many failed login attempts")
	ErrUnavailable        = errors.New("authentication service unavailable")
	ErrNotLoggedIn        = errors.New("not logged in")
)

// LockoutError reports an active lockout. It matches ErrLockedOut.
type LockoutError struct {
	Until     time.Time
	Remaining time.Duration
}

// Minutes returns the remaining lock time in whole minutes, rounded up.
func (e *LockoutError) Minutes() int {
	return int((e.Remaining + time.Minute - 1) / time.Minute)
}

func (e *LockoutError) Error() string {
	return fmt.Sprintf("%s: retry in %d minute(s)", ErrLockedOut, e.Minutes())
}

func (e *LockoutError) Is(target error) bool {
	return target == ErrLockedOut
}
