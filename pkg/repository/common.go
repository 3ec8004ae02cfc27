package repository

import (
	"context"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"
)

// isLockError checks if an error is a SQLite lock/busy error
func isLockError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "SQLITE_BUSY") ||
		strings.Contains(errStr, "database is locked") ||
		strings.Contains(errStr, "database table is locked")
}

// withLockRetry runs fn, repeating it with backoff while it fails on SQLite locks.
// Other errors are returned as-is without retries.
func withLockRetry(ctx context.Context, fn func() error) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	var opErr error
	err := retrier.Do(ctx, func() error {
		opErr = fn()
		if isLockError(opErr) {
			return opErr // retry
		}
		return nil
	})
	if err != nil {
		return err
	}
	return opErr
}
