package util

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	lockRetries   = 3
	lockBaseDelay = 100 * time.Millisecond
)

// IsLockError reports whether err is SQLite's "database is locked" contention error.
func IsLockError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "database is locked")
}

// RetryOnLockWithResult retries operation while it fails with a database lock
// error and returns the last result along with any error. Any other error is
// returned immediately. Waiting stops early when ctx is done.
func RetryOnLockWithResult[T any](ctx context.Context, log logrus.FieldLogger, operation func() (T, error)) (T, error) {
	var result T
	var err error

	for i := 0; i < lockRetries; i++ {
		result, err = operation()
		if err == nil {
			return result, nil
		}
		if !IsLockError(err) || i == lockRetries-1 {
			return result, err
		}

		// Exponential backoff: 100ms, 200ms
		delay := lockBaseDelay * time.Duration(1<<i)
		log.WithField("delay", delay).Warn("database locked, retrying")
		select {
		case <-ctx.Done():
			return result, err
		case <-time.After(delay):
		}
	}

	return result, err
}
