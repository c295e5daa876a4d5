package util

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestRetryOnLockWithResult_RetriesLockErrors(t *testing.T) {
	calls := 0
	result, err := RetryOnLockWithResult(context.Background(), quietLogger(), func() (int, error) {
		calls++
		if calls < 2 {
			return 0, errors.New("database is locked")
		}
		return 42, nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 42, result)
	assert.Equal(t, 2, calls)
}

func TestRetryOnLockWithResult_OtherErrorsReturnImmediately(t *testing.T) {
	calls := 0
	_, err := RetryOnLockWithResult(context.Background(), quietLogger(), func() (int, error) {
		calls++
		return 0, errors.New("no such table: dados")
	})

	assert.EqualError(t, err, "no such table: dados")
	assert.Equal(t, 1, calls)
}

func TestRetryOnLockWithResult_GivesUp(t *testing.T) {
	calls := 0
	_, err := RetryOnLockWithResult(context.Background(), quietLogger(), func() (string, error) {
		calls++
		return "", errors.New("database is locked")
	})

	assert.True(t, IsLockError(err))
	assert.Equal(t, lockRetries, calls)
}

func TestRetryOnLockWithResult_StopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	_, err := RetryOnLockWithResult(ctx, quietLogger(), func() (int, error) {
		calls++
		return 0, errors.New("database is locked")
	})

	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}
