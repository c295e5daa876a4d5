package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"equipdash/middleware"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingMiddleware_LogsStatusAndRequestID(t *testing.T) {
	logger, hook := test.NewNullLogger()
	handler := middleware.LoggingMiddleware(logger, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard-mensal", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	requestID := rec.Header().Get(middleware.RequestIDHeader)
	assert.Len(t, requestID, 36)

	require.Len(t, hook.AllEntries(), 1)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, http.StatusTeapot, entry.Data["status"])
	assert.Equal(t, "/dashboard-mensal", entry.Data["path"])
	assert.Equal(t, requestID, entry.Data["request_id"])
}

func TestLoggingMiddleware_KeepsIncomingRequestID(t *testing.T) {
	logger, hook := test.NewNullLogger()
	handler := middleware.LoggingMiddleware(logger, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get(middleware.RequestIDHeader))
	assert.Equal(t, http.StatusOK, hook.LastEntry().Data["status"])
}

func TestLoggingMiddleware_RecoversPanic(t *testing.T) {
	logger, hook := test.NewNullLogger()
	handler := middleware.LoggingMiddleware(logger, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	require.NotPanics(t, func() {
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Len(t, hook.AllEntries(), 2)
	assert.Equal(t, logrus.ErrorLevel, hook.AllEntries()[0].Level)
	assert.Equal(t, http.StatusInternalServerError, hook.LastEntry().Data["status"])
}

func TestLoggingMiddleware_ExposesUnderlyingWriter(t *testing.T) {
	logger, _ := test.NewNullLogger()
	var flushErr error
	handler := middleware.LoggingMiddleware(logger, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("partial"))
		flushErr = http.NewResponseController(w).Flush()
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NoError(t, flushErr)
	assert.True(t, rec.Flushed)
}
