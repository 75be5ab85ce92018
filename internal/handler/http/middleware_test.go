// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/koji-m/Bluedog/internal/logger"
	"github.com/koji-m/Bluedog/internal/utils"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// ── responseWriter ──────────────────────────────────────────────────────────

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec}

	rw.WriteHeader(http.StatusTeapot)
	rw.WriteHeader(http.StatusInternalServerError)
	n, err := rw.Write([]byte("hello"))

	assert.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, http.StatusTeapot, rw.statusCode())
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, 5, rw.size)
}

func TestResponseWriter_ImplicitOK(t *testing.T) {
	rw := &responseWriter{ResponseWriter: httptest.NewRecorder()}
	assert.Equal(t, http.StatusOK, rw.statusCode())

	_, _ = rw.Write([]byte("a"))
	_, _ = rw.Write([]byte("bc"))
	assert.Equal(t, http.StatusOK, rw.status)
	assert.Equal(t, 3, rw.size)
}

// ── withTraceID / withLogging ───────────────────────────────────────────────

func TestWithLogging_CarriesTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{
		ids:    utils.NewUUIDGenerator(),
		logger: &logger.Logger{Logger: zerolog.New(&buf)},
	}

	var seenTraceID string
	final := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenTraceID, _ = utils.GetTraceIDFromContext(r.Context())
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("ok"))
	})

	req := httptest.NewRequest(http.MethodPost, "/api/posts", nil)
	req.Header.Set(traceIDHeader, "trace-7")
	rec := httptest.NewRecorder()
	h.withTraceID(h.withLogging(final)).ServeHTTP(rec, req)

	assert.Equal(t, "trace-7", seenTraceID)
	for _, want := range []string{
		`"trace_id":"trace-7"`,
		`"method":"POST"`,
		`"uri":"/api/posts"`,
		`"status":201`,
		`"size":2`,
		`"duration":`,
	} {
		assert.Contains(t, buf.String(), want)
	}
}

func TestWithLogging_ServerErrorIsWarn(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{
		ids:    utils.NewUUIDGenerator(),
		logger: &logger.Logger{Logger: zerolog.New(&buf)},
	}

	final := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	h.withTraceID(h.withLogging(final)).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/timeline", nil))

	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), `"status":502`)
}
