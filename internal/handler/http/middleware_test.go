package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearthkeep/hearthkeep/internal/logger"
)

// newCapturingHandler returns a Handler whose logger writes JSON lines into
// the returned buffer.
func newCapturingHandler() (*Handler, *bytes.Buffer) {
	var buf bytes.Buffer
	log := &logger.Logger{Logger: zerolog.New(&buf)}
	return &Handler{logger: log}, &buf
}

func serveThrough(h *Handler, req *http.Request, next http.HandlerFunc) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.withRequestLog(next).ServeHTTP(rec, req)
	return rec
}

func TestWithRequestLog_TraceID(t *testing.T) {
	okNext := func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}

	t.Run("client supplied trace id is reused", func(t *testing.T) {
		h, _ := newCapturingHandler()
		req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
		req.Header.Set(traceIDHeader, "trace-from-client")

		rec := serveThrough(h, req, okNext)

		assert.Equal(t, "trace-from-client", rec.Header().Get(traceIDHeader))
	})

	t.Run("missing trace id gets a generated uuid", func(t *testing.T) {
		h, _ := newCapturingHandler()
		req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)

		rec := serveThrough(h, req, okNext)

		id := rec.Header().Get(traceIDHeader)
		require.NotEmpty(t, id)
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
	})

	t.Run("generated trace ids are unique per request", func(t *testing.T) {
		h, _ := newCapturingHandler()
		seen := make(map[string]struct{})

		for i := 0; i < 20; i++ {
			req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
			rec := serveThrough(h, req, okNext)

			id := rec.Header().Get(traceIDHeader)
			_, duplicate := seen[id]
			require.False(t, duplicate, "trace id %s issued twice", id)
			seen[id] = struct{}{}
		}
	})

	t.Run("request scoped logger carries the trace id", func(t *testing.T) {
		h, buf := newCapturingHandler()
		req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
		req.Header.Set(traceIDHeader, "trace-in-context")

		serveThrough(h, req, func(w http.ResponseWriter, r *http.Request) {
			logger.FromRequest(r).Info().Msg("from inside the handler")
			w.WriteHeader(http.StatusOK)
		})

		assert.Contains(t, buf.String(), `"trace_id":"trace-in-context"`)
		assert.Contains(t, buf.String(), "from inside the handler")
	})
}

func TestWithRequestLog_CompletionLine(t *testing.T) {
	tests := []struct {
		name        string
		method      string
		target      string
		next        http.HandlerFunc
		logContains []string
	}{
		{
			name:   "success with body",
			method: http.MethodGet,
			target: "/api/domains/tasks?actor=alice",
			next: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"records":[]}`))
			},
			logContains: []string{
				`"method":"GET"`,
				`"uri":"/api/domains/tasks?actor=alice"`,
				`"status":200`,
				`"size":14`,
			},
		},
		{
			name:   "client error without body",
			method: http.MethodPut,
			target: "/api/domains/unknown",
			next: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
			},
			logContains: []string{
				`"method":"PUT"`,
				`"status":400`,
				`"size":0`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, buf := newCapturingHandler()
			req := httptest.NewRequest(tt.method, tt.target, nil)

			serveThrough(h, req, tt.next)

			for _, want := range tt.logContains {
				assert.Contains(t, buf.String(), want)
			}
			assert.Contains(t, buf.String(), `"duration":`)
		})
	}
}

func TestWithRequestLog_NextAlwaysRuns(t *testing.T) {
	h, _ := newCapturingHandler()
	nextCalled := false

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	rec := serveThrough(h, req, func(w http.ResponseWriter, _ *http.Request) {
		nextCalled = true
		w.WriteHeader(http.StatusTeapot)
	})

	assert.True(t, nextCalled)
	assert.Equal(t, http.StatusTeapot, rec.Code)
}
