package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// traceIDHeader carries the request trace id in both directions: clients may
// supply one, and the server always echoes the effective id back.
const traceIDHeader = "X-Trace-ID"

// withRequestLog is the single observability middleware of the sync server.
// It resolves the trace id (reusing the client's when present, minting one
// otherwise), attaches a request-scoped logger carrying it to the context,
// and emits one completion line per request with the outcome.
func (h *Handler) withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}
		w.Header().Set(traceIDHeader, traceID)

		log := h.logger.GetChildLogger()
		log.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		rw := &responseWriter{ResponseWriter: w}
		start := time.Now()

		next.ServeHTTP(rw, r.WithContext(log.WithContext(r.Context())))

		log.Info().
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Int("status", rw.status).
			Int("size", rw.size).
			Dur("duration", time.Since(start)).
			Msg("request served")
	})
}
