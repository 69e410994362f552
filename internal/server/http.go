package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/hearthkeep/hearthkeep/internal/logger"
)

type httpServer struct {
	server          *http.Server
	shutdownTimeout time.Duration
	logger          *logger.Logger
}

func newHTTPServer(router http.Handler, address string, shutdownTimeout time.Duration, log *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:    address,
			Handler: router,
		},
		shutdownTimeout: shutdownTimeout,
		logger:          log,
	}
}

func (h *httpServer) RunServer() {
	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		h.logger.Err(err).Msg("HTTP server ListenAndServe")
	}
}

func (h *httpServer) Shutdown() {
	ctx := context.Background()
	if h.shutdownTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.shutdownTimeout)
		defer cancel()
	}

	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Err(err).Msg("HTTP server Shutdown")
	}
}
