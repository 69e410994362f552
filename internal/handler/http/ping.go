package http

import (
	"net/http"

	"github.com/hearthkeep/hearthkeep/internal/app"
)

// ping reports liveness of the HTTP surface. Clients use it to decide whether
// remote sync is worth attempting at all.
func (h *Handler) ping(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(app.MsgPong))
}
