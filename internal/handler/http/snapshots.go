package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hearthkeep/hearthkeep/internal/app"
	"github.com/hearthkeep/hearthkeep/internal/logger"
	"github.com/hearthkeep/hearthkeep/internal/utils"
	"github.com/hearthkeep/hearthkeep/models"
)

// actorQueryParam selects the actor partition for actor-scoped domains.
const actorQueryParam = "actor"

func (h *Handler) getSnapshot(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	domain := chi.URLParam(r, "domain")
	actorID := r.URL.Query().Get(actorQueryParam)

	snapshot, err := h.services.SnapshotService.GetSnapshot(r.Context(), domain, actorID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getSnapshot").Str("domain", domain).Msg("error getting snapshot")
		writeError(w, err)
		return
	}

	if _, err := utils.WriteJSON(w, snapshot, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getSnapshot").Msg("error writing snapshot response")
	}
}

func (h *Handler) putSnapshot(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var snapshot models.Snapshot
	if err := json.NewDecoder(r.Body).Decode(&snapshot); err != nil {
		log.Err(err).Str("func", "*Handler.putSnapshot").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSONProvided, http.StatusBadRequest)
		return
	}

	// the URL is authoritative for addressing; the body may not redirect a
	// write to another domain or actor
	snapshot.Domain = chi.URLParam(r, "domain")
	snapshot.ActorID = r.URL.Query().Get(actorQueryParam)

	if err := h.services.SnapshotService.UpsertSnapshot(r.Context(), snapshot); err != nil {
		log.Err(err).Str("func", "*Handler.putSnapshot").Str("domain", snapshot.Domain).Msg("error upserting snapshot")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
