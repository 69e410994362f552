package http

import (
	"errors"
	"net/http"

	"github.com/hearthkeep/hearthkeep/internal/app"
	"github.com/hearthkeep/hearthkeep/internal/repository"
	"github.com/hearthkeep/hearthkeep/internal/service"
)

var errorStatusMap = map[error]int{
	service.ErrValidationUnknownDomain:   http.StatusBadRequest,
	service.ErrValidationActorRequired:   http.StatusBadRequest,
	service.ErrValidationActorNotAllowed: http.StatusBadRequest,
	service.ErrValidationNoRecords:       http.StatusBadRequest,

	repository.ErrSnapshotNotFound: http.StatusNotFound,
	repository.ErrSnapshotNotSaved: http.StatusInternalServerError,

	repository.ErrBuildingSQLQuery: http.StatusInternalServerError,
	repository.ErrExecutingQuery:   http.StatusInternalServerError,
	repository.ErrScanningRow:      http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError maps err to a status code and writes the response body. Server
// internals never leak: a 5xx always carries the generic message.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		http.Error(w, app.MsgInternalServerError, status)
		return
	}
	http.Error(w, err.Error(), status)
}
