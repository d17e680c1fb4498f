package api

import (
	"encoding/json"
	"net/http"

	"imperial/commercial-routes/internal/common"
	"imperial/commercial-routes/internal/constants"
	"imperial/commercial-routes/internal/logging"
	"imperial/commercial-routes/internal/models/dtos"
)

func respondJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

// respondError is the single transport-boundary error classifier: domain
// bad requests become a 400 carrying their message, everything else a 500
// with a generic administrator-contact message. Both paths are logged.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	if common.IsBadRequest(err) {
		logging.Warn("Request rejected",
			"path", r.URL.Path,
			"error", err.Error(),
		)
		respondJSON(w, http.StatusBadRequest, dtos.ErrorResponse{Message: err.Error()})
		return
	}

	logging.Error("Request failed",
		"path", r.URL.Path,
		"error", err.Error(),
	)
	respondJSON(w, http.StatusInternalServerError, dtos.ErrorResponse{Message: constants.ErrMsgInternal})
}
