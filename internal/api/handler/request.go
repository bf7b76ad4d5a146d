package handler

import (
	"encoding/json"
	"net/http"
	"wings_inventory/internal/api/middleware"
	"wings_inventory/internal/common"

	"github.com/sirupsen/logrus"
)

const maxBodyBytes = 1 << 20

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return false
	}
	return true
}

// respondError logs server-side failures with the request id and writes the
// sanitized public message. Client errors are not logged here; the request
// logger already records their status.
func respondError(log logrus.FieldLogger, w http.ResponseWriter, r *http.Request, err error) {
	if common.HTTPStatusFromError(err) >= http.StatusInternalServerError {
		log.WithError(err).
			WithField("request_id", middleware.RequestIDFrom(r.Context())).
			Error("request failed")
	}
	common.RespondWithDomainError(w, err)
}
