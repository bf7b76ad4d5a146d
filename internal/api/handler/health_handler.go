package handler

import (
	"context"
	"net/http"
	"time"
	"wings_inventory/internal/platform/database"

	"github.com/sirupsen/logrus"
)

const readinessTimeout = 2 * time.Second

type HealthHandler struct {
	db  database.Pinger
	log logrus.FieldLogger
}

// NewHealthHandler accepts a nil pinger for the in-memory backend, which is
// always ready.
func NewHealthHandler(db database.Pinger, log logrus.FieldLogger) *HealthHandler {
	return &HealthHandler{db: db, log: log}
}

func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("OK"))
}

func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()
		if err := h.db.PingContext(ctx); err != nil {
			h.log.WithError(err).Warn("readiness check failed")
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
	}
	h.Live(w, r)
}
