// Package handlers serves the dashboard gateway's HTTP endpoints on top of
// the fleet API client.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"

	"github.com/ukydev/fleet-logistics/internal/api"
	"github.com/ukydev/fleet-logistics/internal/auth"
	"github.com/ukydev/fleet-logistics/internal/models"
	"github.com/ukydev/fleet-logistics/internal/report"
	"github.com/ukydev/fleet-logistics/internal/transitions"
)

// DashboardHandler aggregates the remote fleet API into dashboard responses.
type DashboardHandler struct {
	client   *api.Client
	creds    models.LoginRequest
	loadOpts report.LoadOptions
}

// NewDashboardHandler creates a dashboard handler. The credentials are used
// to (re-)authenticate against the fleet API when the token is missing,
// expired, or rejected.
func NewDashboardHandler(client *api.Client, creds models.LoginRequest, loadOpts report.LoadOptions) *DashboardHandler {
	return &DashboardHandler{
		client:   client,
		creds:    creds,
		loadOpts: loadOpts,
	}
}

// GetDashboard serves the aggregated dashboard. Upstream failures degrade to
// a zeroed payload with an error flag; the response status is always 200 so
// the frontend can render the empty state with a retry affordance.
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.ensureToken(ctx)

	dashboard, err := report.Load(ctx, h.client, h.loadOpts)
	if errors.Is(err, api.ErrAuthRequired) {
		// Stale credential: drop it, re-authenticate, retry once.
		h.client.SetToken("")
		if h.ensureToken(ctx) {
			dashboard, _ = report.Load(ctx, h.client, h.loadOpts)
		}
	}

	writeJSON(w, http.StatusOK, dashboard)
}

// GetTransitions enumerates the legal status transitions for an entity kind
// and current status. Unknown kinds or statuses yield an empty list.
func (h *DashboardHandler) GetTransitions(w http.ResponseWriter, r *http.Request) {
	kind := transitions.Kind(chi.URLParam(r, "kind"))
	status := chi.URLParam(r, "status")

	writeJSON(w, http.StatusOK, map[string]any{
		"kind":        kind,
		"status":      status,
		"transitions": transitions.For(kind, status),
	})
}

// Health reports liveness.
func (h *DashboardHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ensureToken logs in when the client has no usable token. Returns true when
// a usable token is in place afterwards. Login failures are logged, not
// fatal: subsequent fetches fail and the dashboard degrades.
func (h *DashboardHandler) ensureToken(ctx context.Context) bool {
	token := h.client.Token()
	if token != "" && !auth.Expired(token, time.Now()) {
		return true
	}

	fresh, err := h.client.Login(ctx, h.creds)
	if err != nil {
		log.WithError(err).Error("fleet api login failed")
		return false
	}
	h.client.SetToken(fresh)
	return true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.WithError(err).Error("failed to encode response")
	}
}
