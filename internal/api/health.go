// Package api provides HTTP handlers for kindred.
package api

import (
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/kindredlab/kindred/internal/genetics"
	"github.com/kindredlab/kindred/internal/models"
	"github.com/kindredlab/kindred/internal/pedigree"
	"github.com/kindredlab/kindred/internal/ws"
)

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	svc       SessionService
	hub       *ws.Hub
	scenarios []genetics.Scenario
	log       *logrus.Logger
	version   string
	startTime time.Time
}

// NewHealthHandler creates a HealthHandler with the given dependencies.
func NewHealthHandler(svc SessionService, hub *ws.Hub, scenarios []genetics.Scenario, log *logrus.Logger, version string) *HealthHandler {
	return &HealthHandler{
		svc:       svc,
		hub:       hub,
		scenarios: scenarios,
		log:       log,
		version:   version,
		startTime: time.Now(),
	}
}

// healthResponse is the JSON payload returned by the health/liveness endpoint.
type healthResponse struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	Sessions      int     `json:"sessions"`
	MaxSessions   int     `json:"max_sessions"`
	WSClients     int     `json:"ws_clients"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// readinessResponse is the JSON payload returned by the readiness endpoint.
type readinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// Liveness handles GET /api/v1/health.
func (h *HealthHandler) Liveness(c *gin.Context) {
	stats := h.svc.Stats()

	resp := healthResponse{
		Status:        "ok",
		Version:       h.version,
		Sessions:      stats.ActiveSessions,
		MaxSessions:   stats.MaxSessions,
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	}
	if h.hub != nil {
		resp.WSClients = h.hub.ClientCount()
	}

	c.JSON(http.StatusOK, resp)
}

// Readiness handles GET /api/v1/ready. It verifies the compute engine,
// scenario presets, and session capacity.
func (h *HealthHandler) Readiness(c *gin.Context) {
	checks := map[string]string{
		"engine":    "ok",
		"scenarios": "ok",
		"sessions":  "ok",
	}
	status := "ready"
	statusCode := http.StatusOK

	// A broken coefficient engine means every session is wrong; fail hard.
	if err := h.checkEngine(); err != nil {
		h.log.WithError(err).Error("readiness: engine check failed")
		checks["engine"] = "error"
		status = "not_ready"
		statusCode = http.StatusServiceUnavailable
	}

	// Missing presets degrade the UI but requests still work.
	if len(h.scenarios) == 0 {
		h.log.Warn("readiness: no consanguinity scenarios loaded")
		checks["scenarios"] = "degraded"
	}

	// A saturated session table rejects creates until something expires.
	stats := h.svc.Stats()
	if stats.ActiveSessions >= stats.MaxSessions {
		checks["sessions"] = "saturated"
	}

	c.JSON(statusCode, readinessResponse{
		Status: status,
		Checks: checks,
	})
}

// checkEngine seeds a sibling template and verifies the path walker
// reproduces the textbook coefficient.
func (h *HealthHandler) checkEngine() error {
	st := pedigree.BuildTemplate(models.RelSiblings, models.SexMale, models.SexFemale)
	a, b := st.Pair()

	paths := genetics.FindPaths(st, a, b)
	r := genetics.RelationshipCoefficient(paths, nil)
	if math.Abs(r-0.5) > 1e-9 {
		return fmt.Errorf("engine check: sibling r = %v, want 0.5", r)
	}

	return nil
}
