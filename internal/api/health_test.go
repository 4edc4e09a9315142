package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/kindredlab/kindred/internal/api"
	"github.com/kindredlab/kindred/internal/genetics"
	"github.com/kindredlab/kindred/internal/models"
)

func TestHealth_Liveness(t *testing.T) {
	t.Parallel()

	m := newManager()
	mustCreate(t, m, models.RelSiblings)

	scenarios, err := genetics.LoadScenarios("")
	if err != nil {
		t.Fatalf("loading scenarios: %v", err)
	}

	r := gin.New()
	h := api.NewHealthHandler(m, nil, scenarios, testLogger(), "test")
	r.GET("/health", h.Liveness)

	w := doRequest(r, http.MethodGet, "/health", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var body struct {
		Status   string `json:"status"`
		Version  string `json:"version"`
		Sessions int    `json:"sessions"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if body.Status != "ok" {
		t.Errorf("expected status ok, got %q", body.Status)
	}
	if body.Version != "test" {
		t.Errorf("expected version test, got %q", body.Version)
	}
	if body.Sessions != 1 {
		t.Errorf("expected 1 session, got %d", body.Sessions)
	}
}

func TestHealth_Readiness(t *testing.T) {
	t.Parallel()

	scenarios, err := genetics.LoadScenarios("")
	if err != nil {
		t.Fatalf("loading scenarios: %v", err)
	}

	r := gin.New()
	h := api.NewHealthHandler(newManager(), nil, scenarios, testLogger(), "test")
	r.GET("/ready", h.Readiness)

	w := doRequest(r, http.MethodGet, "/ready", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var body struct {
		Status string            `json:"status"`
		Checks map[string]string `json:"checks"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if body.Status != "ready" {
		t.Errorf("expected status ready, got %q", body.Status)
	}
	for _, check := range []string{"engine", "scenarios", "sessions"} {
		if body.Checks[check] != "ok" {
			t.Errorf("expected check %s ok, got %q", check, body.Checks[check])
		}
	}
}

func TestHealth_ReadinessDegradedScenarios(t *testing.T) {
	t.Parallel()

	r := gin.New()
	h := api.NewHealthHandler(newManager(), nil, nil, testLogger(), "test")
	r.GET("/ready", h.Readiness)

	w := doRequest(r, http.MethodGet, "/ready", "")

	// Degraded presets never block readiness.
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var body struct {
		Status string            `json:"status"`
		Checks map[string]string `json:"checks"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if body.Checks["scenarios"] != "degraded" {
		t.Errorf("expected scenarios degraded, got %q", body.Checks["scenarios"])
	}
}
