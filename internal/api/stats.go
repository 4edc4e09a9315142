package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/kindredlab/kindred/internal/service"
	"github.com/kindredlab/kindred/internal/ws"
)

// StatsHandler serves the aggregate statistics endpoint.
type StatsHandler struct {
	sessions SessionService
	pedigree PedigreeService
	hub      *ws.Hub
	log      *logrus.Logger
}

// NewStatsHandler creates a StatsHandler with the given dependencies.
func NewStatsHandler(sessions SessionService, pedigree PedigreeService, hub *ws.Hub, log *logrus.Logger) *StatsHandler {
	return &StatsHandler{sessions: sessions, pedigree: pedigree, hub: hub, log: log}
}

// statsResponse is the JSON payload returned by the stats endpoint.
type statsResponse struct {
	service.Stats
	Persons   int `json:"persons"`
	Edges     int `json:"edges"`
	WSClients int `json:"ws_clients"`
}

// GetStats handles GET /api/v1/stats.
func (h *StatsHandler) GetStats(c *gin.Context) {
	resp := statsResponse{Stats: h.sessions.Stats()}

	// Person and edge totals come from the visible projections. A session
	// deleted mid-iteration is simply skipped.
	for _, info := range h.sessions.List() {
		resp.Persons += info.Persons

		graph, err := h.pedigree.Graph(info.ID)
		if err != nil {
			continue
		}
		resp.Edges += len(graph.Edges)
	}

	if h.hub != nil {
		resp.WSClients = h.hub.ClientCount()
	}

	c.JSON(http.StatusOK, resp)
}
