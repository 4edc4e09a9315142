package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/kindredlab/kindred/internal/models"
)

// PedigreeHandler serves graph projection and relationship editing endpoints.
type PedigreeHandler struct {
	svc PedigreeService
	log *logrus.Logger
}

// NewPedigreeHandler creates a PedigreeHandler with the given service and logger.
func NewPedigreeHandler(svc PedigreeService, log *logrus.Logger) *PedigreeHandler {
	return &PedigreeHandler{svc: svc, log: log}
}

// GetGraph handles GET /api/v1/sessions/:id/graph.
func (h *PedigreeHandler) GetGraph(c *gin.Context) {
	sessionID := c.Param("id")
	if err := validatePathID(sessionID); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	graph, err := h.svc.Graph(sessionID)
	if err != nil {
		if errors.Is(err, models.ErrSessionNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "session not found")

			return
		}

		h.log.WithError(err).Error("getting graph")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, graph)
}

// ToggleSex handles POST /api/v1/sessions/:id/persons/:personID/sex.
func (h *PedigreeHandler) ToggleSex(c *gin.Context) {
	sessionID := c.Param("id")
	if err := validatePathID(sessionID); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	personID := c.Param("personID")
	if err := validatePathID(personID); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	snap, err := h.svc.ToggleSex(sessionID, personID)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrSessionNotFound):
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "session not found")
		case errors.Is(err, models.ErrPersonNotFound):
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "person not found")
		default:
			h.log.WithError(err).Error("toggling sex")
			respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")
		}

		return
	}

	h.log.WithFields(logrus.Fields{"action": "sex.toggle", "session_id": sessionID, "person_id": personID}).Info("audit")

	c.JSON(http.StatusOK, snap)
}

// ListDeclared handles GET /api/v1/sessions/:id/relationships.
func (h *PedigreeHandler) ListDeclared(c *gin.Context) {
	sessionID := c.Param("id")
	if err := validatePathID(sessionID); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	snap, err := h.svc.Get(sessionID)
	if err != nil {
		if errors.Is(err, models.ErrSessionNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "session not found")

			return
		}

		h.log.WithError(err).Error("listing declared relationships")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	declared := snap.Declared
	if declared == nil {
		declared = []models.DeclaredRelationship{}
	}

	c.JSON(http.StatusOK, gin.H{"declared": declared, "count": len(declared)})
}

// Declare handles POST /api/v1/sessions/:id/relationships.
func (h *PedigreeHandler) Declare(c *gin.Context) {
	sessionID := c.Param("id")
	if err := validatePathID(sessionID); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	var req models.DeclareRelationshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	snap, err := h.svc.Declare(sessionID, req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrSessionNotFound):
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "session not found")
		case errors.Is(err, models.ErrPersonNotFound):
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "person not found")
		default:
			h.log.WithError(err).Error("declaring relationship")
			respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")
		}

		return
	}

	h.log.WithFields(logrus.Fields{
		"action":     "relationship.declare",
		"session_id": sessionID,
		"person_a":   req.PersonA,
		"person_b":   req.PersonB,
		"type":       req.Type,
	}).Info("audit")

	c.JSON(http.StatusOK, snap)
}

// BulkDeclare handles POST /api/v1/sessions/:id/relationships/bulk.
func (h *PedigreeHandler) BulkDeclare(c *gin.Context) {
	sessionID := c.Param("id")
	if err := validatePathID(sessionID); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	var req models.BulkDeclareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	snap, err := h.svc.BulkDeclare(sessionID, req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrSessionNotFound):
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "session not found")
		case errors.Is(err, models.ErrPersonNotFound):
			// The wrapped error names the failing declaration index.
			respondError(c, http.StatusNotFound, ErrCodeNotFound, err.Error())
		default:
			h.log.WithError(err).Error("bulk declaring relationships")
			respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")
		}

		return
	}

	h.log.WithFields(logrus.Fields{
		"action":     "relationship.bulk_declare",
		"session_id": sessionID,
		"count":      len(req.Declarations),
	}).Info("audit")

	c.JSON(http.StatusOK, snap)
}

// Options handles GET /api/v1/sessions/:id/relationships/options.
func (h *PedigreeHandler) Options(c *gin.Context) {
	sessionID := c.Param("id")
	if err := validatePathID(sessionID); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	personA := c.Query("person_a")
	personB := c.Query("person_b")
	if personA == "" || personB == "" {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "person_a and person_b query parameters are required")

		return
	}

	options, err := h.svc.RelationshipOptions(sessionID, personA, personB)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrSessionNotFound):
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "session not found")
		case errors.Is(err, models.ErrPersonNotFound):
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "person not found")
		default:
			h.log.WithError(err).Error("listing relationship options")
			respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")
		}

		return
	}

	c.JSON(http.StatusOK, gin.H{"options": options})
}
