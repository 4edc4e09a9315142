package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/kindredlab/kindred/internal/models"
	"github.com/kindredlab/kindred/internal/pedigree"
)

// GeneticsHandler serves coefficient, path, and consanguinity endpoints.
type GeneticsHandler struct {
	svc GeneticsService
	log *logrus.Logger
}

// NewGeneticsHandler creates a GeneticsHandler with the given service and logger.
func NewGeneticsHandler(svc GeneticsService, log *logrus.Logger) *GeneticsHandler {
	return &GeneticsHandler{svc: svc, log: log}
}

// GetResult handles GET /api/v1/sessions/:id/result.
func (h *GeneticsHandler) GetResult(c *gin.Context) {
	sessionID := c.Param("id")
	if err := validatePathID(sessionID); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	result, err := h.svc.Result(sessionID)
	if err != nil {
		if errors.Is(err, models.ErrSessionNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "session not found")

			return
		}

		h.log.WithError(err).Error("getting result")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, result)
}

// GetPaths handles GET /api/v1/sessions/:id/paths. Without person_a and
// person_b query parameters the session's selected pair is used.
func (h *GeneticsHandler) GetPaths(c *gin.Context) {
	sessionID := c.Param("id")
	if err := validatePathID(sessionID); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	personA := c.DefaultQuery("person_a", pedigree.PairAID)
	personB := c.DefaultQuery("person_b", pedigree.PairBID)

	paths, err := h.svc.FindPaths(sessionID, personA, personB)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrSessionNotFound):
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "session not found")
		case errors.Is(err, models.ErrPersonNotFound):
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "person not found")
		default:
			h.log.WithError(err).Error("finding paths")
			respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")
		}

		return
	}

	if paths == nil {
		paths = []models.AncestorPath{}
	}

	c.JSON(http.StatusOK, gin.H{"person_a": personA, "person_b": personB, "paths": paths})
}

// ListFactors handles GET /api/v1/sessions/:id/consanguinity.
func (h *GeneticsHandler) ListFactors(c *gin.Context) {
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

		h.log.WithError(err).Error("listing factors")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, gin.H{"factors": snap.Factors, "total_factor": snap.TotalFactor})
}

// AddFactor handles POST /api/v1/sessions/:id/consanguinity.
func (h *GeneticsHandler) AddFactor(c *gin.Context) {
	sessionID := c.Param("id")
	if err := validatePathID(sessionID); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	var req models.AddFactorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	snap, err := h.svc.AddFactor(sessionID, req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrSessionNotFound):
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "session not found")
		case errors.Is(err, models.ErrInvalidRelationship), errors.Is(err, models.ErrInvalidTier):
			respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())
		default:
			h.log.WithError(err).Error("adding factor")
			respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")
		}

		return
	}

	h.log.WithFields(logrus.Fields{
		"action":       "factor.add",
		"session_id":   sessionID,
		"relationship": req.Relationship,
		"tier":         req.Tier,
	}).Info("audit")

	c.JSON(http.StatusCreated, snap)
}

// RemoveFactor handles DELETE /api/v1/sessions/:id/consanguinity/:factorID.
func (h *GeneticsHandler) RemoveFactor(c *gin.Context) {
	sessionID := c.Param("id")
	if err := validatePathID(sessionID); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	factorID := c.Param("factorID")
	if err := validatePathID(factorID); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	snap, err := h.svc.RemoveFactor(sessionID, factorID)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrSessionNotFound):
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "session not found")
		case errors.Is(err, models.ErrFactorNotFound):
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "consanguinity factor not found")
		default:
			h.log.WithError(err).Error("removing factor")
			respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")
		}

		return
	}

	h.log.WithFields(logrus.Fields{"action": "factor.remove", "session_id": sessionID, "factor_id": factorID}).Info("audit")

	c.JSON(http.StatusOK, snap)
}

// ClearFactors handles DELETE /api/v1/sessions/:id/consanguinity.
func (h *GeneticsHandler) ClearFactors(c *gin.Context) {
	sessionID := c.Param("id")
	if err := validatePathID(sessionID); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	snap, err := h.svc.ClearFactors(sessionID)
	if err != nil {
		if errors.Is(err, models.ErrSessionNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "session not found")

			return
		}

		h.log.WithError(err).Error("clearing factors")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "factor.clear", "session_id": sessionID}).Info("audit")

	c.JSON(http.StatusOK, snap)
}

// SetInbreeding handles PUT /api/v1/sessions/:id/ancestors/:personID/inbreeding.
func (h *GeneticsHandler) SetInbreeding(c *gin.Context) {
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

	var req models.SetAncestorInbreedingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	snap, err := h.svc.SetAncestorInbreeding(sessionID, personID, req.Coefficient)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrSessionNotFound):
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "session not found")
		case errors.Is(err, models.ErrPersonNotFound):
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "person not found")
		default:
			h.log.WithError(err).Error("setting ancestor inbreeding")
			respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")
		}

		return
	}

	h.log.WithFields(logrus.Fields{
		"action":      "inbreeding.set",
		"session_id":  sessionID,
		"person_id":   personID,
		"coefficient": req.Coefficient,
	}).Info("audit")

	c.JSON(http.StatusOK, snap)
}
