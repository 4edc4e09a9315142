package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/kindredlab/kindred/internal/models"
)

// SessionHandler serves session lifecycle endpoints.
type SessionHandler struct {
	svc SessionService
	log *logrus.Logger
}

// NewSessionHandler creates a SessionHandler with the given service and logger.
func NewSessionHandler(svc SessionService, log *logrus.Logger) *SessionHandler {
	return &SessionHandler{svc: svc, log: log}
}

// Create handles POST /api/v1/sessions.
func (h *SessionHandler) Create(c *gin.Context) {
	var req models.TemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	snap, err := h.svc.Create(req)
	if err != nil {
		if errors.Is(err, models.ErrSessionLimit) {
			respondError(c, http.StatusTooManyRequests, ErrCodeSessionLimit, "session limit reached, delete a session first")

			return
		}

		h.log.WithError(err).Error("creating session")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "session.create", "session_id": snap.ID, "archetype": snap.Archetype}).Info("audit")

	c.JSON(http.StatusCreated, snap)
}

// List handles GET /api/v1/sessions.
func (h *SessionHandler) List(c *gin.Context) {
	sessions := h.svc.List()

	h.log.WithFields(logrus.Fields{"action": "session.list", "count": len(sessions)}).Info("audit")

	c.JSON(http.StatusOK, gin.H{"sessions": sessions, "count": len(sessions)})
}

// Get handles GET /api/v1/sessions/:id.
func (h *SessionHandler) Get(c *gin.Context) {
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

		h.log.WithError(err).Error("getting session")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "session.get", "session_id": sessionID}).Info("audit")

	c.JSON(http.StatusOK, snap)
}

// Delete handles DELETE /api/v1/sessions/:id.
func (h *SessionHandler) Delete(c *gin.Context) {
	sessionID := c.Param("id")
	if err := validatePathID(sessionID); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	if err := h.svc.Delete(sessionID); err != nil {
		if errors.Is(err, models.ErrSessionNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "session not found")

			return
		}

		h.log.WithError(err).Error("deleting session")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "session.delete", "session_id": sessionID}).Info("audit")

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// ApplyTemplate handles POST /api/v1/sessions/:id/template.
func (h *SessionHandler) ApplyTemplate(c *gin.Context) {
	sessionID := c.Param("id")
	if err := validatePathID(sessionID); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	var req models.TemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	snap, err := h.svc.ApplyTemplate(sessionID, req)
	if err != nil {
		if errors.Is(err, models.ErrSessionNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "session not found")

			return
		}

		h.log.WithError(err).Error("applying template")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "template.apply", "session_id": sessionID, "archetype": req.Relationship}).Info("audit")

	c.JSON(http.StatusOK, snap)
}

// Reset handles POST /api/v1/sessions/:id/reset.
func (h *SessionHandler) Reset(c *gin.Context) {
	sessionID := c.Param("id")
	if err := validatePathID(sessionID); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	snap, err := h.svc.Reset(sessionID)
	if err != nil {
		if errors.Is(err, models.ErrSessionNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "session not found")

			return
		}

		h.log.WithError(err).Error("resetting session")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "session.reset", "session_id": sessionID}).Info("audit")

	c.JSON(http.StatusOK, snap)
}

// History handles GET /api/v1/sessions/:id/history.
func (h *SessionHandler) History(c *gin.Context) {
	sessionID := c.Param("id")
	if err := validatePathID(sessionID); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	limit := parseInt(c.DefaultQuery("limit", "100"), 100)

	entries, err := h.svc.History(sessionID)
	if err != nil {
		if errors.Is(err, models.ErrSessionNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "session not found")

			return
		}

		h.log.WithError(err).Error("getting session history")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	// Entries are oldest first; a limit keeps the most recent tail.
	if len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries, "count": len(entries)})
}
