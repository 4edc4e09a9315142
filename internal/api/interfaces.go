package api

import (
	"github.com/kindredlab/kindred/internal/models"
	"github.com/kindredlab/kindred/internal/service"
)

// SessionReader provides read access to full session state. Handlers
// that serve sub-resources of a session embed it.
type SessionReader interface {
	Get(sessionID string) (models.SessionSnapshot, error)
}

// SessionService defines session lifecycle operations used by SessionHandler.
type SessionService interface {
	SessionReader
	Create(req models.TemplateRequest) (models.SessionSnapshot, error)
	List() []models.SessionInfo
	Delete(sessionID string) error
	ApplyTemplate(sessionID string, req models.TemplateRequest) (models.SessionSnapshot, error)
	Reset(sessionID string) (models.SessionSnapshot, error)
	History(sessionID string) ([]service.JournalEntry, error)
	Stats() service.Stats
	SessionExists(sessionID string) bool
}

// PedigreeService defines graph editing operations used by PedigreeHandler.
type PedigreeService interface {
	SessionReader
	Graph(sessionID string) (models.VisibleGraph, error)
	ToggleSex(sessionID, personID string) (models.SessionSnapshot, error)
	Declare(sessionID string, req models.DeclareRelationshipRequest) (models.SessionSnapshot, error)
	BulkDeclare(sessionID string, req models.BulkDeclareRequest) (models.SessionSnapshot, error)
	RelationshipOptions(sessionID, personA, personB string) ([]models.RelationshipType, error)
}

// GeneticsService defines coefficient operations used by GeneticsHandler.
type GeneticsService interface {
	SessionReader
	Result(sessionID string) (models.ProbabilityResult, error)
	FindPaths(sessionID, personA, personB string) ([]models.AncestorPath, error)
	AddFactor(sessionID string, req models.AddFactorRequest) (models.SessionSnapshot, error)
	RemoveFactor(sessionID, factorID string) (models.SessionSnapshot, error)
	ClearFactors(sessionID string) (models.SessionSnapshot, error)
	SetAncestorInbreeding(sessionID, personID string, coefficient float64) (models.SessionSnapshot, error)
}
