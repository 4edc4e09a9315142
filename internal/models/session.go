package models

import "time"

// SessionInfo is the lightweight listing entry for a session.
type SessionInfo struct {
	ID        string           `json:"id"`
	Archetype RelationshipType `json:"archetype"`
	Persons   int              `json:"persons"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// SessionSnapshot is the full state of a session as returned by the API:
// the visible graph, the current coefficient record, and the modifiers
// that went into it.
type SessionSnapshot struct {
	ID                 string                 `json:"id"`
	Archetype          RelationshipType       `json:"archetype"`
	CreatedAt          time.Time              `json:"created_at"`
	UpdatedAt          time.Time              `json:"updated_at"`
	Graph              VisibleGraph           `json:"graph"`
	Result             ProbabilityResult      `json:"result"`
	Factors            []ConsanguinityFactor  `json:"factors"`
	TotalFactor        float64                `json:"total_factor"`
	AncestorInbreeding map[string]float64     `json:"ancestor_inbreeding,omitempty"`
	Declared           []DeclaredRelationship `json:"declared"`
}
