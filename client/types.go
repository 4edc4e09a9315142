package client

import "time"

// Person represents an individual in a pedigree graph.
type Person struct {
	ID         string `json:"id"`
	Sex        string `json:"sex"`
	Generation int    `json:"generation"`
	Label      string `json:"label"`
}

// ParentChildEdge links a parent to a child.
type ParentChildEdge struct {
	ParentID string `json:"parent_id"`
	ChildID  string `json:"child_id"`
}

// ConsanguinityLink is a declared same-generation relationship shown alongside the tree.
type ConsanguinityLink struct {
	PersonA string `json:"person_a"`
	PersonB string `json:"person_b"`
	Kind    string `json:"kind"`
}

// Graph is the renderable projection of a session's pedigree.
type Graph struct {
	Persons []Person            `json:"persons"`
	Edges   []ParentChildEdge   `json:"edges"`
	Links   []ConsanguinityLink `json:"links"`
}

// DeclaredRelationship records one relationship declared between two persons.
type DeclaredRelationship struct {
	PersonA string `json:"person_a"`
	PersonB string `json:"person_b"`
	Type    string `json:"type"`
}

// ConsanguinityFactor is one ancestral-relatedness adjustment applied to a session.
type ConsanguinityFactor struct {
	ID           string    `json:"id"`
	Relationship string    `json:"relationship"`
	Tier         string    `json:"tier"`
	Contribution float64   `json:"contribution"`
	Label        string    `json:"label,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// AncestorPath is one genetic transmission route through a shared ancestor.
type AncestorPath struct {
	CommonAncestor string   `json:"common_ancestor"`
	Steps          int      `json:"steps"`
	Route          []string `json:"route"`
}

// Result holds the computed coefficients for a session's selected pair.
// XLinked and YLinked are nil when the archetype has no sex-linked model.
type Result struct {
	PersonA                   string         `json:"person_a"`
	PersonB                   string         `json:"person_b"`
	BaselineR                 float64        `json:"baseline_r"`
	CoefficientOfRelationship float64        `json:"coefficient_of_relationship"`
	GeneOverlapProbability    float64        `json:"gene_overlap_probability"`
	InbreedingCoefficient     float64        `json:"inbreeding_coefficient"`
	ConsanguinityDelta        float64        `json:"consanguinity_delta"`
	XLinked                   *float64       `json:"x_linked"`
	YLinked                   *float64       `json:"y_linked"`
	Paths                     []AncestorPath `json:"paths"`
}

// SessionInfo is the summary row returned by the session list endpoint.
type SessionInfo struct {
	ID        string    `json:"id"`
	Archetype string    `json:"archetype"`
	Persons   int       `json:"persons"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Session is the full state snapshot of a pedigree session.
type Session struct {
	ID                 string                 `json:"id"`
	Archetype          string                 `json:"archetype"`
	CreatedAt          time.Time              `json:"created_at"`
	UpdatedAt          time.Time              `json:"updated_at"`
	Graph              Graph                  `json:"graph"`
	Result             Result                 `json:"result"`
	Factors            []ConsanguinityFactor  `json:"factors"`
	TotalFactor        float64                `json:"total_factor"`
	AncestorInbreeding map[string]float64     `json:"ancestor_inbreeding,omitempty"`
	Declared           []DeclaredRelationship `json:"declared"`
}

// HistoryEntry is one recorded operation from a session's journal.
type HistoryEntry struct {
	Seq    uint64         `json:"seq"`
	Action string         `json:"action"`
	Detail map[string]any `json:"detail,omitempty"`
	At     time.Time      `json:"at"`
}

// PathsResult holds ancestor paths for a pair, echoing the resolved pair ids.
type PathsResult struct {
	PersonA string         `json:"person_a"`
	PersonB string         `json:"person_b"`
	Paths   []AncestorPath `json:"paths"`
}

// Archetype describes one supported relationship template.
type Archetype struct {
	Relationship    string  `json:"relationship"`
	BaseR           float64 `json:"base_r"`
	TemplatePersons int     `json:"template_persons"`
	XLinkedModeled  bool    `json:"x_linked_modeled"`
	YLinkedModeled  bool    `json:"y_linked_modeled"`
}

// Scenario is a named consanguinity preset.
type Scenario struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Tier         string `json:"tier"`
	Description  string `json:"description,omitempty"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	Sessions      int     `json:"sessions"`
	MaxSessions   int     `json:"max_sessions"`
	WSClients     int     `json:"ws_clients"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// ReadyResponse is returned by the readiness endpoint.
type ReadyResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// StatsResponse is returned by the stats endpoint.
type StatsResponse struct {
	ActiveSessions  int    `json:"active_sessions"`
	MaxSessions     int    `json:"max_sessions"`
	SessionsCreated uint64 `json:"sessions_created"`
	Computations    uint64 `json:"computations"`
	SessionTTL      string `json:"session_ttl"`
	Persons         int    `json:"persons"`
	Edges           int    `json:"edges"`
	WSClients       int    `json:"ws_clients"`
}

// CreateSessionRequest is the payload for creating a session or applying a template.
// Sexes default to male for person A and female for person B when empty.
type CreateSessionRequest struct {
	Relationship string `json:"relationship"`
	PersonASex   string `json:"person_a_sex,omitempty"`
	PersonBSex   string `json:"person_b_sex,omitempty"`
}

// DeclareRequest is the payload for declaring a relationship between two persons.
type DeclareRequest struct {
	PersonA string `json:"person_a"`
	PersonB string `json:"person_b"`
	Type    string `json:"type"`
}

// BulkDeclareRequest is the payload for declaring several relationships atomically.
type BulkDeclareRequest struct {
	Declarations []DeclareRequest `json:"declarations"`
}

// AddFactorRequest is the payload for adding a consanguinity factor.
type AddFactorRequest struct {
	Relationship string `json:"relationship"`
	Tier         string `json:"tier"`
	Label        string `json:"label,omitempty"`
}

// SetInbreedingRequest is the payload for setting an ancestor's inbreeding coefficient.
type SetInbreedingRequest struct {
	Coefficient float64 `json:"coefficient"`
}
