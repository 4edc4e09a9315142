// Package service provides business logic between API handlers and session state.
package service

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kindredlab/kindred/internal/metrics"
	"github.com/kindredlab/kindred/internal/models"
)

// Event types broadcast to WebSocket watchers after session mutations.
const (
	EventSessionCreated = "session.created"
	EventSessionReset   = "session.reset"
	EventSessionDeleted = "session.deleted"
	EventGraphUpdated   = "graph.updated"
	EventResultUpdated  = "result.updated"
)

// Broadcaster pushes session events to connected WebSocket clients.
type Broadcaster interface {
	BroadcastEvent(eventType, sessionID string, data json.RawMessage)
	ForgetSession(sessionID string)
}

// Recorder journals applied session operations.
type Recorder interface {
	Record(sessionID, action string, detail map[string]any)
	History(sessionID string) []JournalEntry
	Forget(sessionID string)
}

const (
	defaultMaxSessions = 100
	defaultSessionTTL  = 24 * time.Hour
	reaperInterval     = time.Minute
)

// Stats summarizes manager activity for the stats endpoint.
type Stats struct {
	ActiveSessions  int    `json:"active_sessions"`
	MaxSessions     int    `json:"max_sessions"`
	SessionsCreated uint64 `json:"sessions_created"`
	Computations    uint64 `json:"computations"`
	SessionTTL      string `json:"session_ttl"`
}

// Manager owns all live sessions and serializes edits against them. Every
// mutation recomputes the session's coefficient record, journals the
// operation, and notifies WebSocket watchers.
type Manager struct {
	log         *logrus.Logger
	broadcaster Broadcaster
	journal     Recorder
	maxSessions int
	ttl         time.Duration

	mu       sync.RWMutex
	sessions map[string]*Session

	created  atomic.Uint64
	computed atomic.Uint64
}

// NewManager creates a Manager. Non-positive limits fall back to the
// defaults of 100 sessions and a 24 hour idle TTL. The broadcaster and
// journal are optional.
func NewManager(log *logrus.Logger, broadcaster Broadcaster, journal Recorder, maxSessions int, ttl time.Duration) *Manager {
	if maxSessions <= 0 {
		maxSessions = defaultMaxSessions
	}
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &Manager{
		log:         log,
		broadcaster: broadcaster,
		journal:     journal,
		maxSessions: maxSessions,
		ttl:         ttl,
		sessions:    make(map[string]*Session),
	}
}

// Create builds a new session seeded from the requested archetype template.
func (m *Manager) Create(req models.TemplateRequest) (models.SessionSnapshot, error) {
	m.mu.Lock()
	if len(m.sessions) >= m.maxSessions {
		m.mu.Unlock()
		return models.SessionSnapshot{}, models.ErrSessionLimit
	}
	s, snap := newSession(req)
	m.sessions[s.ID] = s
	metrics.SessionsActive.Set(float64(len(m.sessions)))
	m.mu.Unlock()

	m.created.Add(1)
	m.noteComputation()

	m.recordAsync(s.ID, "session.create", map[string]any{"archetype": string(req.Relationship)})
	m.broadcast(EventSessionCreated, s.ID, map[string]any{"id": s.ID, "archetype": req.Relationship})

	m.log.WithFields(logrus.Fields{
		"session_id": s.ID,
		"archetype":  req.Relationship,
	}).Info("session created")

	return snap, nil
}

// Get returns the full state of a session.
func (m *Manager) Get(sessionID string) (models.SessionSnapshot, error) {
	s, err := m.get(sessionID)
	if err != nil {
		return models.SessionSnapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshot(), nil
}

// List returns lightweight descriptions of all sessions, oldest first.
func (m *Manager) List() []models.SessionInfo {
	m.mu.RLock()
	infos := make([]models.SessionInfo, 0, len(m.sessions))
	for _, s := range m.sessions {
		s.mu.Lock()
		infos = append(infos, s.info())
		s.mu.Unlock()
	}
	m.mu.RUnlock()

	sort.Slice(infos, func(i, j int) bool {
		if infos[i].CreatedAt.Equal(infos[j].CreatedAt) {
			return infos[i].ID < infos[j].ID
		}
		return infos[i].CreatedAt.Before(infos[j].CreatedAt)
	})

	return infos
}

// Delete removes a session, its journal, and its buffered events.
func (m *Manager) Delete(sessionID string) error {
	m.mu.Lock()
	if _, ok := m.sessions[sessionID]; !ok {
		m.mu.Unlock()
		return models.ErrSessionNotFound
	}
	delete(m.sessions, sessionID)
	metrics.SessionsActive.Set(float64(len(m.sessions)))
	m.mu.Unlock()

	m.forgetSession(sessionID, "deleted")
	m.log.WithField("session_id", sessionID).Info("session deleted")

	return nil
}

// ApplyTemplate replaces a session's workspace with a fresh archetype
// template, clearing factors and ancestor inbreeding.
func (m *Manager) ApplyTemplate(sessionID string, req models.TemplateRequest) (models.SessionSnapshot, error) {
	s, err := m.get(sessionID)
	if err != nil {
		return models.SessionSnapshot{}, err
	}

	s.mu.Lock()
	snap := s.applyTemplate(req)
	s.mu.Unlock()

	m.noteComputation()
	m.recordAsync(sessionID, "template.apply", map[string]any{"archetype": string(req.Relationship)})
	m.broadcastUpdate(sessionID, snap)

	return snap, nil
}

// Reset rebuilds a session from the parameters of its last applied
// template, discarding all edits, factors, and inbreeding overrides.
func (m *Manager) Reset(sessionID string) (models.SessionSnapshot, error) {
	s, err := m.get(sessionID)
	if err != nil {
		return models.SessionSnapshot{}, err
	}

	s.mu.Lock()
	snap := s.reset()
	s.mu.Unlock()

	m.noteComputation()
	m.recordAsync(sessionID, "session.reset", map[string]any{"archetype": string(snap.Archetype)})
	m.broadcast(EventSessionReset, sessionID, map[string]any{"archetype": snap.Archetype})
	m.broadcastUpdate(sessionID, snap)

	return snap, nil
}

// ToggleSex flips a person's sex and recomputes the coefficient record.
func (m *Manager) ToggleSex(sessionID, personID string) (models.SessionSnapshot, error) {
	s, err := m.get(sessionID)
	if err != nil {
		return models.SessionSnapshot{}, err
	}

	s.mu.Lock()
	snap, err := s.toggleSex(personID)
	s.mu.Unlock()
	if err != nil {
		return models.SessionSnapshot{}, err
	}

	m.noteComputation()
	m.recordAsync(sessionID, "sex.toggle", map[string]any{"person": personID})
	m.broadcastUpdate(sessionID, snap)

	return snap, nil
}

// Declare records a relationship between two persons, merging shared
// ancestors where the relationship implies them.
func (m *Manager) Declare(sessionID string, req models.DeclareRelationshipRequest) (models.SessionSnapshot, error) {
	s, err := m.get(sessionID)
	if err != nil {
		return models.SessionSnapshot{}, err
	}

	s.mu.Lock()
	snap, err := s.declare(req)
	s.mu.Unlock()
	if err != nil {
		return models.SessionSnapshot{}, err
	}

	m.noteComputation()
	m.recordAsync(sessionID, "relationship.declare", map[string]any{
		"person_a": req.PersonA,
		"person_b": req.PersonB,
		"type":     string(req.Type),
	})
	m.broadcastUpdate(sessionID, snap)

	return snap, nil
}

// BulkDeclare applies a batch of declarations atomically: either every
// declaration lands or the session is left untouched.
func (m *Manager) BulkDeclare(sessionID string, req models.BulkDeclareRequest) (models.SessionSnapshot, error) {
	s, err := m.get(sessionID)
	if err != nil {
		return models.SessionSnapshot{}, err
	}

	s.mu.Lock()
	snap, err := s.bulkDeclare(req.Declarations)
	s.mu.Unlock()
	if err != nil {
		return models.SessionSnapshot{}, err
	}

	m.noteComputation()
	m.recordAsync(sessionID, "relationship.bulk_declare", map[string]any{"count": len(req.Declarations)})
	m.broadcastUpdate(sessionID, snap)

	return snap, nil
}

// RelationshipOptions returns the relationship types that may be declared
// between two persons given their generation placement.
func (m *Manager) RelationshipOptions(sessionID, personA, personB string) ([]models.RelationshipType, error) {
	s, err := m.get(sessionID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.RelationshipOptions(personA, personB)
}

// FindPaths returns the shared-ancestor paths between two persons in the
// session's pedigree.
func (m *Manager) FindPaths(sessionID, personA, personB string) ([]models.AncestorPath, error) {
	s, err := m.get(sessionID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.paths(personA, personB)
}

// AddFactor attaches a consanguinity factor to the session.
func (m *Manager) AddFactor(sessionID string, req models.AddFactorRequest) (models.SessionSnapshot, error) {
	s, err := m.get(sessionID)
	if err != nil {
		return models.SessionSnapshot{}, err
	}

	s.mu.Lock()
	snap, factor, err := s.addFactor(req)
	s.mu.Unlock()
	if err != nil {
		return models.SessionSnapshot{}, err
	}

	m.noteComputation()
	m.recordAsync(sessionID, "factor.add", map[string]any{
		"factor_id":    factor.ID,
		"relationship": string(factor.Relationship),
		"tier":         string(factor.Tier),
		"contribution": factor.Contribution,
	})
	m.broadcastUpdate(sessionID, snap)

	return snap, nil
}

// RemoveFactor detaches a single consanguinity factor by ID.
func (m *Manager) RemoveFactor(sessionID, factorID string) (models.SessionSnapshot, error) {
	s, err := m.get(sessionID)
	if err != nil {
		return models.SessionSnapshot{}, err
	}

	s.mu.Lock()
	snap, err := s.removeFactor(factorID)
	s.mu.Unlock()
	if err != nil {
		return models.SessionSnapshot{}, err
	}

	m.noteComputation()
	m.recordAsync(sessionID, "factor.remove", map[string]any{"factor_id": factorID})
	m.broadcastUpdate(sessionID, snap)

	return snap, nil
}

// ClearFactors detaches all consanguinity factors at once.
func (m *Manager) ClearFactors(sessionID string) (models.SessionSnapshot, error) {
	s, err := m.get(sessionID)
	if err != nil {
		return models.SessionSnapshot{}, err
	}

	s.mu.Lock()
	snap, cleared := s.clearFactors()
	s.mu.Unlock()

	m.noteComputation()
	m.recordAsync(sessionID, "factor.clear", map[string]any{"cleared": cleared})
	m.broadcastUpdate(sessionID, snap)

	return snap, nil
}

// SetAncestorInbreeding pins an inbreeding coefficient on an ancestor;
// zero removes the override.
func (m *Manager) SetAncestorInbreeding(sessionID, personID string, coefficient float64) (models.SessionSnapshot, error) {
	s, err := m.get(sessionID)
	if err != nil {
		return models.SessionSnapshot{}, err
	}

	s.mu.Lock()
	snap, err := s.setAncestorInbreeding(personID, coefficient)
	s.mu.Unlock()
	if err != nil {
		return models.SessionSnapshot{}, err
	}

	m.noteComputation()
	m.recordAsync(sessionID, "inbreeding.set", map[string]any{
		"person":      personID,
		"coefficient": coefficient,
	})
	m.broadcastUpdate(sessionID, snap)

	return snap, nil
}

// Graph returns the visible projection of a session's pedigree.
func (m *Manager) Graph(sessionID string) (models.VisibleGraph, error) {
	s, err := m.get(sessionID)
	if err != nil {
		return models.VisibleGraph{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.VisibleGraph(), nil
}

// Result returns a session's current coefficient record.
func (m *Manager) Result(sessionID string) (models.ProbabilityResult, error) {
	s, err := m.get(sessionID)
	if err != nil {
		return models.ProbabilityResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.result, nil
}

// History returns the journal of operations applied to a session, oldest first.
func (m *Manager) History(sessionID string) ([]JournalEntry, error) {
	if _, err := m.get(sessionID); err != nil {
		return nil, err
	}
	if m.journal == nil {
		return nil, nil
	}

	return m.journal.History(sessionID), nil
}

// Stats reports manager activity counters.
func (m *Manager) Stats() Stats {
	m.mu.RLock()
	active := len(m.sessions)
	m.mu.RUnlock()

	return Stats{
		ActiveSessions:  active,
		MaxSessions:     m.maxSessions,
		SessionsCreated: m.created.Load(),
		Computations:    m.computed.Load(),
		SessionTTL:      m.ttl.String(),
	}
}

// SessionExists reports whether a session is still live. It satisfies the
// WebSocket hub's liveness check.
func (m *Manager) SessionExists(sessionID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.sessions[sessionID]
	return ok
}

// RunReaper evicts idle sessions on a fixed interval until ctx is cancelled.
func (m *Manager) RunReaper(ctx context.Context) {
	ticker := time.NewTicker(reaperInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.sweepExpired()
		}
	}
}

func (m *Manager) sweepExpired() {
	cutoff := time.Now().Add(-m.ttl)

	var expired []string

	m.mu.Lock()
	for id, s := range m.sessions {
		s.mu.Lock()
		idle := s.updatedAt.Before(cutoff)
		s.mu.Unlock()

		if idle {
			expired = append(expired, id)
			delete(m.sessions, id)
		}
	}
	metrics.SessionsActive.Set(float64(len(m.sessions)))
	m.mu.Unlock()

	for _, id := range expired {
		m.forgetSession(id, "expired")
		m.log.WithField("session_id", id).Info("session expired")
	}
}

func (m *Manager) get(sessionID string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[sessionID]
	m.mu.RUnlock()

	if !ok {
		return nil, models.ErrSessionNotFound
	}
	return s, nil
}

func (m *Manager) noteComputation() {
	m.computed.Add(1)
	metrics.ComputationsTotal.Inc()
}

// recordAsync journals an operation via the Journal worker (best-effort, non-blocking).
func (m *Manager) recordAsync(sessionID, action string, detail map[string]any) {
	if m.journal == nil {
		return
	}
	m.journal.Record(sessionID, action, detail)
}

// forgetSession clears journal and replay state and notifies watchers
// that the session is gone.
func (m *Manager) forgetSession(sessionID, reason string) {
	m.broadcast(EventSessionDeleted, sessionID, map[string]any{"id": sessionID, "reason": reason})
	if m.broadcaster != nil {
		m.broadcaster.ForgetSession(sessionID)
	}
	if m.journal != nil {
		m.journal.Forget(sessionID)
	}
}

// broadcastUpdate notifies watchers after any mutation: a compact graph
// summary plus the full recomputed coefficient record.
func (m *Manager) broadcastUpdate(sessionID string, snap models.SessionSnapshot) {
	m.broadcast(EventGraphUpdated, sessionID, map[string]any{
		"persons": len(snap.Graph.Persons),
		"edges":   len(snap.Graph.Edges),
	})
	m.broadcast(EventResultUpdated, sessionID, snap.Result)
}

func (m *Manager) broadcast(eventType, sessionID string, payload any) {
	if m.broadcaster == nil {
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		m.log.WithError(err).Warn("failed to marshal event payload")
		return
	}
	m.broadcaster.BroadcastEvent(eventType, sessionID, data)
}
