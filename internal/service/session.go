package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kindredlab/kindred/internal/genetics"
	"github.com/kindredlab/kindred/internal/models"
	"github.com/kindredlab/kindred/internal/pedigree"
)

// Session is one editable pedigree workspace. Methods below assume the
// caller holds mu; the exported Manager operations take care of that.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu         sync.Mutex
	archetype  models.RelationshipType
	sexA       models.Sex
	sexB       models.Sex
	updatedAt  time.Time
	store      *pedigree.Store
	factors    []models.ConsanguinityFactor
	inbreeding map[string]float64
	result     models.ProbabilityResult
}

func newSession(req models.TemplateRequest) (*Session, models.SessionSnapshot) {
	s := &Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
	}
	snap := s.applyTemplate(req)

	return s, snap
}

// applyTemplate replaces the whole workspace with the named archetype
// topology; factors and ancestor inbreeding are cleared with it.
func (s *Session) applyTemplate(req models.TemplateRequest) models.SessionSnapshot {
	s.archetype = req.Relationship
	s.sexA = req.PersonASex
	s.sexB = req.PersonBSex
	s.store = pedigree.BuildTemplate(req.Relationship, req.PersonASex, req.PersonBSex)
	s.factors = nil
	s.inbreeding = nil
	s.refresh()

	return s.snapshot()
}

// reset rebuilds the workspace from the parameters of the last applied
// template, discarding every edit since.
func (s *Session) reset() models.SessionSnapshot {
	return s.applyTemplate(models.TemplateRequest{
		Relationship: s.archetype,
		PersonASex:   s.sexA,
		PersonBSex:   s.sexB,
	})
}

func (s *Session) toggleSex(personID string) (models.SessionSnapshot, error) {
	st, err := s.store.ToggleSex(personID)
	if err != nil {
		return models.SessionSnapshot{}, err
	}
	s.store = st
	s.refresh()

	return s.snapshot(), nil
}

func (s *Session) declare(req models.DeclareRelationshipRequest) (models.SessionSnapshot, error) {
	st, err := s.store.Declare(req.PersonA, req.PersonB, req.Type)
	if err != nil {
		return models.SessionSnapshot{}, err
	}
	s.store = st
	s.refresh()

	return s.snapshot(), nil
}

// bulkDeclare applies the declarations in order against a scratch store
// and commits only if every one succeeds, so a failing batch leaves the
// session untouched.
func (s *Session) bulkDeclare(reqs []models.DeclareRelationshipRequest) (models.SessionSnapshot, error) {
	scratch := s.store
	for i, req := range reqs {
		st, err := scratch.Declare(req.PersonA, req.PersonB, req.Type)
		if err != nil {
			return models.SessionSnapshot{}, fmt.Errorf("declaration %d: %w", i, err)
		}
		scratch = st
	}
	s.store = scratch
	s.refresh()

	return s.snapshot(), nil
}

func (s *Session) addFactor(req models.AddFactorRequest) (models.SessionSnapshot, models.ConsanguinityFactor, error) {
	contribution, err := genetics.FactorContribution(req.Relationship, req.Tier)
	if err != nil {
		return models.SessionSnapshot{}, models.ConsanguinityFactor{}, err
	}

	factor := models.ConsanguinityFactor{
		ID:           uuid.NewString(),
		Relationship: req.Relationship,
		Tier:         req.Tier,
		Contribution: contribution,
		Label:        req.Label,
		CreatedAt:    time.Now(),
	}
	s.factors = append(s.factors, factor)
	s.refresh()

	return s.snapshot(), factor, nil
}

func (s *Session) removeFactor(factorID string) (models.SessionSnapshot, error) {
	for i, f := range s.factors {
		if f.ID == factorID {
			s.factors = append(s.factors[:i], s.factors[i+1:]...)
			s.refresh()

			return s.snapshot(), nil
		}
	}

	return models.SessionSnapshot{}, models.ErrFactorNotFound
}

func (s *Session) clearFactors() (models.SessionSnapshot, int) {
	cleared := len(s.factors)
	s.factors = nil
	s.refresh()

	return s.snapshot(), cleared
}

// setAncestorInbreeding pins an inbreeding coefficient on a person,
// keyed by their canonical id. A zero coefficient removes the override.
func (s *Session) setAncestorInbreeding(personID string, coefficient float64) (models.SessionSnapshot, error) {
	canonical := s.store.Resolve(personID)
	if !s.store.Exists(canonical) {
		return models.SessionSnapshot{}, models.ErrPersonNotFound
	}

	if coefficient == 0 {
		delete(s.inbreeding, canonical)
	} else {
		if s.inbreeding == nil {
			s.inbreeding = make(map[string]float64)
		}
		s.inbreeding[canonical] = coefficient
	}
	s.refresh()

	return s.snapshot(), nil
}

func (s *Session) paths(aID, bID string) ([]models.AncestorPath, error) {
	if !s.store.Exists(aID) || !s.store.Exists(bID) {
		return nil, models.ErrPersonNotFound
	}

	return genetics.FindPaths(s.store, aID, bID), nil
}

func (s *Session) refresh() {
	s.result = genetics.Compute(s.store, s.archetype, s.inbreeding, s.factors)
	s.updatedAt = time.Now()
}

func (s *Session) snapshot() models.SessionSnapshot {
	snap := models.SessionSnapshot{
		ID:          s.ID,
		Archetype:   s.archetype,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.updatedAt,
		Graph:       s.store.VisibleGraph(),
		Result:      s.result,
		Factors:     make([]models.ConsanguinityFactor, len(s.factors)),
		TotalFactor: genetics.TotalFactor(s.factors),
		Declared:    s.store.Declared(),
	}
	copy(snap.Factors, s.factors)

	if len(s.inbreeding) > 0 {
		snap.AncestorInbreeding = make(map[string]float64, len(s.inbreeding))
		for id, f := range s.inbreeding {
			snap.AncestorInbreeding[id] = f
		}
	}

	return snap
}

func (s *Session) info() models.SessionInfo {
	return models.SessionInfo{
		ID:        s.ID,
		Archetype: s.archetype,
		Persons:   len(s.store.VisibleGraph().Persons),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.updatedAt,
	}
}
