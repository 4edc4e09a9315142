// Package pedigree implements the in-memory pedigree graph: persons,
// directed parent-child edges, the ancestor merge map, and the
// append-only relationship declaration log.
//
// A Store is never mutated in place. Every mutator returns a new Store
// built from a deep copy, so callers can swap pointers atomically and
// concurrent readers never observe a partial update.
package pedigree

import (
	"github.com/kindredlab/kindred/internal/models"
)

// Store holds one pedigree. The zero value is not usable; construct
// with New or BuildTemplate.
type Store struct {
	persons  map[string]models.Person
	edges    []models.ParentChildEdge
	merges   map[string]string
	declared []models.DeclaredRelationship
	pairA    string
	pairB    string
}

// New returns an empty pedigree.
func New() *Store {
	return &Store{
		persons: make(map[string]models.Person),
		merges:  make(map[string]string),
	}
}

// Clone returns a deep copy of the store.
func (s *Store) Clone() *Store {
	c := &Store{
		persons:  make(map[string]models.Person, len(s.persons)),
		edges:    make([]models.ParentChildEdge, len(s.edges)),
		merges:   make(map[string]string, len(s.merges)),
		declared: make([]models.DeclaredRelationship, len(s.declared)),
		pairA:    s.pairA,
		pairB:    s.pairB,
	}
	for id, p := range s.persons {
		c.persons[id] = p
	}
	copy(c.edges, s.edges)
	for from, to := range s.merges {
		c.merges[from] = to
	}
	copy(c.declared, s.declared)

	return c
}

// Resolve follows the merge chain from id to its canonical survivor.
// Unknown ids resolve to themselves. The walk is bounded by the size of
// the merge map so a malformed chain cannot loop forever.
func (s *Store) Resolve(id string) string {
	for i := 0; i <= len(s.merges); i++ {
		next, ok := s.merges[id]
		if !ok {
			return id
		}
		id = next
	}

	return id
}

// Person returns the canonical person for id, resolving merges first.
func (s *Store) Person(id string) (models.Person, bool) {
	p, ok := s.persons[s.Resolve(id)]
	return p, ok
}

// Exists reports whether id resolves to a known person.
func (s *Store) Exists(id string) bool {
	_, ok := s.Person(id)
	return ok
}

// Pair returns the selected pair with merges resolved.
func (s *Store) Pair() (string, string) {
	return s.Resolve(s.pairA), s.Resolve(s.pairB)
}

// AddPerson returns a new store containing p. Persons with an empty ID
// are ignored; an existing person with the same ID is replaced.
func (s *Store) AddPerson(p models.Person) *Store {
	if p.ID == "" {
		return s
	}

	c := s.Clone()
	c.persons[p.ID] = p

	return c
}

// AddEdge returns a new store with a parent-child edge appended. Edges
// are append-only and undergo no structural validation beyond dropping
// empty endpoints and self-edges; duplicates are kept and collapse only
// in the visible projection.
func (s *Store) AddEdge(parentID, childID string) *Store {
	if parentID == "" || childID == "" || parentID == childID {
		return s
	}

	c := s.Clone()
	c.edges = append(c.edges, models.ParentChildEdge{ParentID: parentID, ChildID: childID})

	return c
}

// SetPair returns a new store with the selected pair replaced.
func (s *Store) SetPair(a, b string) *Store {
	c := s.Clone()
	c.pairA, c.pairB = a, b

	return c
}

// ToggleSex returns a new store with the person's sex flipped between M
// and F. The id is resolved through the merge map first.
func (s *Store) ToggleSex(id string) (*Store, error) {
	canonical := s.Resolve(id)
	p, ok := s.persons[canonical]
	if !ok {
		return nil, models.ErrPersonNotFound
	}

	c := s.Clone()
	p.Sex = p.Sex.Opposite()
	c.persons[canonical] = p

	return c, nil
}

// ParentsOf returns the canonical ids of id's parents in edge insertion
// order, deduplicated after resolution.
func (s *Store) ParentsOf(id string) []string {
	canonical := s.Resolve(id)

	var parents []string
	seen := make(map[string]bool)
	for _, e := range s.edges {
		if s.Resolve(e.ChildID) != canonical {
			continue
		}
		p := s.Resolve(e.ParentID)
		if p == canonical || seen[p] {
			continue
		}
		seen[p] = true
		parents = append(parents, p)
	}

	return parents
}

// FatherOf returns id's first male parent in edge order.
func (s *Store) FatherOf(id string) (models.Person, bool) {
	return s.parentBySex(id, models.SexMale)
}

// MotherOf returns id's first female parent in edge order.
func (s *Store) MotherOf(id string) (models.Person, bool) {
	return s.parentBySex(id, models.SexFemale)
}

func (s *Store) parentBySex(id string, sex models.Sex) (models.Person, bool) {
	for _, pid := range s.ParentsOf(id) {
		p, ok := s.persons[pid]
		if ok && p.Sex == sex {
			return p, true
		}
	}

	return models.Person{}, false
}

// Declared returns a copy of the declaration log in declaration order.
func (s *Store) Declared() []models.DeclaredRelationship {
	out := make([]models.DeclaredRelationship, len(s.declared))
	copy(out, s.declared)

	return out
}

// merge records loser -> keeper in the merge map. Both ids are resolved
// first so the inserted hop always lands on a canonical node, which
// keeps the map acyclic. Self-merges are dropped.
func (s *Store) merge(loser, keeper string) {
	from, to := s.Resolve(loser), s.Resolve(keeper)
	if from == to {
		return
	}
	s.merges[from] = to
}
