package pedigree

import (
	"sort"

	"github.com/kindredlab/kindred/internal/models"
)

// VisibleGraph projects the store into its renderable form: persons
// that survived merging sorted by id, edges with endpoints resolved and
// duplicates collapsed in first-seen order, and one consanguinity link
// per declared relationship that warrants a connector. The projection
// is a pure read and can be repeated with identical output.
func (s *Store) VisibleGraph() models.VisibleGraph {
	g := models.VisibleGraph{
		Persons: make([]models.Person, 0, len(s.persons)),
		Edges:   make([]models.ParentChildEdge, 0, len(s.edges)),
		Links:   make([]models.ConsanguinityLink, 0, len(s.declared)),
	}

	for id, p := range s.persons {
		if _, merged := s.merges[id]; merged {
			continue
		}
		g.Persons = append(g.Persons, p)
	}
	sort.Slice(g.Persons, func(i, j int) bool { return g.Persons[i].ID < g.Persons[j].ID })

	seen := make(map[models.ParentChildEdge]bool, len(s.edges))
	for _, e := range s.edges {
		resolved := models.ParentChildEdge{
			ParentID: s.Resolve(e.ParentID),
			ChildID:  s.Resolve(e.ChildID),
		}
		if seen[resolved] {
			continue
		}
		seen[resolved] = true
		g.Edges = append(g.Edges, resolved)
	}

	for _, d := range s.declared {
		if d.Type == models.RelUnrelated || d.Type == models.RelSpouse {
			continue
		}
		g.Links = append(g.Links, models.ConsanguinityLink{
			PersonA: s.Resolve(d.PersonA),
			PersonB: s.Resolve(d.PersonB),
			Kind:    linkKind(d.Type),
		})
	}

	return g
}

// linkKind collapses a declared relationship onto the connector styles
// the pedigree view renders.
func linkKind(rel models.RelationshipType) models.RelationshipType {
	switch rel {
	case models.RelFirstCousins, models.RelSecondCousins, models.RelHalfSiblings:
		return rel
	}

	return models.RelSiblings
}
