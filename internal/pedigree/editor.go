package pedigree

import (
	"fmt"

	"github.com/kindredlab/kindred/internal/models"
)

// Declare records a relationship between two persons and returns the
// updated store. Every accepted declaration lands in the append-only
// log; only siblings and half-siblings additionally merge ancestors:
//
//   - siblings: b's father is merged into a's father and b's mother
//     into a's mother, each side independently and only when both
//     persons have a parent of that sex,
//   - half-siblings: the father side only.
//
// All other declarable types change nothing structurally.
func (s *Store) Declare(a, b string, rel models.RelationshipType) (*Store, error) {
	if !rel.Declarable() {
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidRelationship, rel)
	}

	if !s.Exists(a) || !s.Exists(b) {
		return nil, models.ErrPersonNotFound
	}

	// Look up both parent pairs before any merging so the two sides
	// stay independent of each other.
	fatherA, hasFatherA := s.FatherOf(a)
	fatherB, hasFatherB := s.FatherOf(b)
	motherA, hasMotherA := s.MotherOf(a)
	motherB, hasMotherB := s.MotherOf(b)

	c := s.Clone()
	c.declared = append(c.declared, models.DeclaredRelationship{PersonA: a, PersonB: b, Type: rel})

	switch rel {
	case models.RelSiblings:
		if hasFatherA && hasFatherB {
			c.merge(fatherB.ID, fatherA.ID)
		}
		if hasMotherA && hasMotherB {
			c.merge(motherB.ID, motherA.ID)
		}
	case models.RelHalfSiblings:
		if hasFatherA && hasFatherB {
			c.merge(fatherB.ID, fatherA.ID)
		}
	}

	return c, nil
}

// RelationshipOptions lists the relationship types offered between two
// persons: the full declarable set minus spouse for persons of the same
// generation, unrelated only across generations.
func (s *Store) RelationshipOptions(a, b string) ([]models.RelationshipType, error) {
	pa, okA := s.Person(a)
	pb, okB := s.Person(b)
	if !okA || !okB {
		return nil, models.ErrPersonNotFound
	}

	if pa.Generation != pb.Generation {
		return []models.RelationshipType{models.RelUnrelated}, nil
	}

	return []models.RelationshipType{
		models.RelUnrelated,
		models.RelSiblings,
		models.RelHalfSiblings,
		models.RelFirstCousins,
		models.RelSecondCousins,
	}, nil
}
