package models

import "time"

// RelationshipType names a kinship archetype. The same enum serves three
// surfaces: template seeding, relationship declarations in the editor,
// and the ancestral-relationship input of consanguinity factors.
type RelationshipType string

const (
	RelParentChild             RelationshipType = "parent-child"
	RelSiblings                RelationshipType = "siblings"
	RelHalfSiblings            RelationshipType = "half-siblings"
	RelGrandparent             RelationshipType = "grandparent-grandchild"
	RelAvuncular               RelationshipType = "avuncular"
	RelFirstCousins            RelationshipType = "first-cousins"
	RelDoubleFirstCousins      RelationshipType = "double-first-cousins"
	RelFirstCousinsOnceRemoved RelationshipType = "first-cousins-once-removed"
	RelGreatGrandparent        RelationshipType = "great-grandparent"
	RelSecondCousins           RelationshipType = "second-cousins"
	RelThirdCousins            RelationshipType = "third-cousins"
	RelSpouse                  RelationshipType = "spouse"
	RelUnrelated               RelationshipType = "unrelated"
)

// Valid reports whether t is a member of the enum.
func (t RelationshipType) Valid() bool {
	switch t {
	case RelParentChild, RelSiblings, RelHalfSiblings, RelGrandparent,
		RelAvuncular, RelFirstCousins, RelDoubleFirstCousins,
		RelFirstCousinsOnceRemoved, RelGreatGrandparent, RelSecondCousins,
		RelThirdCousins, RelSpouse, RelUnrelated:
		return true
	}

	return false
}

// Declarable reports whether t may be declared between two persons in the
// relationship editor. Structural merging applies only to siblings and
// half-siblings; the rest are recorded in the declaration log as-is.
func (t RelationshipType) Declarable() bool {
	switch t {
	case RelSiblings, RelHalfSiblings, RelFirstCousins, RelSecondCousins,
		RelSpouse, RelUnrelated:
		return true
	}

	return false
}

// DeclaredRelationship is one entry of the append-only declaration log.
// Person IDs are stored as given at declaration time; consumers resolve
// them through the merge map when projecting.
type DeclaredRelationship struct {
	PersonA string           `json:"person_a"`
	PersonB string           `json:"person_b"`
	Type    RelationshipType `json:"type"`
}

// GenerationTier locates an ancestral relationship relative to the
// selected pair when computing consanguinity adjustments.
type GenerationTier string

const (
	TierParents           GenerationTier = "parents"
	TierGrandparents      GenerationTier = "grandparents"
	TierGreatGrandparents GenerationTier = "great-grandparents"
)

// Valid reports whether g is a member of the enum.
func (g GenerationTier) Valid() bool {
	switch g {
	case TierParents, TierGrandparents, TierGreatGrandparents:
		return true
	}

	return false
}

// Multiplier returns the attenuation applied to a consanguinity
// contribution at this tier. Each tier above the parents halves the
// effect again. Invalid tiers multiply to zero.
func (g GenerationTier) Multiplier() float64 {
	switch g {
	case TierParents:
		return 1.0
	case TierGrandparents:
		return 0.5
	case TierGreatGrandparents:
		return 0.25
	}

	return 0
}

// ConsanguinityFactor is one declared ancestral-relatedness adjustment on
// a session. Contribution is precomputed at creation time; factors
// compose additively.
type ConsanguinityFactor struct {
	ID           string           `json:"id"`
	Relationship RelationshipType `json:"relationship"`
	Tier         GenerationTier   `json:"tier"`
	Contribution float64          `json:"contribution"`
	Label        string           `json:"label,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
}
