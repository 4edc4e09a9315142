package genetics

import (
	"math"
	"sort"

	"github.com/kindredlab/kindred/internal/models"
)

// baseCoefficients pins the expected autosomal sharing per relationship
// archetype. Spouse and unrelated carry no genetic expectation and have
// no entry.
var baseCoefficients = map[models.RelationshipType]float64{
	models.RelParentChild:             0.5,
	models.RelSiblings:                0.5,
	models.RelHalfSiblings:            0.25,
	models.RelGrandparent:             0.25,
	models.RelAvuncular:               0.25,
	models.RelFirstCousins:            0.125,
	models.RelDoubleFirstCousins:      0.25,
	models.RelFirstCousinsOnceRemoved: 0.0625,
	models.RelGreatGrandparent:        0.125,
	models.RelSecondCousins:           0.03125,
	models.RelThirdCousins:            0.0078125,
}

// BaseR returns the tabulated coefficient of relationship for an
// archetype, and whether the archetype has one.
func BaseR(rel models.RelationshipType) (float64, bool) {
	r, ok := baseCoefficients[rel]
	return r, ok
}

// Archetypes lists every relationship type with a tabulated base
// coefficient, strongest first, ties broken by name.
func Archetypes() []models.RelationshipType {
	out := make([]models.RelationshipType, 0, len(baseCoefficients))
	for rel := range baseCoefficients {
		out = append(out, rel)
	}
	sort.Slice(out, func(i, j int) bool {
		if baseCoefficients[out[i]] != baseCoefficients[out[j]] {
			return baseCoefficients[out[i]] > baseCoefficients[out[j]]
		}
		return out[i] < out[j]
	})

	return out
}

// RelationshipCoefficient sums the expected sharing over independent
// ancestor paths. Each path contributes 0.5^steps, inflated by the
// common ancestor's own inbreeding coefficient when one is known.
func RelationshipCoefficient(paths []models.AncestorPath, inbreeding map[string]float64) float64 {
	r := 0.0
	for _, p := range paths {
		r += math.Pow(0.5, float64(p.Steps)) * (1 + inbreeding[p.CommonAncestor])
	}

	return r
}

// InbreedingCoefficient is the inbreeding coefficient of a hypothetical
// offspring of the pair: each path contributes 0.5^(steps+1), inflated
// like RelationshipCoefficient.
func InbreedingCoefficient(paths []models.AncestorPath, inbreeding map[string]float64) float64 {
	f := 0.0
	for _, p := range paths {
		f += math.Pow(0.5, float64(p.Steps+1)) * (1 + inbreeding[p.CommonAncestor])
	}

	return f
}

// GeneOverlapProbability restates the coefficient of relationship under
// its user-facing name; the two are defined to be identical.
func GeneOverlapProbability(paths []models.AncestorPath, inbreeding map[string]float64) float64 {
	return RelationshipCoefficient(paths, inbreeding)
}
