package genetics

import (
	"fmt"

	"github.com/kindredlab/kindred/internal/models"
	"github.com/kindredlab/kindred/internal/pedigree"
)

// FactorContribution computes the additive adjustment contributed by
// one declared ancestral relationship: half the relationship's base
// coefficient, attenuated by the generation tier. Relationships without
// a base coefficient (spouse, unrelated, unknown) are rejected.
func FactorContribution(rel models.RelationshipType, tier models.GenerationTier) (float64, error) {
	base, ok := BaseR(rel)
	if !ok {
		return 0, fmt.Errorf("%w: %q carries no base coefficient", models.ErrInvalidRelationship, rel)
	}

	if !tier.Valid() {
		return 0, fmt.Errorf("%w: %q", models.ErrInvalidTier, tier)
	}

	return base / 2 * tier.Multiplier(), nil
}

// TotalFactor sums the contributions of all active factors.
func TotalFactor(factors []models.ConsanguinityFactor) float64 {
	total := 0.0
	for _, f := range factors {
		total += f.Contribution
	}

	return total
}

// AdjustedR scales a baseline coefficient of relationship by the
// composed consanguinity factor.
func AdjustedR(baseline, totalFactor float64) float64 {
	return baseline * (1 + totalFactor)
}

// Compute assembles the full coefficient record for the store's
// selected pair. Autosomal values flow from the graph; the X and Y
// coefficients are archetype-table lookups against the pair's current
// sexes and stay nil where the tables are silent. Missing persons
// degrade to an empty path set and zero coefficients.
func Compute(st *pedigree.Store, archetype models.RelationshipType,
	inbreeding map[string]float64, factors []models.ConsanguinityFactor) models.ProbabilityResult {

	a, b := st.Pair()
	paths := FindPaths(st, a, b)

	baseline := RelationshipCoefficient(paths, inbreeding)
	adjusted := AdjustedR(baseline, TotalFactor(factors))

	var sexA, sexB models.Sex
	if p, ok := st.Person(a); ok {
		sexA = p.Sex
	}
	if p, ok := st.Person(b); ok {
		sexB = p.Sex
	}

	return models.ProbabilityResult{
		PersonA:                   a,
		PersonB:                   b,
		BaselineR:                 baseline,
		CoefficientOfRelationship: adjusted,
		GeneOverlapProbability:    adjusted,
		InbreedingCoefficient:     adjusted / 2,
		ConsanguinityDelta:        adjusted - baseline,
		XLinked:                   XLinked(archetype, sexA, sexB),
		YLinked:                   YLinked(archetype, sexA, sexB),
		Paths:                     paths,
	}
}
