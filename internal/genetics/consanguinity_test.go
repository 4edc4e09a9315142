package genetics_test

import (
	"errors"
	"testing"
	"time"

	"github.com/kindredlab/kindred/internal/genetics"
	"github.com/kindredlab/kindred/internal/models"
	"github.com/kindredlab/kindred/internal/pedigree"
)

func factor(rel models.RelationshipType, tier models.GenerationTier) models.ConsanguinityFactor {
	contribution, err := genetics.FactorContribution(rel, tier)
	if err != nil {
		panic(err)
	}

	return models.ConsanguinityFactor{
		ID:           string(rel) + "/" + string(tier),
		Relationship: rel,
		Tier:         tier,
		Contribution: contribution,
		CreatedAt:    time.Now(),
	}
}

func TestFactorContribution(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rel  models.RelationshipType
		tier models.GenerationTier
		want float64
	}{
		{models.RelFirstCousins, models.TierParents, 0.0625},
		{models.RelSiblings, models.TierParents, 0.25},
		{models.RelFirstCousins, models.TierGrandparents, 0.03125},
		{models.RelFirstCousins, models.TierGreatGrandparents, 0.015625},
		{models.RelSecondCousins, models.TierParents, 0.015625},
	}

	for _, tc := range tests {
		got, err := genetics.FactorContribution(tc.rel, tc.tier)
		if err != nil {
			t.Errorf("FactorContribution(%s, %s): %v", tc.rel, tc.tier, err)
			continue
		}
		if !almostEqual(got, tc.want) {
			t.Errorf("FactorContribution(%s, %s) = %v, want %v", tc.rel, tc.tier, got, tc.want)
		}
	}
}

func TestFactorContribution_Rejections(t *testing.T) {
	t.Parallel()

	_, err := genetics.FactorContribution(models.RelSpouse, models.TierParents)
	if !errors.Is(err, models.ErrInvalidRelationship) {
		t.Errorf("spouse: expected ErrInvalidRelationship, got %v", err)
	}

	_, err = genetics.FactorContribution(models.RelUnrelated, models.TierParents)
	if !errors.Is(err, models.ErrInvalidRelationship) {
		t.Errorf("unrelated: expected ErrInvalidRelationship, got %v", err)
	}

	_, err = genetics.FactorContribution(models.RelSiblings, "forebears")
	if !errors.Is(err, models.ErrInvalidTier) {
		t.Errorf("bad tier: expected ErrInvalidTier, got %v", err)
	}
}

func TestTotalFactor_Composes(t *testing.T) {
	t.Parallel()

	one := factor(models.RelFirstCousins, models.TierParents)

	// Two identical factors double the adjustment.
	total := genetics.TotalFactor([]models.ConsanguinityFactor{one, one})
	if !almostEqual(total, 0.125) {
		t.Errorf("total = %v, want 0.125", total)
	}

	// A great-grandparents factor is a quarter of the parents one.
	deep := factor(models.RelFirstCousins, models.TierGreatGrandparents)
	if !almostEqual(deep.Contribution, one.Contribution/4) {
		t.Errorf("great-grandparents contribution = %v, want %v", deep.Contribution, one.Contribution/4)
	}

	if got := genetics.TotalFactor(nil); got != 0 {
		t.Errorf("empty total = %v, want 0", got)
	}
}

func TestAdjustedR(t *testing.T) {
	t.Parallel()

	if got := genetics.AdjustedR(0.5, 0.0625); !almostEqual(got, 0.53125) {
		t.Errorf("AdjustedR = %v, want 0.53125", got)
	}
	if got := genetics.AdjustedR(0.5, 0); got != 0.5 {
		t.Errorf("AdjustedR with zero factor = %v, want baseline", got)
	}
}

func TestCompute_FirstCousinsRecord(t *testing.T) {
	t.Parallel()

	st := pedigree.BuildTemplate(models.RelFirstCousins, models.SexMale, models.SexFemale)
	res := genetics.Compute(st, models.RelFirstCousins, nil, nil)

	if !almostEqual(res.BaselineR, 0.125) {
		t.Errorf("baseline = %v, want 0.125", res.BaselineR)
	}
	if !almostEqual(res.CoefficientOfRelationship, 0.125) {
		t.Errorf("r = %v, want 0.125", res.CoefficientOfRelationship)
	}
	if res.GeneOverlapProbability != res.CoefficientOfRelationship {
		t.Error("gene overlap must restate r")
	}
	if !almostEqual(res.InbreedingCoefficient, 0.0625) {
		t.Errorf("F = %v, want 0.0625", res.InbreedingCoefficient)
	}
	if res.ConsanguinityDelta != 0 {
		t.Errorf("delta = %v, want 0", res.ConsanguinityDelta)
	}
	if res.XLinked == nil || *res.XLinked != 0.125 {
		t.Errorf("x = %v, want 0.125", res.XLinked)
	}
	if res.YLinked == nil || *res.YLinked != 0 {
		t.Errorf("y = %v, want 0", res.YLinked)
	}
}

func TestCompute_ConsanguinityAdjustsSiblingRecord(t *testing.T) {
	t.Parallel()

	st := pedigree.BuildTemplate(models.RelSiblings, models.SexMale, models.SexFemale)
	factors := []models.ConsanguinityFactor{factor(models.RelFirstCousins, models.TierParents)}

	res := genetics.Compute(st, models.RelSiblings, nil, factors)

	if !almostEqual(res.BaselineR, 0.5) {
		t.Errorf("baseline = %v, want 0.5", res.BaselineR)
	}
	if !almostEqual(res.CoefficientOfRelationship, 0.53125) {
		t.Errorf("adjusted r = %v, want 0.53125", res.CoefficientOfRelationship)
	}
	if !almostEqual(res.InbreedingCoefficient, 0.265625) {
		t.Errorf("F = %v, want 0.265625", res.InbreedingCoefficient)
	}
	if !almostEqual(res.ConsanguinityDelta, 0.03125) {
		t.Errorf("delta = %v, want 0.03125", res.ConsanguinityDelta)
	}
}

func TestCompute_SexToggleSwitchesLinkedCoefficients(t *testing.T) {
	t.Parallel()

	st := pedigree.BuildTemplate(models.RelFirstCousins, models.SexMale, models.SexFemale)

	st, err := st.ToggleSex(pedigree.PairBID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}

	res := genetics.Compute(st, models.RelFirstCousins, nil, nil)
	if res.XLinked == nil || *res.XLinked != 0.125 {
		t.Errorf("x for M-M cousins = %v, want 0.125", res.XLinked)
	}
	if res.YLinked == nil || *res.YLinked != 1.0 {
		t.Errorf("y for M-M cousins = %v, want 1.0", res.YLinked)
	}
}

func TestCompute_AncestorInbreedingFeedsRecord(t *testing.T) {
	t.Parallel()

	st := pedigree.BuildTemplate(models.RelSiblings, models.SexMale, models.SexFemale)

	// Both parents marked inbred at F=0.25 inflate every path by 1.25.
	inb := map[string]float64{"fa": 0.25, "mo": 0.25}
	res := genetics.Compute(st, models.RelSiblings, inb, nil)

	if !almostEqual(res.BaselineR, 0.625) {
		t.Errorf("baseline = %v, want 0.625", res.BaselineR)
	}
}

func TestCompute_MissingPairDegradesToZero(t *testing.T) {
	t.Parallel()

	st := pedigree.New().SetPair("ghost-a", "ghost-b")
	res := genetics.Compute(st, models.RelSiblings, nil, nil)

	if res.BaselineR != 0 || res.CoefficientOfRelationship != 0 {
		t.Errorf("coefficients = %v/%v, want zeros", res.BaselineR, res.CoefficientOfRelationship)
	}
	if len(res.Paths) != 0 {
		t.Errorf("paths = %v, want empty", res.Paths)
	}
	if res.XLinked != nil || res.YLinked != nil {
		t.Error("sex-linked values must be nil without persons")
	}
}
