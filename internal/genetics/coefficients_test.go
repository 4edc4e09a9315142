package genetics_test

import (
	"testing"

	"github.com/kindredlab/kindred/internal/genetics"
	"github.com/kindredlab/kindred/internal/models"
	"github.com/kindredlab/kindred/internal/pedigree"
)

func TestBaseR_PinnedValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rel  models.RelationshipType
		want float64
	}{
		{models.RelParentChild, 0.5},
		{models.RelSiblings, 0.5},
		{models.RelHalfSiblings, 0.25},
		{models.RelGrandparent, 0.25},
		{models.RelAvuncular, 0.25},
		{models.RelFirstCousins, 0.125},
		{models.RelDoubleFirstCousins, 0.25},
		{models.RelFirstCousinsOnceRemoved, 0.0625},
		{models.RelGreatGrandparent, 0.125},
		{models.RelSecondCousins, 0.03125},
		{models.RelThirdCousins, 0.0078125},
	}

	for _, tc := range tests {
		got, ok := genetics.BaseR(tc.rel)
		if !ok || got != tc.want {
			t.Errorf("BaseR(%s) = %v/%v, want %v", tc.rel, got, ok, tc.want)
		}
	}
}

func TestBaseR_NoEntryForNonGenetic(t *testing.T) {
	t.Parallel()

	for _, rel := range []models.RelationshipType{models.RelSpouse, models.RelUnrelated, "made-up"} {
		if _, ok := genetics.BaseR(rel); ok {
			t.Errorf("BaseR(%s) unexpectedly defined", rel)
		}
	}
}

func TestArchetypes_SortedStrongestFirst(t *testing.T) {
	t.Parallel()

	rels := genetics.Archetypes()
	if len(rels) != 11 {
		t.Fatalf("archetypes = %d, want 11", len(rels))
	}

	if rels[0] != models.RelParentChild && rels[0] != models.RelSiblings {
		t.Errorf("strongest archetype = %q, want a 0.5 entry", rels[0])
	}

	prev := 1.0
	for _, rel := range rels {
		r, _ := genetics.BaseR(rel)
		if r > prev {
			t.Fatalf("archetypes not sorted descending at %q", rel)
		}
		prev = r
	}
}

func TestInbreedingCoefficient_IsHalfOfR(t *testing.T) {
	t.Parallel()

	for _, rel := range []models.RelationshipType{
		models.RelSiblings, models.RelFirstCousins, models.RelDoubleFirstCousins,
	} {
		st := pedigree.BuildTemplate(rel, models.SexMale, models.SexFemale)
		paths := pairPaths(t, st)

		r := genetics.RelationshipCoefficient(paths, nil)
		f := genetics.InbreedingCoefficient(paths, nil)
		if !almostEqual(f, r/2) {
			t.Errorf("%s: F = %v, want r/2 = %v", rel, f, r/2)
		}
	}
}

func TestRelationshipCoefficient_AncestorInbreedingInflates(t *testing.T) {
	t.Parallel()

	paths := []models.AncestorPath{
		{CommonAncestor: "anc", Steps: 2, Route: []string{"a", "anc", "b"}},
	}

	r := genetics.RelationshipCoefficient(paths, map[string]float64{"anc": 0.5})
	if !almostEqual(r, 0.375) {
		t.Errorf("r = %v, want 0.25 * 1.5 = 0.375", r)
	}

	// Unknown ancestors read as zero inbreeding.
	r = genetics.RelationshipCoefficient(paths, map[string]float64{"other": 0.5})
	if !almostEqual(r, 0.25) {
		t.Errorf("r = %v, want 0.25", r)
	}

	// A nil map behaves like an empty one.
	r = genetics.RelationshipCoefficient(paths, nil)
	if !almostEqual(r, 0.25) {
		t.Errorf("r with nil map = %v, want 0.25", r)
	}
}

func TestGeneOverlapProbability_IsIdentityOnR(t *testing.T) {
	t.Parallel()

	st := pedigree.BuildTemplate(models.RelFirstCousins, models.SexMale, models.SexFemale)
	paths := pairPaths(t, st)

	inb := map[string]float64{"ggf": 0.25}
	if genetics.GeneOverlapProbability(paths, inb) != genetics.RelationshipCoefficient(paths, inb) {
		t.Error("gene overlap must equal the coefficient of relationship")
	}
}

func TestRelationshipCoefficient_EmptyPaths(t *testing.T) {
	t.Parallel()

	if r := genetics.RelationshipCoefficient(nil, nil); r != 0 {
		t.Errorf("r over no paths = %v, want 0", r)
	}
	if f := genetics.InbreedingCoefficient(nil, nil); f != 0 {
		t.Errorf("F over no paths = %v, want 0", f)
	}
}
