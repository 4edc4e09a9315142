package genetics_test

import (
	"testing"

	"github.com/kindredlab/kindred/internal/genetics"
	"github.com/kindredlab/kindred/internal/models"
)

func TestXLinked_ParentChildAsymmetry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		sexA, sexB models.Sex
		want       float64
	}{
		{models.SexMale, models.SexMale, 0},
		{models.SexMale, models.SexFemale, 1.0},
		{models.SexFemale, models.SexMale, 0.5},
		{models.SexFemale, models.SexFemale, 0.5},
	}

	for _, tc := range tests {
		got := genetics.XLinked(models.RelParentChild, tc.sexA, tc.sexB)
		if got == nil || *got != tc.want {
			t.Errorf("XLinked(parent-child, %s, %s) = %v, want %v", tc.sexA, tc.sexB, got, tc.want)
		}
	}
}

func TestXLinked_FirstCousinsPinnedValue(t *testing.T) {
	t.Parallel()

	got := genetics.XLinked(models.RelFirstCousins, models.SexMale, models.SexFemale)
	if got == nil || *got != 0.125 {
		t.Errorf("XLinked(first-cousins, M, F) = %v, want 0.125", got)
	}
}

func TestXLinked_UnmodeledArchetypes(t *testing.T) {
	t.Parallel()

	unmodeled := []models.RelationshipType{
		models.RelGreatGrandparent,
		models.RelFirstCousinsOnceRemoved,
		models.RelThirdCousins,
		models.RelSpouse,
		"made-up",
	}

	for _, rel := range unmodeled {
		if got := genetics.XLinked(rel, models.SexMale, models.SexFemale); got != nil {
			t.Errorf("XLinked(%s) = %v, want nil", rel, *got)
		}
	}
}

func TestXLinked_InvalidSexes(t *testing.T) {
	t.Parallel()

	if got := genetics.XLinked(models.RelSiblings, "", models.SexFemale); got != nil {
		t.Errorf("XLinked with empty sex = %v, want nil", *got)
	}
}

func TestYLinked_PatrilinealArchetypes(t *testing.T) {
	t.Parallel()

	listed := []models.RelationshipType{
		models.RelParentChild, models.RelSiblings, models.RelGrandparent,
		models.RelAvuncular, models.RelFirstCousins,
	}

	for _, rel := range listed {
		mm := genetics.YLinked(rel, models.SexMale, models.SexMale)
		if mm == nil || *mm != 1.0 {
			t.Errorf("YLinked(%s, M, M) = %v, want 1.0", rel, mm)
		}

		mf := genetics.YLinked(rel, models.SexMale, models.SexFemale)
		if mf == nil || *mf != 0 {
			t.Errorf("YLinked(%s, M, F) = %v, want 0", rel, mf)
		}

		fm := genetics.YLinked(rel, models.SexFemale, models.SexMale)
		if fm == nil || *fm != 0 {
			t.Errorf("YLinked(%s, F, M) = %v, want 0", rel, fm)
		}
	}
}

func TestYLinked_UnlistedArchetypes(t *testing.T) {
	t.Parallel()

	unlisted := []models.RelationshipType{
		models.RelHalfSiblings,
		models.RelDoubleFirstCousins,
		models.RelSecondCousins,
		models.RelGreatGrandparent,
		models.RelUnrelated,
	}

	for _, rel := range unlisted {
		if got := genetics.YLinked(rel, models.SexMale, models.SexMale); got != nil {
			t.Errorf("YLinked(%s, M, M) = %v, want nil", rel, *got)
		}
	}
}
