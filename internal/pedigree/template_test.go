package pedigree_test

import (
	"testing"

	"github.com/kindredlab/kindred/internal/models"
	"github.com/kindredlab/kindred/internal/pedigree"
)

func countGeneration(g models.VisibleGraph, gen int) int {
	n := 0
	for _, p := range g.Persons {
		if p.Generation == gen {
			n++
		}
	}

	return n
}

func TestBuildTemplate_Siblings(t *testing.T) {
	t.Parallel()

	st := pedigree.BuildTemplate(models.RelSiblings, models.SexMale, models.SexFemale)
	g := st.VisibleGraph()

	if len(g.Persons) != 8 {
		t.Errorf("persons = %d, want 8", len(g.Persons))
	}
	if len(g.Edges) != 8 {
		t.Errorf("edges = %d, want 8", len(g.Edges))
	}

	faA, _ := st.FatherOf(pedigree.PairAID)
	faB, _ := st.FatherOf(pedigree.PairBID)
	moA, _ := st.MotherOf(pedigree.PairAID)
	moB, _ := st.MotherOf(pedigree.PairBID)
	if faA.ID != faB.ID || moA.ID != moB.ID {
		t.Errorf("siblings must share both parents, got fathers %q/%q mothers %q/%q",
			faA.ID, faB.ID, moA.ID, moB.ID)
	}

	pa, _ := st.Person(pedigree.PairAID)
	pb, _ := st.Person(pedigree.PairBID)
	if pa.Sex != models.SexMale || pb.Sex != models.SexFemale {
		t.Errorf("target sexes = %q/%q, want M/F", pa.Sex, pb.Sex)
	}
}

func TestBuildTemplate_HalfSiblings(t *testing.T) {
	t.Parallel()

	st := pedigree.BuildTemplate(models.RelHalfSiblings, models.SexFemale, models.SexFemale)

	faA, _ := st.FatherOf(pedigree.PairAID)
	faB, _ := st.FatherOf(pedigree.PairBID)
	if faA.ID != faB.ID {
		t.Errorf("half-siblings must share the father, got %q/%q", faA.ID, faB.ID)
	}

	moA, _ := st.MotherOf(pedigree.PairAID)
	moB, _ := st.MotherOf(pedigree.PairBID)
	if moA.ID == moB.ID {
		t.Error("half-siblings must have distinct mothers")
	}

	g := st.VisibleGraph()
	if len(g.Persons) != 11 {
		t.Errorf("persons = %d, want 11", len(g.Persons))
	}
	if got := countGeneration(g, 0); got != 6 {
		t.Errorf("grandparents = %d, want 6", got)
	}
}

func TestBuildTemplate_FirstCousins(t *testing.T) {
	t.Parallel()

	st := pedigree.BuildTemplate(models.RelFirstCousins, models.SexMale, models.SexFemale)
	g := st.VisibleGraph()

	if got := countGeneration(g, 0); got != 6 {
		t.Errorf("grandparents = %d, want 6", got)
	}

	// The fathers are brothers: same two parents.
	faA, _ := st.FatherOf(pedigree.PairAID)
	faB, _ := st.FatherOf(pedigree.PairBID)
	gpA := st.ParentsOf(faA.ID)
	gpB := st.ParentsOf(faB.ID)
	if len(gpA) != 2 || len(gpB) != 2 || gpA[0] != gpB[0] || gpA[1] != gpB[1] {
		t.Errorf("fathers' parents differ: %v vs %v", gpA, gpB)
	}

	// The mothers are unrelated: disjoint parent sets.
	moA, _ := st.MotherOf(pedigree.PairAID)
	moB, _ := st.MotherOf(pedigree.PairBID)
	for _, a := range st.ParentsOf(moA.ID) {
		for _, b := range st.ParentsOf(moB.ID) {
			if a == b {
				t.Errorf("mothers share parent %q", a)
			}
		}
	}
}

func TestBuildTemplate_DoubleFirstCousins(t *testing.T) {
	t.Parallel()

	st := pedigree.BuildTemplate(models.RelDoubleFirstCousins, models.SexMale, models.SexMale)
	g := st.VisibleGraph()

	if len(g.Persons) != 10 {
		t.Errorf("persons = %d, want 10", len(g.Persons))
	}
	if got := countGeneration(g, 0); got != 4 {
		t.Errorf("grandparents = %d, want 4", got)
	}
}

func TestBuildTemplate_Avuncular(t *testing.T) {
	t.Parallel()

	st := pedigree.BuildTemplate(models.RelAvuncular, models.SexFemale, models.SexMale)

	pa, _ := st.Person(pedigree.PairAID)
	pb, _ := st.Person(pedigree.PairBID)
	if pa.Generation != 1 || pb.Generation != 2 {
		t.Errorf("generations = %d/%d, want 1/2", pa.Generation, pb.Generation)
	}

	sib, ok := st.Person("sib")
	if !ok {
		t.Fatal("missing synthesized sibling")
	}
	if sib.Sex != pa.Sex.Opposite() {
		t.Errorf("sibling sex = %q, want opposite of person 1 (%q)", sib.Sex, pa.Sex)
	}

	// The sibling and spouse are person 2's parents.
	parents := st.ParentsOf(pedigree.PairBID)
	if len(parents) != 2 {
		t.Fatalf("person 2 parents = %v, want 2", parents)
	}
	seen := map[string]bool{parents[0]: true, parents[1]: true}
	if !seen["sib"] || !seen["sp"] {
		t.Errorf("person 2 parents = %v, want sib and sp", parents)
	}
}

func TestBuildTemplate_SecondCousins(t *testing.T) {
	t.Parallel()

	st := pedigree.BuildTemplate(models.RelSecondCousins, models.SexMale, models.SexFemale)
	g := st.VisibleGraph()

	if len(g.Persons) != 12 {
		t.Errorf("persons = %d, want 12", len(g.Persons))
	}

	pa, _ := st.Person(pedigree.PairAID)
	if pa.Generation != 3 {
		t.Errorf("target generation = %d, want 3", pa.Generation)
	}
	if got := countGeneration(g, 0); got != 2 {
		t.Errorf("great-grandparents = %d, want 2", got)
	}
}

func TestBuildTemplate_UnrecognizedFallsBackToSiblingSkeleton(t *testing.T) {
	t.Parallel()

	st := pedigree.BuildTemplate("step-siblings", models.SexMale, models.SexFemale)

	faA, _ := st.FatherOf(pedigree.PairAID)
	faB, _ := st.FatherOf(pedigree.PairBID)
	if faA.ID == "" || faA.ID != faB.ID {
		t.Errorf("fallback skeleton must share the father, got %q/%q", faA.ID, faB.ID)
	}

	if got := len(st.VisibleGraph().Persons); got != 8 {
		t.Errorf("persons = %d, want 8", got)
	}
}

func TestBuildTemplate_InvalidSexesDefault(t *testing.T) {
	t.Parallel()

	st := pedigree.BuildTemplate(models.RelSiblings, "", "X")

	pa, _ := st.Person(pedigree.PairAID)
	pb, _ := st.Person(pedigree.PairBID)
	if pa.Sex != models.SexMale || pb.Sex != models.SexFemale {
		t.Errorf("default sexes = %q/%q, want M/F", pa.Sex, pb.Sex)
	}
}
