package pedigree_test

import (
	"reflect"
	"testing"

	"github.com/kindredlab/kindred/internal/models"
	"github.com/kindredlab/kindred/internal/pedigree"
)

func TestVisibleGraph_Idempotent(t *testing.T) {
	t.Parallel()

	st := pedigree.BuildTemplate(models.RelFirstCousins, models.SexMale, models.SexFemale)
	st, err := st.Declare("mo1", "mo2", models.RelSiblings)
	if err != nil {
		t.Fatalf("declare: %v", err)
	}

	first := st.VisibleGraph()
	second := st.VisibleGraph()

	if !reflect.DeepEqual(first, second) {
		t.Error("projection differs between calls")
	}
}

func TestVisibleGraph_CollapsesDuplicateEdges(t *testing.T) {
	t.Parallel()

	st := pedigree.New()
	st = st.AddPerson(person("fa", models.SexMale, 0))
	st = st.AddPerson(person("c", models.SexMale, 1))
	st = st.AddEdge("fa", "c")
	st = st.AddEdge("fa", "c")

	g := st.VisibleGraph()
	if len(g.Edges) != 1 {
		t.Errorf("edges = %v, want single collapsed edge", g.Edges)
	}
}

func TestVisibleGraph_HidesMergedAndRewiresEdges(t *testing.T) {
	t.Parallel()

	st := twoFamilies(t)
	st, err := st.Declare("x", "y", models.RelSiblings)
	if err != nil {
		t.Fatalf("declare: %v", err)
	}

	g := st.VisibleGraph()

	for _, p := range g.Persons {
		if p.ID == "fa2" || p.ID == "mo2" {
			t.Errorf("merged person %q still visible", p.ID)
		}
	}

	for _, e := range g.Edges {
		if e.ParentID == "fa2" || e.ParentID == "mo2" {
			t.Errorf("edge %v still references a merged parent", e)
		}
	}

	// y keeps two parent edges, now pointing at the canonical parents.
	var yParents []string
	for _, e := range g.Edges {
		if e.ChildID == "y" {
			yParents = append(yParents, e.ParentID)
		}
	}
	if !reflect.DeepEqual(yParents, []string{"fa1", "mo1"}) {
		t.Errorf("y's rewired parents = %v, want [fa1 mo1]", yParents)
	}
}

func TestVisibleGraph_Links(t *testing.T) {
	t.Parallel()

	st := twoFamilies(t)

	for _, rel := range []models.RelationshipType{
		models.RelFirstCousins,
		models.RelSecondCousins,
		models.RelSpouse,
		models.RelUnrelated,
		models.RelSiblings,
	} {
		var err error
		st, err = st.Declare("fa1", "fa2", rel)
		if err != nil {
			t.Fatalf("declare %s: %v", rel, err)
		}
	}

	g := st.VisibleGraph()

	// spouse and unrelated draw nothing; the other three declarations
	// each produce one connector.
	if len(g.Links) != 3 {
		t.Fatalf("links = %v, want 3", g.Links)
	}
	if g.Links[0].Kind != models.RelFirstCousins {
		t.Errorf("links[0].Kind = %q, want first-cousins", g.Links[0].Kind)
	}
	if g.Links[1].Kind != models.RelSecondCousins {
		t.Errorf("links[1].Kind = %q, want second-cousins", g.Links[1].Kind)
	}
	if g.Links[2].Kind != models.RelSiblings {
		t.Errorf("links[2].Kind = %q, want siblings", g.Links[2].Kind)
	}
}

func TestVisibleGraph_LinkEndpointsResolved(t *testing.T) {
	t.Parallel()

	st := twoFamilies(t)

	// Declare cousins between the mothers, then merge the mothers via a
	// sibling declaration between the children. The earlier link must
	// follow the surviving id.
	st, err := st.Declare("mo1", "mo2", models.RelFirstCousins)
	if err != nil {
		t.Fatalf("declare cousins: %v", err)
	}
	st, err = st.Declare("x", "y", models.RelSiblings)
	if err != nil {
		t.Fatalf("declare siblings: %v", err)
	}

	g := st.VisibleGraph()
	if len(g.Links) < 1 {
		t.Fatal("expected at least the cousins link")
	}
	if g.Links[0].PersonA != "mo1" || g.Links[0].PersonB != "mo1" {
		t.Errorf("link endpoints = %q/%q, want both resolved to mo1", g.Links[0].PersonA, g.Links[0].PersonB)
	}
}
