package pedigree

import (
	"github.com/kindredlab/kindred/internal/models"
)

// Every template seeds the selected pair at the same two ids.
const (
	PairAID = "p1"
	PairBID = "p2"
)

// BuildTemplate seeds a pedigree for the given relationship archetype.
// Person A takes sexA and person B sexB (invalid values fall back to M
// and F); synthesized fathers are male and mothers female. Generation 0
// is the oldest tier of the topology. Relationship types without a
// dedicated topology fall back to the plain two-parent sibling
// skeleton.
func BuildTemplate(rel models.RelationshipType, sexA, sexB models.Sex) *Store {
	if !sexA.Valid() {
		sexA = models.SexMale
	}
	if !sexB.Valid() {
		sexB = models.SexFemale
	}

	st := New()
	add := func(id string, sex models.Sex, gen int, label string) {
		st.persons[id] = models.Person{ID: id, Sex: sex, Generation: gen, Label: label}
	}
	link := func(parentID, childID string) {
		st.edges = append(st.edges, models.ParentChildEdge{ParentID: parentID, ChildID: childID})
	}

	switch rel {
	case models.RelHalfSiblings:
		// Shared father, two unrelated mothers.
		add("pgf", models.SexMale, 0, "Paternal grandfather")
		add("pgm", models.SexFemale, 0, "Paternal grandmother")
		add("m1gf", models.SexMale, 0, "Grandfather of person 1")
		add("m1gm", models.SexFemale, 0, "Grandmother of person 1")
		add("m2gf", models.SexMale, 0, "Grandfather of person 2")
		add("m2gm", models.SexFemale, 0, "Grandmother of person 2")
		add("fa", models.SexMale, 1, "Father")
		add("mo1", models.SexFemale, 1, "Mother of person 1")
		add("mo2", models.SexFemale, 1, "Mother of person 2")
		add(PairAID, sexA, 2, "Person 1")
		add(PairBID, sexB, 2, "Person 2")
		link("pgf", "fa")
		link("pgm", "fa")
		link("m1gf", "mo1")
		link("m1gm", "mo1")
		link("m2gf", "mo2")
		link("m2gm", "mo2")
		link("fa", PairAID)
		link("mo1", PairAID)
		link("fa", PairBID)
		link("mo2", PairBID)

	case models.RelFirstCousins:
		// The fathers are brothers; 2 of the 6 grandparents are shared.
		add("ggf", models.SexMale, 0, "Shared grandfather")
		add("ggm", models.SexFemale, 0, "Shared grandmother")
		add("m1gf", models.SexMale, 0, "Grandfather of person 1")
		add("m1gm", models.SexFemale, 0, "Grandmother of person 1")
		add("m2gf", models.SexMale, 0, "Grandfather of person 2")
		add("m2gm", models.SexFemale, 0, "Grandmother of person 2")
		add("fa1", models.SexMale, 1, "Father of person 1")
		add("mo1", models.SexFemale, 1, "Mother of person 1")
		add("fa2", models.SexMale, 1, "Father of person 2")
		add("mo2", models.SexFemale, 1, "Mother of person 2")
		add(PairAID, sexA, 2, "Person 1")
		add(PairBID, sexB, 2, "Person 2")
		link("ggf", "fa1")
		link("ggm", "fa1")
		link("ggf", "fa2")
		link("ggm", "fa2")
		link("m1gf", "mo1")
		link("m1gm", "mo1")
		link("m2gf", "mo2")
		link("m2gm", "mo2")
		link("fa1", PairAID)
		link("mo1", PairAID)
		link("fa2", PairBID)
		link("mo2", PairBID)

	case models.RelDoubleFirstCousins:
		// Two brothers married two sisters; all four grandparents shared.
		add("gaf", models.SexMale, 0, "Shared grandfather A")
		add("gam", models.SexFemale, 0, "Shared grandmother A")
		add("gbf", models.SexMale, 0, "Shared grandfather B")
		add("gbm", models.SexFemale, 0, "Shared grandmother B")
		add("fa1", models.SexMale, 1, "Father of person 1")
		add("mo1", models.SexFemale, 1, "Mother of person 1")
		add("fa2", models.SexMale, 1, "Father of person 2")
		add("mo2", models.SexFemale, 1, "Mother of person 2")
		add(PairAID, sexA, 2, "Person 1")
		add(PairBID, sexB, 2, "Person 2")
		link("gaf", "fa1")
		link("gam", "fa1")
		link("gaf", "fa2")
		link("gam", "fa2")
		link("gbf", "mo1")
		link("gbm", "mo1")
		link("gbf", "mo2")
		link("gbm", "mo2")
		link("fa1", PairAID)
		link("mo1", PairAID)
		link("fa2", PairBID)
		link("mo2", PairBID)

	case models.RelAvuncular:
		// Person 1 sits a generation above person 2; person 1's sibling
		// is person 2's parent.
		sibSex := sexA.Opposite()
		add("fa", models.SexMale, 0, "Grandfather")
		add("mo", models.SexFemale, 0, "Grandmother")
		add("spf", models.SexMale, 0, "Grandfather of person 2")
		add("spm", models.SexFemale, 0, "Grandmother of person 2")
		add(PairAID, sexA, 1, "Person 1")
		add("sib", sibSex, 1, "Sibling of person 1")
		add("sp", sibSex.Opposite(), 1, "Spouse of sibling")
		add(PairBID, sexB, 2, "Person 2")
		link("fa", PairAID)
		link("mo", PairAID)
		link("fa", "sib")
		link("mo", "sib")
		link("spf", "sp")
		link("spm", "sp")
		link("sib", PairBID)
		link("sp", PairBID)

	case models.RelSecondCousins:
		// The grandmothers are sisters sharing one great-grandparent
		// couple; the connecting chain runs through the maternal line.
		add("ggf", models.SexMale, 0, "Shared great-grandfather")
		add("ggm", models.SexFemale, 0, "Shared great-grandmother")
		add("gm1", models.SexFemale, 1, "Grandmother of person 1")
		add("gf1", models.SexMale, 1, "Grandfather of person 1")
		add("gm2", models.SexFemale, 1, "Grandmother of person 2")
		add("gf2", models.SexMale, 1, "Grandfather of person 2")
		add("mo1", models.SexFemale, 2, "Mother of person 1")
		add("fa1", models.SexMale, 2, "Father of person 1")
		add("mo2", models.SexFemale, 2, "Mother of person 2")
		add("fa2", models.SexMale, 2, "Father of person 2")
		add(PairAID, sexA, 3, "Person 1")
		add(PairBID, sexB, 3, "Person 2")
		link("ggf", "gm1")
		link("ggm", "gm1")
		link("ggf", "gm2")
		link("ggm", "gm2")
		link("gm1", "mo1")
		link("gf1", "mo1")
		link("gm2", "mo2")
		link("gf2", "mo2")
		link("fa1", PairAID)
		link("mo1", PairAID)
		link("fa2", PairBID)
		link("mo2", PairBID)

	default:
		// Plain sibling skeleton, also the fallback for unrecognized
		// relationship types.
		add("pgf", models.SexMale, 0, "Paternal grandfather")
		add("pgm", models.SexFemale, 0, "Paternal grandmother")
		add("mgf", models.SexMale, 0, "Maternal grandfather")
		add("mgm", models.SexFemale, 0, "Maternal grandmother")
		add("fa", models.SexMale, 1, "Father")
		add("mo", models.SexFemale, 1, "Mother")
		add(PairAID, sexA, 2, "Person 1")
		add(PairBID, sexB, 2, "Person 2")
		link("pgf", "fa")
		link("pgm", "fa")
		link("mgf", "mo")
		link("mgm", "mo")
		link("fa", PairAID)
		link("mo", PairAID)
		link("fa", PairBID)
		link("mo", PairBID)
	}

	st.pairA, st.pairB = PairAID, PairBID

	return st
}
