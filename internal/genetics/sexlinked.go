package genetics

import (
	"fmt"

	"github.com/kindredlab/kindred/internal/models"
)

type sexPair struct {
	a, b models.Sex
}

func pair(a, b models.Sex) sexPair { return sexPair{a: a, b: b} }

// xShare tabulates the expected fraction of person A's X material
// present identical-by-descent in person B, keyed by the archetype and
// the pair's sexes. Archetypes without a row are unmodeled and report
// nil. Rows assume the lineage each template seeds: paternal for
// first cousins, maternal for half-siblings and second cousins.
var xShare = map[models.RelationshipType]map[sexPair]float64{
	models.RelParentChild: {
		pair(models.SexMale, models.SexMale):     0,
		pair(models.SexMale, models.SexFemale):   1.0,
		pair(models.SexFemale, models.SexMale):   0.5,
		pair(models.SexFemale, models.SexFemale): 0.5,
	},
	models.RelSiblings: {
		pair(models.SexMale, models.SexMale):     0.5,
		pair(models.SexMale, models.SexFemale):   0.5,
		pair(models.SexFemale, models.SexMale):   0.25,
		pair(models.SexFemale, models.SexFemale): 0.75,
	},
	models.RelHalfSiblings: {
		pair(models.SexMale, models.SexMale):     0.5,
		pair(models.SexMale, models.SexFemale):   0.5,
		pair(models.SexFemale, models.SexMale):   0.25,
		pair(models.SexFemale, models.SexFemale): 0.25,
	},
	models.RelGrandparent: {
		pair(models.SexMale, models.SexMale):     0,
		pair(models.SexMale, models.SexFemale):   0.5,
		pair(models.SexFemale, models.SexMale):   0.25,
		pair(models.SexFemale, models.SexFemale): 0.25,
	},
	models.RelAvuncular: {
		pair(models.SexMale, models.SexMale):     0.25,
		pair(models.SexMale, models.SexFemale):   0.25,
		pair(models.SexFemale, models.SexMale):   0.125,
		pair(models.SexFemale, models.SexFemale): 0.375,
	},
	models.RelFirstCousins: {
		pair(models.SexMale, models.SexMale):     0.125,
		pair(models.SexMale, models.SexFemale):   0.125,
		pair(models.SexFemale, models.SexMale):   0.0625,
		pair(models.SexFemale, models.SexFemale): 0.1875,
	},
	models.RelDoubleFirstCousins: {
		pair(models.SexMale, models.SexMale):     0.25,
		pair(models.SexMale, models.SexFemale):   0.25,
		pair(models.SexFemale, models.SexMale):   0.125,
		pair(models.SexFemale, models.SexFemale): 0.375,
	},
	models.RelSecondCousins: {
		pair(models.SexMale, models.SexMale):     0.03125,
		pair(models.SexMale, models.SexFemale):   0.03125,
		pair(models.SexFemale, models.SexMale):   0.015625,
		pair(models.SexFemale, models.SexFemale): 0.046875,
	},
}

// yPatrilineal lists the archetypes whose seeded lineage is assumed to
// run father-to-son. Only these carry a Y expectation at all: 1 for a
// male-male pair, 0 as soon as either person is female.
var yPatrilineal = map[models.RelationshipType]bool{
	models.RelParentChild:  true,
	models.RelSiblings:     true,
	models.RelGrandparent:  true,
	models.RelAvuncular:    true,
	models.RelFirstCousins: true,
}

// XLinked returns the X-chromosome sharing coefficient for the
// archetype and sex pair, or nil when unmodeled.
func XLinked(rel models.RelationshipType, sexA, sexB models.Sex) *float64 {
	row, ok := xShare[rel]
	if !ok {
		return nil
	}

	v, ok := row[pair(sexA, sexB)]
	if !ok {
		return nil
	}

	return &v
}

// YLinked returns the Y-chromosome sharing coefficient, or nil when the
// archetype carries no Y expectation.
func YLinked(rel models.RelationshipType, sexA, sexB models.Sex) *float64 {
	if !yPatrilineal[rel] {
		return nil
	}
	if !sexA.Valid() || !sexB.Valid() {
		return nil
	}

	v := 0.0
	if sexA == models.SexMale && sexB == models.SexMale {
		v = 1.0
	}

	return &v
}

// validateLinkageTables checks every X row covers exactly the four sex
// pairs with coefficients in [0, 1], and that every Y archetype also
// has a base coefficient.
func validateLinkageTables() error {
	for rel, row := range xShare {
		if len(row) != 4 {
			return fmt.Errorf("x table row %q has %d entries, want 4", rel, len(row))
		}
		for _, a := range []models.Sex{models.SexMale, models.SexFemale} {
			for _, b := range []models.Sex{models.SexMale, models.SexFemale} {
				v, ok := row[pair(a, b)]
				if !ok {
					return fmt.Errorf("x table row %q missing %s-%s", rel, a, b)
				}
				if v < 0 || v > 1 {
					return fmt.Errorf("x table %q %s-%s = %v out of range", rel, a, b, v)
				}
			}
		}
		if _, ok := BaseR(rel); !ok {
			return fmt.Errorf("x table row %q has no base coefficient", rel)
		}
	}

	for rel := range yPatrilineal {
		if _, ok := BaseR(rel); !ok {
			return fmt.Errorf("y table entry %q has no base coefficient", rel)
		}
	}

	return nil
}

func init() {
	if err := validateLinkageTables(); err != nil {
		panic(err)
	}
}
