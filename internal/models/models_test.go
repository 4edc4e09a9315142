package models_test

import (
	"strings"
	"testing"

	"github.com/kindredlab/kindred/internal/models"
)

func assertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func assertErrorContains(t *testing.T, err error, want string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected error containing %q, got nil", want)
	}

	if !strings.Contains(err.Error(), want) {
		t.Errorf("expected error containing %q, got %q", want, err.Error())
	}
}

func TestParseSex(t *testing.T) {
	tests := []struct {
		in      string
		want    models.Sex
		wantErr bool
	}{
		{in: "M", want: models.SexMale},
		{in: "male", want: models.SexMale},
		{in: "f", want: models.SexFemale},
		{in: "female", want: models.SexFemale},
		{in: "x", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := models.ParseSex(tc.in)
			if tc.wantErr {
				assertErrorContains(t, err, "sex must be M or F")
				return
			}
			assertNoError(t, err)
			if got != tc.want {
				t.Errorf("ParseSex(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestSexOpposite(t *testing.T) {
	if got := models.SexMale.Opposite(); got != models.SexFemale {
		t.Errorf("Opposite(M) = %q, want F", got)
	}
	if got := models.SexFemale.Opposite(); got != models.SexMale {
		t.Errorf("Opposite(F) = %q, want M", got)
	}
}

func TestGenerationTier_Multiplier(t *testing.T) {
	tests := []struct {
		tier models.GenerationTier
		want float64
	}{
		{models.TierParents, 1.0},
		{models.TierGrandparents, 0.5},
		{models.TierGreatGrandparents, 0.25},
		{models.GenerationTier("ancestors"), 0},
	}

	for _, tc := range tests {
		if got := tc.tier.Multiplier(); got != tc.want {
			t.Errorf("Multiplier(%q) = %v, want %v", tc.tier, got, tc.want)
		}
	}
}

func TestRelationshipType_Declarable(t *testing.T) {
	declarable := []models.RelationshipType{
		models.RelSiblings, models.RelHalfSiblings, models.RelFirstCousins,
		models.RelSecondCousins, models.RelSpouse, models.RelUnrelated,
	}
	for _, rel := range declarable {
		if !rel.Declarable() {
			t.Errorf("expected %q to be declarable", rel)
		}
	}

	for _, rel := range []models.RelationshipType{models.RelParentChild, models.RelAvuncular, "made-up"} {
		if rel.Declarable() {
			t.Errorf("expected %q not to be declarable", rel)
		}
	}
}

func TestTemplateRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     models.TemplateRequest
		wantErr string
	}{
		{name: "valid", req: models.TemplateRequest{Relationship: models.RelSiblings, PersonASex: "M", PersonBSex: "F"}},
		{name: "unrecognized relationship allowed", req: models.TemplateRequest{Relationship: "step-siblings"}},
		{name: "missing relationship", req: models.TemplateRequest{}, wantErr: "relationship is required"},
		{name: "relationship too long", req: models.TemplateRequest{Relationship: models.RelationshipType(strings.Repeat("x", 101))}, wantErr: "exceeds maximum length"},
		{name: "bad sex", req: models.TemplateRequest{Relationship: models.RelSiblings, PersonASex: "X"}, wantErr: "sex must be M or F"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			if tc.wantErr != "" {
				assertErrorContains(t, err, tc.wantErr)
				return
			}
			assertNoError(t, err)
		})
	}
}

func TestTemplateRequest_ValidateDefaultsSexes(t *testing.T) {
	req := models.TemplateRequest{Relationship: models.RelFirstCousins}
	assertNoError(t, req.Validate())

	if req.PersonASex != models.SexMale || req.PersonBSex != models.SexFemale {
		t.Errorf("expected defaults M/F, got %q/%q", req.PersonASex, req.PersonBSex)
	}
}

func TestDeclareRelationshipRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     models.DeclareRelationshipRequest
		wantErr string
	}{
		{name: "valid siblings", req: models.DeclareRelationshipRequest{PersonA: "fa", PersonB: "mo1", Type: models.RelSiblings}},
		{name: "valid spouse", req: models.DeclareRelationshipRequest{PersonA: "fa", PersonB: "mo1", Type: models.RelSpouse}},
		{name: "missing person_a", req: models.DeclareRelationshipRequest{PersonB: "b", Type: models.RelSiblings}, wantErr: "person_a is required"},
		{name: "missing person_b", req: models.DeclareRelationshipRequest{PersonA: "a", Type: models.RelSiblings}, wantErr: "person_b is required"},
		{name: "same person", req: models.DeclareRelationshipRequest{PersonA: "a", PersonB: "a", Type: models.RelSiblings}, wantErr: "must differ"},
		{name: "undeclarable type", req: models.DeclareRelationshipRequest{PersonA: "a", PersonB: "b", Type: models.RelParentChild}, wantErr: "unknown relationship type"},
		{name: "person_a too long", req: models.DeclareRelationshipRequest{PersonA: strings.Repeat("x", 256), PersonB: "b", Type: models.RelSiblings}, wantErr: "exceeds maximum length"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			if tc.wantErr != "" {
				assertErrorContains(t, err, tc.wantErr)
				return
			}
			assertNoError(t, err)
		})
	}
}

func TestBulkDeclareRequest_Validate(t *testing.T) {
	valid := models.DeclareRelationshipRequest{PersonA: "a", PersonB: "b", Type: models.RelSiblings}

	t.Run("empty batch", func(t *testing.T) {
		req := models.BulkDeclareRequest{}
		assertErrorContains(t, req.Validate(), "declarations is required")
	})

	t.Run("oversized batch", func(t *testing.T) {
		req := models.BulkDeclareRequest{Declarations: make([]models.DeclareRelationshipRequest, models.MaxBulkDeclarations+1)}
		for i := range req.Declarations {
			req.Declarations[i] = valid
		}
		assertErrorContains(t, req.Validate(), "maximum batch size")
	})

	t.Run("invalid entry reported with index", func(t *testing.T) {
		req := models.BulkDeclareRequest{Declarations: []models.DeclareRelationshipRequest{
			valid,
			{PersonA: "a", PersonB: "a", Type: models.RelSiblings},
		}}
		assertErrorContains(t, req.Validate(), "declarations[1]")
	})

	t.Run("valid batch", func(t *testing.T) {
		req := models.BulkDeclareRequest{Declarations: []models.DeclareRelationshipRequest{valid}}
		assertNoError(t, req.Validate())
	})
}

func TestAddFactorRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     models.AddFactorRequest
		wantErr string
	}{
		{name: "valid", req: models.AddFactorRequest{Relationship: models.RelFirstCousins, Tier: models.TierParents}},
		{name: "missing relationship", req: models.AddFactorRequest{Tier: models.TierParents}, wantErr: "relationship is required"},
		{name: "unknown relationship", req: models.AddFactorRequest{Relationship: "acquaintances", Tier: models.TierParents}, wantErr: "unknown relationship type"},
		{name: "unknown tier", req: models.AddFactorRequest{Relationship: models.RelSiblings, Tier: "forebears"}, wantErr: "unknown generation tier"},
		{name: "label too long", req: models.AddFactorRequest{Relationship: models.RelSiblings, Tier: models.TierParents, Label: strings.Repeat("x", 256)}, wantErr: "exceeds maximum length"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			if tc.wantErr != "" {
				assertErrorContains(t, err, tc.wantErr)
				return
			}
			assertNoError(t, err)
		})
	}
}

func TestSetAncestorInbreedingRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		coeff   float64
		wantErr bool
	}{
		{name: "zero", coeff: 0},
		{name: "typical", coeff: 0.0625},
		{name: "negative", coeff: -0.1, wantErr: true},
		{name: "one", coeff: 1, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := models.SetAncestorInbreedingRequest{Coefficient: tc.coeff}
			err := req.Validate()
			if tc.wantErr {
				assertErrorContains(t, err, "coefficient must be")
				return
			}
			assertNoError(t, err)
		})
	}
}
