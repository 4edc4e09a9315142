package models

import "fmt"

// TemplateRequest is the payload for creating a session or re-seeding an
// existing one from a relationship template.
//
// Unrecognized relationship types are accepted and fall back to the
// plain sibling skeleton at seeding time, so only presence and length
// are validated here.
type TemplateRequest struct {
	Relationship RelationshipType `json:"relationship"`
	PersonASex   Sex              `json:"person_a_sex,omitempty"`
	PersonBSex   Sex              `json:"person_b_sex,omitempty"`
}

// Validate checks TemplateRequest fields. Empty sexes default to M for
// person A and F for person B, matching the template defaults.
func (r *TemplateRequest) Validate() error {
	if r.Relationship == "" {
		return ErrMissingRelationship
	}

	if len(r.Relationship) > 100 {
		return ErrFieldTooLong("relationship", 100)
	}

	if r.PersonASex == "" {
		r.PersonASex = SexMale
	}

	if r.PersonBSex == "" {
		r.PersonBSex = SexFemale
	}

	if !r.PersonASex.Valid() {
		return fmt.Errorf("person_a_sex: %w", ErrInvalidSex)
	}

	if !r.PersonBSex.Valid() {
		return fmt.Errorf("person_b_sex: %w", ErrInvalidSex)
	}

	return nil
}

// DeclareRelationshipRequest is the payload for declaring a relationship
// between two persons in the editor.
type DeclareRelationshipRequest struct {
	PersonA string           `json:"person_a"`
	PersonB string           `json:"person_b"`
	Type    RelationshipType `json:"type"`
}

// Validate checks that both persons are named, distinct, and the type is
// one the editor accepts.
func (r *DeclareRelationshipRequest) Validate() error {
	if r.PersonA == "" {
		return ErrMissingPersonA
	}

	if len(r.PersonA) > 255 {
		return ErrFieldTooLong("person_a", 255)
	}

	if r.PersonB == "" {
		return ErrMissingPersonB
	}

	if len(r.PersonB) > 255 {
		return ErrFieldTooLong("person_b", 255)
	}

	if r.PersonA == r.PersonB {
		return ErrSamePerson
	}

	if !r.Type.Declarable() {
		return fmt.Errorf("%w: %q", ErrInvalidRelationship, r.Type)
	}

	return nil
}

// MaxBulkDeclarations caps one bulk declaration request.
const MaxBulkDeclarations = 100

// BulkDeclareRequest applies several declarations in order in one call.
type BulkDeclareRequest struct {
	Declarations []DeclareRelationshipRequest `json:"declarations"`
}

// Validate checks the batch size and every contained declaration.
func (r *BulkDeclareRequest) Validate() error {
	if len(r.Declarations) == 0 {
		return fmt.Errorf("declarations is required")
	}

	if len(r.Declarations) > MaxBulkDeclarations {
		return fmt.Errorf("declarations exceeds maximum batch size of %d", MaxBulkDeclarations)
	}

	for i := range r.Declarations {
		if err := r.Declarations[i].Validate(); err != nil {
			return fmt.Errorf("declarations[%d]: %w", i, err)
		}
	}

	return nil
}

// AddFactorRequest is the payload for adding a consanguinity factor.
// The relationship must carry a base coefficient (checked downstream);
// spouse and unrelated are enum-valid but contribute nothing and are
// rejected when the contribution is computed.
type AddFactorRequest struct {
	Relationship RelationshipType `json:"relationship"`
	Tier         GenerationTier   `json:"tier"`
	Label        string           `json:"label,omitempty"`
}

// Validate checks AddFactorRequest fields.
func (r *AddFactorRequest) Validate() error {
	if r.Relationship == "" {
		return ErrMissingRelationship
	}

	if !r.Relationship.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidRelationship, r.Relationship)
	}

	if !r.Tier.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidTier, r.Tier)
	}

	if len(r.Label) > 255 {
		return ErrFieldTooLong("label", 255)
	}

	return nil
}

// SetAncestorInbreedingRequest sets the known inbreeding coefficient of a
// single ancestor. A coefficient of zero clears the entry.
type SetAncestorInbreedingRequest struct {
	Coefficient float64 `json:"coefficient"`
}

// Validate checks the coefficient range.
func (r *SetAncestorInbreedingRequest) Validate() error {
	if r.Coefficient < 0 || r.Coefficient >= 1 {
		return fmt.Errorf("coefficient must be at least 0 and below 1")
	}

	return nil
}
