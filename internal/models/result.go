package models

// AncestorPath is one independent genetic path between the selected pair
// through a single common ancestor. Route holds the full ordered chain
// from person A up to the ancestor and down to person B, endpoints
// included, so Steps == len(Route)-1 always holds.
type AncestorPath struct {
	CommonAncestor string   `json:"common_ancestor"`
	Steps          int      `json:"steps"`
	Route          []string `json:"route"`
}

// ProbabilityResult is the full coefficient record for the selected pair.
//
// BaselineR is the path-derived coefficient of relationship before
// consanguinity adjustment; CoefficientOfRelationship is the adjusted
// value and GeneOverlapProbability restates it under its user-facing
// name. XLinked and YLinked are nil when the archetype and sex
// combination is not covered by the sex-linked tables.
type ProbabilityResult struct {
	PersonA                   string         `json:"person_a"`
	PersonB                   string         `json:"person_b"`
	BaselineR                 float64        `json:"baseline_r"`
	CoefficientOfRelationship float64        `json:"coefficient_of_relationship"`
	GeneOverlapProbability    float64        `json:"gene_overlap_probability"`
	InbreedingCoefficient     float64        `json:"inbreeding_coefficient"`
	ConsanguinityDelta        float64        `json:"consanguinity_delta"`
	XLinked                   *float64       `json:"x_linked"`
	YLinked                   *float64       `json:"y_linked"`
	Paths                     []AncestorPath `json:"paths"`
}
