package models

// ConsanguinityLink is a display-only connector drawn between two persons
// for a declared relationship. Kind is collapsed onto the small set of
// line styles the pedigree view knows how to render.
type ConsanguinityLink struct {
	PersonA string           `json:"person_a"`
	PersonB string           `json:"person_b"`
	Kind    RelationshipType `json:"kind"`
}

// VisibleGraph is the renderable projection of a pedigree: persons that
// survive merging, parent edges with merged IDs resolved and duplicates
// collapsed, and one link per declared relationship that warrants a
// visual connector.
type VisibleGraph struct {
	Persons []Person            `json:"persons"`
	Edges   []ParentChildEdge   `json:"edges"`
	Links   []ConsanguinityLink `json:"links"`
}
