// Package models defines data types for the pedigree graph and the
// relatedness-coefficient engine.
package models

import "fmt"

// Sex is the biological sex used by the genetic model.
//
// The sex-linked coefficient tables are defined over M and F only;
// requests carrying any other value are rejected at validation time.
type Sex string

const (
	SexMale   Sex = "M"
	SexFemale Sex = "F"
)

// Valid reports whether s is one of the two modeled values.
func (s Sex) Valid() bool {
	return s == SexMale || s == SexFemale
}

// Opposite returns the other sex. Invalid values map to themselves.
func (s Sex) Opposite() Sex {
	switch s {
	case SexMale:
		return SexFemale
	case SexFemale:
		return SexMale
	}

	return s
}

// ParseSex converts user input ("M", "F", "male", "female") to a Sex.
func ParseSex(v string) (Sex, error) {
	switch v {
	case "M", "m", "male":
		return SexMale, nil
	case "F", "f", "female":
		return SexFemale, nil
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidSex, v)
}

// Person is a node in the pedigree graph.
//
// Generation counts downward from the oldest tier of the seeding
// template: 0 for the topmost ancestors, increasing toward the
// selected pair. Labels are display-only and never affect computation.
type Person struct {
	ID         string `json:"id"`
	Sex        Sex    `json:"sex"`
	Generation int    `json:"generation"`
	Label      string `json:"label"`
}

// ParentChildEdge is a directed parent-to-child link.
type ParentChildEdge struct {
	ParentID string `json:"parent_id"`
	ChildID  string `json:"child_id"`
}
