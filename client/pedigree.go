package client

import (
	"context"
	"fmt"
	"net/url"
)

// PedigreeService handles pedigree graph editing operations.
type PedigreeService struct {
	c *Client
}

// Graph returns the renderable pedigree graph for a session.
func (s *PedigreeService) Graph(ctx context.Context, id string) (*Graph, error) {
	var g Graph
	if err := s.c.get(ctx, fmt.Sprintf("/api/v1/sessions/%s/graph", url.PathEscape(id)), nil, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

// ToggleSex flips a person's sex and returns the recomputed session.
func (s *PedigreeService) ToggleSex(ctx context.Context, id, personID string) (*Session, error) {
	path := fmt.Sprintf("/api/v1/sessions/%s/persons/%s/sex", url.PathEscape(id), url.PathEscape(personID))
	var sess Session
	if err := s.c.post(ctx, path, nil, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// Declared returns the relationships declared in a session so far.
func (s *PedigreeService) Declared(ctx context.Context, id string) ([]DeclaredRelationship, error) {
	var resp struct {
		Declared []DeclaredRelationship `json:"declared"`
		Count    int                    `json:"count"`
	}
	if err := s.c.get(ctx, fmt.Sprintf("/api/v1/sessions/%s/relationships", url.PathEscape(id)), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Declared, nil
}

// Declare records a relationship between two persons and returns the recomputed
// session. Declaring a blood relationship between ancestors merges their
// lineages into the pedigree.
func (s *PedigreeService) Declare(ctx context.Context, id string, req *DeclareRequest) (*Session, error) {
	var sess Session
	if err := s.c.post(ctx, fmt.Sprintf("/api/v1/sessions/%s/relationships", url.PathEscape(id)), req, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// BulkDeclare records several relationships in one atomic batch.
// If any declaration fails, none are applied.
func (s *PedigreeService) BulkDeclare(ctx context.Context, id string, declarations []DeclareRequest) (*Session, error) {
	req := &BulkDeclareRequest{Declarations: declarations}
	var sess Session
	if err := s.c.post(ctx, fmt.Sprintf("/api/v1/sessions/%s/relationships/bulk", url.PathEscape(id)), req, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// Options returns the relationship types that may be declared between two persons.
func (s *PedigreeService) Options(ctx context.Context, id, personA, personB string) ([]string, error) {
	params := url.Values{}
	params.Set("person_a", personA)
	params.Set("person_b", personB)
	var resp struct {
		Options []string `json:"options"`
	}
	if err := s.c.get(ctx, fmt.Sprintf("/api/v1/sessions/%s/relationships/options", url.PathEscape(id)), params, &resp); err != nil {
		return nil, err
	}
	return resp.Options, nil
}
