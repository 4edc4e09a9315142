package client

import (
	"context"
	"fmt"
	"net/url"
)

// GeneticsService handles coefficient and consanguinity operations.
type GeneticsService struct {
	c *Client
}

// Result returns the computed coefficients for a session's selected pair.
func (s *GeneticsService) Result(ctx context.Context, id string) (*Result, error) {
	var r Result
	if err := s.c.get(ctx, fmt.Sprintf("/api/v1/sessions/%s/result", url.PathEscape(id)), nil, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// Paths returns the ancestor paths between two persons. Empty person ids
// default to the session's selected pair; the response echoes the ids used.
func (s *GeneticsService) Paths(ctx context.Context, id, personA, personB string) (*PathsResult, error) {
	params := url.Values{}
	if personA != "" {
		params.Set("person_a", personA)
	}
	if personB != "" {
		params.Set("person_b", personB)
	}
	var resp PathsResult
	if err := s.c.get(ctx, fmt.Sprintf("/api/v1/sessions/%s/paths", url.PathEscape(id)), params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Factors returns a session's consanguinity factors and their combined total.
func (s *GeneticsService) Factors(ctx context.Context, id string) ([]ConsanguinityFactor, float64, error) {
	var resp struct {
		Factors     []ConsanguinityFactor `json:"factors"`
		TotalFactor float64               `json:"total_factor"`
	}
	if err := s.c.get(ctx, fmt.Sprintf("/api/v1/sessions/%s/consanguinity", url.PathEscape(id)), nil, &resp); err != nil {
		return nil, 0, err
	}
	return resp.Factors, resp.TotalFactor, nil
}

// AddFactor adds a consanguinity factor and returns the recomputed session.
func (s *GeneticsService) AddFactor(ctx context.Context, id string, req *AddFactorRequest) (*Session, error) {
	var sess Session
	if err := s.c.post(ctx, fmt.Sprintf("/api/v1/sessions/%s/consanguinity", url.PathEscape(id)), req, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// RemoveFactor removes one consanguinity factor by ID.
func (s *GeneticsService) RemoveFactor(ctx context.Context, id, factorID string) (*Session, error) {
	path := fmt.Sprintf("/api/v1/sessions/%s/consanguinity/%s", url.PathEscape(id), url.PathEscape(factorID))
	var sess Session
	if err := s.c.del(ctx, path, nil, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// ClearFactors removes all consanguinity factors from a session.
func (s *GeneticsService) ClearFactors(ctx context.Context, id string) (*Session, error) {
	var sess Session
	if err := s.c.del(ctx, fmt.Sprintf("/api/v1/sessions/%s/consanguinity", url.PathEscape(id)), nil, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// SetInbreeding sets an ancestor's inbreeding coefficient in [0, 1) and
// returns the recomputed session. A coefficient of zero clears the override.
func (s *GeneticsService) SetInbreeding(ctx context.Context, id, personID string, coefficient float64) (*Session, error) {
	path := fmt.Sprintf("/api/v1/sessions/%s/ancestors/%s/inbreeding", url.PathEscape(id), url.PathEscape(personID))
	req := &SetInbreedingRequest{Coefficient: coefficient}
	var sess Session
	if err := s.c.put(ctx, path, req, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}
