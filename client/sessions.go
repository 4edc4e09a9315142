package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// SessionService handles session lifecycle operations.
type SessionService struct {
	c *Client
}

// sessionListResponse wraps the session list response.
type sessionListResponse struct {
	Sessions []SessionInfo `json:"sessions"`
	Count    int           `json:"count"`
}

// Create creates a new session seeded from a relationship archetype.
func (s *SessionService) Create(ctx context.Context, req *CreateSessionRequest) (*Session, error) {
	var sess Session
	if err := s.c.post(ctx, "/api/v1/sessions", req, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// List returns summaries of all active sessions.
func (s *SessionService) List(ctx context.Context) ([]SessionInfo, error) {
	var resp sessionListResponse
	if err := s.c.get(ctx, "/api/v1/sessions", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Sessions, nil
}

// Get returns the full snapshot of a session by ID.
func (s *SessionService) Get(ctx context.Context, id string) (*Session, error) {
	var sess Session
	if err := s.c.get(ctx, "/api/v1/sessions/"+url.PathEscape(id), nil, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// Delete removes a session by ID.
func (s *SessionService) Delete(ctx context.Context, id string) error {
	return s.c.del(ctx, "/api/v1/sessions/"+url.PathEscape(id), nil, nil)
}

// ApplyTemplate replaces a session's pedigree with a fresh archetype template.
// All edits, factors, and inbreeding overrides are discarded.
func (s *SessionService) ApplyTemplate(ctx context.Context, id string, req *CreateSessionRequest) (*Session, error) {
	var sess Session
	if err := s.c.post(ctx, fmt.Sprintf("/api/v1/sessions/%s/template", url.PathEscape(id)), req, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// Reset rebuilds a session from its last applied template, discarding edits.
func (s *SessionService) Reset(ctx context.Context, id string) (*Session, error) {
	var sess Session
	if err := s.c.post(ctx, fmt.Sprintf("/api/v1/sessions/%s/reset", url.PathEscape(id)), nil, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// History returns a session's journal entries, oldest first.
// A positive limit keeps only the most recent entries.
func (s *SessionService) History(ctx context.Context, id string, limit int) ([]HistoryEntry, error) {
	params := url.Values{}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	var resp struct {
		Entries []HistoryEntry `json:"entries"`
		Count   int            `json:"count"`
	}
	if err := s.c.get(ctx, fmt.Sprintf("/api/v1/sessions/%s/history", url.PathEscape(id)), params, &resp); err != nil {
		return nil, err
	}
	return resp.Entries, nil
}
