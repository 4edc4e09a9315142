package service

import (
	"encoding/json"
	"sync"
)

// broadcastCall records one BroadcastEvent invocation.
type broadcastCall struct {
	EventType string
	SessionID string
	Data      json.RawMessage
}

// mockBroadcaster records broadcast and forget calls.
type mockBroadcaster struct {
	mu        sync.Mutex
	events    []broadcastCall
	forgotten []string
}

func (m *mockBroadcaster) BroadcastEvent(eventType, sessionID string, data json.RawMessage) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, broadcastCall{EventType: eventType, SessionID: sessionID, Data: data})
}

func (m *mockBroadcaster) ForgetSession(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.forgotten = append(m.forgotten, sessionID)
}

func (m *mockBroadcaster) getEvents() []broadcastCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]broadcastCall, len(m.events))
	copy(cp, m.events)
	return cp
}

func (m *mockBroadcaster) eventTypes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	types := make([]string, len(m.events))
	for i, evt := range m.events {
		types[i] = evt.EventType
	}
	return types
}

func (m *mockBroadcaster) getForgotten() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]string, len(m.forgotten))
	copy(cp, m.forgotten)
	return cp
}

// recordCall records one journal Record invocation.
type recordCall struct {
	SessionID string
	Action    string
	Detail    map[string]any
}

// mockRecorder records journal calls synchronously.
type mockRecorder struct {
	mu        sync.Mutex
	records   []recordCall
	forgotten []string

	history []JournalEntry // returned by History
}

func (m *mockRecorder) Record(sessionID, action string, detail map[string]any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, recordCall{SessionID: sessionID, Action: action, Detail: detail})
}

func (m *mockRecorder) History(string) []JournalEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.history
}

func (m *mockRecorder) Forget(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.forgotten = append(m.forgotten, sessionID)
}

func (m *mockRecorder) actions() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	actions := make([]string, len(m.records))
	for i, rec := range m.records {
		actions[i] = rec.Action
	}
	return actions
}

func (m *mockRecorder) getForgotten() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]string, len(m.forgotten))
	copy(cp, m.forgotten)
	return cp
}
