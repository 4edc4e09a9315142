package service

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// JournalEntry records one applied session operation.
type JournalEntry struct {
	Seq       uint64         `json:"seq"`
	SessionID string         `json:"-"`
	Action    string         `json:"action"`
	Detail    map[string]any `json:"detail,omitempty"`
	At        time.Time      `json:"at"`
}

// Journal buffers operation entries and appends them to per-session
// rings via a single worker goroutine.
type Journal struct {
	log  *logrus.Logger
	jobs chan *JournalEntry

	mu         sync.RWMutex
	entries    map[string][]JournalEntry
	seq        map[string]uint64
	maxEntries int
}

// NewJournal creates a Journal with the given queue capacity and
// per-session ring size.
func NewJournal(log *logrus.Logger, queueSize, maxEntries int) *Journal {
	if queueSize <= 0 {
		queueSize = 1000
	}
	if maxEntries <= 0 {
		maxEntries = 500
	}
	return &Journal{
		log:        log,
		jobs:       make(chan *JournalEntry, queueSize),
		entries:    make(map[string][]JournalEntry),
		seq:        make(map[string]uint64),
		maxEntries: maxEntries,
	}
}

// Record adds a journal entry. Non-blocking; drops the entry if the queue is full.
func (j *Journal) Record(sessionID, action string, detail map[string]any) {
	entry := &JournalEntry{
		SessionID: sessionID,
		Action:    action,
		Detail:    detail,
		At:        time.Now(),
	}
	select {
	case j.jobs <- entry:
	default:
		j.log.WithField("action", action).Warn("journal queue full, dropping entry")
	}
}

// Run processes entries until the context is cancelled, then drains what remains.
func (j *Journal) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			j.drain()
			return
		case entry := <-j.jobs:
			j.process(entry)
		}
	}
}

func (j *Journal) drain() {
	for {
		select {
		case entry := <-j.jobs:
			j.process(entry)
		default:
			return
		}
	}
}

func (j *Journal) process(entry *JournalEntry) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.seq[entry.SessionID]++
	entry.Seq = j.seq[entry.SessionID]

	ring := append(j.entries[entry.SessionID], *entry)
	if len(ring) > j.maxEntries {
		ring = ring[len(ring)-j.maxEntries:]
	}
	j.entries[entry.SessionID] = ring
}

// History returns the recorded entries for a session, oldest first.
func (j *Journal) History(sessionID string) []JournalEntry {
	j.mu.RLock()
	defer j.mu.RUnlock()

	ring := j.entries[sessionID]
	if len(ring) == 0 {
		return nil
	}
	cp := make([]JournalEntry, len(ring))
	copy(cp, ring)
	return cp
}

// Forget discards all entries for a deleted session.
func (j *Journal) Forget(sessionID string) {
	j.mu.Lock()
	defer j.mu.Unlock()

	delete(j.entries, sessionID)
	delete(j.seq, sessionID)
}
