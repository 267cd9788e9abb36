package application

import (
	"sync"
	"time"

	"github.com/bnema/chatgate/internal/domain"
	"github.com/google/uuid"
)

// SessionTable is the in-process view of the session store. It is
// authoritative for the running process; the store catches up asynchronously.
type SessionTable struct {
	mu      sync.RWMutex
	entries map[string]domain.SessionEntry
}

func NewSessionTable(entries map[string]domain.SessionEntry) *SessionTable {
	table := &SessionTable{entries: make(map[string]domain.SessionEntry, len(entries))}
	for key, entry := range entries {
		table.entries[key] = entry
	}
	return table
}

func (t *SessionTable) Get(key string) (domain.SessionEntry, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	entry, ok := t.entries[key]
	return entry, ok
}

// Update applies mutate to the entry under key, or to base when the table has
// none, and stores the result. The table stays locked while mutate runs, so
// mutate must not call back into the table.
func (t *SessionTable) Update(key string, base domain.SessionEntry, mutate func(entry *domain.SessionEntry)) domain.SessionEntry {
	t.mu.Lock()
	defer t.mu.Unlock()

	entry, ok := t.entries[key]
	if !ok {
		entry = base
	}
	mutate(&entry)
	t.entries[key] = entry
	return entry
}

// Replace swaps in entries loaded from the store.
func (t *SessionTable) Replace(entries map[string]domain.SessionEntry) {
	next := make(map[string]domain.SessionEntry, len(entries))
	for key, entry := range entries {
		next[key] = entry
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.entries = next
}

func (t *SessionTable) Snapshot() map[string]domain.SessionEntry {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make(map[string]domain.SessionEntry, len(t.entries))
	for key, entry := range t.entries {
		out[key] = entry
	}
	return out
}

// Ensure returns the entry for key, creating one with a fresh session id when
// none exists. created reports whether a new entry was added.
func (t *SessionTable) Ensure(key string, now time.Time) (domain.SessionEntry, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if entry, ok := t.entries[key]; ok {
		return entry, false
	}

	entry := domain.SessionEntry{SessionID: uuid.NewString(), UpdatedAt: now}
	t.entries[key] = entry
	return entry, true
}
