package runtime

import (
	"strings"
	"sync"

	"github.com/bnema/chatgate/internal/ports"
)

// AbortMemory remembers aborts for sessions that have no store entry yet.
type AbortMemory struct {
	mu      sync.RWMutex
	aborted map[string]struct{}
}

var _ ports.AbortMemory = (*AbortMemory)(nil)

func NewAbortMemory() *AbortMemory {
	return &AbortMemory{aborted: make(map[string]struct{})}
}

func (m *AbortMemory) Set(key string, aborted bool) {
	key = strings.TrimSpace(key)
	if key == "" {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if aborted {
		m.aborted[key] = struct{}{}
		return
	}
	delete(m.aborted, key)
}

func (m *AbortMemory) Get(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.aborted[strings.TrimSpace(key)]
	return ok
}
