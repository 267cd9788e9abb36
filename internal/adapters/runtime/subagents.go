package runtime

import (
	"context"
	"strings"
	"sync"

	"github.com/bnema/chatgate/internal/ports"
)

// SubagentRegistry tracks subordinate runs by the session key that spawned
// them.
type SubagentRegistry struct {
	mu     sync.Mutex
	byKey  map[string]map[uint64]context.CancelFunc
	nextID uint64
}

var _ ports.SubagentStopper = (*SubagentRegistry)(nil)

func NewSubagentRegistry() *SubagentRegistry {
	return &SubagentRegistry{byKey: make(map[string]map[uint64]context.CancelFunc)}
}

// Register records a running sub-agent. The returned func removes it once the
// sub-agent finishes on its own.
func (s *SubagentRegistry) Register(requesterKey string, cancel context.CancelFunc) func() {
	requesterKey = strings.TrimSpace(requesterKey)

	s.mu.Lock()
	s.nextID++
	id := s.nextID
	if s.byKey[requesterKey] == nil {
		s.byKey[requesterKey] = make(map[uint64]context.CancelFunc)
	}
	s.byKey[requesterKey][id] = cancel
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		runs := s.byKey[requesterKey]
		delete(runs, id)
		if len(runs) == 0 {
			delete(s.byKey, requesterKey)
		}
	}
}

func (s *SubagentRegistry) Running(requesterKey string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.byKey[strings.TrimSpace(requesterKey)])
}

// StopForRequester cancels every sub-agent spawned by requesterKey and
// reports how many were stopped.
func (s *SubagentRegistry) StopForRequester(ctx context.Context, requesterKey string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	requesterKey = strings.TrimSpace(requesterKey)
	if requesterKey == "" {
		return 0, nil
	}

	s.mu.Lock()
	runs := s.byKey[requesterKey]
	delete(s.byKey, requesterKey)
	s.mu.Unlock()

	for _, cancel := range runs {
		cancel()
	}
	return len(runs), nil
}
