package runtime

import (
	"context"
	"strings"
	"sync"

	"github.com/bnema/chatgate/internal/ports"
)

// RunRegistry tracks the cancel function of the active run per session id.
type RunRegistry struct {
	mu     sync.Mutex
	runs   map[string]*activeRun
	nextID uint64
}

type activeRun struct {
	id     uint64
	cancel context.CancelFunc
}

var _ ports.RunCanceller = (*RunRegistry)(nil)

func NewRunRegistry() *RunRegistry {
	return &RunRegistry{runs: make(map[string]*activeRun)}
}

// Start registers a run for sessionID and returns its context. A run already
// active for the session is cancelled and replaced. done deregisters the run
// and releases its context; calling it more than once is harmless.
func (r *RunRegistry) Start(parent context.Context, sessionID string) (ctx context.Context, done func()) {
	ctx, cancel := context.WithCancel(parent)
	sessionID = strings.TrimSpace(sessionID)

	r.mu.Lock()
	r.nextID++
	run := &activeRun{id: r.nextID, cancel: cancel}
	previous := r.runs[sessionID]
	r.runs[sessionID] = run
	r.mu.Unlock()

	if previous != nil {
		previous.cancel()
	}

	return ctx, func() {
		r.mu.Lock()
		if current, ok := r.runs[sessionID]; ok && current.id == run.id {
			delete(r.runs, sessionID)
		}
		r.mu.Unlock()
		cancel()
	}
}

// CancelRun cancels the active run for sessionID. It does not wait for the
// run to finish.
func (r *RunRegistry) CancelRun(sessionID string) bool {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return false
	}

	r.mu.Lock()
	run, ok := r.runs[sessionID]
	if ok {
		delete(r.runs, sessionID)
	}
	r.mu.Unlock()

	if !ok {
		return false
	}
	run.cancel()
	return true
}

func (r *RunRegistry) Active(sessionID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.runs[strings.TrimSpace(sessionID)]
	return ok
}
