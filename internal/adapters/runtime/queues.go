package runtime

import (
	"strings"
	"sync"

	"github.com/bnema/chatgate/internal/domain"
	"github.com/bnema/chatgate/internal/ports"
)

// QueueRegistry holds pending follow-up messages and lane tasks. Queues are
// keyed by session key or session id, whichever the producer knows.
type QueueRegistry struct {
	mu        sync.Mutex
	followups map[string][]string
	lanes     map[string][]string
}

var _ ports.QueueClearer = (*QueueRegistry)(nil)

func NewQueueRegistry() *QueueRegistry {
	return &QueueRegistry{
		followups: make(map[string][]string),
		lanes:     make(map[string][]string),
	}
}

func (q *QueueRegistry) EnqueueFollowup(key, text string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	key = strings.TrimSpace(key)
	q.followups[key] = append(q.followups[key], text)
}

func (q *QueueRegistry) EnqueueLane(key, task string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	key = strings.TrimSpace(key)
	q.lanes[key] = append(q.lanes[key], task)
}

// Pending reports queued follow-ups and lane tasks for key.
func (q *QueueRegistry) Pending(key string) (followups, lane int) {
	q.mu.Lock()
	defer q.mu.Unlock()

	key = strings.TrimSpace(key)
	return len(q.followups[key]), len(q.lanes[key])
}

// ClearSessionQueues drops everything queued under any of keys. Blank and
// repeated keys are ignored.
func (q *QueueRegistry) ClearSessionQueues(keys []string) domain.QueueClearResult {
	q.mu.Lock()
	defer q.mu.Unlock()

	result := domain.QueueClearResult{Keys: []string{}}
	seen := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		result.Keys = append(result.Keys, key)

		result.FollowupCleared += len(q.followups[key])
		result.LaneCleared += len(q.lanes[key])
		delete(q.followups, key)
		delete(q.lanes, key)
	}
	return result
}
