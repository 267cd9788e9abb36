package ports

import (
	"context"

	"github.com/bnema/chatgate/internal/domain"
)

// RunCanceller cancels a running agent computation. Unknown or finished runs
// are a no-op and report false.
type RunCanceller interface {
	CancelRun(sessionID string) bool
}

type QueueClearer interface {
	ClearSessionQueues(keys []string) domain.QueueClearResult
}

type HookTrigger interface {
	Trigger(ctx context.Context, event domain.HookEvent) error
}

type SubagentStopper interface {
	StopForRequester(ctx context.Context, requesterKey string) (int, error)
}

// AbortMemory records aborts for sessions that have no store entry yet.
type AbortMemory interface {
	Set(key string, aborted bool)
	Get(key string) bool
}
