package application

import (
	"context"
	"log/slog"
	"strings"

	"github.com/bnema/chatgate/internal/domain"
	"github.com/bnema/chatgate/internal/logging"
	"github.com/bnema/chatgate/internal/ports"
)

type AbortRequest struct {
	Target domain.AbortTarget
	// AbortKey is recorded in abort memory when the target has no entry.
	AbortKey string
	// Stop selects the full /stop protocol: hook event and sub-agent stop.
	Stop bool
	// SessionKey and SessionEntry describe the session the command arrived in.
	SessionKey    string
	SessionEntry  *domain.SessionEntry
	CommandSource string
	SenderID      string
}

type AbortOutcome struct {
	RunCancelled     bool
	Cleared          domain.QueueClearResult
	Marked           bool
	Remembered       bool
	SubagentsStopped int
}

type AbortDeps struct {
	Runs      ports.RunCanceller
	Queues    ports.QueueClearer
	Sessions  *SessionService
	Memory    ports.AbortMemory
	Hooks     ports.HookTrigger
	Subagents ports.SubagentStopper
	Clock     ports.Clock
	Logger    *slog.Logger
}

// AbortService runs the stop protocol. Every step runs even when an earlier
// one had nothing to do or failed; failures are logged, never returned.
type AbortService struct {
	runs      ports.RunCanceller
	queues    ports.QueueClearer
	sessions  *SessionService
	memory    ports.AbortMemory
	hooks     ports.HookTrigger
	subagents ports.SubagentStopper
	clock     ports.Clock
	logger    *slog.Logger
}

func NewAbortService(deps AbortDeps) *AbortService {
	clock := deps.Clock
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &AbortService{
		runs:      deps.Runs,
		queues:    deps.Queues,
		sessions:  deps.Sessions,
		memory:    deps.Memory,
		hooks:     deps.Hooks,
		subagents: deps.Subagents,
		clock:     clock,
		logger:    logging.OrDefault(deps.Logger),
	}
}

func (s *AbortService) Abort(ctx context.Context, req AbortRequest) AbortOutcome {
	var outcome AbortOutcome
	target := req.Target

	if target.SessionID != "" && s.runs != nil {
		outcome.RunCancelled = s.runs.CancelRun(target.SessionID)
	}

	if s.queues != nil {
		outcome.Cleared = s.queues.ClearSessionQueues(nonEmpty(target.Key, target.SessionID))
		if outcome.Cleared.Total() > 0 {
			s.logger.Info("abort cleared queues",
				"followups", outcome.Cleared.FollowupCleared,
				"lane", outcome.Cleared.LaneCleared,
				"keys", strings.Join(outcome.Cleared.Keys, ","))
		}
	}

	switch {
	case target.Entry != nil && target.Key != "" && s.sessions != nil:
		s.sessions.Apply(ctx, target.Key, *target.Entry, func(entry *domain.SessionEntry) {
			entry.AbortedLastRun = true
		})
		outcome.Marked = true
	case req.AbortKey != "" && s.memory != nil:
		s.memory.Set(req.AbortKey, true)
		outcome.Remembered = true
	}

	if !req.Stop {
		return outcome
	}

	sessionKey := target.Key
	if sessionKey == "" {
		sessionKey = req.SessionKey
	}

	if s.hooks != nil {
		entry := target.Entry
		if entry == nil {
			entry = req.SessionEntry
		}
		event := domain.HookEvent{
			Type:       "command",
			Action:     "stop",
			SessionKey: sessionKey,
			Context: domain.HookContext{
				SessionEntry:  entry,
				SessionID:     target.SessionID,
				CommandSource: req.CommandSource,
				SenderID:      req.SenderID,
			},
			Timestamp: s.clock.Now(),
		}
		if err := s.hooks.Trigger(ctx, event); err != nil {
			s.logger.Warn("stop hook failed", "session", sessionKey, "error", err)
		}
	}

	if s.subagents != nil && sessionKey != "" {
		stopped, err := s.subagents.StopForRequester(ctx, sessionKey)
		if err != nil {
			s.logger.Warn("stop sub-agents", "requester", sessionKey, "error", err)
		}
		outcome.SubagentsStopped = stopped
	}

	return outcome
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		if value != "" {
			out = append(out, value)
		}
	}
	return out
}
