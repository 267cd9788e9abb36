package application

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/bnema/chatgate/internal/domain"
	"github.com/bnema/chatgate/internal/ports/mocks"
	"github.com/stretchr/testify/require"
)

var harnessNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

type commandHarness struct {
	repo       *memoryConfigRepo
	live       *LiveConfig
	overrides  *Overrides
	sessions   *SessionService
	store      *memorySessionStore
	memory     *memoryAbortMemory
	runs       *mocks.MockRunCanceller
	queues     *mocks.MockQueueClearer
	hooks      *mocks.MockHookTrigger
	subagents  *mocks.MockSubagentStopper
	signal     *mocks.MockSignalRestarter
	supervisor *mocks.MockSupervisorRestarter
	usage      *mocks.MockUsageCostSource
	dispatcher *Dispatcher
	logs       *bytes.Buffer
}

func newCommandHarness(t *testing.T, doc domain.Document, entries map[string]domain.SessionEntry) *commandHarness {
	t.Helper()

	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	clock := fixedClock{now: harnessNow}

	h := &commandHarness{
		repo:       newMemoryConfigRepo(t, doc),
		overrides:  NewOverrides(),
		store:      newMemorySessionStore(entries),
		memory:     &memoryAbortMemory{},
		runs:       mocks.NewMockRunCanceller(t),
		queues:     mocks.NewMockQueueClearer(t),
		hooks:      mocks.NewMockHookTrigger(t),
		subagents:  mocks.NewMockSubagentStopper(t),
		signal:     mocks.NewMockSignalRestarter(t),
		supervisor: mocks.NewMockSupervisorRestarter(t),
		usage:      mocks.NewMockUsageCostSource(t),
		logs:       logs,
	}

	h.live = NewLiveConfig(h.repo, h.overrides, logger)
	require.NoError(t, h.live.Reload(context.Background()))

	config := NewConfigService(h.repo, portValidator, logger)
	config.OnWrite(h.live.Replace)

	h.sessions = NewSessionService(NewSessionTable(entries), h.store, clock, logger)
	aborts := NewAbortService(AbortDeps{
		Runs:      h.runs,
		Queues:    h.queues,
		Sessions:  h.sessions,
		Memory:    h.memory,
		Hooks:     h.hooks,
		Subagents: h.subagents,
		Clock:     clock,
		Logger:    logger,
	})

	commands := NewCommands(CommandsDeps{
		Config:    config,
		Overrides: h.overrides,
		Sessions:  h.sessions,
		Aborts:    aborts,
		Restarts:  NewRestartService(h.signal, h.supervisor),
		Usage:     h.usage,
		Clock:     clock,
		Logger:    logger,
	})
	h.dispatcher = NewDispatcher(h.live, h.sessions.Table(), logger, commands.Handlers()...)
	t.Cleanup(h.sessions.Wait)

	return h
}

func (h *commandHarness) send(t *testing.T, msg Message) *CommandResult {
	t.Helper()

	if msg.Surface == "" {
		msg.Surface = "telegram"
	}
	if msg.SenderID == "" {
		msg.SenderID = "42"
	}
	return h.dispatcher.Dispatch(context.Background(), msg)
}

func (h *commandHarness) text(t *testing.T, msg Message) string {
	t.Helper()

	result := h.send(t, msg)
	require.NotNil(t, result, "message %q was not claimed", msg.Body)
	require.False(t, result.ShouldContinue)
	require.NotNil(t, result.Reply, "message %q produced no reply", msg.Body)
	return result.Reply.Text
}
