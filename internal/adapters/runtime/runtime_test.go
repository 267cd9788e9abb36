package runtime

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/bnema/chatgate/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunRegistryCancelIsIdempotent(t *testing.T) {
	runs := NewRunRegistry()
	ctx, done := runs.Start(context.Background(), "sess-1")
	defer done()

	assert.True(t, runs.Active("sess-1"))
	assert.True(t, runs.CancelRun("sess-1"))
	assert.ErrorIs(t, ctx.Err(), context.Canceled)

	assert.False(t, runs.CancelRun("sess-1"))
	assert.False(t, runs.CancelRun(""))
	assert.False(t, runs.Active("sess-1"))
}

func TestRunRegistryStartReplacesPreviousRun(t *testing.T) {
	runs := NewRunRegistry()
	first, doneFirst := runs.Start(context.Background(), "sess-1")
	second, doneSecond := runs.Start(context.Background(), "sess-1")
	defer doneSecond()

	require.ErrorIs(t, first.Err(), context.Canceled)
	require.NoError(t, second.Err())

	doneFirst()
	assert.True(t, runs.Active("sess-1"), "finishing a replaced run must not drop its successor")
}

func TestRunRegistryDoneDeregisters(t *testing.T) {
	runs := NewRunRegistry()
	ctx, done := runs.Start(context.Background(), "sess-1")

	done()
	done()

	assert.False(t, runs.Active("sess-1"))
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
	assert.False(t, runs.CancelRun("sess-1"))
}

func TestQueueRegistryClearsByKeyAndSessionID(t *testing.T) {
	queues := NewQueueRegistry()
	queues.EnqueueFollowup("telegram:42", "one")
	queues.EnqueueFollowup("telegram:42", "two")
	queues.EnqueueLane("sess-1", "tool-call")
	queues.EnqueueFollowup("other", "keep")

	result := queues.ClearSessionQueues([]string{"telegram:42", " sess-1 ", "", "telegram:42"})

	assert.Equal(t, domain.QueueClearResult{FollowupCleared: 2, LaneCleared: 1, Keys: []string{"telegram:42", "sess-1"}}, result)
	assert.Equal(t, 3, result.Total())

	followups, lane := queues.Pending("telegram:42")
	assert.Zero(t, followups)
	assert.Zero(t, lane)
	followups, _ = queues.Pending("other")
	assert.Equal(t, 1, followups)

	again := queues.ClearSessionQueues([]string{"telegram:42", "sess-1"})
	assert.Zero(t, again.Total())
}

func TestSubagentRegistryStopsAllForRequester(t *testing.T) {
	subagents := NewSubagentRegistry()
	var cancelled []string
	var mu sync.Mutex
	cancelFor := func(name string) context.CancelFunc {
		return func() {
			mu.Lock()
			defer mu.Unlock()
			cancelled = append(cancelled, name)
		}
	}

	subagents.Register("telegram:42", cancelFor("a"))
	subagents.Register("telegram:42", cancelFor("b"))
	finished := subagents.Register("telegram:42", cancelFor("c"))
	subagents.Register("slack:7", cancelFor("other"))
	finished()

	assert.Equal(t, 2, subagents.Running("telegram:42"))

	stopped, err := subagents.StopForRequester(context.Background(), "telegram:42")
	require.NoError(t, err)
	assert.Equal(t, 2, stopped)
	assert.ElementsMatch(t, []string{"a", "b"}, cancelled)

	stopped, err = subagents.StopForRequester(context.Background(), "telegram:42")
	require.NoError(t, err)
	assert.Zero(t, stopped)
	assert.Equal(t, 1, subagents.Running("slack:7"))
}

func TestSubagentRegistryHonorsContext(t *testing.T) {
	subagents := NewSubagentRegistry()
	subagents.Register("k", func() {})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stopped, err := subagents.StopForRequester(ctx, "k")
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, stopped)
	assert.Equal(t, 1, subagents.Running("k"))
}

func TestHookBusRunsTypeThenActionHandlers(t *testing.T) {
	bus := NewHookBus()
	var order []string
	bus.Register("command:stop", func(_ context.Context, event domain.HookEvent) error {
		order = append(order, "stop:"+event.SessionKey)
		return nil
	})
	bus.Register("command", func(_ context.Context, event domain.HookEvent) error {
		order = append(order, "command")
		return nil
	})
	bus.Register("command:new", func(context.Context, domain.HookEvent) error {
		order = append(order, "new")
		return nil
	})
	bus.Register("command", nil)

	err := bus.Trigger(context.Background(), domain.HookEvent{Type: "command", Action: "stop", SessionKey: "telegram:42"})

	require.NoError(t, err)
	assert.Equal(t, []string{"command", "stop:telegram:42"}, order)
}

func TestHookBusJoinsFailuresAndRecoversPanics(t *testing.T) {
	bus := NewHookBus()
	boom := errors.New("boom")
	ran := false
	bus.Register("command:stop", func(context.Context, domain.HookEvent) error { return boom })
	bus.Register("command:stop", func(context.Context, domain.HookEvent) error { panic("bad hook") })
	bus.Register("command:stop", func(context.Context, domain.HookEvent) error {
		ran = true
		return nil
	})

	err := bus.Trigger(context.Background(), domain.HookEvent{Type: "command", Action: "stop"})

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "hook command:stop: panic: bad hook")
	assert.True(t, ran)
}

func TestAbortMemory(t *testing.T) {
	memory := NewAbortMemory()

	memory.Set("telegram:42", true)
	memory.Set("", true)
	assert.True(t, memory.Get("telegram:42"))
	assert.False(t, memory.Get(""))

	memory.Set("telegram:42", false)
	assert.False(t, memory.Get("telegram:42"))
}
