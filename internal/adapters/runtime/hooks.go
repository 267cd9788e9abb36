package runtime

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/chatgate/internal/domain"
	"github.com/bnema/chatgate/internal/ports"
)

type HookHandler func(ctx context.Context, event domain.HookEvent) error

// HookBus delivers events to handlers registered for the event type
// ("command") or for a type and action ("command:stop").
type HookBus struct {
	mu       sync.RWMutex
	handlers map[string][]HookHandler
}

var _ ports.HookTrigger = (*HookBus)(nil)

func NewHookBus() *HookBus {
	return &HookBus{handlers: make(map[string][]HookHandler)}
}

func (b *HookBus) Register(name string, handler HookHandler) {
	if handler == nil {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[name] = append(b.handlers[name], handler)
}

// Trigger runs type handlers first, then type:action handlers. Every handler
// runs; failures are joined.
func (b *HookBus) Trigger(ctx context.Context, event domain.HookEvent) error {
	b.mu.RLock()
	handlers := append([]HookHandler{}, b.handlers[event.Type]...)
	if name := event.Name(); name != event.Type {
		handlers = append(handlers, b.handlers[name]...)
	}
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := runHook(ctx, handler, event); err != nil {
			errs = append(errs, fmt.Errorf("hook %s: %w", event.Name(), err))
		}
	}
	return errors.Join(errs...)
}

func runHook(ctx context.Context, handler HookHandler, event domain.HookEvent) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("panic: %v", recovered)
		}
	}()
	return handler(ctx, event)
}
