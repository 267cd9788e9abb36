package application

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/bnema/chatgate/internal/domain"
	"github.com/bnema/chatgate/internal/logging"
	"github.com/bnema/chatgate/internal/ports"
)

// SessionService commits session changes to the table synchronously and to
// the store in the background. A failed store write is logged; the table is
// not rolled back.
type SessionService struct {
	table  *SessionTable
	store  ports.SessionStore
	clock  ports.Clock
	logger *slog.Logger

	pending sync.WaitGroup
}

func NewSessionService(table *SessionTable, store ports.SessionStore, clock ports.Clock, logger *slog.Logger) *SessionService {
	if table == nil {
		table = NewSessionTable(nil)
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &SessionService{table: table, store: store, clock: clock, logger: logging.OrDefault(logger)}
}

func (s *SessionService) Table() *SessionTable {
	return s.table
}

// Load replaces the table with the persisted store.
func (s *SessionService) Load(ctx context.Context) error {
	if s.store == nil {
		return nil
	}

	entries, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load session store: %w", err)
	}
	s.table.Replace(entries)
	return nil
}

// Ensure returns the entry for key, creating and persisting it if needed.
func (s *SessionService) Ensure(ctx context.Context, key string) domain.SessionEntry {
	entry, created := s.table.Ensure(key, s.clock.Now())
	if created {
		s.persist(ctx, key)
	}
	return entry
}

// Apply mutates the entry stored under key, or base when the table has none,
// stamps UpdatedAt and commits the result.
func (s *SessionService) Apply(ctx context.Context, key string, base domain.SessionEntry, mutate func(entry *domain.SessionEntry)) domain.SessionEntry {
	now := s.clock.Now()
	entry := s.table.Update(key, base, func(entry *domain.SessionEntry) {
		mutate(entry)
		entry.UpdatedAt = now
	})
	s.persist(ctx, key)
	return entry
}

// Wait blocks until every scheduled store write has finished.
func (s *SessionService) Wait() {
	s.pending.Wait()
}

// persist writes the table's current entry for key into the store, merging
// with whatever the store holds for other keys at write time.
func (s *SessionService) persist(ctx context.Context, key string) {
	if s.store == nil {
		return
	}

	ctx = context.WithoutCancel(ctx)
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()

		err := s.store.Update(ctx, func(store map[string]domain.SessionEntry) error {
			entry, ok := s.table.Get(key)
			if !ok {
				return nil
			}
			store[key] = entry
			return nil
		})
		if err != nil {
			s.logger.Warn("persist session entry", "key", key, "error", err)
		}
	}()
}
