package ports

import (
	"context"

	"github.com/bnema/chatgate/internal/domain"
)

type SessionStore interface {
	Load(ctx context.Context) (map[string]domain.SessionEntry, error)
	// Update reads the current persisted map, applies mutate and writes the
	// result back while holding the store lock.
	Update(ctx context.Context, mutate func(store map[string]domain.SessionEntry) error) error
}
