package ports

import (
	"context"

	"github.com/bnema/chatgate/internal/domain"
)

type ConfigRepository interface {
	// Path identifies the persisted document; mutations serialize on it.
	Path() string
	ReadSnapshot(ctx context.Context) (domain.ConfigSnapshot, error)
	Write(ctx context.Context, doc domain.Document) error
}
