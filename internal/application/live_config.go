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

// ConfigSource yields the config that feature gates read.
type ConfigSource interface {
	Effective() domain.Document
}

// LiveConfig caches the last valid document read from disk. An invalid file
// keeps the previous document in place.
type LiveConfig struct {
	repo      ports.ConfigRepository
	overrides *Overrides
	logger    *slog.Logger

	mu  sync.RWMutex
	doc domain.Document
}

func NewLiveConfig(repo ports.ConfigRepository, overrides *Overrides, logger *slog.Logger) *LiveConfig {
	if overrides == nil {
		overrides = NewOverrides()
	}

	return &LiveConfig{repo: repo, overrides: overrides, logger: logging.OrDefault(logger), doc: domain.Document{}}
}

func (c *LiveConfig) Reload(ctx context.Context) error {
	snapshot, err := c.repo.ReadSnapshot(ctx)
	if err != nil {
		return fmt.Errorf("read config snapshot: %w", err)
	}
	if !snapshot.Valid || snapshot.Parsed == nil {
		c.logger.Warn("config file is invalid; keeping previous config", "path", snapshot.Path, "issues", len(snapshot.Issues))
		return fmt.Errorf("reload config %s: %w", snapshot.Path, domain.ErrInvalidDocument)
	}

	c.Replace(snapshot.Parsed)
	c.logger.Debug("config reloaded", "path", snapshot.Path)
	return nil
}

func (c *LiveConfig) Replace(doc domain.Document) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.doc = domain.CloneDocument(doc)
}

// Base is the document without debug overrides.
func (c *LiveConfig) Base() domain.Document {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return domain.CloneDocument(c.doc)
}

func (c *LiveConfig) Effective() domain.Document {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.overrides.Apply(c.doc)
}
