package application

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/bnema/chatgate/internal/domain"
	"github.com/bnema/chatgate/internal/logging"
	"github.com/bnema/chatgate/internal/ports"
)

var (
	configLockRegistryMu sync.Mutex
	configLockMap        = map[string]*sync.Mutex{}
)

// ConfigService mutates the persisted config document. Mutations on the same
// file run one at a time; a document that fails validation is never written.
type ConfigService struct {
	repo      ports.ConfigRepository
	validator ports.ConfigValidator
	logger    *slog.Logger

	observersMu sync.Mutex
	observers   []func(domain.Document)
}

type ConfigShow struct {
	Path     string
	Value    any
	Found    bool
	Document domain.Document
}

func NewConfigService(repo ports.ConfigRepository, validator ports.ConfigValidator, logger *slog.Logger) *ConfigService {
	if validator == nil {
		validator = ports.ConfigValidatorFunc(domain.Valid)
	}

	return &ConfigService{repo: repo, validator: validator, logger: logging.OrDefault(logger)}
}

// OnWrite registers fn to receive every document the service persists.
func (s *ConfigService) OnWrite(fn func(domain.Document)) {
	s.observersMu.Lock()
	defer s.observersMu.Unlock()

	s.observers = append(s.observers, fn)
}

// Show returns the whole document when rawPath is empty, otherwise the node
// at rawPath. A missing node is not an error.
func (s *ConfigService) Show(ctx context.Context, rawPath string) (ConfigShow, error) {
	doc, err := s.readDocument(ctx)
	if err != nil {
		return ConfigShow{}, err
	}

	if rawPath == "" {
		return ConfigShow{Value: doc, Found: true, Document: doc}, nil
	}

	path, err := domain.ParseConfigPath(rawPath)
	if err != nil {
		return ConfigShow{}, err
	}
	value, found := domain.GetAtPath(doc, path)
	return ConfigShow{Path: rawPath, Value: value, Found: found, Document: doc}, nil
}

func (s *ConfigService) Set(ctx context.Context, rawPath string, value any) (domain.Document, error) {
	return s.mutate(ctx, func(doc domain.Document) error {
		path, err := domain.ParseConfigPath(rawPath)
		if err != nil {
			return err
		}
		if err := domain.SetAtPath(doc, path, domain.CloneValue(value)); err != nil {
			return fmt.Errorf("set %s: %w", path, err)
		}
		return nil
	})
}

func (s *ConfigService) Unset(ctx context.Context, rawPath string) (domain.Document, error) {
	return s.mutate(ctx, func(doc domain.Document) error {
		path, err := domain.ParseConfigPath(rawPath)
		if err != nil {
			return err
		}
		if !domain.UnsetAtPath(doc, path) {
			return fmt.Errorf("unset %s: %w", path, domain.ErrConfigValueNotFound)
		}
		return nil
	})
}

// mutate reads the snapshot before apply runs, so an unusable file is reported
// ahead of any problem with the requested path.
func (s *ConfigService) mutate(ctx context.Context, apply func(doc domain.Document) error) (domain.Document, error) {
	mu := lockForConfig(s.repo.Path())
	mu.Lock()
	defer mu.Unlock()

	snapshot, err := s.readDocument(ctx)
	if err != nil {
		return nil, err
	}

	doc := domain.CloneDocument(snapshot)
	if err := apply(doc); err != nil {
		return nil, err
	}

	result := s.validator.Validate(doc)
	if !result.OK {
		return nil, &domain.ValidationError{Issues: result.Issues}
	}
	validated := result.Config
	if validated == nil {
		validated = doc
	}

	if err := s.repo.Write(ctx, validated); err != nil {
		return nil, fmt.Errorf("write config: %w", err)
	}

	s.logger.Info("config written", "path", s.repo.Path())
	s.notify(validated)
	return validated, nil
}

func (s *ConfigService) readDocument(ctx context.Context) (domain.Document, error) {
	snapshot, err := s.repo.ReadSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("read config snapshot: %w", err)
	}
	if !snapshot.Valid || snapshot.Parsed == nil {
		return nil, fmt.Errorf("read config snapshot %s: %w", snapshot.Path, domain.ErrInvalidDocument)
	}

	if result := s.validator.Validate(snapshot.Parsed); !result.OK {
		return nil, fmt.Errorf("validate config snapshot %s: %w", snapshot.Path, domain.ErrInvalidDocument)
	}

	return snapshot.Parsed, nil
}

func (s *ConfigService) notify(doc domain.Document) {
	s.observersMu.Lock()
	observers := append([]func(domain.Document){}, s.observers...)
	s.observersMu.Unlock()

	for _, fn := range observers {
		fn(domain.CloneDocument(doc))
	}
}

func lockForConfig(path string) *sync.Mutex {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	configLockRegistryMu.Lock()
	defer configLockRegistryMu.Unlock()

	if mu, ok := configLockMap[path]; ok {
		return mu
	}

	mu := &sync.Mutex{}
	configLockMap[path] = mu
	return mu
}
