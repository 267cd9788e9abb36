package configfile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bnema/chatgate/internal/domain"
	"github.com/bnema/chatgate/internal/ports"
	"github.com/spf13/viper"
)

const (
	configPathKey  = "config.path"
	configFileMode = 0o600
	configDirMode  = 0o700
	configDir      = ".chatgate"
	configFile     = "chatgate.json"
)

// Repository reads and writes the gateway config document.
type Repository struct {
	configPath string
	codec      codec
	mu         *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.ConfigRepository = (*Repository)(nil)

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	cfg.SetDefault(configPathKey, filepath.Join(homeDir, configDir, configFile))

	configPath := cfg.GetString(configPathKey)
	if configPath == "" {
		return nil, errors.New("config path is empty")
	}
	return NewRepositoryAt(configPath)
}

func NewRepositoryAt(path string) (*Repository, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}
	absPath = filepath.Clean(absPath)

	fileCodec, err := codecFor(absPath)
	if err != nil {
		return nil, err
	}

	return &Repository{configPath: absPath, codec: fileCodec, mu: lockForPath(absPath)}, nil
}

func (r *Repository) Path() string {
	return r.configPath
}

// ReadSnapshot never fails on content: parse problems come back as an
// invalid snapshot. A missing file is an empty, valid document.
func (r *Repository) ReadSnapshot(ctx context.Context) (domain.ConfigSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return domain.ConfigSnapshot{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := domain.ConfigSnapshot{Path: r.configPath}
	data, err := os.ReadFile(r.configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			snapshot.Valid = true
			snapshot.Parsed = domain.Document{}
			return snapshot, nil
		}
		return domain.ConfigSnapshot{}, fmt.Errorf("read config file: %w", err)
	}
	snapshot.Exists = true
	snapshot.Raw = data

	decoded, err := r.codec.decode(data)
	if err != nil {
		snapshot.Issues = []domain.ValidationIssue{{Message: fmt.Sprintf("decode %s: %v", r.codec.name(), err)}}
		return snapshot, nil
	}

	doc, ok := domain.AsDocument(decoded)
	if !ok {
		snapshot.Issues = []domain.ValidationIssue{{Message: "config root must be an object"}}
		return snapshot, nil
	}

	snapshot.Valid = true
	snapshot.Parsed = doc
	return snapshot, nil
}

func (r *Repository) Write(ctx context.Context, doc domain.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := r.codec.encode(doc)
	if err != nil {
		return fmt.Errorf("encode config file: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return writeFileAtomic(r.configPath, data)
}

func writeFileAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), configDirMode); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp config file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp config file: %w", err)
	}
	if err := tempFile.Chmod(configFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp config file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp config file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace config file: %w", err)
	}
	cleanup = false

	return nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}
