package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bnema/chatgate/internal/domain"
	"github.com/bnema/chatgate/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	sessionsPathKey    = "sessions.path"
	sessionsFileMode   = 0o600
	sessionsDirMode    = 0o700
	sessionsConfigDir  = ".chatgate"
	sessionsConfigFile = "sessions.toml"
	tempFilePattern    = ".sessions-*.toml.tmp"
)

// SessionStore persists session entries in a single TOML file. Every Update
// is a read-modify-write of the whole file under a lock shared by all stores
// pointing at the same path.
type SessionStore struct {
	sessionsPath string
	mu           *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.SessionStore = (*SessionStore)(nil)

func NewSessionStore(cfg *viper.Viper) (*SessionStore, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	cfg.SetDefault(sessionsPathKey, filepath.Join(homeDir, sessionsConfigDir, sessionsConfigFile))

	sessionsPath := cfg.GetString(sessionsPathKey)
	if sessionsPath == "" {
		return nil, errors.New("sessions path is empty")
	}
	sessionsPath, err = normalizeSessionsPath(sessionsPath)
	if err != nil {
		return nil, err
	}

	return &SessionStore{sessionsPath: sessionsPath, mu: lockForPath(sessionsPath)}, nil
}

func (s *SessionStore) Path() string {
	return s.sessionsPath
}

func (s *SessionStore) Load(ctx context.Context) (map[string]domain.SessionEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	file, err := s.readSchema()
	if err != nil {
		return nil, err
	}

	entries := make(map[string]domain.SessionEntry, len(file.Sessions))
	for key, entry := range file.Sessions {
		entries[key] = fromSchema(entry)
	}
	return entries, nil
}

func (s *SessionStore) Update(ctx context.Context, mutate func(store map[string]domain.SessionEntry) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.readSchema()
	if err != nil {
		return err
	}

	entries := make(map[string]domain.SessionEntry, len(file.Sessions))
	for key, entry := range file.Sessions {
		entries[key] = fromSchema(entry)
	}
	if err := mutate(entries); err != nil {
		return fmt.Errorf("mutate sessions: %w", err)
	}

	file.Sessions = make(map[string]sessionSchema, len(entries))
	for key, entry := range entries {
		file.Sessions[key] = toSchema(entry)
	}

	return s.writeSchema(file)
}

func (s *SessionStore) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(s.sessionsPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			file := fileSchema{}
			file.applyDefaults()
			return file, nil
		}
		return fileSchema{}, fmt.Errorf("read sessions file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode sessions file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func (s *SessionStore) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(s.sessionsPath), sessionsDirMode); err != nil {
		return fmt.Errorf("create sessions directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode sessions file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(s.sessionsPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp sessions file: %w", err)
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
		return fmt.Errorf("write temp sessions file: %w", err)
	}
	if err := tempFile.Chmod(sessionsFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp sessions file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp sessions file: %w", err)
	}

	if err := os.Rename(tempName, s.sessionsPath); err != nil {
		return fmt.Errorf("replace sessions file: %w", err)
	}
	cleanup = false

	return nil
}

func normalizeSessionsPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve sessions path: %w", err)
	}

	return filepath.Clean(absPath), nil
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

func toSchema(entry domain.SessionEntry) sessionSchema {
	return sessionSchema{
		SessionID:                 entry.SessionID,
		GroupActivation:           string(entry.GroupActivation),
		GroupActivationNeedsIntro: entry.GroupActivationNeedsIntro,
		SendPolicy:                string(entry.SendPolicy),
		ResponseUsage:             string(entry.ResponseUsage),
		AbortedLastRun:            entry.AbortedLastRun,
		UpdatedAt:                 formatTime(entry.UpdatedAt),
	}
}

func fromSchema(entry sessionSchema) domain.SessionEntry {
	return domain.SessionEntry{
		SessionID:                 entry.SessionID,
		GroupActivation:           domain.GroupActivation(entry.GroupActivation),
		GroupActivationNeedsIntro: entry.GroupActivationNeedsIntro,
		SendPolicy:                domain.SendPolicy(entry.SendPolicy),
		ResponseUsage:             domain.UsageDisplay(entry.ResponseUsage),
		AbortedLastRun:            entry.AbortedLastRun,
		UpdatedAt:                 parseTime(entry.UpdatedAt),
	}
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.UTC().Format(time.RFC3339Nano)
}
