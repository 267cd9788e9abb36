package application

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/bnema/chatgate/internal/domain"
	"github.com/bnema/chatgate/internal/logging"
	"github.com/bnema/chatgate/internal/ports"
	"github.com/stretchr/testify/require"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

type memoryConfigRepo struct {
	mu       sync.Mutex
	path     string
	raw      []byte
	writes   int
	writeErr error
}

func newMemoryConfigRepo(t *testing.T, doc domain.Document) *memoryConfigRepo {
	t.Helper()

	repo := &memoryConfigRepo{path: "memory/" + t.Name() + "/chatgate.json"}
	if doc != nil {
		raw, err := json.MarshalIndent(doc, "", "  ")
		require.NoError(t, err)
		repo.raw = raw
	}
	return repo
}

func (r *memoryConfigRepo) Path() string {
	return r.path
}

func (r *memoryConfigRepo) ReadSnapshot(ctx context.Context) (domain.ConfigSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return domain.ConfigSnapshot{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot := domain.ConfigSnapshot{Path: r.path, Exists: r.raw != nil, Raw: append([]byte(nil), r.raw...)}
	if r.raw == nil {
		snapshot.Valid = true
		snapshot.Parsed = domain.Document{}
		return snapshot, nil
	}

	var decoded any
	if err := json.Unmarshal(r.raw, &decoded); err != nil {
		snapshot.Issues = []domain.ValidationIssue{{Message: err.Error()}}
		return snapshot, nil
	}
	doc, ok := domain.AsDocument(decoded)
	if !ok {
		snapshot.Issues = []domain.ValidationIssue{{Message: "root must be an object"}}
		return snapshot, nil
	}
	snapshot.Valid = true
	snapshot.Parsed = doc
	return snapshot, nil
}

func (r *memoryConfigRepo) Write(_ context.Context, doc domain.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.writeErr != nil {
		return r.writeErr
	}
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	r.raw = raw
	r.writes++
	return nil
}

func (r *memoryConfigRepo) bytes() []byte {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]byte(nil), r.raw...)
}

func (r *memoryConfigRepo) setRaw(raw string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.raw = []byte(raw)
}

func (r *memoryConfigRepo) document(t *testing.T) domain.Document {
	t.Helper()

	snapshot, err := r.ReadSnapshot(context.Background())
	require.NoError(t, err)
	require.True(t, snapshot.Valid)
	return snapshot.Parsed
}

type memorySessionStore struct {
	mu        sync.Mutex
	entries   map[string]domain.SessionEntry
	updateErr error
	updates   int
}

func newMemorySessionStore(entries map[string]domain.SessionEntry) *memorySessionStore {
	store := &memorySessionStore{entries: map[string]domain.SessionEntry{}}
	for key, entry := range entries {
		store.entries[key] = entry
	}
	return store
}

func (s *memorySessionStore) Load(context.Context) (map[string]domain.SessionEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]domain.SessionEntry, len(s.entries))
	for key, entry := range s.entries {
		out[key] = entry
	}
	return out, nil
}

func (s *memorySessionStore) Update(_ context.Context, mutate func(map[string]domain.SessionEntry) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.updateErr != nil {
		return s.updateErr
	}
	next := make(map[string]domain.SessionEntry, len(s.entries))
	for key, entry := range s.entries {
		next[key] = entry
	}
	if err := mutate(next); err != nil {
		return err
	}
	s.entries = next
	s.updates++
	return nil
}

func (s *memorySessionStore) get(key string) (domain.SessionEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	return entry, ok
}

// portValidator rejects gateway.port values outside 1..65535.
var portValidator = ports.ConfigValidatorFunc(func(doc domain.Document) domain.ValidationResult {
	value, ok := domain.GetAtPath(doc, domain.ConfigPath{domain.KeySegment("gateway"), domain.KeySegment("port")})
	if !ok {
		return domain.Valid(doc)
	}
	port, isNumber := value.(float64)
	if !isNumber || !domain.IsInteger(port) || port < 1 || port > 65535 {
		return domain.Invalid(domain.ValidationIssue{
			Path:    "gateway.port",
			Message: fmt.Sprintf("must be an integer between 1 and 65535, got %v", value),
		})
	}
	return domain.Valid(doc)
})

func newTestConfigService(repo ports.ConfigRepository) *ConfigService {
	return NewConfigService(repo, portValidator, logging.Discard())
}
