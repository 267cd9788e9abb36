package application

import (
	"sync"

	"github.com/bnema/chatgate/internal/domain"
)

// Overrides is the memory-only debug layer merged over the config on disk.
// It is created once per process and dropped at shutdown.
type Overrides struct {
	mu   sync.Mutex
	tree domain.Document
}

func NewOverrides() *Overrides {
	return &Overrides{tree: domain.Document{}}
}

func (o *Overrides) Snapshot() domain.Document {
	o.mu.Lock()
	defer o.mu.Unlock()

	return domain.CloneDocument(o.tree)
}

func (o *Overrides) Len() int {
	o.mu.Lock()
	defer o.mu.Unlock()

	return len(o.tree)
}

func (o *Overrides) Set(rawPath string, value any) error {
	path, err := domain.ParseConfigPath(rawPath)
	if err != nil {
		return err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	return domain.SetAtPath(o.tree, path, domain.CloneValue(value))
}

func (o *Overrides) Unset(rawPath string) (bool, error) {
	path, err := domain.ParseConfigPath(rawPath)
	if err != nil {
		return false, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	return domain.UnsetAtPath(o.tree, path), nil
}

func (o *Overrides) Reset() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.tree = domain.Document{}
}

// Apply returns doc with the overrides merged over it. doc is not modified.
func (o *Overrides) Apply(doc domain.Document) domain.Document {
	o.mu.Lock()
	defer o.mu.Unlock()

	if len(o.tree) == 0 {
		return domain.CloneDocument(doc)
	}
	return domain.MergeDocuments(doc, o.tree)
}
