package preferences

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// FileStore keeps preferences in a YAML file. A missing file reads as Default.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a FileStore at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load implements Store.
func (s *FileStore) Load(_ context.Context) (Preferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Preferences{}, errors.Wrap(err, "os.ReadFile")
	}

	p := Default()
	if err := yaml.Unmarshal(b, &p); err != nil {
		return Preferences{}, errors.Wrap(err, "yaml.Unmarshal")
	}
	return p, nil
}

// Save implements Store. The file is replaced via rename so readers never see
// a partial write.
func (s *FileStore) Save(_ context.Context, p Preferences) error {
	if err := p.Validate(); err != nil {
		return err
	}

	b, err := yaml.Marshal(p)
	if err != nil {
		return errors.Wrap(err, "yaml.Marshal")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errors.Wrap(err, "os.MkdirAll")
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return errors.Wrap(err, "os.WriteFile")
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return errors.Wrap(err, "os.Rename")
	}
	return nil
}
