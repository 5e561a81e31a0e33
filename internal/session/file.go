package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/assetdesk/assetdesk/internal/auth"
)

// FileStore keeps the session record in a JSON file on the client machine,
// the durable equivalent of browser-local storage.
type FileStore struct {
	path   string
	logger *slog.Logger
}

// NewFileStore constructs a FileStore writing to path.
func NewFileStore(path string, logger *slog.Logger) *FileStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileStore{path: path, logger: logger}
}

// Save serializes and persists the identity.
func (s *FileStore) Save(ctx context.Context, identity auth.Identity) error {
	data, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("session: encode identity: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("session: create session dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("session: persist identity: %w", err)
	}
	return nil
}

// Load deserializes the persisted identity. Missing and corrupt files both
// read back as nil; corrupt data is logged and removed.
func (s *FileStore) Load(ctx context.Context) (*auth.Identity, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("session: read identity: %w", err)
	}

	var identity auth.Identity
	if err := json.Unmarshal(data, &identity); err != nil {
		s.logger.Warn("discarding corrupt session file", slog.String("path", s.path), slog.Any("error", err))
		if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("remove corrupt session file", slog.Any("error", err))
		}
		return nil, nil
	}
	return &identity, nil
}

// Clear removes the persisted entry.
func (s *FileStore) Clear(ctx context.Context) error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("session: clear identity: %w", err)
	}
	return nil
}

var _ Store = (*FileStore)(nil)
