// Package snapshot persists simulation checkpoints as JSON files.
package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mhladik/rinkrating/internal/domain/sim"
	"github.com/mhladik/rinkrating/pkg/logger"
)

// ErrDecodeCheckpoint indicates the checkpoint file is not valid JSON.
var ErrDecodeCheckpoint = errors.New("decode checkpoint")

// FileStore reads and writes one checkpoint file.
type FileStore struct {
	path   string
	logger logger.Logger
}

// NewFileStore creates a store bound to the given path.
func NewFileStore(path string, opts ...Option) *FileStore {
	s := &FileStore{path: path}

	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = logger.Get().Named("snapshot")
	}

	return s
}

// Save writes the checkpoint atomically: a temp file in the same directory
// is renamed over the target, so a crash mid-write never leaves a torn file.
func (s *FileStore) Save(ctx context.Context, cp sim.Checkpoint) error {
	raw, err := json.MarshalIndent(cp, "", "  ")
	if err != nil {
		return fmt.Errorf("encode checkpoint: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create checkpoint dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".checkpoint-*.json")
	if err != nil {
		return fmt.Errorf("create checkpoint temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write checkpoint: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close checkpoint temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("publish checkpoint: %w", err)
	}

	s.logger.Info(ctx, "checkpoint saved",
		logger.String("path", s.path),
		logger.Int("applied_events", len(cp.Applied)),
	)
	return nil
}

// Load reads the checkpoint. A missing file is not an error; ok reports
// whether a checkpoint was found.
func (s *FileStore) Load(ctx context.Context) (cp sim.Checkpoint, ok bool, err error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return sim.Checkpoint{}, false, nil
		}
		return sim.Checkpoint{}, false, fmt.Errorf("read checkpoint: %w", err)
	}

	if err := json.Unmarshal(raw, &cp); err != nil {
		return sim.Checkpoint{}, false, fmt.Errorf("%w: %s: %w", ErrDecodeCheckpoint, s.path, err)
	}

	s.logger.Info(ctx, "checkpoint loaded",
		logger.String("path", s.path),
		logger.Int("applied_events", len(cp.Applied)),
	)
	return cp, true, nil
}
