package blissary

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/aretw0/bliss/pkg/core"
)

// FileSource loads the gloss dataset from a local JSON file. It also
// implements core.Watchable: Watch reports when the file changes on disk
// so the engine can rebuild its index.
type FileSource struct {
	Path   string
	Logger *slog.Logger

	mu            sync.RWMutex
	watcherActive bool
}

// NewFileSource creates a file-backed dataset source.
func NewFileSource(path string, logger *slog.Logger) *FileSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileSource{Path: path, Logger: logger}
}

// Load implements core.Loader.
func (s *FileSource) Load(ctx context.Context) ([]core.GlossEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrLoad, err)
	}

	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", core.ErrLoad, s.Path, err)
	}
	defer f.Close()

	entries, err := decodeEntries(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Path, err)
	}
	s.Logger.Debug("dataset loaded", "path", s.Path, "entries", len(entries))
	return entries, nil
}

// Watch implements core.Watchable. The returned channel emits a modify
// event (debounced) whenever the dataset file changes, and closes when ctx
// is cancelled.
func (s *FileSource) Watch(ctx context.Context) (<-chan core.Event, error) {
	events := make(chan core.Event, 1)
	w := newWatchWorker(s, events)
	if err := w.Start(ctx); err != nil {
		return nil, err
	}
	return events, nil
}

func (s *FileSource) setWatcherActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watcherActive = active
}

var _ core.Loader = (*FileSource)(nil)
var _ core.Watchable = (*FileSource)(nil)
