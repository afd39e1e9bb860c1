package blissary

import (
	"github.com/aretw0/introspection"
)

// FileSourceState exposes internal state for observability.
type FileSourceState struct {
	Path          string `json:"path"`
	WatcherActive bool   `json:"watcher_active"`
}

// State implements introspection.Introspectable.
func (s *FileSource) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return FileSourceState{
		Path:          s.Path,
		WatcherActive: s.watcherActive,
	}
}

// ComponentType implements introspection.Component.
func (s *FileSource) ComponentType() string {
	return "blissary-file"
}

// HTTPSourceState exposes internal state for observability.
type HTTPSourceState struct {
	URL string `json:"url"`
}

// State implements introspection.Introspectable.
func (s *HTTPSource) State() any {
	return HTTPSourceState{URL: s.URL}
}

// ComponentType implements introspection.Component.
func (s *HTTPSource) ComponentType() string {
	return "blissary-http"
}

var _ introspection.Introspectable = (*FileSource)(nil)
var _ introspection.Component = (*FileSource)(nil)
var _ introspection.Introspectable = (*HTTPSource)(nil)
var _ introspection.Component = (*HTTPSource)(nil)
