package bliss

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/aretw0/bliss/internal/platform"
	"github.com/aretw0/bliss/pkg/core"
	"github.com/aretw0/bliss/pkg/resolve"
	"github.com/aretw0/bliss/pkg/speech"
)

// Version exposes the version of the library.
// See version.go for the implementation using go:embed.

// --- Types ---

// Engine is the assembled composition session: gloss index, resolver,
// encoding document and editor.
type Engine = platform.Engine

// Match is a public alias for one candidate resolution of a label.
type Match = resolve.Match

// SpecialEncodings is a public alias for the hand-authored exception table.
type SpecialEncodings = resolve.SpecialEncodings

// Speaker is a public alias for the spoken-announcement collaborator.
type Speaker = speech.Speaker

// --- Configuration ---

// Option defines a functional option for configuring the engine.
type Option = platform.Option

// WithLoader allows injecting a custom dataset loader.
func WithLoader(l core.Loader) Option {
	return platform.WithLoader(l)
}

// WithDatasetFile loads the gloss dataset from a local JSON file.
func WithDatasetFile(path string) Option {
	return platform.WithDatasetFile(path)
}

// WithDatasetURL overrides the URL the dataset is fetched from.
func WithDatasetURL(url string) Option {
	return platform.WithDatasetURL(url)
}

// WithHTTPClient sets the client used for dataset fetches.
func WithHTTPClient(c *http.Client) Option {
	return platform.WithHTTPClient(c)
}

// WithSpecialEncodings overlays hand-authored label exceptions onto the
// built-in table.
func WithSpecialEncodings(se SpecialEncodings) Option {
	return platform.WithSpecialEncodings(se)
}

// WithSpeaker sets the spoken-announcement collaborator.
func WithSpeaker(s Speaker) Option {
	return platform.WithSpeaker(s)
}

// WithLogger sets the logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithEventBuffer sets the size of the dataset event buffer.
func WithEventBuffer(size int) Option {
	return platform.WithEventBuffer(size)
}

// --- Factory ---

// New assembles an engine. The gloss dataset is loaded exactly once here;
// a failed load is non-fatal and leaves the engine with an empty index
// (every resolution then reports not-found).
func New(ctx context.Context, opts ...Option) *Engine {
	return platform.New(ctx, opts...)
}

// DefaultSpecialEncodings returns the built-in exception table, for
// callers that want to inspect or extend it.
func DefaultSpecialEncodings() SpecialEncodings {
	return resolve.DefaultSpecialEncodings()
}
