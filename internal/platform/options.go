package platform

import (
	"log/slog"
	"net/http"

	"github.com/aretw0/bliss/pkg/core"
	"github.com/aretw0/bliss/pkg/resolve"
	"github.com/aretw0/bliss/pkg/speech"
)

// options holds the internal configuration for the engine.
type options struct {
	loader      core.Loader
	logger      *slog.Logger
	client      *http.Client
	datasetURL  string
	datasetFile string
	special     resolve.SpecialEncodings
	speaker     speech.Speaker
	eventBuffer int
}

// Option defines a functional option for configuring the engine.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		special:     resolve.DefaultSpecialEncodings(),
		speaker:     speech.Nop{},
		eventBuffer: 100,
	}
}

// WithLoader allows injecting a custom dataset loader (e.g. mock, embedded
// fixture). If provided, the file/URL options are ignored.
func WithLoader(l core.Loader) Option {
	return func(o *options) { o.loader = l }
}

// WithDatasetFile loads the gloss dataset from a local JSON file instead
// of fetching it. File sources support watching for changes.
func WithDatasetFile(path string) Option {
	return func(o *options) { o.datasetFile = path }
}

// WithDatasetURL overrides the URL the dataset is fetched from.
func WithDatasetURL(url string) Option {
	return func(o *options) { o.datasetURL = url }
}

// WithHTTPClient sets the client used for dataset fetches.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.client = c }
}

// WithSpecialEncodings overlays hand-authored label exceptions onto the
// built-in table. Keys in the overlay win on conflict.
func WithSpecialEncodings(se resolve.SpecialEncodings) Option {
	return func(o *options) { o.special = o.special.Merge(se) }
}

// WithSpeaker sets the spoken-announcement collaborator invoked after
// completed edits. Defaults to a no-op.
func WithSpeaker(s speech.Speaker) Option {
	return func(o *options) { o.speaker = s }
}

// WithLogger sets the logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithEventBuffer allows specifying the size of the dataset event buffer.
// Zero means default (100).
func WithEventBuffer(size int) Option {
	return func(o *options) {
		if size > 0 {
			o.eventBuffer = size
		}
	}
}
