package platform

import (
	"context"
	"log/slog"

	"github.com/aretw0/bliss/pkg/adapters/blissary"
	"github.com/aretw0/bliss/pkg/core"
)

// New assembles an engine from the supplied options. The dataset is loaded
// exactly once here; this is the engine's only suspension point. A failed
// load is non-fatal and leaves the engine with an empty index.
func New(ctx context.Context, opts ...Option) *Engine {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if o.loader == nil {
		o.loader = newLoader(o)
	}
	return newEngine(ctx, o)
}

// newLoader picks the dataset source: an explicit file wins over HTTP.
func newLoader(o *options) core.Loader {
	if o.datasetFile != "" {
		return blissary.NewFileSource(o.datasetFile, o.logger)
	}
	return blissary.NewHTTPSource(o.datasetURL, o.client, o.logger)
}
