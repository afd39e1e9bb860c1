package blissary

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/aretw0/bliss/pkg/core"
)

// DefaultDatasetURL is the published BCI-AV gloss dataset.
const DefaultDatasetURL = "https://raw.githubusercontent.com/cindyli/baby-bliss-bot/main/data/bliss_symbol_explanations.json"

// HTTPSource loads the gloss dataset over HTTP, once per process. It does
// not retry: a failed fetch leaves the engine with an empty index.
type HTTPSource struct {
	URL    string
	Client *http.Client
	Logger *slog.Logger
}

// NewHTTPSource creates an HTTP-backed dataset source. An empty url means
// DefaultDatasetURL; a nil client means http.DefaultClient.
func NewHTTPSource(url string, client *http.Client, logger *slog.Logger) *HTTPSource {
	if url == "" {
		url = DefaultDatasetURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &HTTPSource{URL: url, Client: client, Logger: logger}
}

// Load implements core.Loader.
func (s *HTTPSource) Load(ctx context.Context) ([]core.GlossEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrLoad, err)
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch %s: %v", core.ErrLoad, s.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: fetch %s: status %s", core.ErrLoad, s.URL, resp.Status)
	}

	entries, err := decodeEntries(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.URL, err)
	}
	s.Logger.Debug("dataset fetched", "url", s.URL, "entries", len(entries))
	return entries, nil
}

var _ core.Loader = (*HTTPSource)(nil)
