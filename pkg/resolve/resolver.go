package resolve

import (
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/aretw0/bliss/pkg/core"
)

// Match is one candidate resolution of a label: the token sequence to use
// and the dataset description it was matched against. The first match in a
// result set is the caller's default choice.
type Match struct {
	Tokens      core.TokenSequence
	Description string
}

// Resolver answers label and id lookups against one loaded gloss index.
// It is immutable; a dataset reload builds a fresh Resolver over the new
// index.
type Resolver struct {
	index   *core.Index
	special SpecialEncodings
	comps   *CompositionIndex
	logger  *slog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithSpecialEncodings installs the hand-authored exception table consulted
// before any index scan.
func WithSpecialEncodings(se SpecialEncodings) Option {
	return func(r *Resolver) { r.special = se }
}

// WithCompositions attaches the session's composition index, backing the
// numeric search path of Search.
func WithCompositions(ci *CompositionIndex) Option {
	return func(r *Resolver) { r.comps = ci }
}

// WithLogger sets the logger for the resolver.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) { r.logger = logger }
}

// New creates a Resolver over the given index.
func New(ix *core.Index, opts ...Option) *Resolver {
	r := &Resolver{index: ix}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	return r
}

// ByLabel resolves a label to every matching encoding.
//
// The special-encodings table is consulted first and bypasses the index
// entirely. Otherwise every index entry whose description equals the label
// or contains it as a whole word is kept, in index load order; results are
// not relevance-ranked. Fails with core.ErrNotFound on zero matches.
func (r *Resolver) ByLabel(label string) ([]Match, error) {
	if fixed, ok := r.special[label]; ok {
		out := make([]Match, len(fixed))
		copy(out, fixed)
		return out, nil
	}

	// Case-sensitive whole-word match. QuoteMeta keeps labels with regex
	// metacharacters (e.g. "mother(-)") from blowing up the scan.
	re, err := regexp.Compile(`\b` + regexp.QuoteMeta(label) + `\b`)
	if err != nil {
		return nil, fmt.Errorf("bad search label %q: %w", label, err)
	}

	var matches []Match
	for _, entry := range r.index.Entries() {
		if entry.Description == label || re.MatchString(entry.Description) {
			matches = append(matches, Match{
				Tokens:      core.Simple(entry.ID),
				Description: entry.Description,
			})
		}
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("label %q: %w", label, core.ErrNotFound)
	}
	r.logger.Debug("label resolved", "label", label, "matches", len(matches))
	return matches, nil
}

// ByID performs an exact lookup of one entry by numeric id.
func (r *Resolver) ByID(id int) (core.GlossEntry, error) {
	entry, err := r.index.Entry(id)
	if err != nil {
		return core.GlossEntry{}, fmt.Errorf("id %d: %w", id, err)
	}
	return entry, nil
}

// SearchKind classifies what a search term asked for.
type SearchKind uint8

const (
	// SearchEmpty means nothing was typed; distinct from zero matches.
	SearchEmpty SearchKind = iota
	// SearchID means the term was a bare number, answered from the
	// session's previously built compositions.
	SearchID
	// SearchLabel means the term was gloss text.
	SearchLabel
)

// SearchResult carries the outcome of a free-form search.
type SearchResult struct {
	Kind         SearchKind
	Term         string
	Matches      []Match               // populated for SearchLabel
	Compositions []core.ResolvedSymbol // populated for SearchID
}

// Search classifies and runs a free-form search term. A bare numeric term
// looks up which previously built compositions use that atom; any other
// non-empty term is a label search. An empty or whitespace-only term yields
// SearchEmpty with no error, so callers can tell "nothing typed" apart from
// "typed but no hits".
func (r *Resolver) Search(term string) (SearchResult, error) {
	trimmed := strings.TrimSpace(term)
	if trimmed == "" {
		return SearchResult{Kind: SearchEmpty, Term: term}, nil
	}

	if id, err := strconv.Atoi(trimmed); err == nil {
		res := SearchResult{Kind: SearchID, Term: trimmed}
		if r.comps != nil {
			res.Compositions = r.comps.Using(id)
		}
		return res, nil
	}

	matches, err := r.ByLabel(trimmed)
	if err != nil {
		return SearchResult{Kind: SearchLabel, Term: trimmed}, err
	}
	return SearchResult{Kind: SearchLabel, Term: trimmed, Matches: matches}, nil
}
