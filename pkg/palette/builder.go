package palette

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/aretw0/bliss/pkg/core"
	"github.com/aretw0/bliss/pkg/resolve"
)

// Builder runs batch gloss resolution over a layout. Unlike the
// interactive resolver, it collects failures instead of failing fast.
type Builder struct {
	resolver *resolve.Resolver
	logger   *slog.Logger
	newKey   func(label string) string
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the logger for the builder.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) { b.logger = logger }
}

// WithKeyFunc overrides cell key generation, mainly for deterministic
// tests. The default is label + "-" + a fresh uuid.
func WithKeyFunc(fn func(label string) string) Option {
	return func(b *Builder) { b.newKey = fn }
}

// NewBuilder creates a Builder over the given resolver.
func NewBuilder(r *resolve.Resolver, opts ...Option) *Builder {
	b := &Builder{resolver: r}
	for _, opt := range opts {
		opt(b)
	}
	if b.logger == nil {
		b.logger = slog.Default()
	}
	if b.newKey == nil {
		b.newKey = func(label string) string {
			return label + "-" + uuid.NewString()
		}
	}
	return b
}

// Result is the outcome of one batch build. Errors holds one message per
// failed cell, in grid scan order; Matches records the full candidate list
// for every label resolved by text, keyed by the original label, so
// ambiguous choices can be reviewed manually later.
type Result struct {
	Palette Palette
	Matches map[string][]resolve.Match
	Errors  []string
}

// Build resolves every non-blank label in the layout into a cell. It never
// fails: a cell whose label cannot be resolved is still emitted, with the
// label suffixed " NOT FOUND" and the sentinel encoding, and the error is
// recorded in the result.
func (b *Builder) Build(layout Layout) Result {
	res := Result{
		Palette: Palette{
			Name:  layout.Name,
			Cells: make(map[string]Cell),
		},
		Matches: make(map[string][]resolve.Match),
	}

	blank := layout.blankMarker()
	cellType := layout.cellType()

	for rowIdx, row := range layout.Rows {
		for colIdx, label := range row {
			if label == blank || strings.TrimSpace(label) == "" {
				continue
			}

			opts := CellOptions{
				Label:       label,
				RowStart:    layout.StartRow + rowIdx,
				RowSpan:     1,
				ColumnStart: layout.StartColumn + colIdx,
				ColumnSpan:  1,
			}

			if err := b.resolveCell(label, &opts, &res); err != nil {
				res.Errors = append(res.Errors, fmt.Sprintf("%q at row %d column %d: %v",
					label, opts.RowStart, opts.ColumnStart, err))
				opts.Label = label + notFoundSuffix
				opts.BciAvID = NotFoundEncoding.Clone()
				b.logger.Warn("cell did not resolve", "label", label, "error", err)
			}

			res.Palette.Cells[b.newKey(label)] = Cell{Type: cellType, Options: opts}
		}
	}

	b.logger.Info("palette built",
		"name", layout.Name,
		"cells", len(res.Palette.Cells),
		"ambiguous", len(res.Matches),
		"errors", len(res.Errors))
	return res
}

// resolveCell fills opts from the label, treating a bare integer as a
// literal id lookup and anything else as gloss text.
func (b *Builder) resolveCell(label string, opts *CellOptions, res *Result) error {
	if id, err := strconv.Atoi(strings.TrimSpace(label)); err == nil {
		entry, err := b.resolver.ByID(id)
		if err != nil {
			return err
		}
		// A literal id adopts the dataset description as its display label.
		opts.Label = entry.Description
		opts.BciAvID = core.Simple(id)
		return nil
	}

	matches, err := b.resolver.ByLabel(label)
	if err != nil {
		return err
	}

	// Only the first match is emitted, but the full candidate list stays
	// on file for manual review of ambiguous labels.
	res.Matches[label] = matches
	opts.BciAvID = matches[0].Tokens.Clone()
	return nil
}
