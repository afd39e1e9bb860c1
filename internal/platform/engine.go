package platform

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/google/uuid"

	"github.com/aretw0/bliss/pkg/compose"
	"github.com/aretw0/bliss/pkg/core"
	"github.com/aretw0/bliss/pkg/resolve"
	"github.com/aretw0/bliss/pkg/speech"
)

// Engine wires the gloss index, resolver, encoding document and editor
// into one composition session. All methods are safe for concurrent use;
// edits serialize on the document, index swaps on the engine.
type Engine struct {
	mu     sync.RWMutex
	logger *slog.Logger

	loader   core.Loader
	index    *core.Index
	resolver *resolve.Resolver
	special  resolve.SpecialEncodings

	comps   *resolve.CompositionIndex
	doc     *core.EncodingDocument
	editor  *compose.Editor
	speaker speech.Speaker

	eventBuffer int
}

func newEngine(ctx context.Context, o *options) *Engine {
	e := &Engine{
		logger:      o.logger,
		loader:      o.loader,
		special:     o.special,
		speaker:     o.speaker,
		comps:       resolve.NewCompositionIndex(),
		doc:         core.NewEncodingDocument(),
		eventBuffer: o.eventBuffer,
	}
	e.editor = compose.New(e.doc,
		compose.WithSpeaker(e.speaker),
		compose.WithLogger(e.logger),
		compose.WithEditHook(e.comps.Add),
	)

	// The one-time load. Failure is non-fatal: the engine degrades to an
	// empty index and every resolution reports not-found.
	entries, err := e.loader.Load(ctx)
	if err != nil {
		e.logger.Warn("gloss dataset unavailable, continuing with empty index", "error", err)
		entries = nil
	}
	e.swapIndex(entries)
	return e
}

// swapIndex installs a freshly built index and a resolver over it.
func (e *Engine) swapIndex(entries []core.GlossEntry) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.index = core.NewIndex(entries)
	e.resolver = resolve.New(e.index,
		resolve.WithSpecialEncodings(e.special),
		resolve.WithCompositions(e.comps),
		resolve.WithLogger(e.logger),
	)
}

// Resolver returns the resolver over the currently loaded index.
func (e *Engine) Resolver() *resolve.Resolver {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.resolver
}

// Index returns the currently loaded gloss index.
func (e *Engine) Index() *core.Index {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.index
}

// Document returns the session's encoding document.
func (e *Engine) Document() *core.EncodingDocument { return e.doc }

// Editor returns the composition editor bound to the document.
func (e *Engine) Editor() *compose.Editor { return e.editor }

// Search classifies and runs a free-form search term.
func (e *Engine) Search(term string) (resolve.SearchResult, error) {
	return e.Resolver().Search(term)
}

// ResolveLabel resolves a label to its candidate encodings.
func (e *Engine) ResolveLabel(label string) ([]resolve.Match, error) {
	return e.Resolver().ByLabel(label)
}

// ResolveID resolves a numeric id to its gloss entry.
func (e *Engine) ResolveID(id int) (core.GlossEntry, error) {
	return e.Resolver().ByID(id)
}

// Select resolves a label and inserts its first match into the document,
// moving the caret to the new symbol.
func (e *Engine) Select(label string) (core.ResolvedSymbol, error) {
	matches, err := e.ResolveLabel(label)
	if err != nil {
		return core.ResolvedSymbol{}, err
	}
	return e.SelectMatch(label, matches[0]), nil
}

// SelectMatch inserts a specific resolution candidate into the document,
// moving the caret to the new symbol.
func (e *Engine) SelectMatch(label string, m resolve.Match) core.ResolvedSymbol {
	sym := core.ResolvedSymbol{
		ID:     uuid.NewString(),
		Label:  label,
		Tokens: m.Tokens.Clone(),
	}
	e.doc.Append(sym)
	e.comps.Add(sym)
	e.logger.Debug("symbol selected", "label", label, "tokens", sym.Tokens.String())
	return sym
}

// AppendModifier resolves a modifier gloss and appends its first match to
// the selected symbol.
func (e *Engine) AppendModifier(gloss string) (core.ResolvedSymbol, error) {
	matches, err := e.ResolveLabel(gloss)
	if err != nil {
		return core.ResolvedSymbol{}, err
	}
	return e.editor.AppendModifier(matches[0].Tokens, gloss)
}

// PrependModifier resolves a modifier gloss and prepends its first match
// to the selected symbol.
func (e *Engine) PrependModifier(gloss string) (core.ResolvedSymbol, error) {
	matches, err := e.ResolveLabel(gloss)
	if err != nil {
		return core.ResolvedSymbol{}, err
	}
	return e.editor.PrependModifier(matches[0].Tokens, gloss)
}

// RemoveIndicator removes the first indicator of the selected symbol, if
// any. The bool reports whether a removal happened.
func (e *Engine) RemoveIndicator() (core.ResolvedSymbol, bool, error) {
	return e.editor.RemoveIndicator()
}

// Clear resets the session: document emptied, caret to -1, composition
// index dropped.
func (e *Engine) Clear() {
	e.doc.Clear()
	e.comps.Reset()
	e.logger.Debug("encoding cleared")
}

// Reload re-runs the dataset load and swaps the fresh index in. The old
// index keeps serving until the swap.
func (e *Engine) Reload(ctx context.Context) error {
	entries, err := e.loader.Load(ctx)
	if err != nil {
		return fmt.Errorf("reload: %w", err)
	}
	e.swapIndex(entries)
	e.logger.Info("gloss index reloaded", "entries", len(entries))
	return nil
}

// Watch observes the dataset source if it supports watching, reloading
// the index on every change. The returned channel republishes the events
// after each reload; it is buffered and drops when full, so a slow
// observer cannot stall reloading.
func (e *Engine) Watch(ctx context.Context) (<-chan core.Event, error) {
	w, ok := e.loader.(core.Watchable)
	if !ok {
		return nil, fmt.Errorf("dataset source does not support watching")
	}

	upstream, err := w.Watch(ctx)
	if err != nil {
		return nil, err
	}

	out := make(chan core.Event, e.eventBuffer)
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case ev, ok := <-upstream:
				if !ok {
					return nil
				}
				if err := e.Reload(ctx); err != nil {
					e.logger.Warn("reload after dataset change failed", "error", err)
					continue
				}
				ev.Type = core.EventReload
				ev.Timestamp = time.Now().Unix()
				select {
				case out <- ev:
				default:
					e.logger.Debug("dropping dataset event, observer too slow")
				}
			}
		}
	})
	return out, nil
}
