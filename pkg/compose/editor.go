package compose

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/bliss/pkg/core"
	"github.com/aretw0/bliss/pkg/speech"
)

// Editor applies modifier and indicator edits to the symbol under the
// encoding document's caret. Every completed edit writes the replacement
// symbol back into the same document slot, leaves the caret unchanged, and
// announces the resulting label through the speaker.
type Editor struct {
	doc     *core.EncodingDocument
	speaker speech.Speaker
	logger  *slog.Logger
	onEdit  func(core.ResolvedSymbol)
}

// Option configures an Editor.
type Option func(*Editor)

// WithSpeaker sets the spoken-announcement collaborator.
func WithSpeaker(s speech.Speaker) Option {
	return func(e *Editor) { e.speaker = s }
}

// WithLogger sets the logger for the editor.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Editor) { e.logger = logger }
}

// WithEditHook registers a callback invoked with the replacement symbol
// after every completed edit. The engine uses it to keep the composition
// index current.
func WithEditHook(fn func(core.ResolvedSymbol)) Option {
	return func(e *Editor) { e.onEdit = fn }
}

// New creates an Editor over the given document.
func New(doc *core.EncodingDocument, opts ...Option) *Editor {
	e := &Editor{doc: doc, speaker: speech.Nop{}}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	return e
}

// AppendModifier attaches a modifier after the selected symbol's tokens:
// tokens become symbol ++ operator ++ modifier. The spoken label gets the
// modifier gloss prefixed ("PLURAL CAT"), regardless of the token append
// direction; that asymmetry between visual order and spoken order is
// deliberate. Fails with core.ErrNoSelection when the caret selects
// nothing.
func (e *Editor) AppendModifier(mod core.TokenSequence, gloss string) (core.ResolvedSymbol, error) {
	return e.applyModifier(mod, gloss, false)
}

// PrependModifier attaches a modifier before the selected symbol's tokens:
// tokens become modifier ++ operator ++ symbol. The label convention
// matches AppendModifier.
func (e *Editor) PrependModifier(mod core.TokenSequence, gloss string) (core.ResolvedSymbol, error) {
	return e.applyModifier(mod, gloss, true)
}

func (e *Editor) applyModifier(mod core.TokenSequence, gloss string, prepend bool) (core.ResolvedSymbol, error) {
	if err := mod.Validate(); err != nil {
		return core.ResolvedSymbol{}, fmt.Errorf("modifier %q: %w", gloss, err)
	}

	sym, ok := e.doc.AtCaret()
	if !ok {
		return core.ResolvedSymbol{}, core.ErrNoSelection
	}

	// A grammatical indicator joins with the ";" marker; anything else
	// combines with "/". The marker is what RemoveIndicator later drops.
	op := core.Combine()
	if mod.IsSimple() && IsIndicatorID(mod[0].ID) {
		op = core.Indicator()
	}

	var tokens core.TokenSequence
	if prepend {
		tokens = append(mod.Clone(), op)
		tokens = append(tokens, sym.Tokens...)
	} else {
		tokens = append(sym.Tokens.Clone(), op)
		tokens = append(tokens, mod...)
	}

	sym.Tokens = tokens
	sym.Label = gloss + " " + sym.Label
	sym.ModifierInfo = append(sym.ModifierInfo, core.ModifierRecord{
		Tokens:    mod.Clone(),
		Gloss:     gloss,
		Prepended: prepend,
	})

	e.commit(sym)
	return sym, nil
}

// RemoveIndicator removes the first grammatical indicator found scanning
// the selected symbol's tokens left to right, together with the ";" marker
// immediately preceding it. When no indicator exists the operation is a
// no-op: tokens, label and modifier history stay untouched and nothing is
// announced. The returned bool reports whether a removal happened.
//
// An indicator with no preceding marker has no defined removal; the
// sequence is rejected as malformed rather than guessed at.
func (e *Editor) RemoveIndicator() (core.ResolvedSymbol, bool, error) {
	sym, ok := e.doc.AtCaret()
	if !ok {
		return core.ResolvedSymbol{}, false, core.ErrNoSelection
	}

	positions := FindIndicatorPositions(sym.Tokens)
	if len(positions) == 0 {
		return sym, false, nil
	}

	i := positions[0]
	if i == 0 || !sym.Tokens[i-1].IsOperator() {
		return sym, false, fmt.Errorf("indicator at index %d has no bounding marker: %w", i, core.ErrMalformedSequence)
	}

	tokens := make(core.TokenSequence, 0, len(sym.Tokens)-2)
	tokens = append(tokens, sym.Tokens[:i-1]...)
	tokens = append(tokens, sym.Tokens[i+1:]...)
	sym.Tokens = tokens

	e.commit(sym)
	return sym, true, nil
}

// commit writes the edited symbol back at the unchanged caret and fires
// the side effects. Speaker failure is logged and swallowed.
func (e *Editor) commit(sym core.ResolvedSymbol) {
	e.doc.ReplaceAtCaret(sym)
	if e.onEdit != nil {
		e.onEdit(sym)
	}
	if err := e.speaker.Speak(sym.Label); err != nil {
		e.logger.Debug("speaker failed", "label", sym.Label, "error", err)
	}
}
