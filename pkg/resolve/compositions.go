package resolve

import (
	"sync"

	"github.com/aretw0/bliss/pkg/core"
)

// CompositionIndex tracks which resolved symbols reference a given atom,
// so a bare-number search can answer "which of my compositions use this
// id". It is fed on every insert or edit and reset when the session's
// document is cleared.
type CompositionIndex struct {
	mu     sync.RWMutex
	byAtom map[int][]core.ResolvedSymbol
}

// NewCompositionIndex returns an empty composition index.
func NewCompositionIndex() *CompositionIndex {
	return &CompositionIndex{byAtom: make(map[int][]core.ResolvedSymbol)}
}

// Add indexes a symbol under every atom its token sequence uses. Re-adding
// a symbol (after an edit) replaces the previous entry under each atom it
// still references; atoms it no longer references keep no stale entry.
func (ci *CompositionIndex) Add(sym core.ResolvedSymbol) {
	ci.mu.Lock()
	defer ci.mu.Unlock()

	// Drop any prior occurrences of this symbol, then index afresh.
	for id, syms := range ci.byAtom {
		kept := syms[:0]
		for _, s := range syms {
			if s.ID != sym.ID {
				kept = append(kept, s)
			}
		}
		if len(kept) == 0 {
			delete(ci.byAtom, id)
		} else {
			ci.byAtom[id] = kept
		}
	}

	seen := make(map[int]bool)
	for _, t := range sym.Tokens {
		if !t.IsAtom() || seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		ci.byAtom[t.ID] = append(ci.byAtom[t.ID], sym)
	}
}

// Using returns the symbols whose token sequences reference the atom, in
// insertion order. The result is a copy.
func (ci *CompositionIndex) Using(id int) []core.ResolvedSymbol {
	ci.mu.RLock()
	defer ci.mu.RUnlock()
	syms := ci.byAtom[id]
	if len(syms) == 0 {
		return nil
	}
	out := make([]core.ResolvedSymbol, len(syms))
	copy(out, syms)
	return out
}

// Reset drops every indexed composition.
func (ci *CompositionIndex) Reset() {
	ci.mu.Lock()
	defer ci.mu.Unlock()
	ci.byAtom = make(map[int][]core.ResolvedSymbol)
}
