package core

import "sync"

// EncodingDocument is the shared mutable state of a composition session:
// an ordered list of resolved symbols plus a caret identifying which symbol
// subsequent edits apply to. Exactly one document exists per session;
// callers own the instance and pass it explicitly.
//
// The engine's execution model is single-threaded event dispatch, but a
// mutex still guards every access so that read-compute-write editing stays
// atomic on a multithreaded host.
type EncodingDocument struct {
	mu       sync.Mutex
	payloads []ResolvedSymbol
	caret    int
}

// NewEncodingDocument returns an empty document with the caret at -1.
func NewEncodingDocument() *EncodingDocument {
	return &EncodingDocument{caret: -1}
}

// Append inserts a symbol at the end of the document and moves the caret
// to it. Returns the symbol's index.
func (d *EncodingDocument) Append(sym ResolvedSymbol) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.payloads = append(d.payloads, sym)
	d.caret = len(d.payloads) - 1
	return d.caret
}

// Caret returns the current caret position, or -1 when nothing is selected.
func (d *EncodingDocument) Caret() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.caret
}

// SetCaret moves the caret. Any index into the payload list is valid, as
// is -1 to deselect; anything else is rejected.
func (d *EncodingDocument) SetCaret(i int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if i < -1 || i >= len(d.payloads) {
		return ErrNoSelection
	}
	d.caret = i
	return nil
}

// AtCaret returns a copy of the symbol under the caret. The second return
// is false when the caret is -1 or out of range.
func (d *EncodingDocument) AtCaret() (ResolvedSymbol, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.caret < 0 || d.caret >= len(d.payloads) {
		return ResolvedSymbol{}, false
	}
	return d.payloads[d.caret], true
}

// ReplaceAtCaret writes the edited symbol back into the slot the caret
// points at, leaving the caret itself unchanged.
func (d *EncodingDocument) ReplaceAtCaret(sym ResolvedSymbol) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.caret < 0 || d.caret >= len(d.payloads) {
		return false
	}
	d.payloads[d.caret] = sym
	return true
}

// Symbols returns a copy of the payload list in document order.
func (d *EncodingDocument) Symbols() []ResolvedSymbol {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]ResolvedSymbol, len(d.payloads))
	copy(out, d.payloads)
	return out
}

// Len returns the number of symbols in the document.
func (d *EncodingDocument) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.payloads)
}

// Clear resets the document to its initial state: no payloads, caret -1.
func (d *EncodingDocument) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.payloads = nil
	d.caret = -1
}
