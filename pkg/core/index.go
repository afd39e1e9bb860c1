package core

import "context"

// Loader defines the contract for supplying the gloss dataset. Adhering to
// this interface keeps the core independent of where the dataset lives
// (local file, HTTP endpoint, embedded fixture).
type Loader interface {
	// Load fetches and normalizes the full dataset, preserving source
	// order. It is called once at startup and again after a Watchable
	// loader reports a change. Errors wrap ErrLoad.
	Load(ctx context.Context) ([]GlossEntry, error)
}

// Watchable defines an interface for loaders that can observe changes to
// their underlying dataset (e.g. a local file edited in place).
type Watchable interface {
	// Watch emits an event whenever the dataset changes. The channel is
	// closed when ctx is cancelled.
	Watch(ctx context.Context) (<-chan Event, error)
}

// Index is the in-memory gloss table: every loaded entry, queryable by id,
// in dataset load order. It is immutable after construction, so concurrent
// readers need no locking; reloads build a fresh Index and swap it in.
type Index struct {
	entries []GlossEntry
	byID    map[int]int // id -> position in entries; first occurrence wins
}

// NewIndex builds an index over the given entries. Duplicate ids keep the
// first occurrence, matching the resolver's load-order semantics.
func NewIndex(entries []GlossEntry) *Index {
	ix := &Index{
		entries: make([]GlossEntry, len(entries)),
		byID:    make(map[int]int, len(entries)),
	}
	copy(ix.entries, entries)
	for i, e := range ix.entries {
		if _, ok := ix.byID[e.ID]; !ok {
			ix.byID[e.ID] = i
		}
	}
	return ix
}

// EmptyIndex returns an index with no entries. It is what the engine falls
// back to when the dataset load fails.
func EmptyIndex() *Index { return NewIndex(nil) }

// Entry performs an exact lookup by numeric id.
func (ix *Index) Entry(id int) (GlossEntry, error) {
	pos, ok := ix.byID[id]
	if !ok {
		return GlossEntry{}, ErrNotFound
	}
	return ix.entries[pos], nil
}

// Entries returns all entries in load order. The slice is shared; callers
// must not mutate it.
func (ix *Index) Entries() []GlossEntry { return ix.entries }

// Len returns the number of loaded entries.
func (ix *Index) Len() int { return len(ix.entries) }
