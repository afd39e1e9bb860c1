package core

import "fmt"

// GlossEntry is one row of the gloss dataset: a numeric symbol identifier
// and the text describing it. Entries are immutable once loaded.
type GlossEntry struct {
	ID          int
	Description string
}

// ModifierRecord describes one modifier applied to a resolved symbol, in
// application order. The order is load-bearing: indicator lookup and
// removal operate on positions derived from it.
type ModifierRecord struct {
	Tokens    TokenSequence
	Gloss     string
	Prepended bool
}

// ResolvedSymbol is a gloss resolved into a concrete token sequence,
// sitting in one slot of the encoding document. Edits replace its tokens,
// label and modifier history in place; they never allocate a new slot.
type ResolvedSymbol struct {
	ID           string
	Label        string
	Tokens       TokenSequence
	ModifierInfo []ModifierRecord
}

// EventType represents the type of change observed on the gloss dataset.
type EventType string

const (
	EventReload EventType = "RELOAD"
	EventModify EventType = "MODIFY"
)

// Event represents a change in the gloss dataset source.
type Event struct {
	Type      EventType
	Source    string
	Timestamp int64 // Unix timestamp
}

// String renders the event for supervision logs. It also satisfies the
// lifecycle event contract so dataset events can flow through a
// lifecycle.Source bridge.
func (e Event) String() string {
	return fmt.Sprintf("%s %s", e.Type, e.Source)
}
