package core

import (
	"github.com/aretw0/introspection"
)

// IndexState exposes the gloss index internals for observability.
type IndexState struct {
	Entries int `json:"entries"`
}

// State implements introspection.Introspectable.
func (ix *Index) State() any {
	return IndexState{Entries: ix.Len()}
}

// ComponentType implements introspection.Component.
func (ix *Index) ComponentType() string {
	return "gloss-index"
}

// DocumentState exposes the encoding document internals for observability.
type DocumentState struct {
	Symbols int `json:"symbols"`
	Caret   int `json:"caret"`
}

// State implements introspection.Introspectable.
func (d *EncodingDocument) State() any {
	d.mu.Lock()
	defer d.mu.Unlock()
	return DocumentState{Symbols: len(d.payloads), Caret: d.caret}
}

// ComponentType implements introspection.Component.
func (d *EncodingDocument) ComponentType() string {
	return "encoding-document"
}

var _ introspection.Introspectable = (*Index)(nil)
var _ introspection.Component = (*Index)(nil)
var _ introspection.Introspectable = (*EncodingDocument)(nil)
var _ introspection.Component = (*EncodingDocument)(nil)
