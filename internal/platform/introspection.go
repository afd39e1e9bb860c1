package platform

import (
	"github.com/aretw0/introspection"

	"github.com/aretw0/bliss/pkg/core"
)

// EngineState exposes internal state for observability.
type EngineState struct {
	IndexEntries int                `json:"index_entries"`
	Document     core.DocumentState `json:"document"`
	LoaderType   string             `json:"loader_type"`
}

// State implements introspection.Introspectable.
func (e *Engine) State() any {
	loaderType := "loader"
	if comp, ok := e.loader.(introspection.Component); ok {
		loaderType = comp.ComponentType()
	}
	return EngineState{
		IndexEntries: e.Index().Len(),
		Document:     e.doc.State().(core.DocumentState),
		LoaderType:   loaderType,
	}
}

// ComponentType implements introspection.Component.
func (e *Engine) ComponentType() string {
	return "engine"
}

var _ introspection.Introspectable = (*Engine)(nil)
var _ introspection.Component = (*Engine)(nil)
