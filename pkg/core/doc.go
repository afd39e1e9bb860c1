// Package core defines the domain model of the composition engine:
// gloss entries, token sequences, the shared encoding document, and the
// contracts adapters implement to supply gloss data.
//
// The core is storage- and transport-agnostic. Adapters (see
// pkg/adapters/blissary) load the gloss dataset; higher layers
// (pkg/resolve, pkg/compose, pkg/palette) implement the operations.
package core
