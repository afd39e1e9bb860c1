// Package bliss is the Composition Root for the symbol composition engine.
//
// It connects the core domain (token sequences, the encoding document)
// with the infrastructure adapters (gloss dataset sources) and the
// operation layers (resolver, editor, palette builder).
//
// Philosophy:
//
// Bliss treats an augmentative/alternative-communication palette as a
// composition problem: short text labels (glosses) resolve to numeric
// BCI-AV symbol identifiers, and several identifiers combine into one
// compound symbol through modifiers and grammatical indicators. The core
// is agnostic of rendering, speech synthesis and UI; those are
// collaborators wired in at the edges.
//
// Features:
//
//   - **Gloss resolution**: exact and whole-word matching over the
//     dataset, with a hand-authored exception table taking priority.
//   - **Composition editing**: append/prepend modifiers, locate and
//     remove indicators, all relative to the document caret.
//   - **Shared encoding document**: one mutable session state, explicit
//     clear, mutex-serialized access.
//   - **Batch palette builds**: grids of labels resolved into palette
//     files, collecting failures instead of aborting.
//   - **Pluggable dataset sources**: HTTP fetch or local file, with
//     watch-and-reload for file sources (`core.Loader`).
//
// Usage:
//
//	// Assemble an engine with functional options
//	engine := bliss.New(ctx,
//		bliss.WithDatasetFile("glosses.json"),
//		bliss.WithLogger(logger),
//	)
//
//	// Compose "PLURAL CAT"
//	sym, err := engine.Select("cat")
//	sym, err = engine.AppendModifier("indicator (plural)")
package bliss
