// Package blissary loads the gloss dataset: a JSON array of
// {id, description} rows published by the Blissymbolics authority. Ids
// arrive as numbers or strings depending on the export; both normalize to
// integers. A file-backed source can additionally watch its path and
// report changes so the engine reloads the index.
package blissary
