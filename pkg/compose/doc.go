// Package compose edits the symbol under the encoding document's caret:
// appending or prepending modifiers and locating or removing grammatical
// indicators, with the document written back in place after every
// completed operation.
package compose
