// Package resolve turns free-text search terms and bare numeric ids into
// candidate token sequences, scanning the gloss index in its load order.
package resolve
