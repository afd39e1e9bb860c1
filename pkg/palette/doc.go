// Package palette materializes a static grid of symbols from a 2-D label
// layout. Resolution failures never abort a build; they are collected per
// cell and surfaced as visible NOT FOUND placeholders.
package palette
