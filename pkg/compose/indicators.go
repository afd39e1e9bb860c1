package compose

import "github.com/aretw0/bliss/pkg/core"

// Grammatical indicator atoms occupy a fixed contiguous block of the
// BCI-AV id space.
const (
	indicatorIDFirst = 8993
	indicatorIDLast  = 9011
)

// IsIndicatorID reports whether an atom id belongs to the fixed set of
// grammatical indicators.
func IsIndicatorID(id int) bool {
	return id >= indicatorIDFirst && id <= indicatorIDLast
}

// FindIndicatorPositions scans tokens left to right and returns the index
// of every atom belonging to the indicator set. It drives both control
// enablement and removal.
func FindIndicatorPositions(tokens core.TokenSequence) []int {
	var positions []int
	for i, t := range tokens {
		if t.IsAtom() && IsIndicatorID(t.ID) {
			positions = append(positions, i)
		}
	}
	return positions
}
