package resolve

import "github.com/aretw0/bliss/pkg/core"

// SpecialEncodings is the static table of hand-authored exceptions: labels
// that resolve to fixed encodings directly, bypassing the index scan. It is
// supplied as configuration and consulted with exact, case-sensitive keys.
type SpecialEncodings map[string][]Match

// DefaultSpecialEncodings returns the built-in exception table. These are
// glosses whose dataset descriptions are either absent or misleading, so
// their encodings are pinned by hand.
func DefaultSpecialEncodings() SpecialEncodings {
	return SpecialEncodings{
		"indicator (plural)": {
			{Tokens: core.Simple(9011), Description: "indicator (plural)"},
		},
		"indicator (action)": {
			{Tokens: core.Simple(8993), Description: "indicator (action)"},
		},
		"toilet paper": {
			{
				Tokens:      core.TokenSequence{core.Atom(25554), core.Combine(), core.Atom(24894)},
				Description: "toilet paper",
			},
		},
	}
}

// Merge overlays other onto the table, returning a new table. Keys in
// other win on conflict.
func (se SpecialEncodings) Merge(other SpecialEncodings) SpecialEncodings {
	out := make(SpecialEncodings, len(se)+len(other))
	for k, v := range se {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}
