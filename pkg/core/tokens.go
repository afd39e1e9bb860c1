package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// TokenKind discriminates the variants of a token sequence element.
type TokenKind uint8

const (
	// KindAtom is a single numeric symbol identifier (BCI-AV id).
	KindAtom TokenKind = iota
	// KindCombine is the "/" operator joining two symbols into a compound.
	KindCombine
	// KindIndicator is the ";" operator marking that the next atom is a
	// grammatical indicator attached to the preceding symbol.
	KindIndicator
)

// String returns the kind name.
func (k TokenKind) String() string {
	switch k {
	case KindAtom:
		return "atom"
	case KindCombine:
		return "combine"
	case KindIndicator:
		return "indicator"
	default:
		return "unknown"
	}
}

// Operator glyphs as they appear in the serialized encoding.
const (
	combineGlyph   = "/"
	indicatorGlyph = ";"
)

// Token is one element of a TokenSequence: either an atom carrying a
// numeric id, or an operator carrying positional meaning only.
type Token struct {
	Kind TokenKind
	ID   int // meaningful only when Kind == KindAtom
}

// Atom builds an atom token for the given identifier.
func Atom(id int) Token { return Token{Kind: KindAtom, ID: id} }

// Combine builds the "/" operator token.
func Combine() Token { return Token{Kind: KindCombine} }

// Indicator builds the ";" operator token.
func Indicator() Token { return Token{Kind: KindIndicator} }

// IsAtom reports whether the token is a numeric identifier.
func (t Token) IsAtom() bool { return t.Kind == KindAtom }

// IsOperator reports whether the token is a structural marker.
func (t Token) IsOperator() bool { return t.Kind != KindAtom }

// Glyph returns the serialized form of the token.
func (t Token) Glyph() string {
	switch t.Kind {
	case KindCombine:
		return combineGlyph
	case KindIndicator:
		return indicatorGlyph
	default:
		return strconv.Itoa(t.ID)
	}
}

// TokenSequence is an ordered sequence of atoms and operators denoting one
// (possibly compound) symbol. A length-1 sequence holding a single atom is
// the canonical simple form; it is never empty when attached to a resolved
// symbol. Order is load-bearing: it encodes append/prepend history.
type TokenSequence []Token

// Simple returns the canonical single-atom sequence for an id.
func Simple(id int) TokenSequence { return TokenSequence{Atom(id)} }

// IsSimple reports whether the sequence is a single bare atom.
func (ts TokenSequence) IsSimple() bool {
	return len(ts) == 1 && ts[0].IsAtom()
}

// Clone returns an independent copy of the sequence.
func (ts TokenSequence) Clone() TokenSequence {
	if ts == nil {
		return nil
	}
	out := make(TokenSequence, len(ts))
	copy(out, ts)
	return out
}

// Equal reports structural equality, element by element in order.
func (ts TokenSequence) Equal(other TokenSequence) bool {
	if len(ts) != len(other) {
		return false
	}
	for i := range ts {
		if ts[i] != other[i] {
			return false
		}
	}
	return true
}

// String renders the sequence in its compact form, e.g. "15733/14133;9004".
func (ts TokenSequence) String() string {
	var sb strings.Builder
	for _, t := range ts {
		sb.WriteString(t.Glyph())
	}
	return sb.String()
}

// Validate checks well-formedness: the sequence must be non-empty, must
// start and end with an atom, and must not hold two adjacent operators.
func (ts TokenSequence) Validate() error {
	if len(ts) == 0 {
		return fmt.Errorf("%w: empty sequence", ErrMalformedSequence)
	}
	if !ts[0].IsAtom() {
		return fmt.Errorf("%w: sequence starts with operator %q", ErrMalformedSequence, ts[0].Glyph())
	}
	if !ts[len(ts)-1].IsAtom() {
		return fmt.Errorf("%w: sequence ends with operator %q", ErrMalformedSequence, ts[len(ts)-1].Glyph())
	}
	for i := 1; i < len(ts); i++ {
		if ts[i].IsOperator() && ts[i-1].IsOperator() {
			return fmt.Errorf("%w: adjacent operators at index %d", ErrMalformedSequence, i)
		}
	}
	return nil
}

// MarshalJSON renders the sequence in the palette-file form: a heterogeneous
// array of numbers and operator glyphs, e.g. [15733,"/",14133,";",9004].
func (ts TokenSequence) MarshalJSON() ([]byte, error) {
	raw := make([]any, len(ts))
	for i, t := range ts {
		if t.IsAtom() {
			raw[i] = t.ID
		} else {
			raw[i] = t.Glyph()
		}
	}
	return json.Marshal(raw)
}

// UnmarshalJSON accepts the heterogeneous array form. Numbers and numeric
// strings both decode to atoms; the dataset is known to ship ids in either
// shape. A bare number decodes to the canonical simple sequence.
func (ts *TokenSequence) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedSequence, err)
	}

	switch v := raw.(type) {
	case json.Number:
		id, err := atomID(v)
		if err != nil {
			return err
		}
		*ts = Simple(id)
		return nil
	case []any:
		out := make(TokenSequence, 0, len(v))
		for _, el := range v {
			tok, err := decodeToken(el)
			if err != nil {
				return err
			}
			out = append(out, tok)
		}
		*ts = out
		return nil
	default:
		return fmt.Errorf("%w: unexpected JSON shape %T", ErrMalformedSequence, raw)
	}
}

func decodeToken(el any) (Token, error) {
	switch v := el.(type) {
	case json.Number:
		id, err := atomID(v)
		if err != nil {
			return Token{}, err
		}
		return Atom(id), nil
	case string:
		switch v {
		case combineGlyph:
			return Combine(), nil
		case indicatorGlyph:
			return Indicator(), nil
		}
		if id, err := strconv.Atoi(v); err == nil && id >= 0 {
			return Atom(id), nil
		}
		return Token{}, fmt.Errorf("%w: unknown token %q", ErrMalformedSequence, v)
	default:
		return Token{}, fmt.Errorf("%w: unexpected element %T", ErrMalformedSequence, el)
	}
}

func atomID(n json.Number) (int, error) {
	id, err := strconv.Atoi(n.String())
	if err != nil || id < 0 {
		return 0, fmt.Errorf("%w: invalid atom id %q", ErrMalformedSequence, n.String())
	}
	return id, nil
}
