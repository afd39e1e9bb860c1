package compose_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/bliss/pkg/compose"
	"github.com/aretw0/bliss/pkg/core"
	"github.com/aretw0/bliss/pkg/speech"
)

// recorder captures announcements for assertions.
type recorder struct {
	spoken []string
	fail   error
}

func (r *recorder) Speak(text string) error {
	r.spoken = append(r.spoken, text)
	return r.fail
}

func docWith(sym core.ResolvedSymbol) *core.EncodingDocument {
	doc := core.NewEncodingDocument()
	doc.Append(sym)
	return doc
}

func TestEditor_AppendModifier(t *testing.T) {
	rec := &recorder{}
	doc := docWith(core.ResolvedSymbol{ID: "s1", Label: "CAT", Tokens: core.Simple(12383)})
	ed := compose.New(doc, compose.WithSpeaker(rec))

	sym, err := ed.AppendModifier(core.Simple(9011), "PLURAL")
	require.NoError(t, err)

	// Tokens grow at the tail, but the gloss prefixes the spoken label.
	// 9011 is an indicator, so it joins with the ";" marker.
	want := core.TokenSequence{core.Atom(12383), core.Indicator(), core.Atom(9011)}
	assert.True(t, sym.Tokens.Equal(want), "got %v", sym.Tokens)
	assert.Equal(t, "PLURAL CAT", sym.Label)

	require.Len(t, sym.ModifierInfo, 1)
	assert.Equal(t, "PLURAL", sym.ModifierInfo[0].Gloss)
	assert.False(t, sym.ModifierInfo[0].Prepended)

	// Written back into the same slot, caret unchanged, label announced.
	assert.Equal(t, 0, doc.Caret())
	stored, ok := doc.AtCaret()
	require.True(t, ok)
	assert.Equal(t, "PLURAL CAT", stored.Label)
	assert.Equal(t, []string{"PLURAL CAT"}, rec.spoken)
}

func TestEditor_PrependModifier(t *testing.T) {
	doc := docWith(core.ResolvedSymbol{ID: "s1", Label: "CAT", Tokens: core.Simple(12383)})
	ed := compose.New(doc)

	sym, err := ed.PrependModifier(core.Simple(15733), "BIG")
	require.NoError(t, err)

	want := core.TokenSequence{core.Atom(15733), core.Combine(), core.Atom(12383)}
	assert.True(t, sym.Tokens.Equal(want), "got %v", sym.Tokens)
	assert.Equal(t, "BIG CAT", sym.Label)
	require.Len(t, sym.ModifierInfo, 1)
	assert.True(t, sym.ModifierInfo[0].Prepended)
}

func TestEditor_ModifierOrderIsPreserved(t *testing.T) {
	doc := docWith(core.ResolvedSymbol{ID: "s1", Label: "CAT", Tokens: core.Simple(12383)})
	ed := compose.New(doc)

	_, err := ed.AppendModifier(core.Simple(9011), "PLURAL")
	require.NoError(t, err)
	sym, err := ed.PrependModifier(core.Simple(15733), "BIG")
	require.NoError(t, err)

	require.Len(t, sym.ModifierInfo, 2)
	assert.Equal(t, "PLURAL", sym.ModifierInfo[0].Gloss) // oldest first
	assert.Equal(t, "BIG", sym.ModifierInfo[1].Gloss)
	assert.Equal(t, "BIG PLURAL CAT", sym.Label)
}

func TestEditor_NoSelection(t *testing.T) {
	ed := compose.New(core.NewEncodingDocument())

	_, err := ed.AppendModifier(core.Simple(9011), "PLURAL")
	assert.ErrorIs(t, err, core.ErrNoSelection)

	_, _, err = ed.RemoveIndicator()
	assert.ErrorIs(t, err, core.ErrNoSelection)
}

func TestEditor_RejectsMalformedModifier(t *testing.T) {
	doc := docWith(core.ResolvedSymbol{ID: "s1", Label: "CAT", Tokens: core.Simple(12383)})
	ed := compose.New(doc)

	_, err := ed.AppendModifier(core.TokenSequence{}, "EMPTY")
	assert.ErrorIs(t, err, core.ErrMalformedSequence)
}

func TestFindIndicatorPositions(t *testing.T) {
	none := core.TokenSequence{core.Atom(12383), core.Combine(), core.Atom(25570)}
	assert.Empty(t, compose.FindIndicatorPositions(none))

	compound := core.TokenSequence{
		core.Atom(12383), core.Indicator(), core.Atom(9011),
		core.Combine(), core.Atom(25570), core.Indicator(), core.Atom(8993),
	}
	assert.Equal(t, []int{2, 6}, compose.FindIndicatorPositions(compound))
}

func TestEditor_RemoveIndicator(t *testing.T) {
	rec := &recorder{}
	doc := docWith(core.ResolvedSymbol{
		ID:    "s1",
		Label: "PLURAL CAT",
		Tokens: core.TokenSequence{
			core.Atom(12383), core.Indicator(), core.Atom(9011),
		},
	})
	ed := compose.New(doc, compose.WithSpeaker(rec))

	sym, removed, err := ed.RemoveIndicator()
	require.NoError(t, err)
	assert.True(t, removed)
	assert.True(t, sym.Tokens.Equal(core.Simple(12383)), "got %v", sym.Tokens)
	assert.Equal(t, []string{"PLURAL CAT"}, rec.spoken)

	// Only one indicator existed: the second call is a no-op.
	sym, removed, err = ed.RemoveIndicator()
	require.NoError(t, err)
	assert.False(t, removed)
	assert.True(t, sym.Tokens.Equal(core.Simple(12383)))
	assert.Len(t, rec.spoken, 1, "a no-op must not announce")
}

func TestEditor_RemoveIndicator_TargetsFirst(t *testing.T) {
	doc := docWith(core.ResolvedSymbol{
		ID:    "s1",
		Label: "X",
		Tokens: core.TokenSequence{
			core.Atom(1), core.Indicator(), core.Atom(9011),
			core.Combine(), core.Atom(2), core.Indicator(), core.Atom(8993),
		},
	})
	ed := compose.New(doc)

	sym, removed, err := ed.RemoveIndicator()
	require.NoError(t, err)
	assert.True(t, removed)
	want := core.TokenSequence{
		core.Atom(1), core.Combine(), core.Atom(2),
		core.Indicator(), core.Atom(8993),
	}
	assert.True(t, sym.Tokens.Equal(want), "got %v", sym.Tokens)
}

func TestEditor_RemoveIndicator_NoOpPreservesEverything(t *testing.T) {
	original := core.ResolvedSymbol{
		ID:     "s1",
		Label:  "CAT HOUSE",
		Tokens: core.TokenSequence{core.Atom(12383), core.Combine(), core.Atom(25570)},
		ModifierInfo: []core.ModifierRecord{
			{Tokens: core.Simple(25570), Gloss: "HOUSE"},
		},
	}
	doc := docWith(original)
	ed := compose.New(doc)

	sym, removed, err := ed.RemoveIndicator()
	require.NoError(t, err)
	assert.False(t, removed)
	assert.True(t, sym.Tokens.Equal(original.Tokens))
	assert.Len(t, sym.ModifierInfo, 1)
}

func TestEditor_RemoveIndicator_AfterNonIndicatorModifier(t *testing.T) {
	// Appending a modifier that adds no indicator keeps removal a no-op.
	doc := docWith(core.ResolvedSymbol{ID: "s1", Label: "CAT", Tokens: core.Simple(12383)})
	ed := compose.New(doc)

	_, err := ed.AppendModifier(core.Simple(25570), "HOUSE")
	require.NoError(t, err)

	sym, removed, err := ed.RemoveIndicator()
	require.NoError(t, err)
	assert.False(t, removed)
	want := core.TokenSequence{core.Atom(12383), core.Combine(), core.Atom(25570)}
	assert.True(t, sym.Tokens.Equal(want))
}

func TestEditor_RemoveIndicator_UnboundedIndicatorIsMalformed(t *testing.T) {
	doc := docWith(core.ResolvedSymbol{
		ID:     "s1",
		Label:  "X",
		Tokens: core.TokenSequence{core.Atom(9011), core.Combine(), core.Atom(12383)},
	})
	ed := compose.New(doc)

	_, removed, err := ed.RemoveIndicator()
	assert.ErrorIs(t, err, core.ErrMalformedSequence)
	assert.False(t, removed)

	// Document untouched.
	stored, _ := doc.AtCaret()
	assert.True(t, stored.Tokens.Equal(core.TokenSequence{
		core.Atom(9011), core.Combine(), core.Atom(12383),
	}))
}

func TestEditor_SpeakerFailureDoesNotFailEdit(t *testing.T) {
	rec := &recorder{fail: errors.New("synth offline")}
	doc := docWith(core.ResolvedSymbol{ID: "s1", Label: "CAT", Tokens: core.Simple(12383)})
	ed := compose.New(doc, compose.WithSpeaker(rec))

	_, err := ed.AppendModifier(core.Simple(9011), "PLURAL")
	assert.NoError(t, err)
	assert.Len(t, rec.spoken, 1)
}

func TestEditor_EditHook(t *testing.T) {
	var hooked []string
	doc := docWith(core.ResolvedSymbol{ID: "s1", Label: "CAT", Tokens: core.Simple(12383)})
	ed := compose.New(doc,
		compose.WithSpeaker(speech.Nop{}),
		compose.WithEditHook(func(sym core.ResolvedSymbol) {
			hooked = append(hooked, sym.Label)
		}),
	)

	_, err := ed.AppendModifier(core.Simple(9011), "PLURAL")
	require.NoError(t, err)
	assert.Equal(t, []string{"PLURAL CAT"}, hooked)
}
