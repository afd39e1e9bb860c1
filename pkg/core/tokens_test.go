package core_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/aretw0/bliss/pkg/core"
)

func TestTokenSequence_SimpleForm(t *testing.T) {
	ts := core.Simple(12383)

	if !ts.IsSimple() {
		t.Errorf("expected %v to be simple", ts)
	}
	if ts.String() != "12383" {
		t.Errorf("expected '12383', got %q", ts.String())
	}
	if err := ts.Validate(); err != nil {
		t.Errorf("simple sequence should validate: %v", err)
	}
}

func TestTokenSequence_CompoundForm(t *testing.T) {
	ts := core.TokenSequence{
		core.Atom(15733), core.Combine(), core.Atom(14133),
		core.Indicator(), core.Atom(9004),
	}

	if ts.IsSimple() {
		t.Errorf("compound sequence must not be simple")
	}
	if got := ts.String(); got != "15733/14133;9004" {
		t.Errorf("expected '15733/14133;9004', got %q", got)
	}
	if err := ts.Validate(); err != nil {
		t.Errorf("compound sequence should validate: %v", err)
	}
}

func TestTokenSequence_Equal_OrderMatters(t *testing.T) {
	a := core.TokenSequence{core.Atom(1), core.Combine(), core.Atom(2)}
	b := core.TokenSequence{core.Atom(2), core.Combine(), core.Atom(1)}

	if a.Equal(b) {
		t.Errorf("sequences with swapped atoms must not compare equal")
	}
	if !a.Equal(a.Clone()) {
		t.Errorf("clone must compare equal to its source")
	}
}

func TestTokenSequence_Validate_Malformed(t *testing.T) {
	cases := map[string]core.TokenSequence{
		"empty":              {},
		"leading operator":   {core.Combine(), core.Atom(1)},
		"trailing operator":  {core.Atom(1), core.Combine()},
		"adjacent operators": {core.Atom(1), core.Combine(), core.Indicator(), core.Atom(2)},
	}

	for name, ts := range cases {
		if err := ts.Validate(); !errors.Is(err, core.ErrMalformedSequence) {
			t.Errorf("%s: expected ErrMalformedSequence, got %v", name, err)
		}
	}
}

func TestTokenSequence_JSON(t *testing.T) {
	ts := core.TokenSequence{
		core.Atom(15733), core.Combine(), core.Atom(14133),
		core.Indicator(), core.Atom(9004), core.Combine(), core.Atom(25570),
	}

	data, err := json.Marshal(ts)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	want := `[15733,"/",14133,";",9004,"/",25570]`
	if string(data) != want {
		t.Errorf("expected %s, got %s", want, data)
	}

	var back core.TokenSequence
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if !back.Equal(ts) {
		t.Errorf("round trip mismatch: %v vs %v", back, ts)
	}
}

func TestTokenSequence_UnmarshalScalarAndStringIDs(t *testing.T) {
	// Dataset ids arrive as numbers or numeric strings; both normalize.
	var scalar core.TokenSequence
	if err := json.Unmarshal([]byte(`12345`), &scalar); err != nil {
		t.Fatalf("scalar unmarshal failed: %v", err)
	}
	if !scalar.Equal(core.Simple(12345)) {
		t.Errorf("scalar should normalize to simple form, got %v", scalar)
	}

	var mixed core.TokenSequence
	if err := json.Unmarshal([]byte(`["12345","/",678]`), &mixed); err != nil {
		t.Fatalf("mixed unmarshal failed: %v", err)
	}
	want := core.TokenSequence{core.Atom(12345), core.Combine(), core.Atom(678)}
	if !mixed.Equal(want) {
		t.Errorf("expected %v, got %v", want, mixed)
	}

	var bad core.TokenSequence
	if err := json.Unmarshal([]byte(`["what"]`), &bad); !errors.Is(err, core.ErrMalformedSequence) {
		t.Errorf("expected ErrMalformedSequence for unknown token, got %v", err)
	}
}
