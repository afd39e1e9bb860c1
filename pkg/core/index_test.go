package core_test

import (
	"errors"
	"testing"

	"github.com/aretw0/bliss/pkg/core"
)

func TestIndex_Lookup(t *testing.T) {
	ix := core.NewIndex([]core.GlossEntry{
		{ID: 12383, Description: "cat,felines"},
		{ID: 17030, Description: "dog,canine"},
	})

	entry, err := ix.Entry(12383)
	if err != nil {
		t.Fatalf("Entry failed: %v", err)
	}
	if entry.Description != "cat,felines" {
		t.Errorf("expected 'cat,felines', got %q", entry.Description)
	}

	if _, err := ix.Entry(99999); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("missing id should fail with ErrNotFound, got %v", err)
	}
}

func TestIndex_PreservesLoadOrder(t *testing.T) {
	entries := []core.GlossEntry{
		{ID: 3, Description: "third loaded first"},
		{ID: 1, Description: "first loaded second"},
		{ID: 2, Description: "second loaded third"},
	}
	ix := core.NewIndex(entries)

	got := ix.Entries()
	for i := range entries {
		if got[i] != entries[i] {
			t.Fatalf("load order not preserved at %d: %v", i, got)
		}
	}
}

func TestIndex_DuplicateIDKeepsFirst(t *testing.T) {
	ix := core.NewIndex([]core.GlossEntry{
		{ID: 7, Description: "first"},
		{ID: 7, Description: "second"},
	})

	entry, err := ix.Entry(7)
	if err != nil {
		t.Fatalf("Entry failed: %v", err)
	}
	if entry.Description != "first" {
		t.Errorf("duplicate id should resolve to first occurrence, got %q", entry.Description)
	}
	if ix.Len() != 2 {
		t.Errorf("both entries should remain scannable, got %d", ix.Len())
	}
}

func TestEmptyIndex(t *testing.T) {
	ix := core.EmptyIndex()
	if ix.Len() != 0 {
		t.Errorf("empty index should have no entries")
	}
	if _, err := ix.Entry(1); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("lookups on an empty index should fail with ErrNotFound")
	}
}
