package task

import (
	"errors"
	"testing"
)

func TestCollectionCloneIsIndependent(t *testing.T) {
	original := Collection{{ID: "a", Title: "A"}}

	clone := original.Clone()
	clone[0].Title = "changed"

	if original[0].Title != "A" {
		t.Fatalf("expected original to be untouched, got %q", original[0].Title)
	}
}

func TestCollectionCloneOfNilIsEmpty(t *testing.T) {
	var c Collection
	clone := c.Clone()
	if clone == nil || len(clone) != 0 {
		t.Fatalf("expected empty non-nil clone, got %#v", clone)
	}
}

func TestCollectionFind(t *testing.T) {
	c := Collection{{ID: "a", Title: "A"}, {ID: "b", Title: "B"}}

	found, ok := c.Find("b")
	if !ok || found.Title != "B" {
		t.Fatalf("expected to find B, got %+v ok=%v", found, ok)
	}
	if _, ok := c.Find("missing"); ok {
		t.Fatal("expected missing ID not to be found")
	}
	if c.IndexOf("missing") != -1 {
		t.Fatal("expected IndexOf to return -1")
	}
}

func TestIDIndexResolve(t *testing.T) {
	c := Collection{
		{ID: "0190aaaa-0000"},
		{ID: "0190abcd-0000"},
	}
	index := NewIDIndex(c)

	got, err := index.Resolve("0190ab")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "0190abcd-0000" {
		t.Fatalf("expected 0190abcd-0000, got %q", got)
	}

	if _, err := index.Resolve("0190"); !errors.Is(err, ErrAmbiguousIDPrefix) {
		t.Fatalf("expected ErrAmbiguousIDPrefix, got %v", err)
	}
	if _, err := index.Resolve("ffff"); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
	if _, err := index.Resolve(""); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound for empty prefix, got %v", err)
	}
}

func TestIDIndexPrefixLengths(t *testing.T) {
	index := NewIDIndex(Collection{{ID: "abc1"}, {ID: "abd2"}, {ID: "x"}})
	lengths := index.PrefixLengths()

	if lengths["abc1"] != 3 || lengths["abd2"] != 3 || lengths["x"] != 1 {
		t.Fatalf("unexpected prefix lengths %v", lengths)
	}
}
