package theme

import (
	"errors"
	"testing"

	"github.com/amonks/kaban/internal/kv"
)

func fixed(t Theme) func() Theme {
	return func() Theme { return t }
}

func TestLoadFallsBackToSystem(t *testing.T) {
	store := kv.NewMemory()

	if got := Load(store, fixed(Dark)); got != Dark {
		t.Fatalf("expected dark, got %q", got)
	}
	if got := Load(store, fixed(Light)); got != Light {
		t.Fatalf("expected light, got %q", got)
	}
}

func TestLoadIgnoresInvalidStoredValue(t *testing.T) {
	store := kv.NewMemory()
	if err := store.Set(Key, "purple"); err != nil {
		t.Fatalf("set: %v", err)
	}

	if got := Load(store, fixed(Light)); got != Light {
		t.Fatalf("expected system fallback, got %q", got)
	}
}

func TestStoredValueWins(t *testing.T) {
	store := kv.NewMemory()
	if err := Save(store, Dark); err != nil {
		t.Fatalf("save: %v", err)
	}

	if got := Load(store, fixed(Light)); got != Dark {
		t.Fatalf("expected stored dark, got %q", got)
	}

	value, _, _ := store.Get(Key)
	if value != "dark" {
		t.Fatalf("expected raw value dark, got %q", value)
	}
}

func TestToggle(t *testing.T) {
	store := kv.NewMemory()

	got, err := Toggle(store, fixed(Light))
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if got != Dark {
		t.Fatalf("expected dark, got %q", got)
	}

	got, err = Toggle(store, fixed(Light))
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if got != Light {
		t.Fatalf("expected light, got %q", got)
	}
}

func TestToggleReportsWriteFailure(t *testing.T) {
	store := kv.NewMemory()
	store.FailWrites = errors.New("disk full")

	if _, err := Toggle(store, fixed(Light)); err == nil {
		t.Fatal("expected error")
	}
}

func TestSaveRejectsInvalidTheme(t *testing.T) {
	if err := Save(kv.NewMemory(), Theme("sepia")); err == nil {
		t.Fatal("expected error")
	}
}

func TestParse(t *testing.T) {
	cases := map[string]bool{
		"light":   true,
		" Dark ":  true,
		"":        false,
		"toggle":  false,
		"DARK\n":  true,
		"lighter": false,
	}
	for input, wantOK := range cases {
		if _, ok := Parse(input); ok != wantOK {
			t.Errorf("Parse(%q) ok = %v, want %v", input, ok, wantOK)
		}
	}
}
