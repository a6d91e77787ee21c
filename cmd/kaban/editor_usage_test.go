package main

import "testing"

func TestShouldUseEditor(t *testing.T) {
	cases := []struct {
		name        string
		hasFlags    bool
		edit        bool
		noEdit      bool
		interactive bool
		want        bool
	}{
		{"interactive without flags", false, false, false, true, true},
		{"not interactive", false, false, false, false, false},
		{"flags skip editor", true, false, false, true, false},
		{"edit forces editor", true, true, false, false, true},
		{"no-edit wins over terminal", false, false, true, true, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := shouldUseEditor(tc.hasFlags, tc.edit, tc.noEdit, tc.interactive); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
