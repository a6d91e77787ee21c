package strings

import "testing"

func TestNormalizeWhitespace(t *testing.T) {
	cases := map[string]string{
		"":                    "",
		"   ":                 "",
		"plain":               "plain",
		"  two   words ":      "two words",
		"tabs\tand\nnewlines": "tabs and newlines",
		"Buy milk\r\nnow":     "Buy milk now",
	}
	for input, want := range cases {
		if got := NormalizeWhitespace(input); got != want {
			t.Fatalf("NormalizeWhitespace(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestNormalizeKey(t *testing.T) {
	cases := map[string]string{
		"  In   Progress ": "in progress",
		"DONE":             "done",
		"to_do":            "to_do",
		"":                 "",
	}
	for input, want := range cases {
		if got := NormalizeKey(input); got != want {
			t.Fatalf("NormalizeKey(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestNormalizeNewlines(t *testing.T) {
	cases := map[string]string{
		"":                    "",
		"one\ntwo":            "one\ntwo",
		"one\r\ntwo\r\n":      "one\ntwo\n",
		"old\rmac\r\nmixed\n": "old\nmac\nmixed\n",
	}
	for input, want := range cases {
		if got := NormalizeNewlines(input); got != want {
			t.Fatalf("NormalizeNewlines(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestTrimTrailingNewlines(t *testing.T) {
	cases := map[string]string{
		"body\n\n":   "body",
		"body\r\n":   "body",
		"\nbody\n":   "\nbody",
		"no newline": "no newline",
		"\n\r\n":     "",
	}
	for input, want := range cases {
		if got := TrimTrailingNewlines(input); got != want {
			t.Fatalf("TrimTrailingNewlines(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestValidUTF8(t *testing.T) {
	cases := map[string]string{
		"plain":       "plain",
		"bad\xff":     "bad\uFFFD",
		"\xff\xfeend": "\uFFFDend",
		"caf\u00e9":   "caf\u00e9",
	}
	for input, want := range cases {
		if got := ValidUTF8(input); got != want {
			t.Fatalf("ValidUTF8(%q) = %q, want %q", input, got, want)
		}
	}
}
