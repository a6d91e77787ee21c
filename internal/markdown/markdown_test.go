package markdown

import (
	"strings"
	"testing"
)

type panicRenderer struct{}

func (panicRenderer) Render(string) (string, error) {
	panic("boom")
}

func TestSafeRender_RecoversFromRendererPanic(t *testing.T) {
	const renderWidth = 20
	key := rendererKey{style: ASCII, width: renderWidth}

	rendererMu.Lock()
	prev, hadPrev := renderers[key]
	renderers[key] = panicRenderer{}
	rendererMu.Unlock()

	defer func() {
		rendererMu.Lock()
		if hadPrev {
			renderers[key] = prev
		} else {
			delete(renderers, key)
		}
		rendererMu.Unlock()
	}()

	out := SafeRender(renderWidth, 0, []byte("hello\n"))
	if string(out) != "hello" {
		t.Fatalf("expected fallback to original markdown, got %q", string(out))
	}
}

func TestRender_BlankInput(t *testing.T) {
	for _, input := range []string{"", "\n\n", "   \r\n"} {
		if out := Render(40, 0, []byte(input)); out != nil {
			t.Errorf("Render(%q) = %q, expected nil", input, out)
		}
	}
}

func TestRender_ListAndIndent(t *testing.T) {
	out := string(Render(40, 4, []byte("- milk\r\n- eggs\r\n")))

	if !strings.Contains(out, "- milk") || !strings.Contains(out, "- eggs") {
		t.Fatalf("expected list items, got %q", out)
	}
	for _, line := range strings.Split(out, "\n") {
		if !strings.HasPrefix(line, "    ") {
			t.Fatalf("expected every line indented, got %q", line)
		}
	}
}
