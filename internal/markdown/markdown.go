// Package markdown renders task descriptions for the terminal.
package markdown

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"

	internalstrings "github.com/amonks/kaban/internal/strings"
)

// Style selects a glamour style.
type Style int

const (
	// ASCII renders without color.
	ASCII Style = iota
	Dark
	Light
)

type renderer interface {
	Render(string) (string, error)
}

type rendererKey struct {
	style Style
	width int
}

var (
	rendererMu sync.Mutex
	renderers  = map[rendererKey]renderer{}
)

// Render formats markdown text for terminal output without color.
func Render(width, indent int, input []byte) []byte {
	return RenderStyle(ASCII, width, indent, input)
}

// SafeRender is Render, falling back to the plain text if the renderer panics.
func SafeRender(width, indent int, input []byte) []byte {
	return SafeRenderStyle(ASCII, width, indent, input)
}

// SafeRenderStyle is RenderStyle, falling back to the plain text if the
// renderer panics.
func SafeRenderStyle(style Style, width, indent int, input []byte) (out []byte) {
	defer func() {
		if recover() != nil {
			out = plain(indent, input)
		}
	}()
	return RenderStyle(style, width, indent, input)
}

// RenderStyle formats markdown text with the given style. Blank input
// renders to nil.
func RenderStyle(style Style, width, indent int, input []byte) []byte {
	value, ok := clean(input)
	if !ok {
		return nil
	}
	if width < 1 {
		width = 1
	}
	if indent < 0 {
		indent = 0
	}
	renderWidth := width - indent
	if renderWidth < 1 {
		renderWidth = 1
	}

	rendered := value
	if r := markdownRenderer(style, renderWidth); r != nil {
		formatted, err := r.Render(value)
		if err == nil {
			rendered = formatted
		}
	}
	rendered = internalstrings.TrimTrailingNewlines(rendered)
	if strings.TrimSpace(rendered) == "" {
		return nil
	}
	return []byte(indentBlock(rendered, indent))
}

func clean(input []byte) (string, bool) {
	if len(input) == 0 {
		return "", false
	}
	value := internalstrings.NormalizeNewlines(string(input))
	value = internalstrings.TrimTrailingNewlines(value)
	if strings.TrimSpace(value) == "" {
		return "", false
	}
	return value, true
}

func plain(indent int, input []byte) []byte {
	value, ok := clean(input)
	if !ok {
		return nil
	}
	return []byte(indentBlock(value, indent))
}

func styleConfig(style Style) ansi.StyleConfig {
	switch style {
	case Dark:
		return styles.DarkStyleConfig
	case Light:
		return styles.LightStyleConfig
	default:
		config := styles.ASCIIStyleConfig
		config.Item.BlockPrefix = "- "
		config.ImageText.Format = "Image: {{.text}} ->"
		return config
	}
}

func markdownRenderer(style Style, width int) renderer {
	rendererMu.Lock()
	defer rendererMu.Unlock()
	key := rendererKey{style: style, width: width}
	if cached, ok := renderers[key]; ok {
		return cached
	}
	created, err := glamour.NewTermRenderer(
		glamour.WithStyles(styleConfig(style)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	renderers[key] = created
	return created
}

func indentBlock(value string, spaces int) string {
	if spaces <= 0 {
		return value
	}
	prefix := strings.Repeat(" ", spaces)
	lines := strings.Split(value, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
