package boardtui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/amonks/kaban/task"
	"github.com/amonks/kaban/theme"
)

var borderASCII = lipgloss.Border{
	Top:         "-",
	Bottom:      "-",
	Left:        "|",
	Right:       "|",
	TopLeft:     "+",
	TopRight:    "+",
	BottomLeft:  "+",
	BottomRight: "+",
}

var cardBorder = lipgloss.Border{Left: "|"}

var cardSelectedBorder = lipgloss.Border{Left: ">"}

type palette struct {
	text       lipgloss.Color
	muted      lipgloss.Color
	barFg      lipgloss.Color
	barBg      lipgloss.Color
	accent     lipgloss.Color
	accentText lipgloss.Color
	border     lipgloss.Color
	danger     lipgloss.Color
	success    lipgloss.Color
	statuses   map[task.Status]lipgloss.Color
}

var palettes = map[theme.Theme]palette{
	theme.Dark: {
		text:       "252",
		muted:      "244",
		barFg:      "252",
		barBg:      "236",
		accent:     "24",
		accentText: "230",
		border:     "238",
		danger:     "203",
		success:    "42",
		statuses: map[task.Status]lipgloss.Color{
			task.StatusToDo:       "75",
			task.StatusInProgress: "214",
			task.StatusDone:       "42",
		},
	},
	theme.Light: {
		text:       "235",
		muted:      "243",
		barFg:      "235",
		barBg:      "254",
		accent:     "62",
		accentText: "231",
		border:     "250",
		danger:     "160",
		success:    "28",
		statuses: map[task.Status]lipgloss.Color{
			task.StatusToDo:       "25",
			task.StatusInProgress: "130",
			task.StatusDone:       "28",
		},
	},
}

type styles struct {
	headerBar   lipgloss.Style
	brand       lipgloss.Style
	toggleOn    lipgloss.Style
	toggleOff   lipgloss.Style
	helpBar     lipgloss.Style
	label       lipgloss.Style
	muted       lipgloss.Style
	statusError lipgloss.Style
	statusInfo  lipgloss.Style

	pane        lipgloss.Style
	paneFocused lipgloss.Style
	paneDrop    lipgloss.Style

	card         lipgloss.Style
	cardSelected lipgloss.Style
	cardTitle    lipgloss.Style
	cardConfirm  lipgloss.Style

	columnTitle map[task.Status]lipgloss.Style

	modal lipgloss.Style
}

func newStyles(t theme.Theme) styles {
	p, ok := palettes[t]
	if !ok {
		p = palettes[theme.Dark]
	}

	pane := lipgloss.NewStyle().Border(borderASCII).BorderForeground(p.border).Padding(0, 1)
	card := lipgloss.NewStyle().Border(cardBorder, false, false, false, true).BorderForeground(p.border).PaddingLeft(1).Foreground(p.text)

	columnTitle := make(map[task.Status]lipgloss.Style, len(p.statuses))
	for status, color := range p.statuses {
		columnTitle[status] = lipgloss.NewStyle().Foreground(color).Bold(true)
	}

	return styles{
		headerBar:   lipgloss.NewStyle().Foreground(p.barFg).Background(p.barBg),
		brand:       lipgloss.NewStyle().Foreground(p.accentText).Background(p.accent).Bold(true).Padding(0, 1),
		toggleOn:    lipgloss.NewStyle().Foreground(p.accentText).Background(p.accent).Padding(0, 1),
		toggleOff:   lipgloss.NewStyle().Foreground(p.muted).Background(p.barBg).Padding(0, 1),
		helpBar:     lipgloss.NewStyle().Foreground(p.muted),
		label:       lipgloss.NewStyle().Bold(true),
		muted:       lipgloss.NewStyle().Foreground(p.muted),
		statusError: lipgloss.NewStyle().Foreground(p.danger),
		statusInfo:  lipgloss.NewStyle().Foreground(p.success),

		pane:        pane,
		paneFocused: pane.BorderForeground(p.accent),
		paneDrop:    pane.BorderForeground(p.success),

		card:         card,
		cardSelected: card.Border(cardSelectedBorder, false, false, false, true).BorderForeground(p.accent),
		cardTitle:    lipgloss.NewStyle().Bold(true),
		cardConfirm:  card.BorderForeground(p.danger).Foreground(p.danger),

		columnTitle: columnTitle,

		modal: lipgloss.NewStyle().Border(borderASCII).BorderForeground(p.accent).Padding(1, 2),
	}
}

func (s styles) titleFor(status task.Status) lipgloss.Style {
	if style, ok := s.columnTitle[status]; ok {
		return style
	}
	return s.label
}
