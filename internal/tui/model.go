// Package tui is the interactive previewer for a conversion: the JSX output
// and the source markup in a scrollable viewport.
package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/jsxify/internal/convert"
)

// Pane selects what the viewport shows.
type Pane int

const (
	PaneOutput Pane = iota
	PaneSource
)

func (p Pane) String() string {
	if p == PaneSource {
		return "Source"
	}
	return "JSX"
}

// headerHeight and footerHeight are the lines drawn around the viewport.
const (
	headerHeight = 2
	footerHeight = 2
)

// Model contains the Bubbletea state for the previewer.
type Model struct {
	title    string
	source   string
	report   convert.Report
	pane     Pane
	viewport viewport.Model
	ready    bool
	quitting bool
}

// NewModel constructs a preview of report, converted from source.
func NewModel(title, source string, report convert.Report) Model {
	return Model{
		title:  title,
		source: source,
		report: report,
		pane:   PaneOutput,
	}
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return nil
}

// Pane returns the pane currently shown.
func (m Model) Pane() Pane {
	return m.pane
}

// Ready reports whether the terminal size is known and the viewport sized.
func (m Model) Ready() bool {
	return m.ready
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

func (m Model) content() string {
	if m.pane == PaneSource {
		return m.source
	}
	return m.report.Output
}
