package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading preview..."
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.header(), m.viewport.View(), m.footer())
}

func (m Model) header() string {
	tabs := make([]string, 0, 2)
	for _, pane := range []Pane{PaneOutput, PaneSource} {
		style := tabStyle
		if pane == m.pane {
			style = activeStyle
		}
		tabs = append(tabs, style.Render(pane.String()))
	}

	title := titleStyle.Render(fmt.Sprintf("jsxify • %s", m.displayTitle()))
	return lipgloss.JoinHorizontal(lipgloss.Top, title, " ", strings.Join(tabs, "")) + "\n" + m.rule()
}

func (m Model) footer() string {
	status := statusStyle.Render(fmt.Sprintf("%d/%d elements matched", m.report.Matched(), m.report.Elements))
	if top := m.topComponents(3); top != "" {
		status += " " + helpStyle.Render("("+top+")")
	}
	scroll := helpStyle.Render(fmt.Sprintf("%3.f%%", m.viewport.ScrollPercent()*100))
	help := helpStyle.Render("tab switch • ↑/↓ scroll • q quit")

	return m.rule() + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, status, "  ", scroll, "  ", help)
}

func (m Model) rule() string {
	width := m.viewport.Width
	if width < 1 {
		width = 1
	}
	return ruleStyle.Render(strings.Repeat("─", width))
}

func (m Model) displayTitle() string {
	if strings.TrimSpace(m.title) != "" {
		return m.title
	}
	return "stdin"
}

// topComponents lists the first n matched components with their counts.
func (m Model) topComponents(n int) string {
	var parts []string
	for i, cc := range m.report.Components {
		if i == n {
			parts = append(parts, "…")
			break
		}
		parts = append(parts, fmt.Sprintf("%s×%d", cc.ID, cc.Count))
	}
	return strings.Join(parts, ", ")
}
