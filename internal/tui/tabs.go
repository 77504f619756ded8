package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/partyapatil/Ai-blog-frontend/internal/state"
)

var tabOrder = []state.Tab{state.TabGenerate, state.TabBlog}

func renderTabs(s state.State, width int) string {
	sep := tabSeparatorStyle.Render(" · ")

	var row string
	for i, t := range tabOrder {
		style := tabInactiveStyle
		if s.Tab == t {
			style = tabActiveStyle
		}
		part := style.Render(s.TabLabel(t))

		candidate := row
		if i > 0 {
			candidate += sep
		}
		candidate += part
		if lipgloss.Width(candidate) > width && row != "" {
			break
		}
		row = candidate
	}

	barStyle := lipgloss.NewStyle().
		Background(colorSurface).
		Width(width).
		PaddingLeft(1)
	return barStyle.Render(row)
}

func nextTab(t state.Tab) state.Tab {
	if t == state.TabGenerate {
		return state.TabBlog
	}
	return state.TabGenerate
}
