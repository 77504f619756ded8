package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/partyapatil/Ai-blog-frontend/internal/state"
)

type formField int

const (
	fieldPrompt formField = iota
	fieldBulk
)

// generateForm holds the two inputs of the Generate tab.
type generateForm struct {
	prompt textarea.Model
	bulk   textarea.Model
	focus  formField
}

func newGenerateForm() generateForm {
	prompt := textarea.New()
	prompt.Placeholder = "Write an article about React hooks best practices..."
	prompt.ShowLineNumbers = false
	prompt.CharLimit = 0
	prompt.SetHeight(3)

	bulk := textarea.New()
	bulk.Placeholder = "Docker for Beginners | Step-by-step tutorial\nPython vs JavaScript: Key Differences"
	bulk.ShowLineNumbers = true
	bulk.CharLimit = 0
	bulk.MaxHeight = 0
	bulk.SetHeight(8)

	f := generateForm{prompt: prompt, bulk: bulk}
	f.prompt.Focus()
	return f
}

// op is the request ctrl+s starts for the focused field.
func (f *generateForm) op() state.Op {
	if f.focus == fieldBulk {
		return state.OpGenerateBulk
	}
	return state.OpGenerateSingle
}

func (f *generateForm) cycleFocus() tea.Cmd {
	if f.focus == fieldPrompt {
		f.focus = fieldBulk
		f.prompt.Blur()
		return f.bulk.Focus()
	}
	f.focus = fieldPrompt
	f.bulk.Blur()
	return f.prompt.Focus()
}

func (f *generateForm) blur() {
	f.prompt.Blur()
	f.bulk.Blur()
}

func (f *generateForm) refocus() tea.Cmd {
	if f.focus == fieldBulk {
		return f.bulk.Focus()
	}
	return f.prompt.Focus()
}

// update feeds msg to the focused field and returns the action describing
// the new text, if it changed.
func (f *generateForm) update(msg tea.Msg) (state.Action, tea.Cmd) {
	var cmd tea.Cmd
	if f.focus == fieldBulk {
		before := f.bulk.Value()
		f.bulk, cmd = f.bulk.Update(msg)
		if v := f.bulk.Value(); v != before {
			return state.EditBulk{Text: v}, cmd
		}
		return nil, cmd
	}
	before := f.prompt.Value()
	f.prompt, cmd = f.prompt.Update(msg)
	if v := f.prompt.Value(); v != before {
		return state.EditPrompt{Text: v}, cmd
	}
	return nil, cmd
}

// sync copies text the reducer changed, such as inputs cleared after a
// successful generation, back into the widgets.
func (f *generateForm) sync(s state.State) {
	if f.prompt.Value() != s.Prompt {
		f.prompt.SetValue(s.Prompt)
	}
	if f.bulk.Value() != s.Bulk {
		f.bulk.SetValue(s.Bulk)
	}
}

func (f *generateForm) resize(width, height int) {
	w := width - 4
	if w < 20 {
		w = 20
	}
	f.prompt.SetWidth(w)
	f.bulk.SetWidth(w)

	// Whatever the prompt and labels leave goes to the bulk field
	bulkHeight := height - f.prompt.Height() - 6
	if bulkHeight < 3 {
		bulkHeight = 3
	}
	f.bulk.SetHeight(bulkHeight)
}

func (f *generateForm) view(width int) string {
	promptPane, bulkPane := paneStyle, paneStyle
	if f.focus == fieldPrompt {
		promptPane = paneActiveStyle
	} else {
		bulkPane = paneActiveStyle
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render(" Generate a single article"),
		promptPane.Width(width-2).Render(f.prompt.View()),
		labelStyle.Render(" Bulk generate")+hintStyle.Render("  one per line: Title | optional details"),
		bulkPane.Width(width-2).Render(f.bulk.View()),
	)
}
