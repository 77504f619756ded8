package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/partyapatil/Ai-blog-frontend/internal/article"
	"github.com/partyapatil/Ai-blog-frontend/internal/render"
)

// reader shows one article's Markdown in a scrollable viewport.
type reader struct {
	vp    viewport.Model
	style string

	// what the viewport currently holds
	id    string
	width int
}

func newReader(style string) reader {
	return reader{vp: viewport.New(80, 20), style: style}
}

func (r *reader) resize(width, height int) {
	r.vp.Width = width
	r.vp.Height = height
}

// show renders a unless it is already on screen at this width.
func (r *reader) show(a *article.Article, logger *slog.Logger) {
	if a == nil {
		r.id = ""
		return
	}
	if a.ID == r.id && r.vp.Width == r.width {
		return
	}

	out, err := render.Terminal(a.Content, r.vp.Width-2, r.style)
	if err != nil {
		logger.Warn("rendering article", "id", a.ID, "err", err)
		out = a.Content
	}
	r.vp.SetContent(out)
	r.vp.GotoTop()
	r.id = a.ID
	r.width = r.vp.Width
}

func (r *reader) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	r.vp, cmd = r.vp.Update(msg)
	return cmd
}

func (r *reader) view(a *article.Article) string {
	title := readerTitleStyle.Render(a.Title)
	meta := render.PublishedDate(a.CreatedAt)
	if a.CreatedAt.IsZero() {
		meta = "unknown date"
	}
	if a.Details != "" {
		meta += " · " + a.Details
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, readerMetaStyle.Render(meta), r.vp.View())
}
