package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/partyapatil/Ai-blog-frontend/internal/state"
)

func renderStatusBar(s state.State, hints string, width int) string {
	left := fmt.Sprintf(" %d articles", len(s.Articles))
	if s.Stale {
		left += " · " + staleStyle.Render("offline")
	}
	if !s.SyncedAt.IsZero() {
		left += " · synced " + syncedLabel(s.SyncedAt)
	}

	right := " " + hints + " "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + fmt.Sprintf("%*s", gap, "") + right

	return statusBarStyle.Width(width).Render(bar)
}

func syncedLabel(t time.Time) string {
	if time.Since(t) < time.Minute {
		return "just now"
	}
	return relativeTime(t) + " ago"
}

// renderNotice shows the current notice, or an empty line.
func renderNotice(n *state.Notice) string {
	if n == nil {
		return ""
	}
	if n.Kind == state.NoticeError {
		return noticeErrorStyle.Render(n.Text)
	}
	return noticeSuccessStyle.Render(n.Text)
}
