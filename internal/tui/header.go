package tui

import (
	"fmt"
	"net/url"

	"github.com/charmbracelet/lipgloss"
)

func renderHeader(apiURL string, width int) string {
	left := headerStyle.Render("blogdeck")
	right := headerMetaStyle.Render(apiHost(apiURL) + " ")

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	return left + fmt.Sprintf("%*s", gap, "") + right
}

func apiHost(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	return u.Host
}
