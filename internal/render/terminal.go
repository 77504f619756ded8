// Package render presents article Markdown, either styled for the terminal
// or as a standalone HTML page.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// Styles accepted by Terminal. "auto" picks dark or light from the terminal
// background; "notty" renders plain text.
var Styles = []string{"auto", "dark", "light", "notty"}

// Terminal renders Markdown content wrapped at width columns.
func Terminal(content string, width int, style string) (string, error) {
	if width <= 0 {
		width = 80
	}

	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	switch style {
	case "", "auto":
		opts = append(opts, glamour.WithAutoStyle())
	case "dark", "light", "notty":
		opts = append(opts, glamour.WithStandardStyle(style))
	default:
		return "", fmt.Errorf("unknown markdown style %q (valid: %s)", style, strings.Join(Styles, ", "))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("creating renderer: %w", err)
	}
	out, err := r.Render(content)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}
