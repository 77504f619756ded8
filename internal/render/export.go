package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/partyapatil/Ai-blog-frontend/internal/article"
)

// shortIDLen is how much of the id goes into an export name.
const shortIDLen = 8

// WriteHTML exports a into dir and returns the file path. The file is named
// after the title plus a short id, so articles sharing a title get separate
// files and a re-export of the same article overwrites its own.
func WriteHTML(a article.Article, dir string) (string, error) {
	data, err := HTML(a)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating export dir: %w", err)
	}
	path := filepath.Join(dir, FileName(a))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// FileName is the export file name for a.
func FileName(a article.Article) string {
	id := Slug(a.ID)
	if runes := []rune(id); len(runes) > shortIDLen {
		id = strings.TrimLeft(string(runes[len(runes)-shortIDLen:]), "-")
	}

	name := Slug(a.Title)
	switch {
	case name != "" && id != "":
		name += "-" + id
	case name == "":
		name = id
	}
	if name == "" {
		name = "article"
	}
	return name + ".html"
}

// Slug lowercases s and joins its letters and digits with dashes.
func Slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
			continue
		}
		dash = true
	}
	out := b.String()
	if runes := []rune(out); len(runes) > 80 {
		out = strings.TrimRight(string(runes[:80]), "-")
	}
	return out
}
