// Package feed turns an RSS or Atom feed into bulk generation input, one
// "title | excerpt" line per item.
package feed

import (
	"context"
	"fmt"
	"strings"

	"github.com/mmcdole/gofeed"
	"github.com/partyapatil/Ai-blog-frontend/internal/article"
)

// excerptLen bounds the details part of each line.
const excerptLen = 300

type Reader struct {
	parser *gofeed.Parser
}

func NewReader() *Reader {
	return &Reader{parser: gofeed.NewParser()}
}

// Titles fetches url and returns at most limit lines of bulk input. A limit
// of zero or less means every item.
func (r *Reader) Titles(ctx context.Context, url string, limit int) (string, error) {
	feed, err := r.parser.ParseURLWithContext(url, ctx)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", url, err)
	}
	return Lines(feed.Items, limit), nil
}

// Titles is Reader.Titles with a fresh parser.
func Titles(ctx context.Context, url string, limit int) (string, error) {
	return NewReader().Titles(ctx, url, limit)
}

// Lines formats feed items as bulk input. Items without a title are skipped.
func Lines(items []*gofeed.Item, limit int) string {
	var b strings.Builder
	n := 0
	for _, item := range items {
		if limit > 0 && n >= limit {
			break
		}
		// A separator in the title would move the rest of it into details
		title := strings.ReplaceAll(clean(item.Title), article.Separator, "-")
		if title == "" {
			continue
		}

		desc := item.Description
		if desc == "" {
			desc = item.Content
		}
		desc = truncate(clean(stripHTML(desc)), excerptLen)

		b.WriteString(title)
		if desc != "" {
			b.WriteString(" " + article.Separator + " ")
			b.WriteString(desc)
		}
		b.WriteByte('\n')
		n++
	}
	return b.String()
}

// clean collapses whitespace and drops newlines, which would otherwise split
// one item across lines.
func clean(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

func stripHTML(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
			b.WriteRune(' ')
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
