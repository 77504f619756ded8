package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/partyapatil/Ai-blog-frontend/internal/article"
)

const rss = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
  <title>Dev Blog</title>
  <link>https://example.com</link>
  <description>posts</description>
  <item>
    <title>Docker for Beginners</title>
    <link>https://example.com/docker</link>
    <description><![CDATA[<p>Step-by-step <b>tutorial</b></p>]]></description>
  </item>
  <item>
    <title>GraphQL | REST</title>
    <link>https://example.com/graphql</link>
  </item>
  <item>
    <title>   </title>
    <link>https://example.com/untitled</link>
    <description>no title here</description>
  </item>
  <item>
    <title>TypeScript Best Practices</title>
    <link>https://example.com/ts</link>
    <description>Types
    everywhere</description>
  </item>
</channel>
</rss>`

func serve(t *testing.T, body string) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}

func TestTitles(t *testing.T) {
	url := serve(t, rss)

	got, err := Titles(context.Background(), url, 0)
	if err != nil {
		t.Fatalf("titles: %v", err)
	}
	want := "Docker for Beginners | Step-by-step tutorial\n" +
		"GraphQL - REST\n" +
		"TypeScript Best Practices | Types everywhere\n"
	if got != want {
		t.Errorf("got:\n%q\nwant:\n%q", got, want)
	}

	reqs, err := article.ParseBulk(got)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(reqs) != 3 {
		t.Fatalf("expected 3 requests, got %d", len(reqs))
	}
	if reqs[1].Title != "GraphQL - REST" || reqs[1].Details != "" {
		t.Errorf("unexpected request: %+v", reqs[1])
	}
}

func TestTitlesLimit(t *testing.T) {
	url := serve(t, rss)

	got, err := NewReader().Titles(context.Background(), url, 2)
	if err != nil {
		t.Fatalf("titles: %v", err)
	}
	if n := strings.Count(got, "\n"); n != 2 {
		t.Errorf("expected 2 lines, got %d: %q", n, got)
	}
}

func TestTitlesBadFeed(t *testing.T) {
	url := serve(t, "not a feed")

	if _, err := Titles(context.Background(), url, 0); err == nil {
		t.Error("expected error for invalid feed")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input string
		n     int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"this is a long string", 10, "this is..."},
		{"abc", 3, "abc"},
		{"abcd", 3, "abc"},
		{"", 5, ""},
	}
	for _, tt := range tests {
		got := truncate(tt.input, tt.n)
		if got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.n, got, tt.want)
		}
	}
}

func TestTruncateUTF8(t *testing.T) {
	input := "こんにちは世界です"
	got := truncate(input, 5)
	want := "こん..."
	if got != want {
		t.Errorf("truncate(%q, 5) = %q, want %q", input, got, want)
	}
}

func TestStripHTML(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"<p>Hello</p>", "Hello"},
		{"<b>Bold</b> and <i>italic</i>", "Bold and italic"},
		{"No tags here", "No tags here"},
		{"<div>  Multiple   spaces  </div>", "Multiple spaces"},
		{"", ""},
		{"<a href=\"url\">Link</a> text", "Link text"},
		{"<p>one</p><p>two</p>", "one two"},
	}
	for _, tt := range tests {
		got := stripHTML(tt.input)
		if got != tt.want {
			t.Errorf("stripHTML(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
