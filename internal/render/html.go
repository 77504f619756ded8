package render

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/partyapatil/Ai-blog-frontend/internal/article"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	md = goldmark.New(goldmark.WithExtensions(extension.GFM))

	// Article bodies are model output; nothing in them is trusted.
	policy = func() *bluemonday.Policy {
		p := bluemonday.UGCPolicy()
		p.RequireNoFollowOnLinks(true)
		p.AddTargetBlankToFullyQualifiedLinks(true)
		return p
	}()

	page = template.Must(template.New("article").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
body { max-width: 46rem; margin: 2rem auto; padding: 0 1rem; font-family: system-ui, sans-serif; line-height: 1.6; color: #1f2937; }
header { border-bottom: 1px solid #e5e7eb; margin-bottom: 1.5rem; }
.meta { color: #6b7280; font-size: .9rem; }
pre { background: #f3f4f6; padding: 1rem; overflow-x: auto; }
</style>
</head>
<body>
<header>
<h1>{{.Title}}</h1>
{{if .Details}}<p class="meta">{{.Details}}</p>{{end}}
{{if .Published}}<p class="meta">Published: {{.Published}}</p>{{end}}
</header>
<article>
{{.Body}}
</article>
</body>
</html>
`))
)

// Body converts Markdown to sanitized HTML.
func Body(content string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(content), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return policy.Sanitize(buf.String()), nil
}

// HTML renders a as a complete HTML document.
func HTML(a article.Article) ([]byte, error) {
	body, err := Body(a.Content)
	if err != nil {
		return nil, err
	}

	data := struct {
		Title     string
		Details   string
		Published string
		Body      template.HTML
	}{
		Title:   a.Title,
		Details: a.Details,
		Body:    template.HTML(body),
	}
	if !a.CreatedAt.IsZero() {
		data.Published = PublishedDate(a.CreatedAt)
	}

	var buf bytes.Buffer
	if err := page.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering page: %w", err)
	}
	return buf.Bytes(), nil
}

// PublishedDate formats a creation time the way article lists show it.
func PublishedDate(t time.Time) string {
	return t.Local().Format("Jan 2, 2006")
}
