package web

import (
	"bytes"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

// snippetRenderer renders the badge snippet. Raw HTML in the source is
// omitted rather than passed through.
var snippetRenderer = goldmark.New()

// snippetPolicy admits only what a badge snippet produces: a paragraph holding
// a link around an image, both pointing at absolute http(s) URLs.
var snippetPolicy = newSnippetPolicy()

func newSnippetPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.RequireParseableURLs(true)
	p.AllowRelativeURLs(false)
	p.AllowURLSchemes("http", "https")
	p.AllowElements("p")
	p.AllowAttrs("href").OnElements("a")
	p.AllowAttrs("src", "alt").OnElements("img")
	return p
}

// RenderSnippet converts a Markdown badge snippet to sanitized HTML for the
// preview. Returns empty string for empty input.
func RenderSnippet(src string) string {
	if src == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := snippetRenderer.Convert([]byte(src), &buf); err != nil {
		return template.HTMLEscapeString(src)
	}

	return snippetPolicy.Sanitize(buf.String())
}
