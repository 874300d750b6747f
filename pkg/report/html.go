package report

import (
	"bytes"
	"fmt"
	"html"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/interfaces"
)

const htmlStyle = "body{font-family:system-ui,sans-serif;max-width:960px;margin:2rem auto;padding:0 1rem;color:#1c1917;line-height:1.5;} " +
	"table{border-collapse:collapse;margin:0.5rem 0 1rem;} th,td{border:1px solid #a8a29e;padding:0.35rem 0.6rem;text-align:left;} " +
	"thead th{background:#f1f5f9;} h1{border-bottom:2px solid #0e7490;padding-bottom:0.3rem;} h2{color:#0e7490;}"

// HTMLFormatter renders the Markdown analysis into a standalone HTML page.
type HTMLFormatter struct {
	md goldmark.Markdown
}

// NewHTMLFormatter creates an HTML formatter with GitHub-flavoured tables.
func NewHTMLFormatter() *HTMLFormatter {
	return &HTMLFormatter{md: goldmark.New(goldmark.WithExtensions(extension.GFM))}
}

// Format writes the analysis as an HTML document.
func (f *HTMLFormatter) Format(w io.Writer, a *interfaces.Analysis) error {
	var markdown bytes.Buffer
	if err := NewMarkdownFormatter().Format(&markdown, a); err != nil {
		return err
	}

	var content bytes.Buffer
	if err := f.md.Convert(markdown.Bytes(), &content); err != nil {
		return fmt.Errorf("report: markdown convert: %w", err)
	}

	_, err := fmt.Fprintf(w, "<!doctype html><html><head><meta charset='utf-8'><title>%s</title><style>%s</style></head><body>\n%s</body></html>\n",
		html.EscapeString(displayName(a)), htmlStyle, content.String())
	return err
}
