package report

import "fmt"

// Output format names accepted by NewFormatter.
const (
	FormatTerminal = "terminal"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
	FormatXLSX     = "xlsx"
)

// NewFormatter returns the formatter for the given format name. An empty
// name selects the terminal formatter.
func NewFormatter(name string) (Formatter, error) {
	switch name {
	case "", FormatTerminal:
		return NewTerminalFormatter(), nil
	case FormatJSON:
		return NewJSONFormatter(), nil
	case FormatMarkdown, "md":
		return NewMarkdownFormatter(), nil
	case FormatHTML:
		return NewHTMLFormatter(), nil
	case FormatXLSX:
		return NewXLSXFormatter(), nil
	default:
		return nil, fmt.Errorf("report: unknown format %q", name)
	}
}
