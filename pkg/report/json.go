package report

import (
	"encoding/json"
	"io"

	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/interfaces"
)

// JSONFormatter writes an analysis as JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a JSON formatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format writes the analysis as indented JSON to the given writer.
func (f *JSONFormatter) Format(w io.Writer, a *interfaces.Analysis) error {
	return WriteJSON(w, a)
}

// WriteJSON writes any value as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
