package export

import (
	"encoding/json"
	"io"

	"github.com/hanseo/scriptmaster/internal"
)

// JSONExporter writes the document in JSON format (pretty-printed). Its
// output matches what the config store persists.
type JSONExporter struct{}

// Export writes a document to JSON format
func (e *JSONExporter) Export(doc *internal.Document, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(doc)
}

// Extension returns the file extension for this format
func (e *JSONExporter) Extension() string {
	return "json"
}
