package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/hanseo/scriptmaster/internal"
)

// MarkdownExporter writes a human-readable summary of the document
type MarkdownExporter struct{}

// Export writes a document to Markdown format
func (e *MarkdownExporter) Export(doc *internal.Document, w io.Writer) error {
	_, _ = fmt.Fprintf(w, "# Configuration\n\n")

	if doc.LoginID != "" {
		_, _ = fmt.Fprintf(w, "**Login:** %s  \n", doc.LoginID)
	}
	_, _ = fmt.Fprintf(w, "**Remember login:** %v  \n", doc.RememberLogin)
	_, _ = fmt.Fprintf(w, "**Auto login:** %v\n\n", doc.AutoLogin)

	_, _ = fmt.Fprintf(w, "## Instruction sets\n\n")
	if len(doc.Sets) == 0 {
		_, _ = fmt.Fprintf(w, "_none_\n\n")
	}
	for _, set := range doc.Sets {
		marker := ""
		if set.ID == doc.ActiveSetID {
			marker = " (active)"
		}
		_, _ = fmt.Fprintf(w, "### %s%s\n\n", set.Name, marker)
		_, _ = fmt.Fprintf(w, "`%s`\n\n", set.ID)
		for _, name := range internal.FieldNames {
			value, _ := set.Get(name)
			value = strings.TrimSpace(value)
			if value == "" {
				continue
			}
			_, _ = fmt.Fprintf(w, "- **%s:** %s\n", name, value)
		}
		_, _ = fmt.Fprintf(w, "\n")
	}

	_, _ = fmt.Fprintf(w, "## Recent topics\n\n")
	if len(doc.History) == 0 {
		_, _ = fmt.Fprintf(w, "_none_\n")
	}
	// Most recent first.
	for i := len(doc.History) - 1; i >= 0; i-- {
		_, _ = fmt.Fprintf(w, "1. %s\n", doc.History[i])
	}

	return nil
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}
