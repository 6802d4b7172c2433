package internal

import (
	"fmt"
	"strings"
)

// BuildSystemPrompt concatenates the non-empty instruction fields in the
// fixed order role, tone, structure, depth, forbidden, format, user-intent.
// Each fragment is trimmed and fragments are joined by blank lines; empty
// fields are omitted.
func BuildSystemPrompt(fields InstructionFields) string {
	var parts []string
	for _, name := range FieldNames {
		value, _ := fields.Get(name)
		value = strings.TrimSpace(value)
		if value != "" {
			parts = append(parts, value)
		}
	}
	return strings.Join(parts, "\n\n")
}

// BuildUserPrompt embeds the topic into the user-role message.
func BuildUserPrompt(topic string) string {
	return fmt.Sprintf("주제: %s", strings.TrimSpace(topic))
}
