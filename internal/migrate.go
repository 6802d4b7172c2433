package internal

import (
	"encoding/json"
	"strings"
)

// A migration copies one recognized field group from a raw document into the
// canonical shape. Migrations run in order over the same raw map; later
// migrations overwrite what earlier ones set, so the newest shape a document
// carries wins for each field group.
type migration func(raw map[string]json.RawMessage, doc *Document)

var migrations = []migration{
	migrateSingularInstruction,
	migrateRoleTaskInstructions,
	migrateInstructionFields,
	migrateInstructionSets,
	migrateSessionFields,
}

// ParseDocument parses raw bytes into a canonical Document, applying the
// legacy-shape migrations. The input may be any schema shape the app has
// ever written.
func ParseDocument(data []byte) (*Document, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &ParseError{Source: "document", Err: err}
	}
	doc := NewDocument()
	for _, m := range migrations {
		m(raw, doc)
	}
	return doc, nil
}

// migrateSingularInstruction handles the oldest shape: a single
// "instruction" string, which becomes the role field.
func migrateSingularInstruction(raw map[string]json.RawMessage, doc *Document) {
	if s, ok := stringField(raw, "instruction"); ok && strings.TrimSpace(s) != "" {
		doc.Role = s
	}
}

// migrateRoleTaskInstructions handles the two-field shape:
// "role_instruction" plus "task_instruction". The task text is the user's
// standing request and maps to the user-intent field.
func migrateRoleTaskInstructions(raw map[string]json.RawMessage, doc *Document) {
	if s, ok := stringField(raw, "role_instruction"); ok && strings.TrimSpace(s) != "" {
		doc.Role = s
	}
	if s, ok := stringField(raw, "task_instruction"); ok && strings.TrimSpace(s) != "" {
		doc.UserIntent = s
	}
}

// migrateInstructionFields handles the canonical seven inst_* fields.
func migrateInstructionFields(raw map[string]json.RawMessage, doc *Document) {
	keys := map[string]*string{
		"inst_role":        &doc.Role,
		"inst_tone":        &doc.Tone,
		"inst_structure":   &doc.Structure,
		"inst_depth":       &doc.Depth,
		"inst_forbidden":   &doc.Forbidden,
		"inst_format":      &doc.Format,
		"inst_user_intent": &doc.UserIntent,
	}
	for key, dst := range keys {
		if s, ok := stringField(raw, key); ok {
			*dst = s
		}
	}
}

// migrateInstructionSets decodes the instruction set registry. When present,
// the registry supersedes the flat instruction fields once the active set is
// applied after load.
func migrateInstructionSets(raw map[string]json.RawMessage, doc *Document) {
	if v, ok := raw["instruction_sets"]; ok {
		var sets []InstructionSet
		if err := json.Unmarshal(v, &sets); err == nil {
			doc.Sets = sets
		}
	}
	if s, ok := stringField(raw, "active_instruction_set_id"); ok {
		doc.ActiveSetID = s
	}
}

// migrateSessionFields copies history and login fields verbatim when
// type-correct. Wrong-typed values are ignored, not coerced.
func migrateSessionFields(raw map[string]json.RawMessage, doc *Document) {
	if v, ok := raw["history"]; ok {
		var hist []string
		if err := json.Unmarshal(v, &hist); err == nil {
			if len(hist) > MaxHistory {
				hist = hist[len(hist)-MaxHistory:]
			}
			doc.History = hist
		}
	}
	if s, ok := stringField(raw, "login_id"); ok {
		doc.LoginID = s
	}
	if s, ok := stringField(raw, "login_pw"); ok {
		doc.LoginPW = s
	}
	if b, ok := boolField(raw, "remember_login"); ok {
		doc.RememberLogin = b
	}
	if b, ok := boolField(raw, "auto_login"); ok {
		doc.AutoLogin = b
	}
}

func stringField(raw map[string]json.RawMessage, key string) (string, bool) {
	v, ok := raw[key]
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return "", false
	}
	return s, true
}

func boolField(raw map[string]json.RawMessage, key string) (bool, bool) {
	v, ok := raw[key]
	if !ok {
		return false, false
	}
	var b bool
	if err := json.Unmarshal(v, &b); err != nil {
		return false, false
	}
	return b, true
}
