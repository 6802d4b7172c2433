package internal

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseDocument_LegacyShapes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, doc *Document)
	}{
		{
			name:  "oldest shape: singular instruction becomes the role field",
			input: `{"instruction": "X", "history": ["a"]}`,
			check: func(t *testing.T, doc *Document) {
				if doc.Role != "X" {
					t.Errorf("Role = %q, want %q", doc.Role, "X")
				}
				if !reflect.DeepEqual(doc.History, []string{"a"}) {
					t.Errorf("History = %v, want [a]", doc.History)
				}
			},
		},
		{
			name:  "two-field shape: role and task instructions",
			input: `{"role_instruction": "R", "task_instruction": "T", "auto_login": true}`,
			check: func(t *testing.T, doc *Document) {
				if doc.Role != "R" {
					t.Errorf("Role = %q, want %q", doc.Role, "R")
				}
				if doc.UserIntent != "T" {
					t.Errorf("UserIntent = %q, want %q", doc.UserIntent, "T")
				}
				if !doc.AutoLogin {
					t.Error("AutoLogin = false, want true")
				}
			},
		},
		{
			name:  "role_instruction preferred over singular instruction",
			input: `{"instruction": "old", "role_instruction": "new"}`,
			check: func(t *testing.T, doc *Document) {
				if doc.Role != "new" {
					t.Errorf("Role = %q, want %q", doc.Role, "new")
				}
			},
		},
		{
			name: "seven-field shape maps one-to-one",
			input: `{
				"inst_role": "r", "inst_tone": "t", "inst_structure": "s",
				"inst_depth": "d", "inst_forbidden": "fb", "inst_format": "fm",
				"inst_user_intent": "ui"
			}`,
			check: func(t *testing.T, doc *Document) {
				want := InstructionFields{
					Role: "r", Tone: "t", Structure: "s", Depth: "d",
					Forbidden: "fb", Format: "fm", UserIntent: "ui",
				}
				if doc.InstructionFields != want {
					t.Errorf("fields = %+v, want %+v", doc.InstructionFields, want)
				}
			},
		},
		{
			name:  "seven-field shape overrides legacy fields",
			input: `{"instruction": "old", "role_instruction": "older", "inst_role": "modern"}`,
			check: func(t *testing.T, doc *Document) {
				if doc.Role != "modern" {
					t.Errorf("Role = %q, want %q", doc.Role, "modern")
				}
			},
		},
		{
			name: "instruction sets decoded with active id",
			input: `{
				"instruction_sets": [
					{"id": "s1", "name": "one", "inst_role": "one role"},
					{"id": "s2", "name": "two", "inst_role": "two role"}
				],
				"active_instruction_set_id": "s2"
			}`,
			check: func(t *testing.T, doc *Document) {
				if len(doc.Sets) != 2 {
					t.Fatalf("len(Sets) = %d, want 2", len(doc.Sets))
				}
				if doc.Sets[1].Role != "two role" {
					t.Errorf("Sets[1].Role = %q", doc.Sets[1].Role)
				}
				if doc.ActiveSetID != "s2" {
					t.Errorf("ActiveSetID = %q, want s2", doc.ActiveSetID)
				}
			},
		},
		{
			name: "login fields copied verbatim",
			input: `{
				"login_id": "me", "login_pw": "secret",
				"remember_login": true, "auto_login": false
			}`,
			check: func(t *testing.T, doc *Document) {
				if doc.LoginID != "me" || doc.LoginPW != "secret" {
					t.Errorf("login = %q/%q", doc.LoginID, doc.LoginPW)
				}
				if !doc.RememberLogin {
					t.Error("RememberLogin = false, want true")
				}
				if doc.AutoLogin {
					t.Error("AutoLogin = true, want false")
				}
			},
		},
		{
			name: "wrong-typed values ignored, not coerced",
			input: `{
				"history": "not a list",
				"remember_login": "yes",
				"login_id": 42,
				"instruction": 7
			}`,
			check: func(t *testing.T, doc *Document) {
				if len(doc.History) != 0 {
					t.Errorf("History = %v, want defaults", doc.History)
				}
				if doc.RememberLogin {
					t.Error("RememberLogin coerced from string")
				}
				if doc.LoginID != "" {
					t.Errorf("LoginID = %q, want empty", doc.LoginID)
				}
				if doc.Role != DefaultFields().Role {
					t.Errorf("Role = %q, want baseline default", doc.Role)
				}
			},
		},
		{
			name:  "oversized history truncated to the most recent entries",
			input: `{"history": ["a","b","c","d","e","f","g"]}`,
			check: func(t *testing.T, doc *Document) {
				want := []string{"c", "d", "e", "f", "g"}
				if !reflect.DeepEqual(doc.History, want) {
					t.Errorf("History = %v, want %v", doc.History, want)
				}
			},
		},
		{
			name:  "empty document keeps baseline defaults",
			input: `{}`,
			check: func(t *testing.T, doc *Document) {
				if doc.InstructionFields != DefaultFields() {
					t.Errorf("fields = %+v, want baseline", doc.InstructionFields)
				}
				if len(doc.Sets) != 0 || doc.ActiveSetID != "" {
					t.Errorf("registry = %v/%q, want empty", doc.Sets, doc.ActiveSetID)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := ParseDocument([]byte(tt.input))
			if err != nil {
				t.Fatalf("ParseDocument() error = %v", err)
			}
			tt.check(t, doc)
		})
	}
}

func TestParseDocument_Malformed(t *testing.T) {
	doc, err := ParseDocument([]byte("{not json"))
	if err == nil {
		t.Fatal("ParseDocument() error = nil, want ParseError")
	}
	if doc != nil {
		t.Error("ParseDocument() returned a document alongside an error")
	}
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Errorf("error type = %T, want *ParseError", err)
	}
}
