package internal

import (
	"encoding/json"
	"os"
	"strings"
)

// ConfigStore owns the backing config file. It is the only component that
// reads or writes the file; everything else goes through the session.
//
// The design assumes at most one active session per file. Two processes
// sharing a path will race and the last writer wins.
type ConfigStore struct {
	path string
}

// NewConfigStore returns a store over the given file path.
func NewConfigStore(path string) *ConfigStore {
	return &ConfigStore{path: path}
}

// Path returns the backing file path.
func (s *ConfigStore) Path() string {
	return s.path
}

// Load reads and migrates the backing file. A missing or empty file yields
// (nil, nil): the caller proceeds with in-memory defaults. Read and parse
// failures are returned for the caller to report as a warning; they are
// never fatal.
func (s *ConfigStore) Load() (*Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &StorageError{Path: s.path, Op: "read", Err: err}
	}
	if strings.TrimSpace(string(data)) == "" {
		return nil, nil
	}
	return ParseDocument(data)
}

// Save serializes the full document and overwrites the backing file.
// The output is pretty-printed UTF-8 JSON for human diffability.
func (s *ConfigStore) Save(doc *Document) error {
	data, err := MarshalDocument(doc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return &StorageError{Path: s.path, Op: "write", Err: err}
	}
	return nil
}

// Import validates the raw bytes as a structured document and then writes
// them to the backing file verbatim. Nothing is written when parsing fails,
// so a malformed upload leaves the store untouched. The caller reloads
// afterwards, which runs the legacy-shape migrations, so older documents
// import cleanly.
func (s *ConfigStore) Import(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return &ParseError{Source: "import", Err: err}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return &StorageError{Path: s.path, Op: "write", Err: err}
	}
	return nil
}

// Reset deletes the backing file. In-memory state is rebuilt by the caller.
func (s *ConfigStore) Reset() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return &StorageError{Path: s.path, Op: "delete", Err: err}
	}
	return nil
}

// MarshalDocument serializes a document exactly as Save writes it.
func MarshalDocument(doc *Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, &ParseError{Source: "document", Err: err}
	}
	return append(data, '\n'), nil
}
