package internal

import (
	"path/filepath"
	"testing"

	"github.com/hanseo/scriptmaster/testutil"
)

func TestArchive_AppendAndList(t *testing.T) {
	path := filepath.Join(testutil.CreateTempDir(t), "archive.db")
	archive, err := OpenArchive(path)
	if err != nil {
		t.Fatalf("OpenArchive() error = %v", err)
	}
	defer func() { _ = archive.Close() }()

	if err := archive.Append("topic one", ModelGPT4oMini, "output one"); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if err := archive.Append("topic two", ModelGPT4o, "output two"); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	entries, err := archive.List(10)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
	// Newest first.
	if entries[0].Topic != "topic two" || entries[1].Topic != "topic one" {
		t.Errorf("order = [%s %s], want newest first", entries[0].Topic, entries[1].Topic)
	}
	if entries[0].Model != string(ModelGPT4o) {
		t.Errorf("Model = %q, want %q", entries[0].Model, ModelGPT4o)
	}
	if entries[0].Output != "output two" {
		t.Errorf("Output = %q", entries[0].Output)
	}
	if entries[0].CreatedAt.IsZero() {
		t.Error("CreatedAt is zero")
	}
}

func TestArchive_ListLimit(t *testing.T) {
	path := filepath.Join(testutil.CreateTempDir(t), "archive.db")
	archive, err := OpenArchive(path)
	if err != nil {
		t.Fatalf("OpenArchive() error = %v", err)
	}
	defer func() { _ = archive.Close() }()

	for i := 0; i < 5; i++ {
		if err := archive.Append("topic", ModelGPT4oMini, "output"); err != nil {
			t.Fatalf("Append() error = %v", err)
		}
	}
	entries, err := archive.List(3)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("len(entries) = %d, want 3", len(entries))
	}
}

func TestArchive_EmptyList(t *testing.T) {
	path := filepath.Join(testutil.CreateTempDir(t), "archive.db")
	archive, err := OpenArchive(path)
	if err != nil {
		t.Fatalf("OpenArchive() error = %v", err)
	}
	defer func() { _ = archive.Close() }()

	entries, err := archive.List(10)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("len(entries) = %d, want 0", len(entries))
	}
}

func TestArchive_ReopenPersists(t *testing.T) {
	path := filepath.Join(testutil.CreateTempDir(t), "archive.db")
	archive, err := OpenArchive(path)
	if err != nil {
		t.Fatalf("OpenArchive() error = %v", err)
	}
	if err := archive.Append("kept", ModelGPT41, "kept output"); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if err := archive.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	reopened, err := OpenArchive(path)
	if err != nil {
		t.Fatalf("OpenArchive() reopen error = %v", err)
	}
	defer func() { _ = reopened.Close() }()

	entries, err := reopened.List(10)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(entries) != 1 || entries[0].Topic != "kept" {
		t.Errorf("entries after reopen = %+v", entries)
	}
}
