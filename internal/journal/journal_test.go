package journal

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func TestAppendAndReadAll(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), ".tock", "journal.jsonl")

	j, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	if err := j.Append("add", 1, "Buy groceries"); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := j.Append("complete", 1, "Buy groceries"); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := j.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	entries, err := ReadAll(path)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}

	if entries[0].Op != "add" || entries[0].TaskID != 1 {
		t.Errorf("Expected first entry op=add task_id=1, got op=%s task_id=%d", entries[0].Op, entries[0].TaskID)
	}
	if entries[1].Op != "complete" {
		t.Errorf("Expected second entry op=complete, got %s", entries[1].Op)
	}

	for _, e := range entries {
		if _, err := uuid.Parse(e.EntryID); err != nil {
			t.Errorf("Entry id %q is not a valid uuid: %v", e.EntryID, err)
		}
		if e.Time.IsZero() {
			t.Error("Expected entry time to be set")
		}
	}
}

func TestAppendAcrossReopens(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "journal.jsonl")

	for i := 0; i < 3; i++ {
		j, err := Open(path)
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}
		if err := j.Append("add", int64(i+1), "task"); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
		j.Close()
	}

	entries, err := ReadAll(path)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("Expected 3 entries across reopens, got %d", len(entries))
	}
}

func TestReadAllMissingFile(t *testing.T) {
	t.Parallel()

	entries, err := ReadAll(filepath.Join(t.TempDir(), "nope.jsonl"))
	if err != nil {
		t.Fatalf("ReadAll on missing file failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected no entries, got %d", len(entries))
	}
}
