// Package journal records an append-only activity log of store mutations.
package journal

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Entry is one journaled operation.
type Entry struct {
	EntryID string    `json:"entry_id"`
	Time    time.Time `json:"time"`
	Op      string    `json:"op"`
	TaskID  int64     `json:"task_id,omitempty"`
	Detail  string    `json:"detail,omitempty"`
}

// Journal appends JSONL entries to an activity log file. The journal is
// advisory: callers report append failures but never fail the user's
// operation over them, since task-state durability is the store's job.
type Journal struct {
	path string
	file *os.File
}

// Open opens (creating if needed) the journal file for appending.
func Open(path string) (*Journal, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create journal directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal file: %w", err)
	}

	return &Journal{
		path: path,
		file: file,
	}, nil
}

// Append writes one entry. EntryID and Time are filled in here.
func (j *Journal) Append(op string, taskID int64, detail string) error {
	entry := Entry{
		EntryID: uuid.New().String(),
		Time:    time.Now().UTC(),
		Op:      op,
		TaskID:  taskID,
		Detail:  detail,
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal journal entry: %w", err)
	}

	_, err = j.file.Write(append(data, '\n'))
	return err
}

// Close closes the journal file.
func (j *Journal) Close() error {
	return j.file.Close()
}

// Path returns the path to the journal file.
func (j *Journal) Path() string {
	return j.path
}

// ReadAll loads every entry from a journal file, oldest first. A missing
// file yields an empty slice.
func ReadAll(path string) ([]Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open journal file: %w", err)
	}
	defer file.Close()

	var entries []Entry
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var entry Entry
		if err := json.Unmarshal(line, &entry); err != nil {
			return nil, fmt.Errorf("failed to parse journal entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read journal file: %w", err)
	}

	return entries, nil
}
