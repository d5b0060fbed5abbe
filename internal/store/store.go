package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Store is an explicit handle over one task file. Every operation loads the
// full collection, applies at most one mutation, and rewrites the file in
// full before reporting success. Mutations hold an exclusive file lock for
// the whole load-mutate-persist window so concurrent invocations racing on
// the same file cannot lose updates.
type Store struct {
	path   string
	format string
	flk    *flock.Flock
}

// New creates a store handle for the given file path. The file does not
// need to exist yet; the first mutation creates it. Supported formats are
// "json" and "yaml".
func New(path, format string) (*Store, error) {
	switch format {
	case FormatJSON, FormatYAML:
	case "":
		format = FormatJSON
	default:
		return nil, fmt.Errorf("%w: unsupported store format %q (use json or yaml)", ErrInvalidInput, format)
	}

	return &Store{
		path:   path,
		format: format,
		flk:    flock.New(path + ".lock"),
	}, nil
}

// Path returns the store file path.
func (s *Store) Path() string {
	return s.path
}

// Format returns the on-disk format.
func (s *Store) Format() string {
	return s.format
}

// Load reads the persisted collection. A missing file is the first-run
// case and yields an empty collection, not an error. A file that exists
// but cannot be parsed yields ErrCorruptStore; the file is never reset.
func (s *Store) Load() (*Collection, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewCollection(), nil
		}
		return nil, fmt.Errorf("failed to read store file: %w", err)
	}

	var c Collection
	switch s.format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &c)
	default:
		err = json.Unmarshal(data, &c)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: cannot parse %s: %v", ErrCorruptStore, s.path, err)
	}

	if c.Tasks == nil {
		c.Tasks = []Task{}
	}
	// Stores written before the counter existed, or edited by hand.
	if max := maxID(c.Tasks); c.NextID <= max {
		c.NextID = max + 1
	}

	return &c, nil
}

// List returns all tasks in insertion order. Read-only; an empty
// collection is a valid result.
func (s *Store) List() ([]Task, error) {
	c, err := s.Load()
	if err != nil {
		return nil, err
	}
	return c.Tasks, nil
}

// Add appends a new task with the next unused id and persists the
// collection. The description must be non-empty after trimming.
func (s *Store) Add(description string) (Task, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return Task{}, fmt.Errorf("%w: task description cannot be empty", ErrInvalidInput)
	}

	unlock, err := s.lock()
	if err != nil {
		return Task{}, err
	}
	defer unlock()

	c, err := s.Load()
	if err != nil {
		return Task{}, err
	}

	task := Task{
		ID:          c.NextID,
		Description: description,
		Done:        false,
	}
	c.NextID++
	c.Tasks = append(c.Tasks, task)

	if err := s.save(c); err != nil {
		return Task{}, err
	}
	return task, nil
}

// Complete marks the task as done and persists the collection. Completing
// an already-done task succeeds and leaves state unchanged; the returned
// bool reports whether the task was already complete.
func (s *Store) Complete(id int64) (Task, bool, error) {
	unlock, err := s.lock()
	if err != nil {
		return Task{}, false, err
	}
	defer unlock()

	c, err := s.Load()
	if err != nil {
		return Task{}, false, err
	}

	task := c.Find(id)
	if task == nil {
		return Task{}, false, fmt.Errorf("%w: no task with id %d", ErrNotFound, id)
	}
	if task.Done {
		return *task, true, nil
	}

	task.Done = true
	if err := s.save(c); err != nil {
		return Task{}, false, err
	}
	return *task, false, nil
}

// Delete removes the task and persists the collection. All other tasks
// keep their ids and relative order; the removed id is never reassigned.
func (s *Store) Delete(id int64) (Task, error) {
	unlock, err := s.lock()
	if err != nil {
		return Task{}, err
	}
	defer unlock()

	c, err := s.Load()
	if err != nil {
		return Task{}, err
	}

	task := c.Find(id)
	if task == nil {
		return Task{}, fmt.Errorf("%w: no task with id %d", ErrNotFound, id)
	}
	removed := *task
	c.Remove(id)

	if err := s.save(c); err != nil {
		return Task{}, err
	}
	return removed, nil
}

// Clear removes every task but keeps the id counter, so ids assigned after
// a clear continue from where they left off. Returns the number removed.
func (s *Store) Clear() (int, error) {
	unlock, err := s.lock()
	if err != nil {
		return 0, err
	}
	defer unlock()

	c, err := s.Load()
	if err != nil {
		return 0, err
	}

	removed := len(c.Tasks)
	c.Tasks = []Task{}

	if err := s.save(c); err != nil {
		return 0, err
	}
	return removed, nil
}

// save writes the full collection atomically via a temp file, so a partial
// write from an interrupted process is never visible as success.
func (s *Store) save(c *Collection) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("%w: cannot create store directory: %v", ErrPersistence, err)
	}

	var data []byte
	var err error
	switch s.format {
	case FormatYAML:
		data, err = yaml.Marshal(c)
	default:
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("%w: cannot marshal collection: %v", ErrPersistence, err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("%w: cannot write %s: %v", ErrPersistence, tmpPath, err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: cannot replace %s: %v", ErrPersistence, s.path, err)
	}

	return nil
}

// lock takes an exclusive lock on the store's sidecar lock file. The lock
// file lives next to the store so locking works before the first write.
func (s *Store) lock() (func(), error) {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return nil, fmt.Errorf("%w: cannot create store directory: %v", ErrPersistence, err)
	}
	if err := s.flk.Lock(); err != nil {
		return nil, fmt.Errorf("%w: cannot lock %s: %v", ErrPersistence, s.flk.Path(), err)
	}
	return func() { s.flk.Unlock() }, nil
}

func maxID(tasks []Task) int64 {
	var max int64
	for _, t := range tasks {
		if t.ID > max {
			max = t.ID
		}
	}
	return max
}
