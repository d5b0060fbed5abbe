package store

// Task is one to-do item. The id is assigned by the store and stays stable
// for the task's lifetime; descriptions are immutable after creation.
type Task struct {
	ID          int64  `json:"id" yaml:"id"`
	Description string `json:"description" yaml:"description"`
	Done        bool   `json:"done" yaml:"done"`
}

// Collection is the full ordered task list, persisted as one unit.
// NextID is an explicit counter independent of the current max id, so
// deleted ids are never reused, including across process restarts.
type Collection struct {
	Version int    `json:"version" yaml:"version"`
	NextID  int64  `json:"next_id" yaml:"next_id"`
	Tasks   []Task `json:"tasks" yaml:"tasks"`
}

// NewCollection creates an empty collection for the first-run case.
func NewCollection() *Collection {
	return &Collection{
		Version: 1,
		NextID:  1,
		Tasks:   []Task{},
	}
}

// Find returns the task with the given id, or nil if it does not exist.
func (c *Collection) Find(id int64) *Task {
	for i := range c.Tasks {
		if c.Tasks[i].ID == id {
			return &c.Tasks[i]
		}
	}
	return nil
}

// Remove removes the task with the given id, preserving the ids and
// relative order of all other tasks. Returns false if the id is unknown.
func (c *Collection) Remove(id int64) bool {
	for i := range c.Tasks {
		if c.Tasks[i].ID == id {
			c.Tasks = append(c.Tasks[:i], c.Tasks[i+1:]...)
			return true
		}
	}
	return false
}

// Stats returns task counts for display.
func (c *Collection) Stats() (total, done, open int) {
	for _, t := range c.Tasks {
		total++
		if t.Done {
			done++
		} else {
			open++
		}
	}
	return
}
