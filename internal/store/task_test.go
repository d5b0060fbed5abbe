package store

import "testing"

func TestNewCollection(t *testing.T) {
	t.Parallel()

	c := NewCollection()
	if c.Version != 1 {
		t.Errorf("Expected version 1, got %d", c.Version)
	}
	if c.NextID != 1 {
		t.Errorf("Expected next id 1, got %d", c.NextID)
	}
	if len(c.Tasks) != 0 {
		t.Errorf("Expected empty tasks, got %d", len(c.Tasks))
	}
}

func TestCollectionFind(t *testing.T) {
	t.Parallel()

	c := NewCollection()
	c.Tasks = []Task{
		{ID: 1, Description: "Task 1"},
		{ID: 2, Description: "Task 2"},
	}

	task := c.Find(1)
	if task == nil {
		t.Fatal("Expected to find task 1")
	}
	if task.Description != "Task 1" {
		t.Errorf("Expected 'Task 1', got '%s'", task.Description)
	}

	if c.Find(3) != nil {
		t.Error("Expected nil for non-existent task")
	}
}

func TestCollectionRemove(t *testing.T) {
	t.Parallel()

	c := NewCollection()
	c.Tasks = []Task{
		{ID: 1, Description: "Task 1"},
		{ID: 2, Description: "Task 2"},
		{ID: 3, Description: "Task 3"},
	}

	removed := c.Remove(2)
	if !removed {
		t.Error("Expected Remove to return true for existing task")
	}
	if len(c.Tasks) != 2 {
		t.Errorf("Expected 2 tasks after removal, got %d", len(c.Tasks))
	}
	if c.Find(2) != nil {
		t.Error("Task 2 should be removed")
	}
	if c.Find(1) == nil || c.Find(3) == nil {
		t.Error("Tasks 1 and 3 should still exist")
	}
	if c.Tasks[0].ID != 1 || c.Tasks[1].ID != 3 {
		t.Errorf("Expected order [1 3], got [%d %d]", c.Tasks[0].ID, c.Tasks[1].ID)
	}

	removed = c.Remove(99)
	if removed {
		t.Error("Expected Remove to return false for non-existent task")
	}
	if len(c.Tasks) != 2 {
		t.Errorf("Expected 2 tasks, got %d", len(c.Tasks))
	}
}

func TestCollectionStats(t *testing.T) {
	t.Parallel()

	c := NewCollection()
	c.Tasks = []Task{
		{ID: 1, Done: true},
		{ID: 2, Done: false},
		{ID: 3, Done: false},
	}

	total, done, open := c.Stats()
	if total != 3 {
		t.Errorf("Expected total 3, got %d", total)
	}
	if done != 1 {
		t.Errorf("Expected done 1, got %d", done)
	}
	if open != 2 {
		t.Errorf("Expected open 2, got %d", open)
	}
}
