package entity

import "time"

// Task is a checklist item of a goal.
type Task struct {
	ID          int64
	GoalID      int64
	Title       string
	Description string
	Completed   bool
	CreatedAt   time.Time
}

// NewTask holds the validated fields of a task about to be inserted.
// New tasks always start uncompleted.
type NewTask struct {
	GoalID      int64
	Title       string
	Description string
}

// TaskPatch is a partial update; nil fields are left unchanged.
type TaskPatch struct {
	Title       *string
	Description *string
	Completed   *bool
}

// Apply copies the set fields of p onto t.
func (p TaskPatch) Apply(t *Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
}
