package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Task represents a single to-do item. Description is a pointer so the
// "no description" state survives a round trip through the store and the
// API as an explicit null rather than an empty string.
type Task struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// NewTask creates a new Task with the given title and optional description.
// It generates a new UUID for the task ID, sets the creation/update
// timestamps, and forces Completed to false.
// Returns an error if validation fails.
func NewTask(title string, description *string) (*Task, error) {
	now := time.Now().UTC()
	task := &Task{
		ID:          uuid.New(),
		Title:       title,
		Description: normalizeDescription(description),
		Completed:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return ErrTaskIDEmpty
	}

	if strings.TrimSpace(t.Title) == "" {
		return ErrTitleEmpty
	}

	return nil
}

// SetTitle replaces the task's title and refreshes the UpdatedAt timestamp.
// Returns an error if the new title is invalid; the task is left unchanged
// in that case.
func (t *Task) SetTitle(title string) error {
	orig := t.Title
	t.Title = title

	if err := t.Validate(); err != nil {
		t.Title = orig
		return err
	}

	t.UpdatedAt = time.Now().UTC()
	return nil
}

// SetDescription replaces the task's description and refreshes the
// UpdatedAt timestamp. A blank description is normalized to nil so "no
// description" is always null on the wire.
func (t *Task) SetDescription(description *string) {
	t.Description = normalizeDescription(description)
	t.UpdatedAt = time.Now().UTC()
}

// SetCompleted sets the completion flag and refreshes the UpdatedAt timestamp.
func (t *Task) SetCompleted(completed bool) {
	t.Completed = completed
	t.UpdatedAt = time.Now().UTC()
}

func normalizeDescription(description *string) *string {
	if description == nil || strings.TrimSpace(*description) == "" {
		return nil
	}
	return description
}
