package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/tasktrackhq/tasktrack/internal/domain"
)

// TaskStore defines the interface for task data persistence.
// Every operation either succeeds or fails with a distinguishable error:
// not-found conditions are reported with ErrTaskNotFound (wrapping
// ErrNotFound) so callers can classify them with errors.Is, and anything
// else surfaces as a generic store failure.
type TaskStore interface {
	// Create saves a new task to the store.
	// The task must be valid according to domain validation rules.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// List retrieves all tasks ordered by creation time descending
	// (newest first). Ties are broken by ID so the ordering is total.
	// Returns an empty slice, not nil, when the store is empty.
	List(ctx context.Context) ([]*domain.Task, error)

	// Update replaces the stored record for task.ID with the given task.
	// Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes a task from the store by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
