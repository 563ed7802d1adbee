package api

import (
	"strings"
	"time"

	"github.com/tasktrackhq/tasktrack/internal/domain"
)

// CreateTaskRequest is the request body for creating a task.
type CreateTaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

// Validate checks the request body, used via shared.ValidateRequest.
func (r CreateTaskRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return domain.ErrTitleEmpty
	}
	return nil
}

// UpdateTaskRequest is the request body for updating a task.
// Description and Completed are pointers so clients can omit them to
// keep the stored values.
type UpdateTaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

// Validate checks the request body, used via shared.ValidateRequest.
func (r UpdateTaskRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return domain.ErrTitleEmpty
	}
	return nil
}

// TaskResponse is the wire representation of a task. Description is
// serialized as null when the task has none.
type TaskResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// MessageResponse is a simple confirmation body, used by delete.
type MessageResponse struct {
	Message string `json:"message"`
}

// ToTaskResponse converts a domain task to its wire representation.
func ToTaskResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID.String(),
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

// ToTaskResponses converts a slice of domain tasks, preserving order.
// An empty input yields an empty, non-nil slice so the JSON encoding
// is [] rather than null.
func ToTaskResponses(tasks []*domain.Task) []TaskResponse {
	responses := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		responses = append(responses, ToTaskResponse(task))
	}
	return responses
}
