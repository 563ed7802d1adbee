// Package client provides a typed HTTP client for the task API. It is the
// access layer for the terminal UI and for anything else that talks to the
// server programmatically.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tasktrackhq/tasktrack/internal/api"
)

const (
	// APITimeout is the per-call timeout for API requests.
	APITimeout = 10 * time.Second

	tasksPath = "/api/tasks"
)

// ErrNotFound is returned when the server reports a missing task.
var ErrNotFound = errors.New("task not found")

// APIError carries the status code and server-provided message for a
// non-2xx response that is not a plain not-found.
type APIError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface for APIError.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error (status %d)", e.StatusCode)
}

// CreateTaskRequest mirrors the server's create body.
type CreateTaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
}

// UpdateTaskRequest mirrors the server's update body. Completed is a
// pointer so callers can omit it to keep the stored value.
type UpdateTaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}

// Client is a typed HTTP client for the task API.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the API at baseURL, e.g. "http://localhost:8080".
func New(baseURL string) (*Client, error) {
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		return nil, errors.New("base URL cannot be empty")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}

	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: APITimeout},
	}, nil
}

// NewWithHTTPClient creates a client with a custom HTTP client (for testing).
func NewWithHTTPClient(baseURL string, httpClient *http.Client) (*Client, error) {
	c, err := New(baseURL)
	if err != nil {
		return nil, err
	}
	c.http = httpClient
	return c, nil
}

// ListTasks fetches all tasks, newest first.
func (c *Client) ListTasks(ctx context.Context) ([]api.TaskResponse, error) {
	var tasks []api.TaskResponse
	if err := c.do(ctx, http.MethodGet, tasksPath, nil, http.StatusOK, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// CreateTask creates a new task and returns the stored representation.
func (c *Client) CreateTask(
	ctx context.Context,
	req CreateTaskRequest,
) (*api.TaskResponse, error) {
	var task api.TaskResponse
	if err := c.do(ctx, http.MethodPost, tasksPath, req, http.StatusCreated, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// GetTask fetches a single task by ID.
func (c *Client) GetTask(ctx context.Context, id string) (*api.TaskResponse, error) {
	var task api.TaskResponse
	path := tasksPath + "/" + url.PathEscape(id)
	if err := c.do(ctx, http.MethodGet, path, nil, http.StatusOK, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateTask updates a task and returns the stored representation.
func (c *Client) UpdateTask(
	ctx context.Context,
	id string,
	req UpdateTaskRequest,
) (*api.TaskResponse, error) {
	var task api.TaskResponse
	path := tasksPath + "/" + url.PathEscape(id)
	if err := c.do(ctx, http.MethodPut, path, req, http.StatusOK, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// DeleteTask removes a task by ID.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	path := tasksPath + "/" + url.PathEscape(id)
	return c.do(ctx, http.MethodDelete, path, nil, http.StatusOK, nil)
}

// do performs one API call: encode the body, send, check the status and
// decode either the expected payload or the server's error message.
func (c *Client) do(
	ctx context.Context,
	method, path string,
	body any,
	wantStatus int,
	out any,
) error {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != wantStatus {
		return c.errorFromResponse(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// errorFromResponse turns a non-2xx response into a typed error, using
// the server's message when the body is parseable.
func (c *Client) errorFromResponse(resp *http.Response) error {
	var body struct {
		Message string `json:"message"`
	}
	// A body that fails to parse still yields a usable status-only error.
	_ = json.NewDecoder(resp.Body).Decode(&body)

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", ErrNotFound, body.Message)
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    body.Message,
	}
}
