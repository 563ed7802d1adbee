package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tasktrackhq/tasktrack/internal/domain"
	"github.com/tasktrackhq/tasktrack/internal/service"
	"github.com/tasktrackhq/tasktrack/internal/store"
)

// mockTaskStore implements store.TaskStore with function fields so each
// test configures only the calls it cares about.
type mockTaskStore struct {
	createFn  func(ctx context.Context, task *domain.Task) error
	getByIDFn func(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	listFn    func(ctx context.Context) ([]*domain.Task, error)
	updateFn  func(ctx context.Context, task *domain.Task) error
	deleteFn  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if m.createFn != nil {
		return m.createFn(ctx, task)
	}
	return nil
}

func (m *mockTaskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrTaskNotFound
}

func (m *mockTaskStore) List(ctx context.Context) ([]*domain.Task, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return []*domain.Task{}, nil
}

func (m *mockTaskStore) Update(ctx context.Context, task *domain.Task) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, task)
	}
	return nil
}

func (m *mockTaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func newService(t *testing.T, s store.TaskStore) service.TaskService {
	t.Helper()

	svc, err := service.NewTaskService(s, nil)
	require.NoError(t, err)
	return svc
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestNewTaskServiceNilStore(t *testing.T) {
	t.Parallel()

	_, err := service.NewTaskService(nil, nil)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCreateTask(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		var saved *domain.Task
		svc := newService(t, &mockTaskStore{
			createFn: func(_ context.Context, task *domain.Task) error {
				saved = task
				return nil
			},
		})

		task, err := svc.CreateTask(context.Background(), service.CreateTaskInput{
			Title:       "Buy milk",
			Description: strPtr("two liters"),
		})
		require.NoError(t, err)

		assert.Equal(t, saved, task)
		assert.NotEqual(t, uuid.Nil, task.ID)
		assert.Equal(t, "Buy milk", task.Title)
		assert.False(t, task.Completed)
	})

	t.Run("empty_title_is_validation_error", func(t *testing.T) {
		t.Parallel()

		svc := newService(t, &mockTaskStore{
			createFn: func(context.Context, *domain.Task) error {
				t.Fatal("store should not be called for invalid input")
				return nil
			},
		})

		_, err := svc.CreateTask(context.Background(), service.CreateTaskInput{Title: "   "})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("store_failure_is_wrapped", func(t *testing.T) {
		t.Parallel()

		storeErr := errors.New("connection refused")
		svc := newService(t, &mockTaskStore{
			createFn: func(context.Context, *domain.Task) error {
				return storeErr
			},
		})

		_, err := svc.CreateTask(context.Background(), service.CreateTaskInput{Title: "ok"})
		require.Error(t, err)
		assert.ErrorIs(t, err, storeErr)

		var svcErr *service.TaskServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, "create", svcErr.Operation)
	})
}

func TestGetTask(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		want, err := domain.NewTask("existing", nil)
		require.NoError(t, err)

		svc := newService(t, &mockTaskStore{
			getByIDFn: func(_ context.Context, id uuid.UUID) (*domain.Task, error) {
				assert.Equal(t, want.ID, id)
				return want, nil
			},
		})

		got, err := svc.GetTask(context.Background(), want.ID)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("not_found_passes_through", func(t *testing.T) {
		t.Parallel()

		svc := newService(t, &mockTaskStore{})

		_, err := svc.GetTask(context.Background(), uuid.New())
		assert.ErrorIs(t, err, store.ErrTaskNotFound)

		var svcErr *service.TaskServiceError
		assert.False(t, errors.As(err, &svcErr),
			"not-found must stay classifiable, not be wrapped in a service error")
	})
}

func TestUpdateTask(t *testing.T) {
	t.Parallel()

	newStored := func(t *testing.T) *domain.Task {
		t.Helper()
		task, err := domain.NewTask("stored title", strPtr("stored description"))
		require.NoError(t, err)
		task.SetCompleted(true)
		return task
	}

	t.Run("applies_all_fields", func(t *testing.T) {
		t.Parallel()

		stored := newStored(t)
		var saved *domain.Task
		svc := newService(t, &mockTaskStore{
			getByIDFn: func(context.Context, uuid.UUID) (*domain.Task, error) {
				return stored, nil
			},
			updateFn: func(_ context.Context, task *domain.Task) error {
				saved = task
				return nil
			},
		})

		got, err := svc.UpdateTask(context.Background(), stored.ID, service.UpdateTaskInput{
			Title:       "new title",
			Description: strPtr("new description"),
			Completed:   boolPtr(false),
		})
		require.NoError(t, err)

		assert.Equal(t, saved, got)
		assert.Equal(t, "new title", got.Title)
		require.NotNil(t, got.Description)
		assert.Equal(t, "new description", *got.Description)
		assert.False(t, got.Completed)
	})

	t.Run("nil_completed_keeps_stored_value", func(t *testing.T) {
		t.Parallel()

		stored := newStored(t)
		svc := newService(t, &mockTaskStore{
			getByIDFn: func(context.Context, uuid.UUID) (*domain.Task, error) {
				return stored, nil
			},
		})

		got, err := svc.UpdateTask(context.Background(), stored.ID, service.UpdateTaskInput{
			Title: "renamed",
		})
		require.NoError(t, err)
		assert.True(t, got.Completed)
	})

	t.Run("nil_description_keeps_stored_value", func(t *testing.T) {
		t.Parallel()

		stored := newStored(t)
		svc := newService(t, &mockTaskStore{
			getByIDFn: func(context.Context, uuid.UUID) (*domain.Task, error) {
				return stored, nil
			},
		})

		got, err := svc.UpdateTask(context.Background(), stored.ID, service.UpdateTaskInput{
			Title:     stored.Title,
			Completed: boolPtr(false),
		})
		require.NoError(t, err)
		require.NotNil(t, got.Description, "omitted description must be preserved")
		assert.Equal(t, "stored description", *got.Description)
		assert.False(t, got.Completed)
	})

	t.Run("blank_description_clears_stored_value", func(t *testing.T) {
		t.Parallel()

		stored := newStored(t)
		svc := newService(t, &mockTaskStore{
			getByIDFn: func(context.Context, uuid.UUID) (*domain.Task, error) {
				return stored, nil
			},
		})

		got, err := svc.UpdateTask(context.Background(), stored.ID, service.UpdateTaskInput{
			Title:       stored.Title,
			Description: strPtr(""),
		})
		require.NoError(t, err)
		assert.Nil(t, got.Description)
	})

	t.Run("not_found", func(t *testing.T) {
		t.Parallel()

		svc := newService(t, &mockTaskStore{})

		_, err := svc.UpdateTask(context.Background(), uuid.New(), service.UpdateTaskInput{
			Title: "whatever",
		})
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
	})

	t.Run("invalid_title_is_validation_error", func(t *testing.T) {
		t.Parallel()

		stored := newStored(t)
		svc := newService(t, &mockTaskStore{
			getByIDFn: func(context.Context, uuid.UUID) (*domain.Task, error) {
				return stored, nil
			},
			updateFn: func(context.Context, *domain.Task) error {
				t.Fatal("store should not be called for invalid input")
				return nil
			},
		})

		_, err := svc.UpdateTask(context.Background(), stored.ID, service.UpdateTaskInput{
			Title: "  ",
		})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestDeleteTask(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		id := uuid.New()
		svc := newService(t, &mockTaskStore{
			deleteFn: func(_ context.Context, got uuid.UUID) error {
				assert.Equal(t, id, got)
				return nil
			},
		})

		assert.NoError(t, svc.DeleteTask(context.Background(), id))
	})

	t.Run("not_found", func(t *testing.T) {
		t.Parallel()

		svc := newService(t, &mockTaskStore{
			deleteFn: func(context.Context, uuid.UUID) error {
				return store.ErrTaskNotFound
			},
		})

		err := svc.DeleteTask(context.Background(), uuid.New())
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
	})
}

func TestListTasks(t *testing.T) {
	t.Parallel()

	t.Run("passes_through_store_result", func(t *testing.T) {
		t.Parallel()

		first, err := domain.NewTask("first", nil)
		require.NoError(t, err)

		svc := newService(t, &mockTaskStore{
			listFn: func(context.Context) ([]*domain.Task, error) {
				return []*domain.Task{first}, nil
			},
		})

		tasks, err := svc.ListTasks(context.Background())
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, first, tasks[0])
	})

	t.Run("store_failure_is_wrapped", func(t *testing.T) {
		t.Parallel()

		svc := newService(t, &mockTaskStore{
			listFn: func(context.Context) ([]*domain.Task, error) {
				return nil, errors.New("boom")
			},
		})

		_, err := svc.ListTasks(context.Background())
		var svcErr *service.TaskServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, "list", svcErr.Operation)
	})
}
