package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tasktrackhq/tasktrack/internal/api"
	"github.com/tasktrackhq/tasktrack/internal/client"
)

// Commands run API calls off the update loop and deliver results as
// messages. The client applies its own per-call timeout.

func fetchTasksCmd(c *client.Client) tea.Cmd {
	return func() tea.Msg {
		tasks, err := c.ListTasks(context.Background())
		if err != nil {
			return errMsg{err: err}
		}
		return tasksLoadedMsg{tasks: tasks}
	}
}

func createTaskCmd(c *client.Client, title string, description *string) tea.Cmd {
	return func() tea.Msg {
		task, err := c.CreateTask(context.Background(), client.CreateTaskRequest{
			Title:       title,
			Description: description,
		})
		if err != nil {
			return errMsg{err: err}
		}
		return taskSavedMsg{task: *task, created: true}
	}
}

func updateTaskCmd(c *client.Client, id, title string, description *string) tea.Cmd {
	return func() tea.Msg {
		task, err := c.UpdateTask(context.Background(), id, client.UpdateTaskRequest{
			Title:       title,
			Description: description,
		})
		if err != nil {
			return errMsg{err: err}
		}
		return taskSavedMsg{task: *task}
	}
}

func toggleTaskCmd(c *client.Client, task api.TaskResponse) tea.Cmd {
	return func() tea.Msg {
		completed := !task.Completed
		updated, err := c.UpdateTask(context.Background(), task.ID, client.UpdateTaskRequest{
			Title:       task.Title,
			Description: task.Description,
			Completed:   &completed,
		})
		if err != nil {
			return errMsg{err: err}
		}
		return taskSavedMsg{task: *updated}
	}
}

func deleteTaskCmd(c *client.Client, id string) tea.Cmd {
	return func() tea.Msg {
		if err := c.DeleteTask(context.Background(), id); err != nil {
			return errMsg{err: err}
		}
		return taskDeletedMsg{id: id}
	}
}
