// Package tui provides the terminal interface for browsing and editing
// tasks. The model follows the usual Elm shape: every state change happens
// in Update in response to a message, and API calls run as commands that
// deliver their results back as messages.
package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tasktrackhq/tasktrack/internal/api"
	"github.com/tasktrackhq/tasktrack/internal/client"
)

// viewState names the screen the model is currently showing.
type viewState int

const (
	// viewLoading is the initial state before the first fetch completes.
	viewLoading viewState = iota

	// viewList shows the task list.
	viewList

	// viewForm shows the create/edit form.
	viewForm
)

// Messages delivered by commands.

// tasksLoadedMsg carries a fresh task list from the server.
type tasksLoadedMsg struct {
	tasks []api.TaskResponse
}

// taskSavedMsg reports a successful create or update.
type taskSavedMsg struct {
	task    api.TaskResponse
	created bool
}

// taskDeletedMsg reports a successful delete.
type taskDeletedMsg struct {
	id string
}

// errMsg carries a failed API call.
type errMsg struct {
	err error
}

// Model is the TUI state. All transitions happen in Update.
type Model struct {
	client *client.Client

	state    viewState
	tasks    []api.TaskResponse
	cursor   int
	inFlight bool
	status   string
	err      error

	// form state; editID is empty when creating
	editID     string
	titleInput string
	descInput  string
	descFocus  bool

	width  int
	height int
}

// New creates a model backed by the given API client.
func New(c *client.Client) *Model {
	return &Model{
		client: c,
		state:  viewLoading,
		tasks:  []api.TaskResponse{},
	}
}

// Init kicks off the initial fetch.
func (m *Model) Init() tea.Cmd {
	return fetchTasksCmd(m.client)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tasksLoadedMsg:
		m.tasks = msg.tasks
		m.inFlight = false
		m.err = nil
		if m.state == viewLoading {
			m.state = viewList
		}
		if m.cursor >= len(m.tasks) {
			m.cursor = len(m.tasks) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		return m, nil

	case taskSavedMsg:
		if msg.created {
			m.status = "Created \"" + msg.task.Title + "\""
		} else {
			m.status = "Saved \"" + msg.task.Title + "\""
		}
		m.state = viewList
		m.resetForm()
		// The list on screen is stale until the server confirms what it
		// stored, so refetch rather than patching local state.
		return m, fetchTasksCmd(m.client)

	case taskDeletedMsg:
		m.status = "Task deleted"
		return m, fetchTasksCmd(m.client)

	case errMsg:
		m.inFlight = false
		m.err = msg.err
		if m.state == viewLoading {
			m.state = viewList
		}
		return m, nil

	case tea.KeyMsg:
		if m.state == viewForm {
			return m.updateForm(msg)
		}
		return m.updateList(msg)
	}

	return m, nil
}

// updateList handles keys on the list screen.
func (m *Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "j":
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
		return m, nil

	case "r":
		if m.inFlight {
			return m, nil
		}
		m.inFlight = true
		m.status = ""
		return m, fetchTasksCmd(m.client)

	case "n":
		m.state = viewForm
		m.resetForm()
		m.err = nil
		return m, nil

	case "e", "enter":
		task, ok := m.selectedTask()
		if !ok {
			return m, nil
		}
		m.state = viewForm
		m.editID = task.ID
		m.titleInput = task.Title
		if task.Description != nil {
			m.descInput = *task.Description
		} else {
			m.descInput = ""
		}
		m.descFocus = false
		m.err = nil
		return m, nil

	case " ", "x":
		task, ok := m.selectedTask()
		if !ok || m.inFlight {
			return m, nil
		}
		m.inFlight = true
		m.status = ""
		return m, toggleTaskCmd(m.client, task)

	case "d":
		task, ok := m.selectedTask()
		if !ok || m.inFlight {
			return m, nil
		}
		m.inFlight = true
		m.status = ""
		return m, deleteTaskCmd(m.client, task.ID)
	}

	return m, nil
}

// updateForm handles keys on the create/edit form.
func (m *Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.state = viewList
		m.resetForm()
		return m, nil

	case "tab", "shift+tab":
		m.descFocus = !m.descFocus
		return m, nil

	case "enter":
		if m.inFlight {
			return m, nil
		}
		if strings.TrimSpace(m.titleInput) == "" {
			m.status = "Title is required"
			return m, nil
		}
		m.inFlight = true
		m.status = ""

		description := m.formDescription()
		if m.editID == "" {
			return m, createTaskCmd(m.client, m.titleInput, description)
		}
		return m, updateTaskCmd(m.client, m.editID, m.titleInput, description)

	case "backspace":
		if m.descFocus {
			m.descInput = trimLastRune(m.descInput)
		} else {
			m.titleInput = trimLastRune(m.titleInput)
		}
		return m, nil
	}

	// Printable characters extend the focused field.
	if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
		text := string(msg.Runes)
		if msg.Type == tea.KeySpace {
			text = " "
		}
		if m.descFocus {
			m.descInput += text
		} else {
			m.titleInput += text
		}
	}

	return m, nil
}

// formDescription returns the description to submit from the form. New
// tasks omit an empty description, but edits always send it: the server
// treats an omitted field as "leave unchanged", so clearing a description
// must be explicit.
func (m *Model) formDescription() *string {
	desc := strings.TrimSpace(m.descInput)
	if m.editID == "" && desc == "" {
		return nil
	}
	return &desc
}

// selectedTask returns the task under the cursor.
func (m *Model) selectedTask() (api.TaskResponse, bool) {
	if len(m.tasks) == 0 || m.cursor < 0 || m.cursor >= len(m.tasks) {
		return api.TaskResponse{}, false
	}
	return m.tasks[m.cursor], true
}

func (m *Model) resetForm() {
	m.editID = ""
	m.titleInput = ""
	m.descInput = ""
	m.descFocus = false
}

func trimLastRune(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	return string(runes[:len(runes)-1])
}
