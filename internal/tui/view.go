package tui

import (
	"fmt"
	"strings"
)

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString("\x1b[1m Tasks \x1b[0m\n\n")

	switch m.state {
	case viewLoading:
		b.WriteString("  Loading tasks...\n")

	case viewList:
		m.renderList(&b)

	case viewForm:
		m.renderForm(&b)
	}

	if m.err != nil {
		b.WriteString(fmt.Sprintf("\n  \x1b[31mError: %v\x1b[0m\n", m.err))
	}
	if m.status != "" {
		b.WriteString(fmt.Sprintf("\n  \x1b[32m%s\x1b[0m\n", m.status))
	}

	b.WriteString("\n")
	b.WriteString(m.helpLine())
	return b.String()
}

func (m *Model) renderList(b *strings.Builder) {
	if len(m.tasks) == 0 {
		b.WriteString("  No tasks yet. Press n to create one.\n")
		return
	}

	for i, task := range m.tasks {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		check := "[ ]"
		if task.Completed {
			check = "[x]"
		}

		line := fmt.Sprintf("%s%s %s", cursor, check, task.Title)
		if task.Completed {
			line = fmt.Sprintf("\x1b[2m%s\x1b[0m", line)
		} else if i == m.cursor {
			line = fmt.Sprintf("\x1b[1m%s\x1b[0m", line)
		}
		b.WriteString(line + "\n")

		if i == m.cursor && task.Description != nil {
			b.WriteString(fmt.Sprintf("      \x1b[2m%s\x1b[0m\n", *task.Description))
		}
	}

	if m.inFlight {
		b.WriteString("\n  \x1b[2mworking...\x1b[0m\n")
	}
}

func (m *Model) renderForm(b *strings.Builder) {
	if m.editID == "" {
		b.WriteString("  New task\n\n")
	} else {
		b.WriteString("  Edit task\n\n")
	}

	b.WriteString(renderField("Title", m.titleInput, !m.descFocus))
	b.WriteString(renderField("Description", m.descInput, m.descFocus))
}

func renderField(label, value string, focused bool) string {
	marker := " "
	if focused {
		marker = ">"
	}
	display := value
	if focused {
		display += "_"
	}
	return fmt.Sprintf("  %s %s: %s\n", marker, label, display)
}

func (m *Model) helpLine() string {
	if m.state == viewForm {
		return "  \x1b[2menter save | tab switch field | esc cancel\x1b[0m\n"
	}
	return "  \x1b[2mn new | e edit | space toggle | d delete | r refresh | q quit\x1b[0m\n"
}
