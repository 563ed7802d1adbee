// Package main implements the terminal client for the task API.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tasktrackhq/tasktrack/internal/client"
	"github.com/tasktrackhq/tasktrack/internal/tui"
)

func main() {
	addr := flag.String("addr", "http://localhost:8080", "base URL of the task API server")
	flag.Parse()

	c, err := client.New(*addr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid server address: %v\n", err)
		os.Exit(1)
	}

	program := tea.NewProgram(tui.New(c), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
