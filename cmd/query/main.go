// Command query is a read-only operator tool over the tracker database.
// It talks to the sqlite file directly and bypasses the HTTP API and its
// auth gate entirely.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"treadmill/database"
	"treadmill/store"
)

func main() {
	path := os.Getenv("DB_PATH")
	if path == "" {
		path = "./data/treadmill.db"
	}

	db, err := database.OpenExisting(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	s := store.New(db, zap.NewNop())

	p := tea.NewProgram(newMenuModel(s))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
