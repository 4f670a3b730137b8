package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"treadmill/models"
	"treadmill/stats"
	"treadmill/store"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

type mode int

const (
	modeMenu mode = iota
	modeDateInput
	modeResult
)

var menuEntries = []string{
	"1. View all sessions",
	"2. View sessions from a specific date",
	"3. Get total distance",
	"4. Get average distance per session",
	"5. Get sessions from the last 7 days",
	"6. Get sessions from this month",
	"7. Exit",
}

type queryDoneMsg struct {
	result string
	err    error
}

type menuModel struct {
	store  *store.Store
	mode   mode
	input  string // date being typed in modeDateInput
	result string
	err    string
}

func newMenuModel(s *store.Store) menuModel {
	return menuModel{store: s}
}

func (m menuModel) Init() tea.Cmd {
	return nil
}

func (m menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case queryDoneMsg:
		m.mode = modeResult
		if msg.err != nil {
			m.err = msg.err.Error()
			m.result = ""
		} else {
			m.result = msg.result
			m.err = ""
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.mode {
		case modeMenu:
			return m.updateMenu(msg)
		case modeDateInput:
			return m.updateDateInput(msg)
		case modeResult:
			// Any key returns to the menu.
			m.mode = modeMenu
			m.result = ""
			m.err = ""
			return m, nil
		}
	}
	return m, nil
}

func (m menuModel) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "1":
		return m, m.runQuery(allSessions)
	case "2":
		m.mode = modeDateInput
		m.input = ""
		return m, nil
	case "3":
		return m, m.runQuery(totalDistance)
	case "4":
		return m, m.runQuery(averageDistance)
	case "5":
		return m, m.runQuery(lastWeekSessions)
	case "6":
		return m, m.runQuery(monthSessions)
	case "7", "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m menuModel) updateDateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		date := m.input
		m.input = ""
		if _, err := stats.ParseDate(date); err != nil {
			m.mode = modeResult
			m.err = err.Error()
			return m, nil
		}
		return m, m.runQuery(func(s *store.Store) (string, error) {
			return sessionsByDate(s, date)
		})
	case tea.KeyEsc:
		m.mode = modeMenu
		m.input = ""
		return m, nil
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
		return m, nil
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if (r >= '0' && r <= '9') || r == '-' {
				m.input += string(r)
			}
		}
		return m, nil
	}
	return m, nil
}

// runQuery executes a store query off the update loop, grimora-style.
func (m menuModel) runQuery(q func(*store.Store) (string, error)) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		result, err := q(s)
		return queryDoneMsg{result: result, err: err}
	}
}

func (m menuModel) View() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("TREADMILL DATABASE QUERY") + "\n\n")

	switch m.mode {
	case modeMenu:
		for _, entry := range menuEntries {
			sb.WriteString(entry + "\n")
		}
		sb.WriteString("\n" + dimStyle.Render("Select an option (1-7)") + "\n")
	case modeDateInput:
		sb.WriteString("Enter date (YYYY-MM-DD): " + m.input + "█\n")
		sb.WriteString("\n" + dimStyle.Render("enter to search, esc to cancel") + "\n")
	case modeResult:
		if m.err != "" {
			sb.WriteString(errorStyle.Render("Error: "+m.err) + "\n")
		} else {
			sb.WriteString(m.result)
		}
		sb.WriteString("\n" + dimStyle.Render("press any key for the menu") + "\n")
	}
	return sb.String()
}

func allSessions(s *store.Store) (string, error) {
	sessions, err := s.ListAll()
	if err != nil {
		return "", err
	}
	if len(sessions) == 0 {
		return "No sessions found.\n", nil
	}
	var sb strings.Builder
	sb.WriteString(headerStyle.Render("ALL SESSIONS") + "\n")
	for _, session := range sessions {
		sb.WriteString(fmt.Sprintf("Date: %s | Distance: %.1f mi | Duration: %.0f min\n",
			session.Date, session.Distance, session.Duration))
	}
	return sb.String(), nil
}

func sessionsByDate(s *store.Store, date string) (string, error) {
	sessions, err := s.ListByDate(date)
	if err != nil {
		return "", err
	}
	if len(sessions) == 0 {
		return fmt.Sprintf("No sessions found for %s.\n", date), nil
	}
	var sb strings.Builder
	sb.WriteString(headerStyle.Render("SESSIONS FOR "+date) + "\n")
	for _, session := range sessions {
		sb.WriteString(fmt.Sprintf("Distance: %.1f mi | Duration: %.0f min\n",
			session.Distance, session.Duration))
	}
	return sb.String(), nil
}

func totalDistance(s *store.Store) (string, error) {
	sessions, err := s.ListAll()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Total Distance: %.1f miles\n", stats.TotalDistance(sessions)), nil
}

func averageDistance(s *store.Store) (string, error) {
	sessions, err := s.ListAll()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Average Distance: %.1f miles (%d sessions)\n",
		stats.AverageDistance(sessions), len(sessions)), nil
}

func lastWeekSessions(s *store.Store) (string, error) {
	start := stats.Today().AddDays(-7)
	sessions, err := s.ListSince(start.String())
	if err != nil {
		return "", err
	}
	return rangeReport("THIS WEEK", "No sessions this week.", sessions), nil
}

func monthSessions(s *store.Store) (string, error) {
	start := stats.Today().MonthStart()
	sessions, err := s.ListSince(start.String())
	if err != nil {
		return "", err
	}
	return rangeReport("THIS MONTH", "No sessions this month.", sessions), nil
}

func rangeReport(title, empty string, sessions []models.Session) string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render(title) + "\n")
	if len(sessions) == 0 {
		sb.WriteString(empty + "\n")
		return sb.String()
	}
	for _, session := range sessions {
		sb.WriteString(fmt.Sprintf("%s: %.1f mi in %.0f min\n",
			session.Date, session.Distance, session.Duration))
	}
	sb.WriteString(fmt.Sprintf("Total: %.1f miles\n", stats.TotalDistance(sessions)))
	return sb.String()
}
