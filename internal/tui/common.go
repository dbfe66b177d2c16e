package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/RSABuilds/Salary-OT-Calculator/internal/payroll"
)

// viewState represents the currently active view.
type viewState int

const (
	viewCalendar viewState = iota
	viewDashboard
	viewReports
	viewSettings
)

var viewNames = []string{"Calendar", "Dashboard", "Reports", "Settings"}

// --- Messages ---

type statusMsg struct {
	text    string
	isError bool
}

// savedMsg reports an edit that went through the session and was persisted.
type savedMsg struct {
	text string
}

type syncDoneMsg struct{}

type themeMsg struct {
	theme payroll.Theme
}

type loggedInMsg struct {
	identity string
}

type loggedOutMsg struct {
	text string
}

type consentMsg struct {
	granted bool
}

type exportDoneMsg struct {
	path string
}

// --- Helpers ---

// persistCmd runs fn against the session off the update loop and reports
// the outcome.
func persistCmd(text string, fn func(ctx context.Context) error) tea.Cmd {
	return func() tea.Msg {
		if err := fn(context.Background()); err != nil {
			return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
		}
		return savedMsg{text: text}
	}
}

func syncCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return syncDoneMsg{}
	})
}

func monthLabel(month time.Time) string {
	return month.Format("January 2006")
}

// shiftMonth moves the first-of-month date month by n months.
func shiftMonth(month time.Time, n int) time.Time {
	t := month.AddDate(0, n, 0)
	return payroll.FirstOfMonth(t.Year(), t.Month())
}

func formatSyncTime(t *time.Time) string {
	if t == nil {
		return "never"
	}
	return t.Local().Format("Jan 02 15:04")
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
