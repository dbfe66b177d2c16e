package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/RSABuilds/Salary-OT-Calculator/internal/payroll"
	"github.com/RSABuilds/Salary-OT-Calculator/internal/records"
	"github.com/RSABuilds/Salary-OT-Calculator/internal/session"
)

const maxOTHours = 24

type calendarModel struct {
	session *session.Session
	width   int
	height  int

	month    time.Time
	day      int
	records  payroll.Records
	settings payroll.Settings

	formActive bool
	form       *huh.Form
	otHours    *string
}

func newCalendarModel(s *session.Session, today time.Time) calendarModel {
	ot := ""
	return calendarModel{
		session:  s,
		month:    payroll.FirstOfMonth(today.Year(), today.Month()),
		day:      today.Day(),
		records:  make(payroll.Records),
		settings: s.Settings(),
		otHours:  &ot,
	}
}

func (c *calendarModel) setSize(w, h int) {
	c.width = w
	c.height = h
}

// setMonth moves the calendar to month, keeping the cursor on the same day
// number where possible.
func (c *calendarModel) setMonth(month time.Time) {
	c.month = month
	c.day = clamp(c.day, 1, payroll.DaysInMonth(month.Year(), month.Month()))
}

type calendarDataMsg struct {
	records  payroll.Records
	settings payroll.Settings
}

func (c calendarModel) refresh() tea.Cmd {
	return func() tea.Msg {
		return calendarDataMsg{
			records:  c.session.MonthRecords(c.month.Year(), c.month.Month()),
			settings: c.session.Settings(),
		}
	}
}

func (c calendarModel) selectedDate() string {
	return payroll.DateKey(time.Date(c.month.Year(), c.month.Month(), c.day, 0, 0, 0, 0, time.UTC))
}

func (c calendarModel) record(date string) payroll.DayRecord {
	if r, ok := c.records[date]; ok {
		return r
	}
	return payroll.DefaultRecord(date)
}

func (c calendarModel) update(msg tea.Msg) (calendarModel, tea.Cmd) {
	if c.formActive && c.form != nil {
		return c.updateForm(msg)
	}

	switch msg := msg.(type) {
	case calendarDataMsg:
		c.records = msg.records
		c.settings = msg.settings
		return c, nil

	case tea.KeyMsg:
		days := payroll.DaysInMonth(c.month.Year(), c.month.Month())
		switch {
		case key.Matches(msg, keys.Left):
			c.day = clamp(c.day-1, 1, days)
		case key.Matches(msg, keys.Right):
			c.day = clamp(c.day+1, 1, days)
		case key.Matches(msg, keys.Up):
			c.day = clamp(c.day-7, 1, days)
		case key.Matches(msg, keys.Down):
			c.day = clamp(c.day+7, 1, days)
		case key.Matches(msg, keys.Present):
			return c, c.setStatus(payroll.StatusPresent)
		case key.Matches(msg, keys.Absent):
			return c, c.setStatus(payroll.StatusAbsent)
		case key.Matches(msg, keys.Reset):
			date := c.selectedDate()
			return c, persistCmd(date+" cleared", func(ctx context.Context) error {
				_, err := c.session.ResetRecord(ctx, date)
				return err
			})
		case key.Matches(msg, keys.Overtime), key.Matches(msg, keys.Enter):
			return c.showForm()
		}
	}
	return c, nil
}

func (c calendarModel) setStatus(status payroll.AttendanceStatus) tea.Cmd {
	date := c.selectedDate()
	if c.settings.IsOffDate(date) {
		return func() tea.Msg {
			return statusMsg{text: date + " is an off-day, only overtime can be logged", isError: true}
		}
	}
	text := fmt.Sprintf("%s marked %s", date, strings.ToLower(string(status)))
	return persistCmd(text, func(ctx context.Context) error {
		_, err := c.session.UpdateRecord(ctx, date, records.SetStatus(status))
		return err
	})
}

func (c calendarModel) showForm() (calendarModel, tea.Cmd) {
	date := c.selectedDate()
	*c.otHours = ""
	if r := c.record(date); r.OTHours > 0 {
		*c.otHours = payroll.FormatAmount(r.OTHours)
	}

	c.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Overtime hours").
				Description(date).
				Placeholder("0").
				Value(c.otHours).
				Validate(validateOTHours),
		),
	).WithShowHelp(true).WithShowErrors(true)

	c.formActive = true
	return c, c.form.Init()
}

func validateOTHours(s string) error {
	if payroll.SanitizeNumeric(s) != strings.TrimSpace(s) {
		return errors.New("enter a number of hours")
	}
	if payroll.ParseAmount(s) > maxOTHours {
		return fmt.Errorf("at most %d hours", maxOTHours)
	}
	return nil
}

func (c calendarModel) updateForm(msg tea.Msg) (calendarModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			c.formActive = false
			c.form = nil
			return c, nil
		}
	}

	form, cmd := c.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		c.form = f
	}

	if c.form.State == huh.StateCompleted {
		c.formActive = false
		date := c.selectedDate()
		hours := payroll.ParseAmount(*c.otHours)
		text := fmt.Sprintf("%s overtime set to %s", date, payroll.FormatHours(hours))
		return c, persistCmd(text, func(ctx context.Context) error {
			_, err := c.session.UpdateRecord(ctx, date, records.SetOTHours(hours))
			return err
		})
	}

	return c, cmd
}

func (c calendarModel) view() string {
	w := c.width - 4

	if c.formActive && c.form != nil {
		title := titleStyle.Render("Log Overtime")
		return activePanelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", c.form.View()),
		)
	}

	title := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render(monthLabel(c.month)),
		"  ",
		mutedStyle.Render("[/]: month  p/a/u: status  o: overtime"),
	)

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title, "", c.renderGrid(w-6), "", c.renderDetail(),
		),
	)
}

// cellWidth is the outer width of one day cell, borders included.
func (c calendarModel) cellWidth(w int) int {
	return clamp(w/7, 9, 18)
}

func (c calendarModel) renderGrid(w int) string {
	cw := c.cellWidth(w)

	var header []string
	for d := 0; d < 7; d++ {
		label := payroll.WeekdayShort(d)
		style := subtitleStyle
		if c.settings.IsOffDay(time.Weekday(d)) {
			style = mutedStyle
		}
		header = append(header, style.Width(cw).Align(lipgloss.Center).Render(label))
	}

	rows := []string{lipgloss.JoinHorizontal(lipgloss.Top, header...)}

	lead := int(c.month.Weekday())
	days := payroll.DaysInMonth(c.month.Year(), c.month.Month())
	var week []string
	for i := 0; i < lead; i++ {
		week = append(week, lipgloss.NewStyle().Width(cw).Render(""))
	}
	for d := 1; d <= days; d++ {
		week = append(week, c.renderCell(d, cw))
		if len(week) == 7 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, week...))
			week = nil
		}
	}
	if len(week) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, week...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (c calendarModel) renderCell(day, cw int) string {
	date := payroll.DateKey(time.Date(c.month.Year(), c.month.Month(), day, 0, 0, 0, 0, time.UTC))
	r := c.record(date)
	off := c.settings.IsOffDate(date)

	mark := mutedStyle.Render("·")
	switch {
	case r.Status == payroll.StatusPresent:
		mark = presentStyle.Render("P")
	case r.Status == payroll.StatusAbsent:
		mark = absentStyle.Render("A")
	case off:
		mark = mutedStyle.Render("off")
	}
	if r.OTHours > 0 {
		mark += " " + overtimeStyle.Render("+"+payroll.FormatHours(r.OTHours))
	}

	style := cellStyle
	switch {
	case day == c.day:
		style = cellCursorStyle
	case off:
		style = cellOffStyle
	}
	return style.Width(cw - 2).Render(fmt.Sprintf("%2d\n%s", day, mark))
}

func (c calendarModel) renderDetail() string {
	date := c.selectedDate()
	r := c.record(date)
	t, _ := payroll.ParseDateKey(date)

	status := "Not set"
	switch r.Status {
	case payroll.StatusPresent:
		status = presentStyle.Render("Present")
	case payroll.StatusAbsent:
		status = absentStyle.Render("Absent")
	}
	if c.settings.IsOffDate(date) {
		status = mutedStyle.Render("Off-day")
	}

	return fmt.Sprintf("  %s %s  %s  OT %s",
		highlightStyle.Render(date),
		mutedStyle.Render(t.Weekday().String()),
		status,
		overtimeStyle.Render(payroll.FormatHours(r.OTHours)),
	)
}
