package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/RSABuilds/Salary-OT-Calculator/internal/export"
	"github.com/RSABuilds/Salary-OT-Calculator/internal/payroll"
	"github.com/RSABuilds/Salary-OT-Calculator/internal/session"
)

type reportsModel struct {
	session *session.Session
	width   int
	height  int

	month  time.Time
	report export.Report
	offset int // first table row shown

	chart barchart.Model
}

func newReportsModel(s *session.Session, month time.Time) reportsModel {
	return reportsModel{
		session: s,
		month:   month,
		report:  export.NewReport(s.Settings(), nil, month.Year(), month.Month()),
		chart:   barchart.New(60, 12),
	}
}

func (r *reportsModel) setSize(w, h int) {
	r.width = w
	r.height = h
	r.buildChart()
}

type reportsDataMsg struct {
	report export.Report
}

func (r reportsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		y, m := r.month.Year(), r.month.Month()
		return reportsDataMsg{
			report: export.NewReport(r.session.Settings(), r.session.MonthRecords(y, m), y, m),
		}
	}
}

func (r reportsModel) update(msg tea.Msg) (reportsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case reportsDataMsg:
		r.report = msg.report
		r.offset = 0
		r.buildChart()
		return r, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			if r.offset > 0 {
				r.offset--
			}
		case key.Matches(msg, keys.Down):
			if r.offset < len(r.loggedDays())-1 {
				r.offset++
			}
		}
	}
	return r, nil
}

// loggedDays are the days of the report that carry a status or overtime.
func (r reportsModel) loggedDays() []export.Day {
	var out []export.Day
	for _, d := range r.report.Days {
		if d.Status != payroll.StatusUnset || d.OTHours != 0 {
			out = append(out, d)
		}
	}
	return out
}

func (r *reportsModel) buildChart() {
	chartWidth := max(r.width-8, 20)
	chartHeight := 10
	if r.height > 30 {
		chartHeight = 14
	}

	r.chart = barchart.New(chartWidth, chartHeight)

	var bars []barchart.BarData
	for _, d := range r.report.Days {
		style := lipgloss.NewStyle().Foreground(colorWarning)
		if d.OffDay {
			style = lipgloss.NewStyle().Foreground(colorSecondary)
		}
		bars = append(bars, barchart.BarData{
			Label: strings.TrimLeft(d.Date[8:], "0"),
			Values: []barchart.BarValue{{
				Name:  d.Date,
				Value: max(d.OTHours, 0),
				Style: style,
			}},
		})
	}

	r.chart.PushAll(bars)
	r.chart.Draw()
}

func (r reportsModel) view() string {
	w := r.width - 4
	s := r.report.Summary

	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render("Overtime"), "  ",
		highlightStyle.Render(r.report.Label()), "  ",
		mutedStyle.Render(fmt.Sprintf("%s total  ·  %s at %s/h",
			payroll.FormatHours(s.TotalOTHours),
			r.report.Money(s.OTEarnings),
			r.report.Money(r.report.Rates.Overtime),
		)),
	)

	legend := fmt.Sprintf("  %s working day  %s off-day",
		lipgloss.NewStyle().Foreground(colorWarning).Render("●"),
		lipgloss.NewStyle().Foreground(colorSecondary).Render("●"),
	)

	nav := mutedStyle.Render("  [/]: month  ↑/↓: scroll  e: export")

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header, "", r.chart.View(), legend, "", r.renderTable(w), "", nav,
		),
	)
}

func (r reportsModel) renderTable(w int) string {
	days := r.loggedDays()
	if len(days) == 0 {
		return mutedStyle.Render("  Nothing logged this month")
	}

	var rows []string
	rows = append(rows, mutedStyle.Render(fmt.Sprintf("  %-12s %-10s %-9s %8s", "Date", "Weekday", "Status", "OT")))
	rows = append(rows, mutedStyle.Render("  "+strings.Repeat("─", min(w-6, 42))))

	visible := max(r.height-28, 3)
	start := clamp(r.offset, 0, len(days)-1)
	end := min(start+visible, len(days))
	for _, d := range days[start:end] {
		status := mutedStyle.Render(fmt.Sprintf("%-9s", "-"))
		switch d.Status {
		case payroll.StatusPresent:
			status = presentStyle.Render(fmt.Sprintf("%-9s", "Present"))
		case payroll.StatusAbsent:
			status = absentStyle.Render(fmt.Sprintf("%-9s", "Absent"))
		}
		ot := strconv.FormatFloat(d.OTHours, 'f', -1, 64)
		rows = append(rows, fmt.Sprintf("  %-12s %-10s %s %8s", d.Date, d.Weekday, status, ot))
	}
	if end < len(days) {
		rows = append(rows, mutedStyle.Render(fmt.Sprintf("  … %d more", len(days)-end)))
	}

	return strings.Join(rows, "\n")
}
