package tui

import (
	"fmt"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/RSABuilds/Salary-OT-Calculator/internal/payroll"
	"github.com/RSABuilds/Salary-OT-Calculator/internal/session"
)

type dashboardModel struct {
	session *session.Session
	width   int
	height  int

	month    time.Time
	summary  payroll.MonthSummary
	settings payroll.Settings
	rates    payroll.Rates

	chart barchart.Model
}

func newDashboardModel(s *session.Session, month time.Time) dashboardModel {
	return dashboardModel{
		session:  s,
		month:    month,
		settings: s.Settings(),
		chart:    barchart.New(60, 8),
	}
}

func (d *dashboardModel) setSize(w, h int) {
	d.width = w
	d.height = h
	d.buildChart()
}

type dashboardDataMsg struct {
	summary  payroll.MonthSummary
	settings payroll.Settings
}

func (d dashboardModel) loadData() tea.Cmd {
	return func() tea.Msg {
		return dashboardDataMsg{
			summary:  d.session.Summary(d.month.Year(), d.month.Month()),
			settings: d.session.Settings(),
		}
	}
}

func (d dashboardModel) update(msg tea.Msg) (dashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardDataMsg:
		d.summary = msg.summary
		d.settings = msg.settings
		d.rates = payroll.RatesFor(msg.settings)
		d.buildChart()
		return d, nil
	}
	return d, nil
}

func (d dashboardModel) money(v float64) string {
	return payroll.FormatCurrency(v, d.settings.Currency)
}

func (d *dashboardModel) buildChart() {
	chartWidth := max(d.width-12, 20)
	chartHeight := 8
	if d.height > 36 {
		chartHeight = 12
	}

	d.chart = barchart.New(chartWidth, chartHeight)

	bar := func(label string, v float64, c lipgloss.Color) barchart.BarData {
		return barchart.BarData{
			Label: label,
			Values: []barchart.BarValue{{
				Name:  label,
				Value: max(v, 0),
				Style: lipgloss.NewStyle().Foreground(c),
			}},
		}
	}

	d.chart.PushAll([]barchart.BarData{
		bar("Base", d.summary.BaseEarnings, colorPrimary),
		bar("Overtime", d.summary.OTEarnings, colorWarning),
		bar("Deduction", d.summary.AbsentDeduction, colorError),
		bar("Net", d.summary.TotalEarnings, colorSuccess),
	})
	d.chart.Draw()
}

func (d dashboardModel) view() string {
	if d.width < 20 {
		return "Terminal too small"
	}

	contentWidth := d.width - 4

	s := d.summary
	cards := []struct {
		title string
		value string
		style lipgloss.Style
	}{
		{"Present", fmt.Sprintf("%d days", s.PresentDays), successStyle},
		{"Absent", fmt.Sprintf("%d days", s.AbsentDays), errorStyle},
		{"Total OT", payroll.FormatHours(s.TotalOTHours), warningStyle},
		{"OT Bonus", d.money(s.OTEarnings), warningStyle},
		{"Deduction", "-" + d.money(s.AbsentDeduction), errorStyle},
		{"Net Total", d.money(s.TotalEarnings), highlightStyle.Bold(true)},
	}

	perRow := 3
	if contentWidth >= 120 {
		perRow = 6
	}
	cardWidth := contentWidth/perRow - 2

	var rows, row []string
	for _, c := range cards {
		content := lipgloss.JoinVertical(lipgloss.Left,
			subtitleStyle.Render(c.title),
			c.style.Render(c.value),
		)
		row = append(row, panelStyle.Padding(0, 1).Width(cardWidth).Render(content))
		if len(row) == perRow {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render(monthLabel(d.month)),
		"  ",
		mutedStyle.Render("Base salary "+d.money(s.BaseEarnings)),
	)

	parts := []string{header}
	parts = append(parts, rows...)
	parts = append(parts,
		panelStyle.Width(contentWidth).Render(lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("Breakdown"), d.chart.View(), d.renderLegend(),
		)),
		d.renderRates(),
	)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (d dashboardModel) renderLegend() string {
	dot := func(c lipgloss.Color, name string) string {
		return lipgloss.NewStyle().Foreground(c).Render("●") + " " + name
	}
	return fmt.Sprintf("%s  %s  %s  %s",
		dot(colorPrimary, "Base"),
		dot(colorWarning, "Overtime"),
		dot(colorError, "Deduction"),
		dot(colorSuccess, "Net"),
	)
}

func (d dashboardModel) renderRates() string {
	mode := "auto"
	if d.settings.OTRateMode == payroll.OTRateManual {
		mode = "manual"
	}
	return mutedStyle.Render(fmt.Sprintf("  Daily %s  ·  Hourly %s  ·  OT %s/h (%s)",
		d.money(d.rates.Daily),
		d.money(d.rates.Hourly),
		d.money(d.rates.Overtime),
		mode,
	))
}
