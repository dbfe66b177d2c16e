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
	"github.com/RSABuilds/Salary-OT-Calculator/internal/session"
	"github.com/RSABuilds/Salary-OT-Calculator/internal/store"
)

type settingsModel struct {
	session *session.Session
	width   int
	height  int

	settings   payroll.Settings
	stored     []store.Document
	dayCursor  int // weekday under the off-day cursor
	formActive bool
	form       *huh.Form

	// Form values as pointers (survive value copies)
	salary      *string
	workingDays *string
	hoursPerDay *string
	rateMode    *string
	manualRate  *string
	country     *string
	syncEnabled *bool
}

func newSettingsModel(s *session.Session) settingsModel {
	salary, days, hours, mode, rate, country := "", "", "", "", "", ""
	sync := false
	return settingsModel{
		session:     s,
		settings:    s.Settings(),
		salary:      &salary,
		workingDays: &days,
		hoursPerDay: &hours,
		rateMode:    &mode,
		manualRate:  &rate,
		country:     &country,
		syncEnabled: &sync,
	}
}

func (s *settingsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

type settingsDataMsg struct {
	settings payroll.Settings
	stored   []store.Document
}

func (s settingsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		docs, _ := s.session.StoredDocuments(context.Background())
		return settingsDataMsg{settings: s.session.Settings(), stored: docs}
	}
}

func (s settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd) {
	if s.formActive && s.form != nil {
		return s.updateForm(msg)
	}

	switch msg := msg.(type) {
	case settingsDataMsg:
		s.settings = msg.settings
		s.stored = msg.stored
		return s, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Left):
			s.dayCursor = (s.dayCursor + 6) % 7
		case key.Matches(msg, keys.Right):
			s.dayCursor = (s.dayCursor + 1) % 7
		case key.Matches(msg, keys.Toggle):
			day := s.dayCursor
			text := fmt.Sprintf("%s off-day toggled", time.Weekday(day))
			return s, persistCmd(text, func(ctx context.Context) error {
				return s.session.ToggleOffDay(ctx, day)
			})
		case key.Matches(msg, keys.Enter):
			return s.showForm()
		}
	}
	return s, nil
}

func (s settingsModel) showForm() (settingsModel, tea.Cmd) {
	cur := s.settings
	*s.salary = payroll.FormatAmount(cur.MonthlySalary)
	*s.workingDays = payroll.FormatAmount(cur.WorkingDaysPerMonth)
	*s.hoursPerDay = payroll.FormatAmount(cur.WorkingHoursPerDay)
	*s.rateMode = string(cur.OTRateMode)
	*s.manualRate = payroll.FormatAmount(cur.ManualOTRate)
	*s.country = cur.CountryName
	*s.syncEnabled = cur.SyncEnabled

	countries := make([]huh.Option[string], 0, len(payroll.Countries))
	for _, c := range payroll.Countries {
		countries = append(countries, huh.NewOption(fmt.Sprintf("%s (%s)", c.Name, c.Code), c.Name))
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Monthly salary").Value(s.salary).Validate(validateAmount),
			huh.NewInput().Title("Working days per month").Value(s.workingDays).Validate(validateDivisor),
			huh.NewInput().Title("Working hours per day").Value(s.hoursPerDay).Validate(validateDivisor),
		).Title("Salary"),
		huh.NewGroup(
			huh.NewSelect[string]().Title("Overtime rate").
				Options(
					huh.NewOption("Auto (hourly rate)", string(payroll.OTRateAuto)),
					huh.NewOption("Manual", string(payroll.OTRateManual)),
				).Value(s.rateMode),
			huh.NewInput().Title("Manual overtime rate (per hour)").Value(s.manualRate).Validate(validateAmount),
		).Title("Overtime"),
		huh.NewGroup(
			huh.NewSelect[string]().Title("Country / currency").
				Options(countries...).
				Height(8).
				Value(s.country),
			huh.NewConfirm().Title("Show sync status").Value(s.syncEnabled),
		).Title("General"),
	).WithShowHelp(true).WithShowErrors(true)

	s.formActive = true
	return s, s.form.Init()
}

func validateAmount(v string) error {
	if payroll.SanitizeNumeric(v) != strings.TrimSpace(v) {
		return errors.New("enter a number")
	}
	return nil
}

func validateDivisor(v string) error {
	if err := validateAmount(v); err != nil {
		return err
	}
	if payroll.ParseAmount(v) <= 0 {
		return errors.New("must be greater than 0")
	}
	return nil
}

func (s settingsModel) updateForm(msg tea.Msg) (settingsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			s.formActive = false
			s.form = nil
			return s, nil
		}
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.formActive = false
		return s, s.saveSettings()
	}

	return s, cmd
}

// saveSettings applies the form values. They are read here, before the
// command runs, so later form edits cannot race with the save.
func (s settingsModel) saveSettings() tea.Cmd {
	salary := payroll.ParseAmount(*s.salary)
	days := payroll.ParseAmount(*s.workingDays)
	hours := payroll.ParseAmount(*s.hoursPerDay)
	mode := payroll.OTRateMode(*s.rateMode)
	rate := payroll.ParseAmount(*s.manualRate)
	country, hasCountry := payroll.CountryByName(*s.country)
	sync := *s.syncEnabled

	return persistCmd("Settings saved", func(ctx context.Context) error {
		return s.session.UpdateSettings(ctx, func(st *payroll.Settings) {
			st.MonthlySalary = salary
			st.WorkingDaysPerMonth = days
			st.WorkingHoursPerDay = hours
			st.OTRateMode = mode
			st.ManualOTRate = rate
			if hasCountry {
				st.CountryName = country.Name
				st.Currency = country.Code
				st.CurrencySymbol = country.Symbol
			}
			st.SyncEnabled = sync
		})
	})
}

func (s settingsModel) view() string {
	w := s.width - 4

	if s.formActive && s.form != nil {
		title := titleStyle.Render("Settings")
		formView := s.form.View()
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", formView),
		)
	}

	cur := s.settings
	money := func(v float64) string { return payroll.FormatCurrency(v, cur.Currency) }

	otRate := "auto, " + money(payroll.AutoOTRateDisplay(cur)) + "/h"
	if cur.OTRateMode == payroll.OTRateManual {
		otRate = "manual, " + money(cur.ManualOTRate) + "/h"
	}

	items := []struct{ label, value string }{
		{"Mobile", cur.MobileNumber},
		{"Country", cur.CountryName},
		{"Currency", fmt.Sprintf("%s (%s)", cur.Currency, cur.CurrencySymbol)},
		{"Monthly salary", money(cur.MonthlySalary)},
		{"Working days/month", payroll.FormatAmount(cur.WorkingDaysPerMonth)},
		{"Working hours/day", payroll.FormatAmount(cur.WorkingHoursPerDay)},
		{"Overtime rate", otRate},
		{"Sync status", onOff(cur.SyncEnabled)},
		{"Last synced", formatSyncTime(cur.LastSyncedAt)},
		{"Theme", string(cur.Theme)},
	}

	var rows []string
	rows = append(rows, titleStyle.Render("Settings"))
	rows = append(rows, "")
	for _, it := range items {
		label := lipgloss.NewStyle().Width(24).Render(it.label)
		rows = append(rows, fmt.Sprintf("  %s %s", label, highlightStyle.Render(it.value)))
	}

	rows = append(rows, "")
	rows = append(rows, titleStyle.Render("Off-days"))
	rows = append(rows, "  "+s.renderOffDays())
	rows = append(rows, "")
	rows = append(rows, titleStyle.Render("Stored on this device"))
	rows = append(rows, s.renderStored()...)
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("enter: edit settings  ←/→ + space: toggle off-day  t: theme"))

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (s settingsModel) renderOffDays() string {
	var chips []string
	for d := 0; d < 7; d++ {
		label := payroll.WeekdayShort(d)
		style := normalItemStyle
		if s.settings.IsOffDay(time.Weekday(d)) {
			style = accentStyle
			label = "[" + label + "]"
		} else {
			label = " " + label + " "
		}
		if d == s.dayCursor {
			style = style.Underline(true).Bold(true)
		}
		chips = append(chips, style.Render(label))
	}
	return strings.Join(chips, " ")
}

func (s settingsModel) renderStored() []string {
	if len(s.stored) == 0 {
		return []string{mutedStyle.Render("  nothing saved yet")}
	}
	var rows []string
	for _, d := range s.stored {
		rows = append(rows, fmt.Sprintf("  %-10s %s  %s",
			d.Kind,
			mutedStyle.Render("updated "+formatSyncTime(&d.UpdatedAt)),
			mutedStyle.Render(fmt.Sprintf("%d bytes", len(d.Payload))),
		))
	}
	return rows
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
