package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/RSABuilds/Salary-OT-Calculator/internal/config"
	"github.com/RSABuilds/Salary-OT-Calculator/internal/export"
	applog "github.com/RSABuilds/Salary-OT-Calculator/internal/log"
	"github.com/RSABuilds/Salary-OT-Calculator/internal/payroll"
	"github.com/RSABuilds/Salary-OT-Calculator/internal/session"
)

// App is the root Bubble Tea model.
type App struct {
	session   *session.Session
	logger    *applog.Logger
	exportDir string
	syncDelay time.Duration
	width     int
	height    int

	activeView    viewState
	month         time.Time
	showHelp      bool
	exportPicking bool
	exportCursor  int
	confirmErase  bool
	consentDone   bool

	login     loginModel
	consent   consentModel
	calendar  calendarModel
	dashboard dashboardModel
	reports   reportsModel
	settings  settingsModel

	help      help.Model
	status    string
	statusErr bool
}

func NewApp(s *session.Session, cfg *config.Config, logger *applog.Logger) App {
	if logger == nil {
		logger = applog.Discard()
	}
	h := help.New()
	h.ShowAll = false

	now := time.Now()
	month := payroll.FirstOfMonth(now.Year(), now.Month())

	return App{
		session:    s,
		logger:     logger.WithComponent(applog.ComponentUI),
		exportDir:  cfg.ExportDir,
		syncDelay:  cfg.SyncDelay,
		activeView: viewCalendar,
		month:      month,
		login:      newLoginModel(s),
		consent:    newConsentModel(s),
		calendar:   newCalendarModel(s, now),
		dashboard:  newDashboardModel(s, month),
		reports:    newReportsModel(s, month),
		settings:   newSettingsModel(s),
		help:       h,
	}
}

func (a App) Init() tea.Cmd {
	applyTheme(a.session.Settings().Theme)
	if !a.session.LoggedIn() {
		return a.login.init()
	}
	if a.needsConsent() {
		return tea.Batch(a.consent.init(), a.refreshAll())
	}
	return a.refreshAll()
}

// needsConsent reports whether the storage prompt should be shown.
func (a App) needsConsent() bool {
	return a.session.LoggedIn() && !a.session.Authorized() && !a.consentDone
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		contentHeight := a.height - 4 // header + footer
		a.login.setSize(a.width, a.height)
		a.consent.width = a.width
		a.calendar.setSize(a.width, contentHeight)
		a.dashboard.setSize(a.width, contentHeight)
		a.reports.setSize(a.width, contentHeight)
		a.settings.setSize(a.width, contentHeight)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if !a.session.LoggedIn() {
			a.login, cmd = a.login.update(msg)
			return a, cmd
		}
		if a.needsConsent() {
			a.consent, cmd = a.consent.update(msg)
			return a, cmd
		}
		if a.confirmErase {
			return a.updateEraseConfirm(msg)
		}
		if a.exportPicking {
			return a.updateExportPicker(msg)
		}

		// If a child view is capturing input (e.g. form), delegate first.
		if a.isFormActive() {
			return a.updateActiveView(msg)
		}

		switch {
		case key.Matches(msg, keys.Export):
			a.exportPicking = true
			a.exportCursor = 0
			return a, nil
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		case key.Matches(msg, keys.Tab1):
			a.activeView = viewCalendar
			return a, a.calendar.refresh()
		case key.Matches(msg, keys.Tab2):
			a.activeView = viewDashboard
			return a, a.dashboard.loadData()
		case key.Matches(msg, keys.Tab3):
			a.activeView = viewReports
			return a, a.reports.refresh()
		case key.Matches(msg, keys.Tab4):
			a.activeView = viewSettings
			return a, a.settings.refresh()
		case key.Matches(msg, keys.Tab):
			a.activeView = (a.activeView + 1) % viewState(len(viewNames))
			return a, a.refreshCurrentView()
		case key.Matches(msg, keys.PrevMonth):
			cmd = a.setMonth(shiftMonth(a.month, -1))
			return a, cmd
		case key.Matches(msg, keys.NextMonth):
			cmd = a.setMonth(shiftMonth(a.month, 1))
			return a, cmd
		case key.Matches(msg, keys.Today):
			now := time.Now()
			a.calendar.day = now.Day()
			cmd = a.setMonth(payroll.FirstOfMonth(now.Year(), now.Month()))
			return a, cmd
		case key.Matches(msg, keys.Theme):
			return a, a.toggleTheme()
		case key.Matches(msg, keys.Logout):
			return a, a.logout()
		case key.Matches(msg, keys.Erase):
			a.confirmErase = true
			return a, nil
		}

	case statusMsg:
		a.status = msg.text
		a.statusErr = msg.isError
		if msg.isError {
			a.logger.Warn("ui error", applog.FieldError, msg.text)
		}
		return a, nil

	case savedMsg:
		a.status = msg.text
		a.statusErr = false
		return a, tea.Batch(a.refreshAll(), a.syncAfterSave())

	case syncDoneMsg:
		a.session.MarkSynced()
		return a, nil

	case themeMsg:
		applyTheme(msg.theme)
		a.status = "Theme: " + string(msg.theme)
		a.statusErr = false
		return a, tea.Batch(a.refreshAll(), a.syncAfterSave())

	case loggedInMsg:
		applyTheme(a.session.Settings().Theme)
		a.status = "Logged in as " + applog.MaskIdentity(msg.identity)
		a.statusErr = false
		a.activeView = viewCalendar
		cmds := []tea.Cmd{a.refreshAll(), a.syncAfterSave()}
		if a.needsConsent() {
			a.consent = newConsentModel(a.session)
			a.consent.width = a.width
			cmds = append(cmds, a.consent.init())
		}
		return a, tea.Batch(cmds...)

	case loggedOutMsg:
		a.status = msg.text
		a.statusErr = false
		a.consentDone = false
		a.exportPicking = false
		a.confirmErase = false
		a.login = newLoginModel(a.session)
		a.login.setSize(a.width, a.height)
		return a, tea.Batch(a.login.init(), a.refreshAll())

	case consentMsg:
		a.consentDone = true
		a.statusErr = false
		if msg.granted {
			a.status = "Saving to this device"
			return a, tea.Batch(a.refreshAll(), a.syncAfterSave())
		}
		a.status = "Changes are kept in memory only"
		return a, nil

	case exportDoneMsg:
		a.status = "Exported to " + msg.path
		a.statusErr = false
		a.exportPicking = false
		return a, nil

	case calendarDataMsg:
		a.calendar, cmd = a.calendar.update(msg)
		return a, cmd
	case dashboardDataMsg:
		a.dashboard, cmd = a.dashboard.update(msg)
		return a, cmd
	case reportsDataMsg:
		a.reports, cmd = a.reports.update(msg)
		return a, cmd
	case settingsDataMsg:
		a.settings, cmd = a.settings.update(msg)
		return a, cmd
	}

	if !a.session.LoggedIn() {
		a.login, cmd = a.login.update(msg)
		return a, cmd
	}
	if a.needsConsent() {
		a.consent, cmd = a.consent.update(msg)
		return a, cmd
	}
	return a.updateActiveView(msg)
}

func (a App) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.activeView {
	case viewCalendar:
		a.calendar, cmd = a.calendar.update(msg)
	case viewDashboard:
		a.dashboard, cmd = a.dashboard.update(msg)
	case viewReports:
		a.reports, cmd = a.reports.update(msg)
	case viewSettings:
		a.settings, cmd = a.settings.update(msg)
	}
	return a, cmd
}

func (a App) isFormActive() bool {
	switch a.activeView {
	case viewCalendar:
		return a.calendar.formActive
	case viewSettings:
		return a.settings.formActive
	}
	return false
}

func (a App) refreshCurrentView() tea.Cmd {
	switch a.activeView {
	case viewCalendar:
		return a.calendar.refresh()
	case viewDashboard:
		return a.dashboard.loadData()
	case viewReports:
		return a.reports.refresh()
	case viewSettings:
		return a.settings.refresh()
	}
	return nil
}

func (a App) refreshAll() tea.Cmd {
	return tea.Batch(
		a.calendar.refresh(),
		a.dashboard.loadData(),
		a.reports.refresh(),
		a.settings.refresh(),
	)
}

// setMonth points every month-based view at month.
func (a *App) setMonth(month time.Time) tea.Cmd {
	a.month = month
	a.calendar.setMonth(month)
	a.dashboard.month = month
	a.reports.month = month
	return a.refreshAll()
}

// syncAfterSave schedules the end of the sync indicator after a save.
func (a App) syncAfterSave() tea.Cmd {
	if a.session.SyncStatus() != session.SyncSyncing {
		return nil
	}
	return syncCmd(a.syncDelay)
}

func (a App) toggleTheme() tea.Cmd {
	return func() tea.Msg {
		theme, err := a.session.ToggleTheme(context.Background())
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
		}
		return themeMsg{theme: theme}
	}
}

func (a App) logout() tea.Cmd {
	return func() tea.Msg {
		if err := a.session.Logout(context.Background()); err != nil {
			return statusMsg{text: fmt.Sprintf("Logout error: %v", err), isError: true}
		}
		return loggedOutMsg{text: "Logged out"}
	}
}

func (a App) updateEraseConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a.confirmErase = false
	if !key.Matches(msg, keys.Confirm) {
		a.status = "Erase cancelled"
		a.statusErr = false
		return a, nil
	}
	return a, func() tea.Msg {
		if err := a.session.EraseAll(context.Background()); err != nil {
			return statusMsg{text: fmt.Sprintf("Erase error: %v", err), isError: true}
		}
		return loggedOutMsg{text: "All data erased"}
	}
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	if !a.session.LoggedIn() {
		return lipgloss.JoinVertical(lipgloss.Left, a.login.view(), a.renderStatus())
	}

	header := a.renderHeader()
	footer := a.renderFooter()

	var content string
	switch a.activeView {
	case viewCalendar:
		content = a.calendar.view()
	case viewDashboard:
		content = a.dashboard.view()
	case viewReports:
		content = a.reports.view()
	case viewSettings:
		content = a.settings.view()
	}

	// Calculate available height for content
	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := a.height - headerHeight - footerHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	// Overlays
	switch {
	case a.needsConsent():
		content = a.consent.view()
	case a.confirmErase:
		content = a.renderEraseConfirm()
	case a.exportPicking:
		content = a.renderExportPicker(contentHeight)
	}

	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (a App) renderHeader() string {
	var tabs []string
	for i, name := range viewNames {
		if viewState(i) == a.activeView {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}

	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	title := lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render("salaryot")
	who := mutedStyle.Render("  " + applog.MaskIdentity(a.session.Identity()) + "  " + monthLabel(a.month))
	gap := a.width - lipgloss.Width(title) - lipgloss.Width(who) - lipgloss.Width(tabRow) - 4
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return headerStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, who, spacer, tabRow),
	)
}

func (a App) renderStatus() string {
	if a.status == "" {
		return ""
	}
	if a.statusErr {
		return errorStyle.Render(" " + a.status)
	}
	return mutedStyle.Render(" " + a.status)
}

func (a App) renderSyncIndicator() string {
	if !a.session.Authorized() {
		return mutedStyle.Render(" ○ not saved")
	}
	st := a.session.Settings()
	if !st.SyncEnabled {
		return ""
	}
	switch a.session.SyncStatus() {
	case session.SyncSyncing:
		return warningStyle.Render(" ◌ syncing…")
	case session.SyncSynced:
		return successStyle.Render(" ● synced " + formatSyncTime(st.LastSyncedAt))
	case session.SyncError:
		return errorStyle.Render(" ✕ sync failed")
	}
	return mutedStyle.Render(" last synced " + formatSyncTime(st.LastSyncedAt))
}

func (a App) renderFooter() string {
	helpView := a.help.View(keys)

	left := footerStyle.Render(helpView)
	right := a.renderSyncIndicator() + a.renderStatus()

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, right)
}

func (a App) renderEraseConfirm() string {
	rows := []string{
		errorStyle.Bold(true).Render("Erase all data"),
		"",
		fmt.Sprintf("Delete the settings and attendance stored for %s?",
			highlightStyle.Render(applog.MaskIdentity(a.session.Identity()))),
		"This cannot be undone.",
		"",
		mutedStyle.Render("  y: erase  any other key: cancel"),
	}
	return activePanelStyle.Width(a.width - 4).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (a App) renderExportPicker(_ int) string {
	title := titleStyle.Render("Export " + monthLabel(a.month))
	formats := []string{"CSV", "JSON"}
	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")
	for i, f := range formats {
		cursor := "  "
		style := normalItemStyle
		if i == a.exportCursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(cursor+f))
	}
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  to "+a.exportDir))
	rows = append(rows, mutedStyle.Render("  enter: export  esc: cancel"))

	w := a.width - 4
	return activePanelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (a App) updateExportPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if a.exportCursor > 0 {
			a.exportCursor--
		}
	case key.Matches(msg, keys.Down):
		if a.exportCursor < 1 {
			a.exportCursor++
		}
	case key.Matches(msg, keys.Enter):
		a.exportPicking = false
		return a, a.doExport(a.exportCursor)
	case key.Matches(msg, keys.Back):
		a.exportPicking = false
	}
	return a, nil
}

func (a App) doExport(format int) tea.Cmd {
	year, month := a.month.Year(), a.month.Month()
	return func() tea.Msg {
		report := export.NewReport(a.session.Settings(), a.session.MonthRecords(year, month), year, month)

		if err := os.MkdirAll(a.exportDir, 0o755); err != nil {
			return statusMsg{text: fmt.Sprintf("Export error: %v", err), isError: true}
		}

		var path, kind string
		if format == 0 {
			kind = "csv"
			path = filepath.Join(a.exportDir, report.FileName()+".csv")
			if err := export.ToCSV(report, path); err != nil {
				return statusMsg{text: fmt.Sprintf("CSV error: %v", err), isError: true}
			}
		} else {
			kind = "json"
			path = filepath.Join(a.exportDir, report.FileName()+".json")
			if err := export.ToJSON(report, path); err != nil {
				return statusMsg{text: fmt.Sprintf("JSON error: %v", err), isError: true}
			}
		}

		a.logger.Info("report exported",
			applog.FieldOperation, applog.OpExport,
			applog.FieldMonth, payroll.MonthKey(year, month),
			applog.FieldFormat, kind,
			applog.FieldPath, path,
		)
		return exportDoneMsg{path: path}
	}
}
