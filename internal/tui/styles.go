package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/RSABuilds/Salary-OT-Calculator/internal/payroll"
)

type palette struct {
	primary   lipgloss.Color
	secondary lipgloss.Color
	accent    lipgloss.Color
	muted     lipgloss.Color
	success   lipgloss.Color
	warning   lipgloss.Color
	error     lipgloss.Color
	fg        lipgloss.Color
	subtle    lipgloss.Color
	highlight lipgloss.Color
}

var (
	darkPalette = palette{
		primary:   lipgloss.Color("#6C63FF"),
		secondary: lipgloss.Color("#2EC4B6"),
		accent:    lipgloss.Color("#FF6B6B"),
		muted:     lipgloss.Color("#666666"),
		success:   lipgloss.Color("#2ECC71"),
		warning:   lipgloss.Color("#F39C12"),
		error:     lipgloss.Color("#E74C3C"),
		fg:        lipgloss.Color("#C0CAF5"),
		subtle:    lipgloss.Color("#414868"),
		highlight: lipgloss.Color("#7AA2F7"),
	}
	lightPalette = palette{
		primary:   lipgloss.Color("#4F46E5"),
		secondary: lipgloss.Color("#0D9488"),
		accent:    lipgloss.Color("#E11D48"),
		muted:     lipgloss.Color("#94A3B8"),
		success:   lipgloss.Color("#059669"),
		warning:   lipgloss.Color("#D97706"),
		error:     lipgloss.Color("#E11D48"),
		fg:        lipgloss.Color("#1E293B"),
		subtle:    lipgloss.Color("#CBD5E1"),
		highlight: lipgloss.Color("#4338CA"),
	}
)

// Color palette
var (
	colorPrimary   lipgloss.Color
	colorSecondary lipgloss.Color
	colorAccent    lipgloss.Color
	colorMuted     lipgloss.Color
	colorSuccess   lipgloss.Color
	colorWarning   lipgloss.Color
	colorError     lipgloss.Color
	colorFg        lipgloss.Color
	colorSubtle    lipgloss.Color
	colorHighlight lipgloss.Color
)

// Styles
var (
	activeTabStyle    lipgloss.Style
	inactiveTabStyle  lipgloss.Style
	panelStyle        lipgloss.Style
	activePanelStyle  lipgloss.Style
	titleStyle        lipgloss.Style
	subtitleStyle     lipgloss.Style
	accentStyle       lipgloss.Style
	successStyle      lipgloss.Style
	warningStyle      lipgloss.Style
	errorStyle        lipgloss.Style
	mutedStyle        lipgloss.Style
	highlightStyle    lipgloss.Style
	headerStyle       lipgloss.Style
	footerStyle       lipgloss.Style
	selectedItemStyle lipgloss.Style
	normalItemStyle   lipgloss.Style

	// Calendar cells
	cellStyle       lipgloss.Style
	cellCursorStyle lipgloss.Style
	cellOffStyle    lipgloss.Style
	presentStyle    lipgloss.Style
	absentStyle     lipgloss.Style
	overtimeStyle   lipgloss.Style
)

var currentTheme payroll.Theme

func init() {
	applyTheme(payroll.ThemeLight)
}

// applyTheme rebuilds every style from the palette of theme.
func applyTheme(theme payroll.Theme) {
	p := lightPalette
	if theme == payroll.ThemeDark {
		p = darkPalette
	}
	currentTheme = theme

	colorPrimary = p.primary
	colorSecondary = p.secondary
	colorAccent = p.accent
	colorMuted = p.muted
	colorSuccess = p.success
	colorWarning = p.warning
	colorError = p.error
	colorFg = p.fg
	colorSubtle = p.subtle
	colorHighlight = p.highlight

	// Tabs
	activeTabStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(colorPrimary).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(colorPrimary).
		Padding(0, 2)

	inactiveTabStyle = lipgloss.NewStyle().
		Foreground(colorMuted).
		Padding(0, 2)

	// Panels
	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorSubtle).
		Padding(1, 2)

	activePanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorPrimary).
		Padding(1, 2)

	// Text
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorFg)
	subtitleStyle = lipgloss.NewStyle().Foreground(colorMuted)
	accentStyle = lipgloss.NewStyle().Foreground(colorAccent)
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	warningStyle = lipgloss.NewStyle().Foreground(colorWarning)
	errorStyle = lipgloss.NewStyle().Foreground(colorError)
	mutedStyle = lipgloss.NewStyle().Foreground(colorMuted)
	highlightStyle = lipgloss.NewStyle().Foreground(colorHighlight)

	// Header/footer
	headerStyle = lipgloss.NewStyle().Padding(0, 1)
	footerStyle = lipgloss.NewStyle().Foreground(colorMuted).Padding(0, 1)

	// List items
	selectedItemStyle = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	normalItemStyle = lipgloss.NewStyle().Foreground(colorFg)

	cellStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorSubtle).
		Padding(0, 1)
	cellCursorStyle = cellStyle.BorderForeground(colorPrimary).Bold(true)
	cellOffStyle = cellStyle.Foreground(colorMuted)
	presentStyle = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	absentStyle = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	overtimeStyle = lipgloss.NewStyle().Foreground(colorWarning)
}
