package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/RSABuilds/Salary-OT-Calculator/internal/payroll"
	"github.com/RSABuilds/Salary-OT-Calculator/internal/session"
)

// loginModel asks for the mobile number that keys the user's data and the
// country that sets the currency.
type loginModel struct {
	session *session.Session
	width   int
	height  int

	form    *huh.Form
	mobile  *string
	country *string
	known   []string
}

func newLoginModel(s *session.Session) loginModel {
	mobile := ""
	country := s.Settings().CountryName
	known, _ := s.KnownIdentities(context.Background())
	l := loginModel{
		session: s,
		mobile:  &mobile,
		country: &country,
		known:   known,
	}
	l.form = l.buildForm()
	return l
}

func (l *loginModel) setSize(w, h int) {
	l.width = w
	l.height = h
}

func (l loginModel) buildForm() *huh.Form {
	countries := make([]huh.Option[string], 0, len(payroll.Countries))
	for _, c := range payroll.Countries {
		countries = append(countries, huh.NewOption(fmt.Sprintf("%s (%s %s)", c.Name, c.Symbol, c.Code), c.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Mobile number").
				Description("Your data is stored under this number").
				Placeholder("+1 555 123 4567").
				Suggestions(l.known).
				Value(l.mobile).
				Validate(func(v string) error {
					_, err := session.NormalizeMobile(v)
					return err
				}),
			huh.NewSelect[string]().
				Title("Country").
				Options(countries...).
				Height(8).
				Value(l.country),
		),
	).WithShowHelp(true).WithShowErrors(true)
}

func (l loginModel) init() tea.Cmd {
	return l.form.Init()
}

func (l loginModel) update(msg tea.Msg) (loginModel, tea.Cmd) {
	form, cmd := l.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		l.form = f
	}

	switch l.form.State {
	case huh.StateCompleted:
		id := session.IdentityForCountry(*l.mobile, *l.country)
		l.form = l.buildForm()
		return l, tea.Batch(l.form.Init(), func() tea.Msg {
			if err := l.session.Login(context.Background(), id); err != nil {
				return statusMsg{text: fmt.Sprintf("Login failed: %v", err), isError: true}
			}
			return loggedInMsg{identity: l.session.Identity()}
		})
	case huh.StateAborted:
		return l, tea.Quit
	}
	return l, cmd
}

func (l loginModel) view() string {
	w := min(l.width-4, 72)

	title := lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render("Salary & Overtime Calculator")
	sub := subtitleStyle.Render("Sign in to track attendance, overtime and earnings")

	panel := activePanelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left, title, sub, "", l.form.View()),
	)
	return lipgloss.Place(l.width, max(l.height-4, lipgloss.Height(panel)), lipgloss.Center, lipgloss.Center, panel)
}

// consentModel asks once per session whether data may be written to disk.
type consentModel struct {
	session *session.Session
	width   int

	form  *huh.Form
	allow *bool
}

func newConsentModel(s *session.Session) consentModel {
	allow := true
	c := consentModel{session: s, allow: &allow}
	c.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Keep your data on this device?").
				Description("Settings and attendance are saved locally under your mobile number.\nNothing leaves this machine.").
				Affirmative("Allow").
				Negative("Not now").
				Value(c.allow),
		),
	).WithShowHelp(true)
	return c
}

func (c consentModel) init() tea.Cmd {
	return c.form.Init()
}

func (c consentModel) update(msg tea.Msg) (consentModel, tea.Cmd) {
	form, cmd := c.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		c.form = f
	}

	switch c.form.State {
	case huh.StateCompleted:
		if !*c.allow {
			return c, func() tea.Msg { return consentMsg{granted: false} }
		}
		return c, func() tea.Msg {
			if err := c.session.Authorize(context.Background()); err != nil {
				return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
			}
			return consentMsg{granted: true}
		}
	case huh.StateAborted:
		return c, func() tea.Msg { return consentMsg{granted: false} }
	}
	return c, cmd
}

func (c consentModel) view() string {
	w := min(c.width-4, 72)
	return activePanelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render("Local Storage"), "", c.form.View()),
	)
}
