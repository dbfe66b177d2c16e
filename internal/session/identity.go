package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	applog "github.com/RSABuilds/Salary-OT-Calculator/internal/log"
	"github.com/RSABuilds/Salary-OT-Calculator/internal/payroll"
	"github.com/RSABuilds/Salary-OT-Calculator/internal/store"
)

var ErrInvalidMobile = errors.New("mobile number must have between 8 and 15 digits")

// Identity is what the login form collects.
type Identity struct {
	Mobile         string
	CountryName    string
	Currency       string
	CurrencySymbol string
}

// IdentityForCountry fills the currency fields of an identity from the
// country table.
func IdentityForCountry(mobile, country string) Identity {
	id := Identity{Mobile: mobile, CountryName: country}
	if c, ok := payroll.CountryByName(country); ok {
		id.Currency = c.Code
		id.CurrencySymbol = c.Symbol
	}
	return id
}

// NormalizeMobile strips formatting from a mobile number. A leading "+" is
// kept.
func NormalizeMobile(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	var b strings.Builder
	digits := 0
	for i, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
			digits++
		case r == '+' && i == 0:
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '(' || r == ')' || r == '.':
		default:
			return "", ErrInvalidMobile
		}
	}
	if digits < 8 || digits > 15 {
		return "", ErrInvalidMobile
	}
	return b.String(), nil
}

// KnownIdentities returns the mobile numbers with data on this device.
// Nothing is listed until storage has been authorized.
func (s *Session) KnownIdentities(ctx context.Context) ([]string, error) {
	if !s.Authorized() {
		return nil, nil
	}
	ids, err := s.repo.ListIdentities(ctx)
	if err != nil {
		return nil, fmt.Errorf("known identities: %w", err)
	}
	return ids, nil
}

// Login switches the session to id. The record store is cleared, then
// refilled from whatever was stored for that identity.
func (s *Session) Login(ctx context.Context, id Identity) error {
	mobile, err := NormalizeMobile(id.Mobile)
	if err != nil {
		return err
	}

	// Nothing in memory changes until the new identity has loaded.
	settings, recs, err := s.load(ctx, mobile)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	settings.MobileNumber = mobile
	settings.IsLoggedIn = true
	if id.CountryName != "" {
		settings.CountryName = id.CountryName
	}
	if id.Currency != "" {
		settings.Currency = id.Currency
		settings.CurrencySymbol = id.CurrencySymbol
	}

	s.records.Clear()
	s.records.Replace(recs)
	s.mu.Lock()
	settings.Theme = s.settings.Theme
	s.settings = settings
	s.syncStatus = SyncIdle
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "logged in", applog.NewFields().
		WithOperation(applog.OpLogin).
		WithIdentity(mobile).
		ToSlice()...)
	return s.autosave(ctx)
}

// Logout saves the current user's data and returns to a signed-out state.
func (s *Session) Logout(ctx context.Context) error {
	id := s.Identity()
	if err := s.autosave(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	if err := s.repo.DeleteSetting(ctx, store.SettingCurrentIdentity); err != nil {
		return fmt.Errorf("logout: %w", err)
	}

	s.records.Clear()
	s.reset()

	s.logger.InfoContext(ctx, "logged out", applog.NewFields().
		WithOperation(applog.OpLogout).
		WithIdentity(id).
		ToSlice()...)
	return nil
}

// EraseAll deletes everything stored for the signed-in user together with
// the session and consent flags.
func (s *Session) EraseAll(ctx context.Context) error {
	id := s.Identity()
	if id != "" {
		if err := s.repo.DeleteIdentity(ctx, id); err != nil {
			return fmt.Errorf("erase: %w", err)
		}
	}
	for _, key := range []string{store.SettingCurrentIdentity, store.SettingStorageAuthorized} {
		if err := s.repo.DeleteSetting(ctx, key); err != nil {
			return fmt.Errorf("erase: %w", err)
		}
	}

	s.records.Clear()
	s.reset()
	s.mu.Lock()
	s.authorized = false
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "all data erased", applog.NewFields().
		WithOperation(applog.OpErase).
		WithIdentity(id).
		ToSlice()...)
	return nil
}

// reset returns settings to defaults, keeping the theme.
func (s *Session) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	theme := s.settings.Theme
	s.settings = payroll.DefaultSettings()
	s.settings.Theme = theme
	s.syncStatus = SyncIdle
}
