package session

import (
	"context"
	"time"

	applog "github.com/RSABuilds/Salary-OT-Calculator/internal/log"
	"github.com/RSABuilds/Salary-OT-Calculator/internal/payroll"
	"github.com/RSABuilds/Salary-OT-Calculator/internal/records"
)

// Record returns the record for date, or the default record.
func (s *Session) Record(date string) payroll.DayRecord {
	return s.records.Get(date)
}

// MonthRecords returns the records of one month.
func (s *Session) MonthRecords(year int, month time.Month) payroll.Records {
	return s.records.Month(year, month)
}

// Summary computes the earnings summary of one month.
func (s *Session) Summary(year int, month time.Month) payroll.MonthSummary {
	return payroll.CalculateSummary(s.Settings(), s.records.Month(year, month))
}

// UpdateRecord merges u onto the record of date and saves. On an off-day
// only the overtime part of u is applied.
func (s *Session) UpdateRecord(ctx context.Context, date string, u records.Update) (payroll.DayRecord, error) {
	if u.Status != nil && s.Settings().IsOffDate(date) {
		u.Status = nil
	}
	r, err := s.records.Upsert(date, u)
	if err != nil {
		return payroll.DayRecord{}, err
	}
	s.logger.DebugContext(ctx, "record updated", applog.FieldOperation, applog.OpUpdate,
		applog.FieldDate, date)
	return r, s.autosave(ctx)
}

// ResetRecord returns date to UNSET with no overtime.
func (s *Session) ResetRecord(ctx context.Context, date string) (payroll.DayRecord, error) {
	r, err := s.records.Upsert(date, records.Reset())
	if err != nil {
		return payroll.DayRecord{}, err
	}
	return r, s.autosave(ctx)
}

// UpdateSettings applies fn to a copy of the settings and saves the result.
// The identity fields are not editable through fn.
func (s *Session) UpdateSettings(ctx context.Context, fn func(*payroll.Settings)) error {
	s.mu.Lock()
	next := cloneSettings(s.settings)
	fn(&next)
	next.MobileNumber = s.settings.MobileNumber
	next.IsLoggedIn = s.settings.IsLoggedIn
	next.LastSyncedAt = s.settings.LastSyncedAt
	if next.OTRateMode != payroll.OTRateManual {
		next.OTRateMode = payroll.OTRateAuto
	}
	s.settings = next
	s.mu.Unlock()

	return s.autosave(ctx)
}

// ToggleOffDay adds or removes weekday (0 = Sunday) from the off-days.
func (s *Session) ToggleOffDay(ctx context.Context, weekday int) error {
	s.mu.Lock()
	days, err := payroll.ToggleOffDay(s.settings.OffDays, weekday)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.settings.OffDays = days
	s.mu.Unlock()

	return s.autosave(ctx)
}

// ToggleTheme flips between the light and dark theme.
func (s *Session) ToggleTheme(ctx context.Context) (payroll.Theme, error) {
	s.mu.Lock()
	if s.settings.Theme == payroll.ThemeDark {
		s.settings.Theme = payroll.ThemeLight
	} else {
		s.settings.Theme = payroll.ThemeDark
	}
	theme := s.settings.Theme
	s.mu.Unlock()

	return theme, s.autosave(ctx)
}
