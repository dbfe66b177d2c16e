package export

import (
	"time"

	"github.com/RSABuilds/Salary-OT-Calculator/internal/payroll"
)

// Day is one calendar day of a report.
type Day struct {
	Date    string
	Weekday time.Weekday
	Status  payroll.AttendanceStatus
	OTHours float64
	OffDay  bool
}

// Report is everything exported for one month.
type Report struct {
	Year     int
	Month    time.Month
	Settings payroll.Settings
	Rates    payroll.Rates
	Summary  payroll.MonthSummary
	Days     []Day
}

// NewReport builds the report of month from the given records. Days with no
// record are filled with the default record.
func NewReport(settings payroll.Settings, recs payroll.Records, year int, month time.Month) Report {
	inMonth := make(payroll.Records)
	for k, r := range recs {
		if payroll.InMonth(k, year, month) {
			inMonth[k] = r
		}
	}

	n := payroll.DaysInMonth(year, month)
	days := make([]Day, 0, n)
	for d := 1; d <= n; d++ {
		t := time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
		key := payroll.DateKey(t)
		r, ok := inMonth[key]
		if !ok {
			r = payroll.DefaultRecord(key)
		}
		days = append(days, Day{
			Date:    key,
			Weekday: t.Weekday(),
			Status:  r.Status,
			OTHours: r.OTHours,
			OffDay:  settings.IsOffDay(t.Weekday()),
		})
	}

	return Report{
		Year:     year,
		Month:    month,
		Settings: settings,
		Rates:    payroll.RatesFor(settings),
		Summary:  payroll.CalculateSummary(settings, inMonth),
		Days:     days,
	}
}

// Label is the human month name, e.g. "March 2024".
func (r Report) Label() string {
	return payroll.FirstOfMonth(r.Year, r.Month).Format("January 2006")
}

// FileName is the default export file name without extension.
func (r Report) FileName() string {
	return "salary-report-" + payroll.MonthKey(r.Year, r.Month)
}

// Money formats v in the report currency.
func (r Report) Money(v float64) string {
	return payroll.FormatCurrency(v, r.Settings.Currency)
}
