package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/RSABuilds/Salary-OT-Calculator/internal/payroll"
)

type jsonExport struct {
	ExportedAt string       `json:"exported_at"`
	Month      string       `json:"month"`
	Currency   string       `json:"currency"`
	Settings   jsonSettings `json:"settings"`
	Summary    jsonSummary  `json:"summary"`
	Days       []jsonDay    `json:"days"`
}

type jsonSummary struct {
	PresentDays     int     `json:"present_days"`
	AbsentDays      int     `json:"absent_days"`
	TotalOTHours    float64 `json:"total_ot_hours"`
	BaseEarnings    float64 `json:"base_earnings"`
	AbsentDeduction float64 `json:"absent_deduction"`
	OTEarnings      float64 `json:"ot_earnings"`
	TotalEarnings   float64 `json:"total_earnings"`
}

type jsonSettings struct {
	MonthlySalary       float64 `json:"monthly_salary"`
	WorkingDaysPerMonth float64 `json:"working_days_per_month"`
	WorkingHoursPerDay  float64 `json:"working_hours_per_day"`
	OTRateMode          string  `json:"ot_rate_mode"`
	OTRate              float64 `json:"ot_rate"`
	OffDays             []int   `json:"off_days"`
}

type jsonDay struct {
	Date    string  `json:"date"`
	Weekday string  `json:"weekday"`
	Status  string  `json:"status"`
	OTHours float64 `json:"ot_hours,omitempty"`
	OffDay  bool    `json:"off_day,omitempty"`
}

func ToJSON(r Report, path string) error {
	export := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Month:      payroll.MonthKey(r.Year, r.Month),
		Currency:   r.Settings.Currency,
		Settings: jsonSettings{
			MonthlySalary:       r.Settings.MonthlySalary,
			WorkingDaysPerMonth: r.Settings.WorkingDaysPerMonth,
			WorkingHoursPerDay:  r.Settings.WorkingHoursPerDay,
			OTRateMode:          string(r.Settings.OTRateMode),
			OTRate:              r.Rates.Overtime,
			OffDays:             r.Settings.OffDays,
		},
		Summary: jsonSummary(r.Summary),
		Days:    make([]jsonDay, 0, len(r.Days)),
	}

	for _, d := range r.Days {
		export.Days = append(export.Days, jsonDay{
			Date:    d.Date,
			Weekday: d.Weekday.String(),
			Status:  string(d.Status),
			OTHours: d.OTHours,
			OffDay:  d.OffDay,
		})
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
