package payroll

import (
	"encoding/json"
	"fmt"
	"time"
)

// AttendanceStatus is the attendance state of a single day.
type AttendanceStatus string

const (
	StatusUnset   AttendanceStatus = "UNSET"
	StatusPresent AttendanceStatus = "PRESENT"
	StatusAbsent  AttendanceStatus = "ABSENT"
)

// Valid reports whether s is one of the known statuses.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case StatusUnset, StatusPresent, StatusAbsent:
		return true
	}
	return false
}

func (s *AttendanceStatus) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	v := AttendanceStatus(raw)
	if raw == "" {
		v = StatusUnset
	}
	if !v.Valid() {
		return fmt.Errorf("unknown attendance status %q", raw)
	}
	*s = v
	return nil
}

// DayRecord is the attendance entry for one calendar date.
type DayRecord struct {
	Date    string           `json:"date"` // YYYY-MM-DD
	Status  AttendanceStatus `json:"status"`
	OTHours float64          `json:"otHours"`
}

// DefaultRecord is the record every date has until it is edited.
func DefaultRecord(date string) DayRecord {
	return DayRecord{Date: date, Status: StatusUnset}
}

// IsEmpty reports whether the record carries no information.
func (r DayRecord) IsEmpty() bool {
	return (r.Status == StatusUnset || r.Status == "") && r.OTHours == 0
}

// Records maps a YYYY-MM-DD date to its record. One record per date.
type Records map[string]DayRecord

// OTRateMode selects how the overtime hourly rate is derived.
type OTRateMode string

const (
	OTRateAuto   OTRateMode = "auto"
	OTRateManual OTRateMode = "manual"
)

// Theme is the UI colour scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Settings holds salary configuration and the identity of the current user.
type Settings struct {
	MonthlySalary       float64    `json:"monthlySalary"`
	WorkingDaysPerMonth float64    `json:"workingDaysPerMonth"`
	WorkingHoursPerDay  float64    `json:"workingHoursPerDay"`
	OTRateMode          OTRateMode `json:"otRateMode"`
	ManualOTRate        float64    `json:"manualOtRate"`
	Currency            string     `json:"currency"`
	CurrencySymbol      string     `json:"currencySymbol"`
	CountryName         string     `json:"countryName"`
	MobileNumber        string     `json:"mobileNumber"`
	IsLoggedIn          bool       `json:"isLoggedIn"`
	OffDays             []int      `json:"offDays"`
	LastSyncedAt        *time.Time `json:"lastSyncedAt,omitempty"`
	SyncEnabled         bool       `json:"syncEnabled"`
	Theme               Theme      `json:"theme"`
}

// DefaultSettings returns the configuration used before anything is saved.
func DefaultSettings() Settings {
	return Settings{
		MonthlySalary:       3000,
		WorkingDaysPerMonth: 30,
		WorkingHoursPerDay:  8,
		OTRateMode:          OTRateAuto,
		ManualOTRate:        20,
		Currency:            "USD",
		CurrencySymbol:      "$",
		CountryName:         "United States",
		OffDays:             []int{0},
		SyncEnabled:         true,
		Theme:               ThemeLight,
	}
}

// DecodeSettings decodes a stored settings document over the defaults, so
// fields missing from data keep their default values.
func DecodeSettings(data []byte) (Settings, error) {
	s := DefaultSettings()
	if err := json.Unmarshal(data, &s); err != nil {
		return DefaultSettings(), fmt.Errorf("decode settings: %w", err)
	}
	if s.OTRateMode != OTRateAuto && s.OTRateMode != OTRateManual {
		s.OTRateMode = OTRateAuto
	}
	if s.Theme != ThemeLight && s.Theme != ThemeDark {
		s.Theme = ThemeLight
	}
	s.OffDays = normalizeOffDays(s.OffDays)
	return s, nil
}

// DecodeRecords decodes a stored records document. Keys win over the date
// field inside each value.
func DecodeRecords(data []byte) (Records, error) {
	var raw map[string]DayRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}
	out := make(Records, len(raw))
	for k, r := range raw {
		if _, err := ParseDateKey(k); err != nil {
			return nil, fmt.Errorf("decode records: %w", err)
		}
		r.Date = k
		if r.Status == "" {
			r.Status = StatusUnset
		}
		out[k] = r
	}
	return out, nil
}

// MonthSummary is the derived earnings summary of one month.
type MonthSummary struct {
	PresentDays     int     `json:"presentDays"`
	AbsentDays      int     `json:"absentDays"`
	TotalOTHours    float64 `json:"totalOtHours"`
	BaseEarnings    float64 `json:"baseEarnings"`
	AbsentDeduction float64 `json:"absentDeduction"`
	OTEarnings      float64 `json:"otEarnings"`
	TotalEarnings   float64 `json:"totalEarnings"`
}
