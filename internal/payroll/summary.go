package payroll

import "math"

// Rates are the per-day, per-hour and overtime rates derived from Settings.
type Rates struct {
	Daily    float64
	Hourly   float64
	Overtime float64
}

// RatesFor derives the rates for s. Zero or negative divisors are treated as 1.
func RatesFor(s Settings) Rates {
	daily := s.MonthlySalary / atLeastOne(s.WorkingDaysPerMonth)
	hourly := daily / atLeastOne(s.WorkingHoursPerDay)

	ot := hourly
	if s.OTRateMode == OTRateManual {
		ot = s.ManualOTRate
	}
	return Rates{Daily: daily, Hourly: hourly, Overtime: ot}
}

func atLeastOne(v float64) float64 {
	if v < 1 {
		return 1
	}
	return v
}

// CalculateSummary computes the month summary for records, which the caller
// has already restricted to a single month. It never fails: non-finite
// inputs propagate into the result.
func CalculateSummary(s Settings, records Records) MonthSummary {
	rates := RatesFor(s)

	var sum MonthSummary
	for _, r := range records {
		switch r.Status {
		case StatusPresent:
			sum.PresentDays++
		case StatusAbsent:
			sum.AbsentDays++
		}
		if r.OTHours > 0 {
			sum.TotalOTHours += r.OTHours
		}
	}

	sum.BaseEarnings = s.MonthlySalary
	sum.AbsentDeduction = float64(sum.AbsentDays) * rates.Daily
	sum.OTEarnings = sum.TotalOTHours * rates.Overtime
	sum.TotalEarnings = sum.BaseEarnings - sum.AbsentDeduction + sum.OTEarnings
	return sum
}

// AutoOTRateDisplay is the derived overtime rate shown next to the settings
// form, rounded to cents. It is 0 while any input is still 0.
func AutoOTRateDisplay(s Settings) float64 {
	if s.MonthlySalary == 0 || s.WorkingDaysPerMonth == 0 || s.WorkingHoursPerDay == 0 {
		return 0
	}
	rate := s.MonthlySalary / s.WorkingDaysPerMonth / s.WorkingHoursPerDay
	return math.Round(rate*100) / 100
}
