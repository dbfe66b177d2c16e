package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// ToCSV writes the day rows of r followed by its summary.
func ToCSV(r Report, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"Date", "Weekday", "Status", "OT Hours", "Off Day"}); err != nil {
		return err
	}

	for _, d := range r.Days {
		row := []string{
			d.Date,
			d.Weekday.String(),
			string(d.Status),
			strconv.FormatFloat(d.OTHours, 'f', -1, 64),
			strconv.FormatBool(d.OffDay),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	s := r.Summary
	summary := [][]string{
		{},
		{"Month", r.Label()},
		{"Present Days", strconv.Itoa(s.PresentDays)},
		{"Absent Days", strconv.Itoa(s.AbsentDays)},
		{"Total OT Hours", strconv.FormatFloat(s.TotalOTHours, 'f', -1, 64)},
		{"Base Earnings", r.Money(s.BaseEarnings)},
		{"Absent Deduction", r.Money(s.AbsentDeduction)},
		{"OT Earnings", r.Money(s.OTEarnings)},
		{"Net Total", r.Money(s.TotalEarnings)},
	}
	if err := w.WriteAll(summary); err != nil {
		return err
	}

	return w.Error()
}
