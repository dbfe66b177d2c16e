package records

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/RSABuilds/Salary-OT-Calculator/internal/payroll"
)

// ============================================================
// Upsert
// ============================================================

func TestUpsertCreatesFromDefault(t *testing.T) {
	s := New()
	r, err := s.Upsert("2024-03-05", SetOTHours(2))
	if err != nil {
		t.Fatal(err)
	}
	want := payroll.DayRecord{Date: "2024-03-05", Status: payroll.StatusUnset, OTHours: 2}
	if r != want {
		t.Fatalf("expected %+v, got %+v", want, r)
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 record, got %d", s.Len())
	}
}

func TestUpsertMergesFields(t *testing.T) {
	s := New()
	s.Upsert("2024-03-05", Update{
		Status:  ptr(payroll.StatusPresent),
		OTHours: ptr(2.0),
	})

	r, err := s.Upsert("2024-03-05", SetOTHours(5))
	if err != nil {
		t.Fatal(err)
	}
	if r.Status != payroll.StatusPresent {
		t.Fatalf("status should be preserved, got %q", r.Status)
	}
	if r.OTHours != 5 {
		t.Fatalf("expected 5 OT hours, got %v", r.OTHours)
	}

	r, _ = s.Upsert("2024-03-05", SetStatus(payroll.StatusAbsent))
	if r.OTHours != 5 {
		t.Fatalf("OT hours should be preserved, got %v", r.OTHours)
	}
}

func TestUpsertEmptyUpdateKeepsRecord(t *testing.T) {
	s := New()
	s.Upsert("2024-03-05", SetStatus(payroll.StatusAbsent))
	r, err := s.Upsert("2024-03-05", Update{})
	if err != nil {
		t.Fatal(err)
	}
	if r.Status != payroll.StatusAbsent {
		t.Fatalf("expected ABSENT, got %q", r.Status)
	}
}

func TestUpsertReset(t *testing.T) {
	s := New()
	s.Upsert("2024-03-05", Update{Status: ptr(payroll.StatusPresent), OTHours: ptr(3.0)})
	r, _ := s.Upsert("2024-03-05", Reset())
	if !r.IsEmpty() {
		t.Fatalf("expected empty record after reset, got %+v", r)
	}
	// The key stays, but it reads as the default.
	if s.Get("2024-03-05") != payroll.DefaultRecord("2024-03-05") {
		t.Fatal("reset record should equal the default")
	}
}

func TestUpsertDoesNotValidateHours(t *testing.T) {
	s := New()
	r, err := s.Upsert("2024-03-05", SetOTHours(-3))
	if err != nil {
		t.Fatal(err)
	}
	if r.OTHours != -3 {
		t.Fatalf("expected -3, got %v", r.OTHours)
	}
}

func TestUpsertInvalidDate(t *testing.T) {
	s := New()
	for _, d := range []string{"", "2024-3-5", "05/03/2024", "2024-02-30"} {
		if _, err := s.Upsert(d, SetOTHours(1)); !errors.Is(err, ErrInvalidDate) {
			t.Errorf("Upsert(%q): expected ErrInvalidDate, got %v", d, err)
		}
	}
	if s.Len() != 0 {
		t.Fatalf("expected no records, got %d", s.Len())
	}
}

// ============================================================
// Get / Clear / Replace
// ============================================================

func TestGetMissingReturnsDefault(t *testing.T) {
	s := New()
	r := s.Get("2024-01-01")
	if r != payroll.DefaultRecord("2024-01-01") {
		t.Fatalf("expected default record, got %+v", r)
	}
}

func TestClear(t *testing.T) {
	s := New()
	s.Upsert("2024-03-05", SetStatus(payroll.StatusPresent))
	s.Upsert("2024-03-06", SetStatus(payroll.StatusAbsent))
	s.Clear()
	if s.Len() != 0 {
		t.Fatalf("expected empty store, got %d", s.Len())
	}
	if s.Get("2024-03-05").Status != payroll.StatusUnset {
		t.Fatal("cleared record should read as default")
	}
}

func TestReplaceAndSnapshot(t *testing.T) {
	s := New()
	s.Upsert("2023-12-31", SetStatus(payroll.StatusPresent))

	s.Replace(payroll.Records{
		"2024-03-01": {Status: payroll.StatusAbsent},
	})
	snap := s.Snapshot()
	if len(snap) != 1 {
		t.Fatalf("expected 1 record, got %d", len(snap))
	}
	if snap["2024-03-01"].Date != "2024-03-01" {
		t.Fatalf("date should be filled from key, got %+v", snap["2024-03-01"])
	}

	// Snapshot is a copy.
	snap["2024-03-02"] = payroll.DayRecord{}
	if s.Len() != 1 {
		t.Fatal("mutating snapshot changed the store")
	}
}

// ============================================================
// Month view
// ============================================================

func TestMonth(t *testing.T) {
	s := New()
	s.Upsert("2024-02-29", SetStatus(payroll.StatusPresent))
	s.Upsert("2024-03-01", SetStatus(payroll.StatusPresent))
	s.Upsert("2024-03-31", SetOTHours(4))
	s.Upsert("2024-04-01", SetStatus(payroll.StatusAbsent))

	m := s.Month(2024, time.March)
	if len(m) != 2 {
		t.Fatalf("expected 2 records in March, got %d", len(m))
	}
	if _, ok := m["2024-03-31"]; !ok {
		t.Fatal("missing 2024-03-31")
	}
	if s.Len() != 4 {
		t.Fatalf("expected 4 records kept, got %d", s.Len())
	}
}

func TestMonthFeedsCalculator(t *testing.T) {
	s := New()
	for _, d := range []string{"2024-03-04", "2024-03-05", "2024-03-06"} {
		s.Upsert(d, SetStatus(payroll.StatusPresent))
	}
	s.Upsert("2024-03-07", SetStatus(payroll.StatusAbsent))
	s.Upsert("2024-02-07", SetStatus(payroll.StatusAbsent))

	sum := payroll.CalculateSummary(payroll.DefaultSettings(), s.Month(2024, time.March))
	if sum.PresentDays != 3 || sum.AbsentDays != 1 {
		t.Fatalf("unexpected counts %+v", sum)
	}
}

func TestConcurrentUpserts(t *testing.T) {
	s := New()
	var wg sync.WaitGroup
	for i := 1; i <= 28; i++ {
		wg.Add(1)
		go func(day int) {
			defer wg.Done()
			d := time.Date(2024, time.February, day, 0, 0, 0, 0, time.UTC)
			s.Upsert(payroll.DateKey(d), SetOTHours(1))
		}(i)
	}
	wg.Wait()
	if s.Len() != 28 {
		t.Fatalf("expected 28 records, got %d", s.Len())
	}
}

func ptr[T any](v T) *T {
	return &v
}
