// Package records holds the in-memory attendance records of the current user.
package records

import (
	"errors"
	"maps"
	"sync"
	"time"

	"github.com/RSABuilds/Salary-OT-Calculator/internal/payroll"
)

var ErrInvalidDate = errors.New("date must be formatted as YYYY-MM-DD")

// Update is a partial change to a day record. Nil fields keep their
// current value.
type Update struct {
	Status  *payroll.AttendanceStatus
	OTHours *float64
}

// SetStatus builds an Update that only changes the status.
func SetStatus(s payroll.AttendanceStatus) Update {
	return Update{Status: &s}
}

// SetOTHours builds an Update that only changes the overtime hours.
func SetOTHours(h float64) Update {
	return Update{OTHours: &h}
}

// Reset builds an Update that returns a day to UNSET with no overtime.
func Reset() Update {
	s, h := payroll.StatusUnset, 0.0
	return Update{Status: &s, OTHours: &h}
}

// Apply merges u onto r.
func (u Update) Apply(r payroll.DayRecord) payroll.DayRecord {
	if u.Status != nil {
		r.Status = *u.Status
	}
	if u.OTHours != nil {
		r.OTHours = *u.OTHours
	}
	return r
}

// Store maps dates to day records. It is safe for concurrent use.
type Store struct {
	mu   sync.RWMutex
	recs payroll.Records
}

func New() *Store {
	return &Store{recs: make(payroll.Records)}
}

// Upsert merges u onto the record stored for date, or onto the default
// record when there is none, and returns the result.
func (s *Store) Upsert(date string, u Update) (payroll.DayRecord, error) {
	if _, err := payroll.ParseDateKey(date); err != nil {
		return payroll.DayRecord{}, ErrInvalidDate
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.recs[date]
	if !ok {
		cur = payroll.DefaultRecord(date)
	}
	next := u.Apply(cur)
	next.Date = date
	s.recs[date] = next
	return next, nil
}

// Get returns the record for date, or the default record.
func (s *Store) Get(date string) payroll.DayRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if r, ok := s.recs[date]; ok {
		return r
	}
	return payroll.DefaultRecord(date)
}

// Clear removes every record.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recs = make(payroll.Records)
}

// Replace swaps the whole collection for recs.
func (s *Store) Replace(recs payroll.Records) {
	next := make(payroll.Records, len(recs))
	for k, r := range recs {
		r.Date = k
		next[k] = r
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.recs = next
}

// Snapshot returns a copy of every record.
func (s *Store) Snapshot() payroll.Records {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.recs)
}

// Month returns a copy of the records whose date falls in month of year.
func (s *Store) Month(year int, month time.Month) payroll.Records {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(payroll.Records)
	for k, r := range s.recs {
		if payroll.InMonth(k, year, month) {
			out[k] = r
		}
	}
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.recs)
}
