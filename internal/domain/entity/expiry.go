package entity

import (
	"fmt"
	"math"
	"time"
)

// DefaultHorizonDays is how far ahead reservation expirations are reported.
const DefaultHorizonDays = 30

// Period is an expiry horizon bucket.
type Period int

const (
	PeriodDay Period = iota
	PeriodWeek
	PeriodMonth
)

// ReportPeriods lists the buckets in the order reports show them.
var ReportPeriods = []Period{PeriodMonth, PeriodWeek, PeriodDay}

func (p Period) String() string {
	switch p {
	case PeriodDay:
		return "day"
	case PeriodWeek:
		return "week"
	case PeriodMonth:
		return "month"
	}
	return fmt.Sprintf("Period(%d)", int(p))
}

// MarshalText encodes the period by name.
func (p Period) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// ParsePeriod maps a bucket name to its Period.
func ParsePeriod(name string) (Period, error) {
	switch name {
	case "day":
		return PeriodDay, nil
	case "week":
		return PeriodWeek, nil
	case "month":
		return PeriodMonth, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPeriod, name)
}

// PeriodForDays classifies a whole-day distance from now.
// Anything under 2 days, past-due included, falls in the day bucket.
func PeriodForDays(days int) (Period, error) {
	switch {
	case days < 2:
		return PeriodDay, nil
	case days < 8:
		return PeriodWeek, nil
	case days <= DefaultHorizonDays:
		return PeriodMonth, nil
	}
	return 0, fmt.Errorf("%w: %d days", ErrPeriodOutOfRange, days)
}

// ExpiryBucket holds the quantities expiring in each horizon bucket.
type ExpiryBucket struct {
	Day   int `json:"day"`
	Week  int `json:"week"`
	Month int `json:"month"`
}

// Add increments exactly one counter.
func (b *ExpiryBucket) Add(p Period, count int) {
	switch p {
	case PeriodDay:
		b.Day += count
	case PeriodWeek:
		b.Week += count
	case PeriodMonth:
		b.Month += count
	default:
		panic(fmt.Sprintf("entity: invalid period %d", int(p)))
	}
}

// AddDays classifies days and increments the matching counter.
func (b *ExpiryBucket) AddDays(days, count int) error {
	p, err := PeriodForDays(days)
	if err != nil {
		return err
	}
	b.Add(p, count)
	return nil
}

// Get returns the counter for p.
func (b ExpiryBucket) Get(p Period) int {
	switch p {
	case PeriodDay:
		return b.Day
	case PeriodWeek:
		return b.Week
	case PeriodMonth:
		return b.Month
	}
	return 0
}

// GetNamed returns the counter for a bucket name.
func (b ExpiryBucket) GetNamed(name string) (int, error) {
	p, err := ParsePeriod(name)
	if err != nil {
		return 0, err
	}
	return b.Get(p), nil
}

// GetDays returns the counter a record expiring in days would land in.
func (b ExpiryBucket) GetDays(days int) (int, error) {
	p, err := PeriodForDays(days)
	if err != nil {
		return 0, err
	}
	return b.Get(p), nil
}

// ExpiryLedger tracks upcoming expirations per category relative to a fixed now.
type ExpiryLedger struct {
	now     time.Time
	horizon int
	keys    []string
	buckets map[string]*ExpiryBucket
	totals  ExpiryBucket
}

// NewExpiryLedger creates a ledger anchored at now. horizonDays must be in 1..30.
func NewExpiryLedger(now time.Time, horizonDays int) (*ExpiryLedger, error) {
	if horizonDays < 1 || horizonDays > DefaultHorizonDays {
		return nil, fmt.Errorf("%w: %d", ErrInvalidHorizon, horizonDays)
	}
	return &ExpiryLedger{
		now:     now.UTC(),
		horizon: horizonDays,
		buckets: make(map[string]*ExpiryBucket),
	}, nil
}

// Now returns the instant all distances are measured from.
func (l *ExpiryLedger) Now() time.Time {
	return l.now
}

// DaysUntil returns the whole days between now and end, rounded down.
// Dates before now give zero or negative values.
func (l *ExpiryLedger) DaysUntil(end time.Time) int {
	return int(math.Floor(end.Sub(l.now).Hours() / 24))
}

// Add records count units of key expiring at end. Expirations beyond the
// horizon are ignored and Add returns false.
func (l *ExpiryLedger) Add(key string, count int, end time.Time) bool {
	days := l.DaysUntil(end)
	if days > l.horizon {
		return false
	}

	p, err := PeriodForDays(days)
	if err != nil {
		return false
	}
	l.totals.Add(p, count)

	b, ok := l.buckets[key]
	if !ok {
		b = &ExpiryBucket{}
		l.buckets[key] = b
		l.keys = append(l.keys, key)
	}
	b.Add(p, count)
	return true
}

// Totals returns the aggregate bucket across all categories.
func (l *ExpiryLedger) Totals() ExpiryBucket {
	return l.totals
}

// Bucket returns the bucket of key, empty when key has nothing expiring.
func (l *ExpiryLedger) Bucket(key string) ExpiryBucket {
	if b, ok := l.buckets[key]; ok {
		return *b
	}
	return ExpiryBucket{}
}

// Keys returns the categories with expirations in insertion order.
func (l *ExpiryLedger) Keys() []string {
	return append([]string(nil), l.keys...)
}

// Len returns the number of categories with expirations.
func (l *ExpiryLedger) Len() int {
	return len(l.keys)
}
