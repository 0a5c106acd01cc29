package entity

import (
	"fmt"
	"strings"
	"time"
)

// Family identifies a group of resources reported as one table.
type Family string

const (
	FamilyEC2 Family = "ec2"
	FamilyRDS Family = "rds"
)

// AllFamilies lists the families in report order.
var AllFamilies = []Family{FamilyEC2, FamilyRDS}

// ParseFamily maps a name such as "EC2" or "rds" to a Family.
func ParseFamily(name string) (Family, error) {
	switch Family(strings.ToLower(strings.TrimSpace(name))) {
	case FamilyEC2:
		return FamilyEC2, nil
	case FamilyRDS:
		return FamilyRDS, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFamily, name)
}

// Title is the table heading for the family.
func (f Family) Title() string {
	switch f {
	case FamilyEC2:
		return "EC2 Instances"
	case FamilyRDS:
		return "RDS Instances"
	}
	return string(f)
}

// Resource is one running instance.
type Resource struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	State    string `json:"state"`
}

// Reservation is one reserved capacity purchase.
type Reservation struct {
	ID       string        `json:"id"`
	Category string        `json:"category"`
	Count    int           `json:"count"`
	State    string        `json:"state"`
	Start    time.Time     `json:"start"`
	Duration time.Duration `json:"duration"`
	// End is zero when the provider only reports Start and Duration.
	End time.Time `json:"end"`
}

// Expiry returns when the reservation ends.
func (r Reservation) Expiry() time.Time {
	if !r.End.IsZero() {
		return r.End
	}
	return r.Start.Add(r.Duration)
}

// ReservedCount pairs reserved capacity counts with their expirations.
type ReservedCount struct {
	Counts   *CategoryCount
	Expiries *ExpiryLedger
}

// NewReservedCount creates an empty ReservedCount anchored at now.
func NewReservedCount(now time.Time) *ReservedCount {
	ledger, err := NewExpiryLedger(now, DefaultHorizonDays)
	if err != nil {
		panic(err)
	}
	return &ReservedCount{
		Counts:   NewCategoryCount(),
		Expiries: ledger,
	}
}

// Add records a reservation in both the counts and the ledger.
func (r *ReservedCount) Add(res Reservation) {
	r.Counts.Add(res.Category, res.Count)
	r.Expiries.Add(res.Category, res.Count, res.Expiry())
}

// CountResources aggregates running resources, one unit each.
func CountResources(resources []Resource) *CategoryCount {
	counts := NewCategoryCount()
	for _, r := range resources {
		counts.Inc(r.Category)
	}
	return counts
}

// CountReservations aggregates reservations by their unit counts.
func CountReservations(now time.Time, reservations []Reservation) *ReservedCount {
	reserved := NewReservedCount(now)
	for _, r := range reservations {
		reserved.Add(r)
	}
	return reserved
}
