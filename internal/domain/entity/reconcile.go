package entity

// Direction tells which way reserved capacity is off from usage.
type Direction int

const (
	DirectionNone Direction = iota
	// DirectionExcess means more capacity is reserved than used.
	DirectionExcess
	// DirectionShortfall means more is used than reserved.
	DirectionShortfall
)

// DeltaRow compares reserved and in-use counts for one category.
type DeltaRow struct {
	Category string `json:"category"`
	Reserved int    `json:"reserved"`
	InUse    int    `json:"in_use"`
	Delta    int    `json:"delta"`
}

func newDeltaRow(category string, reserved, inUse int) DeltaRow {
	return DeltaRow{
		Category: category,
		Reserved: reserved,
		InUse:    inUse,
		Delta:    reserved - inUse,
	}
}

// Direction returns the indicator for the row's delta.
func (r DeltaRow) Direction() Direction {
	switch {
	case r.Delta > 0:
		return DirectionExcess
	case r.Delta < 0:
		return DirectionShortfall
	}
	return DirectionNone
}

// ExpiryRow is the quantity of one category expiring in a period.
type ExpiryRow struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// ExpirySection lists what expires in one period.
type ExpirySection struct {
	Period Period      `json:"period"`
	Rows   []ExpiryRow `json:"rows"`
	Total  int         `json:"total"`
}

// Reconciliation is the full comparison for one resource family.
type Reconciliation struct {
	Title string     `json:"title"`
	Rows  []DeltaRow `json:"rows"`
	Total DeltaRow   `json:"total"`
	// HasExpiries is false when nothing expires within the horizon at all.
	HasExpiries bool            `json:"has_expiries"`
	Expiring    []ExpirySection `json:"expiring,omitempty"`
}

// Reconcile compares in-use counts against reserved capacity.
// In-use categories come first in their insertion order, followed by
// reserved categories nothing is running for.
func Reconcile(title string, inUse *CategoryCount, reserved *ReservedCount) Reconciliation {
	rec := Reconciliation{Title: title}

	var reservedTotal, inUseTotal int
	for _, key := range inUse.Keys() {
		row := newDeltaRow(key, reserved.Counts.Get(key), inUse.Get(key))
		reservedTotal += row.Reserved
		inUseTotal += row.InUse
		rec.Rows = append(rec.Rows, row)
	}
	for _, key := range reserved.Counts.Keys() {
		if inUse.Has(key) {
			continue
		}
		row := newDeltaRow(key, reserved.Counts.Get(key), 0)
		reservedTotal += row.Reserved
		rec.Rows = append(rec.Rows, row)
	}
	rec.Total = newDeltaRow("Total", reservedTotal, inUseTotal)

	rec.HasExpiries = reserved.Expiries.Len() > 0
	if rec.HasExpiries {
		rec.Expiring = ExpirySections(reserved.Expiries)
	}
	return rec
}

// ExpirySections returns one section per period with anything expiring,
// in month, week, day order.
func ExpirySections(ledger *ExpiryLedger) []ExpirySection {
	var sections []ExpirySection
	for _, p := range ReportPeriods {
		if ledger.Totals().Get(p) == 0 {
			continue
		}
		section := ExpirySection{Period: p}
		for _, key := range ledger.Keys() {
			n := ledger.Bucket(key).Get(p)
			if n > 0 {
				section.Rows = append(section.Rows, ExpiryRow{Category: key, Count: n})
				section.Total += n
			}
		}
		sections = append(sections, section)
	}
	return sections
}
