package render

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/dskyberg/instance-count/internal/domain/entity"
	"github.com/dskyberg/instance-count/pkg/indent"
)

const (
	tableWidth  = 46
	expiryWidth = 25
)

// Termio renders tables as styled text lines.
type Termio struct {
	style TermStyle
	lines []string
}

func NewTermio(style TermStyle) *Termio {
	return &Termio{style: style}
}

func (t *Termio) FormatTable(title string, inUse *entity.CategoryCount, reserved *entity.ReservedCount) entity.Reconciliation {
	rec := entity.Reconcile(title, inUse, reserved)

	t.formatTitle(rec.Title)
	t.formatHeader()
	for _, row := range rec.Rows {
		t.lines = append(t.lines, t.formatRow(row, false))
	}
	t.lines = append(t.lines, t.hline(tableWidth), t.formatRow(rec.Total, true))

	if !rec.HasExpiries {
		t.lines = append(t.lines, noExpiriesMessage)
		return rec
	}
	for _, section := range rec.Expiring {
		t.formatExpirySection(section)
	}
	return rec
}

func (t *Termio) Format(w io.Writer) error {
	out := indent.New(w)
	for _, line := range t.lines {
		out.WriteLine(line)
	}
	return out.Err()
}

func (t *Termio) hline(width int) string {
	return strings.Repeat(t.style.HLine, width)
}

func (t *Termio) formatTitle(title string) {
	t.lines = append(t.lines, t.hline(tableWidth), center(title, tableWidth), t.hline(tableWidth))
}

func (t *Termio) formatHeader() {
	s := t.style
	arrows := s.Excess.Sprint(s.Up) + s.Neutral.Sprint(s.Separator) + s.Shortfall.Sprint(s.Down)
	t.lines = append(t.lines,
		s.Bold.Sprintf("%-15s%10s%10s%8s", "Type", "Reserved", "In Use", " ")+arrows,
		t.hline(tableWidth),
	)
}

func (t *Termio) formatRow(row entity.DeltaRow, total bool) string {
	s := t.style
	cols := fmt.Sprintf("%-15s%10d%10d", row.Category, row.Reserved, row.InUse)
	if total {
		cols = s.Bold.Sprint(cols)
	}

	c, glyph := s.Neutral, ""
	switch row.Direction() {
	case entity.DirectionExcess:
		c, glyph = s.Excess, s.Up
	case entity.DirectionShortfall:
		c, glyph = s.Shortfall, s.Down
	}
	return cols + c.Sprintf("%10d%s", row.Delta, glyph)
}

func (t *Termio) formatExpirySection(section entity.ExpirySection) {
	s := t.style
	pre, emphasis, post := expiryBanner(section.Period)

	t.lines = append(t.lines,
		"\n"+expiryLead+pre+s.Bold.Sprint(emphasis)+post,
		s.Bold.Sprintf("%-15s%10s", "Type", "Number"),
		t.hline(expiryWidth),
	)
	for _, row := range section.Rows {
		t.lines = append(t.lines, fmt.Sprintf("%-15s%10d", row.Category, row.Count))
	}
	t.lines = append(t.lines,
		t.hline(expiryWidth),
		s.Bold.Sprintf("%-15s%10d", "Total", section.Total),
	)
}

// center pads text to width, putting the odd space on the right.
func center(text string, width int) string {
	n := utf8.RuneCountInString(text)
	if n >= width {
		return text
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", width-n-left)
}
