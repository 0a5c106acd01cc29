package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/dskyberg/instance-count/internal/domain/entity"
)

var now = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func inDays(n int) time.Time {
	return now.Add(time.Duration(n) * 24 * time.Hour)
}

func sampleCounts() (*entity.CategoryCount, *entity.ReservedCount) {
	inUse := entity.CountResources([]entity.Resource{
		{ID: "i-1", Category: "m5.large"},
		{ID: "i-2", Category: "m5.large"},
		{ID: "i-3", Category: "m5.large"},
	})
	reserved := entity.CountReservations(now, []entity.Reservation{
		{ID: "r-1", Category: "m5.large", Count: 5, End: inDays(200)},
		{ID: "r-2", Category: "t2.micro", Count: 2, End: inDays(5)},
	})
	return inUse, reserved
}

func TestTermio_FormatTable(t *testing.T) {
	inUse, reserved := sampleCounts()
	r := NewTermio(PlainTermStyle())
	rec := r.FormatTable("EC2 Instances", inUse, reserved)

	var buf bytes.Buffer
	if err := r.Format(&buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	wide := strings.Repeat("─", 46)
	narrow := strings.Repeat("─", 25)
	want := strings.Join([]string{
		wide,
		"                EC2 Instances                 ",
		wide,
		"Type             Reserved    In Use        ↑/↓",
		wide,
		"m5.large                5         3         2↑",
		"t2.micro                2         0         2↑",
		wide,
		"Total                   7         3         4↑",
		"\nThe following will expire in the next 7 days",
		"Type               Number",
		narrow,
		"t2.micro                2",
		narrow,
		"Total                   2",
	}, "\n") + "\n"

	if got := buf.String(); got != want {
		t.Errorf("Format() =\n%s\nwant\n%s", got, want)
	}
	if rec.Total.Delta != 4 {
		t.Errorf("FormatTable() total delta = %d, want 4", rec.Total.Delta)
	}
}

func TestTermio_ShortfallAndNoExpiries(t *testing.T) {
	inUse := entity.NewCategoryCount()
	inUse.Add("db.r5.large", 4)
	reserved := entity.CountReservations(now, []entity.Reservation{
		{Category: "db.r5.large", Count: 1, End: inDays(90)},
	})

	r := NewTermio(PlainTermStyle())
	r.FormatTable("RDS Instances", inUse, reserved)

	var buf bytes.Buffer
	if err := r.Format(&buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "db.r5.large             1         4        -3↓\n") {
		t.Errorf("missing shortfall row in:\n%s", out)
	}
	if !strings.HasSuffix(out, "No instances expire in the next 30 days\n") {
		t.Errorf("missing no-expiry message in:\n%s", out)
	}
	if strings.Contains(out, "The following will expire") {
		t.Errorf("unexpected expiry section in:\n%s", out)
	}
}

func TestTermio_ExpirySectionOrder(t *testing.T) {
	reserved := entity.CountReservations(now, []entity.Reservation{
		{Category: "c5.large", Count: 1, End: inDays(0)},
		{Category: "c5.large", Count: 2, End: inDays(20)},
		{Category: "m5.large", Count: 3, End: inDays(4)},
	})

	r := NewTermio(PlainTermStyle())
	r.FormatTable("EC2 Instances", entity.NewCategoryCount(), reserved)
	var buf bytes.Buffer
	if err := r.Format(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	month := strings.Index(out, "in the next 30 days")
	week := strings.Index(out, "in the next 7 days")
	today := strings.Index(out, "The following will expire today")
	if month < 0 || week < 0 || today < 0 {
		t.Fatalf("missing expiry sections in:\n%s", out)
	}
	if !(month < week && week < today) {
		t.Errorf("sections out of order: month %d, week %d, today %d", month, week, today)
	}
}

func TestTermio_ColorsWhenEnabled(t *testing.T) {
	style := DefaultTermStyle()
	style.Excess.EnableColor()
	style.Shortfall.EnableColor()

	r := NewTermio(style)
	row := r.formatRow(entity.DeltaRow{Category: "m5.large", Reserved: 5, InUse: 3, Delta: 2}, false)
	if !strings.Contains(row, "\x1b[31m") {
		t.Errorf("excess row %q is not red", row)
	}
	row = r.formatRow(entity.DeltaRow{Category: "m5.large", Reserved: 1, InUse: 3, Delta: -2}, false)
	if !strings.Contains(row, "\x1b[34m") {
		t.Errorf("shortfall row %q is not blue", row)
	}
}

func TestTermio_FormatIsRepeatable(t *testing.T) {
	inUse, reserved := sampleCounts()
	r := NewTermio(PlainTermStyle())
	r.FormatTable("EC2 Instances", inUse, reserved)

	var first, second bytes.Buffer
	if err := r.Format(&first); err != nil {
		t.Fatal(err)
	}
	if err := r.Format(&second); err != nil {
		t.Fatal(err)
	}
	if first.String() != second.String() {
		t.Error("Format() output differs between calls")
	}
}

func TestCenter(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"ab", 6, "  ab  "},
		{"abc", 6, " abc  "},
		{"toolong", 4, "toolong"},
	}
	for _, tt := range tests {
		if got := center(tt.text, tt.width); got != tt.want {
			t.Errorf("center(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}
