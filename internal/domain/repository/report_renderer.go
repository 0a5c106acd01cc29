package repository

import (
	"io"

	"github.com/dskyberg/instance-count/internal/domain/entity"
)

// ReportRenderer accumulates reconciliation tables and writes them out in one pass.
type ReportRenderer interface {
	// FormatTable appends the table for one resource family and returns
	// the reconciliation it was built from.
	FormatTable(title string, inUse *entity.CategoryCount, reserved *entity.ReservedCount) entity.Reconciliation
	// Format writes everything appended so far. It can be called again.
	Format(w io.Writer) error
}
