// Package render formats reconciliation tables for the terminal or as an
// HTML document.
package render

import (
	"fmt"

	"github.com/dskyberg/instance-count/internal/domain/entity"
	"github.com/dskyberg/instance-count/internal/domain/repository"
	"github.com/dskyberg/instance-count/internal/shared/types"
)

const (
	noExpiriesMessage = "No instances expire in the next 30 days"
	expiryLead        = "The following will expire "
)

// New returns the renderer for protocol with the default styling.
func New(protocol types.Protocol) (repository.ReportRenderer, error) {
	switch protocol {
	case types.ProtocolTermio:
		return NewTermio(DefaultTermStyle()), nil
	case types.ProtocolHTML:
		return NewHTML(DefaultHTMLStyle()), nil
	}
	return nil, fmt.Errorf("%w: %q", types.ErrUnknownProtocol, protocol)
}

// expiryBanner splits the banner for p into the text before, on and after
// the emphasized part.
func expiryBanner(p entity.Period) (pre, emphasis, post string) {
	switch p {
	case entity.PeriodMonth:
		return "in the next ", "30", " days"
	case entity.PeriodWeek:
		return "in the next ", "7", " days"
	}
	return "", "today", ""
}
