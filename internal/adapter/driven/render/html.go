package render

import (
	"io"
	"strings"

	"github.com/dskyberg/instance-count/internal/domain/entity"
	"github.com/dskyberg/instance-count/pkg/indent"
	"github.com/dskyberg/instance-count/pkg/markup"
)

const (
	keyColClass    = "col s2 l1 left-align key-col"
	valueColClass  = "col s2 l1 right-align"
	iconColClass   = "col s1 m2 r1 left-align"
	titleColClass  = "col s8 l4 teal lighten-2 center-align"
	headerColClass = "header-col"
	totalColClass  = "total-col"
)

// HTML renders tables into a single Materialize styled document.
type HTML struct {
	style     HTMLStyle
	doc       *markup.Node
	container *markup.Node
}

func NewHTML(style HTMLStyle) *HTML {
	h := &HTML{
		style:     style,
		container: markup.Div(markup.Class("container")),
	}
	h.doc = markup.HTML().Has(h.head(), markup.Body().Has(h.container))
	return h
}

func (h *HTML) head() *markup.Node {
	head := markup.Head().Has(
		markup.Meta(markup.A("charset", "utf-8")),
		markup.Meta(
			markup.A("name", "viewport"),
			markup.A("content", "width=device-width"),
			markup.A("initial_hyphen_scale", 1),
		),
		markup.Title(h.style.Title),
	)
	for _, href := range h.style.FontLinks {
		head.Has(stylesheetLink(href))
	}
	if len(h.style.StyleSheets) > 0 {
		head.Has(markup.Comment("Compiled and minified CSS"))
		for _, href := range h.style.StyleSheets {
			head.Has(stylesheetLink(href))
		}
	}
	return head.Has(markup.StyleSheet(h.style.CSS))
}

func stylesheetLink(href string) *markup.Node {
	return markup.Link(markup.A("href", href), markup.A("rel", "stylesheet"))
}

func (h *HTML) FormatTable(title string, inUse *entity.CategoryCount, reserved *entity.ReservedCount) entity.Reconciliation {
	rec := entity.Reconcile(title, inUse, reserved)

	h.container.Has(markup.Div(markup.Class("row")).Has(
		markup.InlineDiv(markup.Class(titleColClass)).Has(rec.Title),
	))
	h.formatHeader()
	for _, row := range rec.Rows {
		h.formatRow(row, "")
	}
	h.formatRow(rec.Total, totalColClass)

	if !rec.HasExpiries {
		h.container.Has(markup.Div().Has(markup.Span().Has(noExpiriesMessage)))
		return rec
	}
	for _, section := range rec.Expiring {
		h.formatExpirySection(section)
	}
	return rec
}

func (h *HTML) Format(w io.Writer) error {
	return h.doc.Render(indent.New(w))
}

func (h *HTML) formatHeader() {
	up := markup.Icon(h.style.UpIcon,
		markup.Class(classes("material-icons md-15", h.style.ExcessClass)),
		markup.A("style", "font-size:22px;"),
	)
	down := markup.Icon(h.style.DownIcon,
		markup.Class(classes("material-icons", h.style.ShortfallClass)),
		markup.A("style", "font-size:22px;"),
	)
	h.container.Has(markup.Div(markup.Class("row")).Has(
		markup.InlineDiv(markup.Class(classes(keyColClass, headerColClass))).Has("Type"),
		markup.InlineDiv(markup.Class(classes(valueColClass, headerColClass))).Has("Reserved"),
		markup.InlineDiv(markup.Class(classes(valueColClass, headerColClass))).Has("In Use"),
		markup.InlineDiv(
			markup.Class(classes(valueColClass, headerColClass)),
			markup.A("style", "padding-right:0 !Important;"),
		).Has(up, down),
	))
}

func (h *HTML) formatRow(row entity.DeltaRow, extra string) {
	deltaClass := ""
	var icon *markup.Node
	switch row.Direction() {
	case entity.DirectionExcess:
		deltaClass = h.style.ExcessClass
		icon = h.indicator(h.style.UpIcon, deltaClass)
	case entity.DirectionShortfall:
		deltaClass = h.style.ShortfallClass
		icon = h.indicator(h.style.DownIcon, deltaClass)
	}

	h.container.Has(markup.Div(markup.Class("row")).Has(
		markup.InlineDiv(markup.Class(classes(keyColClass, extra))).Has(row.Category),
		markup.InlineDiv(markup.Class(classes(valueColClass, extra))).Has(row.Reserved),
		markup.InlineDiv(markup.Class(classes(valueColClass, extra))).Has(row.InUse),
		markup.InlineDiv(
			markup.Class(classes(valueColClass, extra, deltaClass)),
			markup.A("style", "padding-right:0 !Important;"),
		).Has(row.Delta),
		icon,
	))
}

func (h *HTML) indicator(name, colorClass string) *markup.Node {
	return markup.InlineDiv(
		markup.Class(iconColClass),
		markup.A("style", "padding-left:0 !Important;"),
	).Has(markup.Icon(name,
		markup.Class(classes("material-icons", colorClass)),
		markup.A("style", "font-size:15px;"),
	))
}

func (h *HTML) formatExpirySection(section entity.ExpirySection) {
	pre, emphasis, post := expiryBanner(section.Period)

	h.container.Has(
		markup.Div().Has(
			markup.Span().Has(expiryLead),
			markup.Span().Has(pre),
			markup.Span(markup.A("style", "font-weight:600;")).Has(emphasis),
			markup.Span().Has(post),
		),
		expiryRow("Type", "Number", headerColClass),
	)
	for _, row := range section.Rows {
		h.container.Has(expiryRow(row.Category, row.Count, ""))
	}
	h.container.Has(expiryRow("Total", section.Total, totalColClass))
}

func expiryRow(key string, value any, extra string) *markup.Node {
	return markup.Div(markup.Class("row")).Has(
		markup.InlineDiv(markup.Class(classes(keyColClass, extra))).Has(key),
		markup.InlineDiv(markup.Class(classes(valueColClass, extra))).Has(value),
	)
}

// classes joins class lists, skipping empty ones.
func classes(lists ...string) string {
	var all []string
	for _, l := range lists {
		all = append(all, strings.Fields(l)...)
	}
	return strings.Join(all, " ")
}
