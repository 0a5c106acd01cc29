package render

import "github.com/fatih/color"

// TermStyle controls colors and glyphs of the terminal renderer.
type TermStyle struct {
	Bold      *color.Color
	Excess    *color.Color
	Shortfall *color.Color
	Neutral   *color.Color

	Up        string
	Down      string
	HLine     string
	Separator string
}

// DefaultTermStyle paints excess capacity red and shortfalls blue.
func DefaultTermStyle() TermStyle {
	return TermStyle{
		Bold:      color.New(color.Bold),
		Excess:    color.New(color.FgRed),
		Shortfall: color.New(color.FgBlue),
		Neutral:   color.New(color.FgWhite),
		Up:        "↑",
		Down:      "↓",
		HLine:     "─",
		Separator: "/",
	}
}

// PlainTermStyle is DefaultTermStyle without escape sequences.
func PlainTermStyle() TermStyle {
	s := DefaultTermStyle()
	for _, c := range []*color.Color{s.Bold, s.Excess, s.Shortfall, s.Neutral} {
		c.DisableColor()
	}
	return s
}

// HTMLStyle holds the document head and the classes used for indicators.
type HTMLStyle struct {
	Title       string
	FontLinks   []string
	StyleSheets []string
	CSS         []string

	ExcessClass    string
	ShortfallClass string
	UpIcon         string
	DownIcon       string
}

var defaultCSS = []string{
	".header-col{",
	"   border-bottom: 3px solid black;",
	"}",
	".total-col{",
	"   border-top: 3px solid black;",
	"}",
	".key-col{",
	"   font-weight: 600;",
	"}",
	".arrow-col{",
	"   font-size: 1rem;",
	"}",
}

// DefaultHTMLStyle uses Materialize with Material Icons.
func DefaultHTMLStyle() HTMLStyle {
	return HTMLStyle{
		Title: "Instance Count",
		FontLinks: []string{
			"https://fonts.googleapis.com/icon?family=Material+Icons",
			"https://fonts.googleapis.com/css?family=Roboto",
		},
		StyleSheets: []string{
			"https://cdnjs.cloudflare.com/ajax/libs/materialize/0.100.1/css/materialize.min.css",
		},
		CSS:            append([]string(nil), defaultCSS...),
		ExcessClass:    "red-text",
		ShortfallClass: "blue-text",
		UpIcon:         "arrow_upward",
		DownIcon:       "arrow_downward",
	}
}
