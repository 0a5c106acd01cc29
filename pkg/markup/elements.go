package markup

// HTML returns the document root element.
func HTML(attrs ...Attr) *Node {
	return New("html", Options{Attrs: attrs})
}

func Head(attrs ...Attr) *Node {
	return New("head", Options{Attrs: attrs})
}

func Body(attrs ...Attr) *Node {
	return New("body", Options{Attrs: attrs})
}

func Script(attrs ...Attr) *Node {
	return New("script", Options{Attrs: attrs})
}

// Div returns a block div.
func Div(attrs ...Attr) *Node {
	return New("div", Options{Attrs: attrs})
}

// InlineDiv returns a div rendered on a single line.
func InlineDiv(attrs ...Attr) *Node {
	return New("div", Options{SingleLine: true, Attrs: attrs})
}

// Span is always single-line.
func Span(attrs ...Attr) *Node {
	return New("span", Options{SingleLine: true, Attrs: attrs})
}

func P(attrs ...Attr) *Node {
	return New("p", Options{SingleLine: true, Attrs: attrs})
}

// Meta and Link are void elements.
func Meta(attrs ...Attr) *Node {
	return New("meta", Options{SingleLine: true, OmitClose: true, Attrs: attrs})
}

func Link(attrs ...Attr) *Node {
	return New("link", Options{SingleLine: true, OmitClose: true, Attrs: attrs})
}

// Title returns a single-line title element holding text.
func Title(text string, attrs ...Attr) *Node {
	return New("title", Options{SingleLine: true, Attrs: attrs}).Has(text)
}

// StyleSheet returns a style element with one child per CSS line.
func StyleSheet(lines []string, attrs ...Attr) *Node {
	n := New("style", Options{Attrs: attrs})
	for _, line := range lines {
		n.AddChild(line)
	}
	return n
}

// Icon returns an <i> element whose text is the icon ligature name.
func Icon(name string, attrs ...Attr) *Node {
	return New("i", Options{SingleLine: true, Attrs: attrs}).Has(name)
}
