package markup

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dskyberg/instance-count/pkg/indent"
)

func render(t *testing.T, n *Node) string {
	t.Helper()
	var buf bytes.Buffer
	if err := n.Render(indent.New(&buf)); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return buf.String()
}

func TestNew_EmptyTagPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("New(\"\") should panic")
		}
	}()
	New("", Options{})
}

func TestNode_BlockRendering(t *testing.T) {
	n := Div(Class("row")).Has("text", InlineDiv(Class("col")).Has("Type"))

	got := render(t, n)
	want := "<div class=\"row\">\n" +
		"\ttext\n" +
		"\t<div class=\"col\">Type</div>\n" +
		"</div>\n"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestNode_SingleLineNestsInline(t *testing.T) {
	n := InlineDiv(Class("col")).Has(Icon("arrow_upward", Class("material-icons")), 3)

	got := render(t, n)
	want := "<div class=\"col\"><i class=\"material-icons\">arrow_upward</i>3</div>\n"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
	if strings.Count(got, "\n") != 1 {
		t.Errorf("single-line node produced %d line breaks", strings.Count(got, "\n"))
	}
}

func TestNode_NestedBlockIndentation(t *testing.T) {
	n := HTML().Has(Body().Has(Div().Has(Span().Has("x"))))

	got := render(t, n)
	want := "<html>\n" +
		"\t<body>\n" +
		"\t\t<div>\n" +
		"\t\t\t<span>x</span>\n" +
		"\t\t</div>\n" +
		"\t</body>\n" +
		"</html>\n"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestNode_RestoresIndentLevel(t *testing.T) {
	var buf bytes.Buffer
	w := indent.New(&buf)
	w.Increase()
	w.Increase()

	n := Div().Has(Div().Has("a"), InlineDiv().Has("b"), Comment("c"))
	if err := n.Render(w); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if w.Level() != 2 {
		t.Errorf("Level() after Render = %d, want 2", w.Level())
	}
}

func TestNode_Attributes(t *testing.T) {
	tests := []struct {
		name string
		attr Attr
		want string
	}{
		{"bare", Bare("disabled"), "<p disabled></p>\n"},
		{"string", A("charset", "utf-8"), "<p charset=\"utf-8\"></p>\n"},
		{"number", A("initial_hyphen_scale", 1), "<p initial-scale=1></p>\n"},
		{"clazz", A("clazz", "container"), "<p class=\"container\"></p>\n"},
		{"clasz", A("clasz", "container"), "<p class=\"container\"></p>\n"},
		{"hyphen", A("data_hyphen_id", "7"), "<p data-id=\"7\"></p>\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := render(t, P(tt.attr)); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNode_AttributeOrderPreserved(t *testing.T) {
	n := Meta(A("name", "viewport"), A("content", "width=device-width"), A("initial_hyphen_scale", 1))

	got := render(t, n)
	want := "<meta name=\"viewport\" content=\"width=device-width\" initial-scale=1>\n"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestNode_VoidElements(t *testing.T) {
	got := render(t, Link(A("rel", "stylesheet")))
	if got != "<link rel=\"stylesheet\">\n" {
		t.Errorf("Render() = %q", got)
	}

	block := New("br", Options{OmitClose: true})
	if got := render(t, block); got != "<br>\n\n" {
		t.Errorf("Render() block void = %q, want %q", got, "<br>\n\n")
	}
}

func TestNode_HasSkipsNil(t *testing.T) {
	var missing *Node
	n := Div().Has("a", nil, missing, "b")

	if len(n.Children()) != 2 {
		t.Fatalf("Children() len = %d, want 2", len(n.Children()))
	}
	if n.Children()[0] != "a" || n.Children()[1] != "b" {
		t.Errorf("Children() = %v, want [a b]", n.Children())
	}
}

func TestNode_AddChildKeepsNil(t *testing.T) {
	n := Div()
	n.AddChild("x")
	if got := n.AddChild("y"); got != "y" {
		t.Errorf("AddChild() = %v, want y", got)
	}
	if len(n.Children()) != 2 {
		t.Errorf("Children() len = %d, want 2", len(n.Children()))
	}
}

func TestComment(t *testing.T) {
	t.Run("one line is block", func(t *testing.T) {
		c := Comment("Compiled and minified CSS")
		if c.SingleLine() {
			t.Error("SingleLine() = true, want false")
		}
		got := render(t, c)
		want := "<!-- \n\tCompiled and minified CSS\n-->\n"
		if got != want {
			t.Errorf("Render() = %q, want %q", got, want)
		}
	})

	t.Run("several lines are single-line", func(t *testing.T) {
		c := Comment("a", "b")
		if !c.SingleLine() {
			t.Error("SingleLine() = false, want true")
		}
		if got := render(t, c); got != "<!-- ab -->\n" {
			t.Errorf("Render() = %q, want %q", got, "<!-- ab -->\n")
		}
	})

	t.Run("inside single-line parent", func(t *testing.T) {
		got := render(t, Span().Has(Comment("x")))
		if got != "<span><!-- x --></span>\n" {
			t.Errorf("Render() = %q", got)
		}
	})
}

func TestStyleSheet(t *testing.T) {
	got := render(t, StyleSheet([]string{".a{", "   color: red;", "}"}))
	want := "<style>\n\t.a{\n\t   color: red;\n\t}\n</style>\n"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestNode_RenderTwiceIsStable(t *testing.T) {
	n := Div(Class("row")).Has(InlineDiv().Has("Total"), InlineDiv().Has(7))

	first := n.String()
	second := n.String()
	if first != second {
		t.Errorf("String() not stable: %q vs %q", first, second)
	}
}
