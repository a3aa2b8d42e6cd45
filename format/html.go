package format

import (
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML is a format for simple HTML output. A sequence is rendered as an
// ordered list; items of the marked range carry class "max".
//
//	<ol class="kadane" start="0"><li>-2</li>…<li class="max">4</li>…</ol>
type HTML struct {
	list *html.Node
}

// NewHTML creates an HTML formatter.
func NewHTML() *HTML {
	return &HTML{}
}

// Preamble starts a new list node.
func (h *HTML) Preamble(_ Layout, _ io.Writer) {
	h.list = &html.Node{
		Type:     html.ElementNode,
		Data:     "ol",
		DataAtom: atom.Ol,
		Attr: []html.Attribute{
			{Key: "class", Val: "kadane"},
			{Key: "start", Val: "0"},
		},
	}
}

// Element appends a list item.
func (h *HTML) Element(text string, _ int, mark Mark, _ io.Writer) {
	li := &html.Node{Type: html.ElementNode, Data: "li", DataAtom: atom.Li}
	if mark&Inside != 0 {
		li.Attr = []html.Attribute{{Key: "class", Val: "max"}}
	}
	li.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	h.list.AppendChild(li)
}

// Separator does nothing, list items need no separation.
func (h *HTML) Separator(_ io.Writer) {}

// Newline does nothing, line wrapping is left to the browser.
func (h *HTML) Newline(_ io.Writer) {}

// Postamble renders the list to w. Write errors are recorded by the driver.
func (h *HTML) Postamble(w io.Writer) {
	if h.list == nil {
		return
	}
	if err := html.Render(w, h.list); err != nil {
		tracer().Errorf("format: cannot render HTML: %v", err)
	}
	h.list = nil
}
