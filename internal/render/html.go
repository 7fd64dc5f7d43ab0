package render

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// ParagraphKind classifies a block of comment text for styling purposes.
type ParagraphKind int

const (
	ParagraphOrdinary ParagraphKind = iota
	ParagraphQuote
	ParagraphCodeBlock
)

// SpanStyle is the inline style carried by a run of text within an
// ordinary paragraph.
type SpanStyle int

const (
	SpanPlain SpanStyle = iota
	SpanItalic
	SpanCode
	SpanLink
)

// Span is one styled run of text within a paragraph.
type Span struct {
	Text  string
	Style SpanStyle
	URL   string // only set when Style == SpanLink
}

// Paragraph is one block-level unit of a rendered comment body.
type Paragraph struct {
	Kind  ParagraphKind
	Spans []Span // for ParagraphCodeBlock, a single SpanPlain span holds the raw text
}

// ParseComment parses a comment's HTML body into a sequence of
// paragraphs. Unknown tags are stripped but their inner text kept;
// known entities are decoded by the underlying HTML parser.
func ParseComment(body string) []Paragraph {
	doc, err := html.Parse(strings.NewReader("<div>" + body + "</div>"))
	if err != nil {
		return []Paragraph{{Kind: ParagraphOrdinary, Spans: []Span{{Text: body, Style: SpanPlain}}}}
	}

	container := findDiv(doc)
	if container == nil {
		return nil
	}

	var paragraphs []Paragraph
	var current []Span

	flush := func() {
		if len(current) == 0 {
			return
		}
		kind := ParagraphOrdinary
		if first := strings.TrimLeft(current[0].Text, " "); strings.HasPrefix(first, "&gt;") || strings.HasPrefix(first, ">") {
			kind = ParagraphQuote
		}
		paragraphs = append(paragraphs, Paragraph{Kind: kind, Spans: current})
		current = nil
	}

	var walk func(n *html.Node, style SpanStyle, linkURL string)
	walk = func(n *html.Node, style SpanStyle, linkURL string) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			switch c.Type {
			case html.TextNode:
				if c.Data == "" {
					continue
				}
				current = append(current, Span{Text: c.Data, Style: style, URL: linkURL})
			case html.ElementNode:
				switch c.Data {
				case "p":
					flush()
					walk(c, SpanPlain, "")
					flush()
				case "pre":
					flush()
					paragraphs = append(paragraphs, Paragraph{
						Kind:  ParagraphCodeBlock,
						Spans: []Span{{Text: collectText(c), Style: SpanCode}},
					})
				case "i", "em", "b", "strong":
					walk(c, SpanItalic, "")
				case "code":
					walk(c, SpanCode, "")
				case "a":
					walk(c, SpanLink, attr(c, "href"))
				default:
					walk(c, style, linkURL)
				}
			}
		}
	}

	walk(container, SpanPlain, "")
	flush()
	return paragraphs
}

func findDiv(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "div" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findDiv(c); found != nil {
			return found
		}
	}
	return nil
}

func collectText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// WrapParagraph word-wraps a paragraph's rendered text to the given
// available width (clamped to a minimum of 20, with 2 columns reserved
// for quote paragraphs' "> " marker), returning the finished, styled
// lines ready to draw.
func WrapParagraph(p Paragraph, availableWidth int) []string {
	if availableWidth < 20 {
		availableWidth = 20
	}
	width := availableWidth
	if p.Kind == ParagraphQuote {
		width -= 2
		if width < 20 {
			width = 20
		}
	}

	if p.Kind == ParagraphCodeBlock {
		text := p.Spans[0].Text
		wrapped := wordwrap.String(text, width)
		lines := strings.Split(wrapped, "\n")
		style := lipgloss.NewStyle().Faint(false)
		for i, l := range lines {
			lines[i] = style.Render(l)
		}
		return lines
	}

	var b strings.Builder
	for _, sp := range p.Spans {
		b.WriteString(renderSpan(sp))
	}
	wrapped := wordwrap.String(b.String(), width)
	lines := strings.Split(wrapped, "\n")

	if p.Kind == ParagraphQuote {
		for i, l := range lines {
			lines[i] = "> " + l
		}
	}
	return lines
}

func renderSpan(sp Span) string {
	switch sp.Style {
	case SpanItalic:
		return lipgloss.NewStyle().Italic(true).Render(sp.Text)
	case SpanCode:
		return lipgloss.NewStyle().Render(sp.Text)
	case SpanLink:
		text := sp.Text
		if sp.URL != "" && sp.URL != text {
			text = text + " (" + sp.URL + ")"
		}
		return lipgloss.NewStyle().Underline(true).Render(text)
	default:
		return sp.Text
	}
}
