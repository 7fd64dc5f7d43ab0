package render

import (
	"strings"
	"testing"
)

func plainText(p Paragraph) string {
	var b strings.Builder
	for _, sp := range p.Spans {
		b.WriteString(sp.Text)
	}
	return b.String()
}

func TestParseCommentPlainParagraphs(t *testing.T) {
	paras := ParseComment("<p>first paragraph</p><p>second paragraph</p>")
	if len(paras) != 2 {
		t.Fatalf("got %d paragraphs, want 2", len(paras))
	}
	if plainText(paras[0]) != "first paragraph" {
		t.Fatalf("got %q", plainText(paras[0]))
	}
	if plainText(paras[1]) != "second paragraph" {
		t.Fatalf("got %q", plainText(paras[1]))
	}
}

func TestParseCommentQuote(t *testing.T) {
	paras := ParseComment("<p>&gt; quoted line</p>")
	if len(paras) != 1 || paras[0].Kind != ParagraphQuote {
		t.Fatalf("got %+v", paras)
	}
}

func TestParseCommentCodeBlock(t *testing.T) {
	paras := ParseComment("<p>before</p><pre><code>x := 1</code></pre>")
	if len(paras) != 2 {
		t.Fatalf("got %d paragraphs, want 2", len(paras))
	}
	if paras[1].Kind != ParagraphCodeBlock {
		t.Fatalf("got kind %v", paras[1].Kind)
	}
	if plainText(paras[1]) != "x := 1" {
		t.Fatalf("got %q", plainText(paras[1]))
	}
}

func TestParseCommentItalicAndLink(t *testing.T) {
	paras := ParseComment(`<p>see <a href="https://example.com">this</a> and <i>this</i></p>`)
	if len(paras) != 1 {
		t.Fatalf("got %d paragraphs", len(paras))
	}
	var hasLink, hasItalic bool
	for _, sp := range paras[0].Spans {
		if sp.Style == SpanLink && sp.URL == "https://example.com" {
			hasLink = true
		}
		if sp.Style == SpanItalic {
			hasItalic = true
		}
	}
	if !hasLink || !hasItalic {
		t.Fatalf("got %+v", paras[0].Spans)
	}
}

func TestParseCommentUnknownTagStripped(t *testing.T) {
	paras := ParseComment("<p>hello <weird>world</weird></p>")
	if len(paras) != 1 || plainText(paras[0]) != "hello world" {
		t.Fatalf("got %+v", paras)
	}
}

func TestWrapParagraphQuoteReservesMarker(t *testing.T) {
	p := Paragraph{Kind: ParagraphQuote, Spans: []Span{{Text: "a short quoted line", Style: SpanPlain}}}
	lines := WrapParagraph(p, 30)
	if len(lines) == 0 {
		t.Fatal("got no lines")
	}
	if !strings.HasPrefix(lines[0], "> ") {
		t.Fatalf("got %q, want \"> \" prefix", lines[0])
	}
}

func TestWrapParagraphClampsMinWidth(t *testing.T) {
	p := Paragraph{Kind: ParagraphOrdinary, Spans: []Span{{Text: "word", Style: SpanPlain}}}
	lines := WrapParagraph(p, 1)
	if len(lines) == 0 {
		t.Fatal("got no lines")
	}
}
