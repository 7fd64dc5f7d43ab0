package render

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"hntui/internal/hn"
)

func flatColor(depth int) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffffff"}
}

func depths(ds ...int) []hn.Comment {
	out := make([]hn.Comment, len(ds))
	for i, d := range ds {
		out[i] = hn.Comment{ID: int64(i), Depth: d}
	}
	return out
}

func allIndices(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestComputeTreeContextSingleComment(t *testing.T) {
	comments := depths(0)
	ctx := ComputeTreeContext(comments, allIndices(1))
	if len(ctx) != 1 || len(ctx[0]) != 1 || ctx[0][0] != false {
		t.Fatalf("got %v", ctx)
	}
}

func TestComputeTreeContextSiblings(t *testing.T) {
	// three root comments: first two have a following sibling at depth 0,
	// the last does not.
	comments := depths(0, 0, 0)
	ctx := ComputeTreeContext(comments, allIndices(3))
	want := [][]bool{{true}, {true}, {false}}
	for i := range want {
		if len(ctx[i]) != len(want[i]) || ctx[i][0] != want[i][0] {
			t.Fatalf("row %d: got %v want %v", i, ctx[i], want[i])
		}
	}
}

func TestComputeTreeContextNested(t *testing.T) {
	// root
	//   child (depth 1), has a following sibling at depth 1
	//   child (depth 1), last at depth 1
	// root (depth 0), last at depth 0
	comments := depths(0, 1, 1, 0)
	ctx := ComputeTreeContext(comments, allIndices(4))

	if ctx[0][0] != true { // first root: another root follows
		t.Fatalf("root0 depth0: got %v", ctx[0])
	}
	if ctx[1][0] != true || ctx[1][1] != true { // first child: parent continues, sibling follows
		t.Fatalf("child0: got %v", ctx[1])
	}
	if ctx[2][0] != true || ctx[2][1] != false { // second child: parent continues, no more siblings
		t.Fatalf("child1: got %v", ctx[2])
	}
	if ctx[3][0] != false { // last root: nothing follows
		t.Fatalf("root1: got %v", ctx[3])
	}
}

func plainWidth(s string) int {
	return lipgloss.Width(s)
}

func TestBuildMetaTreePrefixRoot(t *testing.T) {
	if got := BuildMetaTreePrefix(0, nil, flatColor); got != "" {
		t.Fatalf("got %q, want empty", got)
	}
}

func TestBuildMetaTreePrefixWithSibling(t *testing.T) {
	got := BuildMetaTreePrefix(1, []bool{false, true}, flatColor)
	if plainWidth(got) != plainWidth(" ├─ ") {
		t.Fatalf("got %q width %d, want width of %q", got, plainWidth(got), " ├─ ")
	}
}

func TestBuildMetaTreePrefixLastSibling(t *testing.T) {
	got := BuildMetaTreePrefix(1, []bool{false, false}, flatColor)
	if plainWidth(got) != plainWidth(" └─ ") {
		t.Fatalf("got %q width %d, want width of %q", got, plainWidth(got), " └─ ")
	}
}

func TestBuildTextPrefixWithChildren(t *testing.T) {
	got := BuildTextPrefix(0, nil, true, flatColor)
	if plainWidth(got) != plainWidth(" │  ") {
		t.Fatalf("got %q width %d, want width of %q", got, plainWidth(got), " │  ")
	}
}

func TestBuildTextPrefixNoChildren(t *testing.T) {
	got := BuildTextPrefix(0, nil, false, flatColor)
	if plainWidth(got) != plainWidth("    ") {
		t.Fatalf("got %q width %d, want width of %q", got, plainWidth(got), "    ")
	}
}
