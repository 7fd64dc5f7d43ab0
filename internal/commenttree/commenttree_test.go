package commenttree

import (
	"reflect"
	"testing"

	"hntui/internal/hn"
)

func sampleTree() []hn.Comment {
	return []hn.Comment{
		{ID: 1, Depth: 0, Kids: []int64{2, 3}},
		{ID: 2, Depth: 1, Kids: []int64{4}},
		{ID: 4, Depth: 2},
		{ID: 3, Depth: 1},
		{ID: 5, Depth: 0, Kids: []int64{6}},
		{ID: 6, Depth: 1},
	}
}

func TestNewTreeIsEmpty(t *testing.T) {
	tree := New()
	if !tree.IsEmpty() {
		t.Fatal("expected new tree to be empty")
	}
	if tree.Len() != 0 {
		t.Fatalf("expected len 0, got %d", tree.Len())
	}
}

func TestSetComments(t *testing.T) {
	tree := New()
	tree.Set(sampleTree())

	if tree.IsEmpty() {
		t.Fatal("expected tree to be non-empty")
	}
	if tree.Len() != 6 {
		t.Fatalf("expected len 6, got %d", tree.Len())
	}
}

func TestClear(t *testing.T) {
	tree := New()
	tree.Set(sampleTree())
	tree.Expand(1)
	tree.Clear()

	if !tree.IsEmpty() {
		t.Fatal("expected tree to be empty after clear")
	}
	if tree.IsExpanded(1) {
		t.Fatal("expected expansion state cleared")
	}
}

func TestVisibleIndicesAllCollapsed(t *testing.T) {
	tree := New()
	tree.Set(sampleTree())

	got := tree.VisibleIndices()
	want := []int{0, 4}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestVisibleIndicesWithExpansion(t *testing.T) {
	tree := New()
	tree.Set(sampleTree())
	tree.Expand(1)

	got := tree.VisibleIndices()
	want := []int{0, 1, 3, 4}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestVisibleIndicesDeepExpansion(t *testing.T) {
	tree := New()
	tree.Set(sampleTree())
	tree.Expand(1)
	tree.Expand(2)

	got := tree.VisibleIndices()
	want := []int{0, 1, 2, 3, 4}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestExpandCollapse(t *testing.T) {
	tree := New()
	tree.Set(sampleTree())

	if tree.IsExpanded(1) {
		t.Fatal("expected 1 not expanded initially")
	}
	if !tree.Expand(1) {
		t.Fatal("expected Expand(1) to report newly expanded")
	}
	if !tree.IsExpanded(1) {
		t.Fatal("expected 1 expanded")
	}
	if tree.Expand(1) {
		t.Fatal("expected Expand(1) to report already expanded")
	}

	if !tree.Collapse(1) {
		t.Fatal("expected Collapse(1) to report previously expanded")
	}
	if tree.IsExpanded(1) {
		t.Fatal("expected 1 collapsed")
	}
	if tree.Collapse(1) {
		t.Fatal("expected Collapse(1) to report already collapsed")
	}
}

func TestExpandSubtree(t *testing.T) {
	tree := New()
	tree.Set(sampleTree())
	tree.ExpandSubtree(0)

	if !tree.IsExpanded(1) {
		t.Fatal("expected 1 expanded")
	}
	if !tree.IsExpanded(2) {
		t.Fatal("expected 2 expanded")
	}
	if tree.IsExpanded(5) {
		t.Fatal("expected 5 unaffected")
	}
}

func TestCollapseSubtree(t *testing.T) {
	tree := New()
	tree.Set(sampleTree())
	tree.ExpandAll()
	tree.CollapseSubtree(0)

	if tree.IsExpanded(1) {
		t.Fatal("expected 1 collapsed")
	}
	if tree.IsExpanded(2) {
		t.Fatal("expected 2 collapsed")
	}
	if !tree.IsExpanded(5) {
		t.Fatal("expected 5 unaffected")
	}
}

func TestExpandAll(t *testing.T) {
	tree := New()
	tree.Set(sampleTree())
	tree.ExpandAll()

	for _, id := range []int64{1, 2, 5} {
		if !tree.IsExpanded(id) {
			t.Fatalf("expected %d expanded", id)
		}
	}
}

func TestCollapseAll(t *testing.T) {
	tree := New()
	tree.Set(sampleTree())
	tree.ExpandAll()
	tree.CollapseAll()

	for _, id := range []int64{1, 2, 5} {
		if tree.IsExpanded(id) {
			t.Fatalf("expected %d collapsed", id)
		}
	}
}

func TestFindTopLevelAncestorAtRoot(t *testing.T) {
	tree := New()
	tree.Set(sampleTree())
	tree.Expand(1)

	visible := tree.VisibleIndices()
	visIdx, flatIdx, ok := tree.FindTopLevelAncestor(visible, 0)
	if !ok || visIdx != 0 || flatIdx != 0 {
		t.Fatalf("got (%d, %d, %v), want (0, 0, true)", visIdx, flatIdx, ok)
	}
}

func TestFindTopLevelAncestorNested(t *testing.T) {
	tree := New()
	tree.Set(sampleTree())
	tree.Expand(1)
	tree.Expand(2)

	visible := tree.VisibleIndices() // [0, 1, 2, 3, 4]
	visIdx, flatIdx, ok := tree.FindTopLevelAncestor(visible, 2)
	if !ok || visIdx != 0 || flatIdx != 0 {
		t.Fatalf("got (%d, %d, %v), want (0, 0, true)", visIdx, flatIdx, ok)
	}
}

func TestFindParentVisibleIndex(t *testing.T) {
	tree := New()
	tree.Set(sampleTree())
	tree.Expand(1)
	tree.Expand(2)

	visible := tree.VisibleIndices() // [0, 1, 2, 3, 4]

	if idx, ok := tree.FindParentVisibleIndex(visible, 2); !ok || idx != 1 {
		t.Fatalf("got (%d, %v), want (1, true)", idx, ok)
	}
	if idx, ok := tree.FindParentVisibleIndex(visible, 1); !ok || idx != 0 {
		t.Fatalf("got (%d, %v), want (0, true)", idx, ok)
	}
	if _, ok := tree.FindParentVisibleIndex(visible, 0); ok {
		t.Fatal("expected no parent for depth-0 comment")
	}
}

func TestVisibleCount(t *testing.T) {
	tree := New()
	tree.Set(sampleTree())

	if got := tree.VisibleCount(); got != 2 {
		t.Fatalf("got %d, want 2", got)
	}
	tree.Expand(1)
	if got := tree.VisibleCount(); got != 4 {
		t.Fatalf("got %d, want 4", got)
	}
	tree.ExpandAll()
	if got := tree.VisibleCount(); got != 6 {
		t.Fatalf("got %d, want 6", got)
	}
}
