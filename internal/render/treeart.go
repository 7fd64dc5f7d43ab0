// Package render turns a story or a flattened comment thread into the
// strings the Controller draws onto its cell canvas: ASCII tree-art
// prefixes for nested comments, HTML-to-terminal text rendering, and the
// partial-item list windowing used by the comment viewport.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"hntui/internal/hn"
)

// DepthColorFunc resolves the accent color used to draw tree-art at a
// given nesting depth. internal/ui/theme.DepthColor has this shape.
type DepthColorFunc func(depth int) lipgloss.AdaptiveColor

// ComputeTreeContext reports, for each visible comment, whether a later
// visible comment continues at each ancestor depth up to its own. A true
// at index d means some comment further down the visible list still has
// a sibling open at depth d, so a tree-art column there should draw a
// continuation bar instead of blank space.
func ComputeTreeContext(comments []hn.Comment, visibleIndices []int) [][]bool {
	out := make([][]bool, len(visibleIndices))
	for visIdx, actualIdx := range visibleIndices {
		depth := comments[actualIdx].Depth
		row := make([]bool, depth+1)
		for checkDepth := 0; checkDepth <= depth; checkDepth++ {
			row[checkDepth] = hasMoreAtDepth(comments, visibleIndices[visIdx+1:], checkDepth)
		}
		out[visIdx] = row
	}
	return out
}

func hasMoreAtDepth(comments []hn.Comment, rest []int, checkDepth int) bool {
	for _, futureIdx := range rest {
		futureDepth := comments[futureIdx].Depth
		if futureDepth == checkDepth {
			return true
		}
		if futureDepth < checkDepth {
			return false
		}
	}
	return false
}

func atOrFalse(bars []bool, i int) bool {
	if i < 0 || i >= len(bars) {
		return false
	}
	return bars[i]
}

// BuildMetaTreePrefix builds the tree-art prefix for a comment's meta line
// (author, time): ancestor continuation bars for depths 1..depth-1, then a
// branch connector (├─ if more siblings follow at this depth, else └─) for
// depth itself. Returns "" at depth 0 (root comments draw no prefix).
func BuildMetaTreePrefix(depth int, hasMore []bool, depthColor DepthColorFunc) string {
	if depth == 0 {
		return ""
	}
	var b strings.Builder
	for d := 1; d < depth; d++ {
		text := "    "
		if atOrFalse(hasMore, d) {
			text = " │  "
		}
		b.WriteString(lipgloss.NewStyle().Foreground(depthColor(d)).Render(text))
	}
	connector := " └─ "
	if atOrFalse(hasMore, depth) {
		connector = " ├─ "
	}
	b.WriteString(lipgloss.NewStyle().Foreground(depthColor(depth)).Render(connector))
	return b.String()
}

// BuildTextPrefix builds the tree-art prefix for a comment's body lines:
// ancestor continuation for depths 1..depth, then the comment's own
// continuation column (drawn if it has visible children, colored one
// level deeper than its own depth).
func BuildTextPrefix(depth int, hasMore []bool, hasChildren bool, depthColor DepthColorFunc) string {
	var b strings.Builder
	for d := 1; d <= depth; d++ {
		text := "    "
		if atOrFalse(hasMore, d) {
			text = " │  "
		}
		b.WriteString(lipgloss.NewStyle().Foreground(depthColor(d)).Render(text))
	}
	childText := "    "
	if hasChildren {
		childText = " │  "
	}
	b.WriteString(lipgloss.NewStyle().Foreground(depthColor(depth + 1)).Render(childText))
	return b.String()
}

// BuildEmptyLinePrefix builds the tree-art prefix for the blank spacer
// line drawn after a comment: continuation bars but no connector, plus a
// half-height continuation mark if the comment has visible children.
func BuildEmptyLinePrefix(depth int, hasMore []bool, hasChildren bool, depthColor DepthColorFunc) string {
	var b strings.Builder
	for d := 1; d <= depth; d++ {
		text := "    "
		if atOrFalse(hasMore, d) {
			text = " │  "
		}
		b.WriteString(lipgloss.NewStyle().Foreground(depthColor(d)).Render(text))
	}
	if hasChildren {
		b.WriteString(lipgloss.NewStyle().Foreground(depthColor(depth + 1)).Render(" │"))
	}
	return b.String()
}
