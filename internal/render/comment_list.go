package render

// Item is one entry in a viewport-scrolled list: a pre-rendered block of
// lines and its total height. Unlike a list that skips any item not
// fully visible, the viewport windowing here includes partial items at
// the top and bottom edge, matching how a terminal pager actually
// behaves when an item is taller than a single line.
type Item struct {
	Lines []string
}

func (it Item) height() int {
	return len(it.Lines)
}

// CenteringOffset computes the line offset that centers the selected
// item in a viewport of viewportHeight lines, clamped so the window
// never scrolls past the end of the content. Returns 0 if everything
// already fits within the viewport.
func CenteringOffset(selected int, items []Item, viewportHeight int) int {
	total := 0
	heights := make([]int, len(items))
	for i, it := range items {
		heights[i] = it.height()
		total += heights[i]
	}
	if total <= viewportHeight {
		return 0
	}
	if selected < 0 || selected >= len(items) {
		return 0
	}

	offsetBefore := 0
	for i := 0; i < selected; i++ {
		offsetBefore += heights[i]
	}
	selectedCenter := offsetBefore + heights[selected]/2

	ideal := selectedCenter - viewportHeight/2
	if ideal < 0 {
		ideal = 0
	}
	maxOffset := total - viewportHeight
	if ideal > maxOffset {
		ideal = maxOffset
	}
	return ideal
}

// Window renders the visible slice of lines for a viewport starting at
// offset with height viewportHeight, splitting the first and last items
// in the range if they only partially fit.
func Window(items []Item, offset, viewportHeight int) []string {
	var out []string
	cursor := 0
	for _, it := range items {
		lines := it.Lines
		itemStart := cursor
		itemEnd := cursor + len(lines)
		cursor = itemEnd

		if itemEnd <= offset || itemStart >= offset+viewportHeight {
			continue
		}
		for i, line := range lines {
			lineAt := itemStart + i
			if lineAt < offset || lineAt >= offset+viewportHeight {
				continue
			}
			out = append(out, line)
		}
		if len(out) >= viewportHeight {
			break
		}
	}
	return out
}
