package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"hntui/internal/hn"
	"hntui/internal/render"
	"hntui/internal/ui/theme"
)

func (m *App) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var base string
	if m.view == ViewStories {
		base = m.renderStoriesView()
	} else {
		base = m.renderCommentsView()
	}

	if m.overlay == OverlayNone {
		return base
	}

	canvas := NewCanvas(m.width, m.height)
	canvas.DrawStringAt(0, 0, base)
	overlay := m.renderOverlay()
	if overlay != nil {
		canvas.OverlayCanvas(overlay)
	}
	return canvas.Render()
}

// renderOverlay builds the Canvas for the active modal layer, or nil when
// there is nothing to draw over the base view.
func (m *App) renderOverlay() *Canvas {
	switch m.overlay {
	case OverlayHelp:
		canvas := NewCanvas(m.width, m.height)
		canvas.DrawStringAt(0, 0, renderHelpOverlay(m.keys, m.width, m.height))
		return canvas
	case OverlayTheme:
		return m.renderThemeLayer().Render()
	case OverlayDebug:
		return m.renderDebugLayer().Render()
	default:
		return nil
	}
}

func (m *App) renderStoriesView() string {
	t := theme.Current()

	tabs := m.renderFeedTabs()
	listHeight := clampDimension(m.height-layoutOverheadRows, 1, m.height)
	body := m.renderStoriesList(listHeight)
	status := m.renderStatusLine()

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderNormal()).
		Width(clampDimension(m.width-2, 1, m.width)).
		Height(listHeight)

	return lipgloss.JoinVertical(lipgloss.Left, tabs, borderStyle.Render(body), status)
}

func (m *App) renderFeedTabs() string {
	t := theme.Current()
	var parts []string
	for i, feed := range hn.AllFeeds {
		label := fmt.Sprintf(" %d:%s ", i+1, feed.Label())
		style := lipgloss.NewStyle().Foreground(t.TextMuted())
		if feed == m.feed {
			style = lipgloss.NewStyle().Foreground(t.Primary()).Bold(true)
		}
		parts = append(parts, style.Render(label))
	}
	tabs := strings.Join(parts, "")
	if m.storiesLoad.showSpinner(time.Now()) {
		tabs += " " + spinnerGlyph(time.Now())
	}
	return tabs
}

func spinnerGlyph(now time.Time) string {
	frames := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	idx := int(now.UnixMilli()/100) % len(frames)
	return frames[idx]
}

func (m *App) renderStoriesList(height int) string {
	if len(m.stories) == 0 {
		if m.storiesLoad.Loading {
			return "Loading stories..."
		}
		if m.storiesLoad.Error != "" {
			return "Error: " + m.storiesLoad.Error
		}
		return "No stories."
	}

	scoreWidth, countWidth := storyColumnWidths(m.stories)
	items := make([]render.Item, len(m.stories))
	for i, story := range m.stories {
		items[i] = render.Item{Lines: []string{m.renderStoryRow(story, i == m.selectedIdx, scoreWidth, countWidth)}}
	}
	offset := render.CenteringOffset(m.selectedIdx, items, height)
	lines := render.Window(items, offset, height)
	return strings.Join(lines, "\n")
}

func storyColumnWidths(stories []hn.Story) (scoreWidth, countWidth int) {
	for _, s := range stories {
		if w := len(strconv.Itoa(s.Score)); w > scoreWidth {
			scoreWidth = w
		}
		if w := len(strconv.Itoa(s.Descendants)); w > countWidth {
			countWidth = w
		}
	}
	return
}

func (m *App) renderStoryRow(story hn.Story, selected bool, scoreWidth, countWidth int) string {
	t := theme.Current()
	var textTheme theme.Theme = t
	if story.ReadAt != nil && !selected {
		textTheme = t.Dimmed()
	}

	score := lipgloss.NewStyle().Foreground(t.Secondary()).Width(scoreWidth).Align(lipgloss.Right).Render(strconv.Itoa(story.Score))
	favMark := " "
	if story.FavoritedAt != nil {
		favMark = "★"
	}
	title := lipgloss.NewStyle().Foreground(textTheme.Text()).Render(story.Title)
	domain := ""
	if d := story.Domain(); d != "" {
		domain = lipgloss.NewStyle().Foreground(textTheme.TextMuted()).Render(" (" + d + ")")
	}
	meta := lipgloss.NewStyle().Foreground(textTheme.TextMuted()).Render(
		fmt.Sprintf("by %s %s", story.By, FormatRelativeTime(time.Unix(story.Time, 0))))
	count := lipgloss.NewStyle().Foreground(t.Info()).Width(countWidth).Align(lipgloss.Right).Render(strconv.Itoa(story.Descendants))

	line1 := fmt.Sprintf("%s %s %s%s", score, favMark, title, domain)
	line2 := fmt.Sprintf("  %s  %s comments", meta, count)

	rowStyle := lipgloss.NewStyle()
	if selected {
		rowStyle = rowStyle.Background(t.BackgroundSecondary())
	}
	return rowStyle.Render(line1) + "\n" + rowStyle.Render(line2)
}

func (m *App) renderStatusLine() string {
	t := theme.Current()
	footer := m.renderFooter()

	var parts []string
	parts = append(parts, m.feed.Label())
	if len(m.stories) > 0 {
		parts = append(parts, fmt.Sprintf("%d/%d", m.selectedIdx+1, len(m.stories)))
	}
	if m.lastFlash != "" && time.Since(m.lastFlashTime) < 2*time.Second {
		parts = append(parts, m.lastFlash)
	}
	status := lipgloss.NewStyle().Foreground(t.TextMuted()).Render(strings.Join(parts, "  •  "))

	spacing := m.width - lipgloss.Width(footer) - lipgloss.Width(status)
	if spacing < 2 {
		spacing = 2
	}
	return footer + strings.Repeat(" ", spacing) + status
}

func (m *App) renderCommentsView() string {
	t := theme.Current()

	header := m.renderCommentsHeader()
	listHeight := clampDimension(m.height-layoutOverheadRows, 1, m.height)
	body := m.renderCommentsList(listHeight)

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderFocused()).
		Width(clampDimension(m.width-2, 1, m.width)).
		Height(listHeight)

	status := m.renderStatusLine()
	return lipgloss.JoinVertical(lipgloss.Left, header, borderStyle.Render(body), status)
}

func (m *App) renderCommentsHeader() string {
	t := theme.Current()
	title := lipgloss.NewStyle().Foreground(t.Primary()).Bold(true).Render(m.commentStory.Title)
	if m.commentsLoad.showSpinner(time.Now()) {
		title += " " + spinnerGlyph(time.Now())
	}
	return title
}

func (m *App) renderCommentsList(height int) string {
	if m.commentTree.IsEmpty() {
		if m.commentsLoad.Loading {
			return "Loading comments..."
		}
		if m.commentsLoad.Error != "" {
			return "Error: " + m.commentsLoad.Error
		}
		return "No comments."
	}

	visible := m.commentTree.VisibleIndices()
	comments := m.commentTree.Comments()
	treeContext := render.ComputeTreeContext(comments, visible)
	width := clampDimension(m.width-6, 20, m.width)

	items := make([]render.Item, len(visible))
	for visIdx, flatIdx := range visible {
		comment := comments[flatIdx]
		hasMore := treeContext[visIdx]
		hasChildren := visIdx+1 < len(visible) && comments[visible[visIdx+1]].Depth > comment.Depth
		items[visIdx] = render.Item{Lines: m.renderCommentBlock(comment, hasMore, hasChildren, visIdx == m.commentSel, width)}
	}

	offset := render.CenteringOffset(m.commentSel, items, height)
	lines := render.Window(items, offset, height)
	return strings.Join(lines, "\n")
}

func (m *App) renderCommentBlock(comment hn.Comment, hasMore []bool, hasChildren, selected bool, width int) []string {
	t := theme.Current()
	depthColor := func(depth int) lipgloss.AdaptiveColor { return theme.DepthColor(t, depth) }

	metaPrefix := render.BuildMetaTreePrefix(comment.Depth, hasMore, depthColor)
	favMark := ""
	if comment.FavoritedAt != nil {
		favMark = " ★"
	}
	meta := lipgloss.NewStyle().Foreground(t.TextMuted()).Render(
		fmt.Sprintf("%s %s%s", comment.By, FormatRelativeTime(time.Unix(comment.Time, 0)), favMark))
	metaLine := metaPrefix + meta

	textWidth := clampDimension(width-lipgloss.Width(metaPrefix), 20, width)
	var lines []string
	lines = append(lines, metaLine)

	for _, p := range render.ParseComment(comment.Text) {
		textPrefix := render.BuildTextPrefix(comment.Depth, hasMore, hasChildren, depthColor)
		for _, wrapped := range render.WrapParagraph(p, textWidth) {
			lines = append(lines, textPrefix+wrapped)
		}
	}

	emptyPrefix := render.BuildEmptyLinePrefix(comment.Depth, hasMore, hasChildren, depthColor)
	lines = append(lines, emptyPrefix)

	if selected {
		style := lipgloss.NewStyle().Background(t.BackgroundSecondary())
		for i, l := range lines {
			lines[i] = style.Render(l)
		}
	}
	return lines
}
