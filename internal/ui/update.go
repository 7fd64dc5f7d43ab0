package ui

import (
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/browser"

	"hntui/internal/debug"
	"hntui/internal/hn"
	"hntui/internal/ui/theme"
)

// Update is the Bubble Tea dispatch. It handles the result channel, the
// render tick, window resizes, and keyboard input, routed first through
// whatever overlay is open and otherwise to the active view.
func (m *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.ready = true
		return m, nil

	case tickMsg:
		return m, scheduleTick()

	case storiesResultMsg:
		return m.handleStoriesResult(msg)

	case commentsResultMsg:
		return m.handleCommentsResult(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *App) handleStoriesResult(msg storiesResultMsg) (tea.Model, tea.Cmd) {
	if msg.generation != m.generation || msg.feed != m.feed {
		debug.Logf("stories result discarded (stale): feed=%v page=%d generation=%d (current=%d)", msg.feed, msg.page, msg.generation, m.generation)
		return m, m.waitForResult()
	}

	if msg.page == 0 {
		m.storiesLoad.Loading = false
	} else {
		m.storiesLoad.LoadingMore = false
	}

	if msg.err != nil {
		m.storiesLoad.Error = msg.err.Error()
		return m, m.waitForResult()
	}

	if msg.page == 0 {
		m.stories = msg.stories
	} else {
		m.stories = append(m.stories, msg.stories...)
	}
	m.storiesPage = msg.page
	m.storiesLoad.HasMore = msg.hasMore
	m.selectedIdx = clampIndex(m.selectedIdx, len(m.stories))

	var cmd tea.Cmd
	if m.shouldFillViewport() || m.shouldLoadMore() {
		m.storiesLoad.startLoading(true)
		cmd = m.loadStoriesCmd(m.feed, m.storiesPage+1, m.generation, false)
	}
	return m, tea.Batch(cmd, m.waitForResult())
}

func (m *App) handleCommentsResult(msg commentsResultMsg) (tea.Model, tea.Cmd) {
	if m.view != ViewComments || msg.storyID != m.commentStory.ID {
		debug.Logf("comments result discarded (wrong view): storyID=%d (current=%d)", msg.storyID, m.commentStory.ID)
		return m, m.waitForResult()
	}

	m.commentsLoad.Loading = false
	if msg.err != nil {
		m.commentsLoad.Error = msg.err.Error()
		return m, m.waitForResult()
	}

	m.commentTree.Set(msg.comments)
	m.commentSel = 0
	m.commentScroll = 0
	return m, m.waitForResult()
}

func (m *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.overlay != OverlayNone {
		return m.handleOverlayKey(msg)
	}

	switch {
	case matchesKey(msg, m.keys.Quit):
		return m, tea.Quit
	case matchesKey(msg, m.keys.Help):
		m.overlay = OverlayHelp
		return m, nil
	case matchesKey(msg, m.keys.Debug):
		m.overlay = OverlayDebug
		return m, nil
	case matchesKey(msg, m.keys.Theme):
		m.overlay = OverlayTheme
		return m, nil
	case matchesKey(msg, m.keys.NextFeed):
		return m.switchFeed(m.feed.Next())
	case matchesKey(msg, m.keys.PrevFeed):
		return m.switchFeed(m.feed.Prev())
	case matchesKey(msg, m.keys.Refresh):
		return m.refresh()
	}

	if m.view == ViewStories {
		return m.handleStoriesKey(msg)
	}
	return m.handleCommentsKey(msg)
}

func (m *App) handleOverlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.overlay {
	case OverlayTheme:
		switch {
		case matchesKey(msg, m.keys.Right) || matchesKey(msg, m.keys.Down):
			theme.CycleTheme()
			return m, nil
		case matchesKey(msg, m.keys.Left) || matchesKey(msg, m.keys.Up):
			theme.CyclePreviousTheme()
			return m, nil
		case matchesKey(msg, m.keys.Enter), matchesKey(msg, m.keys.Back):
			m.overlay = OverlayNone
			return m, nil
		}
		return m, nil
	default:
		switch {
		case matchesKey(msg, m.keys.Back), matchesKey(msg, m.keys.Help), matchesKey(msg, m.keys.Debug):
			m.overlay = OverlayNone
			return m, nil
		}
		return m, nil
	}
}

func (m *App) switchFeed(feed hn.Feed) (tea.Model, tea.Cmd) {
	m.feed = feed
	m.generation++
	m.stories = nil
	m.storiesPage = 0
	m.selectedIdx = 0
	m.scrollOffset = 0
	m.storiesLoad = LoadState{}
	m.storiesLoad.startLoading(false)
	return m, tea.Batch(m.loadStoriesCmd(feed, 0, m.generation, false), m.waitForResult())
}

func (m *App) refresh() (tea.Model, tea.Cmd) {
	if m.view == ViewStories {
		m.generation++
		m.storiesLoad.startLoading(false)
		return m, tea.Batch(m.loadStoriesCmd(m.feed, 0, m.generation, true), m.waitForResult())
	}
	m.commentsLoad.startLoading(false)
	return m, tea.Batch(m.loadCommentsCmd(m.commentStory, true), m.waitForResult())
}

func (m *App) handleStoriesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case matchesKey(msg, m.keys.Up):
		if m.selectedIdx > 0 {
			m.selectedIdx--
		}
		return m, nil
	case matchesKey(msg, m.keys.Down):
		if m.selectedIdx < len(m.stories)-1 {
			m.selectedIdx++
		}
		var cmd tea.Cmd
		if m.shouldLoadMore() {
			m.storiesLoad.startLoading(true)
			cmd = m.loadStoriesCmd(m.feed, m.storiesPage+1, m.generation, false)
		}
		return m, cmd
	case matchesKey(msg, m.keys.Home):
		m.selectedIdx = 0
		return m, nil
	case matchesKey(msg, m.keys.End):
		m.selectedIdx = clampIndex(len(m.stories)-1, len(m.stories))
		return m, nil
	case matchesKey(msg, m.keys.PageUp):
		m.selectedIdx = clampIndex(m.selectedIdx-m.visibleStoryCapacity(), len(m.stories))
		return m, nil
	case matchesKey(msg, m.keys.PageDown):
		m.selectedIdx = clampIndex(m.selectedIdx+m.visibleStoryCapacity(), len(m.stories))
		return m, nil
	case matchesKey(msg, m.keys.Enter), matchesKey(msg, m.keys.Right):
		return m.openComments()
	case matchesKey(msg, m.keys.ToggleFavorite):
		return m.toggleSelectedStoryFavorite()
	case matchesKey(msg, m.keys.OpenUrl):
		return m.openSelectedUrl(false)
	case matchesKey(msg, m.keys.OpenHnPage):
		return m.openSelectedUrl(true)
	case matchesKey(msg, m.keys.CopyUrl):
		return m.copySelectedUrl()
	}
	return m, nil
}

func (m *App) selectedStory() (hn.Story, bool) {
	if m.selectedIdx < 0 || m.selectedIdx >= len(m.stories) {
		return hn.Story{}, false
	}
	return m.stories[m.selectedIdx], true
}

func (m *App) openComments() (tea.Model, tea.Cmd) {
	story, ok := m.selectedStory()
	if !ok {
		return m, nil
	}
	now := time.Now().Unix()
	m.stories[m.selectedIdx].ReadAt = &now

	m.view = ViewComments
	m.commentStory = story
	m.commentTree.Clear()
	m.commentSel = 0
	m.commentScroll = 0
	m.commentsLoad = LoadState{}
	m.commentsLoad.startLoading(false)
	return m, tea.Batch(m.loadCommentsCmd(story, false), m.markStoryReadCmd(story.ID), m.waitForResult())
}

func (m *App) toggleSelectedStoryFavorite() (tea.Model, tea.Cmd) {
	story, ok := m.selectedStory()
	if !ok {
		return m, nil
	}
	if m.stories[m.selectedIdx].FavoritedAt == nil {
		now := time.Now().Unix()
		m.stories[m.selectedIdx].FavoritedAt = &now
		m.flash("favorited")
	} else {
		m.stories[m.selectedIdx].FavoritedAt = nil
		m.flash("unfavorited")
	}
	return m, tea.Batch(m.toggleStoryFavoriteCmd(story.ID), m.waitForResult())
}

func (m *App) openSelectedUrl(hnPage bool) (tea.Model, tea.Cmd) {
	story, ok := m.selectedStory()
	if !ok {
		return m, nil
	}
	url := story.ContentUrl()
	if hnPage {
		url = story.HNUrl()
	}
	if err := browser.OpenURL(url); err != nil {
		m.flash("failed to open browser")
		debug.Logf("browser.OpenURL failed: %v", err)
	}
	return m, nil
}

func (m *App) copySelectedUrl() (tea.Model, tea.Cmd) {
	story, ok := m.selectedStory()
	if !ok {
		return m, nil
	}
	if err := clipboard.WriteAll(story.ContentUrl()); err != nil {
		m.flash("failed to copy")
		debug.Logf("clipboard.WriteAll failed: %v", err)
		return m, nil
	}
	m.flash("copied URL")
	return m, nil
}

func (m *App) handleCommentsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.commentTree.VisibleIndices()

	switch {
	case matchesKey(msg, m.keys.Back):
		m.view = ViewStories
		return m, nil
	case matchesKey(msg, m.keys.Up):
		if m.commentSel > 0 {
			m.commentSel--
		}
		return m, nil
	case matchesKey(msg, m.keys.Down):
		if m.commentSel < len(visible)-1 {
			m.commentSel++
		}
		return m, nil
	case matchesKey(msg, m.keys.Home):
		m.commentSel = 0
		return m, nil
	case matchesKey(msg, m.keys.End):
		m.commentSel = clampIndex(len(visible)-1, len(visible))
		return m, nil
	case matchesKey(msg, m.keys.Left):
		return m.collapseSelectedComment(visible)
	case matchesKey(msg, m.keys.Right):
		return m.expandSelectedComment(visible)
	case matchesKey(msg, m.keys.ExpandSubtree):
		if idx, ok := m.selectedFlatIndex(visible); ok {
			m.commentTree.ExpandSubtree(idx)
		}
		return m, nil
	case matchesKey(msg, m.keys.CollapseSubtree):
		if ancestorVisible, ancestorFlat, ok := m.commentTree.FindTopLevelAncestor(visible, m.commentSel); ok {
			m.commentTree.CollapseSubtree(ancestorFlat)
			m.commentSel = ancestorVisible
		}
		return m, nil
	case matchesKey(msg, m.keys.ExpandAll):
		m.commentTree.ExpandAll()
		return m, nil
	case matchesKey(msg, m.keys.CollapseAll):
		m.commentTree.CollapseAll()
		m.commentSel = 0
		return m, nil
	case matchesKey(msg, m.keys.ToggleFavorite):
		return m.toggleSelectedCommentFavorite(visible)
	}
	return m, nil
}

func (m *App) selectedFlatIndex(visible []int) (int, bool) {
	if m.commentSel < 0 || m.commentSel >= len(visible) {
		return 0, false
	}
	return visible[m.commentSel], true
}

// collapseSelectedComment collapses the selected comment's subtree and
// moves selection to its parent. A top-level comment collapses in place
// if expanded with children; otherwise (nothing left to collapse) it
// exits to the Stories view, mirroring a "back" gesture.
func (m *App) collapseSelectedComment(visible []int) (tea.Model, tea.Cmd) {
	idx, ok := m.selectedFlatIndex(visible)
	if !ok {
		m.view = ViewStories
		return m, nil
	}
	comment, ok := m.commentTree.Get(idx)
	if !ok {
		m.view = ViewStories
		return m, nil
	}

	hasChildren := len(comment.Kids) > 0
	isExpanded := m.commentTree.IsExpanded(comment.ID)

	if comment.Depth == 0 {
		if hasChildren && isExpanded {
			m.commentTree.Collapse(comment.ID)
		} else {
			m.view = ViewStories
		}
		return m, nil
	}

	m.commentTree.Collapse(comment.ID)
	if parentVisible, ok := m.commentTree.FindParentVisibleIndex(visible, m.commentSel); ok {
		m.commentSel = parentVisible
	}
	return m, nil
}

// expandSelectedComment expands the selected comment's children. If it's
// already expanded, selection instead descends to the first child.
func (m *App) expandSelectedComment(visible []int) (tea.Model, tea.Cmd) {
	idx, ok := m.selectedFlatIndex(visible)
	if !ok {
		return m, nil
	}
	comment, ok := m.commentTree.Get(idx)
	if !ok || len(comment.Kids) == 0 {
		return m, nil
	}
	if m.commentTree.IsExpanded(comment.ID) {
		if m.commentSel < len(visible)-1 {
			m.commentSel++
		}
		return m, nil
	}
	m.commentTree.Expand(comment.ID)
	return m, nil
}

func (m *App) toggleSelectedCommentFavorite(visible []int) (tea.Model, tea.Cmd) {
	idx, ok := m.selectedFlatIndex(visible)
	if !ok {
		return m, nil
	}
	comment, ok := m.commentTree.Get(idx)
	if !ok {
		return m, nil
	}
	if comment.FavoritedAt == nil {
		m.flash("favorited")
	} else {
		m.flash("unfavorited")
	}
	return m, tea.Batch(m.toggleCommentFavoriteCmd(comment.ID), m.waitForResult())
}
