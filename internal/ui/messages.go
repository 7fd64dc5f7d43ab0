package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"hntui/internal/hn"
)

// tickMsg drives the 16ms spinner/re-render cadence (spec's "16ms tick").
type tickMsg time.Time

func scheduleTick() tea.Cmd {
	return tea.Tick(16*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// storiesResultMsg is the result of fetching one page of a feed. generation
// ties it to the App's generation counter so a result from a fetch spawned
// before the most recent refresh or feed switch is dropped as stale.
type storiesResultMsg struct {
	generation int
	feed       hn.Feed
	page       int
	stories    []hn.Story
	hasMore    bool
	err        error
}

// commentsResultMsg is the result of fetching a story's comment thread,
// tagged by story id rather than generation: if the view has since moved to
// a different story, the result is dropped ("discarded (wrong view)").
type commentsResultMsg struct {
	storyID  int64
	story    hn.Story
	comments []hn.Comment
	err      error
}

// favoritesResultMsg carries the locally cached favorites list; Favorites
// is local-only and never hits the network.
type favoritesResultMsg struct {
	stories []hn.Story
	err     error
}
