package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"hntui/internal/commenttree"
	"hntui/internal/hn"
	"hntui/internal/storage"
)

// View is the two screens the Controller switches between.
type View int

const (
	ViewStories View = iota
	ViewComments
)

// Overlay is a modal layer drawn over the base view.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayHelp
	OverlayTheme
	OverlayDebug
)

const (
	spinnerMinDuration = 500 * time.Millisecond
	prefetchThreshold  = 5
	prefetchMin        = 30
	prefetchMax        = 150
	storyRowHeight     = 2
	layoutOverheadRows = 4 // 1 tabs + 1 status bar + 2 borders
)

// LoadState tracks an in-flight or completed fetch for one of the two
// views. loadingSince is set on every transition into loading and never
// cleared on completion, so the "should show spinner" predicate (loading
// OR within spinnerMinDuration of loadingStart) never flashes on fast
// responses.
type LoadState struct {
	Loading     bool
	LoadingMore bool
	HasMore     bool
	Error       string
	loadingSince time.Time
}

func (s LoadState) showSpinner(now time.Time) bool {
	if s.Loading || s.LoadingMore {
		return true
	}
	if s.loadingSince.IsZero() {
		return false
	}
	return now.Sub(s.loadingSince) < spinnerMinDuration
}

func (s *LoadState) startLoading(more bool) {
	s.LoadingMore = more
	s.Loading = !more
	s.Error = ""
	s.loadingSince = time.Now()
}

// Config configures the UI application.
type Config struct {
	Client          *hn.Client
	Store           *storage.Store
	InitialFeed     hn.Feed
	RequestTimeout  time.Duration
	Version         string
}

// App implements the Bubble Tea model for hntui.
type App struct {
	client *hn.Client
	store  *storage.Store
	keys   KeyMap
	ready  bool
	width  int
	height int

	generation int
	results    chan tea.Msg

	view    View
	overlay Overlay

	feed         hn.Feed
	stories      []hn.Story
	storiesPage  int
	selectedIdx  int
	scrollOffset int
	storiesLoad  LoadState

	commentStory  hn.Story
	commentTree   *commenttree.Tree
	commentSel    int
	commentScroll int
	commentsLoad  LoadState

	lastFlash     string
	lastFlashTime time.Time

	version string
}

// NewApp constructs the Controller. The caller is responsible for opening
// Store and constructing Client beforehand (see cmd/hntui).
func NewApp(cfg Config) *App {
	feed := cfg.InitialFeed
	return &App{
		client:      cfg.Client,
		store:       cfg.Store,
		keys:        DefaultKeyMap(),
		results:     make(chan tea.Msg, 10),
		feed:        feed,
		commentTree: commenttree.New(),
		version:     cfg.Version,
	}
}

func (m *App) Init() tea.Cmd {
	return tea.Batch(
		scheduleTick(),
		m.waitForResult(),
		m.loadStoriesCmd(m.feed, 0, m.generation, false),
	)
}

// waitForResult reads the next background-task result off the bounded
// channel every spawned task reports to. The spec describes an explicit
// capacity-10 result channel the main loop select!s on alongside terminal
// events and the tick; here that channel is drained by a standing tea.Cmd
// that Update re-issues every time it consumes a message.
func (m *App) waitForResult() tea.Cmd {
	return func() tea.Msg {
		return <-m.results
	}
}

func clampDimension(value, minValue, maxValue int) int {
	if maxValue < 1 {
		maxValue = 1
	}
	if minValue > maxValue {
		minValue = maxValue
	}
	if value < minValue {
		return minValue
	}
	if value > maxValue {
		return maxValue
	}
	return value
}

func clampIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// visibleStoryCapacity derives how many story rows fit the viewport.
func (m *App) visibleStoryCapacity() int {
	usable := m.height - layoutOverheadRows
	return clampDimension(usable/storyRowHeight, 1, 1<<20)
}

// prefetchTarget is 2x the viewport capacity, clamped to [30, 150] — kept
// large enough to stabilize column widths (storyColumnWidths in view.go
// recomputes them from whatever slice of stories is in memory) while
// bounding memory.
func (m *App) prefetchTarget() int {
	return clampDimension(2*m.visibleStoryCapacity(), prefetchMin, prefetchMax)
}

func (m *App) shouldFillViewport() bool {
	return len(m.stories) < m.prefetchTarget() && m.storiesLoad.HasMore && !m.storiesLoad.Loading && !m.storiesLoad.LoadingMore
}

// shouldLoadMore reports whether the selected story is close enough to the
// end of the loaded page that the next page should be prefetched.
func (m *App) shouldLoadMore() bool {
	return m.storiesLoad.HasMore && !m.storiesLoad.Loading && !m.storiesLoad.LoadingMore &&
		len(m.stories) > 0 && m.selectedIdx >= len(m.stories)-prefetchThreshold
}

func (m *App) flash(msg string) {
	m.lastFlash = msg
	m.lastFlashTime = time.Now()
}

func matchesKey(msg tea.KeyMsg, b key.Binding) bool {
	return key.Matches(msg, b)
}
