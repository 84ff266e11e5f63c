package tui

import (
	"context"
	"errors"
	"log/slog"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/popcorn/internal/domain"
	"github.com/mmcdole/popcorn/internal/movies"
	"github.com/mmcdole/popcorn/internal/tui/components"
	"github.com/mmcdole/popcorn/internal/watchlist"
)

// Pane identifies which part of the screen receives keys
type Pane int

const (
	PaneSearch Pane = iota
	PaneResults
	PaneRight // detail panel when a movie is selected, watched list otherwise
)

// AppState is the shared application state. Only Model mutates it;
// components receive copies and report changes with messages.
type AppState struct {
	Query      string
	Results    []domain.SearchResultItem
	Watched    []domain.WatchedEntry
	IsLoading  bool
	Error      string
	SelectedID string // empty when nothing is selected
}

// Opener opens and copies links for the detail panel
type Opener interface {
	Open(url string) error
	Copy(text string) error
}

// Options configures a Model
type Options struct {
	InitialQuery string
	Rating       components.RatingOptions
	Logger       *slog.Logger
}

// Model is the main Bubble Tea model for the application
type Model struct {
	State AppState
	Ready bool

	// Services
	MovieSvc     *movies.Service
	WatchlistSvc *watchlist.Service
	Opener       Opener
	logger       *slog.Logger

	// UI Components
	SearchBar   components.SearchBar
	Results     components.ResultsList
	Detail      components.DetailPanel
	Summary     components.WatchedSummary
	WatchedList components.WatchedList
	LeftBox     components.Box
	RightBox    components.Box

	// Dimensions
	Width  int
	Height int

	// UI state
	Focus       Pane
	ShowHelp    bool
	StatusMsg   string
	StatusIsErr bool
	statusID    int

	// Request tags; responses carrying an older tag are dropped
	searchSeq    uint64
	detailSeq    uint64
	cancelSearch context.CancelFunc
	cancelDetail context.CancelFunc

	initCmd tea.Cmd
}

// NewModel creates the application model, loads the watched list and
// starts the search cycle for the initial query.
func NewModel(movieSvc *movies.Service, watchSvc *watchlist.Service, opener Opener, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	m := Model{
		MovieSvc:     movieSvc,
		WatchlistSvc: watchSvc,
		Opener:       opener,
		logger:       logger,
		SearchBar:    components.NewSearchBar(opts.InitialQuery),
		Results:      components.NewResultsList(),
		Detail:       components.NewDetailPanel(opts.Rating),
		WatchedList:  components.NewWatchedList(),
		LeftBox:      components.NewBox("Results"),
		RightBox:     components.NewBox("Watched"),
		Focus:        PaneSearch,
	}

	var cmds []tea.Cmd
	watched, err := watchSvc.Load()
	m.State.Watched = watched
	m.WatchedList.SetEntries(watched)
	if err != nil {
		cmds = append(cmds, m.setStatus("could not load watched list: "+err.Error(), true))
	}

	cmds = append(cmds, m.SearchBar.Focus(), m.SetQuery(opts.InitialQuery))
	m.initCmd = tea.Batch(cmds...)
	return m
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return m.initCmd
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		if m.State.SelectedID != "" && m.RightBox.IsOpen() {
			var cmd tea.Cmd
			m.Detail, cmd = m.Detail.Update(msg)
			return m, cmd
		}
		return m, nil

	case spinner.TickMsg:
		if !m.State.IsLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.Results, cmd = m.Results.Tick(msg)
		return m, cmd

	case SearchResultMsg:
		m.applySearchResult(msg)
		return m, nil

	case DetailLoadedMsg:
		m.applyDetail(msg)
		return m, nil

	// Requests from components
	case components.QueryChangedMsg:
		return m, m.SetQuery(msg.Query)

	case components.SelectMovieMsg:
		return m, m.SelectMovie(msg.ID)

	case components.CloseDetailMsg:
		return m, m.ClearSelection()

	case components.AddWatchedMsg:
		return m, m.AddWatched(msg.Entry)

	case components.RemoveWatchedMsg:
		return m, m.RemoveWatched(msg.ID)

	case components.RatingSetMsg:
		var cmd tea.Cmd
		m.Detail, cmd = m.Detail.Update(msg)
		return m, cmd

	case components.OpenURLMsg:
		return m, OpenURLCmd(m.Opener, msg.URL)

	case components.CopyTextMsg:
		return m, CopyCmd(m.Opener, msg.Text)

	case StatusMsg:
		return m, m.setStatus(msg.Message, msg.IsError)

	case ClearStatusMsg:
		if msg.ID == m.statusID {
			m.StatusMsg = ""
			m.StatusIsErr = false
		}
		return m, nil
	}

	// Cursor blink and other input-internal messages
	if m.Focus == PaneSearch {
		var cmd tea.Cmd
		m.SearchBar, cmd = m.SearchBar.Update(msg)
		return m, cmd
	}
	return m, nil
}

// SetQuery replaces the query and starts a new search cycle.
// Short queries clear the results without a network call.
func (m *Model) SetQuery(q string) tea.Cmd {
	m.State.Query = q
	m.searchSeq++
	if m.cancelSearch != nil {
		m.cancelSearch()
		m.cancelSearch = nil
	}

	if domain.QueryTooShort(q) {
		m.State.Results = nil
		m.State.Error = ""
		m.State.IsLoading = false
		m.syncResults()
		return nil
	}

	m.State.IsLoading = true
	m.State.Error = ""
	m.syncResults()

	ctx, cancel := context.WithCancel(context.Background())
	m.cancelSearch = cancel
	m.logger.Debug("search started", "query", q, "seq", m.searchSeq)
	return tea.Batch(SearchCmd(ctx, m.MovieSvc, m.searchSeq, q), m.Results.SpinnerTick())
}

func (m *Model) applySearchResult(msg SearchResultMsg) {
	if msg.Seq != m.searchSeq {
		m.logger.Debug("dropped stale search result", "query", msg.Query, "seq", msg.Seq, "latest", m.searchSeq)
		return
	}
	if m.cancelSearch != nil {
		m.cancelSearch()
		m.cancelSearch = nil
	}

	m.State.IsLoading = false
	switch {
	case msg.Err == nil:
		m.State.Results = msg.Results
		m.State.Error = ""
	case errors.Is(msg.Err, domain.ErrMovieNotFound):
		m.State.Results = nil
		m.State.Error = domain.ErrMovieNotFound.Error()
	default:
		m.State.Results = nil
		m.State.Error = domain.UserMessage(msg.Err)
	}
	m.syncResults()
}

// SelectMovie toggles the selection: the selected id deselects, any other replaces it
func (m *Model) SelectMovie(id string) tea.Cmd {
	if id == m.State.SelectedID {
		return m.ClearSelection()
	}

	m.State.SelectedID = id
	m.detailSeq++
	if m.cancelDetail != nil {
		m.cancelDetail()
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.cancelDetail = cancel

	m.Detail.Load(id, m.detailSeq)
	m.Detail.SetAlreadyRated(domain.ContainsWatched(m.State.Watched, id))
	m.Results.SetSelectedID(id)
	m.RightBox.SetTitle("Details")
	m.focusPane(PaneRight)

	m.logger.Debug("movie selected", "id", id, "seq", m.detailSeq)
	return DetailCmd(ctx, m.MovieSvc, m.detailSeq, id)
}

func (m *Model) applyDetail(msg DetailLoadedMsg) {
	if msg.Seq != m.detailSeq || msg.ID != m.State.SelectedID {
		m.logger.Debug("dropped stale detail", "id", msg.ID, "seq", msg.Seq, "latest", m.detailSeq)
		return
	}
	if msg.Err != nil {
		m.Detail.SetError(msg.Seq, domain.UserMessage(msg.Err))
		return
	}
	m.Detail.SetDetail(msg.Seq, msg.Detail)
}

// ClearSelection unmounts the detail panel
func (m *Model) ClearSelection() tea.Cmd {
	m.State.SelectedID = ""
	m.detailSeq++
	if m.cancelDetail != nil {
		m.cancelDetail()
		m.cancelDetail = nil
	}
	m.Detail.Reset()
	m.Results.SetSelectedID("")
	m.RightBox.SetTitle("Watched")
	return nil
}

// AddWatched appends entry, persists the whole list and clears the selection
func (m *Model) AddWatched(entry domain.WatchedEntry) tea.Cmd {
	next, err := m.WatchlistSvc.Add(m.State.Watched, entry)
	m.State.Watched = next
	m.WatchedList.SetEntries(next)
	m.ClearSelection()

	if err != nil {
		return m.setStatus("could not save watched list: "+err.Error(), true)
	}
	return m.setStatus("Added "+entry.Title, false)
}

// RemoveWatched drops id from the list and persists the result
func (m *Model) RemoveWatched(id string) tea.Cmd {
	next, err := m.WatchlistSvc.Remove(m.State.Watched, id)
	m.State.Watched = next
	m.WatchedList.SetEntries(next)
	if id == m.State.SelectedID {
		m.Detail.SetAlreadyRated(false)
	}

	if err != nil {
		return m.setStatus("could not save watched list: "+err.Error(), true)
	}
	return nil
}

func (m *Model) syncResults() {
	m.Results.SetLoading(m.State.IsLoading)
	m.Results.SetError(m.State.Error)
	m.Results.SetItems(m.State.Results)
}

func (m *Model) setStatus(message string, isErr bool) tea.Cmd {
	m.statusID++
	m.StatusMsg = message
	m.StatusIsErr = isErr
	if isErr {
		m.logger.Warn("status", "message", message)
	}
	return ClearStatusCmd(m.statusID, statusTTL)
}

// focusPane moves keyboard focus, blurring the search input when leaving it
func (m *Model) focusPane(p Pane) tea.Cmd {
	m.Focus = p
	if p == PaneSearch {
		return m.SearchBar.Focus()
	}
	m.SearchBar.Blur()
	return nil
}

// Close cancels any in-flight requests
func (m *Model) Close() {
	if m.cancelSearch != nil {
		m.cancelSearch()
	}
	if m.cancelDetail != nil {
		m.cancelDetail()
	}
}
