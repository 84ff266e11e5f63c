package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/popcorn/internal/domain"
	"github.com/mmcdole/popcorn/internal/tui/styles"
)

// DetailState is the lifecycle of the detail panel
type DetailState int

const (
	DetailIdle DetailState = iota
	DetailLoading
	DetailLoaded
	DetailFailed
)

func (s DetailState) String() string {
	switch s {
	case DetailLoading:
		return "loading"
	case DetailLoaded:
		return "loaded"
	case DetailFailed:
		return "failed"
	default:
		return "idle"
	}
}

// detailHeaderLines is the fixed header height; the rating row follows a blank line
const (
	detailHeaderLines = 5
	detailRatingRow   = detailHeaderLines + 1
)

// DetailPanel shows the selected movie and hosts the rating input.
// Every Load starts a new request tag; results for older tags are dropped.
type DetailPanel struct {
	state  DetailState
	id     string
	seq    uint64
	detail *domain.MovieDetail
	err    string

	ratingOpts   RatingOptions
	rating       RatingInput
	userRating   int
	alreadyRated bool

	keys   DetailKeyMap
	width  int
	height int
	offset int // body scroll offset

	originX, originY int
}

// NewDetailPanel creates an idle panel
func NewDetailPanel(opts RatingOptions) DetailPanel {
	return DetailPanel{
		ratingOpts: opts,
		rating:     NewRatingInput(opts),
		keys:       DefaultDetailKeyMap(),
	}
}

// Load enters Loading for id under request tag seq
func (d *DetailPanel) Load(id string, seq uint64) {
	d.state = DetailLoading
	d.id = id
	d.seq = seq
	d.detail = nil
	d.err = ""
	d.offset = 0
	d.userRating = 0
	d.rating = NewRatingInput(d.ratingOpts)
	d.placeRating()
}

// Reset returns the panel to Idle
func (d *DetailPanel) Reset() {
	d.state = DetailIdle
	d.id = ""
	d.detail = nil
	d.err = ""
}

// SetDetail applies a fetched record; false if seq is stale
func (d *DetailPanel) SetDetail(seq uint64, detail *domain.MovieDetail) bool {
	if d.state != DetailLoading || seq != d.seq {
		return false
	}
	d.detail = detail
	d.state = DetailLoaded
	return true
}

// SetError records a failed fetch; false if seq is stale
func (d *DetailPanel) SetError(seq uint64, msg string) bool {
	if d.state != DetailLoading || seq != d.seq {
		return false
	}
	d.err = msg
	d.state = DetailFailed
	return true
}

// SetAlreadyRated hides the rating controls when the movie is in the watched list
func (d *DetailPanel) SetAlreadyRated(rated bool) {
	d.alreadyRated = rated
}

// State returns the lifecycle state
func (d DetailPanel) State() DetailState { return d.state }

// ID returns the movie being shown
func (d DetailPanel) ID() string { return d.id }

// Seq returns the current request tag
func (d DetailPanel) Seq() uint64 { return d.seq }

// Detail returns the loaded record, or nil
func (d DetailPanel) Detail() *domain.MovieDetail { return d.detail }

// UserRating returns the rating reported by the rating input
func (d DetailPanel) UserRating() int { return d.userRating }

// Rating exposes the rating input
func (d DetailPanel) Rating() RatingInput { return d.rating }

// SetSize updates the component dimensions
func (d *DetailPanel) SetSize(width, height int) {
	d.width = width
	d.height = height
}

// SetOrigin records the screen position of the panel's first content cell
func (d *DetailPanel) SetOrigin(x, y int) {
	d.originX, d.originY = x, y
	d.placeRating()
}

func (d *DetailPanel) placeRating() {
	d.rating.SetOrigin(d.originX, d.originY+detailRatingRow)
}

func (d DetailPanel) canRate() bool {
	return d.state == DetailLoaded && !d.alreadyRated
}

// ConfirmAdd builds the watched entry from the loaded record and chosen rating
func (d DetailPanel) ConfirmAdd() tea.Cmd {
	if !d.canRate() || d.userRating <= 0 || d.detail == nil {
		return nil
	}
	detail := *d.detail
	if detail.ID == "" {
		detail.ID = d.id
	}
	return emit(AddWatchedMsg{Entry: domain.NewWatchedEntry(detail, float64(d.userRating))})
}

// Update handles rating input, scrolling and panel actions
func (d DetailPanel) Update(msg tea.Msg) (DetailPanel, tea.Cmd) {
	switch msg := msg.(type) {
	case RatingSetMsg:
		d.userRating = msg.Rating
		return d, nil

	case tea.MouseMsg:
		if d.canRate() {
			var cmd tea.Cmd
			d.rating, cmd = d.rating.Update(msg)
			return d, cmd
		}
		return d, nil

	case tea.KeyMsg:
		if d.canRate() && d.rating.Handles(msg) {
			var cmd tea.Cmd
			d.rating, cmd = d.rating.Update(msg)
			return d, cmd
		}

		switch {
		case key.Matches(msg, d.keys.Back):
			return d, emit(CloseDetailMsg{})
		case key.Matches(msg, d.keys.Add):
			return d, d.ConfirmAdd()
		case key.Matches(msg, d.keys.Open):
			if d.id != "" {
				return d, emit(OpenURLMsg{URL: domain.IMDbURL(d.id)})
			}
		case key.Matches(msg, d.keys.Copy):
			if d.id != "" {
				return d, emit(CopyTextMsg{Text: domain.IMDbURL(d.id)})
			}
		case key.Matches(msg, d.keys.ScrollDn):
			d.offset++
		case key.Matches(msg, d.keys.ScrollUp):
			d.offset = max(d.offset-1, 0)
		}
	}
	return d, nil
}

// View renders the panel for its current state
func (d DetailPanel) View() string {
	width := max(d.width, 20)

	switch d.state {
	case DetailLoading:
		return styles.DimStyle.Render("loading...")
	case DetailFailed:
		return styles.ErrorStyle.Render("⛔️ "+styles.Truncate(d.err, width-3)) + "\n\n" +
			styles.DimStyle.Render("esc back · o open IMDb")
	case DetailLoaded:
	default:
		return ""
	}

	m := d.detail
	lines := d.header(m, width)
	lines = append(lines, "")
	lines = append(lines, d.ratingRow())
	lines = append(lines, "")

	body := d.body(m, width)
	available := len(body)
	if d.height > 0 {
		available = max(d.height-len(lines), 1)
	}
	offset := min(d.offset, max(len(body)-available, 0))
	end := min(offset+available, len(body))
	lines = append(lines, body[offset:end]...)

	return strings.Join(lines, "\n")
}

func (d DetailPanel) header(m *domain.MovieDetail, width int) []string {
	poster := m.PosterURL
	if poster == "" {
		poster = "no poster"
	}
	rating := m.CriticRating
	if rating == "" {
		rating = "N/A"
	}
	return []string{
		styles.TitleStyle.Render(styles.Truncate(m.Title, width)),
		styles.SubtitleStyle.Render(styles.Truncate(m.ReleaseDate+" • "+m.Runtime, width)),
		styles.SubtitleStyle.Render(styles.Truncate(m.Genre, width)),
		styles.Truncate("⭐️ "+rating+" IMDb rating", width),
		styles.DimStyle.Render(styles.Truncate("🖼  "+poster, width)),
	}
}

func (d DetailPanel) ratingRow() string {
	if d.alreadyRated {
		return styles.AccentStyle.Render("You already rated this movie.")
	}
	row := d.rating.View()
	if d.userRating > 0 {
		row += "  " + styles.ButtonStyle.Render("+ Add to list") + styles.DimStyle.Render(" (a)")
	}
	return row
}

func (d DetailPanel) body(m *domain.MovieDetail, width int) []string {
	wrap := lipgloss.NewStyle().Width(width)
	text := styles.ItalicStyle.Width(width).Render(m.Plot) + "\n\n" +
		wrap.Render("Starring "+m.Cast) + "\n" +
		wrap.Render("Directed by "+m.Director)
	return strings.Split(text, "\n")
}
