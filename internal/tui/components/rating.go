package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/popcorn/internal/tui/styles"
)

// RatingOptions configures a RatingInput
type RatingOptions struct {
	MaxRating     int            // Number of selectable icons
	Size          int            // Blank cells between icons
	Color         lipgloss.Color // Filled icon color
	FullIcon      string
	EmptyIcon     string
	DefaultRating int
}

// DefaultRatingOptions returns a ten-star input
func DefaultRatingOptions() RatingOptions {
	return RatingOptions{
		MaxRating: 10,
		Size:      1,
		Color:     styles.Popcorn,
		FullIcon:  "★",
		EmptyIcon: "☆",
	}
}

// RatingInput lets the user pick 1..MaxRating by previewing and committing icons.
// The committed value is reported upward with RatingSetMsg.
type RatingInput struct {
	opts   RatingOptions
	keys   RatingKeyMap
	rating int // committed, 0 = unset
	hover  int // preview, 0 = none

	// Screen position of the first icon, for mouse hit-testing
	originX, originY int
	hasOrigin        bool
}

// NewRatingInput creates a rating input; zero-valued options take defaults
func NewRatingInput(opts RatingOptions) RatingInput {
	def := DefaultRatingOptions()
	if opts.MaxRating < 1 {
		opts.MaxRating = def.MaxRating
	}
	if opts.Size < 0 {
		opts.Size = 0
	}
	if opts.Color == "" {
		opts.Color = def.Color
	}
	if opts.FullIcon == "" {
		opts.FullIcon = def.FullIcon
	}
	if opts.EmptyIcon == "" {
		opts.EmptyIcon = def.EmptyIcon
	}
	r := RatingInput{opts: opts, keys: DefaultRatingKeyMap()}
	if opts.DefaultRating > 0 {
		r.rating = r.clamp(opts.DefaultRating)
	}
	return r
}

// Rating returns the committed rating (0 when unset)
func (r RatingInput) Rating() int {
	return r.rating
}

// Hovered returns the preview value (0 when not previewing)
func (r RatingInput) Hovered() int {
	return r.hover
}

// Displayed returns the value the icons currently show
func (r RatingInput) Displayed() int {
	if r.hover > 0 {
		return r.hover
	}
	return r.rating
}

// Hover previews k filled icons
func (r *RatingInput) Hover(k int) {
	r.hover = r.clamp(k)
}

// ClearHover reverts the icons to the committed rating
func (r *RatingInput) ClearHover() {
	r.hover = 0
}

// Commit stores k and reports it upward
func (r *RatingInput) Commit(k int) tea.Cmd {
	r.rating = r.clamp(k)
	r.hover = 0
	return emit(RatingSetMsg{Rating: r.rating})
}

// SetOrigin records where the first icon is drawn on screen
func (r *RatingInput) SetOrigin(x, y int) {
	r.originX, r.originY = x, y
	r.hasOrigin = true
}

// Update handles keyboard and mouse input
func (r RatingInput) Update(msg tea.Msg) (RatingInput, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, r.keys.Right):
			r.Hover(r.Displayed() + 1)
		case key.Matches(msg, r.keys.Left):
			r.Hover(r.Displayed() - 1)
		case key.Matches(msg, r.keys.Commit):
			if r.hover > 0 {
				return r, r.Commit(r.hover)
			}
		case key.Matches(msg, r.keys.Clear):
			r.ClearHover()
		case key.Matches(msg, r.keys.Digit):
			k, _ := strconv.Atoi(msg.String())
			if k == 0 {
				k = 10
			}
			if k <= r.opts.MaxRating {
				return r, r.Commit(k)
			}
		}

	case tea.MouseMsg:
		k := r.iconAt(msg.X, msg.Y)
		switch {
		case k == 0:
			r.ClearHover()
		case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
			return r, r.Commit(k)
		case msg.Action == tea.MouseActionMotion:
			r.Hover(k)
		}
	}
	return r, nil
}

// Handles reports whether a key belongs to the rating input
func (r RatingInput) Handles(msg tea.KeyMsg) bool {
	if key.Matches(msg, r.keys.Clear) {
		return r.hover > 0
	}
	if key.Matches(msg, r.keys.Commit) {
		return r.hover > 0
	}
	return key.Matches(msg, r.keys.Left, r.keys.Right, r.keys.Digit)
}

// iconAt maps a screen cell to an icon number (1-based), 0 if outside
func (r RatingInput) iconAt(x, y int) int {
	if !r.hasOrigin || y != r.originY || x < r.originX {
		return 0
	}
	step := r.iconWidth() + r.opts.Size
	offset := x - r.originX
	k := offset/step + 1
	if k > r.opts.MaxRating || offset%step >= r.iconWidth() {
		return 0
	}
	return k
}

func (r RatingInput) iconWidth() int {
	return max(lipgloss.Width(r.opts.FullIcon), lipgloss.Width(r.opts.EmptyIcon), 1)
}

func (r RatingInput) clamp(k int) int {
	return min(max(k, 1), r.opts.MaxRating)
}

// View renders the icons followed by the displayed value
func (r RatingInput) View() string {
	full := lipgloss.NewStyle().Foreground(r.opts.Color)
	empty := styles.DimStyle
	gap := strings.Repeat(" ", r.opts.Size)

	shown := r.Displayed()
	icons := make([]string, r.opts.MaxRating)
	for i := range icons {
		if i < shown {
			icons[i] = full.Render(r.opts.FullIcon)
		} else {
			icons[i] = empty.Render(r.opts.EmptyIcon)
		}
	}

	label := ""
	if shown > 0 {
		label = strconv.Itoa(shown)
	}
	return strings.Join(icons, gap) + "  " + full.Bold(true).Render(label)
}
