package components

import (
	"strings"

	"github.com/mmcdole/popcorn/internal/domain"
	"github.com/mmcdole/popcorn/internal/tui/styles"
)

// WatchedSummary renders aggregate statistics over the watched list
type WatchedSummary struct {
	width int
}

// SetWidth updates the render width
func (s *WatchedSummary) SetWidth(width int) {
	s.width = width
}

// View renders the summary for entries
func (s WatchedSummary) View(entries []domain.WatchedEntry) string {
	d := domain.Summarize(entries).Display()

	stats := []string{
		"#️⃣ " + d.Count + " movies",
		"⭐️ " + d.CriticRating,
		"🌟 " + d.UserRating,
		"⏳ " + d.Runtime + " min",
	}
	line := strings.Join(stats, "   ")
	if s.width > 0 {
		line = styles.Truncate(line, s.width)
	}

	return styles.TitleStyle.Render("MOVIES YOU WATCHED") + "\n" + styles.SubtitleStyle.Render(line)
}
