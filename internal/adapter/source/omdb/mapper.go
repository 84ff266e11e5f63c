package omdb

import "github.com/mmcdole/popcorn/internal/domain"

// MapSearchItems converts OMDb matches to domain results, preserving order
func MapSearchItems(items []SearchItem) []domain.SearchResultItem {
	results := make([]domain.SearchResultItem, 0, len(items))
	for _, it := range items {
		results = append(results, domain.SearchResultItem{
			ID:        it.ImdbID,
			Title:     it.Title,
			Year:      it.Year,
			PosterURL: posterURL(it.Poster),
		})
	}
	return results
}

// MapDetail converts an OMDb detail payload to a domain record.
// id is used when the payload omits imdbID.
func MapDetail(id string, r DetailResponse) *domain.MovieDetail {
	if r.ImdbID != "" {
		id = r.ImdbID
	}
	return &domain.MovieDetail{
		ID:           id,
		Title:        r.Title,
		Year:         r.Year,
		PosterURL:    posterURL(r.Poster),
		Runtime:      r.Runtime,
		CriticRating: r.ImdbRating,
		Plot:         r.Plot,
		ReleaseDate:  r.Released,
		Cast:         r.Actors,
		Director:     r.Director,
		Genre:        r.Genre,
	}
}

// posterURL drops the "N/A" placeholder OMDb uses for missing posters
func posterURL(p string) string {
	if p == "N/A" {
		return ""
	}
	return p
}
