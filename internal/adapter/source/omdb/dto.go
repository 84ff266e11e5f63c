package omdb

// OMDb API response types. Every response carries Response ("True"/"False")
// and, on failure, an Error text.

// envelope is the success/failure marker shared by all responses
type envelope struct {
	Response string `json:"Response"`
	Error    string `json:"Error,omitempty"`
}

// found reports whether the API answered with its success marker
func (e envelope) found() bool {
	return e.Response != "False"
}

// SearchResponse is the payload of a title search (?s=)
type SearchResponse struct {
	envelope
	Search       []SearchItem `json:"Search"`
	TotalResults string       `json:"totalResults"`
}

// SearchItem is one match in a SearchResponse
type SearchItem struct {
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	ImdbID string `json:"imdbID"`
	Type   string `json:"Type"`
	Poster string `json:"Poster"`
}

// DetailResponse is the payload of an identifier lookup (?i=)
type DetailResponse struct {
	envelope
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	Rated      string `json:"Rated"`
	Released   string `json:"Released"`
	Runtime    string `json:"Runtime"`
	Genre      string `json:"Genre"`
	Director   string `json:"Director"`
	Writer     string `json:"Writer"`
	Actors     string `json:"Actors"`
	Plot       string `json:"Plot"`
	Poster     string `json:"Poster"`
	ImdbRating string `json:"imdbRating"`
	ImdbID     string `json:"imdbID"`
}
