package forms

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/iliyamo/movie-watchlist/internal/model"
)

// ExtendedMovieForm is the edit form: the creation fields plus every
// enrichable field. Cast, Series and Tags are multi-line text inputs where
// each line becomes one trimmed element.
type ExtendedMovieForm struct {
	MovieForm
	Cast        []string
	Series      []string
	Tags        []string
	Description string
	VideoLink   string
}

// ParseExtendedMovieForm builds an ExtendedMovieForm from posted values.
func ParseExtendedMovieForm(v url.Values) *ExtendedMovieForm {
	return &ExtendedMovieForm{
		MovieForm:   *ParseMovieForm(v),
		Cast:        SplitLines(v.Get("cast")),
		Series:      SplitLines(v.Get("series")),
		Tags:        SplitLines(v.Get("tags")),
		Description: strings.TrimSpace(v.Get("description")),
		VideoLink:   strings.TrimSpace(v.Get("video_link")),
	}
}

// ExtendedFromMovie pre-populates the edit form with a stored movie, the
// GET half of the edit flow.
func ExtendedFromMovie(m model.Movie) *ExtendedMovieForm {
	return &ExtendedMovieForm{
		MovieForm: MovieForm{
			Title:    m.Title,
			Director: m.Director,
			YearRaw:  strconv.Itoa(m.Year),
			Year:     m.Year,
		},
		Cast:        m.Cast,
		Series:      m.Series,
		Tags:        m.Tags,
		Description: m.Description,
		VideoLink:   m.VideoLink,
	}
}

// Apply copies every editable field onto the movie. The id, rating and
// last-watched timestamp are deliberately untouched.
func (f *ExtendedMovieForm) Apply(m *model.Movie) {
	m.Title = f.Title
	m.Director = f.Director
	m.Year = f.Year
	m.Cast = f.Cast
	m.Series = f.Series
	m.Tags = f.Tags
	m.Description = f.Description
	m.VideoLink = f.VideoLink
}

// SplitLines turns a textarea value into one trimmed element per line.
// Blank input yields an empty (non-nil) slice.
func SplitLines(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	lines := strings.Split(raw, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// JoinLines is the inverse of SplitLines, used to re-render list fields
// inside a textarea.
func JoinLines(items []string) string {
	return strings.Join(items, "\n")
}
