package source

import "strings"

// TvType classifies a title the way host applications group their catalogs.
type TvType string

// Known media types.
const (
	Movie      TvType = "Movie"
	AnimeMovie TvType = "AnimeMovie"
	TvSeries   TvType = "TvSeries"
	Anime      TvType = "Anime"
	OVA        TvType = "OVA"
	AsianDrama TvType = "AsianDrama"
	Cartoon    TvType = "Cartoon"
	Others     TvType = "Others"
)

// Types is the shared set of media types, in display order.
var Types = []TvType{
	Movie,
	AnimeMovie,
	TvSeries,
	Anime,
	OVA,
	AsianDrama,
	Cartoon,
	Others,
}

// ParseTvType maps a type name back to its constant, case-insensitively.
// Unknown names map to Others.
func ParseTvType(name string) TvType {
	for _, t := range Types {
		if strings.EqualFold(string(t), strings.TrimSpace(name)) {
			return t
		}
	}
	return Others
}

// Classify maps a site's type label onto the shared set with a fixed keyword rule:
// a label mentioning a movie keyword is a movie, one mentioning a TV keyword is a
// series and everything else is an OVA.
func Classify(label string, movieKeyword, tvKeyword string) TvType {
	lower := strings.ToLower(label)
	switch {
	case strings.Contains(lower, strings.ToLower(movieKeyword)):
		return Movie
	case strings.Contains(lower, strings.ToLower(tvKeyword)):
		return Anime
	default:
		return OVA
	}
}

// IsMovie reports whether the type is played as a single file.
func (t TvType) IsMovie() bool {
	return t == Movie || t == AnimeMovie
}

func (t TvType) String() string {
	return string(t)
}
