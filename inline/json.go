package inline

import (
	"encoding/json"

	"github.com/anisan-cli/streamkit/source"
)

// Stream holds the resolved links of one episode.
type Stream struct {
	Episode   uint16                  `json:"episode" jsonschema:"description=Index of the episode the links belong to."`
	Links     []*source.ExtractorLink `json:"links"`
	Subtitles []*source.Subtitle      `json:"subtitles"`
}

type Title struct {
	// Source is the name of the adapter.
	Source string `json:"source"`
	// Result is the picked listing item.
	Result *source.SearchResult `json:"result"`
	// Detail is the loaded record with the filtered episodes.
	Detail *source.Detail `json:"detail,omitempty"`
	// Streams is set when links were requested.
	Streams []*Stream `json:"streams,omitempty"`
}

type Output struct {
	Query  string   `json:"query"`
	Result []*Title `json:"result"`
}

func asJson(titles []*Title, query string) ([]byte, error) {
	if titles == nil {
		titles = []*Title{}
	}

	return json.Marshal(&Output{
		Query:  query,
		Result: titles,
	})
}
