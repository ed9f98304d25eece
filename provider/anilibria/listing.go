package anilibria

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/anisan-cli/streamkit/log"
	"github.com/anisan-cli/streamkit/network"
	"github.com/anisan-cli/streamkit/source"
)

const (
	catalogPath = "/public/catalog.php"
	searchPath  = "/public/search.php"

	// emptyFilter is the catalog filter that disables year, genre and season filtering.
	emptyFilter = `{"year":"","genre":"","season":""}`

	invalidJSON = "Invalid json responses"
)

var xhr = map[string]string{"X-Requested-With": "XMLHttpRequest"}

// catalogEnvelope is the catalog response. Table holds an HTML fragment.
type catalogEnvelope struct {
	Table *string `json:"table"`
}

// searchEnvelope is the search response. Mes holds an HTML fragment.
type searchEnvelope struct {
	Mes *string `json:"mes"`
}

// Homepage lists one page of a catalog section.
func (s *Source) Homepage(ctx context.Context, page int, request source.MainPageRequest) (*source.HomePage, error) {
	endpoint := s.baseURL + catalogPath
	form := url.Values{
		"page":   {strconv.Itoa(page)},
		"xpage":  {"catalog"},
		"sort":   {request.Data},
		"finish": {"1"},
		"search": {emptyFilter},
	}

	log.WithFields(log.Fields{"source": ID, "section": request.Name, "page": page}).Info("homepage")

	body, err := network.Do(ctx, s.client, network.Request{
		Method:  http.MethodPost,
		URL:     endpoint,
		Form:    form,
		Headers: xhr,
	})
	if err != nil {
		return nil, &source.LoadError{Op: "homepage", URL: endpoint, Err: err}
	}

	var envelope catalogEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &source.LoadError{Op: "homepage", URL: endpoint, Reason: invalidJSON, Err: err}
	}
	if envelope.Table == nil {
		return nil, &source.LoadError{Op: "homepage", URL: endpoint, Reason: invalidJSON}
	}

	items, err := parseListing(*envelope.Table, s.baseURL)
	if err != nil {
		return nil, &source.LoadError{Op: "homepage", URL: endpoint, Reason: "unparseable table", Err: err}
	}

	return source.NewHomePage(request.Name, items), nil
}

// Search queries the site's quick search.
func (s *Source) Search(ctx context.Context, query string) ([]*source.SearchResult, error) {
	endpoint := s.baseURL + searchPath

	log.WithFields(log.Fields{"source": ID, "query": query}).Info("search")

	body, err := network.Do(ctx, s.client, network.Request{
		Method:  http.MethodPost,
		URL:     endpoint,
		Form:    url.Values{"search": {query}, "small": {"1"}},
		Headers: xhr,
	})
	if err != nil {
		return nil, &source.LoadError{Op: "search", URL: endpoint, Err: err}
	}

	var envelope searchEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &source.LoadError{Op: "search", URL: endpoint, Reason: invalidJSON, Err: err}
	}
	if envelope.Mes == nil {
		return nil, &source.LoadError{Op: "search", URL: endpoint, Reason: invalidJSON}
	}

	items, err := parseListing(*envelope.Mes, s.baseURL)
	if err != nil {
		return nil, &source.LoadError{Op: "search", URL: endpoint, Reason: "unparseable results", Err: err}
	}

	log.Infof("anilibria: %d results for %q", len(items), query)
	return items, nil
}

func (s *Source) String() string {
	return fmt.Sprintf("%s (%s)", Name, s.baseURL)
}
