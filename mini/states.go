package mini

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/anisan-cli/streamkit/history"
	"github.com/anisan-cli/streamkit/key"
	"github.com/anisan-cli/streamkit/player"
	"github.com/anisan-cli/streamkit/provider"
	"github.com/anisan-cli/streamkit/query"
	"github.com/anisan-cli/streamkit/source"
	"github.com/anisan-cli/streamkit/util"
	"github.com/spf13/viper"
)

type state int

const (
	searchState state = iota + 1
	resultSelectState
	sourceSelectState
	modeSelectState
	sectionSelectState
	episodeSelectState
	episodePlayState
	historySelectState
	quitState
)

var (
	oneEpisodeInput = regexp.MustCompile(`^\d+$`)
	rangeInput      = regexp.MustCompile(`^\d+ \d+$`)
)

func (m *mini) handleSourceSelectState() error {
	var err error

	if names := viper.GetStringSlice(key.DefaultSources); len(names) == 1 {
		p, ok := provider.Get(names[0])
		if !ok {
			return fmt.Errorf("unknown source \"%s\"", names[0])
		}

		m.selectedSource, err = p.CreateSource()
		if err != nil {
			return err
		}
	} else {
		title("Select Source")
		b, p, err := menu(provider.All())
		if err != nil {
			return err
		}

		if quit.eq(b) {
			m.newState(quitState)
			return nil
		}

		erase := progress("Initializing Source..")
		m.selectedSource, err = p.CreateSource()
		erase()
		if err != nil {
			return err
		}
	}

	if len(m.selectedSource.MainPages()) == 0 {
		m.newState(searchState)
	} else {
		m.newState(modeSelectState)
	}
	return nil
}

func (m *mini) handleModeSelectState() error {
	title(m.selectedSource.Name())
	b, section, err := menu(m.selectedSource.MainPages(), search, back)
	if err != nil {
		return err
	}

	switch b {
	case quit:
		m.newState(quitState)
	case back:
		m.previousState()
	case search:
		m.newState(searchState)
	default:
		m.section = section
		m.newState(sectionSelectState)
	}
	return nil
}

func (m *mini) handleSectionSelectState() error {
	erase := progress("Loading " + m.section.Name + "..")
	page, err := m.selectedSource.Homepage(m.ctx, 1, m.section)
	erase()
	if err != nil {
		return err
	}

	m.query = "@" + m.section.Data
	m.cachedResults[m.query] = limit(page.Items)

	if len(page.Items) == 0 {
		fail("Section is empty")
		m.previousState()
		return nil
	}

	m.setState(resultSelectState)
	return nil
}

func (m *mini) handleSearchState() error {
	title("Search")

	in, err := getInput(func(s string) bool {
		return strings.TrimSpace(s) != ""
	})
	if err != nil {
		return err
	}

	q := strings.TrimSpace(in.value)

	erase := progress("Searching Query..")
	results, err := m.selectedSource.Search(m.ctx, q)
	erase()
	if err != nil {
		return err
	}

	if len(results) == 0 {
		fail("No search results found")
		return nil
	}

	_ = query.Remember(q, 1)
	m.cachedResults[q] = limit(results)
	m.query = q
	m.newState(resultSelectState)
	return nil
}

func (m *mini) handleResultSelectState() error {
	title("Query Results >>")
	b, r, err := menu(m.cachedResults[m.query], back)
	if err != nil {
		return err
	}

	switch b {
	case quit:
		m.newState(quitState)
	case back:
		m.previousState()
	default:
		m.selectedResult = r
		m.newState(episodeSelectState)
	}
	return nil
}

func (m *mini) load(url string) (*source.Detail, error) {
	if d, ok := m.cachedDetails[url]; ok {
		return d, nil
	}

	erase := progress("Loading Episodes..")
	d, err := m.selectedSource.Load(m.ctx, url)
	erase()
	if err != nil {
		return nil, err
	}

	m.cachedDetails[url] = d
	return d, nil
}

func (m *mini) handleEpisodeSelectState() error {
	detail, err := m.load(m.selectedResult.URL)
	if err != nil {
		return err
	}
	m.selectedDetail = detail

	episodes := detail.Episodes
	if len(episodes) == 0 {
		fail("No episodes found")
		m.previousState()
		return nil
	}

	title(fmt.Sprintf("%s. To specify a range, use: start_number end_number (Episodes: 1-%d)", detail.Name, len(episodes)))
	in, err := getInput(func(s string) bool {
		_, _, ok := parseEpisodeInput(s, len(episodes))
		return ok || s == "q" || s == "b"
	})
	if err != nil {
		return err
	}

	switch in.value {
	case "q":
		m.newState(quitState)
		return nil
	case "b":
		m.previousState()
		return nil
	}

	from, to, _ := parseEpisodeInput(in.value, len(episodes))
	m.selectedEpisodes = episodes[from-1 : to]
	m.newState(episodePlayState)
	return nil
}

// parseEpisodeInput reads "n" or "a b" into a 1-based inclusive range within total.
func parseEpisodeInput(s string, total int) (from, to int, ok bool) {
	s = strings.TrimSpace(s)

	switch {
	case rangeInput.MatchString(s):
		l := strings.Split(s, " ")
		a, err1 := strconv.Atoi(l[0])
		b, err2 := strconv.Atoi(l[1])
		if err1 != nil || err2 != nil {
			return 0, 0, false
		}
		if 0 < a && a <= b && b <= total {
			return a, b, true
		}
	case oneEpisodeInput.MatchString(s):
		a, err := strconv.Atoi(s)
		if err == nil && 0 < a && a <= total {
			return a, a, true
		}
	}

	return 0, 0, false
}

func (m *mini) play(episode *source.Episode) error {
	erase := progress("Resolving Links..")
	links, err := source.CollectLinks(m.ctx, m.selectedSource, episode.Data, false)
	erase()
	if err != nil {
		return err
	}

	link := source.BestLink(links.Links)
	fmt.Printf("Playing %s (%s)\n", episode, link.Quality)

	name := fmt.Sprintf("%s - %s", m.selectedDetail.Name, episode)
	if err := player.Play(m.ctx, player.FromLink(link, name, links.Subtitles)); err != nil {
		return err
	}

	if viper.GetBool(key.HistorySaveOnPlay) {
		_ = history.Save(m.selectedDetail, episode)
	}
	return nil
}

func (m *mini) handleEpisodePlayState() error {
	i := 0
	needsPlay := true

	for {
		episode := m.selectedEpisodes[i]

		if needsPlay {
			util.ClearScreen()
			if err := m.play(episode); err != nil {
				fail(err.Error())
			}
		}

		title(fmt.Sprintf("Watched %s", episode))

		var options []*bind
		if i > 0 {
			options = append(options, prev)
		}
		if i+1 < len(m.selectedEpisodes) {
			options = append(options, next)
		}
		options = append(options, replay, back, search)

		b, _, err := menu([]fmt.Stringer{}, options...)
		if err != nil {
			return err
		}

		needsPlay = true
		switch b {
		case next:
			i++
		case prev:
			i--
		case replay:
		case back:
			m.previousState()
			return nil
		case search:
			m.newState(searchState)
			return nil
		case quit:
			m.newState(quitState)
			return nil
		default:
			needsPlay = false
		}
	}
}

func (m *mini) handleHistorySelectState() error {
	saved, err := history.List()
	if err != nil {
		return err
	}

	if len(saved) == 0 {
		fail("History is empty")
		m.newState(sourceSelectState)
		return nil
	}

	title("History Results >>")
	b, c, err := menu(saved)
	if err != nil {
		return err
	}

	if quit.eq(b) {
		m.newState(quitState)
		return nil
	}

	p, ok := provider.Get(c.SourceID)
	if !ok {
		return fmt.Errorf("source %s is not installed", c.SourceID)
	}

	erase := progress("Initializing Source..")
	s, err := p.CreateSource()
	erase()
	if err != nil {
		return err
	}
	m.selectedSource = s

	detail, err := m.load(c.TitleURL)
	if err != nil {
		return err
	}
	m.selectedDetail = detail
	m.selectedResult = &source.SearchResult{Name: detail.Name, URL: detail.URL, SourceID: s.ID()}

	start := min(max(c.Index, 1), len(detail.Episodes))
	if start == 0 {
		fail("No episodes found")
		m.newState(quitState)
		return nil
	}

	m.selectedEpisodes = detail.Episodes[start-1:]
	m.newState(episodePlayState)
	return nil
}

func limit(results []*source.SearchResult) []*source.SearchResult {
	if n := viper.GetInt(key.MiniSearchLimit); n > 0 && len(results) > n {
		return results[:n]
	}
	return results
}
