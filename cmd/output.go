package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/anisan-cli/streamkit/color"
	"github.com/anisan-cli/streamkit/icon"
	"github.com/anisan-cli/streamkit/key"
	"github.com/anisan-cli/streamkit/provider"
	"github.com/anisan-cli/streamkit/source"
	"github.com/anisan-cli/streamkit/style"
	"github.com/spf13/viper"
)

// defaultSource creates the first of the default sources.
func defaultSource() (source.Source, error) {
	names := viper.GetStringSlice(key.DefaultSources)
	if len(names) == 0 || strings.TrimSpace(names[0]) == "" {
		return nil, errors.New("source not set, use --source or \"config set sources.default\"")
	}

	p, ok := provider.Get(names[0])
	if !ok {
		return nil, fmt.Errorf("source not found: %s", names[0])
	}

	return p.CreateSource()
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func writeResults(w io.Writer, results []*source.SearchResult) {
	if len(results) == 0 {
		_, _ = fmt.Fprintln(w, style.Faint("Nothing found"))
		return
	}

	for i, r := range results {
		name := r.Name
		if r.Dubbed {
			name += " " + style.Faint("dub")
		}
		_, _ = fmt.Fprintf(w, "%s %s %s\n", style.Faint(fmt.Sprintf("%3d", i)), style.Bold(name), style.Fg(color.Blue)(string(r.Type)))
		_, _ = fmt.Fprintf(w, "    %s\n", style.Faint(r.URL))
	}
}

func writeDetail(w io.Writer, d *source.Detail) {
	_, _ = fmt.Fprintln(w, style.Title(d.Name))
	_, _ = fmt.Fprintln(w)

	facts := []string{string(d.Type)}
	if d.Year > 0 {
		facts = append(facts, fmt.Sprint(d.Year))
	}
	if d.DubStatus != "" {
		facts = append(facts, string(d.DubStatus))
	}
	_, _ = fmt.Fprintln(w, style.Fg(color.Blue)(strings.Join(facts, " • ")))

	if len(d.Tags) > 0 {
		_, _ = fmt.Fprintln(w, style.Faint(strings.Join(d.Tags, ", ")))
	}
	for _, u := range d.ExternalURLs() {
		_, _ = fmt.Fprintln(w, style.Faint(u))
	}
	if d.Plot != "" {
		_, _ = fmt.Fprintln(w)
		_, _ = fmt.Fprintln(w, style.Wrap(80)(d.Plot))
	}

	_, _ = fmt.Fprintln(w)
	for _, e := range d.Episodes {
		_, _ = fmt.Fprintf(w, "%s %s\n", style.Faint(fmt.Sprintf("%4d", e.Index)), e)
	}
}

func writeLinks(w io.Writer, links *source.Links) {
	for _, l := range links.Links {
		_, _ = fmt.Fprintf(w, "%s %s %s\n", icon.Get(icon.Link), style.Quality(int(l.Quality), l.Quality.String()), l.Name)
		_, _ = fmt.Fprintf(w, "    %s\n", l.URL)
		if l.RequiresReferer {
			_, _ = fmt.Fprintf(w, "    %s\n", style.Faint("referer "+l.Referer))
		}
	}

	for _, s := range links.Subtitles {
		_, _ = fmt.Fprintf(w, "%s %s %s\n", icon.Get(icon.Subtitle), s.Lang, style.Faint(s.URL))
	}
}
