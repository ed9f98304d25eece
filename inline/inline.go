// Package inline runs the search, load and resolve pipeline without prompts.
package inline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/anisan-cli/streamkit/log"
	"github.com/anisan-cli/streamkit/source"
	"github.com/samber/lo"
)

type found struct {
	src    source.Source
	result *source.SearchResult
}

func Run(ctx context.Context, options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	results, err := search(ctx, options)
	if err != nil {
		return err
	}

	selected := results
	if options.ResultPicker.IsPresent() {
		picker := options.ResultPicker.MustGet()
		choice := picker(lo.Map(results, func(f found, _ int) *source.SearchResult { return f.result }))
		selected = lo.Filter(results, func(f found, _ int) bool { return f.result == choice })
	}

	titles := make([]*Title, 0, len(selected))
	for _, f := range selected {
		title := &Title{Source: f.src.Name(), Result: f.result}

		// Without a picker only the listing is printed.
		if options.ResultPicker.IsPresent() {
			if err := prepare(ctx, f.src, title, options); err != nil {
				return err
			}
		}

		titles = append(titles, title)
	}

	if options.Json {
		return writeJson(options.Out, titles, options)
	}

	return writePlain(options.Out, titles)
}

// search queries every source in order. One failing source is logged and skipped;
// the error is returned only when all of them fail.
func search(ctx context.Context, options *Options) ([]found, error) {
	var (
		results []found
		errs    []error
	)

	for _, src := range options.Sources {
		items, err := src.Search(ctx, options.Query)
		if err != nil {
			log.Warnf("search failed for %s: %s", src.Name(), err)
			errs = append(errs, fmt.Errorf("%s: %w", src.Name(), err))
			continue
		}

		for _, item := range items {
			results = append(results, found{src: src, result: item})
		}
	}

	if len(errs) > 0 && len(errs) == len(options.Sources) {
		return nil, errors.Join(errs...)
	}

	return results, nil
}

func prepare(ctx context.Context, src source.Source, title *Title, options *Options) error {
	detail, err := src.Load(ctx, title.Result.URL)
	if err != nil {
		return err
	}

	if options.EpisodesFilter.IsPresent() {
		filter := options.EpisodesFilter.MustGet()
		filtered, err := filter(detail.Episodes)
		if err != nil {
			return err
		}
		detail.Episodes = filtered
	}

	title.Detail = detail

	if !options.Links {
		return nil
	}

	for _, ep := range detail.Episodes {
		links, err := source.CollectLinks(ctx, src, ep.Data, options.IsCasting)
		if err != nil {
			log.Warnf("failed to resolve links for %s: %s", ep, err)
			continue
		}

		title.Streams = append(title.Streams, &Stream{
			Episode:   ep.Index,
			Links:     links.Links,
			Subtitles: links.Subtitles,
		})
	}

	return nil
}

func writeJson(out io.Writer, titles []*Title, options *Options) error {
	data, err := asJson(titles, options.Query)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}

// writePlain prints one line per result, episode or link, whichever is the deepest level reached.
func writePlain(out io.Writer, titles []*Title) error {
	for _, title := range titles {
		switch {
		case len(title.Streams) > 0:
			for _, stream := range title.Streams {
				for _, link := range stream.Links {
					if _, err := fmt.Fprintln(out, link.URL); err != nil {
						return err
					}
				}
			}
		case title.Detail != nil:
			for _, ep := range title.Detail.Episodes {
				if _, err := fmt.Fprintf(out, "%d\t%s\n", ep.Index, ep); err != nil {
					return err
				}
			}
		default:
			if _, err := fmt.Fprintf(out, "%s\t%s\n", title.Result.Name, title.Result.URL); err != nil {
				return err
			}
		}
	}

	return nil
}
