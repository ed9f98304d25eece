// Package history remembers the last watched episode of every title.
package history

import (
	"errors"
	"sort"

	"github.com/anisan-cli/streamkit/filesystem"
	"github.com/anisan-cli/streamkit/source"
	"github.com/anisan-cli/streamkit/where"
	"github.com/metafates/gache"
	"github.com/samber/lo"
)

var cacher = gache.New[map[string]*SavedEpisode](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Get returns every saved record keyed by title and source.
func Get() (map[string]*SavedEpisode, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*SavedEpisode), nil
	}
	return cached, nil
}

// List returns the saved records, most recently watched first.
func List() ([]*SavedEpisode, error) {
	saved, err := Get()
	if err != nil {
		return nil, err
	}

	list := lo.Values(saved)
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].WatchedAt.After(list[j].WatchedAt)
	})
	return list, nil
}

// Save records episode as the last watched one of detail.
func Save(detail *source.Detail, episode *source.Episode) error {
	if detail == nil || episode == nil {
		return errors.New("history: nothing to save")
	}

	saved, err := Get()
	if err != nil {
		return err
	}

	record := newSavedEpisode(detail, episode)
	saved[record.encode()] = record

	return cacher.Set(saved)
}

// Remove deletes a record.
func Remove(episode *SavedEpisode) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	delete(saved, episode.encode())
	return cacher.Set(saved)
}

// Clear deletes every record.
func Clear() error {
	return cacher.Set(make(map[string]*SavedEpisode))
}
