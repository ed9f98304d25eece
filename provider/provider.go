// Package provider manages built-in and custom site adapters.
package provider

import (
	"bytes"
	"path/filepath"
	"sort"
	"strings"

	"github.com/anisan-cli/streamkit/filesystem"
	"github.com/anisan-cli/streamkit/provider/anilibria"
	"github.com/anisan-cli/streamkit/provider/custom"
	"github.com/anisan-cli/streamkit/source"
	"github.com/anisan-cli/streamkit/where"
	"github.com/samber/lo"
)

// Provider describes an adapter without constructing it.
type Provider struct {
	ID           string
	Name         string
	Lang         string
	Types        []source.TvType
	UsesHeadless bool // Indicates whether the provider requires a headless browser.
	IsCustom     bool
	CreateSource func() (source.Source, error)
}

func (p *Provider) String() string {
	return p.Name
}

// Builtins returns built-in providers.
func Builtins() []*Provider {
	return []*Provider{
		{
			ID:           anilibria.ID,
			Name:         anilibria.Name,
			Lang:         "ru",
			Types:        []source.TvType{source.Anime, source.AnimeMovie, source.OVA},
			CreateSource: anilibria.NewFromConfig,
		},
	}
}

// Customs returns all available Lua providers.
func Customs() []*Provider {
	providers, _ := CustomProviders()
	return providers
}

// All returns built-in providers followed by custom ones, each group sorted by name.
func All() []*Provider {
	builtins, customs := Builtins(), Customs()
	for _, group := range [][]*Provider{builtins, customs} {
		sort.SliceStable(group, func(i, j int) bool {
			return strings.ToLower(group[i].Name) < strings.ToLower(group[j].Name)
		})
	}
	return append(builtins, customs...)
}

// Get finds a provider by name or ID, ignoring case.
func Get(name string) (*Provider, bool) {
	name = strings.TrimSpace(name)
	return lo.Find(All(), func(p *Provider) bool {
		return strings.EqualFold(p.Name, name) || strings.EqualFold(p.ID, name)
	})
}

// CustomProviders lists the Lua scripts in the sources directory.
func CustomProviders() ([]*Provider, error) {
	files, err := filesystem.API().ReadDir(where.Sources())
	if err != nil {
		return nil, err
	}

	var providers []*Provider
	for _, f := range files {
		if f.IsDir() || filepath.Ext(f.Name()) != ".lua" {
			continue
		}

		if f.Name() == "common.lua" {
			continue
		}

		path := filepath.Join(where.Sources(), f.Name())
		header := custom.ReadHeader(path)
		name := strings.TrimSuffix(f.Name(), ".lua")

		providers = append(providers, &Provider{
			ID:           custom.IDfromName(name),
			Name:         name,
			Lang:         header.Lang,
			Types:        header.Types,
			UsesHeadless: isHeadless(path),
			IsCustom:     true,
			CreateSource: func() (source.Source, error) {
				return custom.LoadSource(path)
			},
		})
	}

	return providers, nil
}

// Helpers

func isHeadless(path string) bool {
	content, err := filesystem.API().ReadFile(path)
	if err != nil {
		return false
	}

	match := [][]byte{
		[]byte("require(\"headless\")"),
		[]byte("require('headless')"),
	}

	for _, m := range match {
		if bytes.Contains(content, m) {
			return true
		}
	}
	return false
}
