package provider

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/anisan-cli/streamkit/internal/scraper"
	"github.com/anisan-cli/streamkit/key"
	"github.com/anisan-cli/streamkit/log"
	"github.com/anisan-cli/streamkit/network"
	"github.com/anisan-cli/streamkit/where"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// SourcesUpdatedMsg is sent to the bubbletea event loop once an update check finishes.
type SourcesUpdatedMsg struct {
	Updated []string
	Err     error
}

// UpdateSources refreshes the named scripts from repository.
// With no names, every installed script (and common.lua) is checked.
// It returns the files that changed; a failure on one file does not stop the others.
func UpdateSources(ctx context.Context, repository string, names ...string) ([]string, error) {
	repository = strings.TrimSuffix(repository, "/")
	if repository == "" {
		repository = strings.TrimSuffix(viper.GetString(key.SourcesRepository), "/")
	}

	if len(names) == 0 {
		names = installedScripts()
	}

	var (
		updated []string
		errs    []error
	)

	for _, name := range lo.Uniq(names) {
		file := name
		if filepath.Ext(file) != ".lua" {
			file += ".lua"
		}

		changed, err := scraper.Sync(ctx, network.Client(), repository+"/"+file, filepath.Join(where.Sources(), file))
		if err != nil {
			log.Warnf("source update failed for %s: %s", file, err)
			errs = append(errs, fmt.Errorf("%s: %w", file, err))
			continue
		}

		if changed {
			log.Infof("updated source script %s", file)
			updated = append(updated, file)
		}
	}

	if len(errs) > 0 && len(updated) == 0 {
		return nil, errs[0]
	}

	return updated, nil
}

// UpdateSourcesCmd runs UpdateSources in the background for the TUI.
func UpdateSourcesCmd(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		updated, err := UpdateSources(ctx, "")
		return SourcesUpdatedMsg{Updated: updated, Err: err}
	}
}

func installedScripts() []string {
	names := lo.Map(Customs(), func(p *Provider, _ int) string {
		return p.Name + ".lua"
	})
	return append([]string{"common.lua"}, names...)
}
