// Package player hands resolved links to an external video player.
//
// Players are started as separate processes; mpv, iina and vlc get the link's
// title, headers and subtitles as flags, anything else is opened through the system handler.
package player

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/anisan-cli/streamkit/key"
	"github.com/anisan-cli/streamkit/log"
	"github.com/anisan-cli/streamkit/open"
	"github.com/anisan-cli/streamkit/source"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Media is what a player is asked to play.
type Media struct {
	URL       string
	Title     string
	Headers   map[string]string
	Subtitles []string
}

// FromLink builds the Media for link. Headers come from the link's referer requirement.
func FromLink(link *source.ExtractorLink, title string, subtitles []*source.Subtitle) Media {
	return Media{
		URL:     link.URL,
		Title:   title,
		Headers: link.Headers(),
		Subtitles: lo.FilterMap(subtitles, func(s *source.Subtitle, _ int) (string, bool) {
			if s == nil {
				return "", false
			}
			return s.URL, s.URL != ""
		}),
	}
}

// Name returns the configured player, "mpv" when unset.
func Name() string {
	if name := strings.TrimSpace(viper.GetString(key.Player)); name != "" {
		return name
	}
	return "mpv"
}

// Command returns the process that plays m with the named player.
// It fails for players without flag support; those go through Play instead.
func Command(ctx context.Context, name string, m Media) (*exec.Cmd, error) {
	b, ok := backends[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("player %s does not accept flags", name)
	}

	target, err := sanitizeMediaTarget(m.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid media target: %w", err)
	}
	m.URL = target
	m.Title = sanitizeTitle(m.Title)

	bin, args := b(m)
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.SysProcAttr = sysProcAttr()
	cmd.Cancel = func() error { return killProcess(cmd) }
	return cmd, nil
}

// Play starts the configured player and waits until it exits or ctx is done.
func Play(ctx context.Context, m Media) error {
	name := Name()
	log.WithFields(log.Fields{"player": name, "url": m.URL}).Info("play")

	cmd, err := Command(ctx, name, m)
	if err != nil {
		if len(m.Headers) > 0 {
			log.Warnf("%s cannot receive headers, playback may be refused", name)
		}
		return open.RunWith(ctx, m.URL, name)
	}

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
