package anilibria

import (
	"context"
	"regexp"
	"strings"

	"github.com/anisan-cli/streamkit/source"
	"github.com/anisan-cli/streamkit/util"
)

var qualityTag = regexp.MustCompile(`\[([0-9]+p)]`)

// LoadLinks splits episode data into one link per comma-separated token.
// A token looks like "[720p]https://host/playlist.m3u8"; the tag is optional.
func (s *Source) LoadLinks(ctx context.Context, data string, _ bool, _ func(*source.Subtitle), onLink func(*source.ExtractorLink)) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	for _, token := range strings.Split(data, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		var quality string
		if m := qualityTag.FindStringSubmatch(token); m != nil {
			quality = m[1]
			token = strings.TrimPrefix(token, "["+quality+"]")
		}

		link := strings.TrimSpace(token)
		if strings.HasPrefix(link, "//") {
			link = util.ResolveURL(s.baseURL, link)
		}

		onLink(&source.ExtractorLink{
			Source:          Name,
			Name:            Name,
			URL:             link,
			Quality:         source.QualityFromName(quality),
			Referer:         s.referer(),
			RequiresReferer: true,
		})
	}

	return true, nil
}
