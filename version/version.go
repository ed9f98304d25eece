// Package version checks for newer releases.
package version

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/anisan-cli/streamkit/filesystem"
	"github.com/anisan-cli/streamkit/network"
	"github.com/anisan-cli/streamkit/where"
	"github.com/metafates/gache"
)

// ReleasesURL is the GitHub API endpoint for the latest release.
var ReleasesURL = "https://api.github.com/repos/anisan-cli/streamkit/releases/latest"

var versionCacher = gache.New[string](&gache.Options{
	Path:       filepath.Join(where.Cache(), "version.json"),
	Lifetime:   time.Hour * 24 * 2,
	FileSystem: &filesystem.GacheFs{},
})

// Latest returns the newest released version without the "v" prefix.
// The answer is cached for two days.
func Latest(ctx context.Context) (string, error) {
	ver, expired, err := versionCacher.Get()
	if err != nil {
		return "", err
	}

	if !expired && ver != "" {
		return ver, nil
	}

	body, err := network.Do(ctx, network.Client(), network.Request{
		URL:     ReleasesURL,
		Headers: map[string]string{"Accept": "application/vnd.github+json"},
	})
	if err != nil {
		return "", err
	}

	var release struct {
		TagName string `json:"tag_name"`
	}

	if err := json.Unmarshal(body, &release); err != nil {
		return "", err
	}

	if release.TagName == "" {
		return "", errors.New("empty tag name")
	}

	ver = strings.TrimPrefix(release.TagName, "v")
	_ = versionCacher.Set(ver)
	return ver, nil
}
