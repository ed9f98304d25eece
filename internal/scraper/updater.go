// Package scraper compiles and refreshes Lua adapter scripts.
package scraper

import (
	"context"
	"crypto/sha256"
	"net/http"
	"os"

	"github.com/anisan-cli/streamkit/filesystem"
	"github.com/anisan-cli/streamkit/network"
)

// Sync downloads remoteURL and swaps it into localPath when its SHA-256 differs
// from the local copy. It reports whether the file changed.
func Sync(ctx context.Context, client *http.Client, remoteURL, localPath string) (bool, error) {
	remote, err := network.Do(ctx, client, network.Request{Method: http.MethodGet, URL: remoteURL})
	if err != nil {
		return false, err
	}

	if local, err := filesystem.API().ReadFile(localPath); err == nil {
		if sha256.Sum256(local) == sha256.Sum256(remote) {
			return false, nil
		}
	}

	if err := filesystem.WriteFileAtomic(localPath, remote, os.ModePerm); err != nil {
		return false, err
	}

	Invalidate(localPath)
	return true, nil
}
