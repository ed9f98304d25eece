// Package cache provides filesystem-based caching for raw upstream responses.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/anisan-cli/streamkit/filesystem"
	"github.com/anisan-cli/streamkit/log"
	"github.com/anisan-cli/streamkit/where"
)

// TTL is the lifetime of a cached response.
const TTL = 7 * 24 * time.Hour

// GenerateKey generates a deterministic SHA-256 hash from a request and method pair for use as a cache identifier.
func GenerateKey(request, method string) string {
	sanitized := strings.ToLower(strings.ReplaceAll(request, " ", "")) + strings.ToUpper(method)
	hash := sha256.Sum256([]byte(sanitized))
	return hex.EncodeToString(hash[:])
}

// Read attempts to retrieve and deserialize a cached object if it exists and has not exceeded its TTL.
func Read(key string, target any) bool {
	path := filepath.Join(where.Responses(), key)

	info, err := filesystem.API().Stat(path)
	if err != nil || time.Since(info.ModTime()) > TTL {
		return false
	}

	data, err := filesystem.API().ReadFile(path)
	if err != nil {
		return false
	}

	return json.Unmarshal(data, target) == nil
}

// Write persists a serializable object to the cache using an atomic file swap.
func Write(key string, data any) error {
	encoded, err := json.Marshal(data)
	if err != nil {
		return err
	}

	return filesystem.WriteFileAtomic(filepath.Join(where.Responses(), key), encoded, os.ModePerm)
}

// CollectGarbage prunes expired cache entries in the background.
func CollectGarbage() {
	go func() {
		removed := 0
		_ = filesystem.API().Walk(where.Responses(), func(path string, info fs.FileInfo, err error) error {
			if err != nil || info.IsDir() {
				return nil
			}
			if time.Since(info.ModTime()) > TTL {
				if filesystem.API().Remove(path) == nil {
					removed++
				}
			}
			return nil
		})

		if removed > 0 {
			log.Debugf("removed %d expired responses", removed)
		}
	}()
}
