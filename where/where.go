// Package where locates the directories and files streamkit keeps on disk.
// Directories are created on first use.
package where

import (
	"os"
	"path/filepath"

	"github.com/anisan-cli/streamkit/constant"
	"github.com/anisan-cli/streamkit/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath overrides the config directory.
const EnvConfigPath = "STREAMKIT_CONFIG_PATH"

func mkdir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config is the directory holding the config file, sources, logs and history.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return mkdir(custom)
	}

	return mkdir(filepath.Join(lo.Must(os.UserConfigDir()), constant.Streamkit))
}

// Cache falls back to ./cache when the OS reports no cache directory.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return mkdir(filepath.Join(base, constant.Streamkit))
}

func Logs() string {
	return mkdir(filepath.Join(Config(), "logs"))
}

// Sources holds installed Lua adapters.
func Sources() string {
	return mkdir(filepath.Join(Config(), "sources"))
}

func History() string {
	return filepath.Join(Config(), "history.json")
}

func Tracker() string {
	return filepath.Join(Cache(), "tracker.json")
}

// Queries stores remembered search queries.
func Queries() string {
	return filepath.Join(Cache(), "queries.json")
}

// Responses holds http_tls bodies cached by Lua adapters.
func Responses() string {
	return mkdir(filepath.Join(Cache(), "responses"))
}

func Temp() string {
	return mkdir(filepath.Join(os.TempDir(), constant.Streamkit))
}
