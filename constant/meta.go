// Package constant holds the application identifiers and the Lua adapter contract names.
package constant

import _ "embed"

const (
	// Streamkit names the binary, the config file and the data directories.
	Streamkit = "streamkit"

	Version = "0.3.0"

	// UserAgent is sent to content sites that reject unknown clients.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Build metadata, set with -ldflags "-X".
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)

// runtime.GOOS values with platform specific behavior.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
	Android = "android"
)

//go:embed ascii.txt
var AsciiArtLogo string
