package config

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/anisan-cli/streamkit/color"
	"github.com/anisan-cli/streamkit/constant"
	"github.com/anisan-cli/streamkit/key"
	"github.com/anisan-cli/streamkit/style"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field is a configuration key with its default value.
// The type of Value is the type the key accepts.
type Field struct {
	Key         string
	Value       any
	Description string
}

var fields = []Field{
	{key.DefaultSources, []string{"anilibria"}, "Default sources to use.\nWill prompt if not set.\nType \"streamkit sources list\" to show available sources"},
	{key.SourcesRepository, "https://raw.githubusercontent.com/anisan-cli/streamkit-sources/main", "Repository that \"streamkit sources update\" downloads Lua adapters from"},
	{key.AnilibriaURL, "https://anilibria.tv", "Base URL of the anilibria site.\nChange it when the site moves to a mirror"},
	{key.TrackerEnable, true, "Look up MyAnimeList and Anilist identifiers and art for loaded titles"},
	{key.TrackerEndpoint, "https://api.consumet.org/meta/anilist", "Metadata endpoint the tracker queries.\nThe title is appended as the last path segment"},
	{key.TrackerCacheHours, 24, "How long tracker lookups are cached, in hours"},
	{key.NetworkTimeout, 60, "HTTP request timeout, in seconds"},
	{key.NetworkTLSFingerprint, false, "Connect with a Chrome TLS fingerprint.\nHelps with sites behind anti-bot proxies"},
	{key.HistorySaveOnPlay, true, "Save the episode to the history when it is played"},
	{key.SearchShowQuerySuggestions, true, "Suggest previous queries while typing a search"},
	{key.MiniSearchLimit, 20, "Maximum number of search results the mini mode lists"},
	{key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)"},
	{key.TUIItemSpacing, 1, "Spacing between list items in the TUI"},
	{key.TUIShowURLs, true, "Show URLs under list items"},
	{key.TUIReverseEpisodes, false, "List episodes from the newest"},
	{key.Player, "mpv", "Player that receives the links.\nmpv, iina and vlc get the referer and subtitles, others are started with the link only"},
	{key.LogsWrite, false, "Write logs"},
	{key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace"},
	{key.LogsJson, false, "Use json format for logs"},
	{key.CliColored, true, "Enable colored CLI output"},
	{key.CliVersionCheck, true, "Check for a newer release when showing help or the version"},
}

// Default indexes every field by key.
var Default = lo.KeyBy(fields, func(f Field) string { return f.Key })

// EnvExposed lists the keys that can be set from the environment.
var EnvExposed = lo.Map(fields, func(f Field, _ int) string { return f.Key })

func init() {
	if len(Default) != len(fields) {
		panic("duplicate config key")
	}
}

// Env is the environment variable that overrides the field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.Streamkit) + "_"
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

func (f *Field) typeName() string {
	return fmt.Sprintf("%T", f.Value)
}

// MarshalJSON includes the current value next to the default.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
	})
}

// Pretty describes the field for the terminal.
func (f *Field) Pretty() string {
	label := style.Fg(color.Blue)
	rows := []string{
		style.Faint(f.Description),
		label("Key:") + "     " + style.Fg(color.Purple)(f.Key),
		label("Env:") + "     " + f.Env(),
		label("Value:") + "   " + highlight(viper.Get(f.Key)),
		label("Default:") + " " + highlight(f.Value),
		label("Type:") + "    " + f.typeName(),
	}
	return strings.Join(rows, "\n")
}

func highlight(v any) string {
	switch value := v.(type) {
	case bool:
		if value {
			return style.Fg(color.Green)("true")
		}
		return style.Fg(color.Red)("false")
	case string:
		return style.Fg(color.Yellow)(value)
	default:
		return fmt.Sprint(value)
	}
}
