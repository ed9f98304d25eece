// Package key holds the viper keys of every configuration field.
package key

// DefinedFieldsCount is the number of fields config.Default must register.
const DefinedFieldsCount = 21

// sources
const (
	DefaultSources    = "sources.default"
	SourcesRepository = "sources.repository"
)

// built-in anilibria adapter
const (
	AnilibriaURL = "anilibria.url"
)

// tracker enrichment
const (
	TrackerEnable     = "tracker.enable"
	TrackerEndpoint   = "tracker.endpoint"
	TrackerCacheHours = "tracker.cache_hours"
)

// shared http client
const (
	NetworkTimeout        = "network.timeout"
	NetworkTLSFingerprint = "network.tls_fingerprint"
)

const (
	HistorySaveOnPlay = "history.save_on_play"
)

const (
	SearchShowQuerySuggestions = "search.show_query_suggestions"
)

// prompt front-end
const (
	MiniSearchLimit = "mini.search_limit"
)

const (
	IconsVariant = "icons.variant"
)

// bubbletea front-end
const (
	TUIItemSpacing     = "tui.item_spacing"
	TUIShowURLs        = "tui.show_urls"
	TUIReverseEpisodes = "tui.reverse_episodes"
)

// Player is the executable episodes are handed to.
const (
	Player = "player.default"
)

const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
