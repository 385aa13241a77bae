// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Upstream API - these keys control how the catalog and stream endpoints are reached.
const (
	APIBaseURL   = "api.base_url"
	APITimeout   = "api.timeout"
	APIUserAgent = "api.user_agent"
)

// Network transport tuning.
const (
	NetworkTLSFingerprint = "network.tls_fingerprint"
)

// Catalog browsing.
const (
	CatalogDefaultCategory = "catalog.default_category"
)

// Match resolution - the snapshot scanned for id lookups and the optional index lifetime.
const (
	ResolverCategory = "resolver.category"
	ResolverIndexTTL = "resolver.index_ttl"
)

// Watch flow - stream lookup bounds and how chosen embeds are opened.
const (
	WatchTimeout      = "watch.timeout"
	WatchBrowser      = "watch.browser"
	WatchOpenOnSelect = "watch.open_on_select"
)

// Minimalist (Mini) Mode - these keys configure the prompt-driven interface.
const (
	MiniPageSize = "mini.page_size"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Terminal User Interface (TUI).
const (
	TUIItemSpacing = "tui.item_spacing"
	TUIShowURLs    = "tui.show_urls"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern the non-TUI application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
