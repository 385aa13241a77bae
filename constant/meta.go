// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// App is the canonical application identifier used for filesystem paths and CLI branding.
	App = "livestream"

	// Version is the current application semantic version string.
	Version = "0.3.1"

	// UserAgent is the default HTTP User-Agent sent to the upstream API.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	// DefaultBaseURL is the upstream catalog and stream API used when no override is configured.
	DefaultBaseURL = "https://streamed.pk"

	// Repository is the GitHub owner/name pair used for release checks.
	Repository = "abouramd/live-stream"
)

// Build metadata, overridden through -ldflags at release time.
var (
	BuiltAt  string
	BuiltBy  string
	Revision string
)
