package constants

import "time"

// Harvest endpoints.
const (
	// DefaultBaseURL is the Harvest API host used when no base URL is configured.
	DefaultBaseURL = "https://harvest.greenhouse.io"

	// CandidateProfileBaseURL is the Greenhouse web app path for candidate profiles.
	CandidateProfileBaseURL = "https://app7.greenhouse.io/people/"
)

// HTTP header names and values.
const (
	// HeaderOnBehalfOf attributes a write to a Greenhouse user for auditing.
	HeaderOnBehalfOf = "On-Behalf-Of"

	// HeaderAuthorization carries the Basic credential.
	HeaderAuthorization = "Authorization"

	// ContentTypeJSON is sent on every request.
	ContentTypeJSON = "application/json"

	// DefaultUserAgent identifies the client when no user agent is configured.
	DefaultUserAgent = "harvest-client-go"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// MaxErrorBodySize caps how much of a failed response body is kept (64KB).
	MaxErrorBodySize = 64 << 10
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// Format constants.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatTable for table output format.
	FormatTable = "table"

	// JSONIndentSize is the number of spaces for JSON and YAML indentation.
	JSONIndentSize = 2
)

// UI and display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"

	// DescriptionDisplayLength is the default length for displaying descriptions.
	DescriptionDisplayLength = 60
)

// Pagination defaults.
const (
	// DefaultPerPage is the page size the CLI asks for when none is given.
	DefaultPerPage = 100

	// MaxPerPage is the largest page size Harvest accepts.
	MaxPerPage = 500
)

// Custom field option list types.
const (
	// CustomFieldOptionsActive lists only active options.
	CustomFieldOptionsActive = "active"
)

// CLI fan-out.
const (
	// MaxConcurrentRequests bounds parallel requests when a command takes several IDs.
	MaxConcurrentRequests = 5
)
