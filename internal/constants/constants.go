package constants

import "time"

// API endpoint defaults.
const (
	// DefaultBaseURL is the root of the Statuspage management API.
	DefaultBaseURL = "https://api.statuspage.io/v1/"

	// DefaultUserAgent is sent when no User-Agent is configured.
	DefaultUserAgent = "statuspage-client/1.0"

	// ContentTypeJSON is the media type for request and response bodies.
	ContentTypeJSON = "application/json"
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout bounds a single request on the default HTTP client.
	DefaultHTTPTimeout = 30 * time.Second
)

// Resource path segments.
const (
	PathPages            = "pages"
	PathComponents       = "components"
	PathIncidents        = "incidents"
	PathIncidentUpdates  = "incident_updates"
	PathMetrics          = "metrics"
	PathMetricsProviders = "metrics_providers"
	PathData             = "data"
	PathUptime           = "uptime"
)

// Incident list filters.
const (
	PathActiveMaintenance = "active_maintenance"
	PathUpcoming          = "upcoming"
	PathScheduled         = "scheduled"
	PathUnresolved        = "unresolved"
)

// Request body envelope keys.
const (
	EnvelopePage            = "page"
	EnvelopeComponent       = "component"
	EnvelopeIncident        = "incident"
	EnvelopeIncidentUpdate  = "incident_update"
	EnvelopeMetric          = "metric"
	EnvelopeMetricsProvider = "metrics_provider"
	EnvelopeData            = "data"
)

// UI and display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"

	// SecretVisibleChars is how many leading characters of a secret stay visible.
	SecretVisibleChars = 4

	// DescriptionDisplayLength is the default length for displaying descriptions.
	DescriptionDisplayLength = 60

	// JSONIndentSize is the number of spaces for JSON indentation.
	JSONIndentSize = 2

	// PercentageFormat renders an uptime percentage.
	PercentageFormat = "%.2f%%"
)

// Format constants.
const (
	// FormatTable for table output format.
	FormatTable = "table"

	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"
)

// Boolean string constants.
const (
	// BooleanTrue string representation.
	BooleanTrue = "true"

	// BooleanFalse string representation.
	BooleanFalse = "false"
)
