package constants

import "time"

// Version is stamped into the default User-Agent.
const Version = "0.1.0"

// DefaultUserAgent identifies the client to remote services.
const DefaultUserAgent = "third-party-api-clients/" + Version

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits. Retries stay off unless a caller asks for them.
const (
	// DefaultRetryWaitMin is the minimum wait between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second

	// ExtendedRetryWaitMax is used for operations that need longer waits.
	ExtendedRetryWaitMax = 30 * time.Second
)

// Concurrency limits.
const (
	// DefaultConcurrencyLimit limits concurrent operations.
	DefaultConcurrencyLimit = 3
)

// Pagination limits.
const (
	// MaxPages bounds how many pages a single GetAllPages call follows.
	MaxPages = 1000

	// StandardPageSize is the common page size for list commands.
	StandardPageSize = 50
)

// Default service endpoints.
const (
	DocuSignBaseURL = "https://www.docusign.net/restapi"
	ShipBobBaseURL  = "https://api.shipbob.com/1.0"
	SlackBaseURL    = "https://slack.com/api"
)

// Service names used as configuration keys.
const (
	ServiceDocuSign = "docusign"
	ServiceShipBob  = "shipbob"
	ServiceSlack    = "slack"
)

// Format constants.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatTable for table output format.
	FormatTable = "table"

	// JSONIndentSize is the indent used by YAML and JSON encoders.
	JSONIndentSize = 2
)

// UI and display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"
)

// Validation and limits.
const (
	// MinimumArgumentCount is the argument count of KEY VALUE style commands.
	MinimumArgumentCount = 2
)
