package constants

import "errors"

// Configuration errors.
var (
	ErrNoAPIKey          = errors.New("no API key configured, use --api-key, STATUSPAGE_API_KEY or 'statuspage config set api_key <key>'")
	ErrNoPageID          = errors.New("no page ID configured, use --page, STATUSPAGE_PAGE_ID or 'statuspage config set page_id <id>'")
	ErrUnknownConfigKey  = errors.New("unknown configuration key")
	ErrInvalidBaseURL    = errors.New("invalid base URL")
	ErrUnsupportedFormat = errors.New("unsupported output format")
)

// Validation errors.
var (
	ErrInvalidStatus       = errors.New("invalid status")
	ErrInvalidBool         = errors.New("invalid boolean value")
	ErrNoFieldsToUpdate    = errors.New("no fields to update, set at least one flag")
	ErrDataFileRequired    = errors.New("--file flag is required")
	ErrInvalidDataFile     = errors.New("data file must map metric IDs to lists of points")
	ErrUnsupportedDataFile = errors.New("data file must have a .json, .yaml or .yml extension")
)
