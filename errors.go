package envbadge

import "errors"

var (
	// ErrParsingConfig is returned when ENVBADGE_* environment variables cannot be parsed.
	ErrParsingConfig = errors.New("failed to parse indicator configuration from environment")

	// ErrInvalidConfig is returned when a configuration value is not one of the recognized literals.
	ErrInvalidConfig = errors.New("invalid indicator configuration value")

	// ErrInvalidTheme is returned when a theme file references unknown environments or is malformed.
	ErrInvalidTheme = errors.New("invalid indicator theme")
)
