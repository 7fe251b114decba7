package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Credential errors
	ErrMissingToken = fmt.Errorf("missing access token")

	// API and service errors
	ErrAPIRequest         = fmt.Errorf("API request failed")
	ErrServiceUnavailable = fmt.Errorf("service unavailable")

	// Input validation errors
	ErrInvalidInput         = fmt.Errorf("invalid input")
	ErrMissingArgument      = fmt.Errorf("missing required argument")
	ErrInvalidArgument      = fmt.Errorf("invalid argument")
	ErrInvalidFlag          = fmt.Errorf("invalid flag value")
	ErrUnknownTool          = fmt.Errorf("unknown tool")
	ErrUnsupportedTransport = fmt.Errorf("unsupported transport")
)
