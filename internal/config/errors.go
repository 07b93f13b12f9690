package config

import "errors"

// Error kinds surfaced by the store and the resolver. Callers match them
// with errors.Is; the wrapping message carries the path or name involved.
var (
	ErrConfigAlreadyExists = errors.New("configuration file already exists")
	ErrConfigMissing       = errors.New("configuration file not found")
	ErrConfigMalformed     = errors.New("configuration file is malformed")
	ErrEnvironmentNotFound = errors.New("environment not found")
	ErrNoEndpointResolved  = errors.New("no endpoint resolved")
	ErrHomeNotFound        = errors.New("home directory not found")
)
