package config

import "errors"

// Sentinel errors for configuration loading.
var (
	ErrDotEnv                 = errors.New("config: failed to load .env file")
	ErrParseEnv               = errors.New("config: failed to parse environment")
	ErrReadFile               = errors.New("config: failed to read config file")
	ErrParseFile              = errors.New("config: failed to parse config file")
	ErrEmptyAddress           = errors.New("config: server address is empty")
	ErrInvalidShutdownTimeout = errors.New("config: shutdown timeout must be positive")
	ErrInvalidRequestTimeout  = errors.New("config: request timeout must be positive")
)
