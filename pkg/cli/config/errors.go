package config

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for configuration validation
var (
	ErrInvalidLogLevel  = goerr.New("invalid log level, expected debug, info, warn or error")
	ErrInvalidLogFormat = goerr.New("invalid log format, expected console or json")
	ErrInvalidSlackURL  = goerr.New("Slack API URL must be an absolute http(s) URL")

	ErrInvalidTemperature = goerr.New("Gemini temperature must not exceed 2")
)

// Context keys for error values
const (
	LogLevelKey  = "log_level"
	LogFormatKey = "log_format"
	LogOutputKey = "log_output"
	APIURLKey    = "api_url"

	TemperatureKey = "temperature"
)
