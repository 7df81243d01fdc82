package config

import "time"

// NewSlackForTest creates a Slack config for testing purposes
func NewSlackForTest(userToken, apiURL string, maxAttempts int, directoryTTL time.Duration, enableSend bool) *Slack {
	return &Slack{
		userToken:    userToken,
		apiURL:       apiURL,
		maxAttempts:  maxAttempts,
		directoryTTL: directoryTTL,
		enableSend:   enableSend,
	}
}

// NewGeminiForTest creates a Gemini config for testing purposes
func NewGeminiForTest(project, location, model string, temperature float64) *Gemini {
	return &Gemini{
		project:     project,
		location:    location,
		model:       model,
		temperature: temperature,
	}
}

// GeminiOptionCount returns how many client options the config produces
func GeminiOptionCount(x *Gemini) (int, error) {
	opts, err := x.options()
	return len(opts), err
}

// NewLoggerForTest creates a Logger config for testing purposes
func NewLoggerForTest(level, format, output string) *Logger {
	return &Logger{
		level:  level,
		format: format,
		output: output,
	}
}
