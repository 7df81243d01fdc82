package usecase

import "errors"

// Sentinel errors for use case layer
var (
	ErrInvalidOutputFormat = errors.New("output format must be markdown or json")
	ErrLLMNotConfigured    = errors.New("LLM client is not configured")
	ErrEmptyQuestion       = errors.New("question is empty")
)

// SendDisabledMessage is reported when a send is attempted with the gate off
const SendDisabledMessage = "message sending is disabled; enable it with --enable-send or HERMES_ENABLE_SEND"
