package usecase

import (
	"github.com/m-mizutani/gollem"
	"github.com/secmon-lab/hermes/pkg/service/slack"
)

type UseCases struct {
	slack       slack.Service
	sendEnabled bool
	llmClient   gollem.LLMClient
	language    string

	Workspace *WorkspaceUseCase
	Agent     *AgentUseCase
}

type Option func(*UseCases)

// WithSendEnabled opens the send gate. Sending is disabled by default.
func WithSendEnabled(enabled bool) Option {
	return func(uc *UseCases) {
		uc.sendEnabled = enabled
	}
}

func WithLLMClient(client gollem.LLMClient) Option {
	return func(uc *UseCases) {
		uc.llmClient = client
	}
}

// WithLanguage sets the answer language of the agent
func WithLanguage(language string) Option {
	return func(uc *UseCases) {
		uc.language = language
	}
}

func New(slackService slack.Service, opts ...Option) *UseCases {
	uc := &UseCases{
		slack:    slackService,
		language: DefaultLanguage,
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.Workspace = NewWorkspaceUseCase(slackService, uc.sendEnabled)
	uc.Agent = NewAgentUseCase(uc.Workspace, uc.llmClient, uc.language)

	return uc
}
