package usecase

import (
	"bytes"
	"context"
	_ "embed"
	"strings"
	"text/template"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/secmon-lab/hermes/pkg/agent/tool"
	"github.com/secmon-lab/hermes/pkg/agent/tool/workspace"
	"github.com/secmon-lab/hermes/pkg/utils/logging"
)

//go:embed prompt/ask_system.md
var askSystemPromptTmpl string

var askSystemPrompt = template.Must(template.New("ask_system").Parse(askSystemPromptTmpl))

// DefaultLanguage is the answer language when none is configured
const DefaultLanguage = "English"

// AgentUseCase answers free form questions about the workspace with an LLM
// agent that calls the Slack tools
type AgentUseCase struct {
	workspace *WorkspaceUseCase
	llmClient gollem.LLMClient
	language  string
	now       func() time.Time
}

// NewAgentUseCase creates a new AgentUseCase instance
func NewAgentUseCase(ws *WorkspaceUseCase, llmClient gollem.LLMClient, language string) *AgentUseCase {
	if language == "" {
		language = DefaultLanguage
	}
	return &AgentUseCase{
		workspace: ws,
		llmClient: llmClient,
		language:  language,
		now:       time.Now,
	}
}

// askPromptData holds all data for the ask system prompt template
type askPromptData struct {
	CurrentTime string
	SendEnabled bool
	Language    string
}

func (uc *AgentUseCase) buildSystemPrompt() (string, error) {
	data := askPromptData{
		CurrentTime: uc.now().UTC().Format(time.RFC3339),
		SendEnabled: uc.workspace.SendEnabled(),
		Language:    uc.language,
	}

	var buf bytes.Buffer
	if err := askSystemPrompt.Execute(&buf, data); err != nil {
		return "", goerr.Wrap(err, "failed to build system prompt")
	}
	return buf.String(), nil
}

// Ask runs the agent on question and returns its final answer. Tool calls
// are reported through the UpdateFunc carried by ctx.
func (uc *AgentUseCase) Ask(ctx context.Context, question string) (string, error) {
	if uc.llmClient == nil {
		return "", goerr.Wrap(ErrLLMNotConfigured, "cannot run agent")
	}
	question = strings.TrimSpace(question)
	if question == "" {
		return "", goerr.Wrap(ErrEmptyQuestion, "cannot run agent")
	}

	sessionID := uuid.Must(uuid.NewV7()).String()
	logger := logging.From(ctx).With("session_id", sessionID)
	ctx = logging.With(ctx, logger)

	systemPrompt, err := uc.buildSystemPrompt()
	if err != nil {
		return "", err
	}

	agent := gollem.New(uc.llmClient,
		gollem.WithSystemPrompt(systemPrompt),
		gollem.WithTools(workspace.New(uc.workspace)...),
		gollem.WithToolMiddleware(
			func(next gollem.ToolHandler) gollem.ToolHandler {
				return func(ctx context.Context, req *gollem.ToolExecRequest) (*gollem.ToolExecResponse, error) {
					logger.Info("tool called", "tool", req.Tool.Name)
					tool.Updatef(ctx, "🔧 %s", req.Tool.Name)
					resp, err := next(ctx, req)
					if resp != nil && resp.Error != nil {
						logger.Warn("tool failed", "tool", req.Tool.Name, "error", resp.Error.Error())
						tool.Update(ctx, "❌ Error: "+resp.Error.Error())
					}
					return resp, err
				}
			},
		),
	)

	logger.Info("agent session started")
	resp, err := agent.Execute(ctx, gollem.Text(question))
	if err != nil {
		return "", goerr.Wrap(err, "failed to execute agent", goerr.V("session_id", sessionID))
	}

	return strings.Join(resp.Texts, "\n"), nil
}
