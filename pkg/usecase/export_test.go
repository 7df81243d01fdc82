package usecase

import (
	"time"

	"github.com/secmon-lab/hermes/pkg/domain/types"
)

// Render is exported for testing templates
func Render(name string, format types.OutputFormat, data any) (string, error) {
	return render(name, format, data)
}

var TableCell = tableCell

const (
	TmplConversations = tmplConversations
	TmplUsers         = tmplUsers
	TmplMessages      = tmplMessages
	TmplSearch        = tmplSearch
)

// BuildAskSystemPrompt is exported for testing
var BuildAskSystemPrompt = (*AgentUseCase).buildSystemPrompt

// SetClock replaces the clock used in the system prompt
func (uc *AgentUseCase) SetClock(now func() time.Time) {
	uc.now = now
}
