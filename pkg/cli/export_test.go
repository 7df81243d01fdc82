package cli

import (
	"context"
	"io"

	"github.com/m-mizutani/gollem"
)

// RunForTest runs the command tree with captured output and an optional
// LLM client replacing Gemini.
func RunForTest(ctx context.Context, args []string, stdout, stderr io.Writer, llmClient gollem.LLMClient) error {
	var opts []appOption
	if llmClient != nil {
		opts = append(opts, withLLMClient(llmClient))
	}
	app := newApp("test", opts...)
	app.Writer = stdout
	app.ErrWriter = stderr
	return app.Run(ctx, args)
}

var Describe = describe
