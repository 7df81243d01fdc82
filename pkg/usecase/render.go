package usecase

import (
	"bytes"
	"embed"
	"encoding/json"
	"strings"
	"text/template"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/hermes/pkg/domain/types"
)

//go:embed templates/*.md
var templateFS embed.FS

var outputTemplates = template.Must(
	template.New("output").
		Funcs(template.FuncMap{"cell": tableCell}).
		ParseFS(templateFS, "templates/*.md"),
)

// Template names for rendered operation results
const (
	tmplConversations = "conversations.md"
	tmplUsers         = "users.md"
	tmplMessages      = "messages.md"
	tmplSearch        = "search.md"
	tmplSend          = "send.md"
)

// tableCell makes s safe to put in a markdown table cell
func tableCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.Join(strings.Fields(s), " ")
}

// render formats data as JSON or through the named markdown template
func render(name string, format types.OutputFormat, data any) (string, error) {
	format = format.Normalize()
	if !format.IsValid() {
		return "", goerr.Wrap(ErrInvalidOutputFormat, "cannot render result", goerr.V("format", format))
	}

	if format == types.OutputFormatJSON {
		raw, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return "", goerr.Wrap(err, "failed to marshal result", goerr.V("template", name))
		}
		return string(raw), nil
	}

	var buf bytes.Buffer
	if err := outputTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", goerr.Wrap(err, "failed to render result", goerr.V("template", name))
	}
	return buf.String(), nil
}
