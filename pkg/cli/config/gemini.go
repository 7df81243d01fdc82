package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/m-mizutani/gollem/llm/gemini"
	"github.com/urfave/cli/v3"
)

// DefaultGeminiLocation is the Vertex AI region used when none is given
const DefaultGeminiLocation = "us-central1"

// Gemini configures the LLM behind the ask command. Without a project the
// ask command is unavailable and every other command still works.
type Gemini struct {
	project     string
	location    string
	model       string
	temperature float64
}

func (x *Gemini) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "gemini-project",
			Usage:       "Google Cloud project that hosts Gemini (enables ask)",
			Category:    "Gemini",
			Destination: &x.project,
			Sources:     cli.EnvVars("HERMES_GEMINI_PROJECT"),
		},
		&cli.StringFlag{
			Name:        "gemini-location",
			Usage:       "Vertex AI region",
			Category:    "Gemini",
			Value:       DefaultGeminiLocation,
			Destination: &x.location,
			Sources:     cli.EnvVars("HERMES_GEMINI_LOCATION"),
		},
		&cli.StringFlag{
			Name:        "gemini-model",
			Usage:       "Model name, empty for the client default",
			Category:    "Gemini",
			Destination: &x.model,
			Sources:     cli.EnvVars("HERMES_GEMINI_MODEL"),
		},
		&cli.FloatFlag{
			Name:        "gemini-temperature",
			Usage:       "Sampling temperature between 0 and 2, negative for the model default",
			Category:    "Gemini",
			Value:       -1,
			Destination: &x.temperature,
			Sources:     cli.EnvVars("HERMES_GEMINI_TEMPERATURE"),
		},
	}
}

func (x Gemini) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("project", x.project),
		slog.String("location", x.location),
		slog.String("model", x.model),
		slog.Float64("temperature", x.temperature),
	)
}

// Enabled reports whether a project is configured
func (x *Gemini) Enabled() bool {
	return x.project != ""
}

func (x *Gemini) options() ([]gemini.Option, error) {
	var opts []gemini.Option
	if x.model != "" {
		opts = append(opts, gemini.WithModel(x.model))
	}
	if x.temperature > 2 {
		return nil, goerr.Wrap(ErrInvalidTemperature, "failed to configure Gemini",
			goerr.V(TemperatureKey, x.temperature))
	}
	if x.temperature >= 0 {
		opts = append(opts, gemini.WithTemperature(float32(x.temperature)))
	}
	return opts, nil
}

// Configure creates the Gemini client. It returns nil without error when no
// project is configured.
func (x *Gemini) Configure(ctx context.Context) (gollem.LLMClient, error) {
	if !x.Enabled() {
		return nil, nil
	}

	opts, err := x.options()
	if err != nil {
		return nil, err
	}

	location := x.location
	if location == "" {
		location = DefaultGeminiLocation
	}

	client, err := gemini.New(ctx, x.project, location, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Gemini client",
			goerr.V("project", x.project),
			goerr.V("location", location))
	}
	return client, nil
}
