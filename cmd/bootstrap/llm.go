package bootstrap

import (
	"log/slog"

	"liblend/internal/infra/llm"
	"liblend/internal/pkg/config"
	"liblend/internal/usecase/queries"

	"go.uber.org/fx"
)

var LLMModule = fx.Module("llm",
	fx.Provide(
		NewCompletionClient,
	),
)

// NewCompletionClient returns a nil client when no API key is configured;
// the advisor then serves the heuristic path for every AI endpoint.
func NewCompletionClient(cfg config.Config) queries.CompletionClient {
	if cfg.OpenAI.APIKey == "" {
		slog.Info("OpenAI API key not configured, AI recommendations run in heuristic mode")
		return nil
	}
	return llm.NewOpenAIClient(cfg.OpenAI)
}
