package bootstrap

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/generation"
	"resume-builder/internal/llm"
	"resume-builder/internal/llm/gemini"
	openai "resume-builder/internal/llm/openai"
	"resume-builder/internal/services/health"
	"resume-builder/internal/shared/config"
	"resume-builder/internal/shared/server"
	"resume-builder/internal/shared/telemetry"
	"resume-builder/internal/ui"
)

// App holds shared dependencies.
type App struct {
	Config            config.Config
	Router            *gin.Engine
	LLM               llm.Client
	GenerationService *generation.Service
	GenerationHandler *generation.Handler
	UIHandler         *ui.Handler
	Health            *health.Service
}

// Build wires the provider, generation service and router.
func Build(cfg config.Config) (*App, error) {
	client, err := BuildLLM(cfg)
	if err != nil {
		return nil, err
	}
	return BuildWithClient(cfg, client), nil
}

// BuildWithClient wires everything around an existing provider client.
func BuildWithClient(cfg config.Config, client llm.Client) *App {
	svc := generation.NewService(client, ServiceOptions(cfg))

	app := &App{
		Config:            cfg,
		LLM:               client,
		GenerationService: svc,
		GenerationHandler: generation.NewHandler(svc, cfg.LLMProvider),
		UIHandler:         ui.NewHandler(svc, !svc.HasServerKey()),
		Health:            health.NewService(cfg.LLMProvider, svc.HasServerKey()),
	}
	app.Router = server.NewRouter(server.RouterDeps{
		Config:            cfg,
		Health:            app.Health,
		GenerationHandler: app.GenerationHandler,
		UIHandler:         app.UIHandler,
	})

	telemetry.Info("bootstrap.ready", map[string]any{
		"env":        cfg.Env,
		"provider":   cfg.LLMProvider,
		"model":      svc.Model(),
		"server_key": svc.HasServerKey(),
	})
	return app
}

// BuildLLM returns the provider client selected by LLM_PROVIDER.
func BuildLLM(cfg config.Config) (llm.Client, error) {
	switch cfg.LLMProvider {
	case "openai":
		return openai.NewClient(
			openai.WithBaseURL(cfg.OpenAIBaseURL),
			openai.WithTimeout(cfg.OpenAITimeout),
		), nil
	case "gemini":
		return gemini.NewClient(), nil
	default:
		return nil, fmt.Errorf("unsupported LLM_PROVIDER %q", cfg.LLMProvider)
	}
}

// ServiceOptions derives generation options from config, filling the
// provider's default model when none is set.
func ServiceOptions(cfg config.Config) generation.Options {
	model := cfg.LLMModel
	if model == "" {
		switch cfg.LLMProvider {
		case "gemini":
			model = gemini.DefaultModel
		default:
			model = openai.DefaultModel
		}
	}
	return generation.Options{
		Provider:     cfg.LLMProvider,
		Model:        model,
		MaxTokens:    cfg.LLMMaxTokens,
		Temperature:  cfg.LLMTemperature,
		ServerAPIKey: cfg.APIKey(),
	}
}
