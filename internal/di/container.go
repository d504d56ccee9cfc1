package di

import (
	"fmt"

	"personal-brand-crew/internal/adapter/tool"
	"personal-brand-crew/internal/application/port/input"
	"personal-brand-crew/internal/application/port/output"
	"personal-brand-crew/internal/application/service"
	"personal-brand-crew/internal/domain/entity"
	"personal-brand-crew/internal/infrastructure/llm/openaicompat"
	"personal-brand-crew/internal/infrastructure/logger"
	"personal-brand-crew/internal/infrastructure/prompts"
	"personal-brand-crew/internal/infrastructure/search/serpapi"
	"personal-brand-crew/internal/infrastructure/userinteraction"
	"personal-brand-crew/internal/usecase/crew"
	"personal-brand-crew/internal/usecase/executor"

	"github.com/google/uuid"
)

type Container struct {
	RunID    string
	Crew     entity.Crew
	Logger   output.LoggerPort
	UI       output.UserInteractionPort
	LLM      output.LLMPort
	Search   *serpapi.Client
	Tools    output.ToolRegistry
	Executor input.AgentExecutor
	Kickoff  input.CrewExecutor
}

type Config struct {
	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string
	SerpAPIKey    string
	SerpAPIURL    string
	Crew          entity.Crew
	LogLevel      string
	LogDir        string

	// Logger and UI replace the file logger and the console when set.
	Logger output.LoggerPort
	UI     output.UserInteractionPort
}

func NewContainer(cfg Config) (*Container, error) {
	runID := uuid.NewString()

	log := cfg.Logger
	if log == nil {
		fileLog, err := logger.NewLoggerAdapter(logger.Config{
			Name:  cfg.Crew.Name,
			Level: cfg.LogLevel,
			Dir:   cfg.LogDir,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create logger: %w", err)
		}
		log = fileLog
	}
	log = log.WithField("run_id", runID)

	ui := cfg.UI
	if ui == nil {
		ui = userinteraction.NewConsoleUserInteraction()
	}

	llmCfg := openaicompat.DefaultConfig(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	llmCfg.BaseURL = cfg.OpenAIBaseURL
	llmCfg.Logger = log.WithField("component", "llm")
	llm := openaicompat.NewAdapter(llmCfg)

	searchCfg := serpapi.DefaultConfig(cfg.SerpAPIKey)
	searchCfg.Logger = log.WithField("component", "serpapi")
	if cfg.SerpAPIURL != "" {
		searchCfg.BaseURL = cfg.SerpAPIURL
	}
	search := serpapi.NewClient(searchCfg)

	tools := service.NewToolRegistry()
	registerTools(tools, search, ui, log)

	if _, err := tools.Subset(cfg.Crew.ToolNames()); err != nil {
		log.Close()
		return nil, fmt.Errorf("crew %q: %w", cfg.Crew.Name, err)
	}

	exec := executor.New(llm, tools, prompts.Generator{}, ui, log)

	return &Container{
		RunID:    runID,
		Crew:     cfg.Crew,
		Logger:   log,
		UI:       ui,
		LLM:      llm,
		Search:   search,
		Tools:    tools,
		Executor: exec,
		Kickoff:  crew.New(cfg.Crew, exec, ui, log, runID),
	}, nil
}

func (c *Container) Close() {
	if c.Logger != nil {
		c.Logger.Close()
	}
}

func registerTools(registry *service.ToolRegistryImpl, search *serpapi.Client, ui output.UserInteractionPort, log output.LoggerPort) {
	registry.Register(tool.NewSearchInternetTool(search, log))
	registry.Register(tool.NewGoogleTrendsTool(search, log))
	registry.Register(tool.NewHumanTool(ui, log))
}
