package commands

import (
	"fmt"
	"os"

	"personal-brand-crew/internal/application/port/output"
	"personal-brand-crew/internal/di"
	"personal-brand-crew/internal/domain/entity"
	"personal-brand-crew/internal/infrastructure/env"
	"personal-brand-crew/internal/infrastructure/prompts"

	"github.com/spf13/cobra"
)

const Version = "0.1.0"

var (
	logLevel string
	crewFile string
)

var rootCmd = &cobra.Command{
	Use:   "brandcrew",
	Short: "brandcrew - personal branding crew of LLM agents",
	Long: `brandcrew runs three agents one after another to review a personal brand,
analyze its identity and research trending content for it. The agents can
search the web with SerpApi, look up Google Trends and ask you questions.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Log level (debug, info, warn, error). Defaults to LOG_LEVEL or info")
	rootCmd.PersistentFlags().StringVar(&crewFile, "crew", "",
		"Path to a crew definition YAML file. Defaults to the built-in personal branding crew")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(trendsCmd)
	rootCmd.AddCommand(describeCmd)
}

func loadCrew() (entity.Crew, error) {
	if crewFile == "" {
		return prompts.DefaultCrew()
	}
	return prompts.LoadCrewFile(crewFile)
}

// containerConfig maps environment settings onto the container. The flag
// value wins over LOG_LEVEL.
func containerConfig(cfg output.ConfigPort, crew entity.Crew) di.Config {
	level := logLevel
	if level == "" {
		level = cfg.GetWithDefault(env.KeyLogLevel, "info")
	}

	return di.Config{
		OpenAIAPIKey:  cfg.Get(env.KeyOpenAIAPIKey),
		OpenAIModel:   cfg.Get(env.KeyOpenAIModel),
		OpenAIBaseURL: cfg.Get(env.KeyOpenAIBaseURL),
		SerpAPIKey:    cfg.Get(env.KeySerpAPIKey),
		Crew:          crew,
		LogLevel:      level,
	}
}
