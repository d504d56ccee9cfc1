package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"personal-brand-crew/internal/di"
	"personal-brand-crew/internal/infrastructure/env"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const runTimeout = 30 * time.Minute

var outputFile string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the crew",
	Long: `Run every task of the crew in order. The personal brand consultant starts by
asking for your bio and a few posts; finish each answer with an empty line.`,
	Args: cobra.NoArgs,
	RunE: runCrew,
}

func init() {
	runCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write the final report to this file")
}

func runCrew(cmd *cobra.Command, args []string) error {
	envService := env.NewEnvService()
	if _, err := envService.Require(env.KeyOpenAIAPIKey); err != nil {
		return err
	}

	crew, err := loadCrew()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, runTimeout)
	defer cancel()

	container, err := di.NewContainer(containerConfig(envService, crew))
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}
	defer container.Close()

	container.Logger.Info("Run started", "crew", crew.Name, "tasks", len(crew.Tasks))
	out := cmd.OutOrStdout()
	color.New(color.FgHiWhite, color.Bold).Fprintf(out, "\nCrew %q started (run %s)\n", crew.Name, container.RunID)

	result, err := container.Kickoff.Kickoff(ctx)
	if err != nil {
		container.Logger.Error("Run failed", "error", err)
		return fmt.Errorf("crew run failed: %w", err)
	}

	container.Logger.Info("Run completed", "tasks", len(result.TaskOutputs))

	color.New(color.FgGreen, color.Bold).Fprintln(out, "\nFINAL REPORT:")
	fmt.Fprintln(out, result.Final)

	if outputFile != "" {
		if err := os.WriteFile(outputFile, []byte(result.Final+"\n"), 0o644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		fmt.Fprintf(out, "\nReport written to %s\n", outputFile)
	}

	return nil
}
