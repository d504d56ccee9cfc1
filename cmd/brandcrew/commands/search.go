package commands

import (
	"fmt"
	"strings"

	"personal-brand-crew/internal/di"
	"personal-brand-crew/internal/domain/entity"
	"personal-brand-crew/internal/infrastructure/env"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the web with SerpApi and print the formatted results",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		container, err := di.NewContainer(containerConfig(env.NewEnvService(), entity.Crew{Name: "search"}))
		if err != nil {
			return err
		}
		defer container.Close()

		result, err := container.Search.Search(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}
		if result == "" {
			result = "No results"
		}
		fmt.Fprintln(cmd.OutOrStdout(), result)
		return nil
	},
}

var trendsCmd = &cobra.Command{
	Use:   "trends <query>",
	Short: "Look up Google Trends interest and related queries",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		container, err := di.NewContainer(containerConfig(env.NewEnvService(), entity.Crew{Name: "trends"}))
		if err != nil {
			return err
		}
		defer container.Close()

		result, err := container.Search.Trends(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result)
		return nil
	},
}
