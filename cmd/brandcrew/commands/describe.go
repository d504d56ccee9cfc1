package commands

import (
	"fmt"
	"io"
	"strings"

	"personal-brand-crew/internal/domain/entity"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Print the agents and tasks of the crew",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		crew, err := loadCrew()
		if err != nil {
			return err
		}
		describeCrew(cmd.OutOrStdout(), crew)
		return nil
	},
}

func describeCrew(w io.Writer, crew entity.Crew) {
	bold := color.New(color.Bold)

	bold.Fprintf(w, "Crew: %s (%s)\n", crew.Name, crew.Process)

	bold.Fprintln(w, "\nAgents:")
	for _, a := range crew.Agents {
		fmt.Fprintf(w, "  - %s [%s]\n", a.Role, a.Key)
		fmt.Fprintf(w, "    tools: %s\n", joinTools(a.Tools))
	}

	bold.Fprintln(w, "\nTasks:")
	for i, t := range crew.Tasks {
		agent, _ := crew.Agent(t.Agent)
		fmt.Fprintf(w, "  %d. %s -> %s\n", i+1, t.Key, agent.Role)
		fmt.Fprintf(w, "     tools: %s\n", joinTools(t.ToolNames(agent)))
		if len(t.Context) > 0 {
			fmt.Fprintf(w, "     context: %s\n", strings.Join(t.Context, ", "))
		}
	}
}

func joinTools(names []entity.ToolName) string {
	if len(names) == 0 {
		return "none"
	}
	parts := make([]string, 0, len(names))
	for _, n := range names {
		parts = append(parts, n.String())
	}
	return strings.Join(parts, ", ")
}
