package userinteraction

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"personal-brand-crew/internal/application/port/output"

	"github.com/fatih/color"
)

var _ output.UserInteractionPort = (*ConsoleUserInteraction)(nil)

type ConsoleUserInteraction struct {
	reader *bufio.Reader
	out    io.Writer
}

func NewConsoleUserInteraction() *ConsoleUserInteraction {
	return New(os.Stdin, color.Output)
}

func New(in io.Reader, out io.Writer) *ConsoleUserInteraction {
	return &ConsoleUserInteraction{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// AskQuestion reads a possibly multi-line answer. An empty line or EOF ends it.
func (u *ConsoleUserInteraction) AskQuestion(ctx context.Context, question string) (string, error) {
	magenta := color.New(color.FgMagenta, color.Bold)
	magenta.Fprintf(u.out, "\n[USER INPUT REQUIRED] %s\n", question)
	color.New(color.Faint).Fprintln(u.out, "(finish your answer with an empty line)")
	fmt.Fprint(u.out, "> ")

	var lines []string
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		line, err := u.reader.ReadString('\n')
		trimmed := strings.TrimRight(line, "\r\n")

		if err != nil {
			if !errors.Is(err, io.EOF) {
				return "", fmt.Errorf("failed to read user input: %w", err)
			}
			if trimmed != "" {
				lines = append(lines, trimmed)
			}
			if len(lines) == 0 {
				return "", fmt.Errorf("failed to read user input: %w", err)
			}
			break
		}

		if strings.TrimSpace(trimmed) == "" {
			if len(lines) == 0 {
				continue
			}
			break
		}
		lines = append(lines, trimmed)
	}

	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

func (u *ConsoleUserInteraction) ShowTaskStart(ctx context.Context, agentRole, description string) {
	bold := color.New(color.FgHiWhite, color.Bold)
	bold.Fprintf(u.out, "\n══════ %s ══════\n", agentRole)
	color.New(color.Faint).Fprintln(u.out, truncate(description, 300))
}

func (u *ConsoleUserInteraction) ShowIteration(ctx context.Context, iteration, maxIterations int) {
	cyan := color.New(color.FgCyan, color.Bold)
	cyan.Fprintf(u.out, "\n━━━ Iteration %d/%d ━━━\n", iteration, maxIterations)
}

func (u *ConsoleUserInteraction) ShowThinking(ctx context.Context, content string) {
	if content == "" {
		return
	}

	blue := color.New(color.FgBlue)
	blue.Fprint(u.out, "\nThought: ")

	dim := color.New(color.Faint)
	dim.Fprintln(u.out, truncate(content, 500))
}

func (u *ConsoleUserInteraction) ShowToolStart(ctx context.Context, toolName, input string) {
	icon, name := getToolDisplay(toolName)

	yellow := color.New(color.FgYellow, color.Bold)
	yellow.Fprintf(u.out, "\n%s %s\n", icon, name)

	if input != "" {
		dim := color.New(color.Faint)
		dim.Fprintf(u.out, "   %s\n", truncate(input, 80))
	}
}

func (u *ConsoleUserInteraction) ShowToolResult(ctx context.Context, toolName, result string, isError bool) {
	if isError {
		red := color.New(color.FgRed)
		red.Fprint(u.out, "✗ ")

		dim := color.New(color.Faint)
		dim.Fprintln(u.out, truncate(result, 300))
		return
	}

	green := color.New(color.FgGreen)
	green.Fprintf(u.out, "✓ %s\n", formatToolResult(toolName, result))
}

func (u *ConsoleUserInteraction) ShowTaskResult(ctx context.Context, agentRole, result string) {
	green := color.New(color.FgGreen, color.Bold)
	green.Fprintf(u.out, "\n%s finished:\n", agentRole)
	fmt.Fprintln(u.out, result)
}

func getToolDisplay(toolName string) (string, string) {
	displays := map[string][2]string{
		"search_internet": {"🔎", "Internet search"},
		"google_trends":   {"📈", "Google Trends"},
		"human":           {"❓", "Question for you"},
	}

	if display, ok := displays[toolName]; ok {
		return display[0], display[1]
	}
	return "🔧", toolName
}

func formatToolResult(toolName, result string) string {
	switch toolName {
	case "search_internet":
		if result == "" {
			return "No results"
		}
		return fmt.Sprintf("Results: %d", strings.Count(result, "\nLink: "))

	case "google_trends":
		first, _, _ := strings.Cut(result, "\n")
		return first

	case "human":
		return fmt.Sprintf("Answer: %s", truncate(result, 80))
	}

	return truncate(result, 100)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
