package prompts

import (
	"fmt"
	"sort"

	"personal-brand-crew/internal/application/port/output"
	"personal-brand-crew/internal/domain/entity"

	lcprompts "github.com/tmc/langchaingo/prompts"
)

var (
	agentTemplate = lcprompts.NewPromptTemplate(AgentSystemPrompt,
		[]string{"role", "goal", "backstory", "tools"})
	taskTemplate = lcprompts.NewPromptTemplate(TaskPrompt,
		[]string{"description", "expected_output", "context"})
	forceFinalTemplate = lcprompts.NewPromptTemplate(ForceFinalAnswerPrompt,
		[]string{"iterations"})
)

// GenerateAgentPrompt renders the system prompt for an agent. Tools are listed
// by name so the prompt is stable across runs.
func GenerateAgentPrompt(agent entity.Agent, tools []entity.ToolDefinition) (string, error) {
	toolInfos := make([]map[string]any, 0, len(tools))
	for _, t := range tools {
		toolInfos = append(toolInfos, map[string]any{
			"name":        t.Name,
			"description": t.Description,
		})
	}

	sort.Slice(toolInfos, func(i, j int) bool {
		return toolInfos[i]["name"].(string) < toolInfos[j]["name"].(string)
	})

	prompt, err := agentTemplate.Format(map[string]any{
		"role":      agent.Role,
		"goal":      agent.Goal,
		"backstory": agent.Backstory,
		"tools":     toolInfos,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render agent prompt for %q: %w", agent.Key, err)
	}
	return prompt, nil
}

// GenerateTaskPrompt renders the user prompt for a task. The context section
// is omitted when context is empty.
func GenerateTaskPrompt(task entity.Task, context string) (string, error) {
	prompt, err := taskTemplate.Format(map[string]any{
		"description":     task.Description,
		"expected_output": task.ExpectedOutput,
		"context":         context,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render task prompt for %q: %w", task.Key, err)
	}
	return prompt, nil
}

func GenerateForceFinalPrompt(iterations int) (string, error) {
	prompt, err := forceFinalTemplate.Format(map[string]any{"iterations": iterations})
	if err != nil {
		return "", fmt.Errorf("failed to render final answer prompt: %w", err)
	}
	return prompt, nil
}

// Generator exposes the embedded templates through output.PromptPort.
type Generator struct{}

var _ output.PromptPort = Generator{}

func (Generator) AgentPrompt(agent entity.Agent, tools []entity.ToolDefinition) (string, error) {
	return GenerateAgentPrompt(agent, tools)
}

func (Generator) TaskPrompt(task entity.Task, context string) (string, error) {
	return GenerateTaskPrompt(task, context)
}

func (Generator) ForceFinalPrompt(iterations int) (string, error) {
	return GenerateForceFinalPrompt(iterations)
}
