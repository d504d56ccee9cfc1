package executor

import (
	"context"
	"fmt"
	"unicode/utf8"

	"personal-brand-crew/internal/application/port/input"
	"personal-brand-crew/internal/application/port/output"
	"personal-brand-crew/internal/domain/entity"
)

var _ input.AgentExecutor = (*UseCase)(nil)

const maxObservationLen = 20000

type UseCase struct {
	llm     output.LLMPort
	tools   output.ToolRegistry
	prompts output.PromptPort
	ui      output.UserInteractionPort
	logger  output.LoggerPort
}

func New(
	llm output.LLMPort,
	tools output.ToolRegistry,
	prompts output.PromptPort,
	ui output.UserInteractionPort,
	logger output.LoggerPort,
) *UseCase {
	return &UseCase{
		llm:     llm,
		tools:   tools,
		prompts: prompts,
		ui:      ui,
		logger:  logger,
	}
}

// Execute runs one task for one agent: the model is called with the task's
// tools until it answers without a tool call. Once the agent's iteration
// limit is reached it is asked, without tools, for a final answer.
func (uc *UseCase) Execute(ctx context.Context, req entity.AgentRequest) (*entity.AgentResponse, error) {
	agent := req.Agent
	log := uc.logger.WithFields(map[string]any{
		"agent": agent.Key,
		"task":  req.Task.Key,
	})

	tools, err := uc.tools.Subset(req.Task.ToolNames(agent))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve tools for task %q: %w", req.Task.Key, err)
	}
	toolDefs := tools.Definitions()

	systemPrompt, err := uc.prompts.AgentPrompt(agent, toolDefs)
	if err != nil {
		return nil, err
	}
	taskPrompt, err := uc.prompts.TaskPrompt(req.Task, req.Context)
	if err != nil {
		return nil, err
	}

	messages := []entity.Message{
		{Role: entity.RoleSystem, Content: systemPrompt},
		{Role: entity.RoleUser, Content: taskPrompt},
	}

	limit := agent.IterationLimit()
	for iteration := 1; iteration <= limit; iteration++ {
		log.Debug("Starting iteration", "iteration", iteration, "tools", len(toolDefs))
		if agent.Verbose {
			uc.ui.ShowIteration(ctx, iteration, limit)
		}

		resp, err := uc.llm.Chat(ctx, output.ChatRequest{
			Messages:    messages,
			Tools:       toolDefs,
			Temperature: 0.0,
		})
		if err != nil {
			return nil, fmt.Errorf("llm request failed: %w", err)
		}

		messages = append(messages, resp.Message)

		if len(resp.Message.ToolCalls) == 0 {
			log.Info("Agent finished", "iterations", iteration, "resultLen", len(resp.Message.Content))
			return &entity.AgentResponse{
				Result:     resp.Message.Content,
				Iterations: iteration,
			}, nil
		}

		if agent.Verbose && resp.Message.Content != "" {
			uc.ui.ShowThinking(ctx, resp.Message.Content)
		}

		for _, tc := range resp.Message.ToolCalls {
			observation, err := uc.executeTool(ctx, log, tools, tc, agent.Verbose)
			if err != nil {
				return nil, err
			}

			messages = append(messages, entity.Message{
				Role:       entity.RoleTool,
				ToolCallID: tc.ID,
				Name:       tc.Name,
				Content:    observation,
			})
		}
	}

	log.Warn("Iteration limit reached, forcing final answer", "limit", limit)

	forcePrompt, err := uc.prompts.ForceFinalPrompt(limit)
	if err != nil {
		return nil, err
	}
	messages = append(messages, entity.Message{Role: entity.RoleUser, Content: forcePrompt})

	resp, err := uc.llm.Chat(ctx, output.ChatRequest{
		Messages:    messages,
		Temperature: 0.0,
	})
	if err != nil {
		return nil, fmt.Errorf("llm request failed: %w", err)
	}

	return &entity.AgentResponse{
		Result:     resp.Message.Content,
		Iterations: limit,
		Forced:     true,
	}, nil
}

// executeTool turns tool failures into observations for the model. Only a
// canceled or expired context aborts the run.
func (uc *UseCase) executeTool(
	ctx context.Context,
	log output.LoggerPort,
	tools output.ToolRegistry,
	tc entity.ToolCall,
	verbose bool,
) (string, error) {
	tool, ok := tools.Get(entity.ToolName(tc.Name))
	if !ok {
		log.Warn("Unknown tool called", "name", tc.Name)
		return fmt.Sprintf("Error: unknown tool '%s'", tc.Name), nil
	}

	toolInput, err := tool.Argument().Extract(tc.Arguments)
	if err != nil {
		log.Warn("Invalid tool arguments", "name", tc.Name, "args", tc.Arguments, "error", err)
		return "Error: " + err.Error(), nil
	}

	log.Info("Executing tool", "name", tc.Name, "input", toolInput)
	if verbose {
		uc.ui.ShowToolStart(ctx, tc.Name, toolInput)
	}

	result, err := tool.Call(ctx, toolInput)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("tool %s: %w", tc.Name, err)
		}

		log.Error("Tool execution failed", "name", tc.Name, "error", err)
		observation := "Error: " + err.Error()
		if verbose {
			uc.ui.ShowToolResult(ctx, tc.Name, observation, true)
		}
		return observation, nil
	}

	if verbose {
		uc.ui.ShowToolResult(ctx, tc.Name, result, false)
	}

	result = truncateObservation(result)

	log.Debug("Tool completed", "name", tc.Name, "resultLen", len(result))
	return result, nil
}

// truncateObservation caps s at maxObservationLen bytes without splitting a
// UTF-8 sequence.
func truncateObservation(s string) string {
	if len(s) <= maxObservationLen {
		return s
	}
	cut := maxObservationLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "\n... (truncated)"
}
