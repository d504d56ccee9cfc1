package output

import "personal-brand-crew/internal/domain/entity"

type PromptPort interface {
	AgentPrompt(agent entity.Agent, tools []entity.ToolDefinition) (string, error)
	TaskPrompt(task entity.Task, context string) (string, error)
	ForceFinalPrompt(iterations int) (string, error)
}
