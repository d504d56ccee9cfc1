package output

import (
	"personal-brand-crew/internal/domain/entity"

	"github.com/tmc/langchaingo/tools"
)

// ToolPort is a single-string-in, single-string-out capability an agent may
// call. Argument describes that string for the model's function schema.
type ToolPort interface {
	tools.Tool
	Argument() entity.ToolArgument
}

type ToolRegistry interface {
	Register(tool ToolPort)
	Get(name entity.ToolName) (ToolPort, bool)
	All() []ToolPort
	Definitions() []entity.ToolDefinition
	Subset(names []entity.ToolName) (ToolRegistry, error)
}
