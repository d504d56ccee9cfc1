package prompts

import (
	_ "embed"
	"fmt"
	"os"

	"personal-brand-crew/internal/domain/entity"

	"gopkg.in/yaml.v3"
)

//go:embed templates/crew.yaml
var DefaultCrewYAML []byte

//go:embed templates/agent_system.tmpl
var AgentSystemPrompt string

//go:embed templates/task.tmpl
var TaskPrompt string

//go:embed templates/force_final.tmpl
var ForceFinalAnswerPrompt string

// LoadCrew parses and validates a crew definition.
func LoadCrew(data []byte) (entity.Crew, error) {
	var crew entity.Crew
	if err := yaml.Unmarshal(data, &crew); err != nil {
		return entity.Crew{}, fmt.Errorf("failed to parse crew definition: %w", err)
	}

	if crew.Process == "" {
		crew.Process = entity.ProcessSequential
	}

	if err := crew.Validate(); err != nil {
		return entity.Crew{}, fmt.Errorf("invalid crew definition: %w", err)
	}

	return crew, nil
}

func LoadCrewFile(path string) (entity.Crew, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return entity.Crew{}, fmt.Errorf("failed to read crew file: %w", err)
	}
	return LoadCrew(data)
}

// DefaultCrew returns the built-in personal branding crew.
func DefaultCrew() (entity.Crew, error) {
	return LoadCrew(DefaultCrewYAML)
}
