package entity

import "time"

// Task is a unit of work assigned to one agent. Context lists the keys of
// earlier tasks whose raw output is handed to this task.
type Task struct {
	Key            string     `yaml:"key"`
	Description    string     `yaml:"description"`
	ExpectedOutput string     `yaml:"expected_output"`
	Agent          string     `yaml:"agent"`
	Tools          []ToolName `yaml:"tools"`
	Context        []string   `yaml:"context"`
}

// ToolNames returns the tools available while running the task: the task's
// own list when set, the agent's otherwise.
func (t Task) ToolNames(agent Agent) []ToolName {
	if len(t.Tools) > 0 {
		return t.Tools
	}
	return agent.Tools
}

type TaskOutput struct {
	TaskKey     string
	AgentRole   string
	Description string
	Raw         string
	Iterations  int
	Duration    time.Duration
}
