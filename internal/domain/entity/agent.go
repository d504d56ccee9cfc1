package entity

const DefaultMaxIterations = 25

// Agent is a configured role driven by the LLM runtime.
type Agent struct {
	Key           string     `yaml:"key"`
	Role          string     `yaml:"role"`
	Goal          string     `yaml:"goal"`
	Backstory     string     `yaml:"backstory"`
	Tools         []ToolName `yaml:"tools"`
	Verbose       bool       `yaml:"verbose"`
	MaxIterations int        `yaml:"max_iterations"`
}

func (a Agent) IterationLimit() int {
	if a.MaxIterations <= 0 {
		return DefaultMaxIterations
	}
	return a.MaxIterations
}

type AgentRequest struct {
	Agent   Agent
	Task    Task
	Context string
}

type AgentResponse struct {
	Result     string
	Iterations int
	Forced     bool
}
