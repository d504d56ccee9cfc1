package entity

import (
	"errors"
	"fmt"
	"strings"
)

type Process string

const ProcessSequential Process = "sequential"

type Crew struct {
	Name    string  `yaml:"name"`
	Process Process `yaml:"process"`
	Agents  []Agent `yaml:"agents"`
	Tasks   []Task  `yaml:"tasks"`
}

func (c Crew) Agent(key string) (Agent, bool) {
	for _, a := range c.Agents {
		if a.Key == key {
			return a, true
		}
	}
	return Agent{}, false
}

// ToolNames returns every tool referenced by an agent or a task, deduplicated
// in first-seen order.
func (c Crew) ToolNames() []ToolName {
	seen := make(map[ToolName]struct{})
	var names []ToolName
	add := func(list []ToolName) {
		for _, n := range list {
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = struct{}{}
			names = append(names, n)
		}
	}
	for _, a := range c.Agents {
		add(a.Tools)
	}
	for _, t := range c.Tasks {
		add(t.Tools)
	}
	return names
}

type CrewResult struct {
	RunID       string
	TaskOutputs []TaskOutput
	Final       string
}

var (
	ErrNoTasks            = errors.New("crew has no tasks")
	ErrUnsupportedProcess = errors.New("unsupported process")
	ErrDuplicateKey       = errors.New("duplicate key")
	ErrMissingField       = errors.New("missing required field")
	ErrUnknownAgent       = errors.New("unknown agent")
	ErrInvalidContext     = errors.New("context must reference an earlier task")
)

// Validate checks the crew definition. A task may only take context from
// tasks declared before it, so a sequential run always has every input ready.
func (c Crew) Validate() error {
	if c.Process == "" {
		c.Process = ProcessSequential
	}
	if c.Process != ProcessSequential {
		return fmt.Errorf("%w: %q", ErrUnsupportedProcess, c.Process)
	}
	if len(c.Tasks) == 0 {
		return ErrNoTasks
	}

	agents := make(map[string]struct{}, len(c.Agents))
	for i, a := range c.Agents {
		if a.Key == "" {
			return fmt.Errorf("agent #%d: %w: key", i+1, ErrMissingField)
		}
		if _, ok := agents[a.Key]; ok {
			return fmt.Errorf("agent %q: %w", a.Key, ErrDuplicateKey)
		}
		agents[a.Key] = struct{}{}

		for _, f := range [][2]string{{"role", a.Role}, {"goal", a.Goal}, {"backstory", a.Backstory}} {
			if strings.TrimSpace(f[1]) == "" {
				return fmt.Errorf("agent %q: %w: %s", a.Key, ErrMissingField, f[0])
			}
		}
	}

	earlier := make(map[string]struct{}, len(c.Tasks))
	for i, t := range c.Tasks {
		if t.Key == "" {
			return fmt.Errorf("task #%d: %w: key", i+1, ErrMissingField)
		}
		if _, ok := earlier[t.Key]; ok {
			return fmt.Errorf("task %q: %w", t.Key, ErrDuplicateKey)
		}
		if strings.TrimSpace(t.Description) == "" {
			return fmt.Errorf("task %q: %w: description", t.Key, ErrMissingField)
		}
		if strings.TrimSpace(t.ExpectedOutput) == "" {
			return fmt.Errorf("task %q: %w: expected_output", t.Key, ErrMissingField)
		}
		if _, ok := agents[t.Agent]; !ok {
			return fmt.Errorf("task %q: %w: %q", t.Key, ErrUnknownAgent, t.Agent)
		}
		for _, ref := range t.Context {
			if _, ok := earlier[ref]; !ok {
				return fmt.Errorf("task %q: %w: %q", t.Key, ErrInvalidContext, ref)
			}
		}
		earlier[t.Key] = struct{}{}
	}

	return nil
}
