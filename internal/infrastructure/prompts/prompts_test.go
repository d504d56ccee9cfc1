package prompts

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"personal-brand-crew/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCrew(t *testing.T) {
	crew, err := DefaultCrew()
	require.NoError(t, err)

	assert.Equal(t, entity.ProcessSequential, crew.Process)
	require.Len(t, crew.Agents, 3)
	require.Len(t, crew.Tasks, 3)

	keys := make([]string, 0, len(crew.Tasks))
	for _, task := range crew.Tasks {
		keys = append(keys, task.Key)
	}
	assert.Equal(t, []string{"initial_brand_review", "brand_identity_analysis", "trend_research_content_generation"}, keys)

	assert.Empty(t, crew.Tasks[0].Context)
	assert.Equal(t, []string{"initial_brand_review"}, crew.Tasks[1].Context)
	assert.Equal(t, []string{"brand_identity_analysis"}, crew.Tasks[2].Context)

	consultant, ok := crew.Agent("personal_brand_consultant")
	require.True(t, ok)
	assert.Equal(t, "Personal Brand Consultant", consultant.Role)
	assert.Equal(t, []entity.ToolName{entity.ToolHuman}, consultant.Tools)
	assert.True(t, consultant.Verbose)

	assert.Equal(t, []entity.ToolName{entity.ToolSearchInternet, entity.ToolGoogleTrends},
		crew.Tasks[2].ToolNames(entity.Agent{}))
	assert.ElementsMatch(t,
		[]entity.ToolName{entity.ToolHuman, entity.ToolSearchInternet, entity.ToolGoogleTrends},
		crew.ToolNames())
}

func TestLoadCrew_DefaultsProcess(t *testing.T) {
	crew, err := LoadCrew([]byte(`
name: mini
agents:
  - {key: a, role: R, goal: G, backstory: B}
tasks:
  - {key: t, agent: a, description: D, expected_output: E}
`))
	require.NoError(t, err)
	assert.Equal(t, entity.ProcessSequential, crew.Process)
}

func TestLoadCrew_Invalid(t *testing.T) {
	_, err := LoadCrew([]byte("agents: [unclosed"))
	assert.Error(t, err)

	_, err = LoadCrew([]byte(`
agents:
  - {key: a, role: R, goal: G, backstory: B}
tasks:
  - {key: t1, agent: a, description: D, expected_output: E, context: [t2]}
  - {key: t2, agent: a, description: D, expected_output: E}
`))
	assert.ErrorIs(t, err, entity.ErrInvalidContext)
}

func TestLoadCrewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crew.yaml")
	require.NoError(t, os.WriteFile(path, DefaultCrewYAML, 0o644))

	crew, err := LoadCrewFile(path)
	require.NoError(t, err)
	assert.Equal(t, "personal-brand-crew", crew.Name)

	_, err = LoadCrewFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestGenerateAgentPrompt(t *testing.T) {
	agent := entity.Agent{
		Key:       "analyst",
		Role:      "Brand Identity Analyst",
		Goal:      "Synthesize insights",
		Backstory: "You craft narratives.",
	}
	tools := []entity.ToolDefinition{
		{Name: "search_internet", Description: "Searches the internet"},
		{Name: "human", Description: "Ask a human"},
	}

	prompt, err := GenerateAgentPrompt(agent, tools)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(prompt, "You are Brand Identity Analyst. You craft narratives."))
	assert.Contains(t, prompt, "Your personal goal is: Synthesize insights")
	assert.Contains(t, prompt, "- search_internet: Searches the internet")
	assert.Less(t, strings.Index(prompt, "- human:"), strings.Index(prompt, "- search_internet:"))
	assert.NotContains(t, prompt, "You have no tools")
}

func TestGenerateAgentPrompt_NoTools(t *testing.T) {
	prompt, err := GenerateAgentPrompt(entity.Agent{Role: "R", Goal: "G", Backstory: "B"}, nil)
	require.NoError(t, err)

	assert.Contains(t, prompt, "You have no tools")
	assert.NotContains(t, prompt, "ONLY have access")
}

func TestGenerateTaskPrompt(t *testing.T) {
	task := entity.Task{Key: "t", Description: "Analyze the brand", ExpectedOutput: "A report"}

	withContext, err := GenerateTaskPrompt(task, "previous output")
	require.NoError(t, err)
	assert.Contains(t, withContext, "Current Task: Analyze the brand")
	assert.Contains(t, withContext, "expected criteria for your final answer: A report")
	assert.Contains(t, withContext, "This is the context you're working with:\nprevious output")

	noContext, err := GenerateTaskPrompt(task, "")
	require.NoError(t, err)
	assert.NotContains(t, noContext, "context you're working with")
}

func TestGenerateTaskPrompt_KeepsTemplateSyntaxInValues(t *testing.T) {
	task := entity.Task{Description: "Explain {{.secret}}", ExpectedOutput: "E"}

	prompt, err := GenerateTaskPrompt(task, "")
	require.NoError(t, err)
	assert.Contains(t, prompt, "Explain {{.secret}}")
}

func TestGenerateForceFinalPrompt(t *testing.T) {
	prompt, err := GenerateForceFinalPrompt(25)
	require.NoError(t, err)
	assert.Contains(t, prompt, "25 steps")
}
