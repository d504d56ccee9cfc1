package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"personal-brand-crew/internal/domain/entity"
	"personal-brand-crew/internal/infrastructure/env"
	"personal-brand-crew/internal/infrastructure/prompts"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func TestDescribeCrew(t *testing.T) {
	crew, err := prompts.DefaultCrew()
	require.NoError(t, err)

	var out bytes.Buffer
	describeCrew(&out, crew)

	s := out.String()
	assert.Contains(t, s, "Crew: personal-brand-crew (sequential)")
	assert.Contains(t, s, "- Personal Brand Consultant [personal_brand_consultant]")
	assert.Contains(t, s, "1. initial_brand_review -> Personal Brand Consultant")
	assert.Contains(t, s, "3. trend_research_content_generation -> Digital Trends Analyst")
	assert.Contains(t, s, "tools: search_internet, google_trends")
	assert.Contains(t, s, "context: brand_identity_analysis")
}

func TestJoinTools(t *testing.T) {
	assert.Equal(t, "none", joinTools(nil))
	assert.Equal(t, "human, google_trends", joinTools([]entity.ToolName{entity.ToolHuman, entity.ToolGoogleTrends}))
}

func TestContainerConfig(t *testing.T) {
	cfg := env.NewFromMap(map[string]string{
		env.KeyOpenAIAPIKey: "sk-test",
		env.KeyOpenAIModel:  "gpt-4o",
		env.KeySerpAPIKey:   "serp",
		env.KeyLogLevel:     "warn",
	})

	logLevel = ""
	c := containerConfig(cfg, entity.Crew{Name: "x"})
	assert.Equal(t, "sk-test", c.OpenAIAPIKey)
	assert.Equal(t, "gpt-4o", c.OpenAIModel)
	assert.Equal(t, "serp", c.SerpAPIKey)
	assert.Equal(t, "warn", c.LogLevel)
	assert.Equal(t, "x", c.Crew.Name)

	logLevel = "debug"
	defer func() { logLevel = "" }()
	assert.Equal(t, "debug", containerConfig(cfg, entity.Crew{}).LogLevel)
}

func TestLoadCrew(t *testing.T) {
	defer func() { crewFile = "" }()

	crewFile = ""
	crew, err := loadCrew()
	require.NoError(t, err)
	assert.Len(t, crew.Tasks, 3)

	path := filepath.Join(t.TempDir(), "crew.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: solo
agents:
  - {key: a, role: Writer, goal: G, backstory: B, tools: [search_internet]}
tasks:
  - {key: t, agent: a, description: D, expected_output: E}
`), 0o644))
	crewFile = path
	crew, err = loadCrew()
	require.NoError(t, err)
	assert.Equal(t, "solo", crew.Name)
}

func TestDescribeCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"describe"})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Brand Identity Analyst")
}
