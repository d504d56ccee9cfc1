package crew

import (
	"context"
	"errors"
	"testing"

	"personal-brand-crew/internal/domain/entity"
	"personal-brand-crew/internal/infrastructure/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingExecutor struct {
	requests []entity.AgentRequest
	failOn   string
}

func (e *recordingExecutor) Execute(ctx context.Context, req entity.AgentRequest) (*entity.AgentResponse, error) {
	e.requests = append(e.requests, req)
	if req.Task.Key == e.failOn {
		return nil, errors.New("llm unavailable")
	}
	return &entity.AgentResponse{Result: "output of " + req.Task.Key, Iterations: 2}, nil
}

type silentUI struct {
	started  []string
	finished []string
}

func (u *silentUI) AskQuestion(ctx context.Context, question string) (string, error) { return "", nil }
func (u *silentUI) ShowTaskStart(ctx context.Context, agentRole, description string) {
	u.started = append(u.started, agentRole)
}
func (u *silentUI) ShowIteration(ctx context.Context, iteration, maxIterations int)           {}
func (u *silentUI) ShowToolStart(ctx context.Context, toolName, input string)                 {}
func (u *silentUI) ShowToolResult(ctx context.Context, toolName, result string, isError bool) {}
func (u *silentUI) ShowThinking(ctx context.Context, content string)                          {}
func (u *silentUI) ShowTaskResult(ctx context.Context, agentRole, result string) {
	u.finished = append(u.finished, result)
}

func testCrew() entity.Crew {
	return entity.Crew{
		Name:    "brand",
		Process: entity.ProcessSequential,
		Agents: []entity.Agent{
			{Key: "consultant", Role: "Consultant", Goal: "g", Backstory: "b", Verbose: true},
			{Key: "analyst", Role: "Analyst", Goal: "g", Backstory: "b"},
		},
		Tasks: []entity.Task{
			{Key: "review", Agent: "consultant", Description: "d", ExpectedOutput: "e"},
			{Key: "identity", Agent: "analyst", Description: "d", ExpectedOutput: "e", Context: []string{"review"}},
			{Key: "trends", Agent: "analyst", Description: "d", ExpectedOutput: "e", Context: []string{"identity"}},
			{Key: "summary", Agent: "consultant", Description: "d", ExpectedOutput: "e", Context: []string{"review", "trends"}},
		},
	}
}

func TestKickoff_RunsTasksInOrder(t *testing.T) {
	exec := &recordingExecutor{}
	ui := &silentUI{}
	uc := New(testCrew(), exec, ui, logger.NewNop(), "run-1")

	result, err := uc.Kickoff(context.Background())
	require.NoError(t, err)

	require.Len(t, exec.requests, 4)
	order := make([]string, 0, 4)
	for _, r := range exec.requests {
		order = append(order, r.Task.Key)
	}
	assert.Equal(t, []string{"review", "identity", "trends", "summary"}, order)

	assert.Equal(t, "run-1", result.RunID)
	require.Len(t, result.TaskOutputs, 4)
	assert.Equal(t, "Analyst", result.TaskOutputs[1].AgentRole)
	assert.Equal(t, 2, result.TaskOutputs[1].Iterations)
	assert.Equal(t, "output of summary", result.Final)
}

func TestKickoff_PassesOnlyDeclaredContext(t *testing.T) {
	exec := &recordingExecutor{}
	uc := New(testCrew(), exec, &silentUI{}, logger.NewNop(), "run-1")

	_, err := uc.Kickoff(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "", exec.requests[0].Context)
	assert.Equal(t, "output of review", exec.requests[1].Context)
	assert.Equal(t, "output of identity", exec.requests[2].Context)
	assert.Equal(t, "output of review"+ContextSeparator+"output of trends", exec.requests[3].Context)
	assert.Equal(t, "Analyst", exec.requests[1].Agent.Role)
}

func TestKickoff_VerboseAgentsReportProgress(t *testing.T) {
	ui := &silentUI{}
	uc := New(testCrew(), &recordingExecutor{}, ui, logger.NewNop(), "run-1")

	_, err := uc.Kickoff(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Consultant", "Consultant"}, ui.started)
	assert.Equal(t, []string{"output of review", "output of summary"}, ui.finished)
}

func TestKickoff_StopsOnTaskError(t *testing.T) {
	exec := &recordingExecutor{failOn: "identity"}
	uc := New(testCrew(), exec, &silentUI{}, logger.NewNop(), "run-1")

	_, err := uc.Kickoff(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `task "identity"`)
	assert.Len(t, exec.requests, 2)
}

func TestKickoff_RejectsInvalidCrew(t *testing.T) {
	c := testCrew()
	c.Tasks[0].Context = []string{"summary"}
	exec := &recordingExecutor{}
	uc := New(c, exec, &silentUI{}, logger.NewNop(), "run-1")

	_, err := uc.Kickoff(context.Background())
	assert.ErrorIs(t, err, entity.ErrInvalidContext)
	assert.Empty(t, exec.requests)
}

func TestKickoff_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	exec := &recordingExecutor{}
	uc := New(testCrew(), exec, &silentUI{}, logger.NewNop(), "run-1")

	_, err := uc.Kickoff(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, exec.requests)
}
