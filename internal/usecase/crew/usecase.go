package crew

import (
	"context"
	"fmt"
	"strings"
	"time"

	"personal-brand-crew/internal/application/port/input"
	"personal-brand-crew/internal/application/port/output"
	"personal-brand-crew/internal/domain/entity"
)

var _ input.CrewExecutor = (*UseCase)(nil)

// ContextSeparator joins the outputs handed to a task from its context tasks.
const ContextSeparator = "\n\n----------\n\n"

type UseCase struct {
	crew     entity.Crew
	executor input.AgentExecutor
	ui       output.UserInteractionPort
	logger   output.LoggerPort
	runID    string
}

func New(
	crew entity.Crew,
	executor input.AgentExecutor,
	ui output.UserInteractionPort,
	logger output.LoggerPort,
	runID string,
) *UseCase {
	return &UseCase{
		crew:     crew,
		executor: executor,
		ui:       ui,
		logger:   logger,
		runID:    runID,
	}
}

// Kickoff runs the tasks one after another in declared order. Each task sees
// only the raw outputs of the tasks named in its context.
func (uc *UseCase) Kickoff(ctx context.Context) (*entity.CrewResult, error) {
	if err := uc.crew.Validate(); err != nil {
		return nil, fmt.Errorf("invalid crew: %w", err)
	}

	uc.logger.Info("Crew kickoff", "crew", uc.crew.Name, "tasks", len(uc.crew.Tasks))

	result := &entity.CrewResult{
		RunID:       uc.runID,
		TaskOutputs: make([]entity.TaskOutput, 0, len(uc.crew.Tasks)),
	}
	outputs := make(map[string]string, len(uc.crew.Tasks))

	for i, task := range uc.crew.Tasks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		agent, _ := uc.crew.Agent(task.Agent)
		log := uc.logger.WithFields(map[string]any{
			"task":  task.Key,
			"agent": agent.Key,
			"step":  i + 1,
		})

		if agent.Verbose {
			uc.ui.ShowTaskStart(ctx, agent.Role, task.Description)
		}
		log.Info("Task started")

		start := time.Now()
		resp, err := uc.executor.Execute(ctx, entity.AgentRequest{
			Agent:   agent,
			Task:    task,
			Context: buildContext(task.Context, outputs),
		})
		if err != nil {
			log.Error("Task failed", "error", err)
			return nil, fmt.Errorf("task %q: %w", task.Key, err)
		}

		out := entity.TaskOutput{
			TaskKey:     task.Key,
			AgentRole:   agent.Role,
			Description: task.Description,
			Raw:         resp.Result,
			Iterations:  resp.Iterations,
			Duration:    time.Since(start),
		}
		outputs[task.Key] = out.Raw
		result.TaskOutputs = append(result.TaskOutputs, out)

		log.Info("Task completed",
			"iterations", resp.Iterations,
			"forced", resp.Forced,
			"durationMs", out.Duration.Milliseconds(),
			"outputLen", len(out.Raw))

		if agent.Verbose {
			uc.ui.ShowTaskResult(ctx, agent.Role, out.Raw)
		}
	}

	result.Final = result.TaskOutputs[len(result.TaskOutputs)-1].Raw
	uc.logger.Info("Crew finished", "crew", uc.crew.Name, "finalLen", len(result.Final))

	return result, nil
}

func buildContext(keys []string, outputs map[string]string) string {
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, outputs[k])
	}
	return strings.Join(parts, ContextSeparator)
}
