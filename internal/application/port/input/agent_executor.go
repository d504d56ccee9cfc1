package input

import (
	"context"

	"personal-brand-crew/internal/domain/entity"
)

type AgentExecutor interface {
	Execute(ctx context.Context, req entity.AgentRequest) (*entity.AgentResponse, error)
}
