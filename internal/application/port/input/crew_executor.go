package input

import (
	"context"

	"personal-brand-crew/internal/domain/entity"
)

type CrewExecutor interface {
	Kickoff(ctx context.Context) (*entity.CrewResult, error)
}
