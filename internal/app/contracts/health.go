package contracts

import (
	"context"

	"medscreen-service/internal/pkg/dto/responses"
)

type HealthUsecase interface {
	Check(ctx context.Context) (*responses.HealthResponse, error)
}
