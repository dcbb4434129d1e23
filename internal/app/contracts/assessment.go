package contracts

import (
	"context"

	"medscreen-service/internal/pkg/constvars"
	"medscreen-service/internal/pkg/dto/responses"
	"medscreen-service/internal/pkg/formengine"
)

type AssessmentUsecase interface {
	FindAll(ctx context.Context) ([]responses.AssessmentSummary, error)
	FindByType(ctx context.Context, assessmentType constvars.AssessmentType) (formengine.FormDefinition, error)
	Predict(ctx context.Context, assessmentType constvars.AssessmentType, fields map[string]string) (*responses.PredictionResponse, error)
}
