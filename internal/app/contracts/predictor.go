package contracts

import (
	"context"
	"io"

	"medscreen-service/internal/pkg/dto/responses"
	"medscreen-service/internal/pkg/formengine"
)

// ImagePayload is one image streamed toward the prediction service.
type ImagePayload struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

type PredictorClient interface {
	Predict(ctx context.Context, def formengine.FormDefinition, snapshot formengine.FormSnapshot) (formengine.PredictionResult, error)
	PredictImage(ctx context.Context, def formengine.FormDefinition, image ImagePayload) (formengine.PredictionResult, error)
	Health(ctx context.Context) (responses.PredictorHealth, error)
}
