package contracts

import (
	"context"

	"medscreen-service/internal/app/models"
)

type EventQueueService interface {
	PublishAssessmentCompleted(ctx context.Context, event models.AssessmentEvent) error
}
