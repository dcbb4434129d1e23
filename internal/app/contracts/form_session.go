package contracts

import (
	"context"

	"medscreen-service/internal/app/models"
	"medscreen-service/internal/pkg/dto/responses"
)

type FormSessionUsecase interface {
	Create(ctx context.Context, assessmentType string) (*responses.FormSessionResponse, error)
	Find(ctx context.Context, sessionID string) (*responses.FormSessionResponse, error)
	UpdateField(ctx context.Context, sessionID, fieldName, value string) (*responses.FieldUpdateResponse, error)
	Submit(ctx context.Context, sessionID string) (*responses.FormSessionResponse, error)
	Reset(ctx context.Context, sessionID string) (*responses.FormSessionResponse, error)
	AttachImage(ctx context.Context, sessionID string, image ImagePayload) (*responses.FormSessionResponse, error)
	RemoveImage(ctx context.Context, sessionID string) (*responses.FormSessionResponse, error)
	ExportReport(ctx context.Context, sessionID string) ([]byte, string, error)
}

type FormSessionRepository interface {
	Save(ctx context.Context, session *models.FormSession) error
	Find(ctx context.Context, sessionID string) (*models.FormSession, error)
	Delete(ctx context.Context, sessionID string) error
}
