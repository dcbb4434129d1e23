package models

import (
	"time"

	"medscreen-service/internal/pkg/constvars"
	"medscreen-service/internal/pkg/dto/responses"
	"medscreen-service/internal/pkg/formengine"
)

// FormSession is one person's pass through one assessment form. It is the
// unit of storage: the whole session round-trips through Redis as JSON.
type FormSession struct {
	ID             string                           `json:"id"`
	AssessmentType constvars.AssessmentType         `json:"assessment_type"`
	Status         PipelineState                    `json:"status"`
	Fields         map[string]formengine.FieldState `json:"fields"`
	Image          *UploadAsset                     `json:"image,omitempty"`
	Result         *formengine.PredictionResult     `json:"result,omitempty"`
	Snapshot       formengine.FormSnapshot          `json:"snapshot,omitempty"`
	FailureMessage string                           `json:"failure_message,omitempty"`
	CreatedAt      time.Time                        `json:"created_at"`
	UpdatedAt      time.Time                        `json:"updated_at"`
}

// UploadAsset tracks the image currently attached to a session. Version
// increments on every accepted upload so a slow earlier upload can never
// displace a newer one.
type UploadAsset struct {
	ObjectName  string    `json:"object_name"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	Version     int64     `json:"version"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

// ConvertIntoResponse renders the session for the client, recomputing
// progress and, when a result is present, its display model.
func (s FormSession) ConvertIntoResponse(def formengine.FormDefinition) responses.FormSessionResponse {
	response := responses.FormSessionResponse{
		ID:             s.ID,
		AssessmentType: s.AssessmentType,
		Status:         string(s.Status),
		Fields:         s.Fields,
		Progress:       s.ComputeProgress(def),
		FailureMessage: s.FailureMessage,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}

	if s.Image != nil {
		response.Image = &responses.UploadedImage{
			Filename:    s.Image.Filename,
			ContentType: s.Image.ContentType,
			Size:        s.Image.Size,
			UploadedAt:  s.Image.UploadedAt,
		}
	}

	if s.Result != nil {
		display := formengine.RenderDisplay(def, *s.Result, s.Snapshot)
		response.Result = &display
	}

	return response
}

// ComputeProgress folds the image requirement into the engine's field
// progress: an image-driven form is only complete once an image is attached.
func (s FormSession) ComputeProgress(def formengine.FormDefinition) formengine.Progress {
	progress := formengine.ComputeProgress(def, s.Fields)
	if def.RequiresImage && s.Image == nil {
		progress.Percent = 0
		progress.CanSubmit = false
	}
	return progress
}
