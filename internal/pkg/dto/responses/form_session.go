package responses

import (
	"time"

	"medscreen-service/internal/pkg/constvars"
	"medscreen-service/internal/pkg/formengine"
)

// FormSessionResponse is the full client view of one form-filling session.
type FormSessionResponse struct {
	ID             string                           `json:"id"`
	AssessmentType constvars.AssessmentType         `json:"assessment_type"`
	Status         string                           `json:"status"`
	Fields         map[string]formengine.FieldState `json:"fields"`
	Progress       formengine.Progress              `json:"progress"`
	Image          *UploadedImage                   `json:"image,omitempty"`
	Result         *formengine.DisplayModel         `json:"result,omitempty"`
	FailureMessage string                           `json:"failure_message,omitempty"`
	CreatedAt      time.Time                        `json:"created_at"`
	UpdatedAt      time.Time                        `json:"updated_at"`
}

// UploadedImage describes the image currently attached to a session.
type UploadedImage struct {
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

// FieldUpdateResponse carries the re-validated field together with the
// recomputed form progress after one value change.
type FieldUpdateResponse struct {
	Field    formengine.FieldState `json:"field"`
	Progress formengine.Progress   `json:"progress"`
}
