package responses

import (
	"medscreen-service/internal/pkg/constvars"
	"medscreen-service/internal/pkg/formengine"
)

// AssessmentSummary is one catalog entry, enough for a client to render the
// assessment picker without fetching every form definition.
type AssessmentSummary struct {
	Type          constvars.AssessmentType `json:"type"`
	Title         string                   `json:"title"`
	Description   string                   `json:"description,omitempty"`
	FieldCount    int                      `json:"field_count"`
	RequiresImage bool                     `json:"requires_image"`
}

// PredictionResponse pairs the raw prediction with its presentation-ready
// rendering for the stateless predict operation.
type PredictionResponse struct {
	Raw     formengine.PredictionResult `json:"raw"`
	Display formengine.DisplayModel     `json:"display"`
}
