package models

import (
	"time"

	"medscreen-service/internal/pkg/constvars"
)

// AssessmentEvent announces one completed screening to downstream consumers.
// It carries no field values: inputs stay inside the session store.
type AssessmentEvent struct {
	ID             string                   `json:"id"`
	SessionID      string                   `json:"session_id,omitempty"`
	AssessmentType constvars.AssessmentType `json:"assessment_type"`
	Prediction     string                   `json:"prediction"`
	RiskTier       string                   `json:"risk_tier"`
	OccurredAt     time.Time                `json:"occurred_at"`
}
