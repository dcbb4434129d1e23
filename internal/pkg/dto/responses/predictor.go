package responses

import (
	json "github.com/goccy/go-json"

	"medscreen-service/internal/pkg/formengine"
)

// PredictorPrediction is the prediction service's raw success envelope. The
// probability field is polymorphic upstream: the lung-cancer model answers a
// class-to-percentage object while the tabular models answer a single
// fraction, so it stays raw until Normalize.
type PredictorPrediction struct {
	Prediction      string             `json:"prediction"`
	DetectedClass   string             `json:"detected_class,omitempty"`
	Probability     json.RawMessage    `json:"probability,omitempty"`
	Probabilities   map[string]float64 `json:"probabilities,omitempty"`
	RiskScore       *float64           `json:"risk_score,omitempty"`
	Confidence      *float64           `json:"confidence,omitempty"`
	OtherConditions []string           `json:"other_conditions,omitempty"`
}

// Normalize resolves the polymorphic probability branch and maps the wire
// envelope onto the engine's result shape.
func (p PredictorPrediction) Normalize() (formengine.PredictionResult, error) {
	result := formengine.PredictionResult{
		Prediction:              p.Prediction,
		DetectedClass:           p.DetectedClass,
		RiskScore:               p.RiskScore,
		Confidence:              p.Confidence,
		OtherConditions:         p.OtherConditions,
		ProbabilityDistribution: p.Probabilities,
	}
	if result.Prediction == "" {
		result.Prediction = p.DetectedClass
	}

	if len(p.Probability) == 0 {
		return result, nil
	}

	var single float64
	if err := json.Unmarshal(p.Probability, &single); err == nil {
		result.Probability = &single
		return result, nil
	}

	var buckets map[string]float64
	if err := json.Unmarshal(p.Probability, &buckets); err != nil {
		return formengine.PredictionResult{}, err
	}
	result.ProbabilityBuckets = buckets
	return result, nil
}

// PredictorError is the prediction service's error envelope.
type PredictorError struct {
	Error  string `json:"error,omitempty"`
	Detail string `json:"detail,omitempty"`
}

// Message returns whichever error text the envelope carries.
func (e PredictorError) Message() string {
	if e.Error != "" {
		return e.Error
	}
	return e.Detail
}

// PredictorHealth is the prediction service's health envelope, listing the
// loaded state of each model.
type PredictorHealth struct {
	Status  string          `json:"status"`
	Models  map[string]bool `json:"models_loaded,omitempty"`
	Message string          `json:"message,omitempty"`
}
