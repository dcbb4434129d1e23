package responses

// HealthResponse reports this service's own liveness together with the
// reachability and per-model readiness of the prediction backend.
type HealthResponse struct {
	Status    string          `json:"status"`
	Predictor PredictorStatus `json:"predictor"`
}

type PredictorStatus struct {
	Reachable bool            `json:"reachable"`
	Status    string          `json:"status,omitempty"`
	Models    map[string]bool `json:"models,omitempty"`
}
