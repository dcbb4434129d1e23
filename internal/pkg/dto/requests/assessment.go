package requests

// Predict carries raw field values for the stateless predict operation. The
// values run through the same validation as session submissions before
// anything leaves the service.
type Predict struct {
	Fields map[string]string `json:"fields" validate:"required"`
}
