package requests

// CreateFormSession opens a fresh session for one assessment form.
type CreateFormSession struct {
	AssessmentType string `json:"assessment_type" validate:"required,assessment_type"`
}

// UpdateField replaces a single field's raw value. An empty value clears the
// field back to its untouched state.
type UpdateField struct {
	Value string `json:"value" validate:"omitempty,max=128"`
}
