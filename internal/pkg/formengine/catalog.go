package formengine

import (
	"medscreen-service/internal/pkg/constvars"
)

var catalog = []FormDefinition{
	lungCancerDefinition,
	cardiovascularDefinition,
	covidDefinition,
	generalDefinition,
	eyeDefinition,
}

// Definitions returns every supported form definition in catalog order.
func Definitions() []FormDefinition {
	out := make([]FormDefinition, len(catalog))
	copy(out, catalog)
	return out
}

// Definition looks up the form definition for an assessment type.
func Definition(assessmentType constvars.AssessmentType) (FormDefinition, bool) {
	for _, def := range catalog {
		if def.Type == assessmentType {
			return def, true
		}
	}
	return FormDefinition{}, false
}

// NewFieldStates builds the initial, all-empty field states for a form.
func NewFieldStates(def FormDefinition) map[string]FieldState {
	states := make(map[string]FieldState, len(def.Fields))
	for _, spec := range def.Fields {
		states[spec.Name] = FieldState{Validity: ValidityEmpty}
	}
	return states
}
