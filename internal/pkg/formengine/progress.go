package formengine

import "math"

// Progress summarizes form completion for display and submit gating.
type Progress struct {
	Percent   int  `json:"percent"`
	CanSubmit bool `json:"can_submit"`
}

// ComputeProgress derives completion from the current field states. Percent
// counts fields in a valid tier; CanSubmit applies the form's policy: empty
// and invalid always block, blocking-invalid blocks only under
// BlockOnExtreme. Image-only forms complete through their upload instead,
// which the caller accounts for separately.
func ComputeProgress(def FormDefinition, states map[string]FieldState) Progress {
	total := len(def.Fields)
	if total == 0 {
		return Progress{Percent: 100, CanSubmit: true}
	}

	valid := 0
	canSubmit := true
	for _, spec := range def.Fields {
		state := states[spec.Name]
		switch state.Validity {
		case ValidityValidNormal, ValidityValidAbnormal:
			valid++
		case ValidityBlockingInvalid:
			if def.BlockOnExtreme {
				canSubmit = false
			}
		default:
			canSubmit = false
		}
	}

	percent := int(math.Round(float64(valid) / float64(total) * 100))
	return Progress{Percent: percent, CanSubmit: canSubmit}
}
