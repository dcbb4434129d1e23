package formengine

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Validate classifies rawValue against one field's declaration. It is a pure
// function: any visual feedback is the caller's concern.
func Validate(spec FieldSpec, rawValue string) Validity {
	value := strings.TrimSpace(rawValue)
	if value == "" {
		return ValidityEmpty
	}

	switch spec.Kind {
	case KindBinary:
		if value == "0" || value == "1" {
			return ValidityValidNormal
		}
		return ValidityInvalid

	case KindCategorical, KindRadioGroup:
		for _, option := range spec.Options {
			if value == option.Code {
				return ValidityValidNormal
			}
		}
		return ValidityInvalid

	case KindNumeric:
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
			return ValidityInvalid
		}
		if parsed < spec.Min || parsed > spec.Max {
			return ValidityInvalid
		}
		if spec.ExtremeAbove != nil && parsed >= *spec.ExtremeAbove {
			return ValidityBlockingInvalid
		}
		if spec.ExtremeBelow != nil && parsed <= *spec.ExtremeBelow {
			return ValidityBlockingInvalid
		}
		if spec.NormalMin != nil && parsed < *spec.NormalMin {
			return ValidityValidAbnormal
		}
		if spec.NormalMax != nil && parsed > *spec.NormalMax {
			return ValidityValidAbnormal
		}
		return ValidityValidNormal

	default:
		return ValidityInvalid
	}
}

// FieldMessage returns the display message for a validity outcome. Empty and
// valid-normal carry no message.
func FieldMessage(spec FieldSpec, validity Validity) string {
	switch validity {
	case ValidityInvalid:
		switch spec.Kind {
		case KindBinary:
			return fmt.Sprintf("%s must be 0 or 1.", spec.Label)
		case KindCategorical, KindRadioGroup:
			return fmt.Sprintf("%s must be one of the listed options.", spec.Label)
		default:
			return fmt.Sprintf("%s must be a number between %s and %s.", spec.Label, formatBound(spec.Min), formatBound(spec.Max))
		}
	case ValidityBlockingInvalid:
		return fmt.Sprintf("%s is outside the clinically safe range. Please double-check this value.", spec.Label)
	case ValidityValidAbnormal:
		if spec.NormalMin != nil && spec.NormalMax != nil {
			rangeText := fmt.Sprintf("%s-%s", formatBound(*spec.NormalMin), formatBound(*spec.NormalMax))
			if spec.Unit != "" {
				rangeText += " " + spec.Unit
			}
			return fmt.Sprintf("%s is outside the normal range (%s).", spec.Label, rangeText)
		}
		return fmt.Sprintf("%s is outside the normal range.", spec.Label)
	default:
		return ""
	}
}

// EvaluateField validates one raw value and packages the outcome with its
// display message.
func EvaluateField(spec FieldSpec, rawValue string) FieldState {
	validity := Validate(spec, rawValue)
	return FieldState{
		RawValue: strings.TrimSpace(rawValue),
		Validity: validity,
		Message:  FieldMessage(spec, validity),
	}
}

// EvaluateAll re-runs validation over every declared field. Missing entries
// in raw evaluate as empty.
func EvaluateAll(def FormDefinition, raw map[string]string) map[string]FieldState {
	states := make(map[string]FieldState, len(def.Fields))
	for _, spec := range def.Fields {
		states[spec.Name] = EvaluateField(spec, raw[spec.Name])
	}
	return states
}

// OffendingLabels lists, in declaration order, the display names of every
// field whose state blocks submission under the form's policy.
func OffendingLabels(def FormDefinition, states map[string]FieldState) []string {
	var labels []string
	for _, spec := range def.Fields {
		state := states[spec.Name]
		switch state.Validity {
		case ValidityEmpty, ValidityInvalid:
			labels = append(labels, spec.Label)
		case ValidityBlockingInvalid:
			if def.BlockOnExtreme {
				labels = append(labels, spec.Label)
			}
		}
	}
	return labels
}

// ConsolidatedValidationMessage builds the single submission-rejection
// sentence naming every offending field. Empty when nothing blocks.
func ConsolidatedValidationMessage(def FormDefinition, states map[string]FieldState) string {
	labels := OffendingLabels(def, states)
	if len(labels) == 0 {
		return ""
	}
	return fmt.Sprintf("Please review the following fields: %s.", strings.Join(labels, ", "))
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
