package formengine

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var errSnapshotNotReady = errors.New("fields are not submittable")

// BuildSnapshot coerces every field state into the flat numeric mapping the
// prediction service consumes. It refuses to build while any field still
// blocks submission under the form's policy.
func BuildSnapshot(def FormDefinition, states map[string]FieldState) (FormSnapshot, error) {
	if labels := OffendingLabels(def, states); len(labels) > 0 {
		return nil, fmt.Errorf("%w: %s", errSnapshotNotReady, strings.Join(labels, ", "))
	}

	snapshot := make(FormSnapshot, len(def.Fields))
	for _, spec := range def.Fields {
		state := states[spec.Name]
		value, err := strconv.ParseFloat(state.RawValue, 64)
		if err != nil {
			return nil, fmt.Errorf("field %s holds a non-numeric value %q", spec.Name, state.RawValue)
		}
		snapshot[spec.Name] = value
	}
	return snapshot, nil
}
