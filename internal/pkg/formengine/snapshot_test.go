package formengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSnapshot(t *testing.T) {
	def := testDefinition(true)

	t.Run("Coerces Raw Values To Numbers", func(t *testing.T) {
		states := EvaluateAll(def, map[string]string{"age": "45", "smoking": "1", "systolic_bp": "118.5", "heart_rate": "72"})
		snapshot, err := BuildSnapshot(def, states)
		assert.NoError(t, err, "fully valid form should snapshot")
		assert.Equal(t, FormSnapshot{"age": 45, "smoking": 1, "systolic_bp": 118.5, "heart_rate": 72}, snapshot, "snapshot should carry every field as a number")
	})

	t.Run("Refuses Incomplete Form", func(t *testing.T) {
		states := EvaluateAll(def, map[string]string{"age": "45"})
		snapshot, err := BuildSnapshot(def, states)
		assert.Error(t, err, "empty fields should prevent the snapshot")
		assert.Nil(t, snapshot, "no partial snapshot should be produced")
	})

	t.Run("Refuses Extreme Value Under Strict Policy", func(t *testing.T) {
		states := EvaluateAll(def, map[string]string{"age": "45", "smoking": "1", "systolic_bp": "270", "heart_rate": "72"})
		_, err := BuildSnapshot(def, states)
		assert.Error(t, err, "strict form should refuse an extreme value")
		assert.Contains(t, err.Error(), "Systolic Blood Pressure", "error should name the offending field")
	})

	t.Run("Allows Extreme Value Under Permissive Policy", func(t *testing.T) {
		permissive := testDefinition(false)
		states := EvaluateAll(permissive, map[string]string{"age": "45", "smoking": "1", "systolic_bp": "270", "heart_rate": "72"})
		snapshot, err := BuildSnapshot(permissive, states)
		assert.NoError(t, err, "permissive form should snapshot despite the extreme value")
		assert.Equal(t, 270.0, snapshot["systolic_bp"], "extreme value should pass through unchanged")
	})

	t.Run("Abnormal Values Pass Through", func(t *testing.T) {
		states := EvaluateAll(def, map[string]string{"age": "45", "smoking": "1", "systolic_bp": "150", "heart_rate": "72"})
		snapshot, err := BuildSnapshot(def, states)
		assert.NoError(t, err, "abnormal values do not block the snapshot")
		assert.Equal(t, 150.0, snapshot["systolic_bp"], "abnormal value should pass through unchanged")
	})
}
