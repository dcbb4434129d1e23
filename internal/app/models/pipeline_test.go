package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPipelineStateCanTransitionTo(t *testing.T) {
	t.Run("Allows Lifecycle Edges", func(t *testing.T) {
		assert.True(t, PipelineIdle.CanTransitionTo(PipelineValidating), "idle should start validation")
		assert.True(t, PipelineValidating.CanTransitionTo(PipelineSubmitting), "validation should proceed to submission")
		assert.True(t, PipelineValidating.CanTransitionTo(PipelineIdle), "validation failures should return to idle")
		assert.True(t, PipelineSubmitting.CanTransitionTo(PipelineSuccess), "submission should complete")
		assert.True(t, PipelineSubmitting.CanTransitionTo(PipelineFailed), "submission should be allowed to fail")
		assert.True(t, PipelineSuccess.CanTransitionTo(PipelineIdle), "success should fold back to idle")
		assert.True(t, PipelineFailed.CanTransitionTo(PipelineIdle), "failure should fold back to idle")
	})

	t.Run("Rejects Shortcuts", func(t *testing.T) {
		assert.False(t, PipelineIdle.CanTransitionTo(PipelineSubmitting), "idle must not skip validation")
		assert.False(t, PipelineIdle.CanTransitionTo(PipelineSuccess), "idle must not jump to success")
		assert.False(t, PipelineFailed.CanTransitionTo(PipelineValidating), "a failed submission must not retry on its own")
		assert.False(t, PipelineFailed.CanTransitionTo(PipelineSubmitting), "a failed submission must not retry on its own")
		assert.False(t, PipelineSuccess.CanTransitionTo(PipelineValidating), "a finished submission must pass through idle first")
		assert.False(t, PipelineSubmitting.CanTransitionTo(PipelineIdle), "an in-flight submission must finish before idling")
	})
}

func TestPipelineStateInFlight(t *testing.T) {
	assert.True(t, PipelineValidating.InFlight(), "validating occupies the pipeline")
	assert.True(t, PipelineSubmitting.InFlight(), "submitting occupies the pipeline")
	assert.False(t, PipelineIdle.InFlight(), "idle leaves the pipeline free")
	assert.False(t, PipelineSuccess.InFlight(), "success leaves the pipeline free")
	assert.False(t, PipelineFailed.InFlight(), "failure leaves the pipeline free")
}
