package models

type PipelineState string

const (
	PipelineIdle       PipelineState = "idle"
	PipelineValidating PipelineState = "validating"
	PipelineSubmitting PipelineState = "submitting"
	PipelineSuccess    PipelineState = "success"
	PipelineFailed     PipelineState = "failed"
)

// pipelineTransitions encodes the submission lifecycle. A failed submission
// never retries on its own: both terminal states only lead back to idle.
var pipelineTransitions = map[PipelineState][]PipelineState{
	PipelineIdle:       {PipelineValidating},
	PipelineValidating: {PipelineSubmitting, PipelineIdle},
	PipelineSubmitting: {PipelineSuccess, PipelineFailed},
	PipelineSuccess:    {PipelineIdle},
	PipelineFailed:     {PipelineIdle},
}

func (s PipelineState) CanTransitionTo(next PipelineState) bool {
	for _, allowed := range pipelineTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// InFlight reports whether a submission currently occupies the pipeline.
func (s PipelineState) InFlight() bool {
	return s == PipelineValidating || s == PipelineSubmitting
}
