package formengine

import (
	"medscreen-service/internal/pkg/constvars"
)

// FieldKind classifies how a declared input is captured and coerced.
type FieldKind string

const (
	KindNumeric     FieldKind = "numeric"
	KindBinary      FieldKind = "binary"
	KindCategorical FieldKind = "categorical"
	KindRadioGroup  FieldKind = "radio-group"
)

// Validity is the tiered outcome of validating one field's raw value.
type Validity string

const (
	ValidityEmpty           Validity = "empty"
	ValidityInvalid         Validity = "invalid"
	ValidityBlockingInvalid Validity = "blocking-invalid"
	ValidityValidAbnormal   Validity = "valid-abnormal"
	ValidityValidNormal     Validity = "valid-normal"
)

// Option is one selectable code of a categorical or radio-group field.
// Declaration order is presentation order.
type Option struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// FieldSpec declares one form input. Instances are package-level data and
// never mutated after load.
//
// Min and Max are the inclusive hard bounds for numeric kinds. NormalMin and
// NormalMax, when set, mark the advisory sub-range: parseable values inside
// the hard bounds but outside the normal range validate as valid-abnormal.
// ExtremeAbove and ExtremeBelow, when set, mark the clinically unsafe
// sub-ranges inside the hard bounds that validate as blocking-invalid.
type FieldSpec struct {
	Name  string    `json:"name"`
	Label string    `json:"label"`
	Kind  FieldKind `json:"kind"`
	Unit  string    `json:"unit,omitempty"`

	Min float64 `json:"min,omitempty"`
	Max float64 `json:"max,omitempty"`

	NormalMin *float64 `json:"normal_min,omitempty"`
	NormalMax *float64 `json:"normal_max,omitempty"`

	ExtremeAbove *float64 `json:"extreme_above,omitempty"`
	ExtremeBelow *float64 `json:"extreme_below,omitempty"`

	Options []Option `json:"options,omitempty"`
}

// UploadPolicy constrains the image upload of an assessment that takes one.
type UploadPolicy struct {
	AllowedMIMETypes []string `json:"allowed_mime_types"`
}

// FormDefinition is the complete declarative description of one assessment
// form: its fields, its upstream endpoint path, and its submission policy.
type FormDefinition struct {
	Type        constvars.AssessmentType `json:"type"`
	Title       string                   `json:"title"`
	Description string                   `json:"description"`

	// EndpointPath is the prediction service path this form submits to.
	EndpointPath string `json:"-"`

	// BlockOnExtreme decides whether blocking-invalid fields block
	// submission (strict) or are surfaced as warnings only (permissive).
	BlockOnExtreme bool `json:"block_on_extreme"`

	RequiresImage bool          `json:"requires_image"`
	Upload        *UploadPolicy `json:"upload,omitempty"`

	Fields []FieldSpec `json:"fields"`
}

// Field returns the declared spec for name, if any.
func (d FormDefinition) Field(name string) (FieldSpec, bool) {
	for _, spec := range d.Fields {
		if spec.Name == name {
			return spec, true
		}
	}
	return FieldSpec{}, false
}

// FieldState is the runtime status of one field within a form session.
type FieldState struct {
	RawValue string   `json:"raw_value"`
	Validity Validity `json:"validity"`
	Message  string   `json:"message,omitempty"`
}

// FormSnapshot is the coerced, submission-ready representation of all
// fields. Every declared code in the catalog is numeric, so values coerce
// uniformly to float64.
type FormSnapshot map[string]float64

// PredictionResult is the decoded prediction service response. Which
// optional fields are populated depends on the assessment variant.
type PredictionResult struct {
	Prediction              string             `json:"prediction"`
	RiskScore               *float64           `json:"risk_score,omitempty"`
	Probability             *float64           `json:"probability,omitempty"`
	ProbabilityBuckets      map[string]float64 `json:"probability_buckets,omitempty"`
	OtherConditions         []string           `json:"other_conditions,omitempty"`
	Confidence              *float64           `json:"confidence,omitempty"`
	DetectedClass           string             `json:"detected_class,omitempty"`
	ProbabilityDistribution map[string]float64 `json:"probability_distribution,omitempty"`
}

func ptr(v float64) *float64 {
	return &v
}
