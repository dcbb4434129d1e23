package formengine

import (
	"medscreen-service/internal/pkg/constvars"
)

// The general health form is the permissive variant: clinically unsafe
// values are flagged as warnings but do not block submission.
var generalDefinition = FormDefinition{
	Type:         constvars.AssessmentGeneral,
	Title:        "General Health Assessment",
	Description:  "Screens overall health risk from vital signs and body measurements.",
	EndpointPath: "/predict",
	Fields: []FieldSpec{
		{Name: "age", Label: "Age", Kind: KindNumeric, Unit: "years", Min: 1, Max: 120},
		{
			Name:  "gender",
			Label: "Gender",
			Kind:  KindRadioGroup,
			Options: []Option{
				{Code: "1", Label: "Male"},
				{Code: "0", Label: "Female"},
			},
		},
		{Name: "height_cm", Label: "Height", Kind: KindNumeric, Unit: "cm", Min: 50, Max: 250},
		{Name: "weight_kg", Label: "Weight", Kind: KindNumeric, Unit: "kg", Min: 10, Max: 400},
		{
			Name: "systolic_bp", Label: "Systolic Blood Pressure", Kind: KindNumeric, Unit: "mmHg",
			Min: 60, Max: 300, NormalMin: ptr(90), NormalMax: ptr(120), ExtremeAbove: ptr(260),
		},
		{
			Name: "diastolic_bp", Label: "Diastolic Blood Pressure", Kind: KindNumeric, Unit: "mmHg",
			Min: 30, Max: 200, NormalMin: ptr(60), NormalMax: ptr(80), ExtremeAbove: ptr(160),
		},
		{
			Name: "heart_rate", Label: "Heart Rate", Kind: KindNumeric, Unit: "bpm",
			Min: 20, Max: 300, NormalMin: ptr(60), NormalMax: ptr(100), ExtremeAbove: ptr(250),
		},
		{
			Name: "temperature_c", Label: "Body Temperature", Kind: KindNumeric, Unit: "C",
			Min: 30, Max: 45, NormalMin: ptr(36.1), NormalMax: ptr(37.2),
		},
	},
}
