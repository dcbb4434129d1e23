package formengine

import (
	"medscreen-service/internal/pkg/constvars"
)

// The cardiovascular form is the strict variant: clinically unsafe values
// (for example a maximum heart rate of 250 or more) block submission.
var cardiovascularDefinition = FormDefinition{
	Type:           constvars.AssessmentCardiovascular,
	Title:          "Cardiovascular Disease Assessment",
	Description:    "Screens heart disease risk from clinical examination parameters.",
	EndpointPath:   "/cardiovascular/predict",
	BlockOnExtreme: true,
	Fields: []FieldSpec{
		{Name: "age", Label: "Age", Kind: KindNumeric, Unit: "years", Min: 18, Max: 100},
		{
			Name:  "sex",
			Label: "Sex",
			Kind:  KindRadioGroup,
			Options: []Option{
				{Code: "1", Label: "Male"},
				{Code: "0", Label: "Female"},
			},
		},
		{
			Name:  "chest_pain_type",
			Label: "Chest Pain Type",
			Kind:  KindCategorical,
			Options: []Option{
				{Code: "0", Label: "Typical Angina"},
				{Code: "1", Label: "Atypical Angina"},
				{Code: "2", Label: "Non-anginal Pain"},
				{Code: "3", Label: "Asymptomatic"},
			},
		},
		{
			Name: "resting_bp", Label: "Resting Blood Pressure", Kind: KindNumeric, Unit: "mmHg",
			Min: 60, Max: 260, NormalMin: ptr(90), NormalMax: ptr(140), ExtremeAbove: ptr(220),
		},
		{
			Name: "cholesterol", Label: "Cholesterol", Kind: KindNumeric, Unit: "mg/dL",
			Min: 80, Max: 700, NormalMin: ptr(125), NormalMax: ptr(200),
		},
		{Name: "fasting_bs", Label: "Fasting Blood Sugar > 120 mg/dL", Kind: KindBinary},
		{
			Name:  "rest_ecg",
			Label: "Resting ECG",
			Kind:  KindCategorical,
			Options: []Option{
				{Code: "0", Label: "Normal"},
				{Code: "1", Label: "ST-T Wave Abnormality"},
				{Code: "2", Label: "Left Ventricular Hypertrophy"},
			},
		},
		{
			Name: "max_heart_rate", Label: "Maximum Heart Rate", Kind: KindNumeric, Unit: "bpm",
			Min: 50, Max: 300, NormalMin: ptr(60), NormalMax: ptr(202), ExtremeAbove: ptr(250),
		},
		{Name: "exercise_angina", Label: "Exercise Induced Angina", Kind: KindBinary},
		{
			Name: "oldpeak", Label: "ST Depression (Oldpeak)", Kind: KindNumeric, Unit: "mm",
			Min: 0, Max: 10, NormalMin: ptr(0), NormalMax: ptr(2),
		},
		{
			Name:  "slope",
			Label: "ST Slope",
			Kind:  KindCategorical,
			Options: []Option{
				{Code: "0", Label: "Upsloping"},
				{Code: "1", Label: "Flat"},
				{Code: "2", Label: "Downsloping"},
			},
		},
		{
			Name:  "major_vessels",
			Label: "Major Vessels",
			Kind:  KindCategorical,
			Options: []Option{
				{Code: "0", Label: "0"},
				{Code: "1", Label: "1"},
				{Code: "2", Label: "2"},
				{Code: "3", Label: "3"},
				{Code: "4", Label: "4"},
			},
		},
		{
			Name:  "thal",
			Label: "Thalassemia",
			Kind:  KindCategorical,
			Options: []Option{
				{Code: "0", Label: "Unknown"},
				{Code: "1", Label: "Normal"},
				{Code: "2", Label: "Fixed Defect"},
				{Code: "3", Label: "Reversible Defect"},
			},
		},
	},
}
