package formengine

import (
	"medscreen-service/internal/pkg/constvars"
)

var lungCancerDefinition = FormDefinition{
	Type:         constvars.AssessmentLungCancer,
	Title:        "Lung Cancer Risk Assessment",
	Description:  "Screens lung cancer risk from demographic and symptom indicators.",
	EndpointPath: "/lung-cancer/predict",
	Fields: []FieldSpec{
		{
			Name:  "gender",
			Label: "Gender",
			Kind:  KindRadioGroup,
			Options: []Option{
				{Code: "1", Label: "Male"},
				{Code: "0", Label: "Female"},
			},
		},
		{Name: "age", Label: "Age", Kind: KindNumeric, Unit: "years", Min: 1, Max: 120},
		{Name: "smoking", Label: "Smoking", Kind: KindBinary},
		{Name: "yellow_fingers", Label: "Yellow Fingers", Kind: KindBinary},
		{Name: "anxiety", Label: "Anxiety", Kind: KindBinary},
		{Name: "peer_pressure", Label: "Peer Pressure", Kind: KindBinary},
		{Name: "chronic_disease", Label: "Chronic Disease", Kind: KindBinary},
		{Name: "fatigue", Label: "Fatigue", Kind: KindBinary},
		{Name: "allergy", Label: "Allergy", Kind: KindBinary},
		{Name: "wheezing", Label: "Wheezing", Kind: KindBinary},
		{Name: "alcohol_consuming", Label: "Alcohol Consuming", Kind: KindBinary},
		{Name: "coughing", Label: "Coughing", Kind: KindBinary},
		{Name: "shortness_of_breath", Label: "Shortness of Breath", Kind: KindBinary},
		{Name: "swallowing_difficulty", Label: "Swallowing Difficulty", Kind: KindBinary},
		{Name: "chest_pain", Label: "Chest Pain", Kind: KindBinary},
	},
}
