package formengine

import (
	"medscreen-service/internal/pkg/constvars"
)

// Normal ranges follow standard adult complete-blood-count reference
// intervals. Values outside them are advisory only; the prediction service
// reports its own secondary findings.
var covidDefinition = FormDefinition{
	Type:         constvars.AssessmentCovid,
	Title:        "COVID-19 Blood Test Assessment",
	Description:  "Screens COVID-19 likelihood from complete blood count parameters.",
	EndpointPath: "/covid/predict",
	Fields: []FieldSpec{
		{Name: "age", Label: "Age", Kind: KindNumeric, Unit: "years", Min: 0, Max: 120},
		{Name: "leukocytes", Label: "Leukocytes", Kind: KindNumeric, Unit: "10^3/uL", Min: 0, Max: 200, NormalMin: ptr(4), NormalMax: ptr(11)},
		{Name: "neutrophilsP", Label: "Neutrophils (%)", Kind: KindNumeric, Unit: "%", Min: 0, Max: 100, NormalMin: ptr(40), NormalMax: ptr(70)},
		{Name: "lymphocytesP", Label: "Lymphocytes (%)", Kind: KindNumeric, Unit: "%", Min: 0, Max: 100, NormalMin: ptr(20), NormalMax: ptr(50)},
		{Name: "monocytesP", Label: "Monocytes (%)", Kind: KindNumeric, Unit: "%", Min: 0, Max: 100, NormalMin: ptr(2), NormalMax: ptr(10)},
		{Name: "eosinophilsP", Label: "Eosinophils (%)", Kind: KindNumeric, Unit: "%", Min: 0, Max: 100, NormalMin: ptr(0), NormalMax: ptr(6)},
		{Name: "basophilsP", Label: "Basophils (%)", Kind: KindNumeric, Unit: "%", Min: 0, Max: 100, NormalMin: ptr(0), NormalMax: ptr(2)},
		{Name: "neutrophils", Label: "Neutrophils", Kind: KindNumeric, Unit: "10^3/uL", Min: 0, Max: 50, NormalMin: ptr(1.5), NormalMax: ptr(8)},
		{Name: "lymphocytes", Label: "Lymphocytes", Kind: KindNumeric, Unit: "10^3/uL", Min: 0, Max: 50, NormalMin: ptr(1), NormalMax: ptr(4.8)},
		{Name: "monocytes", Label: "Monocytes", Kind: KindNumeric, Unit: "10^3/uL", Min: 0, Max: 10, NormalMin: ptr(0.2), NormalMax: ptr(1)},
		{Name: "eosinophils", Label: "Eosinophils", Kind: KindNumeric, Unit: "10^3/uL", Min: 0, Max: 10, NormalMin: ptr(0), NormalMax: ptr(0.5)},
		{Name: "basophils", Label: "Basophils", Kind: KindNumeric, Unit: "10^3/uL", Min: 0, Max: 5, NormalMin: ptr(0), NormalMax: ptr(0.2)},
		{Name: "redbloodcells", Label: "Red Blood Cells", Kind: KindNumeric, Unit: "10^6/uL", Min: 0, Max: 10, NormalMin: ptr(4.2), NormalMax: ptr(6.1)},
		{Name: "mcv", Label: "MCV", Kind: KindNumeric, Unit: "fL", Min: 50, Max: 150, NormalMin: ptr(80), NormalMax: ptr(100)},
		{Name: "mch", Label: "MCH", Kind: KindNumeric, Unit: "pg", Min: 10, Max: 50, NormalMin: ptr(27), NormalMax: ptr(33)},
		{Name: "mchc", Label: "MCHC", Kind: KindNumeric, Unit: "g/dL", Min: 20, Max: 45, NormalMin: ptr(32), NormalMax: ptr(36)},
		{Name: "rdwP", Label: "RDW (%)", Kind: KindNumeric, Unit: "%", Min: 5, Max: 30, NormalMin: ptr(11.5), NormalMax: ptr(14.5)},
		{Name: "hemoglobin", Label: "Hemoglobin", Kind: KindNumeric, Unit: "g/dL", Min: 2, Max: 25, NormalMin: ptr(12), NormalMax: ptr(18)},
		{Name: "hematocritP", Label: "Hematocrit (%)", Kind: KindNumeric, Unit: "%", Min: 10, Max: 70, NormalMin: ptr(36), NormalMax: ptr(54)},
		{Name: "platelets", Label: "Platelets", Kind: KindNumeric, Unit: "10^3/uL", Min: 1, Max: 1500, NormalMin: ptr(150), NormalMax: ptr(450)},
		{Name: "mpv", Label: "MPV", Kind: KindNumeric, Unit: "fL", Min: 5, Max: 15, NormalMin: ptr(7.5), NormalMax: ptr(11.5)},
	},
}
