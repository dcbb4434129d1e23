package formengine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyRiskTier(t *testing.T) {
	t.Run("High Risk Vocabulary Matches Case Insensitively", func(t *testing.T) {
		for _, prediction := range []string{"High Risk", "HIGH RISK", "high risk of lung cancer", "Positive", "COVID-19 POSITIVE"} {
			assert.Equal(t, RiskTierHigh, ClassifyRiskTier(prediction), "prediction %q should classify as high risk", prediction)
		}
	})

	t.Run("Everything Else Is Low Risk", func(t *testing.T) {
		for _, prediction := range []string{"Low Risk", "LOW RISK", "Negative", "COVID-19 Negative", "cataract", ""} {
			assert.Equal(t, RiskTierLow, ClassifyRiskTier(prediction), "prediction %q should classify as low risk", prediction)
		}
	})
}

func TestComputeBMI(t *testing.T) {
	t.Run("Normal Weight", func(t *testing.T) {
		bmi := ComputeBMI(70, 175)
		assert.NotNil(t, bmi, "valid inputs should produce a BMI")
		assert.Equal(t, 22.9, bmi.Value, "70 kg at 175 cm should round to 22.9")
		assert.Equal(t, BMICategoryNormal, bmi.Category, "22.9 should fall in the normal band")
	})

	t.Run("Obese", func(t *testing.T) {
		bmi := ComputeBMI(100, 170)
		assert.Equal(t, 34.6, bmi.Value, "100 kg at 170 cm should round to 34.6")
		assert.Equal(t, BMICategoryObese, bmi.Category, "34.6 should fall in the obese band")
	})

	t.Run("Underweight", func(t *testing.T) {
		bmi := ComputeBMI(45, 160)
		assert.Equal(t, BMICategoryUnderweight, bmi.Category, "17.6 should fall in the underweight band")
	})

	t.Run("Overweight", func(t *testing.T) {
		bmi := ComputeBMI(80, 170)
		assert.Equal(t, BMICategoryOverweight, bmi.Category, "27.7 should fall in the overweight band")
	})

	t.Run("Band Edges", func(t *testing.T) {
		assert.Equal(t, BMICategoryNormal, ComputeBMI(18.5, 100).Category, "18.5 exactly is already normal weight")
		assert.Equal(t, BMICategoryOverweight, ComputeBMI(25, 100).Category, "25 exactly is already overweight")
		assert.Equal(t, BMICategoryObese, ComputeBMI(30, 100).Category, "30 exactly is already obese")
	})

	t.Run("Unusable Inputs", func(t *testing.T) {
		assert.Nil(t, ComputeBMI(70, 0), "zero height cannot produce a BMI")
		assert.Nil(t, ComputeBMI(0, 175), "zero weight cannot produce a BMI")
	})
}

func TestRenderDisplayRiskPresentation(t *testing.T) {
	def, _ := Definition("lung_cancer")

	t.Run("Low Risk With Probability Breakdown", func(t *testing.T) {
		result := PredictionResult{
			Prediction:         "Low Risk",
			ProbabilityBuckets: map[string]float64{"high_risk": 12.4, "low_risk": 87.6},
		}

		model := RenderDisplay(def, result, nil)
		assert.Equal(t, RiskTierLow, model.RiskTier, "low risk label should classify low")
		assert.Equal(t, TierColorSuccess, model.TierColor, "low risk should render with the success color")
		assert.Equal(t, "Low Risk", model.Headline, "headline should echo the prediction label")
		assert.Contains(t, model.Description, "low risk", "description should open with the low-risk advisory")
		assert.Contains(t, model.Description, "Probability breakdown: High Risk 12.4%, Low Risk 87.6%.", "description should carry both bucket percentages")
	})

	t.Run("High Risk With Single Probability", func(t *testing.T) {
		risk := 0.87
		result := PredictionResult{Prediction: "High Risk", Probability: &risk}

		model := RenderDisplay(def, result, nil)
		assert.Equal(t, RiskTierHigh, model.RiskTier, "high risk label should classify high")
		assert.Equal(t, TierColorDanger, model.TierColor, "high risk should render with the danger color")
		assert.Contains(t, model.Description, "consult a healthcare professional", "description should open with the high-risk advisory")
		assert.Contains(t, model.Description, "Estimated probability: 87%.", "fractional probability should render as a percentage")
	})

	t.Run("Description Parts Keep Their Order", func(t *testing.T) {
		probability := 0.31
		result := PredictionResult{
			Prediction:      "Negative",
			Probability:     &probability,
			OtherConditions: []string{"Possible anemia", "Elevated white cell count"},
		}

		model := RenderDisplay(def, result, nil)
		advisoryAt := strings.Index(model.Description, "low risk")
		probabilityAt := strings.Index(model.Description, "Estimated probability")
		findingsAt := strings.Index(model.Description, "Additional findings: Possible anemia; Elevated white cell count.")
		assert.True(t, advisoryAt >= 0 && advisoryAt < probabilityAt, "advisory should precede the probability detail")
		assert.True(t, probabilityAt < findingsAt, "probability detail should precede the findings")
		assert.Equal(t, result.OtherConditions, model.SecondaryFindings, "findings should also surface structurally")
	})
}

func TestRenderDisplayBMI(t *testing.T) {
	def, _ := Definition("general")
	result := PredictionResult{Prediction: "Low Risk"}

	t.Run("Derived From Snapshot", func(t *testing.T) {
		model := RenderDisplay(def, result, FormSnapshot{"weight_kg": 70, "height_cm": 175})
		assert.NotNil(t, model.BMI, "height and weight in the snapshot should yield a BMI")
		assert.Equal(t, 22.9, model.BMI.Value, "BMI should be rounded to one decimal")
		assert.Equal(t, BMICategoryNormal, model.BMI.Category, "category should match the value")
	})

	t.Run("Absent Without Anthropometrics", func(t *testing.T) {
		model := RenderDisplay(def, result, FormSnapshot{"weight_kg": 70})
		assert.Nil(t, model.BMI, "missing height should suppress the BMI")
	})
}

func TestRenderDisplayDistribution(t *testing.T) {
	def, _ := Definition("eye")

	t.Run("Sorted Descending With Deterministic Ties", func(t *testing.T) {
		result := PredictionResult{
			Prediction:              "cataract",
			DetectedClass:           "cataract",
			ProbabilityDistribution: map[string]float64{"glaucoma": 3.7, "cataract": 91.2, "normal": 5.1},
		}

		model := RenderDisplay(def, result, nil)
		assert.Equal(t, []DistributionEntry{
			{Label: "cataract", Percent: 91.2},
			{Label: "normal", Percent: 5.1},
			{Label: "glaucoma", Percent: 3.7},
		}, model.Distribution, "distribution should sort by percentage descending")

		tied := RenderDisplay(def, PredictionResult{
			Prediction:              "cataract",
			ProbabilityDistribution: map[string]float64{"b_class": 30, "a_class": 30, "c_class": 40},
		}, nil)
		assert.Equal(t, "c_class", tied.Distribution[0].Label, "highest percentage should lead")
		assert.Equal(t, "a_class", tied.Distribution[1].Label, "ties should break alphabetically")
	})

	t.Run("Icon Tier Follows Top Class", func(t *testing.T) {
		confident := RenderDisplay(def, PredictionResult{
			Prediction:              "cataract",
			ProbabilityDistribution: map[string]float64{"cataract": 91.2, "normal": 8.8},
		}, nil)
		assert.Equal(t, TierColorDanger, confident.IconTier, "confident abnormal class should show the danger icon")

		healthy := RenderDisplay(def, PredictionResult{
			Prediction:              "normal",
			ProbabilityDistribution: map[string]float64{"normal": 76.5, "cataract": 23.5},
		}, nil)
		assert.Equal(t, TierColorSuccess, healthy.IconTier, "normal top class should show the success icon")

		uncertain := RenderDisplay(def, PredictionResult{
			Prediction:              "cataract",
			ProbabilityDistribution: map[string]float64{"cataract": 40, "normal": 35, "glaucoma": 25},
		}, nil)
		assert.Equal(t, TierColorWarning, uncertain.IconTier, "low-confidence top class should downgrade to the warning icon")
	})

	t.Run("Absent Without Distribution", func(t *testing.T) {
		model := RenderDisplay(def, PredictionResult{Prediction: "normal"}, nil)
		assert.Empty(t, model.Distribution, "no distribution should yield no entries")
		assert.Empty(t, model.IconTier, "no distribution should yield no icon tier")
	})
}
