package formengine

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// RiskTier is the high/low bucket derived from a prediction label.
type RiskTier string

const (
	RiskTierHigh RiskTier = "high"
	RiskTierLow  RiskTier = "low"
)

const (
	TierColorSuccess = "success"
	TierColorWarning = "warning"
	TierColorDanger  = "danger"
)

// highRiskVocabulary is the documented response-text contract: a prediction
// label containing any of these phrases, compared case-insensitively,
// classifies as high risk. The prediction service has no structured tier
// field, so this vocabulary is versioned alongside it.
var highRiskVocabulary = []string{"high risk", "positive"}

const (
	highRiskAdvisory = "This screening indicates an elevated risk. Please consult a healthcare professional for a thorough evaluation."
	lowRiskAdvisory  = "This screening indicates a low risk. Maintain a healthy lifestyle and keep up with routine check-ups."

	// Top distribution classes below this percentage downgrade the icon
	// tier to a warning.
	iconConfidenceFloor = 50.0
)

// BMI category cutoffs.
const (
	bmiUnderweightLimit = 18.5
	bmiNormalLimit      = 25
	bmiOverweightLimit  = 30
)

const (
	BMICategoryUnderweight = "Underweight"
	BMICategoryNormal      = "Normal weight"
	BMICategoryOverweight  = "Overweight"
	BMICategoryObese       = "Obese"
)

// BMIInfo is the derived body-mass-index metric for forms that collect
// height and weight.
type BMIInfo struct {
	Value    float64 `json:"value"`
	Category string  `json:"category"`
}

// DistributionEntry is one class of an image-classification probability
// distribution, ordered for display.
type DistributionEntry struct {
	Label   string  `json:"label"`
	Percent float64 `json:"percent"`
}

// DisplayModel is the rendered, presentation-ready view of a prediction.
type DisplayModel struct {
	RiskTier          RiskTier            `json:"risk_tier"`
	TierColor         string              `json:"tier_color"`
	Headline          string              `json:"headline"`
	Description       string              `json:"description"`
	RiskScore         *float64            `json:"risk_score,omitempty"`
	BMI               *BMIInfo            `json:"bmi,omitempty"`
	SecondaryFindings []string            `json:"secondary_findings,omitempty"`
	Distribution      []DistributionEntry `json:"distribution,omitempty"`
	IconTier          string              `json:"icon_tier,omitempty"`
}

// ClassifyRiskTier matches the prediction label against the high-risk
// vocabulary, case-insensitively.
func ClassifyRiskTier(prediction string) RiskTier {
	lowered := strings.ToLower(prediction)
	for _, phrase := range highRiskVocabulary {
		if strings.Contains(lowered, phrase) {
			return RiskTierHigh
		}
	}
	return RiskTierLow
}

// ComputeBMI derives the body mass index from metric inputs. Nonpositive
// inputs yield nil.
func ComputeBMI(weightKg, heightCm float64) *BMIInfo {
	if weightKg <= 0 || heightCm <= 0 {
		return nil
	}
	heightM := heightCm / 100
	value := weightKg / (heightM * heightM)

	var category string
	switch {
	case value < bmiUnderweightLimit:
		category = BMICategoryUnderweight
	case value < bmiNormalLimit:
		category = BMICategoryNormal
	case value < bmiOverweightLimit:
		category = BMICategoryOverweight
	default:
		category = BMICategoryObese
	}

	return &BMIInfo{Value: math.Round(value*10) / 10, Category: category}
}

// RenderDisplay maps a prediction result and its originating snapshot into
// the display model. Pure: rendering the model is the caller's concern.
func RenderDisplay(def FormDefinition, result PredictionResult, snapshot FormSnapshot) DisplayModel {
	tier := ClassifyRiskTier(result.Prediction)
	tierColor := TierColorSuccess
	advisory := lowRiskAdvisory
	if tier == RiskTierHigh {
		tierColor = TierColorDanger
		advisory = highRiskAdvisory
	}

	model := DisplayModel{
		RiskTier:          tier,
		TierColor:         tierColor,
		Headline:          result.Prediction,
		RiskScore:         result.RiskScore,
		SecondaryFindings: result.OtherConditions,
	}

	// Fixed assembly order: advisory sentence, probability detail,
	// secondary findings.
	parts := []string{advisory}
	if detail := probabilityDetail(result); detail != "" {
		parts = append(parts, detail)
	}
	if len(result.OtherConditions) > 0 {
		parts = append(parts, fmt.Sprintf("Additional findings: %s.", strings.Join(result.OtherConditions, "; ")))
	}
	model.Description = strings.Join(parts, " ")

	if weight, ok := snapshot["weight_kg"]; ok {
		if height, ok := snapshot["height_cm"]; ok {
			model.BMI = ComputeBMI(weight, height)
		}
	}

	if len(result.ProbabilityDistribution) > 0 {
		model.Distribution = sortDistribution(result.ProbabilityDistribution)
		model.IconTier = iconTier(model.Distribution[0])
	}

	return model
}

func probabilityDetail(result PredictionResult) string {
	if len(result.ProbabilityBuckets) > 0 {
		keys := make([]string, 0, len(result.ProbabilityBuckets))
		for key := range result.ProbabilityBuckets {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		entries := make([]string, 0, len(keys))
		for _, key := range keys {
			entries = append(entries, fmt.Sprintf("%s %s%%", bucketLabel(key), formatPercent(result.ProbabilityBuckets[key])))
		}
		return fmt.Sprintf("Probability breakdown: %s.", strings.Join(entries, ", "))
	}
	if result.Probability != nil {
		return fmt.Sprintf("Estimated probability: %s%%.", formatPercent(*result.Probability*100))
	}
	if result.Confidence != nil {
		return fmt.Sprintf("Model confidence: %s%%.", formatPercent(*result.Confidence))
	}
	return ""
}

// sortDistribution orders class percentages descending, breaking ties by
// label so the order is deterministic.
func sortDistribution(distribution map[string]float64) []DistributionEntry {
	entries := make([]DistributionEntry, 0, len(distribution))
	for label, percent := range distribution {
		entries = append(entries, DistributionEntry{Label: label, Percent: percent})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Percent != entries[j].Percent {
			return entries[i].Percent > entries[j].Percent
		}
		return entries[i].Label < entries[j].Label
	})
	return entries
}

func iconTier(top DistributionEntry) string {
	if strings.EqualFold(top.Label, "normal") {
		return TierColorSuccess
	}
	if top.Percent < iconConfidenceFloor {
		return TierColorWarning
	}
	return TierColorDanger
}

func bucketLabel(key string) string {
	words := strings.Split(key, "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

func formatPercent(v float64) string {
	return strconv.FormatFloat(math.Round(v*10)/10, 'f', -1, 64)
}
