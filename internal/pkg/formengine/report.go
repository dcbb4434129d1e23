package formengine

import (
	"fmt"
	"medscreen-service/internal/pkg/constvars"
	"strconv"
	"strings"
	"time"
)

const reportDisclaimer = `This report was generated by an automated screening tool and is not a
medical diagnosis. The results are informational only. Always consult a
qualified healthcare professional before acting on any screening outcome.`

const reportRule = "=========================================================="

// ExportReport serializes the last successful result and its originating
// inputs into a plain-text artifact. Generation is pure; offering the
// artifact for download is the delivery layer's concern.
func ExportReport(def FormDefinition, result PredictionResult, snapshot FormSnapshot, generatedAt time.Time) ([]byte, string) {
	var b strings.Builder

	b.WriteString(reportRule + "\n")
	b.WriteString(" MEDICAL PREDICTION PLATFORM\n")
	b.WriteString(fmt.Sprintf(" %s Report\n", def.Title))
	b.WriteString(reportRule + "\n")
	b.WriteString(fmt.Sprintf("Generated: %s\n\n", generatedAt.UTC().Format("2006-01-02 15:04:05 MST")))

	b.WriteString("RESULT\n------\n")
	b.WriteString(fmt.Sprintf("Prediction: %s\n", result.Prediction))
	if result.RiskScore != nil {
		b.WriteString(fmt.Sprintf("Risk score: %s\n", formatBound(*result.RiskScore)))
	}
	if line := reportProbabilityLine(result); line != "" {
		b.WriteString(line + "\n")
	}
	if result.DetectedClass != "" {
		b.WriteString(fmt.Sprintf("Detected class: %s\n", result.DetectedClass))
	}
	for _, entry := range sortDistribution(result.ProbabilityDistribution) {
		b.WriteString(fmt.Sprintf("  - %s: %s%%\n", entry.Label, formatPercent(entry.Percent)))
	}
	if len(result.OtherConditions) > 0 {
		b.WriteString(fmt.Sprintf("Additional findings: %s\n", strings.Join(result.OtherConditions, "; ")))
	}

	if len(def.Fields) > 0 {
		b.WriteString("\nSUBMITTED INPUTS\n----------------\n")
		for _, spec := range def.Fields {
			value, ok := snapshot[spec.Name]
			if !ok {
				continue
			}
			b.WriteString(fmt.Sprintf("%s: %s\n", spec.Label, reportInputValue(spec, value)))
		}
	}

	b.WriteString("\nDISCLAIMER\n----------\n")
	b.WriteString(reportDisclaimer + "\n")

	filename := fmt.Sprintf("%s-%s-report-%s%s",
		constvars.ReportFilenamePrefix,
		def.Type,
		generatedAt.UTC().Format("20060102-150405"),
		constvars.ReportFileExtension,
	)
	return []byte(b.String()), filename
}

func reportProbabilityLine(result PredictionResult) string {
	detail := probabilityDetail(result)
	if detail == "" {
		return ""
	}
	// Reuse the display wording, without the sentence framing.
	detail = strings.TrimSuffix(detail, ".")
	if rest, found := strings.CutPrefix(detail, "Probability breakdown: "); found {
		return "Probability: " + rest
	}
	if rest, found := strings.CutPrefix(detail, "Estimated probability: "); found {
		return "Probability: " + rest
	}
	if rest, found := strings.CutPrefix(detail, "Model confidence: "); found {
		return "Confidence: " + rest
	}
	return detail
}

func reportInputValue(spec FieldSpec, value float64) string {
	formatted := strconv.FormatFloat(value, 'f', -1, 64)
	switch spec.Kind {
	case KindBinary:
		if formatted == "1" {
			return "Yes"
		}
		return "No"
	case KindCategorical, KindRadioGroup:
		for _, option := range spec.Options {
			if option.Code == formatted {
				return option.Label
			}
		}
		return formatted
	default:
		if spec.Unit != "" {
			return formatted + " " + spec.Unit
		}
		return formatted
	}
}
