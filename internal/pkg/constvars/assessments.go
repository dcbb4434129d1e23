package constvars

// AssessmentType identifies one of the supported screening forms.
type AssessmentType string

const (
	AssessmentLungCancer     AssessmentType = "lung_cancer"
	AssessmentCardiovascular AssessmentType = "cardiovascular"
	AssessmentCovid          AssessmentType = "covid"
	AssessmentGeneral        AssessmentType = "general"
	AssessmentEye            AssessmentType = "eye"
)

// KnownAssessments lists all supported assessment types. Useful for validation.
var KnownAssessments = []AssessmentType{
	AssessmentLungCancer,
	AssessmentCardiovascular,
	AssessmentCovid,
	AssessmentGeneral,
	AssessmentEye,
}
