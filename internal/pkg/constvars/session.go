package constvars

const (
	FormSessionKeyPrefix = "formsession:"
	SubmitLockKeyPrefix  = "formsession:lock:"
)

const (
	ImageFormFieldName = "file"
)

const (
	ReportFilenamePrefix = "medscreen"
	ReportFileExtension  = ".txt"
)
