package constvars

const (
	// Generic messages
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Assessment catalog messages
	GetAssessmentsSuccessMessage    = "get assessments successfully"
	GetFormDefinitionSuccessMessage = "get form definition successfully"

	// Prediction messages
	PredictSuccessMessage = "prediction completed successfully"

	// Form session messages
	CreateSessionSuccessMessage = "form session created successfully"
	GetSessionSuccessMessage    = "get form session successfully"
	UpdateFieldSuccessMessage   = "field updated successfully"
	ResetSessionSuccessMessage  = "form session reset successfully"
	SubmitSuccessMessage        = "form submitted successfully"

	// Upload messages
	UploadImageSuccessMessage = "image uploaded successfully"
	RemoveImageSuccessMessage = "image removed successfully"

	// Health messages
	HealthCheckMessage = "medscreen service is running"
)
