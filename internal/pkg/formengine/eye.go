package formengine

import (
	"medscreen-service/internal/pkg/constvars"
)

// The eye assessment takes no scalar fields; the submission is a single
// retina photograph sent as multipart form data.
var eyeDefinition = FormDefinition{
	Type:          constvars.AssessmentEye,
	Title:         "Eye Disease Assessment",
	Description:   "Classifies retina photographs into eye disease categories.",
	EndpointPath:  "/eye/predict",
	RequiresImage: true,
	Upload: &UploadPolicy{
		AllowedMIMETypes: []string{constvars.MIMEImageJPEG, constvars.MIMEImagePNG},
	},
}
