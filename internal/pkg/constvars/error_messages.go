package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"numeric":  "must be a number",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"oneof":    "must be one of [%s]",
	"uuid":     "must be a valid UUID",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"lt":       "must be less than %s",
	"lte":      "must be less than or equal to %s",

	"assessment_type": "must name a supported assessment",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gt":    true,
	"gte":   true,
	"lt":    true,
	"lte":   true,
}

// Error messages for clients. The prediction-service sentences are a fixed,
// documented contract: exactly one sentence per failure class, raw upstream
// text never reaches the client.
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"

	ErrClientAssessmentNotFound    = "the requested assessment does not exist"
	ErrClientSessionNotFound       = "your form session was not found or has expired"
	ErrClientFieldNotFound         = "the requested form field does not exist"
	ErrClientSubmitInProgress      = "a submission is already in progress for this form"
	ErrClientNoResultYet           = "no prediction result is available for this form yet"
	ErrClientImageRequired         = "please upload an eye image before submitting"
	ErrClientInvalidImageFormat    = "the image you uploaded does not meet the specified standards"
	ErrClientImageTooLarge         = "the image you uploaded exceeds the maximum allowed size"
	ErrClientImageNotForAssessment = "this assessment does not accept image uploads"

	ErrClientPredictorConnectivity = "Unable to reach the prediction service. Please check your connection and try again."
	ErrClientPredictorFormat       = "The prediction service returned an unexpected response. Please try again."
	ErrClientPredictorServer       = "The prediction service reported an error. Please try again."
	ErrClientPredictorUnavailable  = "The prediction service is temporarily unavailable. Please try again later."
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form body"
	ErrDevCreateHTTPRequest        = "failed to create HTTP request"
	ErrDevSendHTTPRequest          = "failed to send HTTP request"

	// Validation messages
	ErrDevValidationFailed           = "validation failed"
	ErrDevInvalidRequestPayload      = "invalid request payload"
	ErrDevURLParamIDValidationFailed = "parameter %s validation failed"

	// Form engine messages
	ErrDevUnknownAssessmentType = "unknown assessment type %s"
	ErrDevUnknownField          = "field %s is not declared by assessment %s"
	ErrDevSnapshotNotReady      = "form snapshot requested while fields are not submittable"

	// Session messages
	ErrDevSessionNotFound      = "form session not found in store"
	ErrDevSessionDecodeFailed  = "failed to decode form session payload"
	ErrDevSessionStateConflict = "pipeline transition from %s to %s is not allowed"

	// Predictor messages
	ErrDevPredictorConnectivity  = "prediction request could not be sent or received"
	ErrDevPredictorDecodeFailed  = "failed to decode prediction service response"
	ErrDevPredictorErrorEnvelope = "prediction service answered %d with error body"
	ErrDevPredictorUnavailable   = "prediction service reports itself unavailable"
	ErrDevPredictorNoPrediction  = "prediction service response is missing the prediction label"

	// Redis messages
	ErrDevRedisSetData    = "failed to SET data into redis"
	ErrDevRedisGetData    = "failed to GET data from redis"
	ErrDevRedisGetNoData  = "failed to GET data from redis, there is no data associated with key %s"
	ErrDevRedisDeleteData = "failed to DELETE data from redis"
	ErrDevRedisSetNX      = "failed to SETNX data into redis"
	ErrDevRedisUnlock     = "failed to release redis lock"

	// Minio messages
	ErrDevMinioFailedToCreateObject = "failed to create object into minio storage with bucket name '%s'"
	ErrDevMinioFailedToRemoveObject = "failed to remove object from minio storage with bucket name '%s'"
	ErrDevMinioFailedToGetObject    = "failed to get object from minio storage with bucket name '%s'"
	ErrDevMinioFailedToEnsureBucket = "failed to ensure minio bucket '%s' exists"

	// Queue messages
	ErrDevQueueDeclareFailed = "failed to declare queue %s"
	ErrDevQueuePublishFailed = "failed to publish message to queue %s"
	ErrDevQueueConfirmFailed = "publish to queue %s was not confirmed by the broker"

	// File handling messages
	ErrDevFileInvalidType = "invalid file type"
	ErrDevFileTooLarge    = "file exceeds the configured size ceiling"
	ErrDevFileMissing     = "multipart form does not carry the expected file field"

	// Server messages
	ErrDevServerInternalError    = "internal server error"
	ErrDevServerNotFound         = "resource not found"
	ErrDevServerMethodNotAllowed = "method not allowed"
	ErrDevServerDeadlineExceeded = "deadline exceeded"
)

const (
	ErrFileLocationUnknown = "file location unknown"
	ErrLineLocationUnknown = "line location unknown"
	ErrFunctionNameUnknown = "function name unknown"
)
