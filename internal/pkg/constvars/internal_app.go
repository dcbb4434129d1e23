package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "MDSCRN_SVC_"
)

const (
	ResourceAssessments = "assessments"
	ResourceSessions    = "sessions"
	ResourceReports     = "reports"
	ResourceHealth      = "health"
)

const (
	URLParamAssessmentType = "assessmentType"
	URLParamSessionID      = "sessionID"
	URLParamFieldName      = "fieldName"
)
