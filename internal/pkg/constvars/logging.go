package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingDataKey           = "data"
	LoggingResponseKey       = "response"
	LoggingRequestKey        = "request"
	LoggingResponseLengthKey = "response_length"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRouteKey          = "route"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"

	LoggingAssessmentTypeKey = "assessment_type"
	LoggingSessionIDKey      = "session_id"
	LoggingFieldNameKey      = "field_name"
	LoggingValidityKey       = "validity"
	LoggingPipelineStateKey  = "pipeline_state"
	LoggingRiskTierKey       = "risk_tier"
	LoggingUploadIDKey       = "upload_id"
	LoggingObjectNameKey     = "object_name"
	LoggingBucketNameKey     = "bucket_name"
	LoggingQueueNameKey      = "queue_name"

	LoggingRedisKey              = "redis_key"
	LoggingLockValueKey          = "lock_value"
	LoggingLockExpirationTimeKey = "lock_expiration_time"
	LoggingLockStoredValueKey    = "lock_stored_value"
	LoggingLockExpectedValueKey  = "lock_expected_value"

	LoggingUpstreamStatusKey = "upstream_status"
	LoggingUpstreamURLKey    = "upstream_url"
)
