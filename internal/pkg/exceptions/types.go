package exceptions

import (
	"fmt"
	"medscreen-service/internal/pkg/constvars"
	"net/http"
)

var (
	ErrURLParamValidation = func(err error, paramName string) *CustomError {
		return BuildNewCustomError(err, http.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevURLParamIDValidationFailed, paramName))
	}
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrCannotParseMultipartForm = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseMultipartForm)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrServerProcess = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevServerInternalError)
	}
	ErrRouteNotFound = func() *CustomError {
		return BuildNewCustomError(nil, http.StatusNotFound, constvars.ErrClientCannotProcessRequest, constvars.ErrDevServerNotFound)
	}
	ErrMethodNotAllowed = func() *CustomError {
		return BuildNewCustomError(nil, http.StatusMethodNotAllowed, constvars.ErrClientCannotProcessRequest, constvars.ErrDevServerMethodNotAllowed)
	}

	// Form engine
	ErrAssessmentNotFound = func(err error, assessmentType string) *CustomError {
		return BuildNewCustomError(err, http.StatusNotFound, constvars.ErrClientAssessmentNotFound, fmt.Sprintf(constvars.ErrDevUnknownAssessmentType, assessmentType))
	}
	ErrFieldNotFound = func(err error, fieldName, assessmentType string) *CustomError {
		return BuildNewCustomError(err, http.StatusNotFound, constvars.ErrClientFieldNotFound, fmt.Sprintf(constvars.ErrDevUnknownField, fieldName, assessmentType))
	}
	ErrFormValidation = func(consolidatedMessage string) *CustomError {
		return BuildNewCustomError(nil, http.StatusBadRequest, consolidatedMessage, constvars.ErrDevValidationFailed)
	}
	ErrSnapshotNotReady = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevSnapshotNotReady)
	}

	// Form session
	ErrSessionNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusNotFound, constvars.ErrClientSessionNotFound, constvars.ErrDevSessionNotFound)
	}
	ErrSessionDecode = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevSessionDecodeFailed)
	}
	ErrSubmitInProgress = func() *CustomError {
		return BuildNewCustomError(nil, http.StatusConflict, constvars.ErrClientSubmitInProgress, constvars.ErrDevValidationFailed)
	}
	ErrPipelineTransition = func(from, to string) *CustomError {
		return BuildNewCustomError(nil, http.StatusConflict, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevSessionStateConflict, from, to))
	}
	ErrNoResultYet = func() *CustomError {
		return BuildNewCustomError(nil, http.StatusNotFound, constvars.ErrClientNoResultYet, constvars.ErrDevValidationFailed)
	}

	// Uploads
	ErrImageRequired = func() *CustomError {
		return BuildNewCustomError(nil, http.StatusBadRequest, constvars.ErrClientImageRequired, constvars.ErrDevFileMissing)
	}
	ErrImageInvalidType = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusBadRequest, constvars.ErrClientInvalidImageFormat, constvars.ErrDevFileInvalidType)
	}
	ErrImageTooLarge = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusRequestEntityTooLarge, constvars.ErrClientImageTooLarge, constvars.ErrDevFileTooLarge)
	}
	ErrImageNotForAssessment = func(assessmentType string) *CustomError {
		return BuildNewCustomError(nil, http.StatusBadRequest, constvars.ErrClientImageNotForAssessment, fmt.Sprintf(constvars.ErrDevUnknownField, constvars.ImageFormFieldName, assessmentType))
	}

	// Prediction service taxonomy. One fixed client sentence per class.
	ErrPredictorConnectivity = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusBadGateway, constvars.ErrClientPredictorConnectivity, constvars.ErrDevPredictorConnectivity)
	}
	ErrPredictorFormat = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusBadGateway, constvars.ErrClientPredictorFormat, constvars.ErrDevPredictorDecodeFailed)
	}
	ErrPredictorServer = func(err error, upstreamStatus int) *CustomError {
		return BuildNewCustomError(err, http.StatusBadGateway, constvars.ErrClientPredictorServer, fmt.Sprintf(constvars.ErrDevPredictorErrorEnvelope, upstreamStatus))
	}
	ErrPredictorUnavailable = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusServiceUnavailable, constvars.ErrClientPredictorUnavailable, constvars.ErrDevPredictorUnavailable)
	}

	// HTTP client
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCreateHTTPRequest)
	}

	// Redis
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetData)
	}
	ErrRedisGet = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGetData)
	}
	ErrRedisGetNoData = func(err error, redisKey string) *CustomError {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRedisGetNoData, redisKey))
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDeleteData)
	}
	ErrRedisSetNX = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetNX)
	}
	ErrRedisUnlock = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisUnlock)
	}

	// Minio
	ErrMinioCreateObject = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioFailedToCreateObject, bucketName))
	}
	ErrMinioRemoveObject = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioFailedToRemoveObject, bucketName))
	}
	ErrMinioGetObject = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioFailedToGetObject, bucketName))
	}
	ErrMinioEnsureBucket = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioFailedToEnsureBucket, bucketName))
	}

	// RabbitMQ
	ErrQueueDeclare = func(err error, queueName string) *CustomError {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevQueueDeclareFailed, queueName))
	}
	ErrQueuePublish = func(err error, queueName string) *CustomError {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevQueuePublishFailed, queueName))
	}
	ErrQueueConfirm = func(err error, queueName string) *CustomError {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevQueueConfirmFailed, queueName))
	}
)
