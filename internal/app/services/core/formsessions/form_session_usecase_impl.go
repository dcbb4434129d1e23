package formsessions

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"medscreen-service/internal/app/config"
	"medscreen-service/internal/app/contracts"
	"medscreen-service/internal/app/models"
	"medscreen-service/internal/pkg/constvars"
	"medscreen-service/internal/pkg/dto/responses"
	"medscreen-service/internal/pkg/exceptions"
	"medscreen-service/internal/pkg/formengine"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type formSessionUsecase struct {
	SessionRepository contracts.FormSessionRepository
	LockerService     contracts.LockerService
	PredictorClient   contracts.PredictorClient
	Storage           contracts.Storage
	EventQueue        contracts.EventQueueService
	InternalConfig    *config.InternalConfig
	DriverConfig      *config.DriverConfig
	Log               *zap.Logger
}

var (
	formSessionUsecaseInstance contracts.FormSessionUsecase
	onceFormSessionUsecase     sync.Once
)

func NewFormSessionUsecase(
	sessionRepository contracts.FormSessionRepository,
	lockerService contracts.LockerService,
	predictorClient contracts.PredictorClient,
	storage contracts.Storage,
	eventQueue contracts.EventQueueService,
	internalConfig *config.InternalConfig,
	driverConfig *config.DriverConfig,
	logger *zap.Logger,
) contracts.FormSessionUsecase {
	onceFormSessionUsecase.Do(func() {
		instance := &formSessionUsecase{
			SessionRepository: sessionRepository,
			LockerService:     lockerService,
			PredictorClient:   predictorClient,
			Storage:           storage,
			EventQueue:        eventQueue,
			InternalConfig:    internalConfig,
			DriverConfig:      driverConfig,
			Log:               logger,
		}
		formSessionUsecaseInstance = instance
	})
	return formSessionUsecaseInstance
}

func (uc *formSessionUsecase) Create(ctx context.Context, assessmentType string) (*responses.FormSessionResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("formSessionUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentTypeKey, assessmentType),
	)

	def, ok := formengine.Definition(constvars.AssessmentType(assessmentType))
	if !ok {
		return nil, exceptions.ErrAssessmentNotFound(nil, assessmentType)
	}

	now := time.Now().UTC()
	session := &models.FormSession{
		ID:             uuid.NewString(),
		AssessmentType: def.Type,
		Status:         models.PipelineIdle,
		Fields:         formengine.NewFieldStates(def),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := uc.SessionRepository.Save(ctx, session); err != nil {
		return nil, err
	}

	uc.Log.Info("formSessionUsecase.Create session created",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.ID),
	)

	response := session.ConvertIntoResponse(def)
	return &response, nil
}

func (uc *formSessionUsecase) Find(ctx context.Context, sessionID string) (*responses.FormSessionResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("formSessionUsecase.Find called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	session, def, err := uc.loadSessionAndDefinition(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	response := session.ConvertIntoResponse(def)
	return &response, nil
}

func (uc *formSessionUsecase) UpdateField(ctx context.Context, sessionID, fieldName, value string) (*responses.FieldUpdateResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("formSessionUsecase.UpdateField called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.String(constvars.LoggingFieldNameKey, fieldName),
	)

	session, def, err := uc.loadSessionAndDefinition(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status.InFlight() {
		return nil, exceptions.ErrSubmitInProgress()
	}

	spec, ok := def.Field(fieldName)
	if !ok {
		return nil, exceptions.ErrFieldNotFound(nil, fieldName, string(def.Type))
	}

	// Any edit after a finished submission invalidates the outcome.
	if err := uc.returnToIdle(session); err != nil {
		return nil, err
	}

	state := formengine.EvaluateField(spec, value)
	session.Fields[spec.Name] = state
	session.UpdatedAt = time.Now().UTC()

	if err := uc.SessionRepository.Save(ctx, session); err != nil {
		return nil, err
	}

	uc.Log.Info("formSessionUsecase.UpdateField field evaluated",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.String(constvars.LoggingFieldNameKey, spec.Name),
		zap.String(constvars.LoggingValidityKey, string(state.Validity)),
	)

	return &responses.FieldUpdateResponse{Field: state, Progress: session.ComputeProgress(def)}, nil
}

// Submit runs the whole pipeline: re-validate everything, snapshot, call the
// prediction service, and persist the outcome. A Redis lock keeps the
// attempt single-flight across instances; a failed attempt never retries on
// its own.
func (uc *formSessionUsecase) Submit(ctx context.Context, sessionID string) (*responses.FormSessionResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("formSessionUsecase.Submit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	session, def, err := uc.loadSessionAndDefinition(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status.InFlight() {
		return nil, exceptions.ErrSubmitInProgress()
	}

	lockKey := constvars.SubmitLockKeyPrefix + sessionID
	lockExpiration := time.Duration(uc.InternalConfig.App.SubmitLockTimeInSeconds) * time.Second
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, lockExpiration)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrSubmitInProgress()
	}
	defer func() {
		if unlockErr := uc.LockerService.Unlock(ctx, lockKey, lockValue); unlockErr != nil {
			uc.Log.Error("formSessionUsecase.Submit error releasing submit lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingSessionIDKey, sessionID),
				zap.Error(unlockErr),
			)
		}
	}()

	if err := uc.returnToIdle(session); err != nil {
		return nil, err
	}

	if err := uc.transition(session, models.PipelineValidating); err != nil {
		return nil, err
	}
	if err := uc.SessionRepository.Save(ctx, session); err != nil {
		return nil, err
	}

	states := formengine.EvaluateAll(def, rawValues(session.Fields))
	session.Fields = states

	message := formengine.ConsolidatedValidationMessage(def, states)
	missingImage := def.RequiresImage && session.Image == nil
	if message != "" || missingImage {
		if err := uc.transition(session, models.PipelineIdle); err != nil {
			return nil, err
		}
		if saveErr := uc.SessionRepository.Save(ctx, session); saveErr != nil {
			return nil, saveErr
		}
		uc.Log.Info("formSessionUsecase.Submit rejected by validation",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
		)
		if missingImage {
			return nil, exceptions.ErrImageRequired()
		}
		return nil, exceptions.ErrFormValidation(message)
	}

	if err := uc.transition(session, models.PipelineSubmitting); err != nil {
		return nil, err
	}
	if err := uc.SessionRepository.Save(ctx, session); err != nil {
		return nil, err
	}

	// The upstream call may outlast the initial lock TTL; extend the lock
	// to cover the prediction before dialing out.
	if refreshErr := uc.LockerService.Refresh(ctx, lockKey, lockValue, lockExpiration); refreshErr != nil {
		uc.Log.Warn("formSessionUsecase.Submit could not extend the submit lock",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Error(refreshErr),
		)
	}

	var result formengine.PredictionResult
	var snapshot formengine.FormSnapshot

	if def.RequiresImage {
		object, getErr := uc.Storage.GetObject(ctx, uc.DriverConfig.Minio.BucketName, session.Image.ObjectName)
		if getErr != nil {
			return nil, uc.failSubmission(ctx, session, getErr)
		}
		defer object.Close()

		result, err = uc.PredictorClient.PredictImage(ctx, def, contracts.ImagePayload{
			Filename:    session.Image.Filename,
			ContentType: session.Image.ContentType,
			Size:        session.Image.Size,
			Content:     object,
		})
		if err != nil {
			return nil, uc.failSubmission(ctx, session, err)
		}
	} else {
		snapshot, err = formengine.BuildSnapshot(def, states)
		if err != nil {
			return nil, uc.failSubmission(ctx, session, exceptions.ErrSnapshotNotReady(err))
		}

		result, err = uc.PredictorClient.Predict(ctx, def, snapshot)
		if err != nil {
			return nil, uc.failSubmission(ctx, session, err)
		}
	}

	if err := uc.transition(session, models.PipelineSuccess); err != nil {
		return nil, err
	}
	session.Result = &result
	session.Snapshot = snapshot
	session.FailureMessage = ""

	if err := uc.SessionRepository.Save(ctx, session); err != nil {
		return nil, err
	}

	uc.Log.Info("formSessionUsecase.Submit succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.String(constvars.LoggingRiskTierKey, string(formengine.ClassifyRiskTier(result.Prediction))),
	)

	uc.publishCompletedEvent(ctx, session, def, result)

	response := session.ConvertIntoResponse(def)
	return &response, nil
}

func (uc *formSessionUsecase) Reset(ctx context.Context, sessionID string) (*responses.FormSessionResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("formSessionUsecase.Reset called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	session, def, err := uc.loadSessionAndDefinition(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status.InFlight() {
		return nil, exceptions.ErrSubmitInProgress()
	}

	staleImage := session.Image

	session.Fields = formengine.NewFieldStates(def)
	session.Image = nil
	clearOutcome(session)
	if session.Status != models.PipelineIdle {
		if err := uc.transition(session, models.PipelineIdle); err != nil {
			return nil, err
		}
	}
	session.UpdatedAt = time.Now().UTC()

	if err := uc.SessionRepository.Save(ctx, session); err != nil {
		return nil, err
	}

	uc.removeStoredImage(ctx, staleImage)

	response := session.ConvertIntoResponse(def)
	return &response, nil
}

func (uc *formSessionUsecase) AttachImage(ctx context.Context, sessionID string, image contracts.ImagePayload) (*responses.FormSessionResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("formSessionUsecase.AttachImage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	session, def, err := uc.loadSessionAndDefinition(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !def.RequiresImage {
		return nil, exceptions.ErrImageNotForAssessment(string(def.Type))
	}
	if session.Status.InFlight() {
		return nil, exceptions.ErrSubmitInProgress()
	}

	if err := uc.validateUploadPolicy(def, image); err != nil {
		return nil, err
	}

	var version int64 = 1
	stale := session.Image
	if stale != nil {
		version = stale.Version + 1
	}

	objectName := fmt.Sprintf("%s/%d-%s", session.ID, version, image.Filename)
	bucketName := uc.DriverConfig.Minio.BucketName
	if err := uc.Storage.UploadObject(ctx, bucketName, objectName, image.Content, image.Size, image.ContentType); err != nil {
		return nil, err
	}

	if err := uc.returnToIdle(session); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	session.Image = &models.UploadAsset{
		ObjectName:  objectName,
		Filename:    image.Filename,
		ContentType: image.ContentType,
		Size:        image.Size,
		Version:     version,
		UploadedAt:  now,
	}
	session.UpdatedAt = now

	if err := uc.SessionRepository.Save(ctx, session); err != nil {
		return nil, err
	}

	uc.Log.Info("formSessionUsecase.AttachImage upload stored",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)

	// The session now points at the newer version, so the displaced
	// object can go.
	uc.removeStoredImage(ctx, stale)

	response := session.ConvertIntoResponse(def)
	return &response, nil
}

func (uc *formSessionUsecase) RemoveImage(ctx context.Context, sessionID string) (*responses.FormSessionResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("formSessionUsecase.RemoveImage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	session, def, err := uc.loadSessionAndDefinition(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.Image == nil {
		response := session.ConvertIntoResponse(def)
		return &response, nil
	}
	if session.Status.InFlight() {
		return nil, exceptions.ErrSubmitInProgress()
	}

	stale := session.Image
	if err := uc.returnToIdle(session); err != nil {
		return nil, err
	}
	session.Image = nil
	session.UpdatedAt = time.Now().UTC()

	if err := uc.SessionRepository.Save(ctx, session); err != nil {
		return nil, err
	}

	uc.removeStoredImage(ctx, stale)

	response := session.ConvertIntoResponse(def)
	return &response, nil
}

func (uc *formSessionUsecase) ExportReport(ctx context.Context, sessionID string) ([]byte, string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("formSessionUsecase.ExportReport called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	session, def, err := uc.loadSessionAndDefinition(ctx, sessionID)
	if err != nil {
		return nil, "", err
	}
	if session.Status != models.PipelineSuccess || session.Result == nil {
		return nil, "", exceptions.ErrNoResultYet()
	}

	content, filename := formengine.ExportReport(def, *session.Result, session.Snapshot, time.Now().UTC())
	return content, filename, nil
}

func (uc *formSessionUsecase) loadSessionAndDefinition(ctx context.Context, sessionID string) (*models.FormSession, formengine.FormDefinition, error) {
	session, err := uc.SessionRepository.Find(ctx, sessionID)
	if err != nil {
		return nil, formengine.FormDefinition{}, err
	}

	def, ok := formengine.Definition(session.AssessmentType)
	if !ok {
		return nil, formengine.FormDefinition{}, exceptions.ErrAssessmentNotFound(nil, string(session.AssessmentType))
	}
	return session, def, nil
}

// returnToIdle folds a finished pipeline back to idle, dropping its outcome.
// It is a no-op for a session that is already idle.
func (uc *formSessionUsecase) returnToIdle(session *models.FormSession) error {
	if session.Status != models.PipelineSuccess && session.Status != models.PipelineFailed {
		return nil
	}
	clearOutcome(session)
	return uc.transition(session, models.PipelineIdle)
}

func (uc *formSessionUsecase) transition(session *models.FormSession, next models.PipelineState) error {
	if !session.Status.CanTransitionTo(next) {
		return exceptions.ErrPipelineTransition(string(session.Status), string(next))
	}
	session.Status = next
	session.UpdatedAt = time.Now().UTC()
	return nil
}

// failSubmission parks the session in the failed state, keeping the client
// sentence of the cause for later display, and hands the cause back.
func (uc *formSessionUsecase) failSubmission(ctx context.Context, session *models.FormSession, cause error) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if err := uc.transition(session, models.PipelineFailed); err != nil {
		return err
	}

	var customErr *exceptions.CustomError
	if errors.As(cause, &customErr) {
		session.FailureMessage = customErr.ClientMessage
	} else {
		session.FailureMessage = constvars.ErrClientSomethingWrongWithApplication
	}

	if saveErr := uc.SessionRepository.Save(ctx, session); saveErr != nil {
		uc.Log.Error("formSessionUsecase.failSubmission error saving failed session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, session.ID),
			zap.Error(saveErr),
		)
	}

	uc.Log.Error("formSessionUsecase.Submit failed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.ID),
		zap.String(constvars.LoggingPipelineStateKey, string(session.Status)),
		zap.Error(cause),
	)
	return cause
}

// publishCompletedEvent is best effort: a broker outage must not fail a
// submission whose result is already stored.
func (uc *formSessionUsecase) publishCompletedEvent(ctx context.Context, session *models.FormSession, def formengine.FormDefinition, result formengine.PredictionResult) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	event := models.AssessmentEvent{
		ID:             uuid.NewString(),
		SessionID:      session.ID,
		AssessmentType: def.Type,
		Prediction:     result.Prediction,
		RiskTier:       string(formengine.ClassifyRiskTier(result.Prediction)),
		OccurredAt:     time.Now().UTC(),
	}

	if err := uc.EventQueue.PublishAssessmentCompleted(ctx, event); err != nil {
		uc.Log.Error("formSessionUsecase.publishCompletedEvent error publishing event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, session.ID),
			zap.Error(err),
		)
	}
}

func (uc *formSessionUsecase) validateUploadPolicy(def formengine.FormDefinition, image contracts.ImagePayload) error {
	allowed := false
	for _, mimeType := range def.Upload.AllowedMIMETypes {
		if strings.EqualFold(image.ContentType, mimeType) {
			allowed = true
			break
		}
	}
	if !allowed {
		return exceptions.ErrImageInvalidType(fmt.Errorf("content type %s is not accepted", image.ContentType))
	}

	maxBytes := uc.InternalConfig.App.ImageMaxUploadSizeInMB * 1024 * 1024
	if image.Size > maxBytes {
		return exceptions.ErrImageTooLarge(fmt.Errorf("file size %d exceeds the %d byte limit", image.Size, maxBytes))
	}
	return nil
}

func (uc *formSessionUsecase) removeStoredImage(ctx context.Context, asset *models.UploadAsset) {
	if asset == nil {
		return
	}
	if err := uc.Storage.RemoveObject(ctx, uc.DriverConfig.Minio.BucketName, asset.ObjectName); err != nil {
		uc.Log.Error("formSessionUsecase.removeStoredImage error removing object",
			zap.String(constvars.LoggingObjectNameKey, asset.ObjectName),
			zap.Error(err),
		)
	}
}

func rawValues(states map[string]formengine.FieldState) map[string]string {
	raw := make(map[string]string, len(states))
	for name, state := range states {
		raw[name] = state.RawValue
	}
	return raw
}

func clearOutcome(session *models.FormSession) {
	session.Result = nil
	session.Snapshot = nil
	session.FailureMessage = ""
}
