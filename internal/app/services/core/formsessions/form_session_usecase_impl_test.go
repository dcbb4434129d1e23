package formsessions

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"medscreen-service/internal/app/config"
	"medscreen-service/internal/app/contracts"
	"medscreen-service/internal/app/models"
	"medscreen-service/internal/pkg/constvars"
	"medscreen-service/internal/pkg/dto/responses"
	"medscreen-service/internal/pkg/exceptions"
	"medscreen-service/internal/pkg/formengine"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeSessionStore copies on both write and read, mirroring the Redis
// repository: what the usecase mutates after a Save never leaks into the
// stored state.
type fakeSessionStore struct {
	sessions map[string]*models.FormSession
	saveErr  error
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]*models.FormSession)}
}

func copySession(session *models.FormSession) (*models.FormSession, error) {
	raw, err := json.Marshal(session)
	if err != nil {
		return nil, err
	}
	copied := new(models.FormSession)
	if err := json.Unmarshal(raw, copied); err != nil {
		return nil, err
	}
	return copied, nil
}

func (s *fakeSessionStore) Save(ctx context.Context, session *models.FormSession) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	copied, err := copySession(session)
	if err != nil {
		return err
	}
	s.sessions[session.ID] = copied
	return nil
}

func (s *fakeSessionStore) Find(ctx context.Context, sessionID string) (*models.FormSession, error) {
	stored, ok := s.sessions[sessionID]
	if !ok {
		return nil, exceptions.ErrSessionNotFound(nil)
	}
	return copySession(stored)
}

func (s *fakeSessionStore) Delete(ctx context.Context, sessionID string) error {
	delete(s.sessions, sessionID)
	return nil
}

type fakeStorage struct {
	objects  map[string][]byte
	removals []string
	getErr   error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: make(map[string][]byte)}
}

func (s *fakeStorage) EnsureBucket(ctx context.Context, bucketName string) error {
	return nil
}

func (s *fakeStorage) UploadObject(ctx context.Context, bucketName, objectName string, file io.Reader, size int64, contentType string) error {
	content, err := io.ReadAll(file)
	if err != nil {
		return err
	}
	s.objects[bucketName+"/"+objectName] = content
	return nil
}

func (s *fakeStorage) GetObject(ctx context.Context, bucketName, objectName string) (io.ReadCloser, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	content, ok := s.objects[bucketName+"/"+objectName]
	if !ok {
		return nil, exceptions.ErrMinioGetObject(fmt.Errorf("object %s missing", objectName), bucketName)
	}
	return io.NopCloser(bytes.NewReader(content)), nil
}

func (s *fakeStorage) RemoveObject(ctx context.Context, bucketName, objectName string) error {
	s.removals = append(s.removals, objectName)
	delete(s.objects, bucketName+"/"+objectName)
	return nil
}

type fakeEventQueue struct {
	events     []models.AssessmentEvent
	publishErr error
}

func (q *fakeEventQueue) PublishAssessmentCompleted(ctx context.Context, event models.AssessmentEvent) error {
	if q.publishErr != nil {
		return q.publishErr
	}
	q.events = append(q.events, event)
	return nil
}

type fakePredictor struct {
	result       formengine.PredictionResult
	err          error
	predictCalls int
	imageCalls   int
	lastSnapshot formengine.FormSnapshot
	lastImage    []byte
}

func (p *fakePredictor) Predict(ctx context.Context, def formengine.FormDefinition, snapshot formengine.FormSnapshot) (formengine.PredictionResult, error) {
	p.predictCalls++
	p.lastSnapshot = snapshot
	if p.err != nil {
		return formengine.PredictionResult{}, p.err
	}
	return p.result, nil
}

func (p *fakePredictor) PredictImage(ctx context.Context, def formengine.FormDefinition, image contracts.ImagePayload) (formengine.PredictionResult, error) {
	p.imageCalls++
	content, err := io.ReadAll(image.Content)
	if err != nil {
		return formengine.PredictionResult{}, err
	}
	p.lastImage = content
	if p.err != nil {
		return formengine.PredictionResult{}, p.err
	}
	return p.result, nil
}

func (p *fakePredictor) Health(ctx context.Context) (responses.PredictorHealth, error) {
	return responses.PredictorHealth{Status: "healthy"}, nil
}

type usecaseHarness struct {
	store     *fakeSessionStore
	locker    *recordingLocker
	predictor *fakePredictor
	storage   *fakeStorage
	queue     *fakeEventQueue
	usecase   *formSessionUsecase
}

type recordingLocker struct {
	held         map[string]string
	denyLock     bool
	tryLockCalls int
	unlockCalls  int
}

func (l *recordingLocker) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	l.tryLockCalls++
	if l.denyLock {
		return false, "", nil
	}
	if _, ok := l.held[key]; ok {
		return false, "", nil
	}
	value := fmt.Sprintf("lock-%d", l.tryLockCalls)
	l.held[key] = value
	return true, value, nil
}

func (l *recordingLocker) Unlock(ctx context.Context, key, lockValue string) error {
	l.unlockCalls++
	if l.held[key] != lockValue {
		return errors.New("lock is not owned by this value")
	}
	delete(l.held, key)
	return nil
}

func (l *recordingLocker) Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error {
	if l.held[key] != lockValue {
		return errors.New("lock is not owned by this value")
	}
	return nil
}

func newHarness() *usecaseHarness {
	store := newFakeSessionStore()
	locker := &recordingLocker{held: make(map[string]string)}
	predictorFake := &fakePredictor{}
	storageFake := newFakeStorage()
	queueFake := &fakeEventQueue{}

	usecase := &formSessionUsecase{
		SessionRepository: store,
		LockerService:     locker,
		PredictorClient:   predictorFake,
		Storage:           storageFake,
		EventQueue:        queueFake,
		InternalConfig: &config.InternalConfig{
			App: config.App{
				SessionExpiredTimeInMinutes: 120,
				SubmitLockTimeInSeconds:     30,
				ImageMaxUploadSizeInMB:      5,
			},
		},
		DriverConfig: &config.DriverConfig{
			Minio: config.Minio{BucketName: "medscreen-test"},
		},
		Log: zap.NewNop(),
	}

	return &usecaseHarness{
		store:     store,
		locker:    locker,
		predictor: predictorFake,
		storage:   storageFake,
		queue:     queueFake,
		usecase:   usecase,
	}
}

func createSession(t *testing.T, h *usecaseHarness, assessmentType constvars.AssessmentType) string {
	t.Helper()
	response, err := h.usecase.Create(context.Background(), string(assessmentType))
	require.NoError(t, err, "creating a %s session should succeed", assessmentType)
	return response.ID
}

func completeForm(t *testing.T, h *usecaseHarness, sessionID string, def formengine.FormDefinition) {
	t.Helper()
	for _, spec := range def.Fields {
		value := "1"
		if spec.Kind == formengine.KindNumeric {
			value = "45"
		}
		_, err := h.usecase.UpdateField(context.Background(), sessionID, spec.Name, value)
		require.NoError(t, err, "field %s should accept a valid value", spec.Name)
	}
}

func lungResult() formengine.PredictionResult {
	return formengine.PredictionResult{
		Prediction:         "High Risk",
		ProbabilityBuckets: map[string]float64{"High Risk": 82.4, "Low Risk": 17.6},
	}
}

func jpegPayload(content string) contracts.ImagePayload {
	return contracts.ImagePayload{
		Filename:    "retina.jpg",
		ContentType: constvars.MIMEImageJPEG,
		Size:        int64(len(content)),
		Content:     strings.NewReader(content),
	}
}

func asCustomError(t *testing.T, err error) *exceptions.CustomError {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr), "error should be a CustomError, got %v", err)
	return customErr
}

func TestFormSessionUsecaseCreateAndFind(t *testing.T) {
	lungDef, _ := formengine.Definition(constvars.AssessmentLungCancer)

	t.Run("Create Initializes Idle Session", func(t *testing.T) {
		h := newHarness()

		response, err := h.usecase.Create(context.Background(), string(constvars.AssessmentLungCancer))

		require.NoError(t, err, "creating a known assessment should succeed")
		assert.Equal(t, string(models.PipelineIdle), response.Status, "a new session should start idle")
		assert.Len(t, response.Fields, len(lungDef.Fields), "every declared field should have a state")
		assert.Equal(t, 0, response.Progress.Percent, "a new session should start at zero progress")
		assert.False(t, response.Progress.CanSubmit, "a new session should not be submittable")
		assert.Contains(t, h.store.sessions, response.ID, "session should be persisted")
	})

	t.Run("Create Rejects Unknown Assessment", func(t *testing.T) {
		h := newHarness()

		_, err := h.usecase.Create(context.Background(), "phrenology")

		customErr := asCustomError(t, err)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode, "unknown assessments should map to 404")
		assert.Empty(t, h.store.sessions, "no session should be persisted")
	})

	t.Run("Find Returns Stored Session", func(t *testing.T) {
		h := newHarness()
		sessionID := createSession(t, h, constvars.AssessmentLungCancer)

		response, err := h.usecase.Find(context.Background(), sessionID)

		require.NoError(t, err, "finding an existing session should succeed")
		assert.Equal(t, sessionID, response.ID, "response should carry the session id")
		assert.Equal(t, constvars.AssessmentLungCancer, response.AssessmentType, "response should carry the assessment type")
	})

	t.Run("Find Rejects Unknown Session", func(t *testing.T) {
		h := newHarness()

		_, err := h.usecase.Find(context.Background(), "nope")

		customErr := asCustomError(t, err)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode, "unknown sessions should map to 404")
		assert.Equal(t, constvars.ErrClientSessionNotFound, customErr.ClientMessage, "client should see the session-not-found sentence")
	})
}

func TestFormSessionUsecaseUpdateField(t *testing.T) {
	t.Run("Evaluates Value And Reports Progress", func(t *testing.T) {
		h := newHarness()
		sessionID := createSession(t, h, constvars.AssessmentLungCancer)

		response, err := h.usecase.UpdateField(context.Background(), sessionID, "age", "45")

		require.NoError(t, err, "updating a declared field should succeed")
		assert.Equal(t, "45", response.Field.RawValue, "raw value should be echoed back")
		assert.Equal(t, formengine.ValidityValidNormal, response.Field.Validity, "an in-range age should be valid-normal")
		assert.Equal(t, 7, response.Progress.Percent, "one of fifteen fields should round to 7 percent")
		assert.False(t, response.Progress.CanSubmit, "a single field should not make the form submittable")
	})

	t.Run("Rejects Unknown Field", func(t *testing.T) {
		h := newHarness()
		sessionID := createSession(t, h, constvars.AssessmentLungCancer)

		_, err := h.usecase.UpdateField(context.Background(), sessionID, "blood_type", "AB")

		customErr := asCustomError(t, err)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode, "unknown fields should map to 404")
		assert.Equal(t, constvars.ErrClientFieldNotFound, customErr.ClientMessage, "client should see the field-not-found sentence")
	})

	t.Run("Rejects While Submission In Flight", func(t *testing.T) {
		h := newHarness()
		sessionID := createSession(t, h, constvars.AssessmentLungCancer)
		h.store.sessions[sessionID].Status = models.PipelineSubmitting

		_, err := h.usecase.UpdateField(context.Background(), sessionID, "age", "45")

		customErr := asCustomError(t, err)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode, "edits during a submission should map to 409")
	})

	t.Run("Invalidates Finished Outcome", func(t *testing.T) {
		h := newHarness()
		sessionID := createSession(t, h, constvars.AssessmentLungCancer)
		result := lungResult()
		h.store.sessions[sessionID].Status = models.PipelineSuccess
		h.store.sessions[sessionID].Result = &result

		_, err := h.usecase.UpdateField(context.Background(), sessionID, "age", "60")

		require.NoError(t, err, "editing after a finished submission should succeed")
		stored := h.store.sessions[sessionID]
		assert.Equal(t, models.PipelineIdle, stored.Status, "an edit should fold the pipeline back to idle")
		assert.Nil(t, stored.Result, "an edit should drop the stale result")
	})
}

func TestFormSessionUsecaseSubmit(t *testing.T) {
	lungDef, _ := formengine.Definition(constvars.AssessmentLungCancer)

	t.Run("Runs Pipeline To Success", func(t *testing.T) {
		h := newHarness()
		sessionID := createSession(t, h, constvars.AssessmentLungCancer)
		completeForm(t, h, sessionID, lungDef)
		h.predictor.result = lungResult()

		response, err := h.usecase.Submit(context.Background(), sessionID)

		require.NoError(t, err, "a valid submission should succeed")
		assert.Equal(t, string(models.PipelineSuccess), response.Status, "pipeline should finish in success")
		require.NotNil(t, response.Result, "response should carry the rendered result")
		assert.Equal(t, 1, h.predictor.predictCalls, "exactly one prediction request should be sent")
		assert.Equal(t, float64(45), h.predictor.lastSnapshot["age"], "snapshot should carry the coerced age")
		assert.Equal(t, 1, h.locker.unlockCalls, "submit lock should be released")

		stored := h.store.sessions[sessionID]
		assert.Equal(t, models.PipelineSuccess, stored.Status, "stored session should be in success")
		require.NotNil(t, stored.Result, "stored session should keep the raw result")
		assert.Equal(t, "High Risk", stored.Result.Prediction, "stored result should keep the prediction")
	})

	t.Run("Publishes Completion Event", func(t *testing.T) {
		h := newHarness()
		sessionID := createSession(t, h, constvars.AssessmentLungCancer)
		completeForm(t, h, sessionID, lungDef)
		h.predictor.result = lungResult()

		_, err := h.usecase.Submit(context.Background(), sessionID)

		require.NoError(t, err, "a valid submission should succeed")
		require.Len(t, h.queue.events, 1, "one completion event should be published")
		event := h.queue.events[0]
		assert.Equal(t, sessionID, event.SessionID, "event should reference the session")
		assert.Equal(t, constvars.AssessmentLungCancer, event.AssessmentType, "event should carry the assessment type")
		assert.Equal(t, "High Risk", event.Prediction, "event should carry the prediction label")
		assert.Equal(t, string(formengine.RiskTierHigh), event.RiskTier, "event should classify the risk tier")
	})

	t.Run("Broker Outage Does Not Fail Submission", func(t *testing.T) {
		h := newHarness()
		sessionID := createSession(t, h, constvars.AssessmentLungCancer)
		completeForm(t, h, sessionID, lungDef)
		h.predictor.result = lungResult()
		h.queue.publishErr = errors.New("broker is down")

		response, err := h.usecase.Submit(context.Background(), sessionID)

		require.NoError(t, err, "a stored result should not be failed by the broker")
		assert.Equal(t, string(models.PipelineSuccess), response.Status, "submission should still succeed")
	})

	t.Run("Rejects Incomplete Form", func(t *testing.T) {
		h := newHarness()
		sessionID := createSession(t, h, constvars.AssessmentLungCancer)
		_, err := h.usecase.UpdateField(context.Background(), sessionID, "age", "45")
		require.NoError(t, err, "seeding one field should succeed")

		_, err = h.usecase.Submit(context.Background(), sessionID)

		customErr := asCustomError(t, err)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode, "incomplete forms should map to 400")
		assert.Contains(t, customErr.ClientMessage, "Please review the following fields:", "client should see the consolidated sentence")
		assert.Equal(t, 0, h.predictor.predictCalls, "no network request should be made for an incomplete form")
		assert.Equal(t, models.PipelineIdle, h.store.sessions[sessionID].Status, "session should return to idle")
	})

	t.Run("Blocks Invalid Value Without Network", func(t *testing.T) {
		h := newHarness()
		sessionID := createSession(t, h, constvars.AssessmentLungCancer)
		completeForm(t, h, sessionID, lungDef)
		_, err := h.usecase.UpdateField(context.Background(), sessionID, "age", "150")
		require.NoError(t, err, "an out-of-range value is still storable")

		_, err = h.usecase.Submit(context.Background(), sessionID)

		customErr := asCustomError(t, err)
		assert.Contains(t, customErr.ClientMessage, "Age", "the offending field should be named")
		assert.Equal(t, 0, h.predictor.predictCalls, "an invalid form must never reach the prediction service")
		assert.Equal(t, models.PipelineIdle, h.store.sessions[sessionID].Status, "session should return to idle")
	})

	t.Run("Rejects Concurrent Submission", func(t *testing.T) {
		h := newHarness()
		sessionID := createSession(t, h, constvars.AssessmentLungCancer)
		completeForm(t, h, sessionID, lungDef)
		h.locker.denyLock = true

		_, err := h.usecase.Submit(context.Background(), sessionID)

		customErr := asCustomError(t, err)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode, "a held lock should map to 409")
		assert.Equal(t, constvars.ErrClientSubmitInProgress, customErr.ClientMessage, "client should see the in-progress sentence")
		assert.Equal(t, 0, h.predictor.predictCalls, "no prediction request should be sent")
		assert.Equal(t, models.PipelineIdle, h.store.sessions[sessionID].Status, "session should stay idle")
	})

	t.Run("Rejects While Already In Flight", func(t *testing.T) {
		h := newHarness()
		sessionID := createSession(t, h, constvars.AssessmentLungCancer)
		h.store.sessions[sessionID].Status = models.PipelineValidating

		_, err := h.usecase.Submit(context.Background(), sessionID)

		customErr := asCustomError(t, err)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode, "an in-flight pipeline should map to 409")
		assert.Equal(t, 0, h.locker.tryLockCalls, "the lock should not even be attempted")
	})

	t.Run("Parks Failure With Client Sentence", func(t *testing.T) {
		h := newHarness()
		sessionID := createSession(t, h, constvars.AssessmentLungCancer)
		completeForm(t, h, sessionID, lungDef)
		h.predictor.err = exceptions.ErrPredictorServer(errors.New("model exploded"), constvars.StatusInternalServerError)

		_, err := h.usecase.Submit(context.Background(), sessionID)

		customErr := asCustomError(t, err)
		assert.Equal(t, constvars.ErrClientPredictorServer, customErr.ClientMessage, "caller should see the fixed server sentence")

		stored := h.store.sessions[sessionID]
		assert.Equal(t, models.PipelineFailed, stored.Status, "session should park in failed")
		assert.Equal(t, constvars.ErrClientPredictorServer, stored.FailureMessage, "failure message should keep the client sentence")
		assert.Empty(t, h.queue.events, "no completion event should be published for a failure")
		assert.Equal(t, 1, h.locker.unlockCalls, "submit lock should still be released")
	})

	t.Run("Resubmits After Failure Through Idle", func(t *testing.T) {
		h := newHarness()
		sessionID := createSession(t, h, constvars.AssessmentLungCancer)
		completeForm(t, h, sessionID, lungDef)

		h.predictor.err = exceptions.ErrPredictorConnectivity(errors.New("connection refused"))
		_, err := h.usecase.Submit(context.Background(), sessionID)
		require.Error(t, err, "the first submission should fail")
		require.Equal(t, models.PipelineFailed, h.store.sessions[sessionID].Status, "session should be parked in failed")

		h.predictor.err = nil
		h.predictor.result = lungResult()

		response, err := h.usecase.Submit(context.Background(), sessionID)

		require.NoError(t, err, "an explicit resubmission should run")
		assert.Equal(t, string(models.PipelineSuccess), response.Status, "resubmission should reach success")
		stored := h.store.sessions[sessionID]
		assert.Empty(t, stored.FailureMessage, "the stale failure message should be cleared")
	})
}

func TestFormSessionUsecaseImageFlow(t *testing.T) {
	t.Run("Submit Requires Image", func(t *testing.T) {
		h := newHarness()
		sessionID := createSession(t, h, constvars.AssessmentEye)

		_, err := h.usecase.Submit(context.Background(), sessionID)

		customErr := asCustomError(t, err)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode, "a missing image should map to 400")
		assert.Equal(t, constvars.ErrClientImageRequired, customErr.ClientMessage, "client should see the image-required sentence")
		assert.Equal(t, 0, h.predictor.imageCalls, "no prediction request should be sent")
		assert.Equal(t, models.PipelineIdle, h.store.sessions[sessionID].Status, "session should return to idle")
	})

	t.Run("Attach Stores Versioned Object", func(t *testing.T) {
		h := newHarness()
		sessionID := createSession(t, h, constvars.AssessmentEye)

		response, err := h.usecase.AttachImage(context.Background(), sessionID, jpegPayload("first-bytes"))

		require.NoError(t, err, "attaching a valid image should succeed")
		require.NotNil(t, response.Image, "response should expose the upload")
		assert.Equal(t, "retina.jpg", response.Image.Filename, "filename should be echoed")
		assert.True(t, response.Progress.CanSubmit, "an image-only form with an image should be submittable")

		stored := h.store.sessions[sessionID]
		require.NotNil(t, stored.Image, "stored session should keep the upload")
		assert.Equal(t, int64(1), stored.Image.Version, "first upload should be version 1")
		assert.Contains(t, h.storage.objects, "medscreen-test/"+stored.Image.ObjectName, "object should be stored under the session prefix")
	})

	t.Run("Replacing Image Removes Stale Object", func(t *testing.T) {
		h := newHarness()
		sessionID := createSession(t, h, constvars.AssessmentEye)

		_, err := h.usecase.AttachImage(context.Background(), sessionID, jpegPayload("first-bytes"))
		require.NoError(t, err, "first upload should succeed")
		firstObject := h.store.sessions[sessionID].Image.ObjectName

		_, err = h.usecase.AttachImage(context.Background(), sessionID, contracts.ImagePayload{
			Filename:    "retina-v2.png",
			ContentType: constvars.MIMEImagePNG,
			Size:        int64(len("second-bytes")),
			Content:     strings.NewReader("second-bytes"),
		})
		require.NoError(t, err, "second upload should succeed")

		stored := h.store.sessions[sessionID]
		assert.Equal(t, int64(2), stored.Image.Version, "second upload should be version 2")
		assert.Equal(t, "retina-v2.png", stored.Image.Filename, "latest upload should win")
		assert.Contains(t, h.storage.removals, firstObject, "displaced object should be removed")
		assert.Len(t, h.storage.objects, 1, "only the latest object should remain")
	})

	t.Run("Rejects Wrong Image Type", func(t *testing.T) {
		h := newHarness()
		sessionID := createSession(t, h, constvars.AssessmentEye)

		_, err := h.usecase.AttachImage(context.Background(), sessionID, contracts.ImagePayload{
			Filename:    "scan.gif",
			ContentType: "image/gif",
			Size:        10,
			Content:     strings.NewReader("gif-bytes!"),
		})

		customErr := asCustomError(t, err)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode, "a disallowed type should map to 400")
		assert.Equal(t, constvars.ErrClientInvalidImageFormat, customErr.ClientMessage, "client should see the format sentence")
		assert.Empty(t, h.storage.objects, "nothing should be stored")
	})

	t.Run("Rejects Oversized Image", func(t *testing.T) {
		h := newHarness()
		sessionID := createSession(t, h, constvars.AssessmentEye)

		payload := jpegPayload("tiny")
		payload.Size = 6 * 1024 * 1024

		_, err := h.usecase.AttachImage(context.Background(), sessionID, payload)

		customErr := asCustomError(t, err)
		assert.Equal(t, constvars.StatusRequestEntityLarge, customErr.StatusCode, "an oversized image should map to 413")
	})

	t.Run("Rejects Upload For Tabular Form", func(t *testing.T) {
		h := newHarness()
		sessionID := createSession(t, h, constvars.AssessmentLungCancer)

		_, err := h.usecase.AttachImage(context.Background(), sessionID, jpegPayload("bytes"))

		customErr := asCustomError(t, err)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode, "uploads to tabular forms should map to 400")
		assert.Equal(t, constvars.ErrClientImageNotForAssessment, customErr.ClientMessage, "client should see the not-for-assessment sentence")
	})

	t.Run("Submit Sends Stored Image", func(t *testing.T) {
		h := newHarness()
		sessionID := createSession(t, h, constvars.AssessmentEye)
		_, err := h.usecase.AttachImage(context.Background(), sessionID, jpegPayload("retina-pixels"))
		require.NoError(t, err, "upload should succeed")

		h.predictor.result = formengine.PredictionResult{
			Prediction:              "cataract",
			ProbabilityDistribution: map[string]float64{"cataract": 91.2, "normal": 8.8},
		}

		response, err := h.usecase.Submit(context.Background(), sessionID)

		require.NoError(t, err, "an image submission should succeed")
		assert.Equal(t, string(models.PipelineSuccess), response.Status, "pipeline should finish in success")
		assert.Equal(t, 1, h.predictor.imageCalls, "the stored image should be sent once")
		assert.Equal(t, 0, h.predictor.predictCalls, "no tabular prediction should be sent")
		assert.Equal(t, "retina-pixels", string(h.predictor.lastImage), "the stored bytes should reach the client")
	})

	t.Run("Remove Is Idempotent", func(t *testing.T) {
		h := newHarness()
		sessionID := createSession(t, h, constvars.AssessmentEye)

		response, err := h.usecase.RemoveImage(context.Background(), sessionID)
		require.NoError(t, err, "removing a missing image should not error")
		assert.Nil(t, response.Image, "response should show no image")

		_, err = h.usecase.AttachImage(context.Background(), sessionID, jpegPayload("bytes"))
		require.NoError(t, err, "upload should succeed")
		objectName := h.store.sessions[sessionID].Image.ObjectName

		response, err = h.usecase.RemoveImage(context.Background(), sessionID)
		require.NoError(t, err, "removing an attached image should succeed")
		assert.Nil(t, response.Image, "response should show no image")
		assert.Nil(t, h.store.sessions[sessionID].Image, "stored session should drop the upload")
		assert.Contains(t, h.storage.removals, objectName, "stored object should be removed")
	})
}

func TestFormSessionUsecaseResetAndReport(t *testing.T) {
	lungDef, _ := formengine.Definition(constvars.AssessmentLungCancer)

	t.Run("Reset Restores Pristine State", func(t *testing.T) {
		h := newHarness()
		sessionID := createSession(t, h, constvars.AssessmentLungCancer)
		completeForm(t, h, sessionID, lungDef)
		h.predictor.result = lungResult()
		_, err := h.usecase.Submit(context.Background(), sessionID)
		require.NoError(t, err, "submission should succeed")

		response, err := h.usecase.Reset(context.Background(), sessionID)

		require.NoError(t, err, "reset should succeed")
		assert.Equal(t, string(models.PipelineIdle), response.Status, "reset should return to idle")
		assert.Equal(t, 0, response.Progress.Percent, "reset should zero the progress")
		assert.Nil(t, response.Result, "reset should drop the result")

		stored := h.store.sessions[sessionID]
		for name, state := range stored.Fields {
			assert.Equal(t, formengine.ValidityEmpty, state.Validity, "field %s should be empty after reset", name)
		}
	})

	t.Run("Reset Removes Stored Image", func(t *testing.T) {
		h := newHarness()
		sessionID := createSession(t, h, constvars.AssessmentEye)
		_, err := h.usecase.AttachImage(context.Background(), sessionID, jpegPayload("bytes"))
		require.NoError(t, err, "upload should succeed")

		_, err = h.usecase.Reset(context.Background(), sessionID)

		require.NoError(t, err, "reset should succeed")
		assert.Nil(t, h.store.sessions[sessionID].Image, "stored session should drop the upload")
		assert.Empty(t, h.storage.objects, "stored object should be removed")
	})

	t.Run("Report Refuses Without Result", func(t *testing.T) {
		h := newHarness()
		sessionID := createSession(t, h, constvars.AssessmentLungCancer)

		_, _, err := h.usecase.ExportReport(context.Background(), sessionID)

		customErr := asCustomError(t, err)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode, "a report without a result should map to 404")
		assert.Equal(t, constvars.ErrClientNoResultYet, customErr.ClientMessage, "client should see the no-result sentence")
	})

	t.Run("Report Produces Artifact", func(t *testing.T) {
		h := newHarness()
		sessionID := createSession(t, h, constvars.AssessmentLungCancer)
		completeForm(t, h, sessionID, lungDef)
		h.predictor.result = lungResult()
		_, err := h.usecase.Submit(context.Background(), sessionID)
		require.NoError(t, err, "submission should succeed")

		content, filename, err := h.usecase.ExportReport(context.Background(), sessionID)

		require.NoError(t, err, "report export should succeed")
		assert.Contains(t, string(content), "Lung Cancer Risk Assessment Report", "report should carry the form title")
		assert.True(t, strings.HasPrefix(filename, constvars.ReportFilenamePrefix+"-lung_cancer-report-"), "filename should follow the artifact convention, got %s", filename)
		assert.True(t, strings.HasSuffix(filename, constvars.ReportFileExtension), "filename should keep the text extension")
	})
}
