package predictor

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"sync"
	"time"

	"medscreen-service/internal/app/config"
	"medscreen-service/internal/app/contracts"
	"medscreen-service/internal/pkg/constvars"
	"medscreen-service/internal/pkg/dto/responses"
	"medscreen-service/internal/pkg/exceptions"
	"medscreen-service/internal/pkg/formengine"
	"medscreen-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var (
	predictorClientInstance contracts.PredictorClient
	oncePredictorClient     sync.Once
)

type predictorClient struct {
	BaseUrl        string
	HTTPClient     *http.Client
	Limiter        *rate.Limiter
	RequestTimeout time.Duration
	Log            *zap.Logger
}

func NewPredictorClient(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.PredictorClient {
	oncePredictorClient.Do(func() {
		instance := &predictorClient{
			BaseUrl:        strings.TrimRight(internalConfig.Predictor.BaseUrl, "/"),
			HTTPClient:     &http.Client{},
			Limiter:        rate.NewLimiter(rate.Limit(internalConfig.Predictor.RequestsPerSecond), internalConfig.Predictor.RequestBurst),
			RequestTimeout: time.Duration(internalConfig.Predictor.RequestTimeoutInSeconds) * time.Second,
			Log:            logger,
		}
		predictorClientInstance = instance
	})
	return predictorClientInstance
}

func (c *predictorClient) Predict(ctx context.Context, def formengine.FormDefinition, snapshot formengine.FormSnapshot) (formengine.PredictionResult, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("predictorClient.Predict called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentTypeKey, string(def.Type)),
		zap.String(constvars.LoggingUpstreamURLKey, c.BaseUrl+def.EndpointPath),
	)

	body, err := json.Marshal(snapshot)
	if err != nil {
		return formengine.PredictionResult{}, exceptions.ErrCannotMarshalJSON(err)
	}

	return c.send(ctx, def, bytes.NewReader(body), constvars.MIMEApplicationJSON)
}

func (c *predictorClient) PredictImage(ctx context.Context, def formengine.FormDefinition, image contracts.ImagePayload) (formengine.PredictionResult, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("predictorClient.PredictImage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentTypeKey, string(def.Type)),
		zap.String(constvars.LoggingUpstreamURLKey, c.BaseUrl+def.EndpointPath),
	)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set(constvars.HeaderContentDisposition,
		fmt.Sprintf(`form-data; name=%q; filename=%q`, constvars.ImageFormFieldName, image.Filename))
	header.Set(constvars.HeaderContentType, image.ContentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return formengine.PredictionResult{}, exceptions.ErrCreateHTTPRequest(err)
	}
	if _, err := io.Copy(part, image.Content); err != nil {
		return formengine.PredictionResult{}, exceptions.ErrCreateHTTPRequest(err)
	}
	if err := writer.Close(); err != nil {
		return formengine.PredictionResult{}, exceptions.ErrCreateHTTPRequest(err)
	}

	return c.send(ctx, def, &body, writer.FormDataContentType())
}

func (c *predictorClient) Health(ctx context.Context) (responses.PredictorHealth, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("predictorClient.Health called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUpstreamURLKey, c.BaseUrl+"/health"),
	)

	ctx, cancel := context.WithTimeout(ctx, c.RequestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, c.BaseUrl+"/health", nil)
	if err != nil {
		return responses.PredictorHealth{}, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return responses.PredictorHealth{}, exceptions.ErrPredictorConnectivity(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return responses.PredictorHealth{}, exceptions.ErrPredictorServer(fmt.Errorf("health answered %d", resp.StatusCode), resp.StatusCode)
	}

	var health responses.PredictorHealth
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return responses.PredictorHealth{}, exceptions.ErrPredictorFormat(err)
	}
	return health, nil
}

// send posts one prediction request and folds the outcome into the error
// taxonomy: transport failures are connectivity, undecodable bodies are
// format errors, reported errors split into unavailable and server classes.
func (c *predictorClient) send(ctx context.Context, def formengine.FormDefinition, body io.Reader, contentType string) (formengine.PredictionResult, error) {
	requestID := utils.GetRequestID(ctx)

	if err := c.Limiter.Wait(ctx); err != nil {
		return formengine.PredictionResult{}, exceptions.ErrPredictorConnectivity(err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.RequestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseUrl+def.EndpointPath, body)
	if err != nil {
		return formengine.PredictionResult{}, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, contentType)
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("predictorClient.send error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return formengine.PredictionResult{}, exceptions.ErrPredictorConnectivity(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return formengine.PredictionResult{}, c.classifyErrorResponse(ctx, resp)
	}

	var prediction responses.PredictorPrediction
	if err := json.NewDecoder(resp.Body).Decode(&prediction); err != nil {
		c.Log.Error("predictorClient.send error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return formengine.PredictionResult{}, exceptions.ErrPredictorFormat(err)
	}

	result, err := prediction.Normalize()
	if err != nil {
		return formengine.PredictionResult{}, exceptions.ErrPredictorFormat(err)
	}
	if result.Prediction == "" {
		return formengine.PredictionResult{}, exceptions.ErrPredictorFormat(fmt.Errorf("response carries no prediction"))
	}

	c.Log.Info("predictorClient.send succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentTypeKey, string(def.Type)),
		zap.Int(constvars.LoggingUpstreamStatusKey, resp.StatusCode),
	)
	return result, nil
}

func (c *predictorClient) classifyErrorResponse(ctx context.Context, resp *http.Response) error {
	requestID := utils.GetRequestID(ctx)

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return exceptions.ErrPredictorFormat(err)
	}

	var envelope responses.PredictorError
	if err := json.Unmarshal(bodyBytes, &envelope); err != nil || envelope.Message() == "" {
		c.Log.Error("predictorClient.classifyErrorResponse undecodable error body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingUpstreamStatusKey, resp.StatusCode),
		)
		return exceptions.ErrPredictorFormat(fmt.Errorf("status %d with undecodable body", resp.StatusCode))
	}

	message := envelope.Message()
	upstreamErr := fmt.Errorf("%s", message)

	c.Log.Error("predictorClient.classifyErrorResponse upstream error",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingUpstreamStatusKey, resp.StatusCode),
		zap.Error(upstreamErr),
	)

	lowered := strings.ToLower(message)
	if resp.StatusCode == constvars.StatusServiceUnavailable ||
		strings.Contains(lowered, "unavailable") ||
		strings.Contains(lowered, "not loaded") {
		return exceptions.ErrPredictorUnavailable(upstreamErr)
	}
	return exceptions.ErrPredictorServer(upstreamErr, resp.StatusCode)
}
