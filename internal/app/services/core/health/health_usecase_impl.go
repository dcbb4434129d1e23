package health

import (
	"context"
	"sync"

	"medscreen-service/internal/app/contracts"
	"medscreen-service/internal/pkg/constvars"
	"medscreen-service/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

type healthUsecase struct {
	PredictorClient contracts.PredictorClient
	Log             *zap.Logger
}

var (
	healthUsecaseInstance contracts.HealthUsecase
	onceHealthUsecase     sync.Once
)

func NewHealthUsecase(predictorClient contracts.PredictorClient, logger *zap.Logger) contracts.HealthUsecase {
	onceHealthUsecase.Do(func() {
		healthUsecaseInstance = &healthUsecase{
			PredictorClient: predictorClient,
			Log:             logger,
		}
	})
	return healthUsecaseInstance
}

// Check reports the service as healthy regardless of the prediction
// service: an unreachable upstream degrades submissions, not this API.
func (uc *healthUsecase) Check(ctx context.Context) (*responses.HealthResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("healthUsecase.Check called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	response := &responses.HealthResponse{Status: "ok"}

	upstream, err := uc.PredictorClient.Health(ctx)
	if err != nil {
		uc.Log.Warn("healthUsecase.Check prediction service unreachable",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return response, nil
	}

	response.Predictor.Reachable = true
	response.Predictor.Status = upstream.Status
	response.Predictor.Models = upstream.Models
	return response, nil
}
