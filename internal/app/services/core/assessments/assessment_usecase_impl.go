package assessments

import (
	"context"
	"sync"

	"medscreen-service/internal/app/contracts"
	"medscreen-service/internal/pkg/constvars"
	"medscreen-service/internal/pkg/dto/responses"
	"medscreen-service/internal/pkg/exceptions"
	"medscreen-service/internal/pkg/formengine"

	"go.uber.org/zap"
)

type assessmentUsecase struct {
	PredictorClient contracts.PredictorClient
	Log             *zap.Logger
}

var (
	assessmentUsecaseInstance contracts.AssessmentUsecase
	onceAssessmentUsecase     sync.Once
)

func NewAssessmentUsecase(
	predictorClient contracts.PredictorClient,
	logger *zap.Logger,
) contracts.AssessmentUsecase {
	onceAssessmentUsecase.Do(func() {
		instance := &assessmentUsecase{
			PredictorClient: predictorClient,
			Log:             logger,
		}
		assessmentUsecaseInstance = instance
	})
	return assessmentUsecaseInstance
}

func (uc *assessmentUsecase) FindAll(ctx context.Context) ([]responses.AssessmentSummary, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("assessmentUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	definitions := formengine.Definitions()
	summaries := make([]responses.AssessmentSummary, 0, len(definitions))
	for _, def := range definitions {
		summaries = append(summaries, responses.AssessmentSummary{
			Type:          def.Type,
			Title:         def.Title,
			Description:   def.Description,
			FieldCount:    len(def.Fields),
			RequiresImage: def.RequiresImage,
		})
	}

	return summaries, nil
}

func (uc *assessmentUsecase) FindByType(ctx context.Context, assessmentType constvars.AssessmentType) (formengine.FormDefinition, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("assessmentUsecase.FindByType called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentTypeKey, string(assessmentType)),
	)

	def, ok := formengine.Definition(assessmentType)
	if !ok {
		return formengine.FormDefinition{}, exceptions.ErrAssessmentNotFound(nil, string(assessmentType))
	}
	return def, nil
}

// Predict validates raw field values and, only when every field passes,
// forwards the snapshot to the prediction service.
func (uc *assessmentUsecase) Predict(ctx context.Context, assessmentType constvars.AssessmentType, fields map[string]string) (*responses.PredictionResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("assessmentUsecase.Predict called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentTypeKey, string(assessmentType)),
	)

	def, ok := formengine.Definition(assessmentType)
	if !ok {
		return nil, exceptions.ErrAssessmentNotFound(nil, string(assessmentType))
	}
	if def.RequiresImage {
		return nil, exceptions.ErrImageRequired()
	}

	states := formengine.EvaluateAll(def, fields)
	if message := formengine.ConsolidatedValidationMessage(def, states); message != "" {
		uc.Log.Info("assessmentUsecase.Predict rejected by validation",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAssessmentTypeKey, string(assessmentType)),
		)
		return nil, exceptions.ErrFormValidation(message)
	}

	snapshot, err := formengine.BuildSnapshot(def, states)
	if err != nil {
		return nil, exceptions.ErrSnapshotNotReady(err)
	}

	result, err := uc.PredictorClient.Predict(ctx, def, snapshot)
	if err != nil {
		uc.Log.Error("assessmentUsecase.Predict error calling prediction service",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	display := formengine.RenderDisplay(def, result, snapshot)
	uc.Log.Info("assessmentUsecase.Predict succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentTypeKey, string(assessmentType)),
		zap.String(constvars.LoggingRiskTierKey, string(display.RiskTier)),
	)

	return &responses.PredictionResponse{Raw: result, Display: display}, nil
}
