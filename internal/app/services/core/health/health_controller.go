package health

import (
	"context"
	"net/http"
	"time"

	"medscreen-service/internal/app/contracts"
	"medscreen-service/internal/pkg/constvars"
	"medscreen-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type HealthController struct {
	Log           *zap.Logger
	HealthUsecase contracts.HealthUsecase
}

func NewHealthController(logger *zap.Logger, healthUsecase contracts.HealthUsecase) *HealthController {
	return &HealthController{
		Log:           logger,
		HealthUsecase: healthUsecase,
	}
}

func (ctrl *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	response, err := ctrl.HealthUsecase.Check(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthCheckMessage, response)
}
