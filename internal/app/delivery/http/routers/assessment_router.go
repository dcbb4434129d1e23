package routers

import (
	"medscreen-service/internal/app/delivery/http/middlewares"
	"medscreen-service/internal/app/services/core/assessments"

	"github.com/go-chi/chi/v5"
)

func attachAssessmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, assessmentController *assessments.AssessmentController) {
	router.Get("/", assessmentController.FindAll)
	router.Get("/{assessmentType}", assessmentController.FindByType)
	router.Post("/{assessmentType}/predict", assessmentController.Predict)
}
