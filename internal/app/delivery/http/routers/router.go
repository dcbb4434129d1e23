package routers

import (
	"fmt"
	"net/http"
	"time"

	"medscreen-service/internal/app/config"
	"medscreen-service/internal/app/delivery/http/middlewares"
	"medscreen-service/internal/app/services/core/assessments"
	"medscreen-service/internal/app/services/core/formsessions"
	"medscreen-service/internal/app/services/core/health"
	"medscreen-service/internal/pkg/exceptions"
	"medscreen-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	assessmentController *assessments.AssessmentController,
	formSessionController *formsessions.FormSessionController,
	healthController *health.HealthController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "Content-Disposition", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	limitWindow := time.Duration(internalConfig.App.MaxTimeRequestsPerSeconds) * time.Second
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, limitWindow)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.RequestBodyLimit)

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.BuildErrorResponse(middlewares.Log, w, exceptions.ErrRouteNotFound())
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.BuildErrorResponse(middlewares.Log, w, exceptions.ErrMethodNotAllowed())
	})

	router.Get("/health", healthController.Check)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/assessments", func(r chi.Router) {
				attachAssessmentRoutes(r, middlewares, assessmentController)
			})

			r.Route("/sessions", func(r chi.Router) {
				attachFormSessionRoutes(r, middlewares, formSessionController)
			})
		})
	})
}
