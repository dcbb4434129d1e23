package routers

import (
	"medscreen-service/internal/app/delivery/http/middlewares"
	"medscreen-service/internal/app/services/core/formsessions"

	"github.com/go-chi/chi/v5"
)

func attachFormSessionRoutes(router chi.Router, middlewares *middlewares.Middlewares, formSessionController *formsessions.FormSessionController) {
	router.Post("/", formSessionController.Create)
	router.Get("/{sessionID}", formSessionController.Find)
	router.Put("/{sessionID}/fields/{fieldName}", formSessionController.UpdateField)
	router.Post("/{sessionID}/submit", formSessionController.Submit)
	router.Post("/{sessionID}/reset", formSessionController.Reset)
	router.Post("/{sessionID}/image", formSessionController.UploadImage)
	router.Delete("/{sessionID}/image", formSessionController.RemoveImage)
	router.Get("/{sessionID}/report", formSessionController.DownloadReport)
}
