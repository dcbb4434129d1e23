package formsessions

import (
	"context"
	"net/http"
	"time"

	"medscreen-service/internal/app/config"
	"medscreen-service/internal/app/contracts"
	"medscreen-service/internal/pkg/constvars"
	"medscreen-service/internal/pkg/dto/requests"
	"medscreen-service/internal/pkg/exceptions"
	"medscreen-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type FormSessionController struct {
	Log                *zap.Logger
	FormSessionUsecase contracts.FormSessionUsecase
	InternalConfig     *config.InternalConfig
}

func NewFormSessionController(logger *zap.Logger, formSessionUsecase contracts.FormSessionUsecase, internalConfig *config.InternalConfig) *FormSessionController {
	return &FormSessionController{
		Log:                logger,
		FormSessionUsecase: formSessionUsecase,
		InternalConfig:     internalConfig,
	}
}

func (ctrl *FormSessionController) Create(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateFormSession)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.FormSessionUsecase.Create(ctx, request.AssessmentType)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateSessionSuccessMessage, response)
}

func (ctrl *FormSessionController) Find(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, constvars.URLParamSessionID)
	if err := utils.ValidateUrlParamID(sessionID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(err, constvars.URLParamSessionID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.FormSessionUsecase.Find(ctx, sessionID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSessionSuccessMessage, response)
}

func (ctrl *FormSessionController) UpdateField(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, constvars.URLParamSessionID)
	if err := utils.ValidateUrlParamID(sessionID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(err, constvars.URLParamSessionID))
		return
	}
	fieldName := chi.URLParam(r, constvars.URLParamFieldName)

	request := new(requests.UpdateField)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.FormSessionUsecase.UpdateField(ctx, sessionID, fieldName, request.Value)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateFieldSuccessMessage, response)
}

func (ctrl *FormSessionController) Submit(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, constvars.URLParamSessionID)
	if err := utils.ValidateUrlParamID(sessionID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(err, constvars.URLParamSessionID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	response, err := ctrl.FormSessionUsecase.Submit(ctx, sessionID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SubmitSuccessMessage, response)
}

func (ctrl *FormSessionController) Reset(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, constvars.URLParamSessionID)
	if err := utils.ValidateUrlParamID(sessionID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(err, constvars.URLParamSessionID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.FormSessionUsecase.Reset(ctx, sessionID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResetSessionSuccessMessage, response)
}

func (ctrl *FormSessionController) UploadImage(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, constvars.URLParamSessionID)
	if err := utils.ValidateUrlParamID(sessionID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(err, constvars.URLParamSessionID))
		return
	}

	maxUploadBytes := ctrl.InternalConfig.App.ImageMaxUploadSizeInMB * 1024 * 1024
	err := r.ParseMultipartForm(maxUploadBytes)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	file, fileHeader, err := r.FormFile(constvars.ImageFormFieldName)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	defer file.Close()

	allowedMIMETypes := []string{constvars.MIMEImageJPEG, constvars.MIMEImagePNG}
	err = utils.ValidateImageContentType(fileHeader, allowedMIMETypes)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrImageInvalidType(err))
		return
	}

	err = utils.ValidateImageSize(fileHeader, maxUploadBytes)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrImageTooLarge(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	image := contracts.ImagePayload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(constvars.HeaderContentType),
		Size:        fileHeader.Size,
		Content:     file,
	}

	response, err := ctrl.FormSessionUsecase.AttachImage(ctx, sessionID, image)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UploadImageSuccessMessage, response)
}

func (ctrl *FormSessionController) RemoveImage(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, constvars.URLParamSessionID)
	if err := utils.ValidateUrlParamID(sessionID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(err, constvars.URLParamSessionID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.FormSessionUsecase.RemoveImage(ctx, sessionID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RemoveImageSuccessMessage, response)
}

func (ctrl *FormSessionController) DownloadReport(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, constvars.URLParamSessionID)
	if err := utils.ValidateUrlParamID(sessionID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(err, constvars.URLParamSessionID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	content, filename, err := ctrl.FormSessionUsecase.ExportReport(ctx, sessionID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildAttachmentResponse(w, constvars.StatusOK, filename, constvars.MIMETextPlainCharsetUTF8, content)
}
