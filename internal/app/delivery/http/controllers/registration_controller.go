package controllers

import (
	"net/http"
	"registration-service/internal/app/config"
	"registration-service/internal/app/contracts"
	"registration-service/internal/pkg/constvars"
	"registration-service/internal/pkg/dto/requests"
	"registration-service/internal/pkg/exceptions"
	"registration-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type RegistrationController struct {
	Log                 *zap.Logger
	RegistrationUsecase contracts.RegistrationUsecase
	InternalConfig      *config.InternalConfig
}

func NewRegistrationController(logger *zap.Logger, registrationUsecase contracts.RegistrationUsecase, internalConfig *config.InternalConfig) *RegistrationController {
	return &RegistrationController{
		Log:                 logger,
		RegistrationUsecase: registrationUsecase,
		InternalConfig:      internalConfig,
	}
}

func (ctrl *RegistrationController) SendRegistrationLink(w http.ResponseWriter, r *http.Request) {
	// Bind body to request
	request := new(requests.SendRegistrationLink)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	// Sanitize request
	utils.SanitizeSendRegistrationLinkRequest(request)

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	result, err := ctrl.RegistrationUsecase.SendRegistrationLink(ctx, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RegistrationLinkSentSuccess, result)
}

func (ctrl *RegistrationController) VerifyRegistrationLink(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, constvars.URLParamToken)
	if !utils.IsValidRegistrationToken(token) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrRegistrationLinkInvalidOrExpired(nil))
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	result, err := ctrl.RegistrationUsecase.VerifyRegistrationLink(ctx, token)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RegistrationLinkValidSuccess, result)
}

func (ctrl *RegistrationController) SubmitRegistration(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SubmitRegistration)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeSubmitRegistrationRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	result, err := ctrl.RegistrationUsecase.SubmitRegistration(ctx, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.RegistrationSubmittedSuccess, result)
}

func (ctrl *RegistrationController) LookupVerificationCode(w http.ResponseWriter, r *http.Request) {
	code := utils.SanitizeVerificationCode(chi.URLParam(r, constvars.URLParamVerificationCode))
	if !utils.IsValidVerificationCode(code) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrRegistrationCodeNotFound(nil))
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	result, err := ctrl.RegistrationUsecase.LookupVerificationCode(ctx, code)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RegistrationCodeFoundSuccess, result)
}

func (ctrl *RegistrationController) RedeemVerificationCode(w http.ResponseWriter, r *http.Request) {
	code := utils.SanitizeVerificationCode(chi.URLParam(r, constvars.URLParamVerificationCode))
	if !utils.IsValidVerificationCode(code) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrRegistrationCodeNotFound(nil))
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	result, err := ctrl.RegistrationUsecase.RedeemVerificationCode(ctx, code)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RegistrationCodeRedeemedSuccess, result)
}
