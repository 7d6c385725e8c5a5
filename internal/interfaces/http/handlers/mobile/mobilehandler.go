package mobile

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rawad-inc/rawad/internal/application/mobile/usecases"
	"github.com/rawad-inc/rawad/internal/shared/errors"
	"github.com/rawad-inc/rawad/internal/shared/logger"
	"github.com/rawad-inc/rawad/internal/shared/utils"
)

type MobileHandler struct {
	registerUC    usecases.RegisterMobileNumberExecutor
	requestCodeUC usecases.RequestVerificationCodeExecutor
	verifyUC      usecases.VerifyMobileCodeExecutor
	updateUC      usecases.UpdateMobileNumberExecutor
	getUC         usecases.GetMobileNumberExecutor
	logger        logger.Interface
}

func NewMobileHandler(
	registerUC usecases.RegisterMobileNumberExecutor,
	requestCodeUC usecases.RequestVerificationCodeExecutor,
	verifyUC usecases.VerifyMobileCodeExecutor,
	updateUC usecases.UpdateMobileNumberExecutor,
	getUC usecases.GetMobileNumberExecutor,
) *MobileHandler {
	return &MobileHandler{
		registerUC:    registerUC,
		requestCodeUC: requestCodeUC,
		verifyUC:      verifyUC,
		updateUC:      updateUC,
		getUC:         getUC,
		logger:        logger.NewLogger(),
	}
}

type RegisterMobileNumberRequest struct {
	Number string `json:"number" binding:"required"`
}

// RegisterMobileNumber handles POST /users/:id/mobile-number
func (h *MobileHandler) RegisterMobileNumber(c *gin.Context) {
	userID, err := parseUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req RegisterMobileNumberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for register mobile number", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := usecases.RegisterMobileNumberCommand{
		UserID: userID,
		Number: req.Number,
	}

	result, err := h.registerUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Mobile number registered successfully")
}

// GetMobileNumber handles GET /users/:id/mobile-number
func (h *MobileHandler) GetMobileNumber(c *gin.Context) {
	userID, err := parseUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetMobileNumberQuery{UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

type UpdateMobileNumberRequest struct {
	Number string `json:"number" binding:"required"`
}

// UpdateMobileNumber handles PUT /users/:id/mobile-number
func (h *MobileHandler) UpdateMobileNumber(c *gin.Context) {
	userID, err := parseUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateMobileNumberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update mobile number", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := usecases.UpdateMobileNumberCommand{
		UserID: userID,
		Number: req.Number,
	}

	result, err := h.updateUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Mobile number updated successfully", result)
}

// RequestVerificationCode handles POST /users/:id/mobile-number/request-code
func (h *MobileHandler) RequestVerificationCode(c *gin.Context) {
	userID, err := parseUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.RequestVerificationCodeCommand{UserID: userID}

	result, err := h.requestCodeUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Verification code sent", result)
}

type VerifyMobileCodeRequest struct {
	Code string `json:"code" binding:"required,len=6"`
}

// VerifyMobileCode handles POST /users/:id/mobile-number/verify
func (h *MobileHandler) VerifyMobileCode(c *gin.Context) {
	userID, err := parseUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req VerifyMobileCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for verify mobile code", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := usecases.VerifyMobileCodeCommand{
		UserID: userID,
		Code:   req.Code,
	}

	result, err := h.verifyUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result.Message, result)
}

func parseUserID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("Invalid user ID")
	}
	return uint(id), nil
}
