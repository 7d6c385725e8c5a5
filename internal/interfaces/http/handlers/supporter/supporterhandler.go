package supporter

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rawad-inc/rawad/internal/application/supporter/usecases"
	"github.com/rawad-inc/rawad/internal/shared/errors"
	"github.com/rawad-inc/rawad/internal/shared/logger"
	"github.com/rawad-inc/rawad/internal/shared/utils"
)

type SupporterHandler struct {
	getProfileUC    usecases.GetSupporterProfileExecutor
	updateProfileUC usecases.UpdateSupporterProfileExecutor
	getStatsUC      usecases.GetDonationStatsExecutor
	updateBadgeUC   usecases.UpdateBadgeLevelExecutor
	logger          logger.Interface
}

func NewSupporterHandler(
	getProfileUC usecases.GetSupporterProfileExecutor,
	updateProfileUC usecases.UpdateSupporterProfileExecutor,
	getStatsUC usecases.GetDonationStatsExecutor,
	updateBadgeUC usecases.UpdateBadgeLevelExecutor,
) *SupporterHandler {
	return &SupporterHandler{
		getProfileUC:    getProfileUC,
		updateProfileUC: updateProfileUC,
		getStatsUC:      getStatsUC,
		updateBadgeUC:   updateBadgeUC,
		logger:          logger.NewLogger(),
	}
}

// GetProfile handles GET /supporters/:id
func (h *SupporterHandler) GetProfile(c *gin.Context) {
	profileID, err := parseProfileID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.GetSupporterProfileQuery{ProfileID: profileID}

	result, err := h.getProfileUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

type UpdateProfileRequest struct {
	Country  string `json:"country"`
	PhotoURL string `json:"photo_url"`
	Location string `json:"location"`
	Bio      string `json:"bio"`
}

// UpdateProfile handles PUT /supporters/:id
func (h *SupporterHandler) UpdateProfile(c *gin.Context) {
	profileID, err := parseProfileID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update supporter profile", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := usecases.UpdateSupporterProfileCommand{
		ProfileID: profileID,
		Country:   req.Country,
		PhotoURL:  req.PhotoURL,
		Location:  req.Location,
		Bio:       req.Bio,
	}

	result, err := h.updateProfileUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Profile updated successfully", result)
}

// GetDonationStats handles GET /supporters/:id/donation-stats
func (h *SupporterHandler) GetDonationStats(c *gin.Context) {
	profileID, err := parseProfileID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.GetDonationStatsQuery{ProfileID: profileID}

	result, err := h.getStatsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"profile_id": result.ProfileID,
		"total":      result.Total.StringFixed(2),
		"count":      result.Count,
	})
}

// RecalculateBadge handles POST /supporters/:id/badge/recalculate
func (h *SupporterHandler) RecalculateBadge(c *gin.Context) {
	profileID, err := parseProfileID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.UpdateBadgeLevelCommand{ProfileID: profileID}

	result, err := h.updateBadgeUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Badge level recalculated", result)
}

func parseProfileID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("Invalid supporter profile ID")
	}
	return uint(id), nil
}
