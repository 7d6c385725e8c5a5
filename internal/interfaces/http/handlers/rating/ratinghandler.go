package rating

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rawad-inc/rawad/internal/application/rating/usecases"
	"github.com/rawad-inc/rawad/internal/shared/errors"
	"github.com/rawad-inc/rawad/internal/shared/logger"
	"github.com/rawad-inc/rawad/internal/shared/utils"
)

type RatingHandler struct {
	rateJobSeekerUC usecases.RateJobSeekerExecutor
	getRatingUC     usecases.GetJobSeekerRatingExecutor
	logger          logger.Interface
}

func NewRatingHandler(
	rateJobSeekerUC usecases.RateJobSeekerExecutor,
	getRatingUC usecases.GetJobSeekerRatingExecutor,
) *RatingHandler {
	return &RatingHandler{
		rateJobSeekerUC: rateJobSeekerUC,
		getRatingUC:     getRatingUC,
		logger:          logger.NewLogger(),
	}
}

type RateJobSeekerRequest struct {
	RaterID uint   `json:"rater_id" binding:"required"`
	Score   uint   `json:"score" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// RateJobSeeker handles POST /job-seekers/:id/ratings
func (h *RatingHandler) RateJobSeeker(c *gin.Context) {
	jobSeekerID, err := parseJobSeekerID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req RateJobSeekerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for rate job seeker", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := usecases.RateJobSeekerCommand{
		RaterID:     req.RaterID,
		JobSeekerID: jobSeekerID,
		Score:       req.Score,
		Comment:     req.Comment,
	}

	result, err := h.rateJobSeekerUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Rating recorded successfully")
}

// GetJobSeekerRating handles GET /job-seekers/:id/rating
func (h *RatingHandler) GetJobSeekerRating(c *gin.Context) {
	jobSeekerID, err := parseJobSeekerID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.GetJobSeekerRatingQuery{JobSeekerID: jobSeekerID}

	result, err := h.getRatingUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func parseJobSeekerID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("Invalid job seeker ID")
	}
	return uint(id), nil
}
