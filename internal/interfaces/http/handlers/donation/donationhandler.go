package donation

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/rawad-inc/rawad/internal/application/donation/usecases"
	"github.com/rawad-inc/rawad/internal/shared/errors"
	"github.com/rawad-inc/rawad/internal/shared/logger"
	"github.com/rawad-inc/rawad/internal/shared/utils"
)

type DonationHandler struct {
	recordDonationUC usecases.RecordDonationExecutor
	listDonationsUC  usecases.ListDonationsExecutor
	logger           logger.Interface
}

func NewDonationHandler(
	recordDonationUC usecases.RecordDonationExecutor,
	listDonationsUC usecases.ListDonationsExecutor,
) *DonationHandler {
	return &DonationHandler{
		recordDonationUC: recordDonationUC,
		listDonationsUC:  listDonationsUC,
		logger:           logger.NewLogger(),
	}
}

type RecordDonationRequest struct {
	SupporterID uint   `json:"supporter_id" binding:"required"`
	Amount      string `json:"amount" binding:"required"`
}

// RecordDonation handles POST /donations
func (h *DonationHandler) RecordDonation(c *gin.Context) {
	var req RecordDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for record donation", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid donation amount"))
		return
	}

	cmd := usecases.RecordDonationCommand{
		SupporterID: req.SupporterID,
		Amount:      amount,
	}

	result, err := h.recordDonationUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Donation recorded successfully")
}

// ListDonations handles GET /donations
func (h *DonationHandler) ListDonations(c *gin.Context) {
	supporterID, err := strconv.ParseUint(c.Query("supporter_id"), 10, 32)
	if err != nil || supporterID == 0 {
		utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid supporter ID"))
		return
	}

	pg := utils.ParsePagination(c)

	query := usecases.ListDonationsQuery{
		SupporterID: uint(supporterID),
		Limit:       pg.PageSize,
		Offset:      pg.Offset(),
	}

	result, err := h.listDonationsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Donations, result.Total, pg.Page, pg.PageSize)
}
