package workspace

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rawad-inc/rawad/internal/application/workspace/usecases"
	"github.com/rawad-inc/rawad/internal/shared/errors"
	"github.com/rawad-inc/rawad/internal/shared/logger"
	"github.com/rawad-inc/rawad/internal/shared/utils"
)

type WorkSpaceHandler struct {
	createUC usecases.CreateWorkSpaceExecutor
	getUC    usecases.GetWorkSpaceExecutor
	listUC   usecases.ListWorkSpacesExecutor
	logger   logger.Interface
}

func NewWorkSpaceHandler(
	createUC usecases.CreateWorkSpaceExecutor,
	getUC usecases.GetWorkSpaceExecutor,
	listUC usecases.ListWorkSpacesExecutor,
) *WorkSpaceHandler {
	return &WorkSpaceHandler{
		createUC: createUC,
		getUC:    getUC,
		listUC:   listUC,
		logger:   logger.NewLogger(),
	}
}

type CreateWorkSpaceRequest struct {
	Name          string   `json:"name" binding:"required"`
	OwnerName     string   `json:"owner_name"`
	ContactNumber string   `json:"contact_number"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	FastInternet  bool     `json:"fast_internet"`
	OpeningTime   string   `json:"opening_time"`
	ClosingTime   string   `json:"closing_time"`
	PowerFrom     string   `json:"power_from"`
	PowerTo       string   `json:"power_to"`
}

// CreateWorkSpace handles POST /workspaces
func (h *WorkSpaceHandler) CreateWorkSpace(c *gin.Context) {
	var req CreateWorkSpaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create workspace", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := usecases.CreateWorkSpaceCommand{
		Name:          req.Name,
		OwnerName:     req.OwnerName,
		ContactNumber: req.ContactNumber,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		FastInternet:  req.FastInternet,
		OpeningTime:   req.OpeningTime,
		ClosingTime:   req.ClosingTime,
		PowerFrom:     req.PowerFrom,
		PowerTo:       req.PowerTo,
	}

	result, err := h.createUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Workspace created successfully")
}

// GetWorkSpace handles GET /workspaces/:id
func (h *WorkSpaceHandler) GetWorkSpace(c *gin.Context) {
	workspaceID, err := parseWorkSpaceID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetWorkSpaceQuery{WorkSpaceID: workspaceID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListWorkSpaces handles GET /workspaces
func (h *WorkSpaceHandler) ListWorkSpaces(c *gin.Context) {
	pg := utils.ParsePagination(c)

	query := usecases.ListWorkSpacesQuery{
		Limit:  pg.PageSize,
		Offset: pg.Offset(),
	}

	result, err := h.listUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.WorkSpaces, result.Total, pg.Page, pg.PageSize)
}

func parseWorkSpaceID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("Invalid workspace ID")
	}
	return uint(id), nil
}
