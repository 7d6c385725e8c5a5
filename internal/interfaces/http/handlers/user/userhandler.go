package user

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rawad-inc/rawad/internal/application/user/usecases"
	"github.com/rawad-inc/rawad/internal/shared/errors"
	"github.com/rawad-inc/rawad/internal/shared/logger"
	"github.com/rawad-inc/rawad/internal/shared/utils"
)

type UserHandler struct {
	registerUserUC usecases.RegisterUserExecutor
	getUserUC      usecases.GetUserExecutor
	logger         logger.Interface
}

func NewUserHandler(
	registerUserUC usecases.RegisterUserExecutor,
	getUserUC usecases.GetUserExecutor,
) *UserHandler {
	return &UserHandler{
		registerUserUC: registerUserUC,
		getUserUC:      getUserUC,
		logger:         logger.NewLogger(),
	}
}

type RegisterUserRequest struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Role      string `json:"role" binding:"required,oneof=job_seeker job_publisher supporter staff"`
	Country   string `json:"country"`

	// Job seeker fields.
	Specialization  string `json:"specialization"`
	FieldOfWork     string `json:"field_of_work"`
	DateOfBirth     string `json:"date_of_birth"`
	ExperienceLevel string `json:"experience_level" binding:"omitempty,oneof=entry junior mid senior expert"`

	// Publisher fields.
	PublisherType       string `json:"publisher_type" binding:"omitempty,oneof=company business_owner individual_client"`
	CompanyName         string `json:"company_name"`
	CompanyType         string `json:"company_type"`
	LicenseNumber       string `json:"license_number"`
	CompanySize         string `json:"company_size" binding:"omitempty,oneof=startup small medium large enterprise"`
	BusinessName        string `json:"business_name"`
	BusinessDescription string `json:"business_description"`
}

// RegisterUser handles POST /users
func (h *UserHandler) RegisterUser(c *gin.Context) {
	var req RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for register user", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	var dateOfBirth time.Time
	if req.DateOfBirth != "" {
		parsed, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid date of birth, expected YYYY-MM-DD"))
			return
		}
		dateOfBirth = parsed
	}

	cmd := usecases.RegisterUserCommand{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
		Country:   req.Country,

		Specialization:  req.Specialization,
		FieldOfWork:     req.FieldOfWork,
		DateOfBirth:     dateOfBirth,
		ExperienceLevel: req.ExperienceLevel,

		PublisherType:       req.PublisherType,
		CompanyName:         req.CompanyName,
		CompanyType:         req.CompanyType,
		LicenseNumber:       req.LicenseNumber,
		CompanySize:         req.CompanySize,
		BusinessName:        req.BusinessName,
		BusinessDescription: req.BusinessDescription,
	}

	result, err := h.registerUserUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "User registered successfully")
}

// GetUser handles GET /users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	userID, err := parseUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUserUC.Execute(c.Request.Context(), usecases.GetUserQuery{UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func parseUserID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("Invalid user ID")
	}
	return uint(id), nil
}
