package user

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rawad-inc/rawad/internal/application/user/usecases"
)

type mockRegisterUserUC struct {
	fn func(ctx context.Context, cmd usecases.RegisterUserCommand) (*usecases.RegisterUserResult, error)
}

func (m *mockRegisterUserUC) Execute(ctx context.Context, cmd usecases.RegisterUserCommand) (*usecases.RegisterUserResult, error) {
	return m.fn(ctx, cmd)
}

func setupUserRouter(h *UserHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.POST("/users", h.RegisterUser)
	return engine
}

func TestRegisterUser_JobSeeker(t *testing.T) {
	var captured usecases.RegisterUserCommand
	registerUC := &mockRegisterUserUC{
		fn: func(ctx context.Context, cmd usecases.RegisterUserCommand) (*usecases.RegisterUserResult, error) {
			captured = cmd
			return &usecases.RegisterUserResult{UserID: 1, ProfileID: 3}, nil
		},
	}
	handler := NewUserHandler(registerUC, nil)
	engine := setupUserRouter(handler)

	body, _ := json.Marshal(gin.H{
		"username":         "sara",
		"email":            "sara@example.com",
		"first_name":       "Sara",
		"last_name":        "Hamdan",
		"role":             "job_seeker",
		"specialization":   "backend development",
		"field_of_work":    "software",
		"date_of_birth":    "1995-04-12",
		"experience_level": "mid",
	})
	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "job_seeker", captured.Role)
	assert.Equal(t, "backend development", captured.Specialization)
	assert.Equal(t, "mid", captured.ExperienceLevel)
	assert.Equal(t, 1995, captured.DateOfBirth.Year())
}

func TestRegisterUser_CompanyPublisher(t *testing.T) {
	var captured usecases.RegisterUserCommand
	registerUC := &mockRegisterUserUC{
		fn: func(ctx context.Context, cmd usecases.RegisterUserCommand) (*usecases.RegisterUserResult, error) {
			captured = cmd
			return &usecases.RegisterUserResult{UserID: 1, ProfileID: 4}, nil
		},
	}
	handler := NewUserHandler(registerUC, nil)
	engine := setupUserRouter(handler)

	body, _ := json.Marshal(gin.H{
		"username":       "acme",
		"email":          "hr@acme.example.com",
		"first_name":     "Acme",
		"last_name":      "Ltd",
		"role":           "job_publisher",
		"publisher_type": "company",
		"company_name":   "Acme Ltd",
		"company_type":   "marketing",
		"license_number": "CR-1020304050",
		"company_size":   "small",
	})
	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "company", captured.PublisherType)
	assert.Equal(t, "CR-1020304050", captured.LicenseNumber)
}

func TestRegisterUser_BadDateOfBirth(t *testing.T) {
	registerUC := &mockRegisterUserUC{
		fn: func(ctx context.Context, cmd usecases.RegisterUserCommand) (*usecases.RegisterUserResult, error) {
			t.Fatal("use case must not run on invalid input")
			return nil, nil
		},
	}
	handler := NewUserHandler(registerUC, nil)
	engine := setupUserRouter(handler)

	body, _ := json.Marshal(gin.H{
		"username":      "sara",
		"email":         "sara@example.com",
		"first_name":    "Sara",
		"last_name":     "Hamdan",
		"role":          "job_seeker",
		"date_of_birth": "12/04/1995",
	})
	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterUser_RejectsUnknownRole(t *testing.T) {
	registerUC := &mockRegisterUserUC{
		fn: func(ctx context.Context, cmd usecases.RegisterUserCommand) (*usecases.RegisterUserResult, error) {
			t.Fatal("use case must not run on invalid input")
			return nil, nil
		},
	}
	handler := NewUserHandler(registerUC, nil)
	engine := setupUserRouter(handler)

	body, _ := json.Marshal(gin.H{
		"username":   "omar",
		"email":      "omar@example.com",
		"first_name": "Omar",
		"last_name":  "Aziz",
		"role":       "admin",
	})
	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
