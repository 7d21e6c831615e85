// internal/handlers/auth/auth_handler.go
package auth

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sawaidbasit2/aixosFire-backend/internal/domain/agent"
	"github.com/sawaidbasit2/aixosFire-backend/internal/domain/customer"
	xerrors "github.com/sawaidbasit2/aixosFire-backend/internal/pkg/errors"
	"github.com/sawaidbasit2/aixosFire-backend/internal/pkg/response"
	service "github.com/sawaidbasit2/aixosFire-backend/internal/service/auth"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// RegisterAgent handles the multipart agent sign-up form, including the
// optional profile photo and CNIC document uploads.
func (h *AuthHandler) RegisterAgent(c *gin.Context) {
	var req agent.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid registration data", err)
		return
	}

	profilePhoto, err := readFormFile(c, "profile_photo")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid profile photo upload", err)
		return
	}

	cnicDocument, err := readFormFile(c, "cnic_document")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid cnic document upload", err)
		return
	}

	a, err := h.authService.RegisterAgent(c.Request.Context(), &req, profilePhoto, cnicDocument)
	if err != nil {
		response.FromError(c, "Server error during registration", err)
		return
	}

	response.JSON(c, http.StatusCreated, gin.H{
		"message": "Agent registered successfully",
		"user":    a,
	})
}

func (h *AuthHandler) RegisterCustomer(c *gin.Context) {
	var req customer.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid registration data", err)
		return
	}

	cust, qrURL, err := h.authService.RegisterCustomer(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, "Error registering customer", err)
		return
	}

	response.JSON(c, http.StatusCreated, gin.H{
		"message":     "Customer registered successfully",
		"id":          cust.ID,
		"qr_code_url": qrURL,
	})
}

// Login is the shared endpoint for all three roles.
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Email, password and role are required", err)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), c.ClientIP(), &req)
	if err != nil {
		response.FromError(c, loginMessage(err), err)
		return
	}

	response.JSON(c, http.StatusOK, result)
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req service.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	if err := h.authService.ForgotPassword(c.Request.Context(), &req); err != nil {
		response.FromError(c, "Error processing forgot password request", err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"message": "OTP sent to your email."})
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req service.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	if err := h.authService.ResetPassword(c.Request.Context(), &req); err != nil {
		response.FromError(c, "Error resetting password", err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"message": "Password reset successful."})
}

func loginMessage(err error) string {
	switch {
	case errors.Is(err, xerrors.ErrInvalidCredentials):
		return "Invalid email or password"
	case errors.Is(err, xerrors.ErrAccountNotActive):
		return "Account pending approval"
	case errors.Is(err, xerrors.ErrRateLimited):
		return "Too many login attempts, try again later"
	case errors.Is(err, xerrors.ErrInvalidInput):
		return "Invalid role"
	default:
		return "Server error"
	}
}

// readFormFile loads an optional multipart file into memory. A missing file
// is not an error.
func readFormFile(c *gin.Context, field string) (*service.Upload, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}

	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	return &service.Upload{Filename: fh.Filename, Data: data}, nil
}
