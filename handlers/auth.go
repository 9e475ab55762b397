// File: handlers/auth.go
package handlers

import (
	"net/http"

	"github.com/funabab/ilivercare-app/apperr"
	"github.com/funabab/ilivercare-app/schemas"
	"github.com/funabab/ilivercare-app/services/account"
	"github.com/funabab/ilivercare-app/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler exposes registration, verification and token issuance.
type AuthHandler struct {
	AccountService account.AccountService
}

func NewAuthHandler(svc account.AccountService) *AuthHandler {
	return &AuthHandler{AccountService: svc}
}

// RegisterAccountHandler handles POST /api/auth/register.
func (h *AuthHandler) RegisterAccountHandler(c *gin.Context) {
	var req schemas.RegisterAccount
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.GetLogger().Debug("RegisterAccount: malformed payload", zap.Error(err))
		respondError(c, apperr.New(apperr.CodeInvalidArgument, "Invalid input"))
		return
	}

	if err := h.AccountService.Register(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"text":    "Account created successfully, kindly verify your email",
	})
}

// VerifyEmailHandler handles GET /api/auth/verify?token=...
func (h *AuthHandler) VerifyEmailHandler(c *gin.Context) {
	if err := h.AccountService.VerifyEmail(c.Request.Context(), c.Query("token")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"text":    "Email verified successfully",
	})
}

// LoginHandler handles POST /api/auth/login.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req schemas.LoginAccount
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.GetLogger().Debug("Login: malformed payload", zap.Error(err))
		respondError(c, apperr.New(apperr.CodeInvalidArgument, "Invalid input"))
		return
	}

	resp, err := h.AccountService.Authenticate(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
