package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"replydesk/internal/application/auth/usecases"
	"replydesk/internal/shared/logger"
	"replydesk/internal/shared/utils"
)

type AuthHandler struct {
	loginUC   *usecases.LoginUseCase
	refreshUC *usecases.RefreshTokenUseCase
	logger    logger.Interface
}

func NewAuthHandler(
	loginUC *usecases.LoginUseCase,
	refreshUC *usecases.RefreshTokenUseCase,
) *AuthHandler {
	return &AuthHandler{
		loginUC:   loginUC,
		refreshUC: refreshUC,
		logger:    logger.NewLogger(),
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid login request body", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "email and password are required")
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "login successful", result)
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "refresh_token is required")
		return
	}

	result, err := h.refreshUC.Execute(c.Request.Context(), usecases.RefreshTokenCommand{
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "token refreshed", result)
}
